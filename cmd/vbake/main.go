// vbake bakes per-vertex colors from a model's textures so the model can be
// rendered by a color-only pipeline without texture binding.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meshforge/vbake/internal/bake"
	"github.com/meshforge/vbake/internal/config"
	"github.com/meshforge/vbake/internal/logger"
	"github.com/meshforge/vbake/internal/mesh"
	"github.com/meshforge/vbake/internal/modelio"
)

var flagOutput = flag.String("o", "", "Output path (default: input name with .baked.glb)")

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, args[0], *flagOutput); err != nil {
		logger.Error("bake failed", zap.Error(err))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vbake - bake texture colors into mesh vertices

Usage:
  vbake [options] <model.obj|model.glb>

Options:
  -o <path>       Output path (default: input name with .baked.glb)
  -config <path>  Path to config file
  -solid-faces    Bake one averaged color per triangle
  -workers <n>    Number of meshes baked concurrently
  -debug          Enable debug logging

Examples:
  vbake assets/models/spider.obj
  vbake -solid-faces -o out.glb scene.glb`)
}

func run(cfg *config.Config, input, output string) error {
	start := time.Now()

	meshes, err := loadModel(input)
	if err != nil {
		return err
	}
	logger.Info("model loaded",
		zap.String("path", input),
		zap.Int("meshes", len(meshes)))

	baked, err := convert(cfg, meshes)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".baked.glb"
	}
	if err := modelio.ExportGLB(output, baked); err != nil {
		return err
	}

	var vertices int
	for i := range baked {
		vertices += len(baked[i].Positions)
	}
	logger.Info("bake complete",
		zap.String("output", output),
		zap.Int("meshes", len(baked)),
		zap.Int("vertices", vertices),
		zap.Bool("solid_faces", cfg.Graphics.SolidFaceColor),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func loadModel(path string) ([]mesh.TexturedMesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return modelio.LoadOBJ(path)
	case ".glb", ".gltf":
		return modelio.LoadGLB(path)
	default:
		return nil, fmt.Errorf("unsupported model format %q (want .obj, .glb or .gltf)", filepath.Ext(path))
	}
}

func convert(cfg *config.Config, meshes []mesh.TexturedMesh) ([]mesh.ColoredMesh, error) {
	if cfg.Bake.Workers > 1 {
		return bake.ConvertAllParallel(context.Background(), meshes, cfg.Graphics.SolidFaceColor, cfg.Bake.Workers)
	}
	b := bake.New(cfg.Graphics.SolidFaceColor, logger.Log)
	return b.ConvertAll(meshes)
}
