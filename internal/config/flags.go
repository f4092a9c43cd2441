package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSolidFaces = flag.Bool("solid-faces", false, "Bake one averaged color per triangle")
	flagWorkers    = flag.Int("workers", 0, "Number of meshes baked concurrently")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSolidFaces {
		cfg.Graphics.SolidFaceColor = true
	}
	if *flagWorkers > 0 {
		cfg.Bake.Workers = *flagWorkers
	}
}
