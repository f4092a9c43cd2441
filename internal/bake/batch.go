package bake

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/meshforge/vbake/internal/mesh"
)

// ConvertAll bakes meshes in input order with a shared texture cache. The
// first failure aborts the batch and no partial result is returned.
func (b *Baker) ConvertAll(meshes []mesh.TexturedMesh) ([]mesh.ColoredMesh, error) {
	out := make([]mesh.ColoredMesh, 0, len(meshes))
	for i := range meshes {
		cm, err := b.Convert(&meshes[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *cm)
	}
	return out, nil
}

// ConvertAllParallel bakes meshes across the given number of workers and
// reassembles the results in input order. Each worker owns its own Baker and
// decoded-image cache. On failure the whole batch fails with the earliest
// input-order error recorded and no partial result is returned; the context
// cancels dispatch of remaining meshes.
//
// workers < 2 or fewer than two meshes falls back to sequential ConvertAll.
func ConvertAllParallel(ctx context.Context, meshes []mesh.TexturedMesh, solidFaceColor bool, workers int) ([]mesh.ColoredMesh, error) {
	if workers < 2 || len(meshes) < 2 {
		return New(solidFaceColor, nil).ConvertAll(meshes)
	}
	if workers > len(meshes) {
		workers = len(meshes)
	}

	out := make([]mesh.ColoredMesh, len(meshes))
	errs := make([]error, len(meshes))
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			b := New(solidFaceColor, nil)
			for i := range jobs {
				cm, err := b.Convert(&meshes[i])
				if err != nil {
					errs[i] = err
					return err
				}
				out[i] = *cm
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := range meshes {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		// report the earliest failed mesh, not the first error in time
		for _, e := range errs {
			if e != nil {
				return nil, e
			}
		}
		return nil, err
	}
	return out, nil
}
