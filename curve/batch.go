package curve

import (
	"context"
	"fmt"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ScalarMultAll returns ks[i]·ps[i] for every i.
//
// The multiplications are independent and run concurrently, at most
// GOMAXPROCS at a time. The first failure cancels the remaining work and is
// returned, annotated with its index.
func ScalarMultAll(ctx context.Context, ps []Point, ks []*big.Int) ([]Point, error) {
	if len(ps) != len(ks) {
		return nil, fmt.Errorf("%w: %d points, %d scalars", ErrLengthMismatch, len(ps), len(ks))
	}

	out := make([]Point, len(ps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range ps {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := ps[i].ScalarMult(ks[i])
			if err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
