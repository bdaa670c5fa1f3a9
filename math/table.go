package math

import (
	"context"
	"fmt"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MaxTableRows bounds the number of entries a single table may hold.
const MaxTableRows = 200

// Entry is one row of a factorial table.
type Entry struct {
	N     int
	Value *big.Int
}

// Range returns from..to inclusive, or nil when from > to. Spans longer than
// MaxTableRows are rejected before anything is allocated.
func Range(from, to int) ([]int, error) {
	if from > to {
		return nil, nil
	}
	// to >= from, so the wrapped difference is the exact span.
	if uint64(to-from) >= MaxTableRows {
		return nil, tooManyRows()
	}

	ns := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		ns = append(ns, n)
	}
	return ns, nil
}

// Table computes Factorial for every element of ns. The inputs are split into
// at most workers contiguous chunks (workers <= 0 means GOMAXPROCS) that run
// concurrently; inside a chunk, a row that follows its predecessor (n after
// n-1) is derived as (n-1)! * n instead of being recomputed. Entries keep the
// order of ns. The first failure cancels the remaining work and is returned.
func Table(ctx context.Context, ns []int, workers int) ([]Entry, error) {
	if len(ns) > MaxTableRows {
		return nil, tooManyRows()
	}
	if len(ns) == 0 {
		return []Entry{}, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := min(workers, len(ns))
	size := (len(ns) + chunks - 1) / chunks

	entries := make([]Entry, len(ns))
	g, ctx := errgroup.WithContext(ctx)

	for start := 0; start < len(ns); start += size {
		end := min(start+size, len(ns))
		g.Go(func() error {
			return fillChunk(ctx, ns, entries, start, end)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

func fillChunk(ctx context.Context, ns []int, entries []Entry, start, end int) error {
	var prev *big.Int
	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := ns[i]
		var v *big.Int
		if prev != nil && n > 0 && n-1 == ns[i-1] {
			v = new(big.Int).Mul(prev, big.NewInt(int64(n)))
		} else {
			var err error
			if v, err = Factorial(n); err != nil {
				return err
			}
		}

		entries[i] = Entry{N: n, Value: v}
		prev = v
	}
	return nil
}

func tooManyRows() error {
	return valueError(fmt.Sprintf("Table exceeds %d rows", MaxTableRows))
}
