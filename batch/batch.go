// Package batch applies xfloat operations across slices of DD values in
// parallel.
//
// Work is cut into fixed-size chunks and handed to a bounded errgroup. The
// chunking depends only on Options.ChunkSize, never on the number of
// workers, so reductions give the same answer however many workers run.
package batch

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/shabbyrobe/go-xfloat"
	"golang.org/x/sync/errgroup"
)

// ErrLengthMismatch is returned when slices passed together differ in length.
var ErrLengthMismatch = errors.New("batch: length mismatch")

const DefaultChunkSize = 4096

type Options struct {
	// Workers bounds the number of chunks processed at once. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int

	// ChunkSize is the number of elements per unit of work. Zero means
	// DefaultChunkSize.
	ChunkSize int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) chunkSize() int {
	if o.ChunkSize > 0 {
		return o.ChunkSize
	}
	return DefaultChunkSize
}

// forChunks calls fn once per chunk of [0, n), with the chunk's index.
func forChunks(ctx context.Context, opts Options, n int, fn func(chunk, start, end int)) error {
	size := opts.chunkSize()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for chunk, start := 0, 0; start < n; chunk, start = chunk+1, start+size {
		if gctx.Err() != nil {
			break
		}
		chunk, start, end := chunk, start, min(start+size, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(chunk, start, end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// The group's context is always done once Wait returns, so check the
	// caller's.
	return ctx.Err()
}

func numChunks(opts Options, n int) int {
	size := opts.chunkSize()
	return (n + size - 1) / size
}

// Apply1 stores fn(src[i]) in dst[i] for every i.
func Apply1(ctx context.Context, opts Options, dst, src []xfloat.DD, fn func(x xfloat.DD) xfloat.DD) error {
	if len(dst) != len(src) {
		return errors.Wrapf(ErrLengthMismatch, "dst has %d elements, src has %d", len(dst), len(src))
	}
	return forChunks(ctx, opts, len(src), func(_, start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src[i])
		}
	})
}

// Apply2 stores fn(a[i], b[i]) in dst[i] for every i.
func Apply2(ctx context.Context, opts Options, dst, a, b []xfloat.DD, fn func(x, y xfloat.DD) xfloat.DD) error {
	if len(dst) != len(a) || len(a) != len(b) {
		return errors.Wrapf(ErrLengthMismatch, "dst, a and b have %d, %d and %d elements", len(dst), len(a), len(b))
	}
	return forChunks(ctx, opts, len(a), func(_, start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(a[i], b[i])
		}
	})
}

// Sum adds every element of xs. Each chunk is summed in order and the chunk
// totals are then added in chunk order.
func Sum(ctx context.Context, opts Options, xs []xfloat.DD) (xfloat.DD, error) {
	partial := make([]xfloat.DD, numChunks(opts, len(xs)))
	err := forChunks(ctx, opts, len(xs), func(chunk, start, end int) {
		var s xfloat.DD
		for _, x := range xs[start:end] {
			s = s.Add(x)
		}
		partial[chunk] = s
	})
	if err != nil {
		return xfloat.DD{}, err
	}
	return sumInOrder(partial), nil
}

// Dot returns the sum of a[i]*b[i], reduced like Sum.
func Dot(ctx context.Context, opts Options, a, b []xfloat.DD) (xfloat.DD, error) {
	if len(a) != len(b) {
		return xfloat.DD{}, errors.Wrapf(ErrLengthMismatch, "a has %d elements, b has %d", len(a), len(b))
	}
	partial := make([]xfloat.DD, numChunks(opts, len(a)))
	err := forChunks(ctx, opts, len(a), func(chunk, start, end int) {
		var s xfloat.DD
		for i := start; i < end; i++ {
			s = s.Add(a[i].Mul(b[i]))
		}
		partial[chunk] = s
	})
	if err != nil {
		return xfloat.DD{}, err
	}
	return sumInOrder(partial), nil
}

func sumInOrder(xs []xfloat.DD) (s xfloat.DD) {
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}
