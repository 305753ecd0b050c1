// SPDX-License-Identifier: MIT

package cyclespace

import (
	"context"
	"fmt"
)

// DefaultRoundSize bounds how many worklist pairs one parallel round evaluates.
const DefaultRoundSize = 1 << 14

// Option configures Enumerate. Option constructors panic on meaningless input;
// Enumerate itself never panics.
type Option func(*options)

type options struct {
	ctx       context.Context
	workers   int
	maxCycles int // 0 = unbounded
	roundSize int
}

func defaultOptions() options {
	return options{
		ctx:       context.Background(),
		workers:   1,
		roundSize: DefaultRoundSize,
	}
}

// WithContext makes Enumerate stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("cyclespace: WithContext(nil)")
	}
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithWorkers evaluates worklist pairs on k goroutines. Results are identical
// for every k ≥ 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("cyclespace: WithWorkers(%d): need k ≥ 1", k))
	}
	return func(o *options) {
		o.workers = k
	}
}

// WithMaxCycles stops enumeration with ErrCycleLimit instead of recording a
// cycle beyond the m-th. The m cycles found so far are still returned.
func WithMaxCycles(m int) Option {
	if m < 1 {
		panic(fmt.Sprintf("cyclespace: WithMaxCycles(%d): need m ≥ 1", m))
	}
	return func(o *options) {
		o.maxCycles = m
	}
}

// WithRoundSize sets how many pairs a parallel round evaluates before merging.
func WithRoundSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("cyclespace: WithRoundSize(%d): need n ≥ 1", n))
	}
	return func(o *options) {
		o.roundSize = n
	}
}
