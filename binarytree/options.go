package binarytree

import "go.uber.org/zap"

type Options struct {
	Log             *zap.Logger
	InitialCapacity int
}

type Option func(*Options)

// WithLogger enables debug tracing of construction. The default is a
// nop logger; tracing is never load bearing for correctness.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// WithInitialCapacity preallocates room for n nodes, equivalent to an
// immediate EnsureUnusedCapacity(n).
func WithInitialCapacity(n int) Option {
	return func(o *Options) {
		o.InitialCapacity = n
	}
}
