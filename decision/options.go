package decision

import "go.uber.org/zap"

// Option configures Build and Cache.
type Option func(*Options)

// Options holds the knobs shared by Build and Cache.
type Options struct {
	// Logger receives progress at debug level. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
