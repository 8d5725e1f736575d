package json

import ftime "github.com/viant/keycase/format/time"

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithNumberPolicy sets number policy
func WithNumberPolicy(policy NumberPolicy) Option {
	return optionFn(func(o *Options) { o.NumberPolicy = policy })
}

// WithDuplicateKeyPolicy sets duplicate key policy
func WithDuplicateKeyPolicy(policy DuplicateKeyPolicy) Option {
	return optionFn(func(o *Options) { o.DuplicateKeyPolicy = policy })
}

// WithTimeLayout sets Go time layout used to encode time.Time scalars
func WithTimeLayout(layout string) Option {
	return optionFn(func(o *Options) { o.TimeLayout = layout })
}

// WithDateFormat sets ISO style date format (i.e. yyyy-MM-dd) used to encode time.Time scalars
func WithDateFormat(dateFormat string) Option {
	return optionFn(func(o *Options) { o.TimeLayout = ftime.DateFormatToTimeLayout(dateFormat) })
}

func resolveOptions(opts []Option) *Options {
	result := &Options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(result)
	}
	return result
}
