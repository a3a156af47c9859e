package ndarray

// Option configures array construction.
type Option func(*arrayConfig)

type arrayConfig struct {
	dtype    DataType
	dtypeSet bool
	readonly bool
}

func resolveOptions(opts []Option) arrayConfig {
	cfg := arrayConfig{dtype: Float64}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDType fixes the element kind of the constructed array instead of
// the default (Float64) or the kind inferred from the input data.
func WithDType(dt DataType) Option {
	return func(cfg *arrayConfig) {
		cfg.dtype = dt
		cfg.dtypeSet = true
	}
}

// AsReadOnly marks the constructed array read-only: Set and every other
// write path reject it with ErrInvalidState. Views inherit the flag.
func AsReadOnly() Option {
	return func(cfg *arrayConfig) {
		cfg.readonly = true
	}
}
