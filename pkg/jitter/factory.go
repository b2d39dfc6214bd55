package jitter

// Factory holds a shared Buffer configuration so a media pipeline that
// spins up one Buffer per call/stream doesn't have to repeat the depth,
// sample rate, and Options on every construction.
type Factory struct {
	nominalDepthMs int64
	sampleRateHz   int64
	opts           []Option
}

// NewFactory captures the nominal depth, sample rate, and construction
// options every Buffer it creates should share.
func NewFactory(nominalDepthMs, sampleRateHz int64, opts ...Option) *Factory {
	return &Factory{
		nominalDepthMs: nominalDepthMs,
		sampleRateHz:   sampleRateHz,
		opts:           opts,
	}
}

// NewBuffer creates a Buffer using the factory's shared configuration.
func (f *Factory) NewBuffer() *Buffer {
	return NewBuffer(f.nominalDepthMs, f.sampleRateHz, f.opts...)
}
