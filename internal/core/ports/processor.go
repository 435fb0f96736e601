package ports

// Processor is an opaque, reusable capability that applies one specific
// color transformation to packed float pixel data. Implementations must be
// safe for concurrent use by multiple callers.
//
//go:generate mockgen -source=processor.go -destination=mocks/mock_processor.go -package=mocks
type Processor interface {
	// IsNoOp reports whether the transform is an identity.
	IsNoOp() bool

	// Apply transforms data in place. The buffer holds width*height pixels
	// of nchannels interleaved float32 components; channels beyond the
	// third are passed through untouched.
	Apply(data []float32, width, height, nchannels int)
}
