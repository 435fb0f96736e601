package native

import "github.com/zachlewis/colorconfig/internal/core/ports"

// NewMatrixProcessor builds a processor applying a row-major 4x4 matrix to
// RGB triples, with the fourth column treated as an affine offset. When
// inverse is set the matrix is inverted at construction; singular matrices
// are rejected.
func NewMatrixProcessor(m [16]float64, inverse bool) (ports.Processor, error) {
	var tx transform = matrixTransform{m: m}
	if inverse {
		inv, err := tx.inverted()
		if err != nil {
			return nil, err
		}
		tx = inv
	}
	return newProcessor(tx), nil
}

// processor wraps a compiled transform chain as a ports.Processor. The
// compiled transforms are immutable, so a processor is safe for concurrent
// Apply calls.
type processor struct {
	tx   transform
	noop bool
}

func newProcessor(tx transform) *processor {
	return &processor{tx: tx, noop: isIdentityChain(tx)}
}

func isIdentityChain(tx transform) bool {
	switch t := tx.(type) {
	case identityTransform:
		return true
	case chainTransform:
		for _, c := range t {
			if !isIdentityChain(c) {
				return false
			}
		}
		return true
	}
	return false
}

func (p *processor) IsNoOp() bool { return p.noop }

func (p *processor) Apply(data []float32, width, height, nchannels int) {
	if p.noop || nchannels < 3 {
		return
	}
	n := width * height * nchannels
	if n > len(data) {
		n = len(data)
	}
	for i := 0; i+2 < n; i += nchannels {
		rgb := p.tx.apply([3]float64{
			float64(data[i]),
			float64(data[i+1]),
			float64(data[i+2]),
		})
		data[i] = float32(rgb[0])
		data[i+1] = float32(rgb[1])
		data[i+2] = float32(rgb[2])
	}
}
