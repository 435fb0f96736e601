package native

import (
	"math"

	"github.com/zachlewis/colorconfig/internal/core/domain"
)

// transform is a compiled color operation on RGB triples. Alpha and extra
// channels are carried through untouched by the processor layer.
type transform interface {
	apply(rgb [3]float64) [3]float64
	// inverted returns the inverse operation, or an error when the
	// operation is not invertible.
	inverted() (transform, error)
	// linear reports whether the operation is an affine map on RGB.
	linear() bool
}

// identityTransform is the empty chain.
type identityTransform struct{}

func (identityTransform) apply(rgb [3]float64) [3]float64 { return rgb }
func (identityTransform) inverted() (transform, error)    { return identityTransform{}, nil }
func (identityTransform) linear() bool                    { return true }

// chainTransform applies its members in order.
type chainTransform []transform

func (c chainTransform) apply(rgb [3]float64) [3]float64 {
	for _, t := range c {
		rgb = t.apply(rgb)
	}
	return rgb
}

func (c chainTransform) inverted() (transform, error) {
	inv := make(chainTransform, 0, len(c))
	for i := len(c) - 1; i >= 0; i-- {
		ti, err := c[i].inverted()
		if err != nil {
			return nil, err
		}
		inv = append(inv, ti)
	}
	return inv, nil
}

func (c chainTransform) linear() bool {
	for _, t := range c {
		if !t.linear() {
			return false
		}
	}
	return true
}

// matrixTransform is a row-major 4x4 matrix applied to (r, g, b, 1).
type matrixTransform struct {
	m [16]float64
}

func newMatrixTransform3x3(m3 [9]float64, offset [3]float64) matrixTransform {
	return matrixTransform{m: [16]float64{
		m3[0], m3[1], m3[2], offset[0],
		m3[3], m3[4], m3[5], offset[1],
		m3[6], m3[7], m3[8], offset[2],
		0, 0, 0, 1,
	}}
}

func (t matrixTransform) apply(rgb [3]float64) [3]float64 {
	m := t.m
	return [3]float64{
		m[0]*rgb[0] + m[1]*rgb[1] + m[2]*rgb[2] + m[3],
		m[4]*rgb[0] + m[5]*rgb[1] + m[6]*rgb[2] + m[7],
		m[8]*rgb[0] + m[9]*rgb[1] + m[10]*rgb[2] + m[11],
	}
}

func (t matrixTransform) inverted() (transform, error) {
	inv, ok := invert4x4(t.m)
	if !ok {
		return nil, annotate(domain.ErrProcessorConstruction, "reason", "matrix is singular")
	}
	return matrixTransform{m: inv}, nil
}

func (t matrixTransform) linear() bool { return true }

// invert4x4 inverts a row-major 4x4 matrix by Gauss-Jordan elimination with
// partial pivoting.
func invert4x4(m [16]float64) ([16]float64, bool) {
	var a, inv [16]float64
	copy(a[:], m[:])
	inv = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

	for col := 0; col < 4; col++ {
		pivot := col
		for r := col + 1; r < 4; r++ {
			if math.Abs(a[r*4+col]) > math.Abs(a[pivot*4+col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot*4+col]) < 1e-12 {
			return inv, false
		}
		if pivot != col {
			for k := 0; k < 4; k++ {
				a[col*4+k], a[pivot*4+k] = a[pivot*4+k], a[col*4+k]
				inv[col*4+k], inv[pivot*4+k] = inv[pivot*4+k], inv[col*4+k]
			}
		}
		p := a[col*4+col]
		for k := 0; k < 4; k++ {
			a[col*4+k] /= p
			inv[col*4+k] /= p
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			f := a[r*4+col]
			for k := 0; k < 4; k++ {
				a[r*4+k] -= f * a[col*4+k]
				inv[r*4+k] -= f * inv[col*4+k]
			}
		}
	}
	return inv, true
}

// exponentTransform is a per-channel power function.
type exponentTransform struct {
	value  float64
	mirror bool // sign-preserving pow on negatives; otherwise pass through
}

func (t exponentTransform) apply(rgb [3]float64) [3]float64 {
	for i, v := range rgb {
		rgb[i] = t.pow(v)
	}
	return rgb
}

func (t exponentTransform) pow(v float64) float64 {
	if v < 0 {
		if t.mirror {
			return -math.Pow(-v, t.value)
		}
		return v
	}
	return math.Pow(v, t.value)
}

func (t exponentTransform) inverted() (transform, error) {
	if t.value == 0 {
		return nil, annotate(domain.ErrProcessorConstruction, "reason", "zero exponent is not invertible")
	}
	return exponentTransform{value: 1 / t.value, mirror: t.mirror}, nil
}

func (t exponentTransform) linear() bool { return t.value == 1 }

// monCurveTransform is a gamma curve with a linear segment near black, the
// sRGB family of transfer functions. The break point and linear slope are
// derived from gamma and offset so the two segments meet tangentially.
//
// decode == true maps encoded values to linear; decode == false is the
// inverse, linear to encoded.
type monCurveTransform struct {
	gamma  float64
	offset float64
	decode bool
}

// segments returns the encoded-domain break point and the linear segment
// slope s, with linear = encoded/s below the break.
func (t monCurveTransform) segments() (breakEnc, slope float64) {
	g, a := t.gamma, t.offset
	if a <= 0 || g <= 1 {
		return 0, 1
	}
	breakEnc = a / (g - 1)
	linAtBreak := math.Pow((breakEnc+a)/(1+a), g)
	slope = breakEnc / linAtBreak
	return breakEnc, slope
}

func (t monCurveTransform) apply(rgb [3]float64) [3]float64 {
	breakEnc, slope := t.segments()
	for i, v := range rgb {
		if t.decode {
			rgb[i] = monCurveDecode(v, t.gamma, t.offset, breakEnc, slope)
		} else {
			rgb[i] = monCurveEncode(v, t.gamma, t.offset, breakEnc, slope)
		}
	}
	return rgb
}

func monCurveDecode(v, g, a, breakEnc, slope float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v <= breakEnc {
		return sign * v / slope
	}
	return sign * math.Pow((v+a)/(1+a), g)
}

func monCurveEncode(v, g, a, breakEnc, slope float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	breakLin := breakEnc / slope
	if v <= breakLin {
		return sign * v * slope
	}
	return sign * ((1+a)*math.Pow(v, 1/g) - a)
}

func (t monCurveTransform) inverted() (transform, error) {
	return monCurveTransform{gamma: t.gamma, offset: t.offset, decode: !t.decode}, nil
}

func (t monCurveTransform) linear() bool { return false }

// camLogTransform is a camera log curve: a logarithmic segment above the
// break point with a linear segment spliced below it. The forward direction
// maps scene-linear values to the log encoding.
type camLogTransform struct {
	base          float64
	logSideSlope  float64
	logSideOffset float64
	linSideSlope  float64
	linSideOffset float64
	linSideBreak  float64

	// Derived at construction so the two segments meet at the break.
	linearSlope  float64
	linearOffset float64
	logSideBreak float64

	decode bool
}

// newCamLogTransform validates the curve parameters and derives the linear
// segment. When linearSlope is nil the slope is the tangent of the log
// segment at the break, which keeps the splice smooth.
func newCamLogTransform(base, logSlope, logOffset, linSlope, linOffset, breakPt float64, linearSlope *float64) (transform, error) {
	if base <= 0 || base == 1 || logSlope == 0 || linSlope == 0 {
		return nil, annotate(domain.ErrProcessorConstruction, "reason", "degenerate log camera transform")
	}
	linAtBreak := linSlope*breakPt + linOffset
	if linAtBreak <= 0 {
		return nil, annotate(domain.ErrProcessorConstruction, "reason", "log camera break point is not above zero")
	}
	t := camLogTransform{
		base:          base,
		logSideSlope:  logSlope,
		logSideOffset: logOffset,
		linSideSlope:  linSlope,
		linSideOffset: linOffset,
		linSideBreak:  breakPt,
	}
	t.logSideBreak = logSlope*math.Log(linAtBreak)/math.Log(base) + logOffset
	if linearSlope != nil {
		t.linearSlope = *linearSlope
	} else {
		t.linearSlope = logSlope * linSlope / (linAtBreak * math.Log(base))
	}
	if t.linearSlope == 0 {
		return nil, annotate(domain.ErrProcessorConstruction, "reason", "log camera linear segment has zero slope")
	}
	t.linearOffset = t.logSideBreak - t.linearSlope*breakPt
	return t, nil
}

func (t camLogTransform) apply(rgb [3]float64) [3]float64 {
	for i, v := range rgb {
		if t.decode {
			rgb[i] = t.toLinear(v)
		} else {
			rgb[i] = t.toLog(v)
		}
	}
	return rgb
}

func (t camLogTransform) toLog(v float64) float64 {
	if v <= t.linSideBreak {
		return t.linearSlope*v + t.linearOffset
	}
	return t.logSideSlope*math.Log(t.linSideSlope*v+t.linSideOffset)/math.Log(t.base) + t.logSideOffset
}

func (t camLogTransform) toLinear(v float64) float64 {
	if v <= t.logSideBreak {
		return (v - t.linearOffset) / t.linearSlope
	}
	return (math.Pow(t.base, (v-t.logSideOffset)/t.logSideSlope) - t.linSideOffset) / t.linSideSlope
}

func (t camLogTransform) inverted() (transform, error) {
	t.decode = !t.decode
	return t, nil
}

func (t camLogTransform) linear() bool { return false }

// rangeTransform is an affine scale and offset mapping [minIn, maxIn] onto
// [minOut, maxOut], without clamping. The narrow/full range legalization
// named transforms compile to this.
type rangeTransform struct {
	scale  float64
	offset float64
}

func newRangeTransform(minIn, maxIn, minOut, maxOut float64) (rangeTransform, error) {
	if maxIn == minIn {
		return rangeTransform{}, annotate(domain.ErrProcessorConstruction, "reason", "degenerate range transform")
	}
	scale := (maxOut - minOut) / (maxIn - minIn)
	return rangeTransform{scale: scale, offset: minOut - scale*minIn}, nil
}

func (t rangeTransform) apply(rgb [3]float64) [3]float64 {
	for i, v := range rgb {
		rgb[i] = v*t.scale + t.offset
	}
	return rgb
}

func (t rangeTransform) inverted() (transform, error) {
	if t.scale == 0 {
		return nil, annotate(domain.ErrProcessorConstruction, "reason", "range transform with zero scale")
	}
	return rangeTransform{scale: 1 / t.scale, offset: -t.offset / t.scale}, nil
}

func (t rangeTransform) linear() bool { return true }

// pqTransform is the SMPTE ST 2084 perceptual quantizer. encode maps linear
// luminance (1.0 == 100 nits) to PQ signal.
type pqTransform struct {
	encode bool
}

const (
	pqM1 = 2610.0 / 16384.0
	pqM2 = 2523.0 / 4096.0 * 128.0
	pqC1 = 3424.0 / 4096.0
	pqC2 = 2413.0 / 4096.0 * 32.0
	pqC3 = 2392.0 / 4096.0 * 32.0

	// Linear 1.0 corresponds to 100 nits on a 10000 nit PQ signal.
	pqScale = 100.0 / 10000.0
)

func (t pqTransform) apply(rgb [3]float64) [3]float64 {
	for i, v := range rgb {
		if t.encode {
			rgb[i] = pqEncode(v)
		} else {
			rgb[i] = pqDecode(v)
		}
	}
	return rgb
}

func pqEncode(v float64) float64 {
	y := math.Max(v*pqScale, 0)
	ym := math.Pow(y, pqM1)
	return math.Pow((pqC1+pqC2*ym)/(1+pqC3*ym), pqM2)
}

func pqDecode(v float64) float64 {
	e := math.Pow(math.Max(v, 0), 1/pqM2)
	num := math.Max(e-pqC1, 0)
	den := pqC2 - pqC3*e
	if den <= 0 {
		return 0
	}
	return math.Pow(num/den, 1/pqM1) / pqScale
}

func (t pqTransform) inverted() (transform, error) {
	return pqTransform{encode: !t.encode}, nil
}

func (t pqTransform) linear() bool { return false }
