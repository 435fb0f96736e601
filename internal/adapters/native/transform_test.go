package native

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zachlewis/colorconfig/internal/core/domain"
)

func TestMonCurveMatchesSRGBReference(t *testing.T) {
	// gamma 2.4 / offset 0.055 is the IEC 61966-2-1 sRGB curve; compare
	// the decode against go-colorful's reference implementation.
	curve := monCurveTransform{gamma: 2.4, offset: 0.055, decode: true}

	for _, enc := range []float64{0, 0.001, 0.04, 0.18, 0.5, 0.7354, 1} {
		wantR, _, _ := colorful.Color{R: enc, G: enc, B: enc}.LinearRgb()
		got := curve.apply([3]float64{enc, enc, enc})
		assert.InDelta(t, wantR, got[0], 1e-4, "encoded %v", enc)
	}
}

func TestMonCurveRoundTrip(t *testing.T) {
	decode := monCurveTransform{gamma: 2.4, offset: 0.055, decode: true}
	encode, err := decode.inverted()
	require.NoError(t, err)

	for _, v := range []float64{-0.25, 0, 0.0025, 0.18, 0.5, 1, 2} {
		rgb := encode.apply(decode.apply([3]float64{v, v, v}))
		assert.InDelta(t, v, rgb[0], 1e-9, "value %v", v)
	}
}

func TestExponentTransform(t *testing.T) {
	g22 := exponentTransform{value: 2.2}
	got := g22.apply([3]float64{0.5, 1, 0})
	assert.InDelta(t, math.Pow(0.5, 2.2), got[0], 1e-12)
	assert.Equal(t, 1.0, got[1])
	assert.Equal(t, 0.0, got[2])

	// pass_thru style leaves negatives alone; mirror style reflects them.
	assert.Equal(t, -0.5, g22.apply([3]float64{-0.5, 0, 0})[0])
	mirror := exponentTransform{value: 2.2, mirror: true}
	assert.InDelta(t, -math.Pow(0.5, 2.2), mirror.apply([3]float64{-0.5, 0, 0})[0], 1e-12)
}

func TestMatrixTransformInverseRoundTrip(t *testing.T) {
	rec709ToAP0 := matrixTransform{m: [16]float64{
		0.439632981919491, 0.382988698151554, 0.177378319928955, 0,
		0.0897764429588424, 0.813439428748981, 0.0967841282921771, 0,
		0.0175411703831727, 0.111546553302387, 0.87091227631444, 0,
		0, 0, 0, 1,
	}}
	inv, err := rec709ToAP0.inverted()
	require.NoError(t, err)

	in := [3]float64{0.18, 0.5, 0.9}
	out := inv.apply(rec709ToAP0.apply(in))
	for i := range in {
		assert.InDelta(t, in[i], out[i], 1e-12)
	}
}

func TestMatrixTransformSingular(t *testing.T) {
	singular := matrixTransform{} // all zeros
	_, err := singular.inverted()
	assert.Error(t, err)
}

func TestMatrixTransformOffsetColumn(t *testing.T) {
	shift := newMatrixTransform3x3(
		[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		[3]float64{0.1, 0.2, 0.3},
	)
	got := shift.apply([3]float64{0, 0, 0})
	assert.Equal(t, [3]float64{0.1, 0.2, 0.3}, got)

	inv, err := shift.inverted()
	require.NoError(t, err)
	back := inv.apply(got)
	for i := range back {
		assert.InDelta(t, 0, back[i], 1e-12)
	}
}

func TestRangeTransform(t *testing.T) {
	legal, err := newRangeTransform(0, 1, 0.062561094819159, 0.918866080156403)
	require.NoError(t, err)

	got := legal.apply([3]float64{0, 1, 0.5})
	assert.InDelta(t, 0.062561094819159, got[0], 1e-12)
	assert.InDelta(t, 0.918866080156403, got[1], 1e-12)

	inv, err := legal.inverted()
	require.NoError(t, err)
	back := inv.apply(got)
	assert.InDelta(t, 0.0, back[0], 1e-12)
	assert.InDelta(t, 1.0, back[1], 1e-12)
	assert.InDelta(t, 0.5, back[2], 1e-12)
}

func TestCamLogTransformDaVinciIntermediate(t *testing.T) {
	// DaVinci Intermediate curve constants; 18% gray encodes to 0.336043.
	slope := 10.44426855
	curve, err := newCamLogTransform(2, 0.07329248, 0.51304736, 1, 0.0075, 0.00262409, &slope)
	require.NoError(t, err)

	got := curve.apply([3]float64{0.18, 0.18, 0.18})
	assert.InDelta(t, 0.336043, got[0], 1e-4)

	// Below the break the curve is the declared linear segment.
	assert.InDelta(t, slope*0.001, curve.apply([3]float64{0.001, 0, 0})[0], 1e-5)
}

func TestCamLogTransformRoundTrip(t *testing.T) {
	// DJI D-Log parameters leave linear_slope unset, so the linear segment
	// is derived from the log tangent at the break.
	curve, err := newCamLogTransform(10, 0.256662970719888, 0.58455504907396, 0.9892, 0.0108, 0.00758078675, nil)
	require.NoError(t, err)
	decode, err := curve.inverted()
	require.NoError(t, err)

	for _, v := range []float64{-0.01, 0, 0.002, 0.00758078675, 0.18, 1, 4} {
		rgb := decode.apply(curve.apply([3]float64{v, v, v}))
		assert.InDelta(t, v, rgb[0], 1e-9, "value %v", v)
	}
}

func TestCamLogTransformDegenerate(t *testing.T) {
	_, err := newCamLogTransform(1, 1, 0, 1, 0, 0.005, nil)
	assert.ErrorIs(t, err, domain.ErrProcessorConstruction)

	_, err = newCamLogTransform(2, 1, 0, 1, 0, -1, nil)
	assert.ErrorIs(t, err, domain.ErrProcessorConstruction)
}

func TestPQTransformRoundTrip(t *testing.T) {
	pq := pqTransform{encode: true}
	inv, err := pq.inverted()
	require.NoError(t, err)

	for _, v := range []float64{0, 0.01, 0.18, 1} {
		rgb := inv.apply(pq.apply([3]float64{v, v, v}))
		assert.InDelta(t, v, rgb[0], 1e-9, "value %v", v)
	}
}

func TestChainTransformInverseReversesOrder(t *testing.T) {
	chain := chainTransform{
		exponentTransform{value: 2},
		newMatrixTransform3x3([9]float64{2, 0, 0, 0, 2, 0, 0, 0, 2}, [3]float64{}),
	}
	inv, err := chain.inverted()
	require.NoError(t, err)

	in := [3]float64{0.3, 0.6, 0.9}
	out := inv.apply(chain.apply(in))
	for i := range in {
		assert.InDelta(t, in[i], out[i], 1e-12)
	}
}

func TestIsIdentityChain(t *testing.T) {
	assert.True(t, isIdentityChain(identityTransform{}))
	assert.True(t, isIdentityChain(chainTransform{identityTransform{}, identityTransform{}}))
	assert.False(t, isIdentityChain(exponentTransform{value: 2.2}))
	assert.False(t, isIdentityChain(chainTransform{identityTransform{}, exponentTransform{value: 2.2}}))
}

func TestParseSpimtx(t *testing.T) {
	text := "1 0 0 0\n0 1 0 6553.5\n0 0 1 0\n"
	tx, err := parseSpimtx(text, "offset.spimtx")
	require.NoError(t, err)

	got := tx.apply([3]float64{0, 0, 0})
	assert.InDelta(t, 0.0, got[0], 1e-9)
	assert.InDelta(t, 0.1, got[1], 1e-9, "offset column is scaled by 1/65535")
	assert.InDelta(t, 0.0, got[2], 1e-9)
}

func TestParseSpimtxMalformed(t *testing.T) {
	_, err := parseSpimtx("1 2 3", "short.spimtx")
	assert.Error(t, err)
}

func TestCompileFileSpimtx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grade.spimtx")
	require.NoError(t, os.WriteFile(path, []byte("2 0 0 0\n0 2 0 0\n0 0 2 0\n"), 0o644))

	cfg := &config{dir: dir}
	tx, err := cfg.compileFile("grade.spimtx")
	require.NoError(t, err)

	got := tx.apply([3]float64{0.25, 0.25, 0.25})
	assert.InDelta(t, 0.5, got[0], 1e-9)
}
