package colorconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zachlewis/colorconfig/internal/adapters/native"
	"github.com/zachlewis/colorconfig/internal/core/ports/mocks"
)

func newDefault(t *testing.T) *Config {
	t.Helper()
	c, err := New(native.SourceDefault)
	require.NoError(t, err)
	require.False(t, c.HasError())
	return c
}

func TestNewDefault(t *testing.T) {
	c := newDefault(t)

	assert.Equal(t, "default-reference", c.ConfigName())
	assert.Equal(t, 8, c.NumColorSpaces())
	assert.Equal(t, "sRGB", c.DefaultDisplay())
}

func TestNewMissingFileDegrades(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "missing.ocio"))
	require.Error(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "", c.ConfigName())
	assert.True(t, c.HasError())
	assert.NotEmpty(t, c.Error(true))
	assert.False(t, c.HasError())

	// The synthesized inventory keeps name-based queries alive.
	assert.Equal(t, 10, c.NumColorSpaces())
	assert.Contains(t, c.ColorSpaceNames(), "srgb_rec709_scene")
}

func TestErrorSwap(t *testing.T) {
	c := newDefault(t)

	require.Nil(t, c.CreateColorProcessor("nope", "alsonope", "", ""))
	require.True(t, c.HasError())

	msg := c.Error(false)
	assert.NotEmpty(t, msg)
	assert.True(t, c.HasError())

	assert.Equal(t, msg, c.Error(true))
	assert.False(t, c.HasError())
	assert.Empty(t, c.Error(false))
}

func TestCreateColorProcessorCached(t *testing.T) {
	c := newDefault(t)

	p1 := c.CreateColorProcessor("ACEScg", "sRGB - Texture", "", "")
	require.NotNil(t, p1)
	assert.False(t, p1.IsNoOp())

	p2 := c.CreateColorProcessor("ACEScg", "sRGB - Texture", "", "")
	require.NotNil(t, p2)

	assert.EqualValues(t, 1, c.procs.Created())
	assert.EqualValues(t, 2, c.procs.Requested())
	assert.Equal(t, 1, c.procs.Len())

	// Neutral gray survives the primary matrices, so the result is the
	// plain sRGB encoding of 0.18.
	data := []float32{0.18, 0.18, 0.18}
	p1.Apply(data, 1, 1, 3)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.4613, data[i], 1e-3)
	}
}

func TestCreateColorProcessorSameSpaceIsNoOp(t *testing.T) {
	c := newDefault(t)

	p := c.CreateColorProcessor("ACEScg", "lin_ap1", "", "")
	require.NotNil(t, p)
	assert.True(t, p.IsNoOp())
	assert.Equal(t, 1, c.procs.Len())
}

func TestCreateColorProcessorFailureNotCached(t *testing.T) {
	c := newDefault(t)

	require.Nil(t, c.CreateColorProcessor("nope", "ACEScg", "", ""))
	assert.True(t, c.HasError())
	assert.Equal(t, 0, c.procs.Len())
	assert.EqualValues(t, 0, c.procs.Created())

	// The failure is re-attempted, not replayed from the cache.
	require.Nil(t, c.CreateColorProcessor("nope", "ACEScg", "", ""))
	assert.EqualValues(t, 2, c.procs.Requested())
}

func TestCreateColorProcessorInteropBridge(t *testing.T) {
	c := newDefault(t)

	// lin_p3d65_scene is unknown to the active configuration and is
	// bridged through the interop identities configuration.
	p := c.CreateColorProcessor("lin_p3d65_scene", "ACEScg", "", "")
	require.NotNil(t, p)
	require.False(t, c.HasError())
	assert.False(t, p.IsNoOp())

	data := []float32{0.5, 0.5, 0.5}
	p.Apply(data, 1, 1, 3)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.5, data[i], 1e-4)
	}
}

func TestTransformContext(t *testing.T) {
	assert.Nil(t, transformContext("", ""))
	assert.Nil(t, transformContext("SHOT", ""))
	assert.Nil(t, transformContext("SHOT,SEQ", "010"))
	assert.Equal(t,
		map[string]string{"SHOT": "010", "SEQ": "fx"},
		transformContext("SHOT,SEQ", "010,fx"))
}

func TestContextParticipatesInCacheKey(t *testing.T) {
	c := newDefault(t)

	require.NotNil(t, c.CreateColorProcessor("ACEScg", "sRGB - Texture", "SHOT", "010"))
	require.NotNil(t, c.CreateColorProcessor("ACEScg", "sRGB - Texture", "SHOT", "020"))
	assert.Equal(t, 2, c.procs.Len())
	assert.EqualValues(t, 2, c.procs.Created())
}

func TestLookAndConversionKeysDisjoint(t *testing.T) {
	c := newDefault(t)

	require.NotNil(t, c.CreateColorProcessor("ACEScg", "sRGB - Texture", "", ""))
	require.NotNil(t, c.CreateLookTransform("", "ACEScg", "sRGB - Texture", false, "", ""))
	assert.Equal(t, 2, c.procs.Len())
}

func TestCreateLookTransformUnknownLook(t *testing.T) {
	c := newDefault(t)

	assert.Nil(t, c.CreateLookTransform("grade", "ACEScg", "sRGB - Texture", false, "", ""))
	assert.True(t, c.HasError())
	assert.Equal(t, 0, c.procs.Len())
}

const gradedConfigYAML = `ocio_profile_version: 2

name: graded

roles:
  scene_linear: lin

looks:
  - !<Look>
    name: grade
    process_space: lin
    transform: !<ExponentTransform> {value: 1.2, style: pass_thru}

colorspaces:
  - !<ColorSpace>
    name: lin
    encoding: scene-linear
`

func TestCreateLookTransform(t *testing.T) {
	c, err := New(gradedConfigYAML)
	require.NoError(t, err)

	fwd := c.CreateLookTransform("grade", "lin", "lin", false, "", "")
	require.NotNil(t, fwd)
	require.False(t, c.HasError())

	data := []float32{0.5, 0.5, 0.5}
	fwd.Apply(data, 1, 1, 3)
	assert.InDelta(t, 0.43528, data[0], 1e-4)

	inv := c.CreateLookTransform("grade", "lin", "lin", true, "", "")
	require.NotNil(t, inv)

	data = []float32{0.5, 0.5, 0.5}
	inv.Apply(data, 1, 1, 3)
	assert.InDelta(t, 0.56123, data[0], 1e-4)

	assert.Equal(t, 2, c.procs.Len())
}

func TestCreateDisplayTransformDefaults(t *testing.T) {
	c := newDefault(t)

	explicit := c.CreateDisplayTransform("sRGB", "Standard", "ACEScg", "", false, "", "")
	require.NotNil(t, explicit)

	// Empty and "default" selectors normalize onto the same cache entry.
	require.NotNil(t, c.CreateDisplayTransform("", "", "ACEScg", "", false, "", ""))
	require.NotNil(t, c.CreateDisplayTransform("default", "default", "ACEScg", "", false, "", ""))
	assert.Equal(t, 1, c.procs.Len())
	assert.EqualValues(t, 1, c.procs.Created())
}

func TestCreateDisplayTransformInverseRoundTrip(t *testing.T) {
	c := newDefault(t)

	fwd := c.CreateDisplayTransform("", "", "ACEScg", "", false, "", "")
	inv := c.CreateDisplayTransform("", "", "ACEScg", "", true, "", "")
	require.NotNil(t, fwd)
	require.NotNil(t, inv)
	assert.Equal(t, 2, c.procs.Len())

	data := []float32{0.18, 0.18, 0.18}
	fwd.Apply(data, 1, 1, 3)
	inv.Apply(data, 1, 1, 3)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.18, data[i], 1e-3)
	}
}

func TestCreateDisplayTransformInteropInput(t *testing.T) {
	c := newDefault(t)

	// lin_rec709_scene is unknown to the active configuration: the
	// pipeline runs from scene_linear with a bridging conversion in
	// front, which must agree with feeding the equivalent native space.
	bridged := c.CreateDisplayTransform("", "", "lin_rec709_scene", "", false, "", "")
	require.NotNil(t, bridged)
	require.False(t, c.HasError())

	direct := c.CreateDisplayTransform("", "", "Linear Rec.709 (sRGB)", "", false, "", "")
	require.NotNil(t, direct)

	a := []float32{0.18, 0.4, 0.7}
	b := []float32{0.18, 0.4, 0.7}
	bridged.Apply(a, 1, 1, 3)
	direct.Apply(b, 1, 1, 3)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, b[i], a[i], 1e-4)
	}
}

func TestCreateDisplayTransformUnknownDisplay(t *testing.T) {
	c := newDefault(t)

	assert.Nil(t, c.CreateDisplayTransform("Cinema", "Standard", "ACEScg", "", false, "", ""))
	assert.True(t, c.HasError())
}

func writeSpimtx(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scale.spimtx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCreateFileTransform(t *testing.T) {
	c := newDefault(t)
	path := writeSpimtx(t, "2 0 0 0\n0 2 0 0\n0 0 2 0\n")

	fwd := c.CreateFileTransform(path, false)
	require.NotNil(t, fwd)

	data := []float32{0.25, 0.5, 0.125, 1}
	fwd.Apply(data, 1, 1, 4)
	assert.InDelta(t, 0.5, data[0], 1e-6)
	assert.InDelta(t, 1.0, data[1], 1e-6)
	assert.InDelta(t, 0.25, data[2], 1e-6)
	assert.Equal(t, float32(1), data[3])

	inv := c.CreateFileTransform(path, true)
	require.NotNil(t, inv)

	data = []float32{0.25, 0.25, 0.25}
	inv.Apply(data, 1, 1, 3)
	assert.InDelta(t, 0.125, data[0], 1e-6)

	assert.Equal(t, 2, c.procs.Len())
}

func TestCreateFileTransformMissingFile(t *testing.T) {
	c := newDefault(t)

	assert.Nil(t, c.CreateFileTransform(filepath.Join(t.TempDir(), "nope.spimtx"), false))
	assert.True(t, c.HasError())
	assert.Equal(t, 0, c.procs.Len())
}

func TestCreateFileTransformDegraded(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "missing.ocio"))
	require.Error(t, err)
	path := writeSpimtx(t, "2 0 0 0\n0 2 0 0\n0 0 2 0\n")

	// File transforms need no color spaces, so the builtin configuration
	// stands in for the failed one.
	p := c.CreateFileTransform(path, false)
	require.NotNil(t, p)
	assert.False(t, c.HasError())

	data := []float32{0.25, 0.25, 0.25}
	p.Apply(data, 1, 1, 3)
	assert.InDelta(t, 0.5, data[0], 1e-6)
}

func TestCreateNamedTransform(t *testing.T) {
	c, err := New(native.SourceInterop)
	require.NoError(t, err)

	fwd := c.CreateNamedTransform("full_to_narrow_range", false, "", "")
	require.NotNil(t, fwd)

	data := []float32{0, 1, 0.5}
	fwd.Apply(data, 1, 1, 3)
	assert.InDelta(t, 0.062561, data[0], 1e-5)
	assert.InDelta(t, 0.918866, data[1], 1e-5)
	assert.InDelta(t, 0.490714, data[2], 1e-5)

	inv := c.CreateNamedTransform("full_to_narrow_range", true, "", "")
	require.NotNil(t, inv)

	data = []float32{0.5, 0.5, 0.5}
	inv.Apply(data, 1, 1, 3)
	assert.InDelta(t, 0.510846, data[0], 1e-5)

	assert.Equal(t, 2, c.procs.Len())

	assert.Nil(t, c.CreateNamedTransform("shuffle", false, "", ""))
	assert.True(t, c.HasError())
}

func TestCreateMatrixTransform(t *testing.T) {
	c := newDefault(t)
	m := [16]float64{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}

	p := c.CreateMatrixTransform(m, false)
	require.NotNil(t, p)

	data := []float32{0.25, 0.25, 0.25}
	p.Apply(data, 1, 1, 3)
	assert.InDelta(t, 0.5, data[0], 1e-6)

	inv := c.CreateMatrixTransform(m, true)
	require.NotNil(t, inv)

	data = []float32{0.25, 0.25, 0.25}
	inv.Apply(data, 1, 1, 3)
	assert.InDelta(t, 0.125, data[0], 1e-6)

	// Matrix processors bypass the cache.
	assert.Equal(t, 0, c.procs.Len())
}

func TestCreateMatrixTransformSingular(t *testing.T) {
	c := newDefault(t)

	assert.Nil(t, c.CreateMatrixTransform([16]float64{}, true))
	assert.True(t, c.HasError())
}

func TestNewWithCustomEngine(t *testing.T) {
	ctrl := gomock.NewController(t)

	cs := mocks.NewMockColorSpace(ctrl)
	cs.EXPECT().Name().Return("studio_lin").AnyTimes()
	cs.EXPECT().IsData().Return(false).AnyTimes()

	cfg := mocks.NewMockConfig(ctrl)
	cfg.EXPECT().Name().Return("studio").AnyTimes()
	cfg.EXPECT().NumColorSpaces().Return(1).AnyTimes()
	cfg.EXPECT().ColorSpaceNameByIndex(0).Return("studio_lin").AnyTimes()
	cfg.EXPECT().ColorSpace(gomock.Any()).Return(cs, true).AnyTimes()

	engine := mocks.NewMockEngine(ctrl)
	engine.EXPECT().LoadConfig("studio://main").Return(cfg, nil)

	c, err := New("studio://main", WithEngine(engine), WithoutBuiltins())
	require.NoError(t, err)

	assert.Equal(t, "studio", c.ConfigName())
	assert.Equal(t, []string{"studio_lin"}, c.ColorSpaceNames())
	assert.Equal(t, "studio_lin", c.Resolve("anything"))
}
