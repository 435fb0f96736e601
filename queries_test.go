package colorconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colorconfig "github.com/zachlewis/colorconfig"
	"github.com/zachlewis/colorconfig/internal/adapters/native"
)

func TestColorSpaceInventory(t *testing.T) {
	c := newDefaultConfig(t)

	assert.Equal(t, []string{
		"ACES2065-1",
		"ACEScg",
		"Linear Rec.709 (sRGB)",
		"sRGB - Texture",
		"Rec709",
		"data",
		"CIE-XYZ-D65",
		"sRGB - Display",
	}, c.ColorSpaceNames())

	assert.Equal(t, 8, c.NumColorSpaces())
	assert.Equal(t, "ACEScg", c.ColorSpaceNameByIndex(1))
	assert.Equal(t, "", c.ColorSpaceNameByIndex(-1))
	assert.Equal(t, "", c.ColorSpaceNameByIndex(8))
}

func TestColorSpaceIndex(t *testing.T) {
	c := newDefaultConfig(t)

	assert.Equal(t, 1, c.ColorSpaceIndex("acescg"))
	// Not an inventoried name, but equivalent to one.
	assert.Equal(t, 1, c.ColorSpaceIndex("lin_ap1_scene"))
	assert.Equal(t, -1, c.ColorSpaceIndex("mystery"))
}

func TestAliases(t *testing.T) {
	c := newDefaultConfig(t)

	assert.Equal(t, []string{"aces2065_1", "aces", "lin_ap0"}, c.Aliases("ACES2065-1"))
	assert.Nil(t, c.Aliases("mystery"))
}

func TestRoles(t *testing.T) {
	c := newDefaultConfig(t)

	assert.ElementsMatch(t, []string{
		"aces_interchange",
		"cie_xyz_d65_interchange",
		"scene_linear",
		"color_picking",
		"texture_paint",
		"default",
	}, c.Roles())
}

func TestColorSpaceNameByRole(t *testing.T) {
	c := newDefaultConfig(t)

	tests := []struct {
		role string
		want string
	}{
		{"scene_linear", "ACEScg"},
		{"linear", "ACEScg"},
		{"RGB", "ACEScg"},
		{"default", "data"},
		{"srgb", "sRGB - Texture"},
		{"color_picking", "sRGB - Texture"},
		{"compositing_log", ""},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ColorSpaceNameByRole(tt.role))
		})
	}
}

func TestColorSpaceNameByRoleDegraded(t *testing.T) {
	c := newDegradedConfig(t)

	assert.Equal(t, "linear", c.ColorSpaceNameByRole("linear"))
	assert.Equal(t, "linear", c.ColorSpaceNameByRole("scene_linear"))
	assert.Equal(t, "", c.ColorSpaceNameByRole("srgb"))
}

func TestDisplaysAndViews(t *testing.T) {
	c := newDefaultConfig(t)

	assert.Equal(t, []string{"sRGB"}, c.Displays())
	assert.Equal(t, "sRGB", c.DefaultDisplay())
	assert.Equal(t, []string{"Standard", "Raw"}, c.Views(""))
	assert.Equal(t, "Standard", c.DefaultView(""))
	assert.Equal(t, "sRGB - Display", c.DisplayViewColorSpaceName("sRGB", "Standard"))
	assert.Equal(t, "data", c.DisplayViewColorSpaceName("sRGB", "Raw"))
	assert.Equal(t, "", c.DisplayViewLooks("sRGB", "Standard"))
}

func TestNamedTransforms(t *testing.T) {
	c := newDefaultConfig(t)
	assert.Empty(t, c.NamedTransforms())

	i, err := colorconfig.New(native.SourceInterop)
	require.NoError(t, err)
	assert.Contains(t, i.NamedTransforms(), "full_to_narrow_range")
	assert.Contains(t, i.NamedTransforms(), "narrow_to_full_range")
	assert.Empty(t, i.NamedTransformAliases("full_to_narrow_range"))
}

const studioConfigYAML = `ocio_profile_version: 2

name: studio

roles:
  scene_linear: lin

looks:
  - !<Look>
    name: shot_grade
    process_space: lin
    transform: !<ExponentTransform> {value: 1.1, style: pass_thru}

colorspaces:
  - !<ColorSpace>
    name: lin
    encoding: scene-linear

named_transforms:
  - !<NamedTransform>
    name: legalize
    aliases: [full_to_legal]
    transform: !<RangeTransform> {min_in_value: 0, max_in_value: 1, min_out_value: 0.0625, max_out_value: 0.9189, style: noClamp}
`

func TestLooksAndNamedTransformAliases(t *testing.T) {
	c, err := colorconfig.New(studioConfigYAML, colorconfig.WithoutBuiltins())
	require.NoError(t, err)

	assert.Equal(t, []string{"shot_grade"}, c.Looks())
	assert.Equal(t, []string{"legalize"}, c.NamedTransforms())
	assert.Equal(t, []string{"full_to_legal"}, c.NamedTransformAliases("legalize"))
	assert.Equal(t, []string{"full_to_legal"}, c.NamedTransformAliases("FULL_TO_LEGAL"))
	assert.Nil(t, c.NamedTransformAliases("mystery"))

	byAlias := c.CreateNamedTransform("full_to_legal", false, "", "")
	require.NotNil(t, byAlias)
	assert.False(t, c.HasError())

	degraded := newDegradedConfig(t)
	assert.Nil(t, degraded.Looks())
	assert.Nil(t, degraded.NamedTransforms())
}

func TestIsColorSpaceLinear(t *testing.T) {
	c := newDefaultConfig(t)

	tests := []struct {
		name string
		want bool
	}{
		{"ACEScg", true},
		{"ACES2065-1", true},
		{"sRGB - Texture", false},
		{"srgb_tx", false},
		// Unknown to the configuration; name patterns take over.
		{"lin_mycam", true},
		{"mycam_linear", true},
		{"linear", true},
		{"footage", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsColorSpaceLinear(tt.name))
		})
	}
}

func TestParseColorSpaceFromString(t *testing.T) {
	c := newDefaultConfig(t)

	tests := []struct {
		in   string
		want string
	}{
		{"shot_aces2065-1_acescg_v2.exr", "ACEScg"},
		{"plate_rec709.exr", "Rec709"},
		{"acescg_to_rec709.mov", "Rec709"},
		{"texture.png", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ParseColorSpaceFromString(tt.in))
		})
	}
}

func TestParseColorSpaceFromStringDegraded(t *testing.T) {
	c := newDegradedConfig(t)

	// rgb, sRGB, and lin_srgb all end at the same position; the longest
	// name wins.
	assert.Equal(t, "lin_srgb", c.ParseColorSpaceFromString("/x/shot_lin_srgb.exr"))
}

func TestColorSpaceFromFilePath(t *testing.T) {
	c := newDefaultConfig(t)

	// Only the catch-all rule exists, so every path lands on it.
	assert.Equal(t, "default", c.ColorSpaceFromFilePath("/x/plate_rec709.exr"))
	assert.True(t, c.FilePathOnlyMatchesDefaultRule("/x/plate_rec709.exr"))

	assert.Equal(t, "Rec709",
		c.ColorSpaceFromFilePathOrDefault("/x/plate_rec709.exr", "fallback", true))
	assert.Equal(t, "fallback",
		c.ColorSpaceFromFilePathOrDefault("/x/plate_rec709.exr", "fallback", false))
	assert.Equal(t, "fallback",
		c.ColorSpaceFromFilePathOrDefault("/x/untagged.exr", "fallback", true))
}

func TestColorSpaceFromFilePathDegraded(t *testing.T) {
	c := newDegradedConfig(t)

	assert.True(t, c.FilePathOnlyMatchesDefaultRule("/x/anything.exr"))
	assert.Equal(t, "lin_srgb", c.ColorSpaceFromFilePath("/x/shot_lin_srgb.exr"))
}
