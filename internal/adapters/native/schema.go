package native

import (
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/zachlewis/colorconfig/internal/core/domain"
)

// profile is the on-disk structure of a configuration file: a subset of the
// OCIO v2 profile grammar covering everything the embedded configs and the
// test configs use.
type profile struct {
	Version              string                `yaml:"ocio_profile_version"`
	Name                 string                `yaml:"name"`
	Description          string                `yaml:"description"`
	Roles                map[string]string     `yaml:"roles"`
	FileRules            []fileRuleDTO         `yaml:"file_rules"`
	SharedViews          []viewDTO             `yaml:"shared_views"`
	Displays             displaysDTO           `yaml:"displays"`
	ActiveDisplays       []string              `yaml:"active_displays"`
	ActiveViews          []string              `yaml:"active_views"`
	DefaultViewTransform string                `yaml:"default_view_transform"`
	ViewTransforms       []viewTransformDTO    `yaml:"view_transforms"`
	Looks                []lookDTO             `yaml:"looks"`
	ColorSpaces          []colorSpaceDTO       `yaml:"colorspaces"`
	DisplayColorSpaces   []colorSpaceDTO       `yaml:"display_colorspaces"`
	NamedTransforms      []namedTransformDTO   `yaml:"named_transforms"`
}

type fileRuleDTO struct {
	Name       string `yaml:"name"`
	ColorSpace string `yaml:"colorspace"`
	Pattern    string `yaml:"pattern"`
	Extension  string `yaml:"extension"`
	Regex      string `yaml:"regex"`
}

// displaysDTO preserves the declaration order of the displays mapping; the
// first display in the file is the default display.
type displaysDTO struct {
	order  []string
	byName map[string][]viewDTO
}

func (d *displaysDTO) UnmarshalYAML(value *yaml.Node) error {
	d.byName = map[string][]viewDTO{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		name := value.Content[i].Value
		views, err := decodeViewList(value.Content[i+1])
		if err != nil {
			return err
		}
		d.order = append(d.order, name)
		d.byName[name] = views
	}
	return nil
}

// decodeViewList reads a display's view list, expanding `!<Views> [a, b]`
// shared-view reference elements in place.
func decodeViewList(list *yaml.Node) ([]viewDTO, error) {
	var out []viewDTO
	for _, item := range list.Content {
		if item.Kind == yaml.SequenceNode {
			var refs []string
			item.Tag = "!!seq"
			if err := item.Decode(&refs); err != nil {
				return nil, zerr.Wrap(err, "failed to parse shared view references")
			}
			for _, ref := range refs {
				out = append(out, viewDTO{Name: ref})
			}
			continue
		}
		var v viewDTO
		if err := item.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// viewDTO is either a full view mapping or, in display lists, a bare shared
// view name.
type viewDTO struct {
	Name       string `yaml:"name"`
	ColorSpace string `yaml:"colorspace"`
	Looks      string `yaml:"looks"`
}

// UnmarshalYAML accepts both `!<View> {name: ..., colorspace: ...}` nodes and
// bare strings referencing a shared view.
func (v *viewDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		v.Name = value.Value
		return nil
	}
	value.Tag = "!!map"
	type plain viewDTO
	return value.Decode((*plain)(v))
}

type viewTransformDTO struct {
	Name        string         `yaml:"name"`
	FromScene   *transformNode `yaml:"from_scene_reference"`
	ToScene     *transformNode `yaml:"to_scene_reference"`
	FromDisplay *transformNode `yaml:"from_display_reference"`
	ToDisplay   *transformNode `yaml:"to_display_reference"`
}

type lookDTO struct {
	Name         string         `yaml:"name"`
	ProcessSpace string         `yaml:"process_space"`
	Transform    *transformNode `yaml:"transform"`
	InverseTx    *transformNode `yaml:"inverse_transform"`
}

type colorSpaceDTO struct {
	Name        string         `yaml:"name"`
	Aliases     []string       `yaml:"aliases"`
	Family      string         `yaml:"family"`
	Description string         `yaml:"description"`
	InteropID   string         `yaml:"interop_id"`
	Encoding    string         `yaml:"encoding"`
	IsData      bool           `yaml:"isdata"`
	ToRef       *transformNode `yaml:"to_reference"`
	FromRef     *transformNode `yaml:"from_reference"`
	ToScene     *transformNode `yaml:"to_scene_reference"`
	FromScene   *transformNode `yaml:"from_scene_reference"`
	ToDisplay   *transformNode `yaml:"to_display_reference"`
	FromDisplay *transformNode `yaml:"from_display_reference"`
}

type namedTransformDTO struct {
	Name      string         `yaml:"name"`
	Aliases   []string       `yaml:"aliases"`
	Transform *transformNode `yaml:"transform"`
	InverseTx *transformNode `yaml:"inverse_transform"`
}

// Transform node kinds, dispatched on the YAML tag.
const (
	kindMatrix             = "MatrixTransform"
	kindExponent           = "ExponentTransform"
	kindExponentWithLinear = "ExponentWithLinearTransform"
	kindRange              = "RangeTransform"
	kindBuiltin            = "BuiltinTransform"
	kindGroup              = "GroupTransform"
	kindFile               = "FileTransform"
	kindLut3D              = "Lut3DTransform"
	kindLut1D              = "Lut1DTransform"
	kindColorSpace         = "ColorSpaceTransform"
	kindLook               = "LookTransform"
	kindDisplayView        = "DisplayViewTransform"
	kindLogCamera          = "LogCameraTransform"
	kindRule               = "Rule"
)

// transformNode is one node of a transform graph as parsed from YAML. The
// Kind discriminates which fields are meaningful.
type transformNode struct {
	Kind string

	Name      string          `yaml:"name"`
	Direction string          `yaml:"direction"`
	Style     string          `yaml:"style"`
	Matrix    []float64       `yaml:"matrix"`
	Offset    []float64       `yaml:"offset"`
	Value     float64         `yaml:"value"`
	Gamma     float64         `yaml:"gamma"`
	CurveOff  float64         `yaml:"offset_value"`
	MinIn     *float64        `yaml:"min_in_value"`
	MaxIn     *float64        `yaml:"max_in_value"`
	MinOut    *float64        `yaml:"min_out_value"`
	MaxOut    *float64        `yaml:"max_out_value"`

	// LogCameraTransform parameters. Slopes are pointers so a declared
	// zero can be told apart from the defaults (base 2, slopes 1).
	Base          float64  `yaml:"base"`
	LogSideSlope  *float64 `yaml:"log_side_slope"`
	LogSideOffset float64  `yaml:"log_side_offset"`
	LinSideSlope  *float64 `yaml:"lin_side_slope"`
	LinSideOffset float64  `yaml:"lin_side_offset"`
	LinSideBreak  *float64 `yaml:"lin_side_break"`
	LinearSlope   *float64 `yaml:"linear_slope"`

	Src       string          `yaml:"src"`
	Dst       string          `yaml:"dst"`
	Looks     string          `yaml:"looks"`
	Display   string          `yaml:"display"`
	View      string          `yaml:"view"`
	Children  []transformNode `yaml:"children"`

	// ExponentWithLinearTransform reuses "offset" as a scalar in the
	// profile grammar; it lands here when the node is scalar-valued.
	scalarOffset float64
}

// UnmarshalYAML reads the node tag to discriminate the transform kind, then
// decodes the body. Both `!<Kind>` verbatim tags and `!Kind` shorthand are
// accepted.
func (t *transformNode) UnmarshalYAML(value *yaml.Node) error {
	kind := normalizeTag(value.Tag)
	if kind == "" {
		return annotate(domain.ErrConfigParse, "reason", "transform node missing a !<Type> tag")
	}
	t.Kind = kind

	// "offset" is a scalar for ExponentWithLinearTransform and a sequence
	// for MatrixTransform; peel it off before the struct decode.
	if kind == kindExponentWithLinear {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if value.Content[i].Value == "offset" && value.Content[i+1].Kind == yaml.ScalarNode {
				if err := value.Content[i+1].Decode(&t.scalarOffset); err != nil {
					return zerr.Wrap(err, "failed to parse exponent offset")
				}
				// Neutralize so the generic decode doesn't see a scalar
				// where it expects a sequence.
				value.Content[i].Value = "offset_scalar"
			}
		}
	}

	value.Tag = "!!map"
	type plain transformNode
	if err := value.Decode((*plain)(t)); err != nil {
		return zerr.Wrap(err, "failed to parse transform node")
	}
	t.Kind = kind
	return nil
}

func normalizeTag(tag string) string {
	tag = strings.TrimPrefix(tag, "!<")
	tag = strings.TrimSuffix(tag, ">")
	tag = strings.TrimPrefix(tag, "!")
	switch tag {
	case "", "map", "str", "seq":
		return ""
	}
	return tag
}

// UnmarshalYAML lets file rules parse from their `!<Rule>` tagged form.
func (r *fileRuleDTO) UnmarshalYAML(value *yaml.Node) error {
	value.Tag = "!!map"
	type plain fileRuleDTO
	return value.Decode((*plain)(r))
}

func parseProfile(text []byte) (*profile, error) {
	var p profile
	if err := yaml.Unmarshal(text, &p); err != nil {
		return nil, zerr.Wrap(domain.ErrConfigParse, err.Error())
	}
	return &p, nil
}
