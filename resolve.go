package colorconfig

import (
	"strings"

	"github.com/zachlewis/colorconfig/internal/core/domain"
)

// Resolve maps a color space designator to the name the active
// configuration knows it by. Resolution tries, in order: a direct lookup
// (name, role, or alias) in the active configuration; identification of a
// builtin interop identity against the active configuration; the informal
// synonym lists bound to whatever spaces classification has discovered so
// far. An unresolvable designator is returned unchanged.
func (c *Config) Resolve(name string) string {
	if name == "" {
		return name
	}

	if c.active != nil {
		if cs, ok := c.active.ColorSpace(name); ok {
			return cs.Name()
		}
	}

	if c.engine != nil && c.active != nil && c.interop != nil {
		if _, ok := c.interop.ColorSpace(name); ok {
			if n, err := c.engine.IdentifyBuiltinColorSpace(c.active, c.interop, name); err == nil && n != "" {
				return n
			}
		}
	}

	aliases := c.classifier.Aliases()
	switch {
	case aliases.SRGB != "" && iequalsAny(name, "sRGB", "srgb_rec709_scene"):
		return aliases.SRGB
	case aliases.LinSRGB != "" && iequalsAny(name, "lin_srgb", "lin_rec709", "lin_rec709_scene", "linear"):
		return aliases.LinSRGB
	case aliases.ACEScg != "" && iequalsAny(name, "ACEScg", "lin_ap1_scene"):
		return aliases.ACEScg
	case aliases.SceneLinear != "" && strings.EqualFold(name, "scene_linear"):
		return aliases.SceneLinear
	case aliases.Rec709 != "" && strings.EqualFold(name, "Rec709"):
		return aliases.Rec709
	}

	return name
}

// Equivalent reports whether two designators name numerically identical
// color transformations. Equal spellings are equivalent outright; otherwise
// both sides are resolved and compared by classification flags and
// canonical names.
//
// Equivalence is reflexive and symmetric but not transitive: two spaces
// carrying disjoint flag sets both compare false against each other while
// each may match a third space that shares its flags.
func (c *Config) Equivalent(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if strings.EqualFold(a, b) {
		return true
	}

	a = c.Resolve(a)
	b = c.Resolve(b)
	if strings.EqualFold(a, b) {
		return true
	}

	ra, okA := c.classifier.Record(a)
	rb, okB := c.classifier.Record(b)
	if !okA || !okB {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	maskA := ra.Flags() & domain.FlagKnown
	maskB := rb.Flags() & domain.FlagKnown
	if (maskA|maskB) != 0 && ra.Flags() == rb.Flags() {
		return true
	}
	if ra.Canonical() != "" && strings.EqualFold(ra.Canonical(), rb.Canonical()) {
		return true
	}
	return false
}
