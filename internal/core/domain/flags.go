// Package domain contains core domain types for color space identity
// resolution and processor caching.
package domain

// Flags is a bitset of semantic categories a color space may belong to.
type Flags int

const (
	// FlagLinearResponse marks any color space with a linear transfer function.
	FlagLinearResponse Flags = 1 << iota
	// FlagSceneLinear marks a space equivalent to the scene_linear role.
	FlagSceneLinear
	// FlagSRGB marks sRGB (primaries and transfer function).
	FlagSRGB
	// FlagLinSRGB marks sRGB/Rec709 primaries with a linear response.
	FlagLinSRGB
	// FlagACEScg marks ACEScg (AP1 primaries, linear response).
	FlagACEScg
	// FlagRec709 marks Rec709 primaries and transfer function.
	FlagRec709

	// FlagKnown is the union of the four specific-category bits.
	FlagKnown = FlagSRGB | FlagLinSRGB | FlagACEScg | FlagRec709
)

// Canonical names for the known categories.
const (
	CanonicalSRGB    = "srgb_rec709_scene"
	CanonicalLinSRGB = "lin_rec709_scene"
	CanonicalACEScg  = "lin_ap1_scene"
	CanonicalRec709  = "Rec709"
)

// Canonical returns the canonical name implied by the flag set, by priority
// sRGB > linear-sRGB > ACEScg > Rec709, or "" when no specific category is set.
func (f Flags) Canonical() string {
	switch {
	case f&FlagSRGB != 0:
		return CanonicalSRGB
	case f&FlagLinSRGB != 0:
		return CanonicalLinSRGB
	case f&FlagACEScg != 0:
		return CanonicalACEScg
	case f&FlagRec709 != 0:
		return CanonicalRec709
	default:
		return ""
	}
}

// Known reports whether any of the four specific-category bits is set.
func (f Flags) Known() bool {
	return f&FlagKnown != 0
}
