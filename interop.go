package colorconfig

import (
	"strings"

	"github.com/zachlewis/colorconfig/internal/core/domain"
)

// ColorInteropID maps a color space of the active configuration to its
// canonical interop identifier. Data spaces report "data". In strict mode
// only explicit mappings count: a declared interop_id, or numeric
// equivalence to one of the tabled identifiers. Non-strict mode additionally
// tries the space's name and aliases against the interop identities
// configuration, then an equivalence sweep over every builtin interop
// identity.
func (c *Config) ColorInteropID(colorspace string, strict bool) string {
	if colorspace == "" {
		return ""
	}
	if c.active == nil {
		return c.interopName(colorspace)
	}

	cs, ok := c.active.ColorSpace(colorspace)
	if !ok {
		// An unknown name may itself be a builtin interop identity.
		return c.interopName(colorspace)
	}
	if cs.IsData() {
		return "data"
	}
	if id := cs.InteropID(); id != "" {
		return id
	}

	for _, entry := range domain.InteropEntries() {
		if c.Equivalent(colorspace, entry.ID) {
			return entry.ID
		}
	}

	if strict {
		return ""
	}

	if id := c.interopName(cs.Name()); id != "" {
		return id
	}
	for _, alias := range cs.Aliases() {
		if id := c.interopName(alias); id != "" {
			return id
		}
	}

	for _, id := range c.builtinInteropIDs() {
		if c.Equivalent(cs.Name(), id) {
			return id
		}
	}
	return ""
}

// ColorInteropIDFromCICP returns the interop identifier matching a CICP
// code point 4-tuple. Only the primaries and transfer components
// participate; the first (display-referred) table entry wins.
func (c *Config) ColorInteropIDFromCICP(cicp [4]int) string {
	return domain.InteropIDForCICP(cicp)
}

// CICP returns the CICP code points of the named color space, mapping it to
// an interop identifier first. The second result is false when the space
// has no interop identity or its identity carries no standard code points.
func (c *Config) CICP(colorspace string) ([4]int, bool) {
	id := c.ColorInteropID(colorspace, false)
	if id == "" {
		return [4]int{}, false
	}
	return domain.CICPForID(id)
}

// interopName resolves a name against the interop identities configuration
// and returns its canonical spelling, or "".
func (c *Config) interopName(name string) string {
	if c.interop == nil {
		return ""
	}
	if cs, ok := c.interop.ColorSpace(name); ok {
		return cs.Name()
	}
	return ""
}

// builtinInteropIDs enumerates the interop identities configuration's color
// space names, appending "data" and "unknown" when absent.
func (c *Config) builtinInteropIDs() []string {
	var ids []string
	if c.interop != nil {
		for i, e := 0, c.interop.NumColorSpaces(); i < e; i++ {
			ids = append(ids, c.interop.ColorSpaceNameByIndex(i))
		}
	}
	hasData, hasUnknown := false, false
	for _, id := range ids {
		if strings.EqualFold(id, "data") {
			hasData = true
		}
		if strings.EqualFold(id, "unknown") {
			hasUnknown = true
		}
	}
	if !hasData {
		ids = append(ids, "data")
	}
	if !hasUnknown {
		ids = append(ids, "unknown")
	}
	return ids
}
