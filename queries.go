package colorconfig

import (
	"sort"
	"strings"

	"github.com/zachlewis/colorconfig/internal/core/ports"
)

// NumColorSpaces returns the number of color spaces in the inventory.
func (c *Config) NumColorSpaces() int {
	return len(c.classifier.Records())
}

// ColorSpaceNames returns every color space name in enumeration order.
func (c *Config) ColorSpaceNames() []string {
	records := c.classifier.Records()
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}

// ColorSpaceNameByIndex returns the name at the given inventory position,
// or "" when out of range.
func (c *Config) ColorSpaceNameByIndex(index int) string {
	records := c.classifier.Records()
	if index < 0 || index >= len(records) {
		return ""
	}
	return records[index].Name
}

// ColorSpaceIndex returns the inventory position of the named space, or -1.
// An exact case-insensitive pass runs first, then an equivalence pass so
// synonyms of an inventoried space still land on it.
func (c *Config) ColorSpaceIndex(name string) int {
	records := c.classifier.Records()
	for i, r := range records {
		if strings.EqualFold(r.Name, name) {
			return i
		}
	}
	for i, r := range records {
		if c.Equivalent(name, r.Name) {
			return i
		}
	}
	return -1
}

// Aliases returns the declared aliases of the named space.
func (c *Config) Aliases(name string) []string {
	if c.active == nil {
		return nil
	}
	cs, ok := c.active.ColorSpace(name)
	if !ok {
		return nil
	}
	return cs.Aliases()
}

// Roles returns the role names the active configuration declares.
func (c *Config) Roles() []string {
	if c.active == nil {
		return nil
	}
	return c.active.Roles()
}

// ColorSpaceNameByRole returns the color space assigned to a role. A few
// informal substitutions cover configurations that spell common roles
// differently: RGB and default fall back to linear, linear and scene_linear
// try each other, and srgb tries the "sRGB - Texture" space.
func (c *Config) ColorSpaceNameByRole(role string) string {
	if c.active == nil {
		if iequalsAny(role, "linear", "scene_linear") {
			return "linear"
		}
		return ""
	}

	if cs, ok := c.active.ColorSpace(role); ok {
		return cs.Name()
	}
	switch {
	case iequalsAny(role, "RGB", "default"):
		return c.ColorSpaceNameByRole("linear")
	case strings.EqualFold(role, "linear"):
		if cs, ok := c.active.ColorSpace("scene_linear"); ok {
			return cs.Name()
		}
	case strings.EqualFold(role, "scene_linear"):
		if cs, ok := c.active.ColorSpace("linear"); ok {
			return cs.Name()
		}
	case strings.EqualFold(role, "srgb"):
		if cs, ok := c.active.ColorSpace("sRGB - Texture"); ok {
			return cs.Name()
		}
	}
	return ""
}

// Looks returns the look names the active configuration declares.
func (c *Config) Looks() []string {
	if c.active == nil {
		return nil
	}
	return c.active.Looks()
}

// Displays returns the display names the active configuration declares.
func (c *Config) Displays() []string {
	if c.active == nil {
		return nil
	}
	return c.active.Displays()
}

// Views returns the view names of a display. An empty display selects the
// default display.
func (c *Config) Views(display string) []string {
	if c.active == nil {
		return nil
	}
	if display == "" {
		display = c.active.DefaultDisplay()
	}
	return c.active.Views(display)
}

// DefaultDisplay returns the active configuration's default display.
func (c *Config) DefaultDisplay() string {
	if c.active == nil {
		return ""
	}
	return c.active.DefaultDisplay()
}

// DefaultView returns the default view of a display. An empty display
// selects the default display.
func (c *Config) DefaultView(display string) string {
	if c.active == nil {
		return ""
	}
	if display == "" {
		display = c.active.DefaultDisplay()
	}
	return c.active.DefaultView(display)
}

// DisplayViewColorSpaceName returns the color space a display/view pair
// renders into.
func (c *Config) DisplayViewColorSpaceName(display, view string) string {
	if c.active == nil {
		return ""
	}
	return c.active.DisplayViewColorSpaceName(display, view)
}

// DisplayViewLooks returns the looks a display/view pair applies,
// comma-separated.
func (c *Config) DisplayViewLooks(display, view string) string {
	if c.active == nil {
		return ""
	}
	return c.active.DisplayViewLooks(display, view)
}

// NamedTransforms returns the named transforms the configuration declares.
func (c *Config) NamedTransforms() []string {
	if c.active == nil {
		return nil
	}
	return c.active.NamedTransforms()
}

// NamedTransformAliases returns the declared aliases of a named transform.
func (c *Config) NamedTransformAliases(name string) []string {
	if c.active == nil {
		return nil
	}
	return c.active.NamedTransformAliases(name)
}

// IsColorSpaceLinear reports whether the named space has a linear transfer
// function relative to the scene reference. Spaces the configuration cannot
// answer for fall back to name patterns (linear, lin_ prefixes, _linear and
// _lin suffixes).
func (c *Config) IsColorSpaceLinear(name string) bool {
	if c.active != nil {
		if linear, err := c.active.IsColorSpaceLinear(name, ports.ReferenceScene); err == nil {
			return linear
		}
	}
	n := strings.ToLower(name)
	return n == "linear" ||
		strings.HasPrefix(n, "linear ") ||
		strings.HasPrefix(n, "linear_") ||
		strings.HasPrefix(n, "lin_") ||
		strings.HasSuffix(n, "_linear") ||
		strings.HasSuffix(n, "_lin")
}

// ParseColorSpaceFromString guesses a color space from free-form text such
// as a file name. Every inventoried name is searched for case-insensitively
// and the match whose right end lies furthest right wins; among matches
// ending at the same position the longest name wins.
func (c *Config) ParseColorSpaceFromString(s string) string {
	if s == "" {
		return ""
	}

	names := c.ColorSpaceNames()
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) < len(names[j])
	})

	lower := strings.ToLower(s)
	bestEnd := -1
	best := ""
	for _, name := range names {
		pos := strings.LastIndex(lower, strings.ToLower(name))
		if pos < 0 {
			continue
		}
		if end := pos + len(name); end >= bestEnd {
			bestEnd = end
			best = name
		}
	}
	return best
}

// ColorSpaceFromFilePath applies the configuration's file rules to a path,
// falling back to ParseColorSpaceFromString when no configuration is
// loaded or the rules produce nothing.
func (c *Config) ColorSpaceFromFilePath(path string) string {
	if c.active != nil {
		if n := c.active.ColorSpaceFromFilePath(path); n != "" {
			return n
		}
	}
	return c.ParseColorSpaceFromString(path)
}

// ColorSpaceFromFilePathOrDefault applies the file rules but treats a
// default-rule-only match as a miss: in that case the path's name content
// is parsed when matchNames is set, and fallback is returned otherwise.
func (c *Config) ColorSpaceFromFilePathOrDefault(path, fallback string, matchNames bool) string {
	if c.active != nil && !c.active.FilePathOnlyMatchesDefaultRule(path) {
		if n := c.active.ColorSpaceFromFilePath(path); n != "" {
			return n
		}
	}
	if matchNames {
		if n := c.ParseColorSpaceFromString(path); n != "" {
			return n
		}
	}
	return fallback
}

// FilePathOnlyMatchesDefaultRule reports whether only the catch-all default
// file rule matched the path. Without a configuration there are no rules,
// so it reports true.
func (c *Config) FilePathOnlyMatchesDefaultRule(path string) bool {
	if c.active == nil {
		return true
	}
	return c.active.FilePathOnlyMatchesDefaultRule(path)
}
