package native

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/zachlewis/colorconfig/internal/core/domain"
	"github.com/zachlewis/colorconfig/internal/core/ports"
)

// config is one loaded, immutable configuration. All lookup maps are built
// once at load time; no method mutates state, so a config is safe for
// concurrent use.
type config struct {
	name string
	dir  string // resolves relative file transform paths

	prof    *profile
	spaces  []*colorSpace
	byName  map[string]*colorSpace // lower-cased names and aliases
	roles   map[string]string      // lower-cased role -> space name
	looks   map[string]*lookDTO
	lookIdx []string

	displayOrder []string
	views        map[string][]viewDTO

	namedOrder []string
	namedTx    map[string]*namedTransformDTO

	viewTx    map[string]*viewTransformDTO
	defaultVT string
}

func buildConfig(prof *profile, dir string) (*config, error) {
	c := &config{
		name:      prof.Name,
		dir:       dir,
		prof:      prof,
		byName:    map[string]*colorSpace{},
		roles:     map[string]string{},
		looks:     map[string]*lookDTO{},
		views:     map[string][]viewDTO{},
		namedTx:   map[string]*namedTransformDTO{},
		viewTx:    map[string]*viewTransformDTO{},
		defaultVT: prof.DefaultViewTransform,
	}

	add := func(dto colorSpaceDTO, display bool) error {
		cs := &colorSpace{dto: dto, display: display, cfg: c}
		key := strings.ToLower(dto.Name)
		if key == "" {
			return annotate(domain.ErrConfigParse, "reason", "color space without a name")
		}
		if _, dup := c.byName[key]; dup {
			return annotate(domain.ErrConfigParse, "colorspace", dto.Name)
		}
		c.spaces = append(c.spaces, cs)
		c.byName[key] = cs
		for _, alias := range dto.Aliases {
			c.byName[strings.ToLower(alias)] = cs
		}
		return nil
	}
	for _, dto := range prof.ColorSpaces {
		if err := add(dto, false); err != nil {
			return nil, err
		}
	}
	for _, dto := range prof.DisplayColorSpaces {
		if err := add(dto, true); err != nil {
			return nil, err
		}
	}

	for role, space := range prof.Roles {
		c.roles[strings.ToLower(role)] = space
	}

	shared := map[string]viewDTO{}
	for _, v := range prof.SharedViews {
		shared[strings.ToLower(v.Name)] = v
	}
	for _, display := range prof.Displays.order {
		var resolved []viewDTO
		for _, v := range prof.Displays.byName[display] {
			if v.ColorSpace == "" {
				if sv, ok := shared[strings.ToLower(v.Name)]; ok {
					resolved = append(resolved, sv)
					continue
				}
			}
			resolved = append(resolved, v)
		}
		c.displayOrder = append(c.displayOrder, display)
		c.views[display] = resolved
	}

	for i := range prof.Looks {
		l := &prof.Looks[i]
		c.looks[strings.ToLower(l.Name)] = l
		c.lookIdx = append(c.lookIdx, l.Name)
	}

	for i := range prof.NamedTransforms {
		nt := &prof.NamedTransforms[i]
		c.namedOrder = append(c.namedOrder, nt.Name)
		c.namedTx[strings.ToLower(nt.Name)] = nt
		for _, alias := range nt.Aliases {
			c.namedTx[strings.ToLower(alias)] = nt
		}
	}

	for i := range prof.ViewTransforms {
		vt := &prof.ViewTransforms[i]
		c.viewTx[strings.ToLower(vt.Name)] = vt
	}
	if c.defaultVT == "" && len(prof.ViewTransforms) > 0 {
		c.defaultVT = prof.ViewTransforms[0].Name
	}

	return c, nil
}

func (c *config) Name() string { return c.name }

func (c *config) NumColorSpaces() int { return len(c.spaces) }

func (c *config) ColorSpaceNameByIndex(index int) string {
	if index < 0 || index >= len(c.spaces) {
		return ""
	}
	return c.spaces[index].dto.Name
}

// lookupSpace resolves a color space name, alias, or role, case
// insensitively.
func (c *config) lookupSpace(name string) (*colorSpace, bool) {
	key := strings.ToLower(name)
	if cs, ok := c.byName[key]; ok {
		return cs, true
	}
	if target, ok := c.roles[key]; ok {
		if cs, ok := c.byName[strings.ToLower(target)]; ok {
			return cs, true
		}
	}
	return nil, false
}

func (c *config) ColorSpace(name string) (ports.ColorSpace, bool) {
	cs, ok := c.lookupSpace(name)
	if !ok {
		return nil, false
	}
	return cs, true
}

func (c *config) Roles() []string {
	out := make([]string, 0, len(c.roles))
	for role := range c.roles {
		out = append(out, role)
	}
	return out
}

func (c *config) Looks() []string {
	return append([]string(nil), c.lookIdx...)
}

func (c *config) Displays() []string {
	return append([]string(nil), c.displayOrder...)
}

func (c *config) Views(display string) []string {
	var out []string
	for _, v := range c.views[display] {
		out = append(out, v.Name)
	}
	return out
}

func (c *config) DefaultDisplay() string {
	if len(c.displayOrder) == 0 {
		return ""
	}
	return c.displayOrder[0]
}

func (c *config) DefaultView(display string) string {
	views := c.views[display]
	if len(views) == 0 {
		return ""
	}
	return views[0].Name
}

func (c *config) viewFor(display, view string) (viewDTO, bool) {
	for _, v := range c.views[display] {
		if strings.EqualFold(v.Name, view) {
			return v, true
		}
	}
	return viewDTO{}, false
}

func (c *config) DisplayViewColorSpaceName(display, view string) string {
	v, ok := c.viewFor(display, view)
	if !ok {
		return ""
	}
	return v.ColorSpace
}

func (c *config) DisplayViewLooks(display, view string) string {
	v, ok := c.viewFor(display, view)
	if !ok {
		return ""
	}
	return v.Looks
}

func (c *config) NamedTransforms() []string {
	return append([]string(nil), c.namedOrder...)
}

func (c *config) NamedTransformAliases(name string) []string {
	nt, ok := c.namedTx[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return append([]string(nil), nt.Aliases...)
}

func (c *config) IsColorSpaceLinear(name string, ref ports.ReferenceSpace) (bool, error) {
	cs, ok := c.lookupSpace(name)
	if !ok {
		return false, annotate(domain.ErrUnknownColorSpace, "colorspace", name)
	}
	if cs.dto.IsData {
		return false, nil
	}
	switch cs.dto.Encoding {
	case "scene-linear":
		return ref == ports.ReferenceScene, nil
	case "display-linear":
		return ref == ports.ReferenceDisplay, nil
	case "log", "sdr-video", "hdr-video", "data":
		return false, nil
	}
	if (ref == ports.ReferenceDisplay) != cs.display {
		return false, nil
	}
	node, _ := cs.toRefNode()
	if node == nil {
		node, _ = cs.fromRefNode()
	}
	seen := map[string]bool{strings.ToLower(cs.dto.Name): true}
	return c.isLinearGraph(node, seen), nil
}

// File rules. A rule matches by regex when one is given, otherwise by glob
// pattern against the base name and glob extension against the suffix. The
// final rule is the catch-all default.
func (c *config) matchFileRule(p string) (fileRuleDTO, bool) {
	base := filepath.Base(p)
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(p)), ".")
	stem := strings.TrimSuffix(base, filepath.Ext(p))
	for i, rule := range c.prof.FileRules {
		isLast := i == len(c.prof.FileRules)-1
		if rule.Regex != "" {
			re, err := regexp.Compile(rule.Regex)
			if err == nil && re.MatchString(p) {
				return rule, isLast
			}
			continue
		}
		if rule.Pattern == "" && rule.Extension == "" {
			return rule, isLast
		}
		pat := rule.Pattern
		if pat == "" {
			pat = "*"
		}
		extPat := strings.ToLower(rule.Extension)
		if extPat == "" {
			extPat = "*"
		}
		okStem, _ := path.Match(strings.ToLower(pat), strings.ToLower(stem))
		okExt, _ := path.Match(extPat, ext)
		if okStem && okExt {
			return rule, isLast
		}
	}
	return fileRuleDTO{}, false
}

func (c *config) ColorSpaceFromFilePath(p string) string {
	rule, _ := c.matchFileRule(p)
	return rule.ColorSpace
}

func (c *config) FilePathOnlyMatchesDefaultRule(p string) bool {
	rule, isLast := c.matchFileRule(p)
	if rule.ColorSpace == "" {
		return true
	}
	return isLast
}
