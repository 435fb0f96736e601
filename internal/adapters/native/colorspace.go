package native

import (
	"path/filepath"
	"strings"
)

// colorSpace implements ports.ColorSpace over the parsed definition. It
// holds a back-pointer to its config so conversion-graph queries can chase
// ColorSpaceTransform references.
type colorSpace struct {
	dto     colorSpaceDTO
	display bool
	cfg     *config
}

func (cs *colorSpace) Name() string      { return cs.dto.Name }
func (cs *colorSpace) Aliases() []string { return cs.dto.Aliases }
func (cs *colorSpace) Family() string    { return cs.dto.Family }
func (cs *colorSpace) Encoding() string  { return cs.dto.Encoding }
func (cs *colorSpace) InteropID() string { return cs.dto.InteropID }
func (cs *colorSpace) IsData() bool      { return cs.dto.IsData }

// toRef returns the conversion toward the space's reference, or nil when the
// space is the reference itself. ok is false when only the opposite
// direction is declared; callers then invert fromRef.
func (cs *colorSpace) toRefNode() (node *transformNode, invert bool) {
	if cs.display {
		if cs.dto.ToDisplay != nil {
			return cs.dto.ToDisplay, false
		}
		if cs.dto.FromDisplay != nil {
			return cs.dto.FromDisplay, true
		}
		return nil, false
	}
	switch {
	case cs.dto.ToScene != nil:
		return cs.dto.ToScene, false
	case cs.dto.ToRef != nil:
		return cs.dto.ToRef, false
	case cs.dto.FromScene != nil:
		return cs.dto.FromScene, true
	case cs.dto.FromRef != nil:
		return cs.dto.FromRef, true
	}
	return nil, false
}

func (cs *colorSpace) fromRefNode() (node *transformNode, invert bool) {
	if cs.display {
		if cs.dto.FromDisplay != nil {
			return cs.dto.FromDisplay, false
		}
		if cs.dto.ToDisplay != nil {
			return cs.dto.ToDisplay, true
		}
		return nil, false
	}
	switch {
	case cs.dto.FromScene != nil:
		return cs.dto.FromScene, false
	case cs.dto.FromRef != nil:
		return cs.dto.FromRef, false
	case cs.dto.ToScene != nil:
		return cs.dto.ToScene, true
	case cs.dto.ToRef != nil:
		return cs.dto.ToRef, true
	}
	return nil, false
}

// HasNonTrivialConversion walks the space's conversion graph looking for
// 3D LUTs, look applications, or display-view pipelines. Simple shaper and
// matrix files are not counted.
func (cs *colorSpace) HasNonTrivialConversion() bool {
	seen := map[string]bool{strings.ToLower(cs.dto.Name): true}
	node, _ := cs.toRefNode()
	if node == nil {
		node, _ = cs.fromRefNode()
	}
	return cs.cfg.nodeHasNonTrivial(node, seen)
}

// nodeHasNonTrivial recursively inspects a transform node. seen guards
// against color space reference cycles.
func (c *config) nodeHasNonTrivial(n *transformNode, seen map[string]bool) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case kindLut3D, kindLook, kindDisplayView:
		return true
	case kindFile:
		return !trivialTransformFile(n.Src)
	case kindGroup:
		for i := range n.Children {
			if c.nodeHasNonTrivial(&n.Children[i], seen) {
				return true
			}
		}
	case kindColorSpace:
		for _, name := range []string{n.Src, n.Dst} {
			ref, ok := c.lookupSpace(name)
			if !ok || seen[strings.ToLower(ref.dto.Name)] {
				continue
			}
			seen[strings.ToLower(ref.dto.Name)] = true
			if node, _ := ref.toRefNode(); c.nodeHasNonTrivial(node, seen) {
				return true
			}
			if node, _ := ref.fromRefNode(); c.nodeHasNonTrivial(node, seen) {
				return true
			}
		}
	}
	return false
}

// trivialTransformFile reports whether a file transform is a simple 1D
// shaper or matrix file rather than a 3D LUT.
func trivialTransformFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".spi1d", ".spimtx":
		return true
	}
	return false
}

// isLinearGraph reports whether the node graph is affine everywhere. It is
// a structural check on the parsed nodes; unsupported node kinds are
// conservatively treated as non-linear.
func (c *config) isLinearGraph(n *transformNode, seen map[string]bool) bool {
	if n == nil {
		return true
	}
	switch n.Kind {
	case kindMatrix, kindRange:
		return true
	case kindExponent:
		return n.Value == 1
	case kindGroup:
		for i := range n.Children {
			if !c.isLinearGraph(&n.Children[i], seen) {
				return false
			}
		}
		return true
	case kindBuiltin:
		tx, err := compileBuiltinStyle(n.Style)
		return err == nil && tx.linear()
	case kindColorSpace:
		for _, name := range []string{n.Src, n.Dst} {
			ref, ok := c.lookupSpace(name)
			if !ok {
				return false
			}
			if seen[strings.ToLower(ref.dto.Name)] {
				continue
			}
			seen[strings.ToLower(ref.dto.Name)] = true
			if node, _ := ref.toRefNode(); !c.isLinearGraph(node, seen) {
				return false
			}
		}
		return true
	}
	return false
}
