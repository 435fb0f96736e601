package native

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/zerr"

	"github.com/zachlewis/colorconfig/internal/core/domain"
	"github.com/zachlewis/colorconfig/internal/core/ports"
)

// compileNode turns a parsed transform node into an evaluatable transform.
// ctx supplies values for ${var} references in file transform paths.
func (c *config) compileNode(n *transformNode, ctx map[string]string) (transform, error) {
	if n == nil {
		return identityTransform{}, nil
	}
	tx, err := c.compileForward(n, ctx)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(n.Direction, "inverse") {
		return tx.inverted()
	}
	return tx, nil
}

func (c *config) compileForward(n *transformNode, ctx map[string]string) (transform, error) {
	switch n.Kind {
	case kindMatrix:
		if len(n.Matrix) != 16 {
			return nil, annotate(domain.ErrConfigParse, "reason", "matrix transform requires 16 values")
		}
		var m [16]float64
		copy(m[:], n.Matrix)
		t := matrixTransform{m: m}
		if len(n.Offset) >= 3 {
			t.m[3] += n.Offset[0]
			t.m[7] += n.Offset[1]
			t.m[11] += n.Offset[2]
		}
		return t, nil

	case kindExponent:
		if n.Value == 0 {
			return nil, annotate(domain.ErrConfigParse, "reason", "exponent transform requires a value")
		}
		return exponentTransform{value: n.Value, mirror: strings.EqualFold(n.Style, "mirror")}, nil

	case kindExponentWithLinear:
		if n.Gamma == 0 {
			return nil, annotate(domain.ErrConfigParse, "reason", "exponent transform requires a gamma")
		}
		return monCurveTransform{gamma: n.Gamma, offset: n.scalarOffset, decode: true}, nil

	case kindRange:
		minIn, maxIn := valueOr(n.MinIn, 0), valueOr(n.MaxIn, 1)
		minOut, maxOut := valueOr(n.MinOut, 0), valueOr(n.MaxOut, 1)
		return newRangeTransform(minIn, maxIn, minOut, maxOut)

	case kindLogCamera:
		if n.LinSideBreak == nil {
			return nil, annotate(domain.ErrConfigParse, "reason", "log camera transform requires lin_side_break")
		}
		base := n.Base
		if base == 0 {
			base = 2
		}
		return newCamLogTransform(base, valueOr(n.LogSideSlope, 1), n.LogSideOffset,
			valueOr(n.LinSideSlope, 1), n.LinSideOffset, *n.LinSideBreak, n.LinearSlope)

	case kindBuiltin:
		return compileBuiltinStyle(n.Style)

	case kindGroup:
		chain := make(chainTransform, 0, len(n.Children))
		for i := range n.Children {
			child, err := c.compileNode(&n.Children[i], ctx)
			if err != nil {
				return nil, err
			}
			chain = append(chain, child)
		}
		return chain, nil

	case kindFile:
		return c.compileFile(expandContext(n.Src, ctx))

	case kindColorSpace:
		return c.conversionChain(ctx, n.Src, n.Dst)

	case kindLook:
		return c.lookChain(ctx, n.Looks, n.Src, n.Dst)

	case kindDisplayView:
		return c.displayViewChain(ctx, n.Src, n.Display, n.View, "")
	}
	return nil, annotate(domain.ErrUnsupportedTransform, "transform", n.Kind)
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// expandContext substitutes ${var} and $var references from the context map,
// leaving unknown variables untouched.
func expandContext(s string, ctx map[string]string) string {
	if len(ctx) == 0 || !strings.Contains(s, "$") {
		return s
	}
	return os.Expand(s, func(key string) string {
		if v, ok := ctx[key]; ok {
			return v
		}
		return "${" + key + "}"
	})
}

// conversionChain builds src -> reference -> dst within this config,
// bridging the scene and display references through the default view
// transform when the endpoints live on different sides.
func (c *config) conversionChain(ctx map[string]string, src, dst string) (transform, error) {
	srcCS, ok := c.lookupSpace(src)
	if !ok {
		return nil, annotate(domain.ErrUnknownColorSpace, "colorspace", src)
	}
	dstCS, ok := c.lookupSpace(dst)
	if !ok {
		return nil, annotate(domain.ErrUnknownColorSpace, "colorspace", dst)
	}
	if srcCS == dstCS || srcCS.dto.IsData || dstCS.dto.IsData {
		return identityTransform{}, nil
	}

	var chain chainTransform
	if node, invert := srcCS.toRefNode(); node != nil {
		tx, err := c.compileDirected(node, invert, ctx)
		if err != nil {
			return nil, err
		}
		chain = append(chain, tx)
	}
	if srcCS.display != dstCS.display {
		bridge, err := c.referenceBridge(ctx, srcCS.display)
		if err != nil {
			return nil, err
		}
		chain = append(chain, bridge)
	}
	if node, invert := dstCS.fromRefNode(); node != nil {
		tx, err := c.compileDirected(node, invert, ctx)
		if err != nil {
			return nil, err
		}
		chain = append(chain, tx)
	}
	if len(chain) == 0 {
		return identityTransform{}, nil
	}
	return chain, nil
}

func (c *config) compileDirected(node *transformNode, invert bool, ctx map[string]string) (transform, error) {
	tx, err := c.compileNode(node, ctx)
	if err != nil {
		return nil, err
	}
	if invert {
		return tx.inverted()
	}
	return tx, nil
}

// referenceBridge compiles the default view transform, forward when moving
// from the display reference to the scene side is false (fromDisplay false
// means scene -> display).
func (c *config) referenceBridge(ctx map[string]string, fromDisplay bool) (transform, error) {
	vt, ok := c.viewTx[strings.ToLower(c.defaultVT)]
	if !ok {
		return nil, annotate(domain.ErrProcessorConstruction, "reason", "no view transform bridges the scene and display references")
	}
	// Prefer the declared direction, falling back to inverting the other.
	if fromDisplay {
		if vt.ToScene != nil {
			return c.compileNode(vt.ToScene, ctx)
		}
		if vt.FromScene != nil {
			return c.compileDirected(vt.FromScene, true, ctx)
		}
	} else {
		if vt.FromScene != nil {
			return c.compileNode(vt.FromScene, ctx)
		}
		if vt.ToScene != nil {
			return c.compileDirected(vt.ToScene, true, ctx)
		}
	}
	return nil, annotate(domain.ErrProcessorConstruction, "view_transform", vt.Name)
}

// lookChain converts src into each look's process space, applies the look,
// and finishes in dst. A look name prefixed with "-" applies inverted.
func (c *config) lookChain(ctx map[string]string, looks, src, dst string) (transform, error) {
	var chain chainTransform
	cur := src
	for _, name := range splitLooks(looks) {
		inverse := strings.HasPrefix(name, "-")
		name = strings.TrimPrefix(strings.TrimPrefix(name, "-"), "+")
		look, ok := c.looks[strings.ToLower(name)]
		if !ok {
			return nil, annotate(domain.ErrUnknownLook, "look", name)
		}
		process := look.ProcessSpace
		if process == "" {
			process = cur
		}
		to, err := c.conversionChain(ctx, cur, process)
		if err != nil {
			return nil, err
		}
		lt, err := c.lookTransform(look, inverse, ctx)
		if err != nil {
			return nil, err
		}
		chain = append(chain, to, lt)
		cur = process
	}
	out, err := c.conversionChain(ctx, cur, dst)
	if err != nil {
		return nil, err
	}
	return append(chain, out), nil
}

func (c *config) lookTransform(look *lookDTO, inverse bool, ctx map[string]string) (transform, error) {
	fwd, inv := look.Transform, look.InverseTx
	if inverse {
		fwd, inv = inv, fwd
	}
	if fwd != nil {
		return c.compileNode(fwd, ctx)
	}
	if inv != nil {
		tx, err := c.compileNode(inv, ctx)
		if err != nil {
			return nil, err
		}
		return tx.inverted()
	}
	return identityTransform{}, nil
}

func splitLooks(looks string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(looks, func(r rune) bool {
		return r == ',' || r == ':'
	}) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// displayViewChain builds the full viewing pipeline for a display/view
// pair. looksOverride replaces the view's own looks when non-empty.
func (c *config) displayViewChain(ctx map[string]string, src, display, view, looksOverride string) (transform, error) {
	if _, ok := c.views[display]; !ok {
		return nil, annotate(domain.ErrUnknownDisplay, "display", display)
	}
	v, ok := c.viewFor(display, view)
	if !ok {
		return nil, annotate(domain.ErrUnknownView, "view", view)
	}
	looks := v.Looks
	if looksOverride != "" {
		looks = looksOverride
	}
	target := v.ColorSpace
	if target == "" {
		return nil, annotate(domain.ErrUnknownView, "view", view)
	}
	if looks != "" {
		return c.lookChain(ctx, looks, src, target)
	}
	return c.conversionChain(ctx, src, target)
}

// compileFile loads a transform from a sidecar file. Only the spimtx matrix
// format is evaluatable; other formats fail construction.
func (c *config) compileFile(src string) (transform, error) {
	if src == "" {
		return nil, annotate(domain.ErrConfigParse, "reason", "file transform without a src")
	}
	p := src
	if !filepath.IsAbs(p) && c.dir != "" {
		p = filepath.Join(c.dir, p)
	}
	if strings.ToLower(filepath.Ext(p)) != ".spimtx" {
		return nil, annotate(domain.ErrUnsupportedTransform, "file", src)
	}
	raw, err := os.ReadFile(p)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrProcessorConstruction, err.Error()), "file", src)
	}
	return parseSpimtx(string(raw), src)
}

// parseSpimtx reads the 12 whitespace-separated numbers of an spimtx file:
// a 3x3 matrix in row-major order interleaved with per-row offsets that are
// expressed on a 16 bit scale.
func parseSpimtx(text, name string) (transform, error) {
	fields := strings.Fields(text)
	if len(fields) != 12 {
		return nil, annotate(domain.ErrConfigParse, "file", name)
	}
	var vals [12]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, annotate(domain.ErrConfigParse, "file", name)
		}
		vals[i] = v
	}
	var m3 [9]float64
	var offset [3]float64
	for row := 0; row < 3; row++ {
		copy(m3[row*3:row*3+3], vals[row*4:row*4+3])
		offset[row] = vals[row*4+3] / 65535.0
	}
	return newMatrixTransform3x3(m3, offset), nil
}

// Processor methods on config implement the ports.Config construction
// surface over the compiler above.

func (c *config) Processor(ctx map[string]string, src, dst string) (ports.Processor, error) {
	tx, err := c.conversionChain(ctx, src, dst)
	if err != nil {
		return nil, err
	}
	return newProcessor(tx), nil
}

func (c *config) LookProcessor(ctx map[string]string, looks, src, dst string, inverse bool) (ports.Processor, error) {
	tx, err := c.lookChain(ctx, looks, src, dst)
	if err != nil {
		return nil, err
	}
	if inverse {
		if tx, err = tx.inverted(); err != nil {
			return nil, err
		}
	}
	return newProcessor(tx), nil
}

func (c *config) DisplayViewProcessor(ctx map[string]string, src, display, view, looks string, inverse bool) (ports.Processor, error) {
	tx, err := c.displayViewChain(ctx, src, display, view, looks)
	if err != nil {
		return nil, err
	}
	if inverse {
		if tx, err = tx.inverted(); err != nil {
			return nil, err
		}
	}
	return newProcessor(tx), nil
}

func (c *config) FileProcessor(path string, inverse bool) (ports.Processor, error) {
	tx, err := c.compileFile(path)
	if err != nil {
		return nil, err
	}
	if inverse {
		if tx, err = tx.inverted(); err != nil {
			return nil, err
		}
	}
	return newProcessor(tx), nil
}

func (c *config) NamedTransformProcessor(ctx map[string]string, name string, inverse bool) (ports.Processor, error) {
	nt, ok := c.namedTx[strings.ToLower(name)]
	if !ok {
		return nil, annotate(domain.ErrUnknownNamedTransform, "transform", name)
	}
	fwd, inv := nt.Transform, nt.InverseTx
	if inverse {
		fwd, inv = inv, fwd
	}
	var tx transform
	var err error
	switch {
	case fwd != nil:
		tx, err = c.compileNode(fwd, ctx)
	case inv != nil:
		tx, err = c.compileNode(inv, ctx)
		if err == nil {
			tx, err = tx.inverted()
		}
	default:
		tx = identityTransform{}
	}
	if err != nil {
		return nil, err
	}
	return newProcessor(tx), nil
}
