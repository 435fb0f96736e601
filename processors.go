package colorconfig

import (
	"context"
	"strings"

	"github.com/zachlewis/colorconfig/internal/adapters/native"
	"github.com/zachlewis/colorconfig/internal/core/domain"
	"github.com/zachlewis/colorconfig/internal/core/ports"
)

// transformContext pairs comma-separated context keys with values. Keys
// without a matching value count are ignored, mirroring the lenient
// handling expected by file-per-shot workflows.
func transformContext(ctxKey, ctxVal string) map[string]string {
	if ctxKey == "" {
		return nil
	}
	keys := strings.Split(ctxKey, ",")
	vals := strings.Split(ctxVal, ",")
	if ctxVal == "" || len(keys) != len(vals) {
		return nil
	}
	m := make(map[string]string, len(keys))
	for i, k := range keys {
		m[k] = vals[i]
	}
	return m
}

// chainProcessor applies processors in sequence.
type chainProcessor []ports.Processor

func (c chainProcessor) IsNoOp() bool {
	for _, p := range c {
		if !p.IsNoOp() {
			return false
		}
	}
	return true
}

func (c chainProcessor) Apply(data []float32, width, height, nchannels int) {
	for _, p := range c {
		p.Apply(data, width, height, nchannels)
	}
}

// CreateColorProcessor builds (or retrieves from cache) a processor
// converting src to dst. When one endpoint is unknown to the active
// configuration but names a builtin interop identity, the conversion is
// bridged across the interop identities configuration.
//
// A nil return means construction failed; the failure is recorded as the
// last-error. Successful construction clears any pending error.
func (c *Config) CreateColorProcessor(src, dst, ctxKey, ctxVal string) *Processor {
	key := domain.ConversionKey(src, dst, ctxKey, ctxVal)
	if h := c.procs.Find(key); h != nil {
		return wrapProcessor(h)
	}

	_, span := c.tracer.Start(context.Background(), "colorconfig.CreateColorProcessor")
	defer span.End()
	span.SetAttribute("src", src)
	span.SetAttribute("dst", dst)

	var proc ports.Processor
	var pending string
	if c.active != nil {
		tctx := transformContext(ctxKey, ctxVal)

		srcCfg, dstCfg := c.active, c.active
		srcKnown, dstKnown := true, true
		if _, ok := c.active.ColorSpace(src); !ok {
			srcKnown = false
			if c.interop != nil {
				if _, ok := c.interop.ColorSpace(src); ok {
					srcCfg = c.interop
				}
			}
		}
		if _, ok := c.active.ColorSpace(dst); !ok {
			dstKnown = false
			if c.interop != nil {
				if _, ok := c.interop.ColorSpace(dst); ok {
					dstCfg = c.interop
				}
			}
		}
		useInterop := (srcCfg == c.interop || dstCfg == c.interop) &&
			(!srcKnown || !dstKnown)

		var err error
		if useInterop && c.engine != nil {
			proc, err = c.engine.ProcessorFromConfigs(tctx, srcCfg, src, dstCfg, dst)
		} else {
			proc, err = c.active.Processor(tctx, src, dst)
		}
		if err != nil {
			span.RecordError(err)
			proc = nil
			pending = err.Error()
		} else {
			c.clearError()
		}
	}

	if pending != "" {
		c.setError(pending)
	}
	return wrapProcessor(c.procs.Insert(key, proc))
}

// CreateLookTransform builds a processor applying the named look(s) while
// converting src to dst. Both endpoints are resolved through the identity
// resolver. An inverse look swaps src and dst so the caller's in/out pair
// keeps its meaning.
func (c *Config) CreateLookTransform(looks, src, dst string, inverse bool, ctxKey, ctxVal string) *Processor {
	key := domain.LookKey(looks, src, dst, inverse, ctxKey, ctxVal)
	if h := c.procs.Find(key); h != nil {
		return wrapProcessor(h)
	}

	var proc ports.Processor
	if c.active != nil {
		tctx := transformContext(ctxKey, ctxVal)
		from, to := c.Resolve(src), c.Resolve(dst)
		if inverse {
			from, to = to, from
		}
		p, err := c.active.LookProcessor(tctx, looks, from, to, inverse)
		if err != nil {
			c.setError(err.Error())
		} else {
			c.clearError()
			proc = p
		}
	}
	return wrapProcessor(c.procs.Insert(key, proc))
}

// CreateDisplayTransform builds the viewing pipeline converting src through
// a display/view pair. Empty or "default" display and view names select the
// configuration's defaults. A non-empty looks argument overrides the view's
// own looks. When src names a builtin interop identity unknown to the
// active configuration, the pipeline runs from the scene_linear role with a
// bridging conversion from the original space attached in front (or, for an
// inverse pipeline, its inverse appended).
func (c *Config) CreateDisplayTransform(display, view, src, looks string, inverse bool, ctxKey, ctxVal string) *Processor {
	if c.active != nil {
		if display == "" || display == "default" {
			display = c.active.DefaultDisplay()
		}
		if view == "" || view == "default" {
			view = c.active.DefaultView(display)
		}
	}

	key := domain.DisplayKey(display, view, src, looks, inverse, ctxKey, ctxVal)
	if h := c.procs.Find(key); h != nil {
		return wrapProcessor(h)
	}

	var proc ports.Processor
	if c.active != nil {
		tctx := transformContext(ctxKey, ctxVal)

		input := src
		if _, ok := c.active.ColorSpace(input); !ok && c.interop != nil {
			if _, ok := c.interop.ColorSpace(input); ok {
				input = "scene_linear"
			}
		}

		p, err := c.active.DisplayViewProcessor(tctx, input, display, view, looks, inverse)
		if err == nil && !strings.EqualFold(input, src) && c.engine != nil {
			var pre ports.Processor
			if inverse {
				// The pipeline ends at the scene_linear role, so append
				// the inverted bridge back to the original space.
				pre, err = c.engine.ProcessorFromConfigs(tctx, c.active, input, c.interop, src)
				p = chainProcessor{p, pre}
			} else {
				pre, err = c.engine.ProcessorFromConfigs(tctx, c.interop, src, c.active, input)
				p = chainProcessor{pre, p}
			}
		}
		if err != nil {
			c.setError(err.Error())
		} else {
			c.clearError()
			proc = p
		}
	}
	return wrapProcessor(c.procs.Insert(key, proc))
}

// CreateFileTransform builds a processor from a transform file. File
// transforms need no color spaces, so construction works even in degraded
// mode by borrowing the builtin configuration's machinery.
func (c *Config) CreateFileTransform(name string, inverse bool) *Processor {
	key := domain.FileKey(name, inverse)
	if h := c.procs.Find(key); h != nil {
		return wrapProcessor(h)
	}

	cfg := c.active
	if cfg == nil {
		cfg = c.builtin
	}

	var proc ports.Processor
	if cfg != nil {
		p, err := cfg.FileProcessor(name, inverse)
		if err != nil {
			c.setError(err.Error())
		} else {
			c.clearError()
			proc = p
		}
	}
	return wrapProcessor(c.procs.Insert(key, proc))
}

// CreateNamedTransform builds a processor for a named transform declared by
// the active configuration.
func (c *Config) CreateNamedTransform(name string, inverse bool, ctxKey, ctxVal string) *Processor {
	key := domain.NamedTransformKey(name, inverse, ctxKey, ctxVal)
	if h := c.procs.Find(key); h != nil {
		return wrapProcessor(h)
	}

	var proc ports.Processor
	if c.active != nil {
		tctx := transformContext(ctxKey, ctxVal)
		p, err := c.active.NamedTransformProcessor(tctx, name, inverse)
		if err != nil {
			c.setError(err.Error())
		} else {
			c.clearError()
			proc = p
		}
	}
	return wrapProcessor(c.procs.Insert(key, proc))
}

// CreateMatrixTransform builds a processor applying a row-major 4x4 matrix.
// Matrix processors are cheap to build and independent of any
// configuration, so they are never cached.
func (c *Config) CreateMatrixTransform(m [16]float64, inverse bool) *Processor {
	p, err := native.NewMatrixProcessor(m, inverse)
	if err != nil {
		c.setError(err.Error())
		return nil
	}
	return wrapProcessor(p)
}
