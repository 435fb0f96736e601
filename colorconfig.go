// Package colorconfig resolves color space identities against an
// OpenColorIO-style configuration and caches the processors built from it.
//
// A Config wraps one active configuration plus the embedded builtin
// reference and interop identities configurations. Color space names are
// classified lazily into semantic categories (sRGB, linear sRGB, ACEScg,
// Rec709) by name heuristics and numeric conversion probes, so that
// differently spelled but numerically identical spaces compare as
// equivalent. Processors are cached by request fingerprint; construction
// failures are recorded as a last-error string and never cached.
package colorconfig

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/zachlewis/colorconfig/internal/adapters/logger"
	"github.com/zachlewis/colorconfig/internal/adapters/native"
	"github.com/zachlewis/colorconfig/internal/adapters/telemetry"
	"github.com/zachlewis/colorconfig/internal/core/ports"
	"github.com/zachlewis/colorconfig/internal/engine/classify"
	"github.com/zachlewis/colorconfig/internal/engine/proccache"
)

// Config is a loaded color configuration with lazy classification state and
// a processor cache. All methods are safe for concurrent use.
type Config struct {
	engine  ports.Engine
	active  ports.Config
	builtin ports.Config
	interop ports.Config

	classifier *classify.Classifier
	procs      *proccache.Cache

	// mu guards classification records, discovered aliases, the processor
	// cache, and lastErr.
	mu      sync.RWMutex
	lastErr string

	log    ports.Logger
	tracer ports.Tracer

	activeIsBuiltin bool
}

type options struct {
	engine     ports.Engine
	noEngine   bool
	noBuiltins bool
	log        ports.Logger
	tracer     ports.Tracer
}

// Option configures a Config at construction time.
type Option func(*options)

// WithEngine substitutes the transform-construction engine.
func WithEngine(e ports.Engine) Option {
	return func(o *options) { o.engine = e }
}

// WithoutEngine disables transform construction entirely. Name heuristics
// still work; every processor request fails.
func WithoutEngine() Option {
	return func(o *options) { o.noEngine = true }
}

// WithoutBuiltins skips loading the builtin reference and interop
// configurations. Conversion probing and interop bridging are unavailable;
// classification falls back to name heuristics and the legacy gamma probe.
func WithoutBuiltins() Option {
	return func(o *options) { o.noBuiltins = true }
}

// WithLogger substitutes the logger.
func WithLogger(l ports.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTracer substitutes the tracer.
func WithTracer(t ports.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// New loads the configuration named by source: a file path, literal config
// text (anything containing a newline), or a builtin:// URI. An empty
// source or the literal "$OCIO" consults the OCIO environment variable,
// then falls back to the builtin default.
//
// Load failures degrade rather than abort: the returned Config is always
// usable, running on a synthesized inventory of common space names, and the
// failure is both returned and recorded as the last-error.
func New(source string, opts ...Option) (*Config, error) {
	o := options{
		engine: native.NewEngine(),
		log:    logger.New(),
		tracer: telemetry.NewNoop(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.noEngine {
		o.engine = nil
	}

	c := &Config{
		engine: o.engine,
		log:    o.log,
		tracer: o.tracer,
	}
	c.procs = proccache.New(&c.mu)

	_, span := c.tracer.Start(context.Background(), "colorconfig.New")
	defer span.End()

	if c.engine != nil && !o.noBuiltins {
		if cfg, err := c.engine.LoadConfig(native.SourceDefault); err == nil {
			c.builtin = cfg
		} else {
			c.log.Error(err)
		}
		if cfg, err := c.engine.LoadConfig(native.SourceInterop); err == nil {
			c.interop = cfg
		} else {
			c.log.Error(err)
		}
	}

	if source == "" || strings.EqualFold(source, "$OCIO") {
		source = os.Getenv("OCIO")
	}
	if source == "" && c.builtin != nil {
		source = native.SourceDefault
	}
	c.activeIsBuiltin = source == native.SourceDefault

	var loadErr error
	if source != "" && c.engine != nil {
		cfg, err := c.engine.LoadConfig(source)
		if err != nil {
			loadErr = err
			span.RecordError(err)
			c.setError(err.Error())
			c.log.Error(err)
		} else {
			c.active = cfg
		}
	}

	c.classifier = classify.New(classify.Params{
		Active:          c.active,
		Builtin:         c.builtin,
		Interop:         c.interop,
		Engine:          c.engine,
		Mutex:           &c.mu,
		Logger:          c.log,
		ActiveIsBuiltin: c.activeIsBuiltin,
	})
	if c.classifier.Degraded() {
		c.active = nil
	}

	if c.active != nil && !c.activeIsBuiltin {
		c.classifier.IdentifyBuiltinEquivalents()
	}

	span.SetAttribute("config", c.ConfigName())
	span.SetAttribute("colorspaces", c.NumColorSpaces())
	return c, loadErr
}

// ConfigName returns the active configuration's declared name, or "" in
// degraded mode.
func (c *Config) ConfigName() string {
	if c.active == nil {
		return ""
	}
	return c.active.Name()
}

// HasError reports whether an error message is pending.
func (c *Config) HasError() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr != ""
}

// Error returns the pending error message, clearing it when clear is set.
func (c *Config) Error(clear bool) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg := c.lastErr
	if clear {
		c.lastErr = ""
	}
	return msg
}

func (c *Config) setError(msg string) {
	c.mu.Lock()
	c.lastErr = msg
	c.mu.Unlock()
}

func (c *Config) clearError() {
	c.setError("")
}

// Processor applies a compiled color transformation to interleaved pixel
// data. Handles are immutable and safe for concurrent Apply calls.
type Processor struct {
	h ports.Processor
}

// IsNoOp reports whether applying the processor changes nothing.
func (p *Processor) IsNoOp() bool { return p.h.IsNoOp() }

// Apply transforms the first three channels of every pixel in place. Pixels
// are interleaved with nchannels values each; channels beyond the third
// pass through untouched.
func (p *Processor) Apply(data []float32, width, height, nchannels int) {
	p.h.Apply(data, width, height, nchannels)
}

func wrapProcessor(h ports.Processor) *Processor {
	if h == nil {
		return nil
	}
	return &Processor{h: h}
}

func iequalsAny(name string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.EqualFold(name, c) {
			return true
		}
	}
	return false
}
