// Package native is a self-contained transform-construction engine. It
// loads YAML configurations, compiles their transform graphs, and evaluates
// them directly, with no external color management runtime.
package native

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/zachlewis/colorconfig/internal/core/domain"
	"github.com/zachlewis/colorconfig/internal/core/ports"
)

// Builtin configuration URIs understood by LoadConfig.
const (
	// SourceDefault is the minimal reference configuration used when no
	// configuration file is supplied.
	SourceDefault = "builtin://default"
	// SourceInterop is the interop identities configuration: one color
	// space per cross-application interop identifier.
	SourceInterop = "builtin://interop"
)

//go:embed configs/default.yaml
var defaultConfigYAML []byte

//go:embed configs/interop.yaml
var interopConfigYAML []byte

// Engine implements ports.Engine. It is stateless; loaded configs carry all
// state.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// LoadConfig loads a configuration from a builtin:// URI, literal config
// text (any source containing a newline), or a file path.
func (e *Engine) LoadConfig(source string) (ports.Config, error) {
	switch {
	case source == SourceDefault:
		return loadText(defaultConfigYAML, "")
	case source == SourceInterop:
		return loadText(interopConfigYAML, "")
	case strings.HasPrefix(source, "builtin://"):
		return nil, annotate(domain.ErrConfigNotFound, "source", source)
	case strings.Contains(source, "\n"):
		return loadText([]byte(source), "")
	}

	raw, err := os.ReadFile(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, annotate(domain.ErrConfigNotFound, "source", source)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigRead, err.Error()), "source", source)
	}
	return loadText(raw, filepath.Dir(source))
}

func loadText(text []byte, dir string) (*config, error) {
	prof, err := parseProfile(text)
	if err != nil {
		return nil, err
	}
	return buildConfig(prof, dir)
}

// interchangeRole names the scene-referred space both configurations agree
// on. When a config declares no interchange role its reference space is
// assumed to already be the interchange space.
const interchangeRole = "aces_interchange"

// ProcessorFromConfigs builds a processor converting src in srcCfg to dst in
// dstCfg, meeting in the middle at the interchange space.
func (e *Engine) ProcessorFromConfigs(ctx map[string]string, srcCfg ports.Config, src string, dstCfg ports.Config, dst string) (ports.Processor, error) {
	sc, ok := srcCfg.(*config)
	if !ok {
		return nil, annotate(domain.ErrProcessorConstruction, "reason", "source config was not loaded by this engine")
	}
	dc, ok := dstCfg.(*config)
	if !ok {
		return nil, annotate(domain.ErrProcessorConstruction, "reason", "destination config was not loaded by this engine")
	}

	toInterchange, err := sc.interchangeChain(ctx, src, true)
	if err != nil {
		return nil, err
	}
	fromInterchange, err := dc.interchangeChain(ctx, dst, false)
	if err != nil {
		return nil, err
	}
	return newProcessor(chainTransform{toInterchange, fromInterchange}), nil
}

// interchangeChain converts between the named space and this config's
// interchange space. toward true converts name -> interchange.
func (c *config) interchangeChain(ctx map[string]string, name string, toward bool) (transform, error) {
	if interchange, ok := c.roles[interchangeRole]; ok {
		if toward {
			return c.conversionChain(ctx, name, interchange)
		}
		return c.conversionChain(ctx, interchange, name)
	}

	// No interchange role: meet at the scene reference.
	cs, ok := c.lookupSpace(name)
	if !ok {
		return nil, annotate(domain.ErrUnknownColorSpace, "colorspace", name)
	}
	if cs.dto.IsData {
		return identityTransform{}, nil
	}
	var chain chainTransform
	if toward {
		if node, invert := cs.toRefNode(); node != nil {
			tx, err := c.compileDirected(node, invert, ctx)
			if err != nil {
				return nil, err
			}
			chain = append(chain, tx)
		}
		if cs.display {
			bridge, err := c.referenceBridge(ctx, true)
			if err != nil {
				return nil, err
			}
			chain = append(chain, bridge)
		}
	} else {
		if cs.display {
			bridge, err := c.referenceBridge(ctx, false)
			if err != nil {
				return nil, err
			}
			chain = append(chain, bridge)
		}
		if node, invert := cs.fromRefNode(); node != nil {
			tx, err := c.compileDirected(node, invert, ctx)
			if err != nil {
				return nil, err
			}
			chain = append(chain, tx)
		}
	}
	if len(chain) == 0 {
		return identityTransform{}, nil
	}
	return chain, nil
}

// IdentifyBuiltinColorSpace searches cfg for a color space numerically
// equivalent to the named space of the reference config. Spaces with
// non-trivial conversions are skipped; the first match in declaration order
// wins. Returns "" when nothing matches.
func (e *Engine) IdentifyBuiltinColorSpace(cfg, reference ports.Config, name string) (string, error) {
	c, ok := cfg.(*config)
	if !ok {
		return "", annotate(domain.ErrProcessorConstruction, "reason", "config was not loaded by this engine")
	}
	ref, ok := reference.(*config)
	if !ok {
		return "", annotate(domain.ErrProcessorConstruction, "reason", "reference config was not loaded by this engine")
	}
	want, ok := ref.byName[strings.ToLower(name)]
	if !ok {
		return "", annotate(domain.ErrUnknownColorSpace, "colorspace", name)
	}
	for _, cs := range c.spaces {
		// Scene-referred spaces only ever identify with scene-referred
		// ones, likewise display-referred.
		if cs.display != want.display || cs.dto.IsData || cs.HasNonTrivialConversion() {
			continue
		}
		proc, err := e.ProcessorFromConfigs(nil, cfg, cs.dto.Name, reference, name)
		if err != nil {
			continue
		}
		if probeIdentity(proc) {
			return cs.dto.Name, nil
		}
	}
	return "", nil
}

// probeIdentity applies the processor to the test colors and reports
// whether they come back unchanged.
func probeIdentity(proc ports.Processor) bool {
	for _, tc := range domain.TestColors() {
		got := [3]float32{tc[0], tc[1], tc[2]}
		proc.Apply(got[:], 1, 1, 3)
		if !domain.CloseColors(got, tc, domain.ProbeTolerance) {
			return false
		}
	}
	return true
}
