// Package classify assigns semantic categories to the color spaces of a
// loaded configuration: name heuristics first, then numeric probing against
// the builtin reference spaces, then legacy gamma-curve deduction.
package classify

import (
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"

	"github.com/zachlewis/colorconfig/internal/core/domain"
	"github.com/zachlewis/colorconfig/internal/core/ports"
)

// Params wires a Classifier to its collaborators. Active, Builtin, Interop,
// and Engine may all be nil; the classifier degrades to name-only
// heuristics over a synthesized inventory.
type Params struct {
	Active  ports.Config
	Builtin ports.Config
	Interop ports.Config
	Engine  ports.Engine

	// Mutex is the owning configuration's lock, shared with the processor
	// cache. Never nil.
	Mutex *sync.RWMutex

	Logger ports.Logger

	// ActiveIsBuiltin suppresses conversion probing when the active config
	// is itself the builtin reference; name heuristics already cover it.
	ActiveIsBuiltin bool
}

// Classifier lazily classifies the color spaces of one configuration.
// Check-then-classify for a record is serialized under the shared lock, so
// each record is examined exactly once no matter how many goroutines ask.
type Classifier struct {
	cfg     ports.Config
	builtin ports.Config
	interop ports.Config
	engine  ports.Engine
	mu      *sync.RWMutex
	log     ports.Logger

	activeIsBuiltin bool

	records []*domain.Record
	byName  map[string]*domain.Record
	aliases domain.AliasSet
}

// New builds a classifier and takes inventory of the active configuration,
// running the cheap name heuristics on every space. When no usable
// configuration is available it synthesizes the fallback inventory.
func New(p Params) *Classifier {
	c := &Classifier{
		cfg:             p.Active,
		builtin:         p.Builtin,
		interop:         p.Interop,
		engine:          p.Engine,
		mu:              p.Mutex,
		log:             p.Logger,
		activeIsBuiltin: p.ActiveIsBuiltin,
		byName:          map[string]*domain.Record{},
	}
	c.inventory()
	return c
}

// add registers a record, first name wins.
func (c *Classifier) add(name string, index int, flags domain.Flags) {
	key := strings.ToLower(name)
	if _, ok := c.byName[key]; ok {
		return
	}
	r := domain.NewRecord(name, index, flags)
	c.records = append(c.records, r)
	c.byName[key] = r
}

// inventory enumerates the active configuration's spaces, or falls back to
// a hard-coded list describing an unsophisticated sRGB/Rec709 pipeline.
func (c *Classifier) inventory() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg != nil {
		nonraw := false
		for i, e := 0, c.cfg.NumColorSpaces(); i < e; i++ {
			cs, ok := c.cfg.ColorSpace(c.cfg.ColorSpaceNameByIndex(i))
			nonraw = nonraw || (ok && !cs.IsData())
		}
		if nonraw {
			for i, e := 0, c.cfg.NumColorSpaces(); i < e; i++ {
				c.add(c.cfg.ColorSpaceNameByIndex(i), i, 0)
			}
			for _, r := range c.records {
				c.classifyByName(r)
			}
			if lin, ok := c.cfg.ColorSpace("scene_linear"); ok {
				c.aliases.SceneLinear = lin.Name()
			}
			return
		}
		// A config defining only data spaces is useless; fall through to
		// the synthesized inventory.
		c.cfg = nil
	}

	// Case-insensitive registration collapses "rgb" and "RGB" into one
	// record, so the eleven names below yield ten records.
	linflags := domain.FlagLinearResponse | domain.FlagSceneLinear | domain.FlagLinSRGB
	c.add("linear", 0, linflags)
	c.add("scene_linear", 0, linflags)
	c.add("default", 0, linflags)
	c.add("rgb", 0, linflags)
	c.add("RGB", 0, linflags)
	c.add("lin_rec709_scene", 0, linflags)
	c.add("lin_srgb", 0, linflags)
	c.add("lin_rec709", 0, linflags)
	c.add("srgb_rec709_scene", 1, domain.FlagSRGB)
	c.add("sRGB", 1, domain.FlagSRGB)
	c.add("Rec709", 2, domain.FlagRec709)

	for _, r := range c.records {
		c.classifyByName(r)
	}
}

// Degraded reports whether the classifier is running without a usable
// configuration.
func (c *Classifier) Degraded() bool { return c.cfg == nil }

// Records returns the inventory in enumeration order.
func (c *Classifier) Records() []*domain.Record { return c.records }

// Record finds a record by name, case-insensitively.
func (c *Classifier) Record(name string) (*domain.Record, bool) {
	r, ok := c.byName[strings.ToLower(name)]
	return r, ok
}

// Aliases returns a snapshot of the per-category aliases discovered so far.
func (c *Classifier) Aliases() domain.AliasSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.aliases
}

// Flags classifies the named space (if not yet examined) and returns its
// category bitset. Unknown names report an empty set.
func (c *Classifier) Flags(name string) domain.Flags {
	r, ok := c.Record(name)
	if !ok {
		return 0
	}
	c.Examine(r)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return r.Flags()
}

// Canonical classifies the named space and returns its canonical alias.
func (c *Classifier) Canonical(name string) string {
	r, ok := c.Record(name)
	if !ok {
		return ""
	}
	c.Examine(r)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return r.Canonical()
}

// Examine runs the full heuristic stack on a record exactly once. The
// check-then-classify sequence is double-checked under the write lock so
// concurrent callers race only on the cheap first read.
func (c *Classifier) Examine(r *domain.Record) {
	c.mu.RLock()
	done := r.State() == domain.FullyClassified
	c.mu.RUnlock()
	if done {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if r.State() == domain.FullyClassified {
		return
	}
	c.classifyByName(r)
	c.classifyByConversions(r)
	c.reclassifyHeuristics(r)
	r.SetState(domain.FullyClassified)
}

// classifyByName matches a few canonical names exactly. For those spellings
// we believe the name outright. Must run under the write lock.
func (c *Classifier) classifyByName(r *domain.Record) {
	switch {
	case iequalsAny(r.Name, "srgb_rec709_scene", "srgb_tx", "srgb_texture",
		"srgb texture", "sRGB - Texture", "sRGB"):
		r.SetFlagAlias(domain.FlagSRGB, &c.aliases.SRGB)
	case iequalsAny(r.Name, "lin_rec709_scene", "lin_rec709",
		"Linear Rec.709 (sRGB)", "lin_srgb", "linear"):
		r.SetFlagAlias(domain.FlagLinSRGB|domain.FlagLinearResponse, &c.aliases.LinSRGB)
	case iequalsAny(r.Name, "ACEScg", "lin_ap1_scene", "lin_ap1"):
		r.SetFlagAlias(domain.FlagACEScg|domain.FlagLinearResponse, &c.aliases.ACEScg)
	case iequalsAny(r.Name, "Rec709"):
		r.SetFlagAlias(domain.FlagRec709, &c.aliases.Rec709)
	}

	if canonical := r.Flags().Canonical(); canonical != "" {
		r.SetCanonical(canonical)
		r.SetState(domain.FullyClassified)
		if c.log != nil {
			c.log.Debug("classified color space by name",
				"colorspace", r.Name, "canonical", canonical)
		}
	} else {
		r.SetState(domain.NameClassified)
	}
}

// classifyByConversions probes whether the space converts as the identity
// to one of the builtin reference spaces, identifying nonstandard names by
// their numbers. Must run under the write lock.
func (c *Classifier) classifyByConversions(r *domain.Record) {
	if r.State() == domain.FullyClassified || c.cfg == nil {
		return
	}

	if linear, err := c.cfg.IsColorSpaceLinear(r.Name, ports.ReferenceScene); err == nil && linear {
		r.SetFlag(domain.FlagLinearResponse)
	}

	if !r.Flags().Known() && c.engine != nil && c.builtin != nil && !c.activeIsBuiltin {
		if cs, ok := c.cfg.ColorSpace(r.Name); !ok || cs.HasNonTrivialConversion() {
			// LUT-3D, look, and display-view graphs are expensive to
			// invert and poor canonical candidates; leave them unknown.
		} else if c.sameAsBuiltin(r.Name, "srgb_tx") {
			r.SetFlagAlias(domain.FlagSRGB, &c.aliases.SRGB)
		} else if c.sameAsBuiltin(r.Name, "lin_srgb") {
			r.SetFlagAlias(domain.FlagLinSRGB|domain.FlagLinearResponse, &c.aliases.LinSRGB)
		} else if c.sameAsBuiltin(r.Name, "ACEScg") {
			r.SetFlagAlias(domain.FlagACEScg|domain.FlagLinearResponse, &c.aliases.ACEScg)
		}
	}

	if canonical := r.Flags().Canonical(); canonical != "" {
		r.SetCanonical(canonical)
		if c.log != nil {
			c.log.Debug("classified color space by conversion probe",
				"colorspace", r.Name, "canonical", canonical)
		}
	}
}

// sameAsBuiltin probes whether converting the test colors from the active
// config's space to the named builtin space is the identity.
func (c *Classifier) sameAsBuiltin(from, builtinTo string) bool {
	proc, err := c.engine.ProcessorFromConfigs(nil, c.cfg, from, c.builtin, builtinTo)
	if err != nil {
		return false
	}
	return YieldsIdentity(proc)
}

// reclassifyHeuristics is the legacy deduction used when no builtin
// reference config is available: if a space converts to the known sRGB
// alias exactly as a linear-sRGB source would (primaries and white fixed,
// mid gray picking up the sRGB curve), it is linear sRGB. Must run under
// the write lock.
func (c *Classifier) reclassifyHeuristics(r *domain.Record) {
	if c.builtin != nil || r.Flags().Known() || c.cfg == nil || c.aliases.SRGB == "" {
		return
	}

	srgb05 := float32(colorful.LinearRgb(0.5, 0.5, 0.5).R)
	expected := [][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
		{srgb05, srgb05, srgb05},
	}
	proc, err := c.cfg.Processor(nil, r.Name, c.aliases.SRGB)
	if err != nil {
		return
	}
	if Yields(proc, domain.TestColors(), expected) {
		r.SetFlagAlias(domain.FlagLinSRGB|domain.FlagLinearResponse, &c.aliases.LinSRGB)
		r.SetCanonical("lin_srgb")
		if c.log != nil {
			c.log.Debug("classified color space by legacy gamma deduction",
				"colorspace", r.Name)
		}
	}
}

// IdentifyBuiltinEquivalents asks the engine outright which of the active
// config's spaces match each of the three builtin reference spaces, and
// tags the matching records. The three queries run concurrently; results
// are applied under the lock.
func (c *Classifier) IdentifyBuiltinEquivalents() {
	if c.engine == nil || c.cfg == nil || c.builtin == nil {
		return
	}

	targets := []struct {
		builtin string
		flags   domain.Flags
		alias   *string
	}{
		{"srgb_tx", domain.FlagSRGB, &c.aliases.SRGB},
		{"lin_srgb", domain.FlagLinSRGB | domain.FlagLinearResponse, &c.aliases.LinSRGB},
		{"ACEScg", domain.FlagACEScg | domain.FlagLinearResponse, &c.aliases.ACEScg},
	}

	found := make([]string, len(targets))
	var g errgroup.Group
	for i, t := range targets {
		g.Go(func() error {
			found[i] = c.identifyBuiltin(t.builtin)
			return nil
		})
	}
	_ = g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range targets {
		if found[i] == "" {
			continue
		}
		r, ok := c.byName[strings.ToLower(found[i])]
		if !ok {
			continue
		}
		r.SetFlagAlias(t.flags, t.alias)
		if canonical := r.Flags().Canonical(); canonical != "" {
			r.SetCanonical(canonical)
		}
		if c.log != nil {
			c.log.Debug("identified builtin equivalent",
				"builtin", t.builtin, "colorspace", r.Name)
		}
	}
}

// identifyBuiltin resolves a builtin space name against the active config,
// preferring the interop identities config as the reference. Errors mean
// "no match".
func (c *Classifier) identifyBuiltin(name string) string {
	if c.interop != nil {
		if n, err := c.engine.IdentifyBuiltinColorSpace(c.cfg, c.interop, name); err == nil && n != "" {
			return n
		}
	}
	if n, err := c.engine.IdentifyBuiltinColorSpace(c.cfg, c.builtin, name); err == nil && n != "" {
		return n
	}
	return ""
}

func iequalsAny(name string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.EqualFold(name, c) {
			return true
		}
	}
	return false
}
