package domain

// ClassState tracks how far a record has progressed through classification.
type ClassState int

const (
	// Unclassified means no heuristic has run yet.
	Unclassified ClassState = iota
	// NameClassified means the cheap name heuristics have run.
	NameClassified
	// FullyClassified means all heuristics (including conversion probes)
	// have run; the flags are final.
	FullyClassified
)

// Record describes one color space known to a configuration. Identity (Name,
// Index) is immutable; flags, canonical name, and state are set lazily by the
// classification engine, always under the owning configuration's lock.
type Record struct {
	// Name is the canonical string identifier as known to its source.
	Name string
	// Index is the position within the enumerable space list. More than one
	// record can share an index -- aliases.
	Index int

	flags     Flags
	state     ClassState
	canonical string
}

// NewRecord creates a Record with the given pre-set flags (used by the
// degraded no-configuration inventory, which knows its spaces up front).
func NewRecord(name string, index int, flags Flags) *Record {
	return &Record{Name: name, Index: index, flags: flags}
}

// Flags returns the current classification bitset.
func (r *Record) Flags() Flags { return r.flags }

// State returns the classification progress of the record.
func (r *Record) State() ClassState { return r.state }

// SetState advances the classification state machine. States only move
// forward; a regression is ignored.
func (r *Record) SetState(s ClassState) {
	if s > r.state {
		r.state = s
	}
}

// Canonical returns the best-known canonical name, or "" if unclassified.
func (r *Record) Canonical() string { return r.canonical }

// SetCanonical records the canonical name for this record.
func (r *Record) SetCanonical(name string) { r.canonical = name }

// SetFlag ors flagval into the record's flags.
func (r *Record) SetFlag(flagval Flags) {
	r.flags |= flagval
}

// SetFlagAlias ors flagval into the record's flags and, if the category alias
// is still unset, claims it with this record's name (first-classified wins).
func (r *Record) SetFlagAlias(flagval Flags, alias *string) {
	r.flags |= flagval
	if *alias == "" {
		*alias = r.Name
	}
}

// AliasSet holds the per-category alias discovered during classification:
// the name, in the active configuration, of the first space classified into
// each category.
type AliasSet struct {
	SceneLinear string
	LinSRGB     string
	SRGB        string
	ACEScg      string
	Rec709      string
}
