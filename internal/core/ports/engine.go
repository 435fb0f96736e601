// Package ports defines the interfaces between the color identity core and
// its collaborators: the transform-construction engine, logging, and tracing.
package ports

// ReferenceSpace selects which reference a color space's conversion is
// expressed against.
type ReferenceSpace int

const (
	// ReferenceScene is the scene-referred reference space.
	ReferenceScene ReferenceSpace = iota
	// ReferenceDisplay is the display-referred reference space.
	ReferenceDisplay
)

// Engine is the transform-construction collaborator. Implementations load
// configurations and build processors; the core never evaluates color math
// itself.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type Engine interface {
	// LoadConfig loads a configuration from a file path, a builtin:// URI,
	// or in-memory config text (any source containing a newline is treated
	// as literal text).
	LoadConfig(source string) (Config, error)

	// ProcessorFromConfigs builds a processor bridging two configurations
	// through their common interchange space.
	ProcessorFromConfigs(ctx map[string]string, srcCfg Config, src string, dstCfg Config, dst string) (Processor, error)

	// IdentifyBuiltinColorSpace returns the name of the color space in cfg
	// equivalent to the named space of the reference config, or "" when no
	// equivalent exists.
	IdentifyBuiltinColorSpace(cfg, reference Config, name string) (string, error)
}

// Config is one loaded, immutable configuration source.
type Config interface {
	// Name returns the configuration's declared name.
	Name() string

	NumColorSpaces() int
	ColorSpaceNameByIndex(index int) string

	// ColorSpace resolves name as a color space, role, or alias.
	ColorSpace(name string) (ColorSpace, bool)

	Roles() []string
	Looks() []string
	Displays() []string
	Views(display string) []string
	DefaultDisplay() string
	DefaultView(display string) string

	// DisplayViewColorSpaceName returns the color space a display/view pair
	// renders into.
	DisplayViewColorSpaceName(display, view string) string
	// DisplayViewLooks returns the looks a view applies, comma-separated.
	DisplayViewLooks(display, view string) string

	NamedTransforms() []string
	NamedTransformAliases(name string) []string

	// IsColorSpaceLinear reports whether the named space has a linear
	// transfer function relative to the given reference.
	IsColorSpaceLinear(name string, ref ReferenceSpace) (bool, error)

	// ColorSpaceFromFilePath applies the configuration's file rules.
	ColorSpaceFromFilePath(path string) string
	// FilePathOnlyMatchesDefaultRule reports whether only the catch-all
	// default file rule matched.
	FilePathOnlyMatchesDefaultRule(path string) bool

	// Processor builds a conversion processor from src to dst, applying the
	// given context variables.
	Processor(ctx map[string]string, src, dst string) (Processor, error)
	// LookProcessor builds a processor applying the named look(s) while
	// converting src to dst.
	LookProcessor(ctx map[string]string, looks, src, dst string, inverse bool) (Processor, error)
	// DisplayViewProcessor builds the viewing pipeline for a display/view
	// pair, with an optional looks override.
	DisplayViewProcessor(ctx map[string]string, src, display, view, looks string, inverse bool) (Processor, error)
	// FileProcessor builds a processor from a transform file.
	FileProcessor(path string, inverse bool) (Processor, error)
	// NamedTransformProcessor builds a processor for a named transform.
	NamedTransformProcessor(ctx map[string]string, name string, inverse bool) (Processor, error)
}

// ColorSpace is one color space definition within a Config.
type ColorSpace interface {
	Name() string
	Aliases() []string
	Family() string
	// Encoding returns the declared encoding tag (scene-linear, log,
	// sdr-video, hdr-video, display-linear, data), or "".
	Encoding() string
	// InteropID returns the declared interop identifier, or "".
	InteropID() string
	// IsData reports whether the space holds non-color data.
	IsData() bool
	// HasNonTrivialConversion reports whether the space's reference
	// conversion graph contains a LUT-3D, look, or display-view transform
	// anywhere.
	HasNonTrivialConversion() bool
}
