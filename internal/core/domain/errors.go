package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when a requested configuration file does not exist.
	ErrConfigNotFound = zerr.New("requested non-existent config")

	// ErrConfigRead is returned when a configuration file cannot be read.
	ErrConfigRead = zerr.New("failed to read config")

	// ErrConfigParse is returned when configuration text cannot be parsed.
	ErrConfigParse = zerr.New("failed to parse config")

	// ErrUnknownColorSpace is returned when a designator names no color space,
	// role, or alias in the queried configuration.
	ErrUnknownColorSpace = zerr.New("unknown color space")

	// ErrUnknownDisplay is returned when a display name is not defined.
	ErrUnknownDisplay = zerr.New("unknown display")

	// ErrUnknownView is returned when a view name is not defined for a display.
	ErrUnknownView = zerr.New("unknown view")

	// ErrUnknownLook is returned when a look name is not defined.
	ErrUnknownLook = zerr.New("unknown look")

	// ErrUnknownNamedTransform is returned when a named transform is not defined.
	ErrUnknownNamedTransform = zerr.New("unknown named transform")

	// ErrUnsupportedTransform is returned when a transform graph contains a
	// node the engine cannot evaluate (e.g. an unimplemented builtin style).
	ErrUnsupportedTransform = zerr.New("unsupported transform")

	// ErrProcessorConstruction is returned when the engine rejects a
	// processor request.
	ErrProcessorConstruction = zerr.New("failed to construct processor")

	// ErrBadContext is returned when context keys and values cannot be paired.
	ErrBadContext = zerr.New("mismatched context keys and values")

	// ErrNoConfig is returned when an operation needs a loaded configuration
	// and none is available.
	ErrNoConfig = zerr.New("no configuration loaded")
)
