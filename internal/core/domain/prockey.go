package domain

import "github.com/cespare/xxhash/v2"

// Shape tags the request family a key belongs to. It participates in both
// struct equality and the fingerprint, so a look request with empty looks
// never lands in the same slot as a plain conversion over the same endpoints.
type Shape uint8

const (
	ShapeConversion Shape = iota
	ShapeLook
	ShapeDisplay
	ShapeFile
	ShapeNamedTransform
)

// ProcKey identifies a processor request in the cache. Two keys are equal iff
// every field compares equal; Hash is derived deterministically from the
// fields at construction, so equal keys always carry equal hashes.
//
// Distinct request shapes populate disjoint subsets of fields and carry their
// Shape tag, so keys from different shapes never collide.
type ProcKey struct {
	Shape          Shape
	Src            string
	Dst            string
	ContextKey     string
	ContextValue   string
	Looks          string
	Display        string
	View           string
	File           string
	NamedTransform string
	Inverse        bool

	Hash uint64
}

// NewProcKey builds a key and precomputes its fingerprint. Fields are framed
// with zero-byte separators so that adjacent fields cannot run together.
func NewProcKey(shape Shape, src, dst, ctxKey, ctxVal, looks, display, view, file, namedTransform string, inverse bool) ProcKey {
	k := ProcKey{
		Shape:          shape,
		Src:            src,
		Dst:            dst,
		ContextKey:     ctxKey,
		ContextValue:   ctxVal,
		Looks:          looks,
		Display:        display,
		View:           view,
		File:           file,
		NamedTransform: namedTransform,
		Inverse:        inverse,
	}
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(shape)})
	for _, field := range []string{src, dst, ctxKey, ctxVal, looks, display, view, file, namedTransform} {
		_, _ = d.WriteString(field)
		_, _ = d.Write([]byte{0})
	}
	if inverse {
		_, _ = d.Write([]byte{1})
	} else {
		_, _ = d.Write([]byte{0})
	}
	k.Hash = d.Sum64()
	return k
}

// ConversionKey is the shape used for plain src -> dst conversions.
func ConversionKey(src, dst, ctxKey, ctxVal string) ProcKey {
	return NewProcKey(ShapeConversion, src, dst, ctxKey, ctxVal, "", "", "", "", "", false)
}

// LookKey is the shape used for look transforms.
func LookKey(looks, src, dst string, inverse bool, ctxKey, ctxVal string) ProcKey {
	return NewProcKey(ShapeLook, src, dst, ctxKey, ctxVal, looks, "", "", "", "", inverse)
}

// DisplayKey is the shape used for display/view pipelines.
func DisplayKey(display, view, src, looks string, inverse bool, ctxKey, ctxVal string) ProcKey {
	return NewProcKey(ShapeDisplay, src, "", ctxKey, ctxVal, looks, display, view, "", "", inverse)
}

// FileKey is the shape used for file-based transforms.
func FileKey(file string, inverse bool) ProcKey {
	return NewProcKey(ShapeFile, "", "", "", "", "", "", "", file, "", inverse)
}

// NamedTransformKey is the shape used for named transforms.
func NamedTransformKey(name string, inverse bool, ctxKey, ctxVal string) ProcKey {
	return NewProcKey(ShapeNamedTransform, "", "", ctxKey, ctxVal, "", "", "", "", name, inverse)
}
