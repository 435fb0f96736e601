package native

import "go.trai.ch/zerr"

// annotate attaches a key/value pair to a sentinel while keeping the sentinel
// itself on the unwrap chain. zerr.With on a bare sentinel returns a detached
// copy whose Unwrap is nil, so errors.Is against the sentinel would fail.
func annotate(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}
