package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zachlewis/colorconfig/internal/core/domain"
)

func TestInteropTableDisplayEntriesFirst(t *testing.T) {
	entries := domain.InteropEntries()
	require.NotEmpty(t, entries)

	// Displays lead the table, then scene-referred spaces, then the
	// data/unknown tail. Once the display block ends no display entry may
	// reappear.
	seenScene := false
	for _, e := range entries {
		if strings.HasSuffix(e.ID, "_scene") {
			seenScene = true
		}
		if strings.HasSuffix(e.ID, "_display") {
			assert.False(t, seenScene, "display entry %q after scene block", e.ID)
		}
	}
	assert.Equal(t, "srgb_rec709_display", entries[0].ID)
	assert.Equal(t, "unknown", entries[len(entries)-1].ID)
	assert.Equal(t, "data", entries[len(entries)-2].ID)
}

func TestCICPForID(t *testing.T) {
	tests := []struct {
		id   string
		cicp [4]int
		ok   bool
	}{
		{"srgb_rec709_display", [4]int{1, 13, 1, 1}, true},
		{"pq_rec2020_display", [4]int{9, 16, 9, 1}, true},
		{"lin_rec709_scene", [4]int{1, 8, 1, 1}, true},
		{"g22_adobergb_display", [4]int{}, false}, // no standard code
		{"lin_ap1_scene", [4]int{}, false},
		{"data", [4]int{}, false},
		{"no_such_id", [4]int{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cicp, ok := domain.CICPForID(tt.id)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.cicp, cicp)
		})
	}
}

func TestInteropIDForCICPMatchesPrimariesAndTransferOnly(t *testing.T) {
	// Matrix and range fields are deliberately ignored; a tuple with an
	// arbitrary matrix code still resolves.
	assert.Equal(t, "srgb_rec709_display", domain.InteropIDForCICP([4]int{1, 13, 0, 0}))
	assert.Equal(t, "srgb_rec709_display", domain.InteropIDForCICP([4]int{1, 13, 9, 1}))
}

func TestInteropIDForCICPPrefersDisplayInterpretation(t *testing.T) {
	// srgb_rec709_display and srgb_rec709_scene share primaries 1 and
	// transfer 13; the display entry comes first and wins.
	assert.Equal(t, "srgb_rec709_display", domain.InteropIDForCICP([4]int{1, 13, 1, 1}))

	// Same for gamma 2.2 over Rec709 primaries.
	assert.Equal(t, "g22_rec709_display", domain.InteropIDForCICP([4]int{1, 4, 1, 1}))
}

func TestInteropIDForCICPUnknownTuple(t *testing.T) {
	assert.Equal(t, "", domain.InteropIDForCICP([4]int{99, 99, 0, 0}))
}

func TestInteropEntryByIDExactMatch(t *testing.T) {
	e, ok := domain.InteropEntryByID("lin_ap0_scene")
	require.True(t, ok)
	assert.Equal(t, "lin_ap0_scene", e.ID)
	assert.False(t, e.HasCICP)

	_, ok = domain.InteropEntryByID("LIN_AP0_SCENE")
	assert.False(t, ok, "identifier matching is exact, not case-folded")
}
