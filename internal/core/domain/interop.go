package domain

// CICP field values, per ITU-T H.273 / ISO 23091-2 code points.

// CICPPrimaries is the H.273 colour primaries code.
type CICPPrimaries int

// Colour primaries codes used by the interop table.
const (
	PrimariesRec709      CICPPrimaries = 1
	PrimariesUnspecified CICPPrimaries = 2
	PrimariesRec2020     CICPPrimaries = 9
	PrimariesXYZD65      CICPPrimaries = 10
	PrimariesP3D65       CICPPrimaries = 12
)

// CICPTransfer is the H.273 transfer characteristics code.
type CICPTransfer int

// Transfer characteristics codes used by the interop table.
const (
	TransferBT709       CICPTransfer = 1
	TransferUnspecified CICPTransfer = 2
	TransferGamma22     CICPTransfer = 4
	TransferLinear      CICPTransfer = 8
	TransferSRGB        CICPTransfer = 13
	TransferPQ          CICPTransfer = 16
	TransferGamma26     CICPTransfer = 17
	TransferHLG         CICPTransfer = 18
)

// CICPMatrix is the H.273 matrix coefficients code.
type CICPMatrix int

// Matrix coefficients codes used by the interop table.
const (
	MatrixRGB         CICPMatrix = 0
	MatrixBT709       CICPMatrix = 1
	MatrixUnspecified CICPMatrix = 2
	MatrixRec2020NCL  CICPMatrix = 9
	MatrixRec2020CL   CICPMatrix = 10
)

// CICPRange is the H.273 full-range flag.
type CICPRange int

// Range codes.
const (
	RangeNarrow CICPRange = 0
	RangeFull   CICPRange = 1
)

// InteropEntry relates a canonical interop identifier to its CICP 4-tuple
// (primaries, transfer, matrix, range). Some canonical spaces have no
// standard numeric code; those carry HasCICP == false.
type InteropEntry struct {
	ID      string
	CICP    [4]int
	HasCICP bool
}

func cicpEntry(id string, p CICPPrimaries, t CICPTransfer, m CICPMatrix) InteropEntry {
	return InteropEntry{
		ID:      id,
		CICP:    [4]int{int(p), int(t), int(m), int(RangeFull)},
		HasCICP: true,
	}
}

// interopIDs maps color interop identifiers to CICP codes, following the
// Color Interop Forum recommendations. Display-referred identifiers come
// first so they win in automatic conversion from CICP to interop ID.
var interopIDs = []InteropEntry{
	cicpEntry("srgb_rec709_display", PrimariesRec709, TransferSRGB, MatrixBT709),
	cicpEntry("g24_rec709_display", PrimariesRec709, TransferBT709, MatrixBT709),
	cicpEntry("srgb_p3d65_display", PrimariesP3D65, TransferSRGB, MatrixBT709),
	cicpEntry("srgbe_p3d65_display", PrimariesP3D65, TransferSRGB, MatrixBT709),
	cicpEntry("pq_p3d65_display", PrimariesP3D65, TransferPQ, MatrixRec2020NCL),
	cicpEntry("pq_rec2020_display", PrimariesRec2020, TransferPQ, MatrixRec2020NCL),
	cicpEntry("hlg_rec2020_display", PrimariesRec2020, TransferHLG, MatrixRec2020NCL),
	cicpEntry("g22_rec709_display", PrimariesRec709, TransferGamma22, MatrixBT709),
	// No CICP code for Adobe RGB primaries.
	{ID: "g22_adobergb_display"},
	cicpEntry("g26_p3d65_display", PrimariesP3D65, TransferGamma26, MatrixBT709),
	cicpEntry("g26_xyzd65_display", PrimariesXYZD65, TransferGamma26, MatrixUnspecified),
	cicpEntry("pq_xyzd65_display", PrimariesXYZD65, TransferPQ, MatrixUnspecified),

	// Scene-referred identifiers, CICP-coded where a code exists.
	{ID: "lin_ap1_scene"},
	{ID: "lin_ap0_scene"},
	cicpEntry("lin_rec709_scene", PrimariesRec709, TransferLinear, MatrixBT709),
	cicpEntry("lin_p3d65_scene", PrimariesP3D65, TransferLinear, MatrixBT709),
	cicpEntry("lin_rec2020_scene", PrimariesRec2020, TransferLinear, MatrixRec2020CL),
	{ID: "lin_adobergb_scene"},
	cicpEntry("lin_ciexyzd65_scene", PrimariesXYZD65, TransferLinear, MatrixUnspecified),
	cicpEntry("srgb_rec709_scene", PrimariesRec709, TransferSRGB, MatrixBT709),
	cicpEntry("g22_rec709_scene", PrimariesRec709, TransferGamma22, MatrixBT709),
	{ID: "g18_rec709_scene"},
	{ID: "srgb_ap1_scene"},
	{ID: "g22_ap1_scene"},
	cicpEntry("srgb_p3d65_scene", PrimariesP3D65, TransferSRGB, MatrixBT709),
	{ID: "g22_adobergb_scene"},

	// Other standard CIF interop IDs.
	{ID: "data"},
	cicpEntry("unknown", PrimariesUnspecified, TransferUnspecified, MatrixUnspecified),
}

// InteropEntries returns the interop identity table in its defined order.
func InteropEntries() []InteropEntry {
	return interopIDs
}

// InteropEntryByID returns the entry whose identifier equals id exactly.
func InteropEntryByID(id string) (InteropEntry, bool) {
	for _, e := range interopIDs {
		if e.ID == id {
			return e, true
		}
	}
	return InteropEntry{}, false
}

// CICPForID returns the CICP 4-tuple for the given interop identifier, or
// ok == false when the entry declares no CICP mapping.
func CICPForID(id string) (cicp [4]int, ok bool) {
	e, found := InteropEntryByID(id)
	if !found || !e.HasCICP {
		return [4]int{}, false
	}
	return e.CICP, true
}

// InteropIDForCICP returns the first entry, in table order, whose primaries
// and transfer fields match. Matrix and range do not participate in the
// reverse lookup; when several entries share primaries and transfer, table
// order decides, which prefers a display-referred interpretation.
func InteropIDForCICP(cicp [4]int) string {
	for _, e := range interopIDs {
		if e.HasCICP && e.CICP[0] == cicp[0] && e.CICP[1] == cicp[1] {
			return e.ID
		}
	}
	return ""
}
