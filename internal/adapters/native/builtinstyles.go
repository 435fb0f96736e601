package native

import "github.com/zachlewis/colorconfig/internal/core/domain"

// Gamut matrices shared between the builtin styles and the embedded
// configuration. Row-major 3x3, no offsets.
var (
	ap1ToAP0 = [9]float64{
		0.6954522414, 0.1406786965, 0.1638690622,
		0.0447945634, 0.8596711185, 0.0955343182,
		-0.0055258826, 0.0040252103, 1.0015006723,
	}
	xyzD65ToAP0 = [9]float64{
		1.0634954914942, 0.00640891019711789, -0.0158067866176054,
		-0.492074127923892, 1.36822340747333, 0.0913370883144736,
		-0.00281646163925351, 0.00464417105680067, 0.916418574593656,
	}
	xyzD65ToP3D65 = [9]float64{
		2.49349691194143, -0.931383617919124, -0.402710784450717,
		-0.829488969561575, 1.76266406031835, 0.0236246858419436,
		0.0358458302437845, -0.0761723892680418, 0.956884524007688,
	}
	xyzD65ToRec2020 = [9]float64{
		1.71665118797127, -0.355670783776392, -0.25336628137366,
		-0.666684351832489, 1.61648123663494, 0.0157685458139111,
		0.0176398574453108, -0.0427706132578085, 0.942103121235474,
	}
)

// compileBuiltinStyle resolves a named builtin transform style to a compiled
// transform. Styles outside this table parse fine but cannot be evaluated;
// constructing a processor through one fails with ErrUnsupportedTransform.
func compileBuiltinStyle(style string) (transform, error) {
	switch style {
	case "ACEScg_to_ACES2065-1":
		return newMatrixTransform3x3(ap1ToAP0, [3]float64{}), nil

	case "UTILITY - ACES-AP0_to_CIE-XYZ-D65_BFD":
		m := newMatrixTransform3x3(xyzD65ToAP0, [3]float64{})
		return m.inverted()

	case "CURVE - LINEAR_to_ST-2084":
		return pqTransform{encode: true}, nil

	case "DISPLAY - CIE-XYZ-D65_to_ST2084-P3-D65":
		return chainTransform{
			newMatrixTransform3x3(xyzD65ToP3D65, [3]float64{}),
			pqTransform{encode: true},
		}, nil

	case "DISPLAY - CIE-XYZ-D65_to_REC.2100-PQ":
		return chainTransform{
			newMatrixTransform3x3(xyzD65ToRec2020, [3]float64{}),
			pqTransform{encode: true},
		}, nil
	}
	return nil, annotate(domain.ErrUnsupportedTransform, "style", style)
}
