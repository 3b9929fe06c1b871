package is456

import "math"

// IS 456:2000 Material Constants (Limit State Method)

const (
	// Unit weight of reinforcement steel
	SteelDensity = 7850.0 // kg/m3

	// Minimum clear spacing between bars in a layer, Cl 26.3.2
	// (bar diameter governs above this; 20 mm aggregate assumed)
	MinClearSpacingMM = 25.0

	// Maximum tension steel, Cl 26.5.1.1(b)
	MaxSteelPercent = 4.0

	// Maximum stirrup spacing for vertical stirrups, Cl 26.5.1.5
	MaxStirrupSpacingMM = 300.0
)

// StandardBarDiameters are the commercially available bar sizes (mm).
var StandardBarDiameters = []float64{8, 10, 12, 16, 20, 25, 32}

// XuMaxRatio returns the limiting neutral axis depth ratio xu,max/d
// per Cl 38.1 for the given steel grade.
func XuMaxRatio(fy float64) float64 {
	switch {
	case fy <= 250:
		return 0.53
	case fy <= 415:
		return 0.48
	default:
		return 0.46
	}
}

// MuLim returns the limiting moment of resistance of a singly reinforced
// rectangular section in N-mm (Annex G-1.1(c)).
func MuLim(bMM, dMM, fck, fy float64) float64 {
	k := XuMaxRatio(fy)
	return 0.36 * k * (1 - 0.42*k) * fck * bMM * dMM * dMM
}

// MinSteelPercent returns the minimum tension steel as a percentage of b*d
// per Cl 26.5.1.1(a): As,min/(b*d) = 0.85/fy.
func MinSteelPercent(fy float64) float64 {
	if fy <= 0 {
		return 0
	}
	return 85.0 / fy
}

// BarArea returns the cross-sectional area of one bar in mm2.
func BarArea(diaMM float64) float64 {
	return math.Pi * diaMM * diaMM / 4.0
}

// Table 19 design shear strength of concrete for M25, keyed by
// tension steel percentage 100*As/(b*d). Other grades scale by sqrt(fck/25).
var tauCTable = []struct {
	pt   float64
	tauC float64
}{
	{0.15, 0.29},
	{0.25, 0.36},
	{0.50, 0.49},
	{0.75, 0.57},
	{1.00, 0.64},
	{1.25, 0.70},
	{1.50, 0.74},
	{1.75, 0.78},
	{2.00, 0.82},
	{2.25, 0.85},
	{2.50, 0.88},
	{2.75, 0.90},
	{3.00, 0.92},
}

// TauC returns the design shear strength of concrete (MPa) per Table 19,
// linearly interpolated on steel percentage and scaled for grade, capped
// by TauCMax.
func TauC(ptPercent, fck float64) float64 {
	if ptPercent < tauCTable[0].pt {
		ptPercent = tauCTable[0].pt
	}
	last := tauCTable[len(tauCTable)-1]
	tau := last.tauC
	for i := 1; i < len(tauCTable); i++ {
		if ptPercent <= tauCTable[i].pt {
			lo, hi := tauCTable[i-1], tauCTable[i]
			tau = lo.tauC + (hi.tauC-lo.tauC)*(ptPercent-lo.pt)/(hi.pt-lo.pt)
			break
		}
	}
	if fck > 0 && fck != 25 {
		tau *= math.Sqrt(fck / 25.0)
	}
	return math.Min(tau, TauCMax(fck))
}

// TauCMax returns the maximum shear stress with shear reinforcement (MPa)
// per Table 20.
func TauCMax(fck float64) float64 {
	switch {
	case fck >= 40:
		return 4.0
	case fck >= 35:
		return 3.7
	case fck >= 30:
		return 3.5
	case fck >= 25:
		return 3.1
	case fck >= 20:
		return 2.8
	default:
		return 2.5
	}
}

// BasicSpanDepthRatio returns the basic span/effective-depth ratio of
// Cl 23.2.1 for the given support condition.
func BasicSpanDepthRatio(support string) float64 {
	switch support {
	case "cantilever":
		return 7
	case "continuous":
		return 26
	default: // simply supported
		return 20
	}
}

// TensionModificationFactor approximates the Fig. 4 modification factor
// for tension reinforcement, keyed by steel percentage (fs = 0.58*fy
// assumed for Fe500 at service).
func TensionModificationFactor(ptPercent float64) float64 {
	switch {
	case ptPercent <= 0.2:
		return 1.7
	case ptPercent <= 0.4:
		return 1.4
	case ptPercent <= 0.6:
		return 1.2
	case ptPercent <= 1.0:
		return 1.0
	case ptPercent <= 1.5:
		return 0.9
	default:
		return 0.8
	}
}
