package rebar

import (
	"errors"
	"math"

	is456 "Girder/internal/is456"
)

// ErrDoesNotFit reports that no diameter/layer combination fits the section
// width. The returned Arrangement still carries the best attempt so batch
// callers can keep going.
var ErrDoesNotFit = errors.New("no bar arrangement fits within the section width")

type Arrangement struct {
	DiaMM           float64 `json:"dia_mm"`
	Count           int     `json:"count"`
	Layers          int     `json:"layers"`
	Layer1Count     int     `json:"layer1_count"`
	Layer2Count     int     `json:"layer2_count"`
	AreaRequiredMM2 float64 `json:"area_required_mm2"`
	AreaProvidedMM2 float64 `json:"area_provided_mm2"`
	SpacingMM       float64 `json:"spacing_mm"` // clear spacing in the fullest layer
}

// SelectBarArrangement picks a diameter and count covering astReq within
// the width b, choosing from the standard bar sizes. Diameters are visited
// ascending; a single-layer fit at any diameter is preferred over splitting
// into two layers. At least two bars are always provided.
func SelectBarArrangement(astReq, bMM, coverMM, stirrupDiaMM float64, maxLayers int) (Arrangement, error) {
	return selectFrom(is456.StandardBarDiameters, astReq, bMM, coverMM, stirrupDiaMM, maxLayers)
}

func selectFrom(diameters []float64, astReq, bMM, coverMM, stirrupDiaMM float64, maxLayers int) (Arrangement, error) {
	if len(diameters) == 0 {
		diameters = is456.StandardBarDiameters
	}
	if maxLayers < 1 {
		maxLayers = 1
	}
	avail := bMM - 2*coverMM - 2*stirrupDiaMM

	for _, dia := range diameters {
		n := barCount(astReq, dia)
		if fitsInLayer(n, dia, avail) {
			return arrangement(astReq, dia, n, n, 0, avail), nil
		}
	}

	if maxLayers >= 2 {
		for _, dia := range diameters {
			n := barCount(astReq, dia)
			l1 := (n + 1) / 2
			l2 := n - l1
			if l2 < 2 {
				// Keep the two-bar floor in each layer.
				l2 = 2
				l1 = n - l2
				if l1 < 2 {
					l1 = 2
				}
			}
			if fitsInLayer(l1, dia, avail) {
				return arrangement(astReq, dia, l1+l2, l1, l2, avail), nil
			}
		}
	}

	// Best attempt: the largest diameter split across two layers.
	dia := diameters[len(diameters)-1]
	n := barCount(astReq, dia)
	l1 := (n + 1) / 2
	l2 := n - l1
	if l2 < 2 {
		l2 = 2
	}
	if l1 < 2 {
		l1 = 2
	}
	return arrangement(astReq, dia, l1+l2, l1, l2, avail), ErrDoesNotFit
}

func barCount(astReq, dia float64) int {
	area := is456.BarArea(dia)
	n := int(math.Ceil(astReq / area))
	if n < 2 {
		n = 2
	}
	return n
}

// fitsInLayer checks n bars of the given diameter against the clear width
// with the Cl 26.3.2 minimum spacing.
func fitsInLayer(n int, dia, avail float64) bool {
	if avail <= 0 {
		return false
	}
	gap := math.Max(dia, is456.MinClearSpacingMM)
	return float64(n)*dia+float64(n-1)*gap <= avail
}

func arrangement(astReq, dia float64, total, l1, l2 int, avail float64) Arrangement {
	a := Arrangement{
		DiaMM:           dia,
		Count:           total,
		Layers:          1,
		Layer1Count:     l1,
		Layer2Count:     l2,
		AreaRequiredMM2: astReq,
		AreaProvidedMM2: float64(total) * is456.BarArea(dia),
	}
	if l2 > 0 {
		a.Layers = 2
	}
	if l1 > 1 {
		a.SpacingMM = (avail - float64(l1)*dia) / float64(l1-1)
	}
	return a
}
