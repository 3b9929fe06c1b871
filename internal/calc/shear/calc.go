package shear

import (
	"fmt"
	"math"
	"sort"

	is456 "Girder/internal/is456"
)

// DefaultStirrupDiameters and DefaultStirrupSpacings are the option sets
// offered when the caller does not supply its own.
var (
	DefaultStirrupDiameters = []float64{8, 10, 12}
	DefaultStirrupSpacings  = []float64{100, 125, 150, 175, 200, 250, 300}
)

type Options struct {
	Diameters []float64
	Spacings  []float64
}

type Stirrups struct {
	TauVMPa        float64 `json:"tau_v_mpa"`
	TauCMPa        float64 `json:"tau_c_mpa"`
	TauCMaxMPa     float64 `json:"tau_c_max_mpa"`
	VusKN          float64 `json:"vus_kn"`
	DiaMM          float64 `json:"stirrup_dia_mm"`
	SpacingMM      float64 `json:"stirrup_spacing_mm"`
	MinimumGoverns bool    `json:"minimum_governs"`
	Adequate       bool    `json:"adequate"`
}

// SelectStirrups designs two-legged vertical stirrups per Cl 40. Divisions
// by zero quantities short-circuit to a zero result instead of panicking.
func SelectStirrups(bMM, dMM, vuKN, fck, fy, ptPercent float64, opts Options) Stirrups {
	if len(opts.Diameters) == 0 {
		opts.Diameters = DefaultStirrupDiameters
	}
	if len(opts.Spacings) == 0 {
		opts.Spacings = DefaultStirrupSpacings
	}
	if bMM <= 0 || dMM <= 0 || fy <= 0 {
		return Stirrups{}
	}

	out := Stirrups{
		TauVMPa:    vuKN * 1000 / (bMM * dMM),
		TauCMPa:    is456.TauC(ptPercent, fck),
		TauCMaxMPa: is456.TauCMax(fck),
	}

	vusN := (out.TauVMPa - out.TauCMPa) * bMM * dMM
	if vusN < 0 {
		vusN = 0
	}
	out.VusKN = vusN / 1000

	maxSpacing := math.Min(0.75*dMM, is456.MaxStirrupSpacingMM)

	dias := append([]float64(nil), opts.Diameters...)
	sort.Float64s(dias)
	spacings := append([]float64(nil), opts.Spacings...)
	sort.Sort(sort.Reverse(sort.Float64Slice(spacings)))

	for _, dia := range dias {
		asv := 2 * is456.BarArea(dia)
		// Cl 26.5.1.6 minimum shear reinforcement cap on spacing
		minReinfCap := 0.87 * fy * asv / (0.4 * bMM)
		for _, s := range spacings {
			if s <= 0 || s > maxSpacing || s > minReinfCap {
				continue
			}
			capN := 0.87 * fy * asv * dMM / s
			if capN >= vusN {
				out.DiaMM = dia
				out.SpacingMM = s
				out.MinimumGoverns = vusN == 0
				out.Adequate = out.TauVMPa <= out.TauCMaxMPa
				return out
			}
		}
	}

	// Nothing in the option sets carries Vus: report the heaviest attempt
	// rather than an empty configuration.
	out.DiaMM = dias[len(dias)-1]
	out.SpacingMM = spacings[len(spacings)-1]
	out.Adequate = false
	return out
}

type Input struct {
	BMM       float64 `json:"b_mm"`
	DMM       float64 `json:"d_mm"` // effective depth
	VuKN      float64 `json:"vu_kn"`
	FckMPa    float64 `json:"fck_mpa"`
	FyMPa     float64 `json:"fy_mpa"`
	PtPercent float64 `json:"pt_percent"`
}

// Calculate is the standalone stirrup design entry point used by the API.
func Calculate(in Input) (Stirrups, error) {
	if in.BMM <= 0 || in.DMM <= 0 {
		return Stirrups{}, fmt.Errorf("invalid section: b=%.0f mm, d=%.0f mm", in.BMM, in.DMM)
	}
	if in.FckMPa <= 0 {
		in.FckMPa = 25
	}
	if in.FyMPa <= 0 {
		in.FyMPa = 500
	}
	if in.PtPercent <= 0 {
		in.PtPercent = 0.25
	}
	return SelectStirrups(in.BMM, in.DMM, in.VuKN, in.FckMPa, in.FyMPa, in.PtPercent, Options{}), nil
}
