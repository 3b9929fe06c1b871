package cost

import (
	"fmt"

	is456 "Girder/internal/is456"
)

// Profile holds the unit rates used to price a beam. Rates follow CPWD-style
// schedules; override per project or region as needed.
type Profile struct {
	ConcreteRatePerM3 map[int]float64 `json:"concrete_rate_per_m3"` // keyed by grade (M25 -> 25)
	SteelRatePerKg    float64         `json:"steel_rate_per_kg"`
	FormworkRatePerM2 float64         `json:"formwork_rate_per_m2"`
	LabourRatePerM3   float64         `json:"labour_rate_per_m3"`
}

// DefaultProfile returns the built-in regional rate table. The returned
// value is a fresh copy; callers may mutate their own copy freely.
func DefaultProfile() Profile {
	return Profile{
		ConcreteRatePerM3: map[int]float64{
			25: 6200,
			30: 6700,
			35: 7200,
			40: 7800,
		},
		SteelRatePerKg:    68,
		FormworkRatePerM2: 320,
		LabourRatePerM3:   1600,
	}
}

// ConcreteRate returns the rate for the given grade, falling back to the
// M25 rate when the grade is not in the table.
func (p Profile) ConcreteRate(fck float64) float64 {
	if r, ok := p.ConcreteRatePerM3[int(fck)]; ok {
		return r
	}
	return p.ConcreteRatePerM3[25]
}

type Input struct {
	BMM     float64  `json:"b_mm"`
	DMM     float64  `json:"d_mm"` // overall depth
	SpanMM  float64  `json:"span_mm"`
	AstMM2  float64  `json:"ast_mm2"`
	FckMPa  float64  `json:"fck_mpa"`
	Profile *Profile `json:"profile,omitempty"`
}

type Breakdown struct {
	ConcreteVolumeM3 float64 `json:"concrete_volume_m3"`
	SteelMassKg      float64 `json:"steel_mass_kg"`
	FormworkAreaM2   float64 `json:"formwork_area_m2"`
	ConcreteCost     float64 `json:"concrete_cost"`
	SteelCost        float64 `json:"steel_cost"`
	FormworkCost     float64 `json:"formwork_cost"`
	LabourCost       float64 `json:"labour_cost"`
	TotalCost        float64 `json:"total_cost"`
}

// Calculate prices one rectangular beam: gross concrete volume, tension
// steel mass over the full span, and side-plus-soffit formwork.
func Calculate(in Input) (Breakdown, error) {
	if in.BMM <= 0 || in.DMM <= 0 || in.SpanMM <= 0 {
		return Breakdown{}, fmt.Errorf("invalid geometry: b=%.0f, D=%.0f, span=%.0f", in.BMM, in.DMM, in.SpanMM)
	}
	if in.AstMM2 < 0 {
		return Breakdown{}, fmt.Errorf("invalid steel area: %.1f mm2", in.AstMM2)
	}
	p := DefaultProfile()
	if in.Profile != nil {
		p = *in.Profile
	}

	bd := Breakdown{
		ConcreteVolumeM3: in.BMM * in.DMM * in.SpanMM / 1e9,
		SteelMassKg:      in.AstMM2 * in.SpanMM * is456.SteelDensity / 1e9,
		FormworkAreaM2:   (2*in.DMM + in.BMM) * in.SpanMM / 1e6,
	}
	bd.ConcreteCost = bd.ConcreteVolumeM3 * p.ConcreteRate(in.FckMPa)
	bd.SteelCost = bd.SteelMassKg * p.SteelRatePerKg
	bd.FormworkCost = bd.FormworkAreaM2 * p.FormworkRatePerM2
	bd.LabourCost = bd.ConcreteVolumeM3 * p.LabourRatePerM3
	bd.TotalCost = bd.ConcreteCost + bd.SteelCost + bd.FormworkCost + bd.LabourCost
	return bd, nil
}
