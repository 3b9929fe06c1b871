package deflection

import (
	"fmt"

	is456 "Girder/internal/is456"
)

type Input struct {
	SpanMM           float64 `json:"span_mm"`
	EffectiveDepthMM float64 `json:"effective_depth_mm"`
	PtPercent        float64 `json:"pt_percent"`
	Support          string  `json:"support"` // simply, continuous, cantilever
}

type Result struct {
	SpanDepthRatio float64 `json:"span_depth_ratio"`
	AllowableRatio float64 `json:"allowable_ratio"`
	OK             bool    `json:"ok"`
	Notes          string  `json:"notes"`
}

// Calculate runs the Cl 23.2.1 span/effective-depth serviceability check
// with the tension-steel modification factor.
func Calculate(in Input) (Result, error) {
	if in.SpanMM <= 0 || in.EffectiveDepthMM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.PtPercent <= 0 {
		in.PtPercent = 0.3
	}
	ratio := in.SpanMM / in.EffectiveDepthMM
	allowable := is456.BasicSpanDepthRatio(in.Support) * is456.TensionModificationFactor(in.PtPercent)
	return Result{
		SpanDepthRatio: ratio,
		AllowableRatio: allowable,
		OK:             ratio <= allowable,
		Notes:          "Span/effective-depth control of deflection, Cl 23.2.1.",
	}, nil
}
