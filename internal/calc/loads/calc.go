package loads

import "fmt"

type Combination string

const (
	ComboGravity    Combination = "1.5(DL+LL)"
	ComboWindLead   Combination = "1.2(DL+LL+WL)"
	ComboDeadUplift Combination = "0.9DL+1.5WL"
)

type Input struct {
	Combination Combination `json:"combination"`
	SpanMM      float64     `json:"span_mm"`
	DeadKNM     float64     `json:"dead_kn_m"`
	LiveKNM     float64     `json:"live_kn_m"`
	WindKNM     float64     `json:"wind_kn_m"`
}

type Result struct {
	FactoredUDLKNM float64 `json:"factored_udl_kn_m"`
	MuKNm          float64 `json:"mu_knm"`
	VuKN           float64 `json:"vu_kn"`
	ComboName      string  `json:"combo_name"`
	Notes          string  `json:"notes"`
}

// Calculate applies an IS 456 Table 18 load combination and returns the
// factored demands of a simply supported span under uniform load.
func Calculate(in Input) (Result, error) {
	if in.SpanMM <= 0 {
		return Result{}, fmt.Errorf("invalid span")
	}
	if in.DeadKNM <= 0 {
		return Result{}, fmt.Errorf("invalid permanent load")
	}
	gD, gL, gW, name := factors(in.Combination)
	wu := in.DeadKNM*gD + in.LiveKNM*gL + in.WindKNM*gW

	spanM := in.SpanMM / 1000.0
	return Result{
		FactoredUDLKNM: wu,
		MuKNm:          wu * spanM * spanM / 8.0,
		VuKN:           wu * spanM / 2.0,
		ComboName:      name,
		Notes:          "Simply supported span, uniform load, midspan moment and end shear.",
	}, nil
}

func factors(c Combination) (gD, gL, gW float64, name string) {
	switch c {
	case ComboWindLead:
		return 1.2, 1.2, 1.2, "1.2(DL+LL+WL)"
	case ComboDeadUplift:
		return 0.9, 0, 1.5, "0.9DL+1.5WL"
	default:
		return 1.5, 1.5, 0, "1.5(DL+LL)"
	}
}
