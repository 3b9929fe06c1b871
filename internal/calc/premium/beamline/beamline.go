package beamline

import (
	"math"

	rebar "Girder/internal/calc/premium/rebar"
	is456 "Girder/internal/is456"
	"go.uber.org/zap"
)

// Above this many bars in a layer the count is split across two layers.
const maxBarsPerLayer = 6

type Beam struct {
	BeamID string  `json:"beam_id"`
	BMM    float64 `json:"b_mm"`
	DMM    float64 `json:"d_mm"`
	SpanMM float64 `json:"span_mm"`
	MuKNm  float64 `json:"mu_knm"`
	VuKN   float64 `json:"vu_kn"`
}

type Input struct {
	Beams          []Beam  `json:"beams"`
	FckMPa         float64 `json:"fck_mpa"`
	FyMPa          float64 `json:"fy_mpa"`
	CoverMM        float64 `json:"cover_mm"`
	UnifyDiameters bool    `json:"unify_diameters"`
}

type BeamConfig struct {
	BeamID           string  `json:"beam_id"`
	Bottom1DiaMM     float64 `json:"bottom_layer1_dia"`
	Bottom1Count     int     `json:"bottom_layer1_count"`
	Bottom2DiaMM     float64 `json:"bottom_layer2_dia"`
	Bottom2Count     int     `json:"bottom_layer2_count"`
	StirrupDiaMM     float64 `json:"stirrup_dia_mm"`
	StirrupSpacingMM float64 `json:"stirrup_spacing_mm"`
	AstRequiredMM2   float64 `json:"ast_required_mm2"`
	AstProvidedMM2   float64 `json:"ast_provided_mm2"`
}

type Result struct {
	Configs         []BeamConfig `json:"beam_configs"`
	UnifiedBarDiaMM float64      `json:"unified_bar_dia"`
	TotalSteelKg    float64      `json:"total_steel_kg"`
	BeamsProcessed  int          `json:"beams_processed"`
	BeamsSkipped    int          `json:"beams_skipped"`
}

type Optimizer struct {
	logger *zap.Logger
}

func NewOptimizer(logger *zap.Logger) *Optimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Optimizer{logger: logger}
}

// Optimize designs rebar per beam, then (optionally) forces one bar
// diameter across the whole line, recomputing counts so no beam drops
// below its own requirement. Beams with impossible geometry are skipped,
// never fatal.
func (o *Optimizer) Optimize(in Input) Result {
	res := Result{Configs: []BeamConfig{}}

	var spans []float64
	for _, b := range in.Beams {
		sug := rebar.Suggest(rebar.SuggestInput{
			BMM: b.BMM, DMM: b.DMM, MuKNm: b.MuKNm, VuKN: b.VuKN,
			FckMPa: in.FckMPa, FyMPa: in.FyMPa, CoverMM: in.CoverMM,
		})
		if sug == nil {
			o.logger.Warn("skipping beam with infeasible geometry",
				zap.String("beam_id", b.BeamID),
				zap.Float64("d_mm", b.DMM),
				zap.Float64("cover_mm", in.CoverMM))
			res.BeamsSkipped++
			continue
		}
		res.Configs = append(res.Configs, BeamConfig{
			BeamID:           b.BeamID,
			Bottom1DiaMM:     sug.Bottom1DiaMM,
			Bottom1Count:     sug.Bottom1Count,
			Bottom2DiaMM:     sug.Bottom2DiaMM,
			Bottom2Count:     sug.Bottom2Count,
			StirrupDiaMM:     sug.StirrupDiaMM,
			StirrupSpacingMM: sug.StirrupSpacingMM,
			AstRequiredMM2:   sug.AstRequiredMM2,
			AstProvidedMM2:   sug.AstProvidedMM2,
		})
		spans = append(spans, b.SpanMM)
		res.BeamsProcessed++
	}

	if in.UnifyDiameters && res.BeamsProcessed > 0 {
		o.unify(&res)
	}

	for i, cfg := range res.Configs {
		res.TotalSteelKg += cfg.AstProvidedMM2 * spans[i] * is456.SteelDensity / 1e9
	}
	return res
}

// unify switches every beam to the largest bottom-layer diameter on the
// line (so no beam loses area by the switch) and the most conservative
// stirrup configuration.
func (o *Optimizer) unify(res *Result) {
	unified := 0.0
	stirrupDia := 0.0
	stirrupSpacing := math.MaxFloat64
	for _, cfg := range res.Configs {
		unified = math.Max(unified, cfg.Bottom1DiaMM)
		stirrupDia = math.Max(stirrupDia, cfg.StirrupDiaMM)
		if cfg.StirrupSpacingMM > 0 {
			stirrupSpacing = math.Min(stirrupSpacing, cfg.StirrupSpacingMM)
		}
	}
	if stirrupSpacing == math.MaxFloat64 {
		stirrupSpacing = 0
	}
	res.UnifiedBarDiaMM = unified

	area := is456.BarArea(unified)
	for i := range res.Configs {
		cfg := &res.Configs[i]
		count := 2
		if area > 0 {
			count = int(math.Ceil(cfg.AstRequiredMM2 / area))
			if count < 2 {
				count = 2
			}
		}
		cfg.Bottom1DiaMM = unified
		if count > maxBarsPerLayer {
			l1 := (count + 1) / 2
			l2 := count - l1
			if l2 < 2 {
				l2 = 2
			}
			cfg.Bottom1Count = l1
			cfg.Bottom2DiaMM = unified
			cfg.Bottom2Count = l2
			count = l1 + l2
		} else {
			cfg.Bottom1Count = count
			cfg.Bottom2DiaMM = 0
			cfg.Bottom2Count = 0
		}
		cfg.AstProvidedMM2 = float64(count) * area
		cfg.StirrupDiaMM = stirrupDia
		cfg.StirrupSpacingMM = stirrupSpacing
	}

	o.logger.Info("unified beam line",
		zap.Float64("bar_dia_mm", unified),
		zap.Int("beams", len(res.Configs)))
}
