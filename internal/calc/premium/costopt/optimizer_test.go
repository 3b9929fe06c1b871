package costopt

import (
	"testing"
)

func TestOptimizeEndToEnd(t *testing.T) {
	res, err := Optimize(Input{SpanMM: 6000, MuKNm: 150, VuKN: 100})
	if err != nil {
		t.Fatalf("Optimize returned error: %v", err)
	}
	if res.CandidatesEvaluated == 0 {
		t.Error("no candidates evaluated")
	}
	if res.CandidatesValid == 0 {
		t.Error("no valid candidates")
	}
	if !res.Optimal.IsValid {
		t.Error("optimal candidate must be valid")
	}
	if res.Optimal.Cost == nil || res.Optimal.Design == nil {
		t.Fatal("optimal candidate must carry design and cost")
	}
	if res.SavingsAbs < 0 {
		t.Errorf("savings = %.2f, must be non-negative", res.SavingsAbs)
	}
	if res.BaselineCost < res.Optimal.Cost.TotalCost {
		t.Errorf("baseline %.2f below optimal %.2f", res.BaselineCost, res.Optimal.Cost.TotalCost)
	}
}

func TestOptimizeRankingInvariant(t *testing.T) {
	res, err := Optimize(Input{SpanMM: 6000, MuKNm: 150, VuKN: 100})
	if err != nil {
		t.Fatalf("Optimize returned error: %v", err)
	}
	prev := res.Optimal.Cost.TotalCost
	for i, alt := range res.Alternatives {
		if !alt.IsValid || alt.Cost == nil {
			t.Fatalf("alternative %d is not a valid candidate", i)
		}
		if alt.Cost.TotalCost < prev {
			t.Errorf("alternative %d cost %.2f below previous %.2f", i, alt.Cost.TotalCost, prev)
		}
		prev = alt.Cost.TotalCost
	}
	if len(res.Alternatives) > 3 {
		t.Errorf("got %d alternatives, want at most 3", len(res.Alternatives))
	}
}

func TestOptimizeDeterministic(t *testing.T) {
	a, err := Optimize(Input{SpanMM: 6000, MuKNm: 150, VuKN: 100})
	if err != nil {
		t.Fatalf("Optimize returned error: %v", err)
	}
	b, err := Optimize(Input{SpanMM: 6000, MuKNm: 150, VuKN: 100})
	if err != nil {
		t.Fatalf("Optimize returned error: %v", err)
	}
	if a.Optimal.BMM != b.Optimal.BMM || a.Optimal.DMM != b.Optimal.DMM || a.Optimal.FckMPa != b.Optimal.FckMPa {
		t.Errorf("optimal section differs between runs: %+v vs %+v", a.Optimal, b.Optimal)
	}
}

func TestOptimizeGlobalInfeasibility(t *testing.T) {
	// No section in the default grid carries 2000 kN-m over 6 m as singly
	// reinforced.
	if _, err := Optimize(Input{SpanMM: 6000, MuKNm: 2000, VuKN: 100}); err == nil {
		t.Fatal("expected error when the whole grid is infeasible")
	}
}

func TestOptimizeInvalidInputs(t *testing.T) {
	if _, err := Optimize(Input{SpanMM: 0, MuKNm: 100}); err == nil {
		t.Error("expected error for zero span")
	}
	if _, err := Optimize(Input{SpanMM: 6000, MuKNm: -5}); err == nil {
		t.Error("expected error for negative moment")
	}
	empty := SearchGrid{}
	if _, err := Optimize(Input{SpanMM: 6000, MuKNm: 100, Grid: &empty}); err == nil {
		t.Error("expected error for empty grid")
	}
}

func TestOptimizeBaselineFallbackReportsZeroSavings(t *testing.T) {
	// 400 kN-m over 6 m: deep grid sections work, but the span/12 and
	// span/10 baselines cannot carry it even at M30, so the optimizer
	// reports zero savings against its own optimum.
	res, err := Optimize(Input{SpanMM: 6000, MuKNm: 400, VuKN: 100})
	if err != nil {
		t.Fatalf("Optimize returned error: %v", err)
	}
	if res.SavingsAbs != 0 {
		t.Errorf("savings = %.2f, want 0 with infeasible baseline", res.SavingsAbs)
	}
	if res.BaselineCost != res.Optimal.Cost.TotalCost {
		t.Errorf("baseline %.2f should equal optimal cost %.2f", res.BaselineCost, res.Optimal.Cost.TotalCost)
	}
}

func TestOptimizeCustomGrid(t *testing.T) {
	grid := SearchGrid{
		WidthsMM:       []float64{300},
		DepthStepMM:    50,
		MinDepthMM:     300,
		MaxDepthMM:     900,
		ConcreteGrades: []float64{30},
		SteelGrades:    []float64{500},
	}
	res, err := Optimize(Input{SpanMM: 6000, MuKNm: 150, VuKN: 100, Grid: &grid})
	if err != nil {
		t.Fatalf("Optimize returned error: %v", err)
	}
	if res.Optimal.BMM != 300 {
		t.Errorf("optimal width = %.0f, want 300 from the custom grid", res.Optimal.BMM)
	}
	if res.Optimal.FckMPa != 30 {
		t.Errorf("optimal grade = %.0f, want 30 from the custom grid", res.Optimal.FckMPa)
	}
}

func TestSearchGridDepths(t *testing.T) {
	depths := DefaultGrid().Depths(6000)
	if len(depths) == 0 {
		t.Fatal("no depths for a 6 m span")
	}
	if depths[0] != 300 {
		t.Errorf("first depth = %.0f, want 300 (span/20 clamped)", depths[0])
	}
	for _, d := range depths {
		if d >= 750 {
			t.Errorf("depth %.0f reached span/8 bound", d)
		}
	}
}
