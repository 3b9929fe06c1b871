package cost

import (
	"math"
	"testing"
)

func TestCalculateBreakdown(t *testing.T) {
	res, err := Calculate(Input{BMM: 300, DMM: 500, SpanMM: 6000, AstMM2: 1000, FckMPa: 25})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if math.Abs(res.ConcreteVolumeM3-0.9) > 1e-9 {
		t.Errorf("volume = %.4f m3, want 0.9", res.ConcreteVolumeM3)
	}
	if math.Abs(res.SteelMassKg-47.1) > 0.01 {
		t.Errorf("steel mass = %.2f kg, want 47.1", res.SteelMassKg)
	}
	if math.Abs(res.FormworkAreaM2-7.8) > 1e-9 {
		t.Errorf("formwork = %.2f m2, want 7.8", res.FormworkAreaM2)
	}
	sum := res.ConcreteCost + res.SteelCost + res.FormworkCost + res.LabourCost
	if math.Abs(res.TotalCost-sum) > 1e-6 {
		t.Errorf("total %.2f != sum of parts %.2f", res.TotalCost, sum)
	}
}

func TestCalculateCustomProfile(t *testing.T) {
	p := Profile{ConcreteRatePerM3: map[int]float64{25: 1000}}
	res, err := Calculate(Input{BMM: 300, DMM: 500, SpanMM: 6000, AstMM2: 1000, FckMPa: 25, Profile: &p})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if math.Abs(res.TotalCost-900) > 1e-6 {
		t.Errorf("total = %.2f, want 900 with zeroed steel/formwork/labour rates", res.TotalCost)
	}
}

func TestConcreteRateFallback(t *testing.T) {
	p := DefaultProfile()
	if p.ConcreteRate(28) != p.ConcreteRatePerM3[25] {
		t.Error("unknown grade should fall back to the M25 rate")
	}
	if p.ConcreteRate(30) != p.ConcreteRatePerM3[30] {
		t.Error("known grade should use its own rate")
	}
}

func TestCalculateValidation(t *testing.T) {
	if _, err := Calculate(Input{BMM: 0, DMM: 500, SpanMM: 6000}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := Calculate(Input{BMM: 300, DMM: 500, SpanMM: 6000, AstMM2: -1}); err == nil {
		t.Error("expected error for negative steel area")
	}
}
