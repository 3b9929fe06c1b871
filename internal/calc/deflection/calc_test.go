package deflection

import (
	"math"
	"testing"
)

func TestCalculateSimplySupported(t *testing.T) {
	// 6 m span on 450 mm effective depth at 0.3% steel:
	// ratio 13.33 against allowable 20 * 1.4 = 28.
	res, err := Calculate(Input{SpanMM: 6000, EffectiveDepthMM: 450, PtPercent: 0.3})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if math.Abs(res.SpanDepthRatio-13.333) > 0.01 {
		t.Errorf("ratio = %.3f, want 13.333", res.SpanDepthRatio)
	}
	if math.Abs(res.AllowableRatio-28) > 1e-9 {
		t.Errorf("allowable = %.2f, want 28", res.AllowableRatio)
	}
	if !res.OK {
		t.Error("expected the check to pass")
	}
}

func TestCalculateSupportConditions(t *testing.T) {
	tests := []struct {
		support string
		wantOK  bool
	}{
		{"simply", true},
		{"continuous", true},
		{"cantilever", false},
	}
	for _, tt := range tests {
		t.Run(tt.support, func(t *testing.T) {
			res, err := Calculate(Input{SpanMM: 5000, EffectiveDepthMM: 400, PtPercent: 0.8, Support: tt.support})
			if err != nil {
				t.Fatalf("Calculate returned error: %v", err)
			}
			if res.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v (ratio %.2f vs allowable %.2f)",
					res.OK, tt.wantOK, res.SpanDepthRatio, res.AllowableRatio)
			}
		})
	}
}

func TestCalculateValidation(t *testing.T) {
	if _, err := Calculate(Input{SpanMM: 0, EffectiveDepthMM: 450}); err == nil {
		t.Error("expected error for zero span")
	}
	if _, err := Calculate(Input{SpanMM: 6000, EffectiveDepthMM: 0}); err == nil {
		t.Error("expected error for zero depth")
	}
}
