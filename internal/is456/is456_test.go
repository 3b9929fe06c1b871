package is456

import (
	"math"
	"testing"
)

func TestXuMaxRatio(t *testing.T) {
	tests := []struct {
		fy   float64
		want float64
	}{
		{250, 0.53},
		{415, 0.48},
		{500, 0.46},
		{550, 0.46},
	}
	for _, tt := range tests {
		if got := XuMaxRatio(tt.fy); got != tt.want {
			t.Errorf("XuMaxRatio(%.0f) = %.2f, want %.2f", tt.fy, got, tt.want)
		}
	}
}

func TestMuLim(t *testing.T) {
	// 300x442 section, M25/Fe500: Mu,lim = 0.36*0.46*(1-0.42*0.46)*fck*b*d^2
	got := MuLim(300, 442, 25, 500) / 1e6
	if got < 190 || got > 200 {
		t.Errorf("MuLim(300, 442, 25, 500) = %.1f kN-m, want ~195.8", got)
	}
	// Mu,lim scales linearly with fck
	ratio := MuLim(300, 442, 30, 500) / MuLim(300, 442, 25, 500)
	if math.Abs(ratio-30.0/25.0) > 1e-9 {
		t.Errorf("MuLim grade scaling = %.4f, want 1.2", ratio)
	}
}

func TestMinSteelPercent(t *testing.T) {
	if got := MinSteelPercent(500); math.Abs(got-0.17) > 1e-9 {
		t.Errorf("MinSteelPercent(500) = %.4f, want 0.17", got)
	}
	if got := MinSteelPercent(0); got != 0 {
		t.Errorf("MinSteelPercent(0) = %.4f, want 0", got)
	}
}

func TestBarArea(t *testing.T) {
	if got := BarArea(20); math.Abs(got-314.159) > 0.01 {
		t.Errorf("BarArea(20) = %.3f, want 314.159", got)
	}
}

func TestTauC(t *testing.T) {
	tests := []struct {
		name string
		pt   float64
		fck  float64
		want float64
		tol  float64
	}{
		{"table value", 0.50, 25, 0.49, 1e-9},
		{"interpolated", 0.375, 25, 0.425, 1e-9},
		{"clamped low", 0.05, 25, 0.29, 1e-9},
		{"clamped high", 5.0, 25, 0.92, 1e-9},
		{"grade scaled", 0.50, 30, 0.49 * math.Sqrt(30.0/25.0), 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TauC(tt.pt, tt.fck); math.Abs(got-tt.want) > tt.tol {
				t.Errorf("TauC(%.3f, %.0f) = %.4f, want %.4f", tt.pt, tt.fck, got, tt.want)
			}
		})
	}
}

func TestTauCMax(t *testing.T) {
	if got := TauCMax(25); got != 3.1 {
		t.Errorf("TauCMax(25) = %.1f, want 3.1", got)
	}
	if got := TauCMax(30); got != 3.5 {
		t.Errorf("TauCMax(30) = %.1f, want 3.5", got)
	}
}
