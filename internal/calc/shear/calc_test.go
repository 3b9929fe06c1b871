package shear

import "testing"

func TestSelectStirrupsMinimumGoverns(t *testing.T) {
	st := SelectStirrups(300, 450, 50, 25, 500, 0.5, Options{})
	if st.VusKN != 0 {
		t.Errorf("Vus = %.1f kN, want 0 when tau_v < tau_c", st.VusKN)
	}
	if !st.MinimumGoverns {
		t.Error("expected minimum stirrups to govern")
	}
	if st.DiaMM != 8 || st.SpacingMM != 300 {
		t.Errorf("got phi%.0f @ %.0f, want phi8 @ 300", st.DiaMM, st.SpacingMM)
	}
	if !st.Adequate {
		t.Error("expected adequate section")
	}
}

func TestSelectStirrupsSpacingMonotonicInShear(t *testing.T) {
	// With a single diameter option, spacing must not increase as Vu rises.
	opts := Options{Diameters: []float64{8}}
	prev := 1e9
	for _, vu := range []float64{40, 120, 200} {
		st := SelectStirrups(300, 444, vu, 25, 500, 0.3, opts)
		if st.SpacingMM > prev {
			t.Fatalf("spacing increased from %.0f to %.0f at Vu=%.0f", prev, st.SpacingMM, vu)
		}
		prev = st.SpacingMM
	}
}

func TestSelectStirrupsGuardsZeroSection(t *testing.T) {
	st := SelectStirrups(0, 450, 100, 25, 500, 0.5, Options{})
	if st.TauVMPa != 0 || st.DiaMM != 0 {
		t.Errorf("zero width must short-circuit, got %+v", st)
	}
}

func TestSelectStirrupsOverloaded(t *testing.T) {
	// Demand no option set can carry still returns a configuration.
	st := SelectStirrups(230, 400, 900, 25, 500, 1.0, Options{Diameters: []float64{8}})
	if st.DiaMM == 0 || st.SpacingMM == 0 {
		t.Fatal("overloaded section must still report the heaviest attempt")
	}
	if st.Adequate {
		t.Error("expected Adequate=false when tau_v exceeds tau_c,max")
	}
}

func TestCalculateValidation(t *testing.T) {
	if _, err := Calculate(Input{BMM: 0, DMM: 450, VuKN: 100}); err == nil {
		t.Error("expected error for zero width")
	}
	res, err := Calculate(Input{BMM: 300, DMM: 450, VuKN: 100})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.DiaMM != 8 && res.DiaMM != 10 && res.DiaMM != 12 {
		t.Errorf("stirrup dia %.0f not in default set", res.DiaMM)
	}
}
