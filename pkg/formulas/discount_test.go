package formulas

import (
	"math"
	"testing"
)

func TestCalcR(t *testing.T) {
	tests := []struct {
		name       string
		u          float64
		debtFrac   float64
		intHaircut float64
		want       float64
	}{
		{
			name:     "all equity: discount rate is E plus inflation",
			u:        0.243970,
			debtFrac: 0.0,
			want:     0.08,
		},
		{
			name:     "30% debt financed",
			u:        0.24397,
			debtFrac: 0.3,
			want:     0.069608540000,
		},
		{
			name:       "30% debt with full interest haircut",
			u:          0.24397,
			debtFrac:   0.3,
			intHaircut: 1.0,
			want:       0.3*0.06 + 0.7*0.08,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcR(tt.u, 0.06, 0.02, 0.06, tt.debtFrac, tt.intHaircut, 0.06, 0.0)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("CalcR = %.12f, want %.12f", got, tt.want)
			}
		})
	}
}

func TestCalcRPrime(t *testing.T) {
	if got := CalcRPrime(0.06, 0.02, 0.0, 0.06); math.Abs(got-0.08) > tolerance {
		t.Errorf("all equity: CalcRPrime = %.12f, want 0.08", got)
	}
	if got := CalcRPrime(0.06, 0.02, 0.3, 0.06); math.Abs(got-0.074) > tolerance {
		t.Errorf("30%% debt: CalcRPrime = %.12f, want 0.074", got)
	}
}

// With no taxes at all, the saver's and the firm's discount rates
// coincide.
func TestDiscountRatesCoincideWithoutTax(t *testing.T) {
	for _, f := range []float64{0.0, 0.25, 0.5, 1.0} {
		r := CalcR(0.0, 0.06, 0.02, 0.06, f, 0.0, 0.06, 0.0)
		rPrime := CalcRPrime(0.06, 0.02, f, 0.06)
		if math.Abs(r-rPrime) > tolerance {
			t.Errorf("debtFrac %v: r %.12f != r' %.12f", f, r, rPrime)
		}
	}
}
