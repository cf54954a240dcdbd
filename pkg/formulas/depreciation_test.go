package formulas

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestSL(t *testing.T) {
	tests := []struct {
		name  string
		life  float64
		bonus float64
		r     float64
		want  float64
	}{
		{
			name:  "7-year property with 40% bonus",
			life:  7,
			bonus: 0.4,
			r:     0.08,
			want:  0.859418860162,
		},
		{
			name:  "39-year building, no bonus",
			life:  39,
			bonus: 0.0,
			r:     0.08,
			want:  0.306359881917,
		},
		{
			name:  "3-year intangible with 40% bonus",
			life:  3,
			bonus: 0.4,
			r:     0.08,
			want:  0.933430347334,
		},
		{
			name:  "10-year property, half expensed, low rate",
			life:  10,
			bonus: 0.5,
			r:     0.04,
			want:  0.912099942455,
		},
		{
			name:  "full expensing is worth exactly $1",
			life:  15,
			bonus: 1.0,
			r:     0.08,
			want:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SL(tt.life, tt.bonus, tt.r)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("SL(%v, %v, %v) = %.12f, want %.12f", tt.life, tt.bonus, tt.r, got, tt.want)
			}
		})
	}
}

func TestDBSL(t *testing.T) {
	tests := []struct {
		name  string
		life  float64
		mult  float64
		bonus float64
		r     float64
		want  float64
	}{
		{
			name:  "7-year double declining balance with 40% bonus",
			life:  7,
			mult:  2,
			bonus: 0.4,
			r:     0.08,
			want:  0.883922649525,
		},
		{
			name:  "7-year double declining balance, no bonus",
			life:  7,
			mult:  2,
			bonus: 0.0,
			r:     0.08,
			want:  0.806537749208,
		},
		{
			name:  "20-year double declining balance, no bonus",
			life:  20,
			mult:  2,
			bonus: 0.0,
			r:     0.05,
			want:  0.693502980391,
		},
		{
			name:  "full expensing is worth exactly $1",
			life:  7,
			mult:  2,
			bonus: 1.0,
			r:     0.08,
			want:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DBSL(tt.life, tt.mult, tt.bonus, tt.r)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("DBSL(%v, %v, %v, %v) = %.12f, want %.12f", tt.life, tt.mult, tt.bonus, tt.r, got, tt.want)
			}
		})
	}
}

// Acceleration should never hurt: for the same life, bonus and discount
// rate, DBSL deductions arrive earlier than SL deductions and so are
// worth at least as much.
func TestDBSLDominatesSL(t *testing.T) {
	for _, life := range []float64{3, 5, 7, 15, 20, 39} {
		dbsl := DBSL(life, 2, 0.0, 0.08)
		sl := SL(life, 0.0, 0.08)
		if dbsl < sl {
			t.Errorf("life %v: DBSL %.12f < SL %.12f", life, dbsl, sl)
		}
		if dbsl <= 0 || dbsl > 1 {
			t.Errorf("life %v: DBSL %.12f outside (0, 1]", life, dbsl)
		}
	}
}
