package formulas

import (
	"errors"
	"math"
	"testing"
)

// Current-law machines case: delta=0.1031, 7-year DDB with 40% federal
// bonus and no state bonus, w=0.003, u_f=0.21, u_s=0.043, ITC=1.5%,
// r=0.08, pi=0.02.
func TestCostOfCapitalStateCurrentLawMachines(t *testing.T) {
	zF := DBSL(7, 2, 0.4, 0.08)
	zS := DBSL(7, 2, 0.0, 0.08)

	rho, err := CostOfCapitalState(0.1031, zF, zS, 0.003, 0.21, 0.043, 0.0, 0.015, 0.02, 0.08)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 0.066440530516; math.Abs(rho-want) > tolerance {
		t.Errorf("rho = %.12f, want %.12f", rho, want)
	}

	// Identical inputs must give the identical rho.
	again, err := CostOfCapitalState(0.1031, zF, zS, 0.003, 0.21, 0.043, 0.0, 0.015, 0.02, 0.08)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rho != again {
		t.Errorf("rho is not deterministic: %.17f != %.17f", rho, again)
	}
}

func TestCostOfCapitalStateDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		uF    float64
		uS    float64
		tauGR float64
	}{
		{
			name: "federal rate of 100%",
			uF:   1.0,
			uS:   0.0,
		},
		{
			name: "state rate of 100%",
			uF:   0.0,
			uS:   1.0,
		},
		{
			name:  "confiscatory gross receipts tax",
			uF:    0.21,
			uS:    0.043,
			tauGR: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CostOfCapitalState(0.1031, 0.88, 0.81, 0.003, tt.uF, tt.uS, tt.tauGR, 0.015, 0.02, 0.08)
			if !errors.Is(err, ErrDegenerateRate) {
				t.Errorf("err = %v, want ErrDegenerateRate", err)
			}
		})
	}
}

func TestMETR(t *testing.T) {
	metr, err := METR(0.066440530516, 0.08, 0.02)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 0.096936771362; math.Abs(metr-want) > tolerance {
		t.Errorf("METR = %.12f, want %.12f", metr, want)
	}

	// A zero-tax world: rho equals the real after-tax return, METR is 0.
	metr, err = METR(0.06, 0.08, 0.02)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(metr) > tolerance {
		t.Errorf("zero-wedge METR = %.12f, want 0", metr)
	}

	if _, err := METR(0.0, 0.08, 0.02); !errors.Is(err, ErrDegenerateRate) {
		t.Errorf("zero rho: err = %v, want ErrDegenerateRate", err)
	}
}

func TestEATR(t *testing.T) {
	eatr, err := EATR(0.066440530516, 0.096936771362, 0.2, 0.24397)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 0.195125171429; math.Abs(eatr-want) > tolerance {
		t.Errorf("EATR = %.12f, want %.12f", eatr, want)
	}

	// At a breakeven investment (p = rho) the EATR collapses to the METR.
	rho := 0.066440530516
	eatr, err = EATR(rho, 0.096936771362, rho, 0.24397)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(eatr-0.096936771362) > tolerance {
		t.Errorf("breakeven EATR = %.12f, want METR", eatr)
	}

	if _, err := EATR(0.066, 0.097, 0.0, 0.24397); !errors.Is(err, ErrDegenerateRate) {
		t.Errorf("zero profit rate: err = %v, want ErrDegenerateRate", err)
	}
}
