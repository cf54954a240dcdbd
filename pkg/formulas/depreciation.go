package formulas

import (
	"math"
)

// DBSL calculates the net present value of depreciation deductions for
// $1 of investment under the declining-balance-switch-to-straight-line
// method, in continuous time.
//
// The declining-balance rate is β = b/Y (b is the acceleration
// multiplier, 2 for double declining balance). The switch to straight
// line on the remaining basis happens at Y* = Y·(1 - 1/b), the point
// where straight-line deductions on the remaining basis first exceed
// the declining-balance deduction.
//
// Formula:
//
//	z = bonus + (1-bonus)·[ (β/(β+r))·(1 - e^{-(β+r)·Y*})
//	    + (e^{-β·Y*}/((Y-Y*)·r))·(e^{-r·Y*} - e^{-r·Y}) ]
//
// Args:
//
//	life: tax depreciation life of the asset Y, in years
//	declBalMult: declining balance acceleration multiplier b
//	bonus: bonus depreciation rate (fraction expensed immediately)
//	r: nominal discount rate
//
// Returns the present value of $1 of deductions, in (0, 1] for
// positive r.
func DBSL(life, declBalMult, bonus, r float64) float64 {
	beta := declBalMult / life
	switchYear := life * (1 - (1 / declBalMult))

	z := bonus + ((1 - bonus) *
		(((beta / (beta + r)) * (1 - math.Exp(-1*(beta+r)*switchYear))) +
			((math.Exp(-1*beta*switchYear) / ((life - switchYear) * r)) *
				(math.Exp(-1*r*switchYear) - math.Exp(-1*r*life)))))

	return z
}

// SL calculates the net present value of depreciation deductions for
// $1 of investment under the straight-line method, in continuous time.
//
// Formula:
//
//	z = bonus + (1-bonus)·(1 - e^{-r·Y}) / (r·Y)
//
// Args:
//
//	life: tax depreciation life of the asset Y, in years
//	bonus: bonus depreciation rate (fraction expensed immediately)
//	r: nominal discount rate
func SL(life, bonus, r float64) float64 {
	return bonus + ((1 - bonus) * ((1 - math.Exp(-1*r*life)) / (r * life)))
}
