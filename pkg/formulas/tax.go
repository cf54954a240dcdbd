package formulas

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateRate is returned when a tax-rate combination makes one of
// the cost-of-capital denominators vanish. The caller gets an error
// rather than an Inf/NaN propagating silently through downstream
// metrics.
var ErrDegenerateRate = errors.New("degenerate tax rate: denominator is zero")

// rateEpsilon is the tolerance used when testing denominators for zero.
const rateEpsilon = 1e-12

// CostOfCapitalState calculates the cost of capital for one asset under
// a two-layer (federal + state) income tax with a separate gross
// receipts tax.
//
// Formula:
//
//	ρ = [ ((r-π+δ)/(1-u_f-u_s+u_f·u_s)) · (1 - ITC - u_f·z_f - u_s·z_s + u_f·u_s·z_s) + w ] / (1-τ_GR) - δ
//
// The combined-rate denominator 1-u_f-u_s+u_f·u_s prevents the federal
// and state layers from double-counting their interaction, the state
// depreciation value enters with its own cross term, and the whole
// expression is grossed up by the gross-receipts tax before economic
// depreciation is netted out.
//
// Args:
//
//	delta: rate of economic depreciation δ
//	zF: NPV of depreciation deductions for $1 of investment, federal system
//	zS: NPV of depreciation deductions for $1 of investment, state system
//	w: property/franchise tax rate
//	uF: statutory marginal federal income tax rate
//	uS: statutory marginal state income tax rate
//	tauGR: gross receipts tax rate
//	itc: investment tax credit rate
//	inflation: inflation rate π
//	r: nominal discount rate
//
// Returns ErrDegenerateRate when 1-u_f-u_s+u_f·u_s or 1-τ_GR is zero
// (within 1e-12).
func CostOfCapitalState(delta, zF, zS, w, uF, uS, tauGR, itc, inflation, r float64) (float64, error) {
	combined := 1 - uF - uS + uF*uS
	if math.Abs(combined) < rateEpsilon {
		return 0, fmt.Errorf("combined rate u_f=%v u_s=%v: %w", uF, uS, ErrDegenerateRate)
	}

	grossUp := 1 - tauGR
	if math.Abs(grossUp) < rateEpsilon {
		return 0, fmt.Errorf("gross receipts rate tau_GR=%v: %w", tauGR, ErrDegenerateRate)
	}

	rho := ((((r-inflation+delta)/combined)*
		(1-itc-uF*zF-uS*zS+uF*uS*zS) + w) / grossUp) - delta

	return rho, nil
}

// METR calculates the marginal effective tax rate: the share of the
// cost of capital attributable to taxation, for a breakeven investment.
//
// Formula:
//
//	METR = (ρ - (r' - π)) / ρ
func METR(rho, rPrime, inflation float64) (float64, error) {
	if math.Abs(rho) < rateEpsilon {
		return 0, fmt.Errorf("cost of capital rho=%v: %w", rho, ErrDegenerateRate)
	}
	return (rho - (rPrime - inflation)) / rho, nil
}

// EATR calculates the effective average tax rate: the effective tax
// burden on a discretely profitable investment earning profit rate p.
// The EATR interpolates between the METR (at a breakeven investment,
// p = ρ) and the statutory rate (as p grows large).
//
// Formula:
//
//	EATR = ((p - ρ)/p)·u + (ρ/p)·METR
//
// Args:
//
//	rho: cost of capital ρ
//	metr: marginal effective tax rate
//	profitRate: rate of economic profit p
//	u: combined statutory tax rate on the first layer of income
func EATR(rho, metr, profitRate, u float64) (float64, error) {
	if math.Abs(profitRate) < rateEpsilon {
		return 0, fmt.Errorf("profit rate p=%v: %w", profitRate, ErrDegenerateRate)
	}
	return ((profitRate-rho)/profitRate)*u + (rho/profitRate)*metr, nil
}
