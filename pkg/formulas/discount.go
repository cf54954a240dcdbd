package formulas

// CalcR calculates the nominal discount rate faced by the firm
//
// Discount Rate Formula:
//
//	r = f·i·(1 - (1-h)·u) + (1-f)·(E + π) - i_ACE·ACE
//
// Debt finance earns the nominal interest rate with interest deductible
// at the statutory rate u (less any interest haircut h); equity finance
// must earn the expected after-tax equity return E plus inflation. An
// allowance for corporate equity (ACE), when present, reduces the rate.
//
// Args:
//
//	u: combined statutory marginal tax rate on the first layer of income
//	nominalRate: nominal market interest rate i
//	inflation: inflation rate π
//	aceRate: interest rate applied to the ACE base
//	debtFrac: fraction of the investment financed with debt f
//	intHaircut: fraction of interest deductibility disallowed h
//	equityReturn: expected after-tax return on corporate equity E
//	ace: allowance for corporate equity (0 when no ACE regime applies)
func CalcR(u, nominalRate, inflation, aceRate, debtFrac, intHaircut, equityReturn, ace float64) float64 {
	return debtFrac*(nominalRate*(1-(1-intHaircut)*u)) +
		(1-debtFrac)*(equityReturn+inflation) -
		aceRate*ace
}

// CalcRPrime calculates the after-tax discount rate faced by savers
//
// Formula:
//
//	r' = f·i + (1-f)·(E + π)
//
// Identical weighting to CalcR but with no deductibility of interest,
// since the saver's return is measured after corporate tax.
func CalcRPrime(nominalRate, inflation, debtFrac, equityReturn float64) float64 {
	return debtFrac*nominalRate + (1-debtFrac)*(equityReturn+inflation)
}
