package scenarios

import (
	"github.com/taxpolicylab/captax/internal/modules/assets"
)

// Macro holds the economy-wide and federal parameters shared by every
// scenario evaluation.
type Macro struct {
	Inflation    float64 // expected inflation rate
	NominalRate  float64 // nominal market interest rate
	DebtFrac     float64 // fraction of investment financed with debt
	EquityReturn float64 // expected after-tax return on corporate equity
	ProfitRate   float64 // rate of economic profit assumed for the EATR
	IntHaircut   float64 // fraction of interest deductibility disallowed
	FederalRate  float64 // federal statutory corporate income tax rate
}

// DefaultMacro returns the macro assumptions used in the 2025 memo.
func DefaultMacro() Macro {
	return Macro{
		Inflation:    0.02,
		NominalRate:  0.06,
		DebtFrac:     0.0,
		EquityReturn: 0.06,
		ProfitRate:   0.2,
		IntHaircut:   0.0,
		FederalRate:  0.21,
	}
}

// CombinedRate is the combined federal+state statutory rate
// u_f + u_s - u_f*u_s, with state taxes deductible at the federal
// level.
func (m Macro) CombinedRate(stateRate float64) float64 {
	return m.FederalRate + stateRate - m.FederalRate*stateRate
}

// Policy is one named state-tax scenario: the state parameters that a
// reform can move, everything else held at the macro assumptions.
type Policy struct {
	Name              string
	StateRate         float64 // state statutory corporate income tax rate
	StateBonus        map[assets.AssetType]float64
	FranchiseTaxRate  float64
	GrossReceiptsRate float64
	StateITC          map[assets.AssetType]float64
}

// Policy names for the three scenarios in the memo.
const (
	PolicyCurrentLaw  = "Current Law"
	PolicyLowerCIT    = "Lower AR CIT rate to 3.5%"
	PolicyNoFranchise = "Remove AR franchise tax"
)

// BaselinePolicies returns the three scenarios the memo compares:
// current Arkansas law (4.3% CIT, 0.3% franchise tax), the CIT cut to
// 3.5%, and franchise-tax repeal. Each reform moves one parameter and
// holds the rest at current law.
func BaselinePolicies() []Policy {
	stateBonus := map[assets.AssetType]float64{
		assets.Machines:    0.0,
		assets.Buildings:   0.0,
		assets.Intangibles: 0.0,
	}
	stateITC := map[assets.AssetType]float64{
		assets.Machines:    0.015,
		assets.Buildings:   0.025,
		assets.Intangibles: 0.01,
	}

	currentLaw := Policy{
		Name:              PolicyCurrentLaw,
		StateRate:         0.043,
		StateBonus:        stateBonus,
		FranchiseTaxRate:  0.003,
		GrossReceiptsRate: 0.0,
		StateITC:          stateITC,
	}

	lowerCIT := currentLaw
	lowerCIT.Name = PolicyLowerCIT
	lowerCIT.StateRate = 0.035

	noFranchise := currentLaw
	noFranchise.Name = PolicyNoFranchise
	noFranchise.FranchiseTaxRate = 0.0

	return []Policy{currentLaw, lowerCIT, noFranchise}
}
