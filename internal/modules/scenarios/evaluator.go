package scenarios

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taxpolicylab/captax/internal/modules/assets"
	"github.com/taxpolicylab/captax/pkg/formulas"
)

// Outputs holds the three metrics computed per asset and scenario.
type Outputs struct {
	Rho  float64 `json:"rho"`  // cost of capital
	METR float64 `json:"metr"` // marginal effective tax rate
	EATR float64 `json:"eatr"` // effective average tax rate
}

// Results maps each asset type to its computed outputs.
type Results map[assets.AssetType]Outputs

// Evaluator computes cost of capital, METR and EATR for every asset in
// a catalog under a given policy. Evaluation is pure: the same catalog,
// macro assumptions and policy always produce the same results.
type Evaluator struct {
	catalog assets.Catalog
	macro   Macro
	log     zerolog.Logger
}

// NewEvaluator creates an evaluator. The catalog must already be
// validated; Evaluate still reports an unknown depreciation method as
// an error rather than panicking.
func NewEvaluator(catalog assets.Catalog, macro Macro, log zerolog.Logger) *Evaluator {
	return &Evaluator{
		catalog: catalog,
		macro:   macro,
		log:     log.With().Str("component", "evaluator").Logger(),
	}
}

// Evaluate computes the outputs for every asset type under one policy.
func (e *Evaluator) Evaluate(policy Policy) (Results, error) {
	results := make(Results, len(assets.AllAssetTypes))

	uC := e.macro.CombinedRate(policy.StateRate)
	r := formulas.CalcR(
		uC, e.macro.NominalRate, e.macro.Inflation,
		e.macro.NominalRate, e.macro.DebtFrac, e.macro.IntHaircut,
		e.macro.EquityReturn, 0.0,
	)
	rPrime := formulas.CalcRPrime(
		e.macro.NominalRate, e.macro.Inflation, e.macro.DebtFrac, e.macro.EquityReturn,
	)

	for _, assetType := range assets.AllAssetTypes {
		asset, ok := e.catalog[assetType]
		if !ok {
			return nil, fmt.Errorf("asset %q missing from catalog", assetType)
		}

		zF, err := depreciationPV(asset.Method, asset.Life, asset.FederalBonus, r)
		if err != nil {
			return nil, fmt.Errorf("federal depreciation for %q: %w", assetType, err)
		}
		zS, err := depreciationPV(asset.Method, asset.Life, policy.StateBonus[assetType], r)
		if err != nil {
			return nil, fmt.Errorf("state depreciation for %q: %w", assetType, err)
		}

		rho, err := formulas.CostOfCapitalState(
			asset.Delta, zF, zS, policy.FranchiseTaxRate,
			e.macro.FederalRate, policy.StateRate, policy.GrossReceiptsRate,
			policy.StateITC[assetType], e.macro.Inflation, r,
		)
		if err != nil {
			return nil, fmt.Errorf("cost of capital for %q: %w", assetType, err)
		}

		metr, err := formulas.METR(rho, rPrime, e.macro.Inflation)
		if err != nil {
			return nil, fmt.Errorf("METR for %q: %w", assetType, err)
		}

		eatr, err := formulas.EATR(rho, metr, e.macro.ProfitRate, uC)
		if err != nil {
			return nil, fmt.Errorf("EATR for %q: %w", assetType, err)
		}

		e.log.Debug().
			Str("policy", policy.Name).
			Str("asset", string(assetType)).
			Float64("rho", rho).
			Float64("metr", metr).
			Float64("eatr", eatr).
			Msg("Asset evaluated")

		results[assetType] = Outputs{Rho: rho, METR: metr, EATR: eatr}
	}

	return results, nil
}

// depreciationPV dispatches to the present-value formula for the
// asset's depreciation method.
func depreciationPV(method assets.DepreciationMethod, life, bonus, r float64) (float64, error) {
	switch method {
	case assets.MethodDBSL:
		return formulas.DBSL(life, assets.DeclBalMultiplier, bonus, r), nil
	case assets.MethodSL:
		return formulas.SL(life, bonus, r), nil
	default:
		return 0, &assets.ValidationError{
			Field: "method",
			Msg:   fmt.Sprintf("got %q, must be one of: %s, %s", method, assets.MethodDBSL, assets.MethodSL),
		}
	}
}
