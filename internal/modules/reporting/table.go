package reporting

import (
	"strings"

	"github.com/taxpolicylab/captax/internal/modules/assets"
	"github.com/taxpolicylab/captax/internal/modules/scenarios"
	"github.com/taxpolicylab/captax/pkg/formulas"
)

// Output variable names as they appear in the long-form table.
const (
	VarRho  = "rho"
	VarMETR = "metr"
	VarEATR = "eatr"
)

// OutputVars lists the metrics in presentation order.
var OutputVars = []string{VarRho, VarMETR, VarEATR}

// Row is one observation in the long-form result table, uniquely keyed
// by (Policy, OutputVar, AssetType).
type Row struct {
	Policy    string           `json:"policy"`
	OutputVar string           `json:"output_var"`
	AssetType assets.AssetType `json:"asset_type"`
	Value     float64          `json:"value"`
}

// Table is the stacked long-form result set across every policy,
// metric and asset type.
type Table struct {
	Rows []Row `json:"rows"`
}

// BuildTable stacks the per-policy evaluator results and melts them
// into long form: one row per policy x metric x asset type, in
// deterministic order (policy, then metric, then asset).
func BuildTable(policies []scenarios.Policy, results []scenarios.Results) Table {
	rows := make([]Row, 0, len(policies)*len(OutputVars)*len(assets.AllAssetTypes))

	for i, policy := range policies {
		for _, outputVar := range OutputVars {
			for _, assetType := range assets.AllAssetTypes {
				outputs := results[i][assetType]

				var value float64
				switch outputVar {
				case VarRho:
					value = outputs.Rho
				case VarMETR:
					value = outputs.METR
				case VarEATR:
					value = outputs.EATR
				}

				rows = append(rows, Row{
					Policy:    policy.Name,
					OutputVar: outputVar,
					AssetType: assetType,
					Value:     value,
				})
			}
		}
	}

	return Table{Rows: rows}
}

// Filter returns the rows matching the given output variable and asset
// type, preserving order. Empty arguments match everything.
func (t Table) Filter(outputVar string, assetType assets.AssetType) []Row {
	var rows []Row
	for _, row := range t.Rows {
		if outputVar != "" && row.OutputVar != outputVar {
			continue
		}
		if assetType != "" && row.AssetType != assetType {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// MetricSummary holds cross-asset statistics for one metric under one
// policy.
type MetricSummary struct {
	Policy    string  `json:"policy"`
	OutputVar string  `json:"output_var"`
	Mean      float64 `json:"mean"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

// Summary aggregates each metric across asset types, per policy, in
// table order.
func (t Table) Summary() []MetricSummary {
	var order []string
	values := make(map[string][]float64)
	for _, row := range t.Rows {
		key := row.Policy + "\x00" + row.OutputVar
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = append(values[key], row.Value)
	}

	summaries := make([]MetricSummary, 0, len(order))
	for _, key := range order {
		vals := values[key]
		policy, outputVar := splitKey(key)
		summaries = append(summaries, MetricSummary{
			Policy:    policy,
			OutputVar: outputVar,
			Mean:      formulas.Mean(vals),
			Min:       formulas.Min(vals),
			Max:       formulas.Max(vals),
		})
	}
	return summaries
}

func splitKey(key string) (policy, outputVar string) {
	policy, outputVar, _ = strings.Cut(key, "\x00")
	return policy, outputVar
}
