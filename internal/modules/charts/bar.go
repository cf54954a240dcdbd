// Package charts renders slices of the long-form result table as
// interactive bar charts.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/taxpolicylab/captax/internal/modules/assets"
	"github.com/taxpolicylab/captax/internal/modules/reporting"
	"github.com/taxpolicylab/captax/pkg/formulas"
)

// One color per policy, applied in table order.
var policyPalette = []string{"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a"}

const chartHeight = "400px"

// MetrBar builds the memo's headline figure: the marginal effective
// tax rate on machines, one colored bar per policy.
func MetrBar(table reporting.Table) (*echarts.Bar, error) {
	labels, values, err := metrSlice(table)
	if err != nil {
		return nil, err
	}

	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{Height: chartHeight}),
		echarts.WithTitleOpts(opts.Title{
			Title: "Effects of Business Tax Reforms on Incentives to Invest",
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Name: "Marginal Effective Tax Rate",
			Max:  headroom(values),
		}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{
			Name:      labels[i],
			Value:     v,
			ItemStyle: &opts.ItemStyle{Color: policyPalette[i%len(policyPalette)]},
		}
	}

	bar.SetXAxis(labels).AddSeries("METR on machines", data)
	return bar, nil
}

// Render writes the chart page to w.
func Render(table reporting.Table, w io.Writer) error {
	bar, err := MetrBar(table)
	if err != nil {
		return err
	}
	return bar.Render(w)
}

// WriteHTML saves the chart page to a file, creating the directory if
// needed.
func WriteHTML(table reporting.Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Render(table, f); err != nil {
		return err
	}
	return f.Close()
}

// metrSlice extracts the chart slice: METR for machines, one
// observation per policy in table order.
func metrSlice(table reporting.Table) (labels []string, values []float64, err error) {
	rows := table.Filter(reporting.VarMETR, assets.Machines)
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("table has no METR rows for %s", assets.Machines)
	}

	for _, row := range rows {
		labels = append(labels, row.Policy)
		values = append(values, row.Value)
	}
	return labels, values, nil
}

// headroom pads the y-axis ceiling by 10% so the tallest bar does not
// touch the frame.
func headroom(values []float64) float64 {
	return formulas.Max(values) * 1.1
}
