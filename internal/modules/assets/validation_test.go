package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Validate_Default(t *testing.T) {
	err := DefaultCatalog().Validate()
	assert.NoError(t, err)
}

func TestCatalog_Validate_UnknownMethod(t *testing.T) {
	catalog := DefaultCatalog()
	asset := catalog[Machines]
	asset.Method = "sum-of-years-digits"
	catalog[Machines] = asset

	err := catalog.Validate()
	assert.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, Machines, vErr.Asset)
	assert.Contains(t, err.Error(), "dbsl, sl")
}

func TestCatalog_Validate_BadFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(Catalog)
		field  string
	}{
		{
			name: "zero life",
			mutate: func(c Catalog) {
				a := c[Buildings]
				a.Life = 0
				c[Buildings] = a
			},
			field: "life",
		},
		{
			name: "negative depreciation rate",
			mutate: func(c Catalog) {
				a := c[Intangibles]
				a.Delta = -0.1
				c[Intangibles] = a
			},
			field: "delta",
		},
		{
			name: "bonus above 100%",
			mutate: func(c Catalog) {
				a := c[Machines]
				a.FederalBonus = 1.5
				c[Machines] = a
			},
			field: "federal_bonus",
		},
		{
			name: "missing asset",
			mutate: func(c Catalog) {
				delete(c, Buildings)
			},
			field: "entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := DefaultCatalog()
			tt.mutate(catalog)

			err := catalog.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestDepreciationMethod_IsValid(t *testing.T) {
	assert.True(t, MethodDBSL.IsValid())
	assert.True(t, MethodSL.IsValid())
	assert.False(t, DepreciationMethod("macrs").IsValid())
	assert.False(t, DepreciationMethod("").IsValid())
}
