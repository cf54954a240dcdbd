package assets

import (
	"fmt"
)

// ValidationError describes a bad asset configuration. Validation runs
// before any computation starts, so a misconfigured catalog fails the
// run up front instead of mid-calculation.
type ValidationError struct {
	Asset AssetType
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("asset %q: invalid %s: %s", e.Asset, e.Field, e.Msg)
}

// Validate checks every asset in the catalog. The first problem found
// is returned as a *ValidationError.
func (c Catalog) Validate() error {
	for _, assetType := range AllAssetTypes {
		asset, ok := c[assetType]
		if !ok {
			return &ValidationError{Asset: assetType, Field: "entry", Msg: "missing from catalog"}
		}
		if !asset.Type.IsValid() || asset.Type != assetType {
			return &ValidationError{Asset: assetType, Field: "type", Msg: fmt.Sprintf("got %q", asset.Type)}
		}
		if !asset.Method.IsValid() {
			return &ValidationError{
				Asset: assetType,
				Field: "method",
				Msg:   fmt.Sprintf("got %q, must be one of: %s, %s", asset.Method, MethodDBSL, MethodSL),
			}
		}
		if asset.Life <= 0 {
			return &ValidationError{Asset: assetType, Field: "life", Msg: "must be greater than 0"}
		}
		if asset.Delta < 0 {
			return &ValidationError{Asset: assetType, Field: "delta", Msg: "must not be negative"}
		}
		if asset.FederalBonus < 0 || asset.FederalBonus > 1 {
			return &ValidationError{Asset: assetType, Field: "federal_bonus", Msg: "must be in [0, 1]"}
		}
	}
	return nil
}
