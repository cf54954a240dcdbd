package assets

// AssetType identifies one of the broad asset categories the analysis
// covers.
type AssetType string

const (
	// Machines - equipment; example MACRS class EI40
	Machines AssetType = "machines"

	// Buildings - nonresidential structures; example class SI00
	Buildings AssetType = "buildings"

	// Intangibles - intellectual property products; example class ENS3
	Intangibles AssetType = "intangibles"
)

// AllAssetTypes lists the asset types in presentation order.
var AllAssetTypes = []AssetType{Machines, Buildings, Intangibles}

// IsValid checks if the asset type is one of the recognized categories
func (a AssetType) IsValid() bool {
	switch a {
	case Machines, Buildings, Intangibles:
		return true
	default:
		return false
	}
}

// String returns the string representation of the asset type
func (a AssetType) String() string {
	return string(a)
}

// DepreciationMethod identifies the tax depreciation schedule applied
// to an asset.
type DepreciationMethod string

const (
	// MethodDBSL - declining balance with a switch to straight line on
	// the remaining basis
	MethodDBSL DepreciationMethod = "dbsl"

	// MethodSL - straight line over the tax life
	MethodSL DepreciationMethod = "sl"
)

// IsValid checks if the depreciation method is recognized
func (m DepreciationMethod) IsValid() bool {
	switch m {
	case MethodDBSL, MethodSL:
		return true
	default:
		return false
	}
}

// String returns the string representation of the depreciation method
func (m DepreciationMethod) String() string {
	return string(m)
}

// Asset holds the fixed tax and economic attributes of one asset
// category.
type Asset struct {
	Type         AssetType          `json:"type"`
	Delta        float64            `json:"delta"`         // rate of economic depreciation
	Life         float64            `json:"life"`          // tax depreciation life in years
	Method       DepreciationMethod `json:"method"`        // tax depreciation schedule
	FederalBonus float64            `json:"federal_bonus"` // federal bonus depreciation rate
}

// DeclBalMultiplier is the acceleration multiplier used whenever an
// asset depreciates under the declining-balance method (double
// declining balance).
const DeclBalMultiplier = 2.0

// Catalog is the read-only set of assets under analysis, keyed by type.
// Construct it once with DefaultCatalog (or a literal in tests) and
// pass it explicitly into the evaluator.
type Catalog map[AssetType]Asset

// DefaultCatalog returns the three asset categories with 2025 federal
// parameters: 40% bonus on equipment and intangibles, none on
// structures.
func DefaultCatalog() Catalog {
	return Catalog{
		Machines: {
			Type:         Machines,
			Delta:        0.1031,
			Life:         7,
			Method:       MethodDBSL,
			FederalBonus: 0.4,
		},
		Buildings: {
			Type:         Buildings,
			Delta:        0.0314,
			Life:         39,
			Method:       MethodSL,
			FederalBonus: 0.0,
		},
		Intangibles: {
			Type:         Intangibles,
			Delta:        0.33,
			Life:         3,
			Method:       MethodSL,
			FederalBonus: 0.4,
		},
	}
}
