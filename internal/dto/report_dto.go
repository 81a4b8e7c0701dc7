package dto

import "github.com/shopspring/decimal"

// FinancialSummaryResponse aggregates valuation across a company's assets.
// Rendering (Excel, PDF, charts) is the consumer's problem — this is data only.
type FinancialSummaryResponse struct {
	TotalAssets           int             `json:"total_assets"`
	TotalPurchaseValue    decimal.Decimal `json:"total_purchase_value"`
	TotalCurrentValue     decimal.Decimal `json:"total_current_value"`
	TotalDepreciation     decimal.Decimal `json:"total_depreciation"`
	DepreciationPct       decimal.Decimal `json:"depreciation_pct"`
	HighDepreciationItems []DepreciatedAssetItem `json:"high_depreciation_assets"`
}

type DepreciatedAssetItem struct {
	AssetID         string          `json:"asset_id"`
	AssetTag        string          `json:"asset_tag"`
	Name            string          `json:"name"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	DepreciationPct decimal.Decimal `json:"depreciation_pct"`
}
