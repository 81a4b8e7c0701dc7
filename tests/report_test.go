package tests

import (
	"context"
	"testing"
	"time"

	"assettrack/internal/model"
	"assettrack/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFinancialAsset(repo *stubAssetRepo, companyID uuid.UUID, tag, price, rate string, purchased string) *model.Asset {
	a := &model.Asset{
		ID:         uuid.New(),
		CompanyID:  companyID,
		AssetTag:   tag,
		QRCode:     uuid.New(),
		CategoryID: uuid.New(),
		Name:       tag,
		Status:     model.AssetInUse,
	}
	a.PurchasePrice = decPtr(price)
	a.PurchaseDate = datePtr(purchased)
	if rate != "" {
		a.DepreciationRate = decPtr(rate)
	}
	repo.assets[a.ID] = a
	return a
}

func TestFinancialSummary_AggregatesAndFlags(t *testing.T) {
	assets := newStubAssetRepo()
	companyID := uuid.New()

	// 50% per year, valued after exactly one elapsed year: book 50 000, flagged.
	seedFinancialAsset(assets, companyID, "IT-HEAVY", "100000", "50", "2023-01-01")
	// No depreciation inputs: book stays at 40 000, not flagged.
	seedFinancialAsset(assets, companyID, "IT-FLAT", "40000", "", "2023-01-01")
	// No purchase date: undefined, excluded from every total.
	undated := seedFinancialAsset(assets, companyID, "IT-UNDATED", "99999", "", "2023-01-01")
	undated.PurchaseDate = nil

	svc := service.NewReportService(assets, service.NewValuationService())
	asOf := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)

	resp, err := svc.FinancialSummary(context.Background(), companyID, asOf)
	require.NoError(t, err)

	assert.Equal(t, "140000", resp.TotalPurchaseValue.String())
	assert.Equal(t, "90000", resp.TotalCurrentValue.String())
	assert.Equal(t, "50000", resp.TotalDepreciation.String())
	// 50000 / 140000
	assert.Equal(t, "35.71", resp.DepreciationPct.StringFixed(2))

	require.Len(t, resp.HighDepreciationItems, 1)
	assert.Equal(t, "IT-HEAVY", resp.HighDepreciationItems[0].AssetTag)
	assert.Equal(t, "50.00", resp.HighDepreciationItems[0].DepreciationPct.StringFixed(2))
}

func TestFinancialSummary_EmptyCompany(t *testing.T) {
	svc := service.NewReportService(newStubAssetRepo(), service.NewValuationService())

	resp, err := svc.FinancialSummary(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalAssets)
	assert.True(t, resp.DepreciationPct.IsZero())
	assert.Empty(t, resp.HighDepreciationItems)
}
