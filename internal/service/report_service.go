package service

import (
	"context"
	"sort"
	"time"

	"assettrack/internal/dto"
	"assettrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// highDepreciationCutoff marks assets worth flagging in the summary: those
// that have lost at least this percentage of their purchase value.
var highDepreciationCutoff = decimal.NewFromInt(50)

const maxHighDepreciationItems = 10

// ReportService derives aggregate financial views. Output is data only;
// rendering (spreadsheets, charts) belongs to consumers.
type ReportService interface {
	FinancialSummary(ctx context.Context, companyID uuid.UUID, asOf time.Time) (*dto.FinancialSummaryResponse, error)
}

type reportService struct {
	assetRepo repository.AssetRepository
	valuation ValuationService
}

func NewReportService(assetRepo repository.AssetRepository, valuation ValuationService) ReportService {
	return &reportService{assetRepo: assetRepo, valuation: valuation}
}

func (s *reportService) FinancialSummary(ctx context.Context, companyID uuid.UUID, asOf time.Time) (*dto.FinancialSummaryResponse, error) {
	assets, err := s.assetRepo.ListWithFinancials(ctx, companyID)
	if err != nil {
		return nil, err
	}

	totalPurchase := decimal.Zero
	totalCurrent := decimal.Zero
	var flagged []dto.DepreciatedAssetItem

	for i := range assets {
		a := &assets[i]
		val, err := s.valuation.BookValue(a, asOf)
		if err != nil || !val.Defined {
			continue
		}
		price := *a.PurchasePrice
		totalPurchase = totalPurchase.Add(price)
		totalCurrent = totalCurrent.Add(val.Value)

		if price.IsZero() {
			continue
		}
		pct := price.Sub(val.Value).Div(price).Mul(decimal.NewFromInt(100)).Round(2)
		if pct.GreaterThanOrEqual(highDepreciationCutoff) {
			flagged = append(flagged, dto.DepreciatedAssetItem{
				AssetID:         a.ID.String(),
				AssetTag:        a.AssetTag,
				Name:            a.Name,
				PurchasePrice:   price,
				CurrentValue:    val.Value,
				DepreciationPct: pct,
			})
		}
	}

	sort.Slice(flagged, func(i, j int) bool {
		return flagged[i].DepreciationPct.GreaterThan(flagged[j].DepreciationPct)
	})
	if len(flagged) > maxHighDepreciationItems {
		flagged = flagged[:maxHighDepreciationItems]
	}

	totalDep := totalPurchase.Sub(totalCurrent)
	depPct := decimal.Zero
	if !totalPurchase.IsZero() {
		depPct = totalDep.Div(totalPurchase).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &dto.FinancialSummaryResponse{
		TotalAssets:           len(assets),
		TotalPurchaseValue:    totalPurchase,
		TotalCurrentValue:     totalCurrent,
		TotalDepreciation:     totalDep,
		DepreciationPct:       depPct,
		HighDepreciationItems: flagged,
	}, nil
}
