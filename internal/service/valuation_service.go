package service

import (
	"math"
	"time"

	"assettrack/internal/model"

	"github.com/shopspring/decimal"
)

// Depreciation method names as reported in API responses.
const (
	MethodReducingBalance = "reducing_balance"
	MethodStraightLine    = "straight_line"
	MethodNone            = "none"
)

const daysPerYear = 365.25

// Valuation is the result of a book-value computation. Defined=false means the
// asset is missing a purchase price or date and has no computable value; Value
// and Method are meaningless in that case.
type Valuation struct {
	Defined bool
	Value   decimal.Decimal
	Method  string
}

// ValuationService computes book values and depreciation schedules. It is a
// pure calculator over the asset's stored financial fields: no repository, no
// clock of its own, every amount in decimal arithmetic.
//
// Method selection: a depreciation rate selects reducing balance and wins when
// a useful life is also set; a useful life alone selects straight line;
// neither means the asset does not depreciate.
type ValuationService interface {
	BookValue(asset *model.Asset, asOf time.Time) (Valuation, error)
	Schedule(asset *model.Asset) ([]model.ScheduleEntry, error)
}

type valuationService struct{}

func NewValuationService() ValuationService { return &valuationService{} }

func (s *valuationService) BookValue(asset *model.Asset, asOf time.Time) (Valuation, error) {
	if err := validateFinancials(&asset.FinancialProfile); err != nil {
		return Valuation{}, err
	}
	if asset.PurchasePrice == nil || asset.PurchaseDate == nil {
		return Valuation{Defined: false}, nil
	}

	price := *asset.PurchasePrice
	years := yearsElapsed(*asset.PurchaseDate, asOf)

	switch {
	case asset.DepreciationRate != nil:
		// Reducing balance depreciates in whole-year steps: a partial year
		// contributes nothing until it completes.
		book := price
		factor := decimal.NewFromInt(100).Sub(*asset.DepreciationRate).Div(decimal.NewFromInt(100))
		for i := 0; i < int(math.Floor(years)); i++ {
			book = book.Mul(factor)
		}
		return Valuation{Defined: true, Value: floorAtSalvage(book, asset.SalvageValue), Method: MethodReducingBalance}, nil

	case asset.UsefulLifeYears != nil:
		// Straight line accrues continuously over fractional years.
		annual := price.Sub(asset.SalvageValue).Div(decimal.NewFromInt(int64(*asset.UsefulLifeYears)))
		accrued := annual.Mul(decimal.NewFromFloat(years))
		book := price.Sub(accrued)
		return Valuation{Defined: true, Value: floorAtSalvage(book, asset.SalvageValue), Method: MethodStraightLine}, nil

	default:
		return Valuation{Defined: true, Value: price.Round(2), Method: MethodNone}, nil
	}
}

// Schedule projects year-by-year depreciation from the purchase date. It is
// derived on demand and never persisted, and is only defined when purchase
// price, purchase date, and useful life are all present: without a declared
// life the reducing-balance curve only approaches salvage, so there is no
// horizon to project to. Anything less gets an empty schedule.
func (s *valuationService) Schedule(asset *model.Asset) ([]model.ScheduleEntry, error) {
	if err := validateFinancials(&asset.FinancialProfile); err != nil {
		return nil, err
	}
	if asset.PurchasePrice == nil || asset.PurchaseDate == nil || asset.UsefulLifeYears == nil {
		return []model.ScheduleEntry{}, nil
	}

	price := *asset.PurchasePrice
	salvage := asset.SalvageValue
	life := *asset.UsefulLifeYears

	if asset.DepreciationRate != nil {
		factor := decimal.NewFromInt(100).Sub(*asset.DepreciationRate).Div(decimal.NewFromInt(100))

		entries := make([]model.ScheduleEntry, 0, life)
		book := price
		for year := 1; year <= life; year++ {
			next := book.Mul(factor)
			if next.LessThan(salvage) {
				next = salvage
			}
			dep := book.Sub(next)
			entries = append(entries, model.ScheduleEntry{
				Year:         year,
				Depreciation: dep.Round(2),
				BookValue:    next.Round(2),
			})
			book = next
			if book.Equal(salvage) {
				break
			}
		}
		return entries, nil
	}

	annual := price.Sub(salvage).Div(decimal.NewFromInt(int64(life)))

	entries := make([]model.ScheduleEntry, 0, life)
	book := price
	for year := 1; year <= life; year++ {
		next := book.Sub(annual)
		if next.LessThan(salvage) {
			next = salvage
		}
		dep := book.Sub(next)
		entries = append(entries, model.ScheduleEntry{
			Year:         year,
			Depreciation: dep.Round(2),
			BookValue:    next.Round(2),
		})
		book = next
	}
	return entries, nil
}

func validateFinancials(p *model.FinancialProfile) error {
	if p.PurchasePrice != nil && p.PurchasePrice.IsNegative() {
		return NewValidationError("purchase_price", "must not be negative")
	}
	if p.DepreciationRate != nil {
		if p.DepreciationRate.IsNegative() || p.DepreciationRate.GreaterThan(decimal.NewFromInt(100)) {
			return NewValidationError("depreciation_rate", "must be between 0 and 100")
		}
	}
	if p.UsefulLifeYears != nil && *p.UsefulLifeYears <= 0 {
		return NewValidationError("useful_life_years", "must be positive")
	}
	if p.SalvageValue.IsNegative() {
		return NewValidationError("salvage_value", "must not be negative")
	}
	return nil
}

// yearsElapsed measures fractional years between purchase and asOf using the
// mean year length. An asOf before the purchase date counts as zero, never
// negative: future-dated purchases are simply not yet depreciating.
func yearsElapsed(purchase, asOf time.Time) float64 {
	days := asOf.Sub(purchase).Hours() / 24
	if days < 0 {
		return 0
	}
	return days / daysPerYear
}

// floorAtSalvage clamps book to the salvage floor and rounds to cents.
func floorAtSalvage(book, salvage decimal.Decimal) decimal.Decimal {
	if book.LessThan(salvage) {
		return salvage.Round(2)
	}
	return book.Round(2)
}
