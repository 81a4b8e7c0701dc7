package service

import (
	"context"
	"errors"
	"time"

	"assettrack/internal/dto"
	"assettrack/internal/model"
	"assettrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetService owns asset CRUD and the derived valuation views. Every
// mutation leaves a trail in the history ledger: creation, each changed
// tracked dimension on update, movement, and soft deletion.
type AssetService interface {
	Create(ctx context.Context, companyID, actorID uuid.UUID, req dto.CreateAssetRequest) (*dto.AssetResponse, error)
	Get(ctx context.Context, companyID, id uuid.UUID) (*dto.AssetResponse, error)
	LookupByQR(ctx context.Context, qr uuid.UUID) (*dto.AssetResponse, error)
	List(ctx context.Context, companyID uuid.UUID, filter dto.AssetFilter) (*dto.AssetListResponse, error)
	Update(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	Move(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.MoveAssetRequest) (*dto.AssetResponse, error)
	Delete(ctx context.Context, companyID, actorID, id uuid.UUID) error

	BookValue(ctx context.Context, companyID, id uuid.UUID, asOf time.Time) (*dto.BookValueResponse, error)
	Schedule(ctx context.Context, companyID, id uuid.UUID) (*dto.ScheduleResponse, error)
}

type assetService struct {
	repo      repository.AssetRepository
	orgRepo   repository.OrgRepository
	history   HistoryService
	valuation ValuationService
}

func NewAssetService(repo repository.AssetRepository, orgRepo repository.OrgRepository, history HistoryService, valuation ValuationService) AssetService {
	return &assetService{repo: repo, orgRepo: orgRepo, history: history, valuation: valuation}
}

// ── Create ────────────────────────────────────────────────────────────────────

func (s *assetService) Create(ctx context.Context, companyID, actorID uuid.UUID, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, NewValidationError("category_id", "must be a valid UUID")
	}
	if s.orgRepo != nil {
		if _, err := s.orgRepo.FindCategory(ctx, companyID, categoryID); err != nil {
			return nil, &NotFoundError{Resource: "category", ID: req.CategoryID}
		}
	}

	status := model.AssetStatus(req.Status)
	if req.Status == "" {
		status = model.AssetPlanning
	}

	profile, err := buildFinancialProfile(req.PurchasePrice, req.PurchaseDate, req.DepreciationRate, req.SalvageValue, req.UsefulLifeYears, nil)
	if err != nil {
		return nil, err
	}
	if err := validateFinancials(profile); err != nil {
		return nil, err
	}

	locationID, err := parseUUIDPtr(req.LocationID, "location_id")
	if err != nil {
		return nil, err
	}
	departmentID, err := parseUUIDPtr(req.DepartmentID, "department_id")
	if err != nil {
		return nil, err
	}
	assignedToID, err := parseUUIDPtr(req.AssignedToID, "assigned_to_id")
	if err != nil {
		return nil, err
	}
	custodianID, err := parseUUIDPtr(req.CustodianID, "custodian_id")
	if err != nil {
		return nil, err
	}
	vendorID, err := parseUUIDPtr(req.VendorID, "vendor_id")
	if err != nil {
		return nil, err
	}
	if vendorID != nil && s.orgRepo != nil {
		if _, err := s.orgRepo.FindVendor(ctx, companyID, *vendorID); err != nil {
			return nil, &NotFoundError{Resource: "vendor", ID: *req.VendorID}
		}
	}

	var condition *model.AssetCondition
	if req.Condition != nil {
		c := model.AssetCondition(*req.Condition)
		condition = &c
	}

	asset := model.Asset{
		ID:        uuid.New(),
		CompanyID: companyID,
		AssetTag:  req.AssetTag,
		QRCode:    uuid.New(),

		CategoryID: categoryID,

		Name:         req.Name,
		Description:  req.Description,
		Make:         req.Make,
		ModelName:    req.Model,
		SerialNumber: req.SerialNumber,

		Status:    status,
		Condition: condition,

		LocationID:   locationID,
		DepartmentID: departmentID,
		AssignedToID: assignedToID,
		CustodianID:  custodianID,
		VendorID:     vendorID,

		FinancialProfile: *profile,

		Notes:      req.Notes,
		IsCritical: req.IsCritical,
	}

	performedBy := actorID
	newVal := string(asset.Status)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &asset); err != nil {
			return err
		}
		return s.history.AppendTx(tx, HistoryEntry{
			AssetID:       asset.ID,
			Action:        model.HistoryCreated,
			PerformedByID: &performedBy,
			NewValue:      &newVal,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	return assetToResponse(&asset), nil
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *assetService) Get(ctx context.Context, companyID, id uuid.UUID) (*dto.AssetResponse, error) {
	asset, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, &NotFoundError{Resource: "asset", ID: id.String()}
	}
	return assetToResponse(asset), nil
}

func (s *assetService) LookupByQR(ctx context.Context, qr uuid.UUID) (*dto.AssetResponse, error) {
	asset, err := s.repo.FindByQRCode(ctx, qr)
	if err != nil {
		return nil, &NotFoundError{Resource: "asset", ID: qr.String()}
	}
	return assetToResponse(asset), nil
}

func (s *assetService) List(ctx context.Context, companyID uuid.UUID, filter dto.AssetFilter) (*dto.AssetListResponse, error) {
	assets, total, err := s.repo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(assets))
	for i := range assets {
		items = append(items, *assetToResponse(&assets[i]))
	}
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	return &dto.AssetListResponse{Data: items, Total: total, Page: page, Limit: limit}, nil
}

// ── Update ────────────────────────────────────────────────────────────────────

// Update applies partial changes (nil leaves a field alone) and appends one
// ledger entry per changed tracked dimension: status, assignment, location.
// Any other change collapses into a single UPDATED entry.
func (s *assetService) Update(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, &NotFoundError{Resource: "asset", ID: id.String()}
	}
	if asset.Status == model.AssetDisposed {
		return nil, NewValidationError("status", "disposed assets cannot be modified")
	}

	performedBy := actorID
	var entries []HistoryEntry
	otherChanged := false

	if req.Status != nil && model.AssetStatus(*req.Status) != asset.Status {
		old := string(asset.Status)
		asset.Status = model.AssetStatus(*req.Status)
		newVal := *req.Status
		entries = append(entries, HistoryEntry{
			AssetID:       asset.ID,
			Action:        model.HistoryStatusChanged,
			PerformedByID: &performedBy,
			OldValue:      &old,
			NewValue:      &newVal,
			Remarks:       req.Remarks,
		})
	}

	if req.AssignedToID != nil {
		newID, err := parseUUIDPtr(req.AssignedToID, "assigned_to_id")
		if err != nil {
			return nil, err
		}
		if !uuidPtrEqual(asset.AssignedToID, newID) {
			entries = append(entries, HistoryEntry{
				AssetID:       asset.ID,
				Action:        model.HistoryAssigned,
				PerformedByID: &performedBy,
				OldValue:      uuidPtrToString(asset.AssignedToID),
				NewValue:      uuidPtrToString(newID),
				FromUserID:    asset.AssignedToID,
				ToUserID:      newID,
				Remarks:       req.Remarks,
			})
			asset.AssignedToID = newID
		}
	}

	if req.LocationID != nil {
		newID, err := parseUUIDPtr(req.LocationID, "location_id")
		if err != nil {
			return nil, err
		}
		if !uuidPtrEqual(asset.LocationID, newID) {
			entries = append(entries, HistoryEntry{
				AssetID:        asset.ID,
				Action:         model.HistoryLocationChanged,
				PerformedByID:  &performedBy,
				OldValue:       uuidPtrToString(asset.LocationID),
				NewValue:       uuidPtrToString(newID),
				FromLocationID: asset.LocationID,
				ToLocationID:   newID,
				Remarks:        req.Remarks,
			})
			asset.LocationID = newID
		}
	}

	if req.Name != nil && *req.Name != asset.Name {
		asset.Name = *req.Name
		otherChanged = true
	}
	if req.Description != nil {
		asset.Description = req.Description
		otherChanged = true
	}
	if req.Make != nil {
		asset.Make = req.Make
		otherChanged = true
	}
	if req.Model != nil {
		asset.ModelName = req.Model
		otherChanged = true
	}
	if req.SerialNumber != nil {
		asset.SerialNumber = req.SerialNumber
		otherChanged = true
	}
	if req.Condition != nil {
		c := model.AssetCondition(*req.Condition)
		asset.Condition = &c
		otherChanged = true
	}
	if req.DepartmentID != nil {
		newID, err := parseUUIDPtr(req.DepartmentID, "department_id")
		if err != nil {
			return nil, err
		}
		if !uuidPtrEqual(asset.DepartmentID, newID) {
			asset.DepartmentID = newID
			otherChanged = true
		}
	}
	if req.CustodianID != nil {
		newID, err := parseUUIDPtr(req.CustodianID, "custodian_id")
		if err != nil {
			return nil, err
		}
		asset.CustodianID = newID
		otherChanged = true
	}
	if req.VendorID != nil {
		newID, err := parseUUIDPtr(req.VendorID, "vendor_id")
		if err != nil {
			return nil, err
		}
		if newID != nil && s.orgRepo != nil {
			if _, err := s.orgRepo.FindVendor(ctx, companyID, *newID); err != nil {
				return nil, &NotFoundError{Resource: "vendor", ID: *req.VendorID}
			}
		}
		asset.VendorID = newID
		otherChanged = true
	}
	if req.Notes != nil {
		asset.Notes = req.Notes
		otherChanged = true
	}
	if req.IsCritical != nil {
		asset.IsCritical = *req.IsCritical
		otherChanged = true
	}

	if req.PurchasePrice != nil || req.PurchaseDate != nil || req.DepreciationRate != nil || req.SalvageValue != nil || req.UsefulLifeYears != nil {
		profile, err := buildFinancialProfile(req.PurchasePrice, req.PurchaseDate, req.DepreciationRate, req.SalvageValue, req.UsefulLifeYears, &asset.FinancialProfile)
		if err != nil {
			return nil, err
		}
		if err := validateFinancials(profile); err != nil {
			return nil, err
		}
		asset.FinancialProfile = *profile
		otherChanged = true
	}

	if otherChanged {
		entries = append(entries, HistoryEntry{
			AssetID:       asset.ID,
			Action:        model.HistoryUpdated,
			PerformedByID: &performedBy,
			Remarks:       req.Remarks,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, asset); err != nil {
			return err
		}
		for _, e := range entries {
			if err := s.history.AppendTx(tx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return assetToResponse(asset), nil
}

// ── Move ──────────────────────────────────────────────────────────────────────

// Move relocates an asset directly, outside the transfer workflow. Intended
// for same-custody shuffles that need no approval.
func (s *assetService) Move(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.MoveAssetRequest) (*dto.AssetResponse, error) {
	asset, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, &NotFoundError{Resource: "asset", ID: id.String()}
	}
	if asset.Status == model.AssetDisposed {
		return nil, NewValidationError("status", "disposed assets cannot be moved")
	}

	toID, err := uuid.Parse(req.ToLocationID)
	if err != nil {
		return nil, NewValidationError("to_location_id", "must be a valid UUID")
	}
	if s.orgRepo != nil {
		if _, err := s.orgRepo.FindLocation(ctx, companyID, toID); err != nil {
			return nil, &NotFoundError{Resource: "location", ID: req.ToLocationID}
		}
	}
	if asset.LocationID != nil && *asset.LocationID == toID {
		return assetToResponse(asset), nil
	}

	fromID := asset.LocationID
	asset.LocationID = &toID
	performedBy := actorID
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, asset); err != nil {
			return err
		}
		return s.history.AppendTx(tx, HistoryEntry{
			AssetID:        asset.ID,
			Action:         model.HistoryLocationChanged,
			PerformedByID:  &performedBy,
			OldValue:       uuidPtrToString(fromID),
			NewValue:       uuidPtrToString(&toID),
			FromLocationID: fromID,
			ToLocationID:   &toID,
			Remarks:        req.Remarks,
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return assetToResponse(asset), nil
}

// ── Delete ────────────────────────────────────────────────────────────────────

func (s *assetService) Delete(ctx context.Context, companyID, actorID, id uuid.UUID) error {
	performedBy := actorID
	remark := "soft deleted"
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.SoftDeleteTx(tx, companyID, id); err != nil {
			return err
		}
		return s.history.AppendTx(tx, HistoryEntry{
			AssetID:       id,
			Action:        model.HistoryUpdated,
			PerformedByID: &performedBy,
			Remarks:       &remark,
		})
	})
	if errors.Is(txErr, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: "asset", ID: id.String()}
	}
	return txErr
}

// ── Valuation views ───────────────────────────────────────────────────────────

func (s *assetService) BookValue(ctx context.Context, companyID, id uuid.UUID, asOf time.Time) (*dto.BookValueResponse, error) {
	asset, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, &NotFoundError{Resource: "asset", ID: id.String()}
	}
	val, err := s.valuation.BookValue(asset, asOf)
	if err != nil {
		return nil, err
	}
	resp := &dto.BookValueResponse{
		AssetID: asset.ID.String(),
		AsOf:    asOf.Format(time.RFC3339),
		Defined: val.Defined,
	}
	if val.Defined {
		v := val.Value
		resp.BookValue = &v
		resp.Method = val.Method
	}
	return resp, nil
}

func (s *assetService) Schedule(ctx context.Context, companyID, id uuid.UUID) (*dto.ScheduleResponse, error) {
	asset, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, &NotFoundError{Resource: "asset", ID: id.String()}
	}
	entries, err := s.valuation.Schedule(asset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScheduleEntryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ScheduleEntryItem{
			Year:         e.Year,
			Depreciation: e.Depreciation,
			BookValue:    e.BookValue,
		})
	}
	return &dto.ScheduleResponse{AssetID: asset.ID.String(), Entries: items}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// buildFinancialProfile merges request fields over base (nil base = create).
func buildFinancialProfile(price *decimal.Decimal, dateStr *string, rate, salvage *decimal.Decimal, life *int, base *model.FinancialProfile) (*model.FinancialProfile, error) {
	p := model.FinancialProfile{}
	if base != nil {
		p = *base
	}
	if price != nil {
		p.PurchasePrice = price
	}
	if dateStr != nil {
		d, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			return nil, NewValidationError("purchase_date", "must be YYYY-MM-DD")
		}
		p.PurchaseDate = &d
	}
	if rate != nil {
		p.DepreciationRate = rate
	}
	if salvage != nil {
		p.SalvageValue = *salvage
	}
	if life != nil {
		p.UsefulLifeYears = life
	}
	return &p, nil
}

func assetToResponse(a *model.Asset) *dto.AssetResponse {
	var purchaseDate *string
	if a.PurchaseDate != nil {
		s := a.PurchaseDate.Format("2006-01-02")
		purchaseDate = &s
	}
	var condition *string
	if a.Condition != nil {
		c := string(*a.Condition)
		condition = &c
	}
	return &dto.AssetResponse{
		ID:           a.ID.String(),
		AssetTag:     a.AssetTag,
		QRCode:       a.QRCode.String(),
		CategoryID:   a.CategoryID.String(),
		Name:         a.Name,
		Description:  a.Description,
		Make:         a.Make,
		Model:        a.ModelName,
		SerialNumber: a.SerialNumber,

		Status:    string(a.Status),
		Condition: condition,

		LocationID:   uuidPtrToString(a.LocationID),
		DepartmentID: uuidPtrToString(a.DepartmentID),
		AssignedToID: uuidPtrToString(a.AssignedToID),
		CustodianID:  uuidPtrToString(a.CustodianID),
		VendorID:     uuidPtrToString(a.VendorID),

		PurchasePrice:    a.PurchasePrice,
		PurchaseDate:     purchaseDate,
		DepreciationRate: a.DepreciationRate,
		SalvageValue:     a.SalvageValue,
		UsefulLifeYears:  a.UsefulLifeYears,

		Notes:      a.Notes,
		IsCritical: a.IsCritical,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}
