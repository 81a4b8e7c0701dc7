package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"assettrack/internal/dto"
	"assettrack/internal/model"
	"assettrack/internal/repository"
	"assettrack/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxSequenceRetries bounds re-attempts when a freshly minted request number
// collides on its unique index. The counter upsert is atomic, so a collision
// means a counter reset or manual row insertion; three attempts is plenty.
const maxSequenceRetries = 3

// WorkflowService runs the transfer and disposal request lifecycles.
//
// Both kinds share one fixed state graph (PENDING → APPROVED | REJECTED |
// CANCELLED, APPROVED → COMPLETED | CANCELLED). Every transition is a
// compare-and-swap against the status the caller last observed: a lost race
// surfaces as *ConflictError and is never retried here.
type WorkflowService interface {
	SubmitTransfer(ctx context.Context, companyID, requesterID uuid.UUID, req dto.SubmitTransferRequest) (*dto.TransferResponse, error)
	ApproveTransfer(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error)
	RejectTransfer(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error)
	CancelTransfer(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error)
	CompleteTransfer(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error)
	GetTransfer(ctx context.Context, companyID, id uuid.UUID) (*dto.TransferResponse, error)
	ListTransfers(ctx context.Context, companyID uuid.UUID, filter repository.WorkflowFilter) (*dto.TransferListResponse, error)

	SubmitDisposal(ctx context.Context, companyID, requesterID uuid.UUID, req dto.SubmitDisposalRequest) (*dto.DisposalResponse, error)
	ApproveDisposal(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error)
	RejectDisposal(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error)
	CancelDisposal(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error)
	CompleteDisposal(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error)
	GetDisposal(ctx context.Context, companyID, id uuid.UUID) (*dto.DisposalResponse, error)
	ListDisposals(ctx context.Context, companyID uuid.UUID, filter repository.WorkflowFilter) (*dto.DisposalListResponse, error)
}

type workflowService struct {
	transferRepo     repository.TransferRepository
	disposalRepo     repository.DisposalRepository
	assetRepo        repository.AssetRepository
	sequenceRepo     repository.SequenceRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	history          HistoryService
	valuation        ValuationService
	dispatcher       *worker.Dispatcher
}

func NewWorkflowService(
	transferRepo repository.TransferRepository,
	disposalRepo repository.DisposalRepository,
	assetRepo repository.AssetRepository,
	sequenceRepo repository.SequenceRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	history HistoryService,
	valuation ValuationService,
	dispatcher *worker.Dispatcher,
) WorkflowService {
	return &workflowService{
		transferRepo:     transferRepo,
		disposalRepo:     disposalRepo,
		assetRepo:        assetRepo,
		sequenceRepo:     sequenceRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		history:          history,
		valuation:        valuation,
		dispatcher:       dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// formatRequestNumber builds "{PREFIX}-{YYYYMMDD}-{NNNN}".
func formatRequestNumber(prefix string, scopeDate time.Time, n int) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, scopeDate.Format("20060102"), n)
}

// ── SubmitTransfer ────────────────────────────────────────────────────────────

func (s *workflowService) SubmitTransfer(ctx context.Context, companyID, requesterID uuid.UUID, req dto.SubmitTransferRequest) (*dto.TransferResponse, error) {
	assetID, err := uuid.Parse(req.AssetID)
	if err != nil {
		return nil, NewValidationError("asset_id", "must be a valid UUID")
	}
	if req.ToUserID == nil && req.ToLocationID == nil && req.ToDepartmentID == nil {
		return nil, NewValidationError("destination", "at least one of to_user_id, to_location_id, to_department_id is required")
	}

	asset, err := s.assetRepo.FindByID(ctx, companyID, assetID)
	if err != nil {
		return nil, &NotFoundError{Resource: "asset", ID: req.AssetID}
	}
	if asset.Status == model.AssetDisposed {
		return nil, NewValidationError("asset_id", "asset is already disposed")
	}

	toUserID, err := parseUUIDPtr(req.ToUserID, "to_user_id")
	if err != nil {
		return nil, err
	}
	toLocationID, err := parseUUIDPtr(req.ToLocationID, "to_location_id")
	if err != nil {
		return nil, err
	}
	toDepartmentID, err := parseUUIDPtr(req.ToDepartmentID, "to_department_id")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transfer := model.AssetTransfer{
		CompanyID: companyID,
		AssetID:   assetID,

		// From snapshot: where the asset is at submission time.
		FromUserID:       asset.AssignedToID,
		FromLocationID:   asset.LocationID,
		FromDepartmentID: asset.DepartmentID,

		ToUserID:       toUserID,
		ToLocationID:   toLocationID,
		ToDepartmentID: toDepartmentID,

		RequestedByID: requesterID,
		RequestedAt:   now,
		Reason:        req.Reason,
		Status:        model.StatusPending,
	}

	txErr := s.createWithNumber(ctx, s.transferRepo.DB(), model.KindTransfer, companyID, now, func(tx *gorm.DB, number string) error {
		transfer.ID = uuid.New()
		transfer.TransferNumber = number
		return s.transferRepo.CreateTx(tx, &transfer)
	})
	if txErr != nil {
		return nil, txErr
	}
	return transferToResponse(&transfer), nil
}

// ── SubmitDisposal ────────────────────────────────────────────────────────────

func (s *workflowService) SubmitDisposal(ctx context.Context, companyID, requesterID uuid.UUID, req dto.SubmitDisposalRequest) (*dto.DisposalResponse, error) {
	assetID, err := uuid.Parse(req.AssetID)
	if err != nil {
		return nil, NewValidationError("asset_id", "must be a valid UUID")
	}
	method := model.DisposalMethod(req.Method)
	if !method.Valid() {
		return nil, NewValidationError("method", "unknown disposal method")
	}
	if req.DisposalValue.IsNegative() {
		return nil, NewValidationError("disposal_value", "must not be negative")
	}
	if req.DisposalCost.IsNegative() {
		return nil, NewValidationError("disposal_cost", "must not be negative")
	}

	asset, err := s.assetRepo.FindByID(ctx, companyID, assetID)
	if err != nil {
		return nil, &NotFoundError{Resource: "asset", ID: req.AssetID}
	}
	if asset.Status == model.AssetDisposed {
		return nil, NewValidationError("asset_id", "asset is already disposed")
	}

	now := time.Now().UTC()

	// Snapshot the book value at submission. Completion computes gain/loss
	// from this frozen figure, never from a recomputation at completion time.
	var bookValueAtRequest *decimal.Decimal
	val, err := s.valuation.BookValue(asset, now)
	if err != nil {
		return nil, err
	}
	if val.Defined {
		v := val.Value
		bookValueAtRequest = &v
	}

	disposal := model.AssetDisposal{
		CompanyID: companyID,
		AssetID:   assetID,

		RequestedByID: requesterID,
		RequestedAt:   now,
		Reason:        req.Reason,
		Method:        method,

		BookValueAtRequest: bookValueAtRequest,
		DisposalValue:      req.DisposalValue,
		DisposalCost:       req.DisposalCost,
		BuyerDetails:       req.BuyerDetails,

		Status: model.StatusPending,
	}

	txErr := s.createWithNumber(ctx, s.disposalRepo.DB(), model.KindDisposal, companyID, now, func(tx *gorm.DB, number string) error {
		disposal.ID = uuid.New()
		disposal.DisposalNumber = number
		return s.disposalRepo.CreateTx(tx, &disposal)
	})
	if txErr != nil {
		return nil, txErr
	}
	return disposalToResponse(&disposal), nil
}

// createWithNumber mints a request number and inserts the row in one
// transaction, retrying the whole unit on a duplicate-number collision.
func (s *workflowService) createWithNumber(ctx context.Context, db *gorm.DB, kind model.RequestKind, companyID uuid.UUID, scopeDate time.Time, insert func(tx *gorm.DB, number string) error) error {
	var lastErr error
	for attempt := 0; attempt < maxSequenceRetries; attempt++ {
		lastErr = runTx(ctx, db, func(tx *gorm.DB) error {
			n, err := s.sequenceRepo.NextTx(tx, companyID, scopeDate, kind.Prefix())
			if err != nil {
				return err
			}
			return insert(tx, formatRequestNumber(kind.Prefix(), scopeDate, n))
		})
		if lastErr == nil || !errors.Is(lastErr, gorm.ErrDuplicatedKey) {
			return lastErr
		}
	}
	return lastErr
}

// ── Transfer transitions ──────────────────────────────────────────────────────

func (s *workflowService) ApproveTransfer(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error) {
	now := time.Now().UTC()
	return s.transitionTransfer(ctx, companyID, id, req, model.StatusApproved, map[string]interface{}{
		"status":           model.StatusApproved,
		"approved_by_id":   actorID,
		"approved_at":      now,
		"approval_remarks": req.Remarks,
	}, nil)
}

func (s *workflowService) RejectTransfer(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error) {
	now := time.Now().UTC()
	return s.transitionTransfer(ctx, companyID, id, req, model.StatusRejected, map[string]interface{}{
		"status":           model.StatusRejected,
		"approved_by_id":   actorID,
		"approved_at":      now,
		"approval_remarks": req.Remarks,
	}, nil)
}

func (s *workflowService) CancelTransfer(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error) {
	return s.transitionTransfer(ctx, companyID, id, req, model.StatusCancelled, map[string]interface{}{
		"status":           model.StatusCancelled,
		"approval_remarks": req.Remarks,
	}, nil)
}

// CompleteTransfer commits the move: the CAS transition, the asset's new
// assignment, and one ledger entry per changed dimension all land in the same
// transaction.
func (s *workflowService) CompleteTransfer(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error) {
	now := time.Now().UTC()
	fields := map[string]interface{}{
		"status":          model.StatusCompleted,
		"completed_by_id": actorID,
		"completed_at":    now,
	}
	return s.transitionTransfer(ctx, companyID, id, req, model.StatusCompleted, fields, func(tx *gorm.DB, t *model.AssetTransfer) error {
		return s.applyTransfer(tx, t, actorID, now, req.Remarks)
	})
}

// applyTransfer mutates the asset and writes the ledger rows for a completed
// transfer. Dimensions the request does not touch (nil To*) are left alone;
// dimensions whose destination equals the snapshot produce no entry.
func (s *workflowService) applyTransfer(tx *gorm.DB, t *model.AssetTransfer, actorID uuid.UUID, now time.Time, remarks *string) error {
	assetFields := map[string]interface{}{}
	performedBy := actorID

	if t.ToUserID != nil && !uuidPtrEqual(t.FromUserID, t.ToUserID) {
		assetFields["assigned_to_id"] = *t.ToUserID
		entry := HistoryEntry{
			AssetID:       t.AssetID,
			Action:        model.HistoryAssigned,
			Timestamp:     now,
			PerformedByID: &performedBy,
			OldValue:      uuidPtrToString(t.FromUserID),
			NewValue:      uuidPtrToString(t.ToUserID),
			FromUserID:    t.FromUserID,
			ToUserID:      t.ToUserID,
			Remarks:       remarks,
		}
		if err := s.history.AppendTx(tx, entry); err != nil {
			return err
		}
	}

	if t.ToLocationID != nil && !uuidPtrEqual(t.FromLocationID, t.ToLocationID) {
		assetFields["location_id"] = *t.ToLocationID
		entry := HistoryEntry{
			AssetID:        t.AssetID,
			Action:         model.HistoryLocationChanged,
			Timestamp:      now,
			PerformedByID:  &performedBy,
			OldValue:       uuidPtrToString(t.FromLocationID),
			NewValue:       uuidPtrToString(t.ToLocationID),
			FromLocationID: t.FromLocationID,
			ToLocationID:   t.ToLocationID,
			Remarks:        remarks,
		}
		if err := s.history.AppendTx(tx, entry); err != nil {
			return err
		}
	}

	if t.ToDepartmentID != nil && !uuidPtrEqual(t.FromDepartmentID, t.ToDepartmentID) {
		assetFields["department_id"] = *t.ToDepartmentID
		entry := HistoryEntry{
			AssetID:       t.AssetID,
			Action:        model.HistoryTransferred,
			Timestamp:     now,
			PerformedByID: &performedBy,
			OldValue:      uuidPtrToString(t.FromDepartmentID),
			NewValue:      uuidPtrToString(t.ToDepartmentID),
			Remarks:       remarks,
		}
		if err := s.history.AppendTx(tx, entry); err != nil {
			return err
		}
	}

	if len(assetFields) == 0 {
		return nil
	}
	return s.assetRepo.UpdateFieldsTx(tx, t.AssetID, assetFields)
}

func (s *workflowService) transitionTransfer(ctx context.Context, companyID, id uuid.UUID, req dto.TransitionRequest, target model.RequestStatus, fields map[string]interface{}, after func(tx *gorm.DB, t *model.AssetTransfer) error) (*dto.TransferResponse, error) {
	expected := model.RequestStatus(req.ExpectedStatus)
	current, err := s.transferRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, &NotFoundError{Resource: "transfer", ID: id.String()}
	}
	if !current.Status.CanTransition(target) {
		return nil, &StateTransitionError{From: string(current.Status), To: string(target)}
	}
	if !expected.CanTransition(target) {
		return nil, &StateTransitionError{From: string(expected), To: string(target)}
	}

	txErr := runTx(ctx, s.transferRepo.DB(), func(tx *gorm.DB) error {
		rows, err := s.transferRepo.UpdateStatusTx(tx, id, expected, fields)
		if err != nil {
			return err
		}
		if rows == 0 {
			// The stored status moved between the caller's read and this
			// write. Classify and abort: nothing is retried on their behalf.
			latest, err := s.transferRepo.FindByID(ctx, companyID, id)
			if err != nil {
				return &NotFoundError{Resource: "transfer", ID: id.String()}
			}
			return &ConflictError{Expected: string(expected), Actual: string(latest.Status)}
		}
		if after != nil {
			return after(tx, current)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notifyRequester(ctx, companyID, current.RequestedByID, model.KindTransfer, current.TransferNumber, target)

	updated, err := s.transferRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return transferToResponse(updated), nil
}

func (s *workflowService) GetTransfer(ctx context.Context, companyID, id uuid.UUID) (*dto.TransferResponse, error) {
	t, err := s.transferRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, &NotFoundError{Resource: "transfer", ID: id.String()}
	}
	return transferToResponse(t), nil
}

func (s *workflowService) ListTransfers(ctx context.Context, companyID uuid.UUID, filter repository.WorkflowFilter) (*dto.TransferListResponse, error) {
	transfers, total, err := s.transferRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(transfers))
	for i := range transfers {
		items = append(items, *transferToResponse(&transfers[i]))
	}
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	return &dto.TransferListResponse{Data: items, Total: total, Page: page, Limit: limit}, nil
}

// ── Disposal transitions ──────────────────────────────────────────────────────

func (s *workflowService) ApproveDisposal(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error) {
	now := time.Now().UTC()
	return s.transitionDisposal(ctx, companyID, id, req, model.StatusApproved, map[string]interface{}{
		"status":           model.StatusApproved,
		"approved_by_id":   actorID,
		"approved_at":      now,
		"approval_remarks": req.Remarks,
	}, nil)
}

func (s *workflowService) RejectDisposal(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error) {
	now := time.Now().UTC()
	return s.transitionDisposal(ctx, companyID, id, req, model.StatusRejected, map[string]interface{}{
		"status":           model.StatusRejected,
		"approved_by_id":   actorID,
		"approved_at":      now,
		"approval_remarks": req.Remarks,
	}, nil)
}

func (s *workflowService) CancelDisposal(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error) {
	return s.transitionDisposal(ctx, companyID, id, req, model.StatusCancelled, map[string]interface{}{
		"status":           model.StatusCancelled,
		"approval_remarks": req.Remarks,
	}, nil)
}

// CompleteDisposal retires the asset. Gain/loss uses the book value frozen at
// submission; a missing snapshot (asset had no valuation inputs) counts as
// zero, so the figure is pure proceeds minus cost.
func (s *workflowService) CompleteDisposal(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error) {
	now := time.Now().UTC()

	current, err := s.disposalRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, &NotFoundError{Resource: "disposal", ID: id.String()}
	}

	bookValue := decimal.Zero
	if current.BookValueAtRequest != nil {
		bookValue = *current.BookValueAtRequest
	}
	gainLoss := current.DisposalValue.Sub(current.DisposalCost).Sub(bookValue)

	fields := map[string]interface{}{
		"status":          model.StatusCompleted,
		"completed_by_id": actorID,
		"completed_at":    now,
		"gain_loss":       gainLoss,
	}
	return s.transitionDisposal(ctx, companyID, id, req, model.StatusCompleted, fields, func(tx *gorm.DB, d *model.AssetDisposal) error {
		var old string
		if asset, err := s.assetRepo.FindByIDTx(tx, d.AssetID); err == nil {
			old = string(asset.Status)
		}
		if err := s.assetRepo.UpdateFieldsTx(tx, d.AssetID, map[string]interface{}{
			"status": model.AssetDisposed,
		}); err != nil {
			return err
		}
		performedBy := actorID
		newVal := string(model.AssetDisposed)
		detail := fmt.Sprintf("disposed via %s (%s)", d.DisposalNumber, d.Method)
		return s.history.AppendTx(tx, HistoryEntry{
			AssetID:       d.AssetID,
			Action:        model.HistoryDisposed,
			Timestamp:     now,
			PerformedByID: &performedBy,
			OldValue:      &old,
			NewValue:      &newVal,
			Remarks:       &detail,
		})
	})
}

func (s *workflowService) transitionDisposal(ctx context.Context, companyID, id uuid.UUID, req dto.TransitionRequest, target model.RequestStatus, fields map[string]interface{}, after func(tx *gorm.DB, d *model.AssetDisposal) error) (*dto.DisposalResponse, error) {
	expected := model.RequestStatus(req.ExpectedStatus)
	current, err := s.disposalRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, &NotFoundError{Resource: "disposal", ID: id.String()}
	}
	if !current.Status.CanTransition(target) {
		return nil, &StateTransitionError{From: string(current.Status), To: string(target)}
	}
	if !expected.CanTransition(target) {
		return nil, &StateTransitionError{From: string(expected), To: string(target)}
	}

	txErr := runTx(ctx, s.disposalRepo.DB(), func(tx *gorm.DB) error {
		rows, err := s.disposalRepo.UpdateStatusTx(tx, id, expected, fields)
		if err != nil {
			return err
		}
		if rows == 0 {
			latest, err := s.disposalRepo.FindByID(ctx, companyID, id)
			if err != nil {
				return &NotFoundError{Resource: "disposal", ID: id.String()}
			}
			return &ConflictError{Expected: string(expected), Actual: string(latest.Status)}
		}
		if after != nil {
			return after(tx, current)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notifyRequester(ctx, companyID, current.RequestedByID, model.KindDisposal, current.DisposalNumber, target)

	updated, err := s.disposalRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return disposalToResponse(updated), nil
}

func (s *workflowService) GetDisposal(ctx context.Context, companyID, id uuid.UUID) (*dto.DisposalResponse, error) {
	d, err := s.disposalRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, &NotFoundError{Resource: "disposal", ID: id.String()}
	}
	return disposalToResponse(d), nil
}

func (s *workflowService) ListDisposals(ctx context.Context, companyID uuid.UUID, filter repository.WorkflowFilter) (*dto.DisposalListResponse, error) {
	disposals, total, err := s.disposalRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DisposalResponse, 0, len(disposals))
	for i := range disposals {
		items = append(items, *disposalToResponse(&disposals[i]))
	}
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	return &dto.DisposalListResponse{Data: items, Total: total, Page: page, Limit: limit}, nil
}

// ── Notifications ─────────────────────────────────────────────────────────────

// notifyRequester writes a durable notification row and hands delivery to the
// worker pool. Best-effort: a failure here never fails the transition that
// triggered it.
func (s *workflowService) notifyRequester(ctx context.Context, companyID, userID uuid.UUID, kind model.RequestKind, number string, status model.RequestStatus) {
	if s.userRepo == nil || s.notificationRepo == nil {
		return
	}
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || u.Email == nil || *u.Email == "" {
		return
	}

	n := &model.Notification{
		ID:            uuid.New(),
		CompanyID:     companyID,
		Recipient:     *u.Email,
		Subject:       fmt.Sprintf("Request %s is now %s", number, status),
		Body:          fmt.Sprintf("Hello %s,\n\nYour %s request %s has moved to %s.\n", u.FullName, kind, number, status),
		RequestKind:   kind,
		RequestNumber: number,
		Status:        "pending",
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueNotification(ctx, worker.NotificationJobPayload{
			NotificationID: n.ID.String(),
		})
	}
}

// ── Response mapping ──────────────────────────────────────────────────────────

func transferToResponse(t *model.AssetTransfer) *dto.TransferResponse {
	return &dto.TransferResponse{
		ID:             t.ID.String(),
		TransferNumber: t.TransferNumber,
		AssetID:        t.AssetID.String(),
		Status:         string(t.Status),

		FromUserID:       uuidPtrToString(t.FromUserID),
		FromLocationID:   uuidPtrToString(t.FromLocationID),
		FromDepartmentID: uuidPtrToString(t.FromDepartmentID),
		ToUserID:         uuidPtrToString(t.ToUserID),
		ToLocationID:     uuidPtrToString(t.ToLocationID),
		ToDepartmentID:   uuidPtrToString(t.ToDepartmentID),

		RequestedByID:   t.RequestedByID.String(),
		RequestedAt:     t.RequestedAt.Format(time.RFC3339),
		Reason:          t.Reason,
		ApprovedByID:    uuidPtrToString(t.ApprovedByID),
		ApprovedAt:      timePtrToString(t.ApprovedAt),
		ApprovalRemarks: t.ApprovalRemarks,
		CompletedByID:   uuidPtrToString(t.CompletedByID),
		CompletedAt:     timePtrToString(t.CompletedAt),
	}
}

func disposalToResponse(d *model.AssetDisposal) *dto.DisposalResponse {
	return &dto.DisposalResponse{
		ID:             d.ID.String(),
		DisposalNumber: d.DisposalNumber,
		AssetID:        d.AssetID.String(),
		Status:         string(d.Status),
		Method:         string(d.Method),

		BookValueAtRequest: d.BookValueAtRequest,
		DisposalValue:      d.DisposalValue,
		DisposalCost:       d.DisposalCost,
		GainLoss:           d.GainLoss,
		BuyerDetails:       d.BuyerDetails,

		RequestedByID:   d.RequestedByID.String(),
		RequestedAt:     d.RequestedAt.Format(time.RFC3339),
		Reason:          d.Reason,
		ApprovedByID:    uuidPtrToString(d.ApprovedByID),
		ApprovedAt:      timePtrToString(d.ApprovedAt),
		ApprovalRemarks: d.ApprovalRemarks,
		CompletedByID:   uuidPtrToString(d.CompletedByID),
		CompletedAt:     timePtrToString(d.CompletedAt),
	}
}

func parseUUIDPtr(s *string, field string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, NewValidationError(field, "must be a valid UUID")
	}
	return &id, nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
