package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"assettrack/internal/dto"
	"assettrack/internal/model"
	"assettrack/internal/repository"
	"assettrack/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubAssetRepo is an in-memory AssetRepository.
type stubAssetRepo struct {
	assets map[uuid.UUID]*model.Asset
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{assets: make(map[uuid.UUID]*model.Asset)}
}

func (r *stubAssetRepo) CreateTx(_ *gorm.DB, a *model.Asset) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	r.assets[a.ID] = a
	return nil
}

func (r *stubAssetRepo) FindByID(_ context.Context, companyID, id uuid.UUID) (*model.Asset, error) {
	a, ok := r.assets[id]
	if !ok || a.CompanyID != companyID || a.IsDeleted {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (r *stubAssetRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Asset, error) {
	a, ok := r.assets[id]
	if !ok || a.IsDeleted {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (r *stubAssetRepo) FindByQRCode(_ context.Context, qr uuid.UUID) (*model.Asset, error) {
	for _, a := range r.assets {
		if a.QRCode == qr && !a.IsDeleted {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubAssetRepo) List(_ context.Context, companyID uuid.UUID, _ dto.AssetFilter) ([]model.Asset, int64, error) {
	var out []model.Asset
	for _, a := range r.assets {
		if a.CompanyID == companyID && !a.IsDeleted {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubAssetRepo) ListWithFinancials(_ context.Context, companyID uuid.UUID) ([]model.Asset, error) {
	var out []model.Asset
	for _, a := range r.assets {
		if a.CompanyID == companyID && !a.IsDeleted && a.PurchasePrice != nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAssetRepo) UpdateTx(_ *gorm.DB, a *model.Asset) error {
	r.assets[a.ID] = a
	return nil
}

func (r *stubAssetRepo) UpdateFieldsTx(_ *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	a, ok := r.assets[id]
	if !ok {
		return errors.New("not found")
	}
	for k, v := range fields {
		switch k {
		case "status":
			a.Status = v.(model.AssetStatus)
		case "assigned_to_id":
			u := v.(uuid.UUID)
			a.AssignedToID = &u
		case "location_id":
			u := v.(uuid.UUID)
			a.LocationID = &u
		case "department_id":
			u := v.(uuid.UUID)
			a.DepartmentID = &u
		}
	}
	return nil
}

func (r *stubAssetRepo) SoftDeleteTx(_ *gorm.DB, companyID, id uuid.UUID) error {
	a, ok := r.assets[id]
	if !ok || a.CompanyID != companyID || a.IsDeleted {
		return gorm.ErrRecordNotFound
	}
	a.MarkDeleted(time.Now())
	return nil
}

func (r *stubAssetRepo) DB() *gorm.DB { return nil }

var _ repository.AssetRepository = (*stubAssetRepo)(nil)

// stubTransferRepo is an in-memory TransferRepository with a hook to simulate
// a concurrent writer between the caller's read and the status swap.
type stubTransferRepo struct {
	transfers map[uuid.UUID]*model.AssetTransfer
	interlope func()
}

func newStubTransferRepo() *stubTransferRepo {
	return &stubTransferRepo{transfers: make(map[uuid.UUID]*model.AssetTransfer)}
}

func (r *stubTransferRepo) CreateTx(_ *gorm.DB, t *model.AssetTransfer) error {
	for _, existing := range r.transfers {
		if existing.TransferNumber == t.TransferNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	r.transfers[t.ID] = t
	return nil
}

func (r *stubTransferRepo) FindByID(_ context.Context, companyID, id uuid.UUID) (*model.AssetTransfer, error) {
	t, ok := r.transfers[id]
	if !ok || t.CompanyID != companyID {
		return nil, errors.New("not found")
	}
	return t, nil
}

func (r *stubTransferRepo) List(_ context.Context, companyID uuid.UUID, filter repository.WorkflowFilter) ([]model.AssetTransfer, int64, error) {
	var out []model.AssetTransfer
	for _, t := range r.transfers {
		if t.CompanyID != companyID {
			continue
		}
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *stubTransferRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, expected model.RequestStatus, fields map[string]interface{}) (int64, error) {
	if r.interlope != nil {
		r.interlope()
	}
	t, ok := r.transfers[id]
	if !ok || t.Status != expected {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "status":
			t.Status = v.(model.RequestStatus)
		case "approved_by_id":
			u := v.(uuid.UUID)
			t.ApprovedByID = &u
		case "approved_at":
			ts := v.(time.Time)
			t.ApprovedAt = &ts
		case "approval_remarks":
			t.ApprovalRemarks, _ = v.(*string)
		case "completed_by_id":
			u := v.(uuid.UUID)
			t.CompletedByID = &u
		case "completed_at":
			ts := v.(time.Time)
			t.CompletedAt = &ts
		}
	}
	return 1, nil
}

func (r *stubTransferRepo) DB() *gorm.DB { return nil }

var _ repository.TransferRepository = (*stubTransferRepo)(nil)

// stubDisposalRepo mirrors stubTransferRepo for disposals.
type stubDisposalRepo struct {
	disposals map[uuid.UUID]*model.AssetDisposal
	interlope func()
}

func newStubDisposalRepo() *stubDisposalRepo {
	return &stubDisposalRepo{disposals: make(map[uuid.UUID]*model.AssetDisposal)}
}

func (r *stubDisposalRepo) CreateTx(_ *gorm.DB, d *model.AssetDisposal) error {
	for _, existing := range r.disposals {
		if existing.DisposalNumber == d.DisposalNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	r.disposals[d.ID] = d
	return nil
}

func (r *stubDisposalRepo) FindByID(_ context.Context, companyID, id uuid.UUID) (*model.AssetDisposal, error) {
	d, ok := r.disposals[id]
	if !ok || d.CompanyID != companyID {
		return nil, errors.New("not found")
	}
	return d, nil
}

func (r *stubDisposalRepo) List(_ context.Context, companyID uuid.UUID, filter repository.WorkflowFilter) ([]model.AssetDisposal, int64, error) {
	var out []model.AssetDisposal
	for _, d := range r.disposals {
		if d.CompanyID != companyID {
			continue
		}
		if filter.Status != "" && string(d.Status) != filter.Status {
			continue
		}
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (r *stubDisposalRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, expected model.RequestStatus, fields map[string]interface{}) (int64, error) {
	if r.interlope != nil {
		r.interlope()
	}
	d, ok := r.disposals[id]
	if !ok || d.Status != expected {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "status":
			d.Status = v.(model.RequestStatus)
		case "approved_by_id":
			u := v.(uuid.UUID)
			d.ApprovedByID = &u
		case "approved_at":
			ts := v.(time.Time)
			d.ApprovedAt = &ts
		case "approval_remarks":
			d.ApprovalRemarks, _ = v.(*string)
		case "completed_by_id":
			u := v.(uuid.UUID)
			d.CompletedByID = &u
		case "completed_at":
			ts := v.(time.Time)
			d.CompletedAt = &ts
		case "gain_loss":
			g := v.(decimal.Decimal)
			d.GainLoss = &g
		}
	}
	return 1, nil
}

func (r *stubDisposalRepo) DB() *gorm.DB { return nil }

var _ repository.DisposalRepository = (*stubDisposalRepo)(nil)

// stubSequenceRepo issues counters from an in-memory map.
type stubSequenceRepo struct {
	counters map[string]int
}

func newStubSequenceRepo() *stubSequenceRepo {
	return &stubSequenceRepo{counters: make(map[string]int)}
}

func (r *stubSequenceRepo) NextTx(_ *gorm.DB, companyID uuid.UUID, scopeDate time.Time, prefix string) (int, error) {
	key := companyID.String() + "|" + scopeDate.Format("2006-01-02") + "|" + prefix
	r.counters[key]++
	return r.counters[key], nil
}

var _ repository.SequenceRepository = (*stubSequenceRepo)(nil)

// stubNotificationRepo captures created notification rows.
type stubNotificationRepo struct {
	rows map[uuid.UUID]*model.Notification
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{rows: make(map[uuid.UUID]*model.Notification)}
}

func (r *stubNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.rows[n.ID] = n
	return nil
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Notification, error) {
	n, ok := r.rows[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return n, nil
}

func (r *stubNotificationRepo) Update(_ context.Context, n *model.Notification) error {
	r.rows[n.ID] = n
	return nil
}

func (r *stubNotificationRepo) ListPendingRetries(_ context.Context, now time.Time, limit int) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range r.rows {
		if n.Status == "pending" && n.NextRetryAt != nil && !n.NextRetryAt.After(now) {
			out = append(out, *n)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

var _ repository.NotificationRepository = (*stubNotificationRepo)(nil)

// ── Fixture wiring ────────────────────────────────────────────────────────────

type workflowFixture struct {
	svc           service.WorkflowService
	assets        *stubAssetRepo
	transfers     *stubTransferRepo
	disposals     *stubDisposalRepo
	users         *stubUserRepo
	notifications *stubNotificationRepo
	history       *stubHistoryRepo

	companyID uuid.UUID
	actorID   uuid.UUID
}

func newWorkflowFixture() *workflowFixture {
	f := &workflowFixture{
		assets:        newStubAssetRepo(),
		transfers:     newStubTransferRepo(),
		disposals:     newStubDisposalRepo(),
		users:         newStubUserRepo(),
		notifications: newStubNotificationRepo(),
		history:       newStubHistoryRepo(),
		companyID:     uuid.New(),
		actorID:       uuid.New(),
	}
	f.svc = service.NewWorkflowService(
		f.transfers, f.disposals, f.assets, newStubSequenceRepo(),
		f.users, f.notifications,
		service.NewHistoryService(f.history),
		service.NewValuationService(),
		nil,
	)
	return f
}

func (f *workflowFixture) seedAsset(mutate func(a *model.Asset)) *model.Asset {
	a := &model.Asset{
		ID:         uuid.New(),
		CompanyID:  f.companyID,
		AssetTag:   "IT-" + uuid.NewString()[:8],
		QRCode:     uuid.New(),
		CategoryID: uuid.New(),
		Name:       "ThinkPad X1",
		Status:     model.AssetInUse,
	}
	if mutate != nil {
		mutate(a)
	}
	f.assets.assets[a.ID] = a
	return a
}

func strPtr(s string) *string { return &s }

// ── Submissions ───────────────────────────────────────────────────────────────

func TestSubmitTransfer_NumberFormatAndSnapshot(t *testing.T) {
	f := newWorkflowFixture()
	fromUser := uuid.New()
	fromLoc := uuid.New()
	asset := f.seedAsset(func(a *model.Asset) {
		a.AssignedToID = &fromUser
		a.LocationID = &fromLoc
	})
	toLoc := uuid.New()

	resp, err := f.svc.SubmitTransfer(context.Background(), f.companyID, f.actorID, dto.SubmitTransferRequest{
		AssetID:      asset.ID.String(),
		Reason:       "warehouse consolidation",
		ToLocationID: strPtr(toLoc.String()),
	})
	require.NoError(t, err)

	wantPrefix := "TRF-" + time.Now().UTC().Format("20060102") + "-"
	assert.Equal(t, wantPrefix+"0001", resp.TransferNumber)
	assert.Equal(t, "PENDING", resp.Status)
	// The From side is snapshotted from the asset at submission time.
	require.NotNil(t, resp.FromUserID)
	assert.Equal(t, fromUser.String(), *resp.FromUserID)
	require.NotNil(t, resp.FromLocationID)
	assert.Equal(t, fromLoc.String(), *resp.FromLocationID)
	assert.Nil(t, resp.FromDepartmentID)

	// Numbers advance per scope.
	resp2, err := f.svc.SubmitTransfer(context.Background(), f.companyID, f.actorID, dto.SubmitTransferRequest{
		AssetID:      asset.ID.String(),
		Reason:       "second request",
		ToLocationID: strPtr(toLoc.String()),
	})
	require.NoError(t, err)
	assert.Equal(t, wantPrefix+"0002", resp2.TransferNumber)
}

func TestSubmitTransfer_RequiresDestination(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(nil)

	_, err := f.svc.SubmitTransfer(context.Background(), f.companyID, f.actorID, dto.SubmitTransferRequest{
		AssetID: asset.ID.String(),
		Reason:  "nowhere to go",
	})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "destination", verr.Field)
}

func TestSubmitTransfer_DisposedAssetRejected(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(func(a *model.Asset) { a.Status = model.AssetDisposed })

	_, err := f.svc.SubmitTransfer(context.Background(), f.companyID, f.actorID, dto.SubmitTransferRequest{
		AssetID:      asset.ID.String(),
		Reason:       "too late",
		ToLocationID: strPtr(uuid.NewString()),
	})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSubmitDisposal_SnapshotsBookValue(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(func(a *model.Asset) {
		a.PurchasePrice = decPtr("55000")
		a.PurchaseDate = datePtr("2020-06-15")
	})

	resp, err := f.svc.SubmitDisposal(context.Background(), f.companyID, f.actorID, dto.SubmitDisposalRequest{
		AssetID:       asset.ID.String(),
		Reason:        "end of life",
		Method:        "SELL",
		DisposalValue: dec("60000"),
		DisposalCost:  dec("2000"),
	})
	require.NoError(t, err)
	wantPrefix := "DSP-" + time.Now().UTC().Format("20060102") + "-"
	assert.Equal(t, wantPrefix+"0001", resp.DisposalNumber)
	require.NotNil(t, resp.BookValueAtRequest)
	assert.Equal(t, "55000.00", resp.BookValueAtRequest.StringFixed(2))
}

func TestSubmitDisposal_NoValuationInputsMeansNilSnapshot(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(nil) // no purchase price/date

	resp, err := f.svc.SubmitDisposal(context.Background(), f.companyID, f.actorID, dto.SubmitDisposalRequest{
		AssetID:       asset.ID.String(),
		Reason:        "scrap heap",
		Method:        "SCRAP",
		DisposalValue: dec("500"),
		DisposalCost:  dec("100"),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.BookValueAtRequest)
}

func TestSubmitDisposal_UnknownMethod(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(nil)

	_, err := f.svc.SubmitDisposal(context.Background(), f.companyID, f.actorID, dto.SubmitDisposalRequest{
		AssetID: asset.ID.String(),
		Reason:  "bad method",
		Method:  "YEET",
	})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "method", verr.Field)
}

// ── Transitions ───────────────────────────────────────────────────────────────

func TestTransfer_ApproveThenComplete(t *testing.T) {
	f := newWorkflowFixture()
	fromUser := uuid.New()
	fromLoc := uuid.New()
	asset := f.seedAsset(func(a *model.Asset) {
		a.AssignedToID = &fromUser
		a.LocationID = &fromLoc
	})
	toUser := uuid.New()
	toLoc := uuid.New()
	toDept := uuid.New()

	submitted, err := f.svc.SubmitTransfer(context.Background(), f.companyID, f.actorID, dto.SubmitTransferRequest{
		AssetID:        asset.ID.String(),
		Reason:         "reassignment",
		ToUserID:       strPtr(toUser.String()),
		ToLocationID:   strPtr(toLoc.String()),
		ToDepartmentID: strPtr(toDept.String()),
	})
	require.NoError(t, err)
	id := uuid.MustParse(submitted.ID)

	approved, err := f.svc.ApproveTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{
		ExpectedStatus: "PENDING",
		Remarks:        strPtr("looks fine"),
	})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.Status)
	require.NotNil(t, approved.ApprovedByID)
	assert.Equal(t, f.actorID.String(), *approved.ApprovedByID)

	completed, err := f.svc.CompleteTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{
		ExpectedStatus: "APPROVED",
	})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", completed.Status)

	// The asset now reflects all three destination dimensions.
	require.NotNil(t, asset.AssignedToID)
	assert.Equal(t, toUser, *asset.AssignedToID)
	require.NotNil(t, asset.LocationID)
	assert.Equal(t, toLoc, *asset.LocationID)
	require.NotNil(t, asset.DepartmentID)
	assert.Equal(t, toDept, *asset.DepartmentID)

	// One ledger entry per changed dimension.
	actions := f.history.actionsFor(asset.ID)
	assert.ElementsMatch(t, []model.HistoryAction{
		model.HistoryAssigned,
		model.HistoryLocationChanged,
		model.HistoryTransferred,
	}, actions)
}

func TestTransfer_UnchangedDimensionProducesNoEntry(t *testing.T) {
	f := newWorkflowFixture()
	loc := uuid.New()
	asset := f.seedAsset(func(a *model.Asset) { a.LocationID = &loc })

	submitted, err := f.svc.SubmitTransfer(context.Background(), f.companyID, f.actorID, dto.SubmitTransferRequest{
		AssetID:      asset.ID.String(),
		Reason:       "no-op move",
		ToLocationID: strPtr(loc.String()),
	})
	require.NoError(t, err)
	id := uuid.MustParse(submitted.ID)

	_, err = f.svc.ApproveTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "PENDING"})
	require.NoError(t, err)
	completed, err := f.svc.CompleteTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "APPROVED"})
	require.NoError(t, err)

	assert.Equal(t, "COMPLETED", completed.Status)
	assert.Empty(t, f.history.actionsFor(asset.ID))
}

func TestTransfer_TerminalStatusIsImmutable(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(nil)

	submitted, err := f.svc.SubmitTransfer(context.Background(), f.companyID, f.actorID, dto.SubmitTransferRequest{
		AssetID:      asset.ID.String(),
		Reason:       "doomed",
		ToLocationID: strPtr(uuid.NewString()),
	})
	require.NoError(t, err)
	id := uuid.MustParse(submitted.ID)

	_, err = f.svc.RejectTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "PENDING"})
	require.NoError(t, err)

	_, err = f.svc.CompleteTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "APPROVED"})
	var terr *service.StateTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "REJECTED", terr.From)
	assert.Equal(t, "COMPLETED", terr.To)
}

func TestTransfer_PendingCannotComplete(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(nil)

	submitted, err := f.svc.SubmitTransfer(context.Background(), f.companyID, f.actorID, dto.SubmitTransferRequest{
		AssetID:      asset.ID.String(),
		Reason:       "skipping approval",
		ToLocationID: strPtr(uuid.NewString()),
	})
	require.NoError(t, err)
	id := uuid.MustParse(submitted.ID)

	_, err = f.svc.CompleteTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "PENDING"})
	var terr *service.StateTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "PENDING", terr.From)
}

func TestTransfer_ConcurrentTransitionSurfacesConflict(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(nil)

	submitted, err := f.svc.SubmitTransfer(context.Background(), f.companyID, f.actorID, dto.SubmitTransferRequest{
		AssetID:      asset.ID.String(),
		Reason:       "raced",
		ToLocationID: strPtr(uuid.NewString()),
	})
	require.NoError(t, err)
	id := uuid.MustParse(submitted.ID)

	// Another actor cancels between this caller's read and its write.
	f.transfers.interlope = func() {
		f.transfers.transfers[id].Status = model.StatusCancelled
		f.transfers.interlope = nil
	}

	_, err = f.svc.ApproveTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "PENDING"})
	var cerr *service.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "PENDING", cerr.Expected)
	assert.Equal(t, "CANCELLED", cerr.Actual)

	// Status stays as the concurrent writer left it.
	assert.Equal(t, model.StatusCancelled, f.transfers.transfers[id].Status)
}

func TestCancelTransfer_FromApproved(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(nil)

	submitted, err := f.svc.SubmitTransfer(context.Background(), f.companyID, f.actorID, dto.SubmitTransferRequest{
		AssetID:      asset.ID.String(),
		Reason:       "changed our minds",
		ToLocationID: strPtr(uuid.NewString()),
	})
	require.NoError(t, err)
	id := uuid.MustParse(submitted.ID)

	_, err = f.svc.ApproveTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "PENDING"})
	require.NoError(t, err)

	cancelled, err := f.svc.CancelTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "APPROVED"})
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", cancelled.Status)
}

// ── Disposal completion ───────────────────────────────────────────────────────

func TestCompleteDisposal_GainLossAndAssetRetired(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(func(a *model.Asset) {
		a.PurchasePrice = decPtr("55000")
		a.PurchaseDate = datePtr("2020-06-15")
	})

	submitted, err := f.svc.SubmitDisposal(context.Background(), f.companyID, f.actorID, dto.SubmitDisposalRequest{
		AssetID:       asset.ID.String(),
		Reason:        "sold to reseller",
		Method:        "SELL",
		DisposalValue: dec("60000"),
		DisposalCost:  dec("2000"),
	})
	require.NoError(t, err)
	id := uuid.MustParse(submitted.ID)

	_, err = f.svc.ApproveDisposal(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "PENDING"})
	require.NoError(t, err)

	completed, err := f.svc.CompleteDisposal(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "APPROVED"})
	require.NoError(t, err)

	assert.Equal(t, "COMPLETED", completed.Status)
	// 60000 − 2000 − 55000 (book value frozen at submission)
	require.NotNil(t, completed.GainLoss)
	assert.Equal(t, "3000.00", completed.GainLoss.StringFixed(2))

	assert.Equal(t, model.AssetDisposed, asset.Status)
	assert.Contains(t, f.history.actionsFor(asset.ID), model.HistoryDisposed)
}

func TestCompleteDisposal_NilSnapshotCountsAsZero(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(nil)

	submitted, err := f.svc.SubmitDisposal(context.Background(), f.companyID, f.actorID, dto.SubmitDisposalRequest{
		AssetID:       asset.ID.String(),
		Reason:        "never valued",
		Method:        "SCRAP",
		DisposalValue: dec("500"),
		DisposalCost:  dec("100"),
	})
	require.NoError(t, err)
	id := uuid.MustParse(submitted.ID)

	_, err = f.svc.ApproveDisposal(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "PENDING"})
	require.NoError(t, err)
	completed, err := f.svc.CompleteDisposal(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "APPROVED"})
	require.NoError(t, err)

	require.NotNil(t, completed.GainLoss)
	assert.Equal(t, "400.00", completed.GainLoss.StringFixed(2))
}

// ── Notifications ─────────────────────────────────────────────────────────────

func TestTransition_CreatesNotificationForRequester(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(nil)
	requester := f.users.seed(f.companyID, "jane", "jane@demo.local")

	submitted, err := f.svc.SubmitTransfer(context.Background(), f.companyID, requester.ID, dto.SubmitTransferRequest{
		AssetID:      asset.ID.String(),
		Reason:       "notify me",
		ToLocationID: strPtr(uuid.NewString()),
	})
	require.NoError(t, err)
	id := uuid.MustParse(submitted.ID)

	_, err = f.svc.ApproveTransfer(context.Background(), f.companyID, f.actorID, id, dto.TransitionRequest{ExpectedStatus: "PENDING"})
	require.NoError(t, err)

	require.Len(t, f.notifications.rows, 1)
	for _, n := range f.notifications.rows {
		assert.Equal(t, "jane@demo.local", n.Recipient)
		assert.Equal(t, "pending", n.Status)
		assert.Contains(t, n.Subject, submitted.TransferNumber)
		assert.Contains(t, n.Subject, "APPROVED")
	}
}

func TestTransition_NoEmailNoNotification(t *testing.T) {
	f := newWorkflowFixture()
	asset := f.seedAsset(nil)
	requester := f.users.seed(f.companyID, "bob", "")

	submitted, err := f.svc.SubmitTransfer(context.Background(), f.companyID, requester.ID, dto.SubmitTransferRequest{
		AssetID:      asset.ID.String(),
		Reason:       "silent",
		ToLocationID: strPtr(uuid.NewString()),
	})
	require.NoError(t, err)

	_, err = f.svc.ApproveTransfer(context.Background(), f.companyID, f.actorID, uuid.MustParse(submitted.ID), dto.TransitionRequest{ExpectedStatus: "PENDING"})
	require.NoError(t, err)
	assert.Empty(t, f.notifications.rows)
}
