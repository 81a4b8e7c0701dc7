package dto

import (
	"github.com/shopspring/decimal"
)

type SubmitTransferRequest struct {
	AssetID        string  `json:"asset_id" validate:"required,uuid"`
	Reason         string  `json:"reason" validate:"required"`
	ToUserID       *string `json:"to_user_id" validate:"omitempty,uuid"`
	ToLocationID   *string `json:"to_location_id" validate:"omitempty,uuid"`
	ToDepartmentID *string `json:"to_department_id" validate:"omitempty,uuid"`
}

type SubmitDisposalRequest struct {
	AssetID       string          `json:"asset_id" validate:"required,uuid"`
	Reason        string          `json:"reason" validate:"required"`
	Method        string          `json:"method" validate:"required,oneof=SELL SCRAP DONATE DESTROY RETURN_TO_VENDOR"`
	DisposalValue decimal.Decimal `json:"disposal_value" validate:"min=0"`
	DisposalCost  decimal.Decimal `json:"disposal_cost" validate:"min=0"`
	BuyerDetails  *string         `json:"buyer_details"`
}

// TransitionRequest drives Approve / Reject / Complete / Cancel.
// ExpectedStatus is the status the caller observed; the transition fails with
// a conflict when the stored status has moved since.
type TransitionRequest struct {
	ExpectedStatus string  `json:"expected_status" validate:"required,oneof=PENDING APPROVED"`
	Remarks        *string `json:"remarks"`
}

type TransferResponse struct {
	ID             string `json:"id"`
	TransferNumber string `json:"transfer_number"`
	AssetID        string `json:"asset_id"`
	Status         string `json:"status"`

	FromUserID       *string `json:"from_user_id"`
	FromLocationID   *string `json:"from_location_id"`
	FromDepartmentID *string `json:"from_department_id"`
	ToUserID         *string `json:"to_user_id"`
	ToLocationID     *string `json:"to_location_id"`
	ToDepartmentID   *string `json:"to_department_id"`

	RequestedByID   string  `json:"requested_by_id"`
	RequestedAt     string  `json:"requested_at"`
	Reason          string  `json:"reason"`
	ApprovedByID    *string `json:"approved_by_id"`
	ApprovedAt      *string `json:"approved_at"`
	ApprovalRemarks *string `json:"approval_remarks"`
	CompletedByID   *string `json:"completed_by_id"`
	CompletedAt     *string `json:"completed_at"`
}

type DisposalResponse struct {
	ID             string `json:"id"`
	DisposalNumber string `json:"disposal_number"`
	AssetID        string `json:"asset_id"`
	Status         string `json:"status"`
	Method         string `json:"method"`

	BookValueAtRequest *decimal.Decimal `json:"book_value_at_request"`
	DisposalValue      decimal.Decimal  `json:"disposal_value"`
	DisposalCost       decimal.Decimal  `json:"disposal_cost"`
	GainLoss           *decimal.Decimal `json:"gain_loss"`
	BuyerDetails       *string          `json:"buyer_details"`

	RequestedByID   string  `json:"requested_by_id"`
	RequestedAt     string  `json:"requested_at"`
	Reason          string  `json:"reason"`
	ApprovedByID    *string `json:"approved_by_id"`
	ApprovedAt      *string `json:"approved_at"`
	ApprovalRemarks *string `json:"approval_remarks"`
	CompletedByID   *string `json:"completed_by_id"`
	CompletedAt     *string `json:"completed_at"`
}

type TransferListResponse struct {
	Data  []TransferResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

type DisposalListResponse struct {
	Data  []DisposalResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
