package handler

import (
	"net/http"
	"strconv"

	"assettrack/internal/apierror"
	"assettrack/internal/dto"
	"assettrack/internal/repository"
	"assettrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkflowsHandler serves the transfer and disposal request endpoints.
// Transitions carry the caller's last-observed status; a stale value comes
// back as 409 and is the client's to resolve.
type WorkflowsHandler struct{ svc service.WorkflowService }

func NewWorkflowsHandler(svc service.WorkflowService) *WorkflowsHandler {
	return &WorkflowsHandler{svc: svc}
}

func workflowFilter(c *gin.Context) repository.WorkflowFilter {
	filter := repository.WorkflowFilter{
		AssetID: c.Query("asset_id"),
		Status:  c.Query("status"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	return filter
}

// ── Transfers ─────────────────────────────────────────────────────────────────

// SubmitTransfer godoc
// @Summary      Submit a transfer request
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SubmitTransferRequest true "Transfer request"
// @Success      201  {object} dto.TransferResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/transfers [post]
func (h *WorkflowsHandler) SubmitTransfer(c *gin.Context) {
	var req dto.SubmitTransferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, userID := callerIDs(c)
	resp, err := h.svc.SubmitTransfer(c.Request.Context(), companyID, userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetTransfer godoc
// @Summary      Fetch one transfer request
// @Tags         transfers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Transfer UUID"
// @Success      200 {object} dto.TransferResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/transfers/{id} [get]
func (h *WorkflowsHandler) GetTransfer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	companyID, _ := callerIDs(c)
	resp, err := h.svc.GetTransfer(c.Request.Context(), companyID, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTransfers godoc
// @Summary      List transfer requests
// @Tags         transfers
// @Produce      json
// @Security     BearerAuth
// @Param        asset_id query string false "Asset UUID"
// @Param        status   query string false "PENDING | APPROVED | REJECTED | COMPLETED | CANCELLED"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.TransferListResponse
// @Router       /v1/transfers [get]
func (h *WorkflowsHandler) ListTransfers(c *gin.Context) {
	companyID, _ := callerIDs(c)
	resp, err := h.svc.ListTransfers(c.Request.Context(), companyID, workflowFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list transfers"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkflowsHandler) transferTransition(c *gin.Context, fn func(companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.TransitionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, userID := callerIDs(c)
	resp, err := fn(companyID, userID, id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ApproveTransfer godoc
// @Summary      Approve a pending transfer
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true "Transfer UUID"
// @Param        body body dto.TransitionRequest true "Expected status + remarks"
// @Success      200  {object} dto.TransferResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/transfers/{id}/approve [post]
func (h *WorkflowsHandler) ApproveTransfer(c *gin.Context) {
	h.transferTransition(c, func(companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error) {
		return h.svc.ApproveTransfer(c.Request.Context(), companyID, actorID, id, req)
	})
}

// RejectTransfer godoc
// @Summary      Reject a pending transfer
// @Tags         transfers
// @Security     BearerAuth
// @Param        id   path string                true "Transfer UUID"
// @Param        body body dto.TransitionRequest true "Expected status + remarks"
// @Success      200  {object} dto.TransferResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/transfers/{id}/reject [post]
func (h *WorkflowsHandler) RejectTransfer(c *gin.Context) {
	h.transferTransition(c, func(companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error) {
		return h.svc.RejectTransfer(c.Request.Context(), companyID, actorID, id, req)
	})
}

// CancelTransfer godoc
// @Summary      Cancel a pending or approved transfer
// @Tags         transfers
// @Security     BearerAuth
// @Param        id   path string                true "Transfer UUID"
// @Param        body body dto.TransitionRequest true "Expected status + remarks"
// @Success      200  {object} dto.TransferResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/transfers/{id}/cancel [post]
func (h *WorkflowsHandler) CancelTransfer(c *gin.Context) {
	h.transferTransition(c, func(companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error) {
		return h.svc.CancelTransfer(c.Request.Context(), companyID, actorID, id, req)
	})
}

// CompleteTransfer godoc
// @Summary      Complete an approved transfer
// @Description  Applies the move to the asset and records one history entry per changed dimension.
// @Tags         transfers
// @Security     BearerAuth
// @Param        id   path string                true "Transfer UUID"
// @Param        body body dto.TransitionRequest true "Expected status + remarks"
// @Success      200  {object} dto.TransferResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/transfers/{id}/complete [post]
func (h *WorkflowsHandler) CompleteTransfer(c *gin.Context) {
	h.transferTransition(c, func(companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.TransferResponse, error) {
		return h.svc.CompleteTransfer(c.Request.Context(), companyID, actorID, id, req)
	})
}

// ── Disposals ─────────────────────────────────────────────────────────────────

// SubmitDisposal godoc
// @Summary      Submit a disposal request
// @Description  Snapshots the asset's book value for the eventual gain/loss computation.
// @Tags         disposals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SubmitDisposalRequest true "Disposal request"
// @Success      201  {object} dto.DisposalResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/disposals [post]
func (h *WorkflowsHandler) SubmitDisposal(c *gin.Context) {
	var req dto.SubmitDisposalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, userID := callerIDs(c)
	resp, err := h.svc.SubmitDisposal(c.Request.Context(), companyID, userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetDisposal godoc
// @Summary      Fetch one disposal request
// @Tags         disposals
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Disposal UUID"
// @Success      200 {object} dto.DisposalResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/disposals/{id} [get]
func (h *WorkflowsHandler) GetDisposal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	companyID, _ := callerIDs(c)
	resp, err := h.svc.GetDisposal(c.Request.Context(), companyID, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListDisposals godoc
// @Summary      List disposal requests
// @Tags         disposals
// @Produce      json
// @Security     BearerAuth
// @Param        asset_id query string false "Asset UUID"
// @Param        status   query string false "PENDING | APPROVED | REJECTED | COMPLETED | CANCELLED"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.DisposalListResponse
// @Router       /v1/disposals [get]
func (h *WorkflowsHandler) ListDisposals(c *gin.Context) {
	companyID, _ := callerIDs(c)
	resp, err := h.svc.ListDisposals(c.Request.Context(), companyID, workflowFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list disposals"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkflowsHandler) disposalTransition(c *gin.Context, fn func(companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.TransitionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, userID := callerIDs(c)
	resp, err := fn(companyID, userID, id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ApproveDisposal godoc
// @Summary      Approve a pending disposal
// @Tags         disposals
// @Security     BearerAuth
// @Param        id   path string                true "Disposal UUID"
// @Param        body body dto.TransitionRequest true "Expected status + remarks"
// @Success      200  {object} dto.DisposalResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/disposals/{id}/approve [post]
func (h *WorkflowsHandler) ApproveDisposal(c *gin.Context) {
	h.disposalTransition(c, func(companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error) {
		return h.svc.ApproveDisposal(c.Request.Context(), companyID, actorID, id, req)
	})
}

// RejectDisposal godoc
// @Summary      Reject a pending disposal
// @Tags         disposals
// @Security     BearerAuth
// @Param        id   path string                true "Disposal UUID"
// @Param        body body dto.TransitionRequest true "Expected status + remarks"
// @Success      200  {object} dto.DisposalResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/disposals/{id}/reject [post]
func (h *WorkflowsHandler) RejectDisposal(c *gin.Context) {
	h.disposalTransition(c, func(companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error) {
		return h.svc.RejectDisposal(c.Request.Context(), companyID, actorID, id, req)
	})
}

// CancelDisposal godoc
// @Summary      Cancel a pending or approved disposal
// @Tags         disposals
// @Security     BearerAuth
// @Param        id   path string                true "Disposal UUID"
// @Param        body body dto.TransitionRequest true "Expected status + remarks"
// @Success      200  {object} dto.DisposalResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/disposals/{id}/cancel [post]
func (h *WorkflowsHandler) CancelDisposal(c *gin.Context) {
	h.disposalTransition(c, func(companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error) {
		return h.svc.CancelDisposal(c.Request.Context(), companyID, actorID, id, req)
	})
}

// CompleteDisposal godoc
// @Summary      Complete an approved disposal
// @Description  Records gain/loss from the snapshotted book value and retires the asset.
// @Tags         disposals
// @Security     BearerAuth
// @Param        id   path string                true "Disposal UUID"
// @Param        body body dto.TransitionRequest true "Expected status + remarks"
// @Success      200  {object} dto.DisposalResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/disposals/{id}/complete [post]
func (h *WorkflowsHandler) CompleteDisposal(c *gin.Context) {
	h.disposalTransition(c, func(companyID, actorID, id uuid.UUID, req dto.TransitionRequest) (*dto.DisposalResponse, error) {
		return h.svc.CompleteDisposal(c.Request.Context(), companyID, actorID, id, req)
	})
}
