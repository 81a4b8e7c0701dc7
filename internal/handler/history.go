package handler

import (
	"net/http"
	"strconv"

	"assettrack/internal/apierror"
	"assettrack/internal/dto"
	"assettrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HistoryHandler struct{ svc service.HistoryService }

func NewHistoryHandler(svc service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// AssetHistory godoc
// @Summary      Audit ledger of one asset
// @Description  Entries are returned newest first. The ledger is append-only; there is no write endpoint.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string true  "Asset UUID"
// @Param        action query string false "Action filter (CREATED, ASSIGNED, ...)"
// @Param        from   query string false "YYYY-MM-DD inclusive"
// @Param        to     query string false "YYYY-MM-DD inclusive"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.HistoryListResponse
// @Router       /v1/assets/{id}/history [get]
func (h *HistoryHandler) AssetHistory(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	filter := dto.HistoryFilter{
		AssetID:     assetID.String(),
		Action:      c.Query("action"),
		PerformedBy: c.Query("performed_by"),
		From:        c.Query("from"),
		To:          c.Query("to"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	resp, err := h.svc.Query(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to query history"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
