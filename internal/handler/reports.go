package handler

import (
	"net/http"
	"time"

	"assettrack/internal/apierror"
	"assettrack/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// FinancialSummary godoc
// @Summary      Company-wide valuation summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        as_of query string false "RFC3339 or YYYY-MM-DD (default: now)"
// @Success      200 {object} dto.FinancialSummaryResponse
// @Router       /v1/reports/financial-summary [get]
func (h *ReportsHandler) FinancialSummary(c *gin.Context) {
	asOf := time.Now().UTC()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := parseTimeParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("as_of must be RFC3339 or YYYY-MM-DD"))
			return
		}
		asOf = parsed
	}
	companyID, _ := callerIDs(c)
	resp, err := h.svc.FinancialSummary(c.Request.Context(), companyID, asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to build summary"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
