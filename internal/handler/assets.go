package handler

import (
	"net/http"
	"strconv"
	"time"

	"assettrack/internal/apierror"
	"assettrack/internal/dto"
	"assettrack/internal/middleware"
	"assettrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssetsHandler struct{ svc service.AssetService }

func NewAssetsHandler(svc service.AssetService) *AssetsHandler { return &AssetsHandler{svc: svc} }

func callerIDs(c *gin.Context) (companyID, userID uuid.UUID) {
	claims := middleware.GetClaims(c)
	companyID, _ = uuid.Parse(claims.CompanyID)
	userID, _ = uuid.Parse(claims.UserID)
	return
}

// Create godoc
// @Summary      Register a new asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateAssetRequest true "Asset"
// @Success      201  {object} dto.AssetResponse
// @Failure      422  {object} apierror.APIError
// @Router       /v1/assets [post]
func (h *AssetsHandler) Create(c *gin.Context) {
	var req dto.CreateAssetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, userID := callerIDs(c)
	resp, err := h.svc.Create(c.Request.Context(), companyID, userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Fetch one asset
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Asset UUID"
// @Success      200 {object} dto.AssetResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/assets/{id} [get]
func (h *AssetsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	companyID, _ := callerIDs(c)
	resp, err := h.svc.Get(c.Request.Context(), companyID, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        status      query string false "Lifecycle status"
// @Param        category_id query string false "Category UUID"
// @Param        location_id query string false "Location UUID"
// @Param        search      query string false "Matches tag, name, serial number"
// @Param        page        query int    false "Page (default 1)"
// @Param        limit       query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.AssetListResponse
// @Router       /v1/assets [get]
func (h *AssetsHandler) List(c *gin.Context) {
	filter := dto.AssetFilter{
		Status:     c.Query("status"),
		CategoryID: c.Query("category_id"),
		LocationID: c.Query("location_id"),
		Search:     c.Query("search"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	companyID, _ := callerIDs(c)
	resp, err := h.svc.List(c.Request.Context(), companyID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list assets"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Partially update an asset
// @Description  Nil fields are left unchanged. Changes to status, assignment, or location each produce a history entry.
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true "Asset UUID"
// @Param        body body dto.UpdateAssetRequest true "Changed fields"
// @Success      200  {object} dto.AssetResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/assets/{id} [patch]
func (h *AssetsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.UpdateAssetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, userID := callerIDs(c)
	resp, err := h.svc.Update(c.Request.Context(), companyID, userID, id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Move godoc
// @Summary      Relocate an asset without the transfer workflow
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string               true "Asset UUID"
// @Param        body body dto.MoveAssetRequest true "Destination"
// @Success      200  {object} dto.AssetResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/assets/{id}/move [post]
func (h *AssetsHandler) Move(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.MoveAssetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, userID := callerIDs(c)
	resp, err := h.svc.Move(c.Request.Context(), companyID, userID, id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Soft-delete an asset
// @Tags         assets
// @Security     BearerAuth
// @Param        id path string true "Asset UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/assets/{id} [delete]
func (h *AssetsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	companyID, userID := callerIDs(c)
	if err := h.svc.Delete(c.Request.Context(), companyID, userID, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BookValue godoc
// @Summary      Current or historical book value
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string true  "Asset UUID"
// @Param        as_of query string false "RFC3339 or YYYY-MM-DD (default: now)"
// @Success      200 {object} dto.BookValueResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/assets/{id}/book-value [get]
func (h *AssetsHandler) BookValue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
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
	resp, err := h.svc.BookValue(c.Request.Context(), companyID, id, asOf)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Schedule godoc
// @Summary      Year-by-year depreciation schedule
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Asset UUID"
// @Success      200 {object} dto.ScheduleResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/assets/{id}/depreciation-schedule [get]
func (h *AssetsHandler) Schedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	companyID, _ := callerIDs(c)
	resp, err := h.svc.Schedule(c.Request.Context(), companyID, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
