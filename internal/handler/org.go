package handler

import (
	"net/http"

	"assettrack/internal/apierror"
	"assettrack/internal/dto"
	"assettrack/internal/service"

	"github.com/gin-gonic/gin"
)

type OrgHandler struct{ svc service.OrgService }

func NewOrgHandler(svc service.OrgService) *OrgHandler { return &OrgHandler{svc: svc} }

// CreateLocation godoc
// @Summary      Create a location
// @Tags         org
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateLocationRequest true "Location"
// @Success      201 {object} dto.OrgUnitResponse
// @Router       /v1/locations [post]
func (h *OrgHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, _ := callerIDs(c)
	resp, err := h.svc.CreateLocation(c.Request.Context(), companyID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListLocations godoc
// @Summary      List locations
// @Tags         org
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.OrgUnitResponse
// @Router       /v1/locations [get]
func (h *OrgHandler) ListLocations(c *gin.Context) {
	companyID, _ := callerIDs(c)
	resp, err := h.svc.ListLocations(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list locations"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateDepartment godoc
// @Summary      Create a department
// @Tags         org
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateDepartmentRequest true "Department"
// @Success      201 {object} dto.OrgUnitResponse
// @Router       /v1/departments [post]
func (h *OrgHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, _ := callerIDs(c)
	resp, err := h.svc.CreateDepartment(c.Request.Context(), companyID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListDepartments godoc
// @Summary      List departments
// @Tags         org
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.OrgUnitResponse
// @Router       /v1/departments [get]
func (h *OrgHandler) ListDepartments(c *gin.Context) {
	companyID, _ := callerIDs(c)
	resp, err := h.svc.ListDepartments(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list departments"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateCategory godoc
// @Summary      Create an asset category
// @Tags         org
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateCategoryRequest true "Category"
// @Success      201 {object} dto.OrgUnitResponse
// @Router       /v1/categories [post]
func (h *OrgHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, _ := callerIDs(c)
	resp, err := h.svc.CreateCategory(c.Request.Context(), companyID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListCategories godoc
// @Summary      List asset categories
// @Tags         org
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.OrgUnitResponse
// @Router       /v1/categories [get]
func (h *OrgHandler) ListCategories(c *gin.Context) {
	companyID, _ := callerIDs(c)
	resp, err := h.svc.ListCategories(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list categories"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateVendor godoc
// @Summary      Create a vendor
// @Tags         org
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateVendorRequest true "Vendor"
// @Success      201 {object} dto.VendorResponse
// @Router       /v1/vendors [post]
func (h *OrgHandler) CreateVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	companyID, _ := callerIDs(c)
	resp, err := h.svc.CreateVendor(c.Request.Context(), companyID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListVendors godoc
// @Summary      List vendors
// @Tags         org
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.VendorResponse
// @Router       /v1/vendors [get]
func (h *OrgHandler) ListVendors(c *gin.Context) {
	companyID, _ := callerIDs(c)
	resp, err := h.svc.ListVendors(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list vendors"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
