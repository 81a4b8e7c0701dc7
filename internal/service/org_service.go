package service

import (
	"context"

	"assettrack/internal/dto"
	"assettrack/internal/model"
	"assettrack/internal/repository"

	"github.com/google/uuid"
)

// OrgService manages the reference entities assets hang off: locations,
// departments, asset categories, vendors.
type OrgService interface {
	CreateLocation(ctx context.Context, companyID uuid.UUID, req dto.CreateLocationRequest) (*dto.OrgUnitResponse, error)
	ListLocations(ctx context.Context, companyID uuid.UUID) ([]dto.OrgUnitResponse, error)

	CreateDepartment(ctx context.Context, companyID uuid.UUID, req dto.CreateDepartmentRequest) (*dto.OrgUnitResponse, error)
	ListDepartments(ctx context.Context, companyID uuid.UUID) ([]dto.OrgUnitResponse, error)

	CreateCategory(ctx context.Context, companyID uuid.UUID, req dto.CreateCategoryRequest) (*dto.OrgUnitResponse, error)
	ListCategories(ctx context.Context, companyID uuid.UUID) ([]dto.OrgUnitResponse, error)

	CreateVendor(ctx context.Context, companyID uuid.UUID, req dto.CreateVendorRequest) (*dto.VendorResponse, error)
	ListVendors(ctx context.Context, companyID uuid.UUID) ([]dto.VendorResponse, error)
}

type orgService struct {
	repo repository.OrgRepository
}

func NewOrgService(repo repository.OrgRepository) OrgService {
	return &orgService{repo: repo}
}

func (s *orgService) CreateLocation(ctx context.Context, companyID uuid.UUID, req dto.CreateLocationRequest) (*dto.OrgUnitResponse, error) {
	l := &model.Location{
		CompanyID: companyID,
		Name:      req.Name,
		Code:      req.Code,
		Address:   req.Address,
		Active:    true,
	}
	if err := s.repo.CreateLocation(ctx, l); err != nil {
		return nil, err
	}
	return &dto.OrgUnitResponse{ID: l.ID.String(), Name: l.Name, Code: l.Code, Address: l.Address, Active: l.Active}, nil
}

func (s *orgService) ListLocations(ctx context.Context, companyID uuid.UUID) ([]dto.OrgUnitResponse, error) {
	locations, err := s.repo.ListLocations(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrgUnitResponse, len(locations))
	for i, l := range locations {
		resp[i] = dto.OrgUnitResponse{ID: l.ID.String(), Name: l.Name, Code: l.Code, Address: l.Address, Active: l.Active}
	}
	return resp, nil
}

func (s *orgService) CreateDepartment(ctx context.Context, companyID uuid.UUID, req dto.CreateDepartmentRequest) (*dto.OrgUnitResponse, error) {
	d := &model.Department{
		CompanyID: companyID,
		Name:      req.Name,
		Code:      req.Code,
		Active:    true,
	}
	if err := s.repo.CreateDepartment(ctx, d); err != nil {
		return nil, err
	}
	return &dto.OrgUnitResponse{ID: d.ID.String(), Name: d.Name, Code: d.Code, Active: d.Active}, nil
}

func (s *orgService) ListDepartments(ctx context.Context, companyID uuid.UUID) ([]dto.OrgUnitResponse, error) {
	departments, err := s.repo.ListDepartments(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrgUnitResponse, len(departments))
	for i, d := range departments {
		resp[i] = dto.OrgUnitResponse{ID: d.ID.String(), Name: d.Name, Code: d.Code, Active: d.Active}
	}
	return resp, nil
}

func (s *orgService) CreateCategory(ctx context.Context, companyID uuid.UUID, req dto.CreateCategoryRequest) (*dto.OrgUnitResponse, error) {
	c := &model.AssetCategory{
		CompanyID:   companyID,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Active:      true,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return &dto.OrgUnitResponse{ID: c.ID.String(), Name: c.Name, Code: c.Code, Active: c.Active}, nil
}

func (s *orgService) ListCategories(ctx context.Context, companyID uuid.UUID) ([]dto.OrgUnitResponse, error) {
	categories, err := s.repo.ListCategories(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrgUnitResponse, len(categories))
	for i, c := range categories {
		resp[i] = dto.OrgUnitResponse{ID: c.ID.String(), Name: c.Name, Code: c.Code, Active: c.Active}
	}
	return resp, nil
}

func (s *orgService) CreateVendor(ctx context.Context, companyID uuid.UUID, req dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	v := &model.Vendor{
		CompanyID:     companyID,
		Name:          req.Name,
		Code:          req.Code,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Active:        true,
	}
	if err := s.repo.CreateVendor(ctx, v); err != nil {
		return nil, err
	}
	resp := vendorToResponse(v)
	return &resp, nil
}

func (s *orgService) ListVendors(ctx context.Context, companyID uuid.UUID) ([]dto.VendorResponse, error) {
	vendors, err := s.repo.ListVendors(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VendorResponse, len(vendors))
	for i := range vendors {
		resp[i] = vendorToResponse(&vendors[i])
	}
	return resp, nil
}

func vendorToResponse(v *model.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:            v.ID.String(),
		Name:          v.Name,
		Code:          v.Code,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		Phone:         v.Phone,
		Active:        v.Active,
	}
}
