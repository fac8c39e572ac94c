package handlers

import (
	"context"

	"github.com/ceylontrails/tourism-api/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PackageHandler struct {
	db *gorm.DB
}

func NewPackageHandler(db *gorm.DB) *PackageHandler {
	return &PackageHandler{db: db}
}

type packageFields struct {
	Name             string             `json:"name" minLength:"1"`
	Theme            string             `json:"theme,omitempty"`
	Description      string             `json:"description,omitempty"`
	IdealFor         []string           `json:"ideal_for,omitempty"`
	StartingPrice    string             `json:"starting_price" minLength:"1" doc:"Display price, e.g. \"1500 USD\""`
	PackageIcon      string             `json:"package_icon,omitempty"`
	PackagePhotos    []string           `json:"package_photos,omitempty"`
	DailyPlans       []models.DailyPlan `json:"daily_plans,omitempty"`
	IncludedItems    []string           `json:"included_items,omitempty"`
	NotIncludedItems []string           `json:"not_included_items,omitempty"`
}

func (f packageFields) apply(p *models.Package) {
	p.Name = f.Name
	p.Theme = f.Theme
	p.Description = f.Description
	p.IdealFor = datatypes.NewJSONSlice(f.IdealFor)
	p.StartingPrice = f.StartingPrice
	p.PackageIcon = f.PackageIcon
	p.PackagePhotos = datatypes.NewJSONSlice(f.PackagePhotos)
	p.DailyPlans = datatypes.NewJSONSlice(f.DailyPlans)
	p.IncludedItems = datatypes.NewJSONSlice(f.IncludedItems)
	p.NotIncludedItems = datatypes.NewJSONSlice(f.NotIncludedItems)
}

type PackageInput struct {
	Body packageFields
}

type PackageOutput struct {
	Body struct {
		Message string         `json:"message"`
		Package models.Package `json:"package"`
	}
}

func (h *PackageHandler) HandleCreate(ctx context.Context, input *PackageInput) (*PackageOutput, error) {
	var pkg models.Package
	input.Body.apply(&pkg)
	if err := h.db.Create(&pkg).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create package")
	}

	res := &PackageOutput{}
	res.Body.Message = "Package created"
	res.Body.Package = pkg
	return res, nil
}

type PackageListOutput struct {
	Body []models.Package
}

func (h *PackageHandler) HandleList(ctx context.Context, input *struct{}) (*PackageListOutput, error) {
	var packages []models.Package
	if err := h.db.Find(&packages).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list packages")
	}
	return &PackageListOutput{Body: packages}, nil
}

type GetPackageInput struct {
	ID string `path:"id"`
}

type PackageDetailOutput struct {
	Body models.Package
}

func (h *PackageHandler) HandleGet(ctx context.Context, input *GetPackageInput) (*PackageDetailOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid package ID")
	}

	var pkg models.Package
	if err := h.db.First(&pkg, "id = ?", id).Error; err != nil {
		return nil, huma.Error404NotFound("Package not found")
	}
	return &PackageDetailOutput{Body: pkg}, nil
}

type UpdatePackageInput struct {
	ID   string `path:"id"`
	Body packageFields
}

func (h *PackageHandler) HandleUpdate(ctx context.Context, input *UpdatePackageInput) (*PackageOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid package ID")
	}

	var pkg models.Package
	if err := h.db.First(&pkg, "id = ?", id).Error; err != nil {
		return nil, huma.Error404NotFound("Package not found")
	}

	input.Body.apply(&pkg)
	if err := h.db.Save(&pkg).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update package")
	}

	res := &PackageOutput{}
	res.Body.Message = "Package updated"
	res.Body.Package = pkg
	return res, nil
}

type DeletePackageInput struct {
	ID string `path:"id"`
}

func (h *PackageHandler) HandleDelete(ctx context.Context, input *DeletePackageInput) (*MessageResponse, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid package ID")
	}

	result := h.db.Delete(&models.Package{}, "id = ?", id)
	if result.Error != nil {
		return nil, huma.Error500InternalServerError("Failed to delete package")
	}
	if result.RowsAffected == 0 {
		return nil, huma.Error404NotFound("Package not found")
	}

	res := &MessageResponse{}
	res.Body.Message = "Package deleted"
	return res, nil
}
