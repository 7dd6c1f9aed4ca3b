package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apptask/backend/internal/application/usecase/category"
	"github.com/apptask/backend/internal/application/usecase/trash"
	"github.com/apptask/backend/internal/domain/entity"
	"github.com/apptask/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	createUseCase     *category.CreateCategoryUseCase
	updateUseCase     *category.UpdateCategoryUseCase
	getUseCase        *category.GetCategoryUseCase
	listUseCase       *category.ListCategoriesUseCase
	deleteUseCase     *category.DeleteCategoryUseCase
	bulkDeleteUseCase *trash.BulkDeleteUseCase[entity.Category]
	pages             PageParser
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	getUseCase *category.GetCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	bulkDeleteUseCase *trash.BulkDeleteUseCase[entity.Category],
	pages PageParser,
) *CategoryController {
	return &CategoryController{
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		deleteUseCase:     deleteUseCase,
		bulkDeleteUseCase: bulkDeleteUseCase,
		pages:             pages,
	}
}

// Create handles POST /category requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		OrderNumber: req.OrderNumber,
	})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.IDResponse{ID: output.ID})
}

// Update handles PUT /category/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	if _, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		CategoryID:  id,
		Name:        req.Name,
		Description: req.Description,
		OrderNumber: req.OrderNumber,
	}); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Get handles GET /category/:id requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), category.GetCategoryInput{CategoryID: id})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// List handles GET /category requests.
func (c *CategoryController) List(ctx *gin.Context) {
	page, err := c.pages.Parse(ctx)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{Page: page})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPageResponse(output.Page, dto.ToCategoryResponse))
}

// Delete handles DELETE /category/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{CategoryID: id}); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// BulkDelete handles POST /category/bulk-delete requests.
func (c *CategoryController) BulkDelete(ctx *gin.Context) {
	bulkDelete(ctx, c.bulkDeleteUseCase)
}
