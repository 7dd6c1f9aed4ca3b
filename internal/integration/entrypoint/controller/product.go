package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apptask/backend/internal/application/usecase/product"
	"github.com/apptask/backend/internal/application/usecase/trash"
	"github.com/apptask/backend/internal/domain/entity"
	"github.com/apptask/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product endpoints.
type ProductController struct {
	createUseCase     *product.CreateProductUseCase
	updateUseCase     *product.UpdateProductUseCase
	getUseCase        *product.GetProductUseCase
	listUseCase       *product.ListProductsUseCase
	deleteUseCase     *product.DeleteProductUseCase
	bulkDeleteUseCase *trash.BulkDeleteUseCase[entity.Product]
	pages             PageParser
}

// NewProductController creates a new product controller instance.
func NewProductController(
	createUseCase *product.CreateProductUseCase,
	updateUseCase *product.UpdateProductUseCase,
	getUseCase *product.GetProductUseCase,
	listUseCase *product.ListProductsUseCase,
	deleteUseCase *product.DeleteProductUseCase,
	bulkDeleteUseCase *trash.BulkDeleteUseCase[entity.Product],
	pages PageParser,
) *ProductController {
	return &ProductController{
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		deleteUseCase:     deleteUseCase,
		bulkDeleteUseCase: bulkDeleteUseCase,
		pages:             pages,
	}
}

// Create handles POST /product requests.
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), product.CreateProductInput{
		Name:       req.Name,
		Count:      req.Count,
		CategoryID: *req.CategoryID,
	})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.IDResponse{ID: output.ID})
}

// Update handles PUT /product/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	var req dto.UpdateProductRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	if _, err := c.updateUseCase.Execute(ctx.Request.Context(), product.UpdateProductInput{
		ProductID: id,
		Name:      req.Name,
		Count:     req.Count,
	}); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Get handles GET /product/:id requests.
func (c *ProductController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), product.GetProductInput{ProductID: id})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// List handles GET /product requests.
func (c *ProductController) List(ctx *gin.Context) {
	page, err := c.pages.Parse(ctx)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), product.ListProductsInput{Page: page})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPageResponse(output.Page, dto.ToProductResponse))
}

// Delete handles DELETE /product/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), product.DeleteProductInput{ProductID: id}); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// BulkDelete handles POST /product/bulk-delete requests.
func (c *ProductController) BulkDelete(ctx *gin.Context) {
	bulkDelete(ctx, c.bulkDeleteUseCase)
}
