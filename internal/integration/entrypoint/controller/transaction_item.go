package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	transactionitem "github.com/apptask/backend/internal/application/usecase/transaction_item"
	"github.com/apptask/backend/internal/application/usecase/trash"
	"github.com/apptask/backend/internal/domain/entity"
	"github.com/apptask/backend/internal/integration/entrypoint/dto"
)

// TransactionItemController handles transaction item endpoints.
type TransactionItemController struct {
	createUseCase       *transactionitem.CreateTransactionItemUseCase
	updateUseCase       *transactionitem.UpdateTransactionItemUseCase
	getUseCase          *transactionitem.GetTransactionItemUseCase
	listUseCase         *transactionitem.ListTransactionItemsUseCase
	deleteUseCase       *transactionitem.DeleteTransactionItemUseCase
	listProductsUseCase *transactionitem.ListTransactionProductsUseCase
	bulkDeleteUseCase   *trash.BulkDeleteUseCase[entity.TransactionItem]
	pages               PageParser
}

// NewTransactionItemController creates a new transaction item controller instance.
func NewTransactionItemController(
	createUseCase *transactionitem.CreateTransactionItemUseCase,
	updateUseCase *transactionitem.UpdateTransactionItemUseCase,
	getUseCase *transactionitem.GetTransactionItemUseCase,
	listUseCase *transactionitem.ListTransactionItemsUseCase,
	deleteUseCase *transactionitem.DeleteTransactionItemUseCase,
	listProductsUseCase *transactionitem.ListTransactionProductsUseCase,
	bulkDeleteUseCase *trash.BulkDeleteUseCase[entity.TransactionItem],
	pages PageParser,
) *TransactionItemController {
	return &TransactionItemController{
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		getUseCase:          getUseCase,
		listUseCase:         listUseCase,
		deleteUseCase:       deleteUseCase,
		listProductsUseCase: listProductsUseCase,
		bulkDeleteUseCase:   bulkDeleteUseCase,
		pages:               pages,
	}
}

// Create handles POST /transaction-item requests.
func (c *TransactionItemController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionItemRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transactionitem.CreateTransactionItemInput{
		TransactionID: *req.TransactionID,
		ProductID:     *req.ProductID,
		Count:         req.Count,
		Price:         *req.Price,
		TotalAmount:   *req.TotalAmount,
	})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.IDResponse{ID: output.ID})
}

// Update handles PUT /transaction-item/:id requests.
func (c *TransactionItemController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	var req dto.UpdateTransactionItemRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	if _, err := c.updateUseCase.Execute(ctx.Request.Context(), transactionitem.UpdateTransactionItemInput{
		ItemID:      id,
		Count:       req.Count,
		Price:       req.Price,
		TotalAmount: req.TotalAmount,
	}); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Get handles GET /transaction-item/:id requests.
func (c *TransactionItemController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transactionitem.GetTransactionItemInput{ItemID: id})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionItemResponse(output.Item))
}

// List handles GET /transaction-item requests.
func (c *TransactionItemController) List(ctx *gin.Context) {
	page, err := c.pages.Parse(ctx)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transactionitem.ListTransactionItemsInput{Page: page})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPageResponse(output.Page, dto.ToTransactionItemResponse))
}

// Delete handles DELETE /transaction-item/:id requests.
func (c *TransactionItemController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transactionitem.DeleteTransactionItemInput{ItemID: id}); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Products handles GET /transaction-item/products/:transactionId requests.
func (c *TransactionItemController) Products(ctx *gin.Context) {
	id, err := pathID(ctx, "transactionId")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.listProductsUseCase.Execute(ctx.Request.Context(), transactionitem.ListTransactionProductsInput{TransactionID: id})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchasedProductResponses(output.Products))
}

// BulkDelete handles POST /transaction-item/bulk-delete requests.
func (c *TransactionItemController) BulkDelete(ctx *gin.Context) {
	bulkDelete(ctx, c.bulkDeleteUseCase)
}
