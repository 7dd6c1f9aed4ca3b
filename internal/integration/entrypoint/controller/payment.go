package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apptask/backend/internal/application/usecase/payment"
	"github.com/apptask/backend/internal/application/usecase/trash"
	"github.com/apptask/backend/internal/domain/entity"
	"github.com/apptask/backend/internal/integration/entrypoint/dto"
)

// PaymentController handles user payment transaction endpoints.
type PaymentController struct {
	createUseCase     *payment.CreatePaymentUseCase
	updateUseCase     *payment.UpdatePaymentUseCase
	getUseCase        *payment.GetPaymentUseCase
	listUseCase       *payment.ListPaymentsUseCase
	deleteUseCase     *payment.DeletePaymentUseCase
	historyUseCase    *payment.GetPaymentHistoryUseCase
	exportUseCase     *payment.ExportPaymentHistoryUseCase
	bulkDeleteUseCase *trash.BulkDeleteUseCase[entity.UserPaymentTransaction]
	pages             PageParser
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	createUseCase *payment.CreatePaymentUseCase,
	updateUseCase *payment.UpdatePaymentUseCase,
	getUseCase *payment.GetPaymentUseCase,
	listUseCase *payment.ListPaymentsUseCase,
	deleteUseCase *payment.DeletePaymentUseCase,
	historyUseCase *payment.GetPaymentHistoryUseCase,
	exportUseCase *payment.ExportPaymentHistoryUseCase,
	bulkDeleteUseCase *trash.BulkDeleteUseCase[entity.UserPaymentTransaction],
	pages PageParser,
) *PaymentController {
	return &PaymentController{
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		deleteUseCase:     deleteUseCase,
		historyUseCase:    historyUseCase,
		exportUseCase:     exportUseCase,
		bulkDeleteUseCase: bulkDeleteUseCase,
		pages:             pages,
	}
}

// FillBalance handles POST /user-payment-transaction requests.
func (c *PaymentController) FillBalance(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), payment.CreatePaymentInput{
		UserID: *req.UserID,
		Amount: *req.Amount,
	})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.IDResponse{ID: output.ID})
}

// Update handles PUT /user-payment-transaction/:id requests.
func (c *PaymentController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	var req dto.UpdatePaymentRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	if _, err := c.updateUseCase.Execute(ctx.Request.Context(), payment.UpdatePaymentInput{
		PaymentID: id,
		Amount:    req.Amount,
	}); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Get handles GET /user-payment-transaction/:id requests.
func (c *PaymentController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), payment.GetPaymentInput{PaymentID: id})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(output.Payment))
}

// List handles GET /user-payment-transaction requests.
func (c *PaymentController) List(ctx *gin.Context) {
	page, err := c.pages.Parse(ctx)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), payment.ListPaymentsInput{Page: page})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPageResponse(output.Page, dto.ToPaymentResponse))
}

// Delete handles DELETE /user-payment-transaction/:id requests.
func (c *PaymentController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), payment.DeletePaymentInput{PaymentID: id}); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// History handles GET /user-payment-transaction/payment-history/:id requests.
func (c *PaymentController) History(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), payment.GetPaymentHistoryInput{UserID: id})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponses(output.Payments))
}

// ExportHistory handles GET /user-payment-transaction/payment-history/:id/export requests.
func (c *PaymentController) ExportHistory(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), payment.ExportPaymentHistoryInput{UserID: id})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// BulkDelete handles POST /user-payment-transaction/bulk-delete requests.
func (c *PaymentController) BulkDelete(ctx *gin.Context) {
	bulkDelete(ctx, c.bulkDeleteUseCase)
}
