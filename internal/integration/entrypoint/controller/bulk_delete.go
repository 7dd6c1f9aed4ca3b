package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apptask/backend/internal/application/usecase/trash"
	"github.com/apptask/backend/internal/integration/entrypoint/dto"
)

// bulkDelete serves POST /<resource>/bulk-delete for any entity type.
func bulkDelete[E any](ctx *gin.Context, useCase *trash.BulkDeleteUseCase[E]) {
	var req dto.BulkDeleteRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := useCase.Execute(ctx.Request.Context(), trash.BulkDeleteInput{IDs: req.IDs})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBulkDeleteResponse(output))
}
