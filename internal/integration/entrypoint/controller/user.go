package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apptask/backend/internal/application/usecase/trash"
	"github.com/apptask/backend/internal/application/usecase/user"
	"github.com/apptask/backend/internal/domain/entity"
	"github.com/apptask/backend/internal/integration/entrypoint/dto"
)

// UserController handles user endpoints.
type UserController struct {
	createUseCase       *user.CreateUserUseCase
	updateUseCase       *user.UpdateUserUseCase
	getUseCase          *user.GetUserUseCase
	listUseCase         *user.ListUsersUseCase
	deleteUseCase       *user.DeleteUserUseCase
	listProductsUseCase *user.ListUserProductsUseCase
	bulkDeleteUseCase   *trash.BulkDeleteUseCase[entity.User]
	pages               PageParser
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUseCase *user.CreateUserUseCase,
	updateUseCase *user.UpdateUserUseCase,
	getUseCase *user.GetUserUseCase,
	listUseCase *user.ListUsersUseCase,
	deleteUseCase *user.DeleteUserUseCase,
	listProductsUseCase *user.ListUserProductsUseCase,
	bulkDeleteUseCase *trash.BulkDeleteUseCase[entity.User],
	pages PageParser,
) *UserController {
	return &UserController{
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

// Create handles POST /users requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), user.CreateUserInput{
		Username: req.Username,
		FullName: req.FullName,
	})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.IDResponse{ID: output.ID})
}

// Update handles PUT /users/:id requests.
func (c *UserController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	var req dto.UpdateUserRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		return
	}

	if _, err := c.updateUseCase.Execute(ctx.Request.Context(), user.UpdateUserInput{
		UserID:   id,
		Username: req.Username,
		FullName: req.FullName,
	}); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Get handles GET /users/:id requests.
func (c *UserController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{UserID: id})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// List handles GET /users requests.
func (c *UserController) List(ctx *gin.Context) {
	page, err := c.pages.Parse(ctx)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), user.ListUsersInput{Page: page})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPageResponse(output.Page, dto.ToUserResponse))
}

// Delete handles DELETE /users/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{UserID: id}); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Products handles GET /users/products/:userId requests.
func (c *UserController) Products(ctx *gin.Context) {
	id, err := pathID(ctx, "userId")
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	output, err := c.listProductsUseCase.Execute(ctx.Request.Context(), user.ListUserProductsInput{UserID: id})
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchasedProductResponses(output.Products))
}

// BulkDelete handles POST /users/bulk-delete requests.
func (c *UserController) BulkDelete(ctx *gin.Context) {
	bulkDelete(ctx, c.bulkDeleteUseCase)
}
