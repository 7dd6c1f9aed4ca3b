package controller

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/apptask/backend/config"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// PageParser reads page, size and sort query parameters.
type PageParser struct {
	defaultSize int
	maxSize     int
}

// NewPageParser creates a PageParser with the configured size limits.
func NewPageParser(cfg config.PaginationConfig) PageParser {
	return PageParser{
		defaultSize: cfg.DefaultSize,
		maxSize:     cfg.MaxSize,
	}
}

// Parse builds a page request from ?page=0&size=20&sort=name,desc.
// Sizes above the maximum are capped.
func (p PageParser) Parse(ctx *gin.Context) (entity.PageRequest, error) {
	req := entity.PageRequest{Page: 0, Size: p.defaultSize}

	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return req, domainerror.NewInvalidRequestError("page must be a non-negative integer")
		}
		req.Page = page
	}

	if raw := ctx.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return req, domainerror.NewInvalidRequestError("size must be a positive integer")
		}
		req.Size = size
	}
	if req.Size > p.maxSize {
		req.Size = p.maxSize
	}
	if req.Size > 0 && req.Page > math.MaxInt/req.Size {
		return req, domainerror.NewInvalidRequestError("page is out of range")
	}

	for _, raw := range ctx.QueryArray("sort") {
		order, err := parseSortOrder(raw)
		if err != nil {
			return req, err
		}
		req.Sort = append(req.Sort, order)
	}

	return req, nil
}

func parseSortOrder(raw string) (entity.SortOrder, error) {
	property, direction, _ := strings.Cut(raw, ",")
	property = strings.TrimSpace(property)
	if property == "" {
		return entity.SortOrder{}, domainerror.NewInvalidRequestError("sort property is empty")
	}

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "asc":
		return entity.SortOrder{Property: property}, nil
	case "desc":
		return entity.SortOrder{Property: property, Descending: true}, nil
	default:
		return entity.SortOrder{}, domainerror.NewInvalidRequestError(fmt.Sprintf("unknown sort direction %q", direction))
	}
}

// pathID parses a positive int64 path parameter.
func pathID(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerror.NewInvalidRequestError(fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}

// bindJSON decodes the request body and reports failures as InvalidRequest.
func bindJSON(ctx *gin.Context, obj interface{}) error {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		return domainerror.NewInvalidRequestError(bindingDetail(err))
	}
	return nil
}

func bindingDetail(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "malformed request body"
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			details = append(details, fe.Field()+" is required")
		default:
			details = append(details, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(details, ", ")
}

// JSONTagName reports validation errors with the json field names.
func JSONTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
