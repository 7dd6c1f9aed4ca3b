package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/apptask/backend/internal/domain/error"
	"github.com/apptask/backend/internal/integration/entrypoint/dto"
)

// ErrorHandler turns the last error attached with ctx.Error into a localized
// {code, message} response. Domain errors answer 400, anything else 500.
func ErrorHandler(messages MessageSource, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		locale := LocaleFrom(c)
		if locale == "" {
			locale = messages.DefaultLocale()
		}

		var domainErr *domainerror.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusBadRequest
			if domainErr.Code == domainerror.ErrCodeTooManyRequests {
				status = http.StatusTooManyRequests
			}

			c.JSON(status, dto.ErrorResponse{
				Code:    int(domainErr.Code),
				Message: messages.Message(locale, domainErr.Code.MessageKey(), domainErr.Args...),
			})
			return
		}

		logger.ErrorContext(c.Request.Context(), "Unhandled request error",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", RequestIDFrom(c),
		)

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    int(domainerror.ErrCodeInternal),
			Message: messages.Message(locale, domainerror.ErrCodeInternal.MessageKey()),
		})
	}
}
