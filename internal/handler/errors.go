package handler

import (
	"net/http"

	"erp-service/internal/authz"
	"erp-service/internal/middleware"
	"erp-service/pkg/apperr"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError maps a domain error to its HTTP response. Internal failures
// are logged server-side and collapsed to a generic message.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", zap.Error(err))
	}
	return c.JSON(status, echo.Map{"error": apperr.Message(err)})
}

// tenantScope authorizes a domain-entity operation and returns the session
// with its implicit tenant scope. The policy guarantees a non-nil tenant ID
// for any session it admits to a domain resource.
func tenantScope(c echo.Context, resource, action string) (*authz.Session, uint, error) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return nil, 0, apperr.Unauthorized("authentication required")
	}
	if !authz.CanAccess(session, resource, action) {
		return nil, 0, apperr.Forbidden("access denied")
	}
	return session, *session.TenantID, nil
}
