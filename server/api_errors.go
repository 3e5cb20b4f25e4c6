package labstockserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	invapp "github.com/labops/labstock/internal/domains/inventory/application"
	geoports "github.com/labops/labstock/internal/domains/geo/ports"
	apierrors "github.com/labops/labstock/internal/shared/errors"
)

// respondBadRequest reports a malformed request body as RFC 7807.
func respondBadRequest(c *gin.Context, err error) {
	apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}

// respondInventoryError maps inventory service errors onto problems.
// Validation and parse failures carry their messages verbatim so the
// form can surface them unchanged.
func respondInventoryError(c *gin.Context, err error) {
	var validationErr *invapp.ValidationError
	if errors.As(err, &validationErr) {
		apierrors.Respond(c, apierrors.NewValidationProblem(validationErr.Messages()))
		return
	}
	var parseErr *invapp.ParseError
	if errors.As(err, &parseErr) {
		apierrors.Respond(c, apierrors.ErrValidation.
			WithDetail(parseErr.Error()).
			WithExtension("field", parseErr.Field))
		return
	}
	if errors.Is(err, invapp.ErrNotFound) {
		apierrors.Respond(c, apierrors.NewNotFoundProblem("item", c.Param("itemId")))
		return
	}
	apierrors.RespondError(c, err)
}

// respondGeoError maps the position lookup taxonomy. Each failure is
// terminal for its request only.
func respondGeoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, geoports.ErrPermissionDenied):
		apierrors.Respond(c, apierrors.ErrForbidden.WithDetail("ACCESS DENIED: Location permission blocked."))
	case errors.Is(err, geoports.ErrPositionUnavailable):
		apierrors.Respond(c, apierrors.ErrUnavailable.WithDetail("ERROR: Location data unavailable."))
	default:
		apierrors.Respond(c, apierrors.ErrInternal.WithDetail("Geolocation Error. Check permissions."))
	}
}
