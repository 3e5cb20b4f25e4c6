package labstockserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	geoapp "github.com/labops/labstock/internal/domains/geo/application"
	invapp "github.com/labops/labstock/internal/domains/inventory/application"
	invtypes "github.com/labops/labstock/internal/domains/inventory/application/types"
	invports "github.com/labops/labstock/internal/domains/inventory/ports"
	apierrors "github.com/labops/labstock/internal/shared/errors"
)

// GeoAPI serves the one-shot supplier distance advisory for an item.
type GeoAPI struct {
	inventory invports.Service
	geo       *geoapp.Service
}

// NewGeoAPI creates a GeoAPI backed by the inventory and geo services.
func NewGeoAPI(inventory invports.Service, geo *geoapp.Service) GeoAPI {
	return GeoAPI{inventory: inventory, geo: geo}
}

type locationReportPayload struct {
	ItemName          string  `json:"itemName"`
	Origin            string  `json:"origin"`
	DistanceKm        float64 `json:"distanceKm"`
	SupplierSearchURL string  `json:"supplierSearchUrl"`
}

// Post /v1/items/:itemId/locate
// Distance from the lab depot to the caller's reported position
func (api *GeoAPI) LocateSuppliers(c *gin.Context) {
	item, err := api.inventory.GetItem(c.Request.Context(), invtypes.ItemIdentifier{ID: c.Param("itemId")})
	if err != nil {
		if errors.Is(err, invapp.ErrNotFound) {
			apierrors.Respond(c, apierrors.NewNotFoundProblem("item", c.Param("itemId")))
			return
		}
		apierrors.RespondError(c, err)
		return
	}
	report, err := api.geo.Locate(c.Request.Context(), item.Name)
	if err != nil {
		respondGeoError(c, err)
		return
	}
	c.JSON(http.StatusOK, locationReportPayload{
		ItemName:          report.ItemName,
		Origin:            report.Origin,
		DistanceKm:        report.DistanceKm,
		SupplierSearchURL: report.SupplierSearchURL,
	})
}
