package labstockserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	invmapper "github.com/labops/labstock/internal/domains/inventory/adapters/http/mapper"
	invtypes "github.com/labops/labstock/internal/domains/inventory/application/types"
	invports "github.com/labops/labstock/internal/domains/inventory/ports"
)

// InventoryAPI wires HTTP transport with the inventory service.
type InventoryAPI struct {
	service invports.Service
}

// NewInventoryAPI creates an InventoryAPI backed by the provided service.
func NewInventoryAPI(service invports.Service) InventoryAPI {
	return InventoryAPI{service: service}
}

// Get /v1/items
// List the full inventory snapshot in creation order
func (api *InventoryAPI) ListItems(c *gin.Context) {
	items, err := api.service.List(c.Request.Context())
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, invmapper.FromViewList(items))
}

// Post /v1/items
// Register a new item from raw form fields
func (api *InventoryAPI) CreateItem(c *gin.Context) {
	var form invmapper.ItemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := api.service.CreateItem(c.Request.Context(), invmapper.ToCreateInput(form))
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invmapper.FromView(*created))
}

// Get /v1/items/:itemId
// Load one item snapshot
func (api *InventoryAPI) GetItem(c *gin.Context) {
	id := c.Param("itemId")
	item, err := api.service.GetItem(c.Request.Context(), invtypes.ItemIdentifier{ID: id})
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, invmapper.FromView(*item))
}

// Put /v1/items/:itemId
// Edit name and unit price; quantity is reused unchanged
func (api *InventoryAPI) UpdateItem(c *gin.Context) {
	var form invmapper.ItemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := api.service.UpdateItem(c.Request.Context(), invmapper.ToUpdateInput(c.Param("itemId"), form))
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, invmapper.FromView(*updated))
}

// Post /v1/items/:itemId/adjustments
// Move stock by exactly one unit in either direction
func (api *InventoryAPI) AdjustQuantity(c *gin.Context) {
	var payload struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	result, err := api.service.AdjustQuantity(c.Request.Context(), invtypes.AdjustQuantityInput{
		ID:    c.Param("itemId"),
		Delta: payload.Delta,
	})
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, invmapper.FromAdjustResult(result))
}

// Delete /v1/items/:itemId
// Remove an item; removing a missing id is a silent no-op
func (api *InventoryAPI) DeleteItem(c *gin.Context) {
	if err := api.service.DeleteItem(c.Request.Context(), invtypes.ItemIdentifier{ID: c.Param("itemId")}); err != nil {
		respondInventoryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /v1/metrics
// Valuation totals and the low-stock alert
func (api *InventoryAPI) Metrics(c *gin.Context) {
	metrics, err := api.service.Metrics(c.Request.Context())
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, invmapper.FromMetrics(metrics))
}
