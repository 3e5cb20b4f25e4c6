package labstockserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds one HTTP method and pattern to a handler.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handler sets served by the router.
type ApiHandleFunctions struct {
	InventoryAPI InventoryAPI
	GeoAPI       GeoAPI
	ContactAPI   ContactAPI
}

// NewRouter returns a new gin engine with all routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers all routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{http.MethodGet, "/v1/items", handleFunctions.InventoryAPI.ListItems},
		{http.MethodPost, "/v1/items", handleFunctions.InventoryAPI.CreateItem},
		{http.MethodGet, "/v1/items/:itemId", handleFunctions.InventoryAPI.GetItem},
		{http.MethodPut, "/v1/items/:itemId", handleFunctions.InventoryAPI.UpdateItem},
		{http.MethodDelete, "/v1/items/:itemId", handleFunctions.InventoryAPI.DeleteItem},
		{http.MethodPost, "/v1/items/:itemId/adjustments", handleFunctions.InventoryAPI.AdjustQuantity},
		{http.MethodPost, "/v1/items/:itemId/locate", handleFunctions.GeoAPI.LocateSuppliers},
		{http.MethodGet, "/v1/metrics", handleFunctions.InventoryAPI.Metrics},
		{http.MethodPost, "/v1/contact", handleFunctions.ContactAPI.SubmitMessage},
	}
}
