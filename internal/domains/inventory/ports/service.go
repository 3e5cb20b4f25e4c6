package ports

import (
	"context"

	invtypes "github.com/labops/labstock/internal/domains/inventory/application/types"
)

// Service defines the inventory use cases exposed to adapters
// (inbound/driving port).
type Service interface {
	CreateItem(ctx context.Context, input invtypes.CreateItemInput) (*invtypes.ItemView, error)
	UpdateItem(ctx context.Context, input invtypes.UpdateItemInput) (*invtypes.ItemView, error)
	AdjustQuantity(ctx context.Context, input invtypes.AdjustQuantityInput) (*invtypes.AdjustResult, error)
	DeleteItem(ctx context.Context, input invtypes.ItemIdentifier) error
	GetItem(ctx context.Context, input invtypes.ItemIdentifier) (*invtypes.ItemView, error)
	List(ctx context.Context) ([]invtypes.ItemView, error)
	Metrics(ctx context.Context) (*invtypes.MetricsView, error)
}
