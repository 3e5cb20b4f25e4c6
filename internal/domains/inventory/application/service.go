package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	invtypes "github.com/labops/labstock/internal/domains/inventory/application/types"
	"github.com/labops/labstock/internal/domains/inventory/domain"
	"github.com/labops/labstock/internal/domains/inventory/ports"
)

// WarningStockAtZero is surfaced when a decrement is refused because
// the item is already out of stock. The refusal changes no state.
const WarningStockAtZero = "Warning: Stock already at 0."

// Service orchestrates the inventory use cases. It owns the registry
// and re-serializes the whole of it through the snapshot gateway after
// every mutation; there is no dirty tracking or batching.
type Service struct {
	registry  *domain.Registry
	snapshots ports.SnapshotStore
}

// NewService wires the inventory service with its persistence gateway.
func NewService(snapshots ports.SnapshotStore) *Service {
	return &Service{
		registry:  domain.NewRegistry(),
		snapshots: snapshots,
	}
}

// Restore populates the registry from the snapshot slot, seeding the
// demo dataset on first run. Called once at process start.
func (s *Service) Restore(ctx context.Context) error {
	items, found, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("load inventory snapshot: %w", err)
	}
	if !found {
		if err := s.registry.Restore(seedItems()); err != nil {
			return err
		}
		return s.persist(ctx)
	}
	return s.registry.Restore(items)
}

// CreateItem parses and validates the raw form fields, allocates the
// next sequential id, and registers the item.
func (s *Service) CreateItem(ctx context.Context, input invtypes.CreateItemInput) (*invtypes.ItemView, error) {
	name := strings.TrimSpace(input.Name)
	price, err := parseDecimal("price", input.Price)
	if err != nil {
		return nil, err
	}
	quantity, err := parseCount("quantity", input.Quantity)
	if err != nil {
		return nil, err
	}
	if verr := validateItemEntry(name, price, quantity, false); verr != nil {
		return nil, verr
	}
	item, err := domain.NewItem(s.registry.AllocateID(), name, price, quantity)
	if err != nil {
		return nil, err
	}
	if err := s.registry.Put(*item); err != nil {
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	view := invtypes.NewItemView(*item)
	return &view, nil
}

// UpdateItem replaces name and unit price of an existing item. The
// stored quantity is reused unchanged, so its rule is skipped.
func (s *Service) UpdateItem(ctx context.Context, input invtypes.UpdateItemInput) (*invtypes.ItemView, error) {
	if _, err := s.registry.Get(input.ID); err != nil {
		return nil, mapError(err)
	}
	name := strings.TrimSpace(input.Name)
	price, err := parseDecimal("price", input.Price)
	if err != nil {
		return nil, err
	}
	if verr := validateItemEntry(name, price, 0, true); verr != nil {
		return nil, verr
	}
	updated, err := s.registry.Mutate(input.ID, func(item *domain.Item) error {
		if err := item.Rename(name); err != nil {
			return err
		}
		return item.Reprice(price)
	})
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	view := invtypes.NewItemView(updated)
	return &view, nil
}

// AdjustQuantity moves stock by one unit. +1 restocks, growing the
// investment basis in lockstep; -1 withdraws and is refused with a
// warning when the item is already at zero.
func (s *Service) AdjustQuantity(ctx context.Context, input invtypes.AdjustQuantityInput) (*invtypes.AdjustResult, error) {
	switch input.Delta {
	case 1:
		updated, err := s.registry.Mutate(input.ID, func(item *domain.Item) error {
			item.Restock()
			return nil
		})
		if err != nil {
			return nil, mapError(err)
		}
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return &invtypes.AdjustResult{Item: invtypes.NewItemView(updated)}, nil
	case -1:
		current, err := s.registry.Mutate(input.ID, func(item *domain.Item) error {
			return item.Withdraw()
		})
		if errors.Is(err, domain.ErrStockDepleted) {
			return &invtypes.AdjustResult{
				Item:    invtypes.NewItemView(current),
				Warning: WarningStockAtZero,
			}, nil
		}
		if err != nil {
			return nil, mapError(err)
		}
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return &invtypes.AdjustResult{Item: invtypes.NewItemView(current)}, nil
	default:
		return nil, &ValidationError{Violations: []string{"Quantity adjustment must be exactly +1 or -1."}}
	}
}

// DeleteItem removes the entry unconditionally. A missing id is a
// silent no-op; confirmation is the caller's concern.
func (s *Service) DeleteItem(ctx context.Context, input invtypes.ItemIdentifier) error {
	if removed := s.registry.Delete(input.ID); !removed {
		return nil
	}
	return s.persist(ctx)
}

// GetItem loads a single item snapshot.
func (s *Service) GetItem(ctx context.Context, input invtypes.ItemIdentifier) (*invtypes.ItemView, error) {
	item, err := s.registry.Get(input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	view := invtypes.NewItemView(item)
	return &view, nil
}

// List returns the full item snapshot in insertion order.
func (s *Service) List(_ context.Context) ([]invtypes.ItemView, error) {
	return invtypes.NewItemViewList(s.registry.Snapshot()), nil
}

// Metrics recomputes the derived valuation and alerting figures on
// demand; the registry is small enough that nothing is cached.
func (s *Service) Metrics(_ context.Context) (*invtypes.MetricsView, error) {
	items := s.registry.Snapshot()
	totalValue := domain.TotalCurrentValue(items)
	totalInvestment := domain.TotalInvestment(items)
	lowStock := domain.LowStockCount(items)
	alert := "STATUS: ALL STOCK HEALTHY"
	if lowStock > 0 {
		alert = fmt.Sprintf("ALERT: %d items need restocking!", lowStock)
	}
	return &invtypes.MetricsView{
		ItemCount:             len(items),
		TotalCurrentValue:     totalValue,
		TotalCurrentValueText: domain.FormatINR(totalValue),
		TotalInvestment:       totalInvestment,
		TotalInvestmentText:   domain.FormatINR(totalInvestment),
		LowStockCount:         lowStock,
		Alert:                 alert,
	}, nil
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.snapshots.Save(ctx, s.registry.Snapshot()); err != nil {
		return fmt.Errorf("persist inventory snapshot: %w", err)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
