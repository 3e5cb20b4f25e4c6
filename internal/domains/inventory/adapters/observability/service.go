package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	invtypes "github.com/labops/labstock/internal/domains/inventory/application/types"
	"github.com/labops/labstock/internal/domains/inventory/domain"
	"github.com/labops/labstock/internal/domains/inventory/ports"
)

const tracerName = "github.com/labops/labstock/internal/domains/inventory/adapters/observability/service"

// Service decorates the inventory port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// CreateItem registers a new item with instrumentation.
func (s *Service) CreateItem(ctx context.Context, input invtypes.CreateItemInput) (*invtypes.ItemView, error) {
	ctx, span := s.startSpan(ctx, "Service.CreateItem", attribute.String("item.name", input.Name))
	defer span.End()

	s.logInfo(ctx, "creating item", slog.String("item.name", input.Name))
	result, err := s.inner.CreateItem(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create item", slog.String("item.name", input.Name))
	}
	s.metrics.recordCreated(ctx, result.Status)
	s.logInfo(ctx, "item created", slog.String("item.id", result.ID), slog.Int("item.quantity", result.Quantity))
	return result, nil
}

// UpdateItem edits name and price of an existing item.
func (s *Service) UpdateItem(ctx context.Context, input invtypes.UpdateItemInput) (*invtypes.ItemView, error) {
	ctx, span := s.startSpan(ctx, "Service.UpdateItem", attribute.String("item.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "updating item", slog.String("item.id", input.ID))
	result, err := s.inner.UpdateItem(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update item", slog.String("item.id", input.ID))
	}
	s.metrics.recordUpdated(ctx, result.Status)
	s.logInfo(ctx, "item updated", slog.String("item.id", result.ID))
	return result, nil
}

// AdjustQuantity moves stock by one unit.
func (s *Service) AdjustQuantity(ctx context.Context, input invtypes.AdjustQuantityInput) (*invtypes.AdjustResult, error) {
	ctx, span := s.startSpan(ctx, "Service.AdjustQuantity",
		attribute.String("item.id", input.ID),
		attribute.Int("item.delta", input.Delta),
	)
	defer span.End()

	s.logInfo(ctx, "adjusting quantity", slog.String("item.id", input.ID), slog.Int("delta", input.Delta))
	result, err := s.inner.AdjustQuantity(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to adjust quantity", slog.String("item.id", input.ID))
	}
	if result.Warning != "" {
		span.SetAttributes(attribute.String("item.warning", result.Warning))
		s.logInfo(ctx, "quantity adjustment refused", slog.String("item.id", input.ID), slog.String("warning", result.Warning))
		return result, nil
	}
	s.metrics.recordAdjusted(ctx, input.Delta)
	s.logInfo(ctx, "quantity adjusted", slog.String("item.id", result.Item.ID), slog.Int("item.quantity", result.Item.Quantity))
	return result, nil
}

// DeleteItem removes an item.
func (s *Service) DeleteItem(ctx context.Context, input invtypes.ItemIdentifier) error {
	ctx, span := s.startSpan(ctx, "Service.DeleteItem", attribute.String("item.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "deleting item", slog.String("item.id", input.ID))
	if err := s.inner.DeleteItem(ctx, input); err != nil {
		return s.handleError(ctx, span, err, "failed to delete item", slog.String("item.id", input.ID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "item deleted", slog.String("item.id", input.ID))
	return nil
}

// GetItem loads a single item snapshot.
func (s *Service) GetItem(ctx context.Context, input invtypes.ItemIdentifier) (*invtypes.ItemView, error) {
	ctx, span := s.startSpan(ctx, "Service.GetItem", attribute.String("item.id", input.ID))
	defer span.End()

	result, err := s.inner.GetItem(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load item", slog.String("item.id", input.ID))
	}
	return result, nil
}

// List returns the full item snapshot.
func (s *Service) List(ctx context.Context) ([]invtypes.ItemView, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list items")
	}
	span.SetAttributes(attribute.Int("item.result.count", len(result)))
	return result, nil
}

// Metrics recomputes the derived valuation and alerting figures.
func (s *Service) Metrics(ctx context.Context) (*invtypes.MetricsView, error) {
	ctx, span := s.startSpan(ctx, "Service.Metrics")
	defer span.End()

	result, err := s.inner.Metrics(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to compute metrics")
	}
	span.SetAttributes(
		attribute.Int("inventory.item_count", result.ItemCount),
		attribute.Int("inventory.low_stock_count", result.LowStockCount),
	)
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	itemsCreated  metric.Int64Counter
	itemsUpdated  metric.Int64Counter
	itemsAdjusted metric.Int64Counter
	itemsDeleted  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	itemsCreated, _ := m.Int64Counter("inventory.service.created", metric.WithDescription("Number of items created"))
	itemsUpdated, _ := m.Int64Counter("inventory.service.updated", metric.WithDescription("Number of items updated"))
	itemsAdjusted, _ := m.Int64Counter("inventory.service.adjusted", metric.WithDescription("Number of stock adjustments applied"))
	itemsDeleted, _ := m.Int64Counter("inventory.service.deleted", metric.WithDescription("Number of items deleted"))
	return serviceMetrics{
		itemsCreated:  itemsCreated,
		itemsUpdated:  itemsUpdated,
		itemsAdjusted: itemsAdjusted,
		itemsDeleted:  itemsDeleted,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status domain.StockStatus) {
	addCounter(ctx, m.itemsCreated, 1, attribute.String("item.status", string(status)))
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status domain.StockStatus) {
	addCounter(ctx, m.itemsUpdated, 1, attribute.String("item.status", string(status)))
}

func (m serviceMetrics) recordAdjusted(ctx context.Context, delta int) {
	direction := "restock"
	if delta < 0 {
		direction = "withdraw"
	}
	addCounter(ctx, m.itemsAdjusted, 1, attribute.String("item.direction", direction))
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	addCounter(ctx, m.itemsDeleted, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
