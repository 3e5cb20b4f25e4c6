// Package static pins the reported position to a fixed coordinate,
// for deployments without a locator endpoint and for tests.
package static

import (
	"context"

	"github.com/labops/labstock/internal/domains/geo/domain"
	"github.com/labops/labstock/internal/domains/geo/ports"
)

var _ ports.PositionProvider = (*Provider)(nil)

// Provider always reports the same coordinate.
type Provider struct {
	position domain.Coordinate
}

// NewProvider pins the reported position.
func NewProvider(position domain.Coordinate) *Provider {
	return &Provider{position: position}
}

// CurrentPosition returns the pinned coordinate.
func (p *Provider) CurrentPosition(context.Context) (domain.Coordinate, error) {
	return p.position, nil
}
