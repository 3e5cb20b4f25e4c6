package application

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/labops/labstock/internal/domains/geo/domain"
	"github.com/labops/labstock/internal/domains/geo/ports"
)

// LocationReport is the logistics advisory for one item: how far the
// caller is from the lab depot plus a supplier search link.
type LocationReport struct {
	ItemName          string
	Origin            string
	DistanceKm        float64
	SupplierSearchURL string
}

// Service computes one-shot distance advisories from the fixed
// reference point to the caller's reported position.
type Service struct {
	provider  ports.PositionProvider
	reference domain.ReferencePoint
}

// NewService wires the geo advisory with its position provider.
func NewService(provider ports.PositionProvider) *Service {
	return &Service{provider: provider, reference: domain.LabCentralDepot}
}

// Locate asks the provider for the current position and reports the
// distance to the reference point. Provider failures pass through
// untouched so callers can branch on the error taxonomy.
func (s *Service) Locate(ctx context.Context, itemName string) (*LocationReport, error) {
	position, err := s.provider.CurrentPosition(ctx)
	if err != nil {
		return nil, err
	}
	return &LocationReport{
		ItemName:          itemName,
		Origin:            s.reference.Name,
		DistanceKm:        domain.DistanceKm(position, s.reference.Coordinate),
		SupplierSearchURL: supplierSearchURL(itemName),
	}, nil
}

func supplierSearchURL(itemName string) string {
	query := url.QueryEscape(strings.TrimSpace(itemName) + " suppliers near Pimpri Chinchwad")
	return fmt.Sprintf("https://www.google.com/maps/search/%s", query)
}
