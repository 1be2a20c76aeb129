// Package tracking provides shipment resolution for the audit core. The
// shipment source is a collaborator: shipments are created elsewhere and are
// read-only here.
package tracking

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

// ErrShipmentNotFound is matched via errors.Is against NotFoundError.
var ErrShipmentNotFound = errors.New("shipment not found")

// NotFoundError reports an unresolved tracking number along with known-good
// identifiers so a caller can recover without consulting docs.
type NotFoundError struct {
	TrackingNumber string
	Examples       []string
}

func (e *NotFoundError) Error() string {
	if len(e.Examples) == 0 {
		return fmt.Sprintf("shipment not found: %s", e.TrackingNumber)
	}
	return fmt.Sprintf("shipment not found: %s. Try: %s", e.TrackingNumber, strings.Join(e.Examples, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrShipmentNotFound
}

// Resolver is the lookup surface the audit core requires.
type Resolver interface {
	// ResolveShipment returns the shipment with the given tracking number,
	// matched exactly but case-insensitively, or a NotFoundError.
	ResolveShipment(trackingNumber string) (types.Shipment, error)
	// ListShipmentsByCourier returns all shipments for a courier code.
	ListShipmentsByCourier(courierCode string) []types.Shipment
}

var fold = cases.Fold()

// MemoryStore is an immutable in-memory shipment source.
type MemoryStore struct {
	shipments []types.Shipment
	byNumber  map[string]int
}

// NewMemoryStore indexes the given shipments by folded tracking number.
func NewMemoryStore(shipments []types.Shipment) *MemoryStore {
	s := &MemoryStore{
		shipments: shipments,
		byNumber:  make(map[string]int, len(shipments)),
	}
	for i, sh := range shipments {
		s.byNumber[fold.String(sh.TrackingNumber)] = i
	}
	return s
}

func (s *MemoryStore) ResolveShipment(trackingNumber string) (types.Shipment, error) {
	key := fold.String(strings.TrimSpace(trackingNumber))
	if i, ok := s.byNumber[key]; ok {
		return s.shipments[i], nil
	}
	return types.Shipment{}, &NotFoundError{
		TrackingNumber: strings.TrimSpace(trackingNumber),
		Examples:       s.TrackingNumbers(),
	}
}

func (s *MemoryStore) ListShipmentsByCourier(courierCode string) []types.Shipment {
	var out []types.Shipment
	for _, sh := range s.shipments {
		if strings.EqualFold(sh.CourierCode, courierCode) {
			out = append(out, sh)
		}
	}
	return out
}

// Search returns shipments whose tracking number contains the query,
// case-insensitively. An empty query returns everything.
func (s *MemoryStore) Search(query string) []types.Shipment {
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return s.All()
	}
	var out []types.Shipment
	for _, sh := range s.shipments {
		if strings.Contains(fold.String(sh.TrackingNumber), q) {
			out = append(out, sh)
		}
	}
	return out
}

// All returns a copy of the shipment list.
func (s *MemoryStore) All() []types.Shipment {
	out := make([]types.Shipment, len(s.shipments))
	copy(out, s.shipments)
	return out
}

// TrackingNumbers lists every known tracking number, in dataset order.
func (s *MemoryStore) TrackingNumbers() []string {
	out := make([]string, 0, len(s.shipments))
	for _, sh := range s.shipments {
		out = append(out, sh.TrackingNumber)
	}
	return out
}
