package parcel

import (
	"context"
	"errors"
	"fmt"
)

// ParcelService provides point reads and partial updates of parcels
type ParcelService struct {
	parcelRepo ParcelRepository
}

// NewParcelService creates a new parcel service
func NewParcelService(parcelRepo ParcelRepository) *ParcelService {
	return &ParcelService{
		parcelRepo: parcelRepo,
	}
}

// GetByID retrieves a parcel by ID
func (s *ParcelService) GetByID(ctx context.Context, id int64) (Parcel, error) {
	p, err := s.parcelRepo.GetParcel(ctx, id)
	if err != nil {
		if errors.Is(err, ErrParcelNotFound) {
			return Parcel{}, NotFoundError{ID: id}
		}
		return Parcel{}, fmt.Errorf("failed to get parcel: %w", err)
	}
	return p, nil
}

// Update applies a validated field set to the parcel with the given id and
// returns the full post-update record. An empty field set is still applied:
// a no-op update is valid and returns the current record unchanged.
func (s *ParcelService) Update(ctx context.Context, id int64, fields UpdateFields) (Parcel, error) {
	p, err := s.parcelRepo.UpdateParcel(ctx, id, fields)
	if err != nil {
		if errors.Is(err, ErrParcelNotFound) {
			return Parcel{}, NotFoundError{ID: id}
		}
		return Parcel{}, fmt.Errorf("failed to update parcel: %w", err)
	}
	return p, nil
}
