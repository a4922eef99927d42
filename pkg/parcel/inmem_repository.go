package parcel

import (
	"context"
	"sync"
)

// InMemoryParcelRepository implements ParcelRepository using in-memory storage
type InMemoryParcelRepository struct {
	mu      sync.RWMutex
	parcels map[int64]Parcel
	nextID  int64
}

// NewInMemoryParcelRepository creates a new in-memory parcel repository
func NewInMemoryParcelRepository() *InMemoryParcelRepository {
	return &InMemoryParcelRepository{
		parcels: make(map[int64]Parcel),
		nextID:  1,
	}
}

// GetParcel retrieves a parcel by ID
func (r *InMemoryParcelRepository) GetParcel(ctx context.Context, id int64) (Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parcels[id]
	if !ok {
		return Parcel{}, ErrParcelNotFound
	}
	return p, nil
}

// UpdateParcel merges the set fields into the parcel under the lock, so
// readers never observe a partial update.
func (r *InMemoryParcelRepository) UpdateParcel(ctx context.Context, id int64, fields UpdateFields) (Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.parcels[id]
	if !ok {
		return Parcel{}, ErrParcelNotFound
	}

	if fields.Status != nil {
		p.Status = *fields.Status
	}
	if fields.Schedule != nil {
		schedule := *fields.Schedule
		p.Schedule = &schedule
	}
	if fields.DropoffPerms != nil {
		perms := *fields.DropoffPerms
		p.DropoffPerms = &perms
	}

	r.parcels[id] = p
	return p, nil
}

// CreateParcel creates a new parcel with the next available ID
func (r *InMemoryParcelRepository) CreateParcel(ctx context.Context, params CreateParcelParams) (Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := Parcel{
		ID:         r.nextID,
		Status:     params.Status,
		Sender:     params.Sender,
		Receipient: params.Receipient,
	}
	if params.Schedule != nil {
		schedule := *params.Schedule
		p.Schedule = &schedule
	}
	if params.DropoffPerms != nil {
		perms := *params.DropoffPerms
		p.DropoffPerms = &perms
	}

	r.parcels[p.ID] = p
	r.nextID++
	return p, nil
}
