package parcel

import (
	"context"
	"time"
)

// CreateParcelParams represents parameters for creating a parcel
type CreateParcelParams struct {
	Status       Status
	Sender       string
	Receipient   string
	Schedule     *time.Time
	DropoffPerms *string
}

// ParcelRepository defines the interface for parcel store operations.
// UpdateParcel merges only the set fields into the record in a single
// atomic operation and returns the full post-update record; it returns
// ErrParcelNotFound when no record matches the id, with no partial write.
type ParcelRepository interface {
	GetParcel(ctx context.Context, id int64) (Parcel, error)
	UpdateParcel(ctx context.Context, id int64, fields UpdateFields) (Parcel, error)
	CreateParcel(ctx context.Context, params CreateParcelParams) (Parcel, error)
}
