package parcel

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/tendant/simple-parcel/pkg/parcel/parceldb"
)

// PostgresParcelRepository implements ParcelRepository using PostgreSQL
type PostgresParcelRepository struct {
	queries *parceldb.Queries
}

// NewPostgresParcelRepository creates a new PostgreSQL-based parcel repository
func NewPostgresParcelRepository(queries *parceldb.Queries) *PostgresParcelRepository {
	return &PostgresParcelRepository{
		queries: queries,
	}
}

// GetParcel retrieves a parcel by ID
func (r *PostgresParcelRepository) GetParcel(ctx context.Context, id int64) (Parcel, error) {
	dbParcel, err := r.queries.GetParcel(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Parcel{}, ErrParcelNotFound
		}
		return Parcel{}, err
	}
	return toParcel(dbParcel), nil
}

// UpdateParcel applies the set fields in a single conditional update.
// Unset fields map to NULL parameters, which the statement coalesces away,
// so the merge is atomic at the database.
func (r *PostgresParcelRepository) UpdateParcel(ctx context.Context, id int64, fields UpdateFields) (Parcel, error) {
	params := parceldb.UpdateParcelParams{ID: id}
	if fields.Status != nil {
		params.Status = pgtype.Text{String: string(*fields.Status), Valid: true}
	}
	if fields.Schedule != nil {
		params.Schedule = pgtype.Timestamptz{Time: *fields.Schedule, Valid: true}
	}
	if fields.DropoffPerms != nil {
		params.DropoffPerms = pgtype.Text{String: *fields.DropoffPerms, Valid: true}
	}

	dbParcel, err := r.queries.UpdateParcel(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Parcel{}, ErrParcelNotFound
		}
		return Parcel{}, err
	}
	return toParcel(dbParcel), nil
}

// CreateParcel creates a new parcel
func (r *PostgresParcelRepository) CreateParcel(ctx context.Context, params CreateParcelParams) (Parcel, error) {
	dbParams := parceldb.CreateParcelParams{
		Status:     string(params.Status),
		Sender:     params.Sender,
		Receipient: params.Receipient,
	}
	if params.Schedule != nil {
		dbParams.Schedule = pgtype.Timestamptz{Time: *params.Schedule, Valid: true}
	}
	if params.DropoffPerms != nil {
		dbParams.DropoffPerms = pgtype.Text{String: *params.DropoffPerms, Valid: true}
	}

	dbParcel, err := r.queries.CreateParcel(ctx, dbParams)
	if err != nil {
		return Parcel{}, err
	}
	return toParcel(dbParcel), nil
}

func toParcel(dbParcel parceldb.Parcel) Parcel {
	p := Parcel{
		ID:         dbParcel.ID,
		Status:     Status(dbParcel.Status),
		Sender:     dbParcel.Sender,
		Receipient: dbParcel.Receipient,
	}
	if dbParcel.Schedule.Valid {
		schedule := dbParcel.Schedule.Time
		p.Schedule = &schedule
	}
	if dbParcel.DropoffPerms.Valid {
		perms := dbParcel.DropoffPerms.String
		p.DropoffPerms = &perms
	}
	return p
}
