package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/tendant/simple-parcel/pkg/user/userdb"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// CreateUserParams represents parameters for creating a user
type CreateUserParams struct {
	Login    string
	Password []byte
	Role     Role
}

// UserRepository defines the interface for user store operations
type UserRepository interface {
	GetUser(ctx context.Context, id int64) (User, error)
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
}

// PostgresUserRepository implements UserRepository using PostgreSQL
type PostgresUserRepository struct {
	queries *userdb.Queries
}

// NewPostgresUserRepository creates a new PostgreSQL-based user repository
func NewPostgresUserRepository(queries *userdb.Queries) *PostgresUserRepository {
	return &PostgresUserRepository{
		queries: queries,
	}
}

// GetUser retrieves a user by ID
func (r *PostgresUserRepository) GetUser(ctx context.Context, id int64) (User, error) {
	dbUser, err := r.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return toUser(dbUser), nil
}

// CreateUser creates a new user
func (r *PostgresUserRepository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	dbUser, err := r.queries.CreateUser(ctx, userdb.CreateUserParams{
		Login:    pgtype.Text{String: params.Login, Valid: params.Login != ""},
		Password: params.Password,
		Role:     int32(params.Role),
	})
	if err != nil {
		return User{}, err
	}
	return toUser(dbUser), nil
}

func toUser(dbUser userdb.User) User {
	u := User{
		ID:       dbUser.ID,
		Role:     Role(dbUser.Role),
		Password: dbUser.Password,
	}
	if dbUser.Login.Valid {
		u.Login = dbUser.Login.String
	}
	return u
}
