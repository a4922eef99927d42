// Package main runs the parcel service without a database using in-memory
// repositories, seeded with demo data. All data is lost when the server
// stops. For production use cmd/parcelsvc with PostgreSQL.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tendant/chi-demo/app"
	"github.com/tendant/simple-parcel/pkg/auth"
	"github.com/tendant/simple-parcel/pkg/docs"
	"github.com/tendant/simple-parcel/pkg/parcel"
	"github.com/tendant/simple-parcel/pkg/user"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting in-memory parcel service (no database required)")

	userRepo := user.NewInMemoryUserRepository()
	parcelRepo := parcel.NewInMemoryParcelRepository()
	seedInitialData(userRepo, parcelRepo)

	parcelService := parcel.NewParcelService(parcelRepo)
	parcelHandle := parcel.NewHandle(parcelService)

	docsHandle, err := docs.NewHandler()
	if err != nil {
		slog.Error("Failed loading openapi document", "err", err)
		os.Exit(-1)
	}

	server := app.NewApp(app.WithPort(4000))
	app.RegisterHealthzRoutes(server.R)
	docsHandle.RegisterRoutes(server.R)

	server.R.Group(func(r chi.Router) {
		r.Use(auth.Auth(userRepo))
		r.Use(auth.RequireAuth)
		parcelHandle.RegisterRoutes(r)
	})

	slog.Info("Demo credentials", "customer", "Authorization: Bearer 1", "driver", "Authorization: Bearer 2", "admin", "Authorization: Bearer 3")
	server.Run()
}

func seedInitialData(userRepo *user.InMemoryUserRepository, parcelRepo *parcel.InMemoryParcelRepository) {
	ctx := context.Background()

	users := []user.CreateUserParams{
		{Login: "alice@example.com", Password: hashPassword("Alice"), Role: user.RoleUser},
		{Login: "driver@example.com", Password: hashPassword("Driver"), Role: user.RoleDriver},
		{Login: "admin@example.com", Password: hashPassword("Admin"), Role: user.RoleAdmin},
	}
	for _, params := range users {
		u, err := userRepo.CreateUser(ctx, params)
		if err != nil {
			slog.Error("Failed seeding user", "login", params.Login, "err", err)
			os.Exit(-1)
		}
		slog.Info("Seeded user", "id", u.ID, "login", u.Login, "role", u.Role.String())
	}

	now := time.Now()
	neighbour := "Neighbour"
	parcels := []parcel.CreateParcelParams{
		{Status: parcel.StatusNew, Sender: "Address #1", Receipient: "Address #2"},
		{Status: parcel.StatusScheduled, Sender: "Address #3", Receipient: "Address #4", Schedule: &now},
		{Status: parcel.StatusScheduled, Sender: "Address #3", Receipient: "Address #4", Schedule: &now, DropoffPerms: &neighbour},
		{Status: parcel.StatusInDelivery, Sender: "Address #3", Receipient: "Address #4", Schedule: &now},
	}
	for _, params := range parcels {
		p, err := parcelRepo.CreateParcel(ctx, params)
		if err != nil {
			slog.Error("Failed seeding parcel", "err", err)
			os.Exit(-1)
		}
		slog.Info("Seeded parcel", "id", p.ID, "status", p.Status)
	}
}

func hashPassword(password string) []byte {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("Failed hashing password", "err", err)
		os.Exit(-1)
	}
	return hashed
}
