// Command seed populates the parcel database with demo fixtures: three
// users (customer, driver, admin) and a handful of parcels.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	dbutils "github.com/tendant/db-utils/db"
	"github.com/tendant/simple-parcel/pkg/config"
	"github.com/tendant/simple-parcel/pkg/parcel"
	"github.com/tendant/simple-parcel/pkg/parcel/parceldb"
	"github.com/tendant/simple-parcel/pkg/user"
	"github.com/tendant/simple-parcel/pkg/user/userdb"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DbConfig config.DatabaseConfig
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	pool, err := dbutils.NewDbPool(context.Background(), cfg.DbConfig.ToDbConfig())
	if err != nil {
		slog.Error("Failed creating dbpool", "db", cfg.DbConfig.Database, "host", cfg.DbConfig.Host, "port", cfg.DbConfig.Port, "user", cfg.DbConfig.User)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	userRepo := user.NewPostgresUserRepository(userdb.New(pool))
	parcelRepo := parcel.NewPostgresParcelRepository(parceldb.New(pool))

	users := []user.CreateUserParams{
		{Login: "alice@example.com", Password: hashPassword("Alice"), Role: user.RoleUser},
		{Login: "driver@example.com", Password: hashPassword("Driver"), Role: user.RoleDriver},
		{Login: "admin@example.com", Password: hashPassword("Admin"), Role: user.RoleAdmin},
	}
	for _, params := range users {
		u, err := userRepo.CreateUser(ctx, params)
		if err != nil {
			slog.Error("Failed creating user", "login", params.Login, "err", err)
			os.Exit(1)
		}
		slog.Info("Created user", "id", u.ID, "login", u.Login, "role", u.Role.String())
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
			slog.Error("Failed creating parcel", "err", err)
			os.Exit(1)
		}
		slog.Info("Created parcel", "id", p.ID, "status", p.Status)
	}

	slog.Info("Seed data created successfully")
}

func hashPassword(password string) []byte {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("Failed hashing password", "err", err)
		os.Exit(1)
	}
	return hashed
}
