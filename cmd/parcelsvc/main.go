package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	"github.com/tendant/simple-parcel/pkg/auth"
	"github.com/tendant/simple-parcel/pkg/config"
	"github.com/tendant/simple-parcel/pkg/docs"
	"github.com/tendant/simple-parcel/pkg/parcel"
	"github.com/tendant/simple-parcel/pkg/parcel/parceldb"
	"github.com/tendant/simple-parcel/pkg/user"
	"github.com/tendant/simple-parcel/pkg/user/userdb"
)

type Config struct {
	DbConfig  config.DatabaseConfig
	AppConfig app.AppConfig
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	server := app.DefaultApp()
	app.RegisterHealthzRoutes(server.R)

	dbURL := cfg.DbConfig.ToDatabaseURL()
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", cfg.DbConfig.Database, "host", cfg.DbConfig.Host, "port", cfg.DbConfig.Port, "user", cfg.DbConfig.User)
		os.Exit(-1)
	}

	userRepo := user.NewPostgresUserRepository(userdb.New(pool))
	parcelRepo := parcel.NewPostgresParcelRepository(parceldb.New(pool))
	parcelService := parcel.NewParcelService(parcelRepo)
	parcelHandle := parcel.NewHandle(parcelService)

	docsHandle, err := docs.NewHandler()
	if err != nil {
		slog.Error("Failed loading openapi document", "err", err)
		os.Exit(-1)
	}
	docsHandle.RegisterRoutes(server.R)

	server.R.Group(func(r chi.Router) {
		r.Use(auth.Auth(userRepo))
		r.Use(auth.RequireAuth)
		parcelHandle.RegisterRoutes(r)
	})

	server.Run()
}
