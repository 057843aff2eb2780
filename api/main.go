package main

import (
	"eventboard/data/repository"
	"log/slog"
	"os"
)

type application struct {
	Config config
	Logger *slog.Logger
	Repo   repository.DBRepo
}

func main() {
	app := &application{
		Config: loadConfig(),
		Logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	db, err := app.ConnectToDB()
	if err != nil {
		app.Logger.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := &repository.SqlRepo{DB: db, DefaultLimit: app.Config.DefaultQueryLimit}
	app.Repo = repo

	if err = app.Repo.RunMigrations(app.Config.DBName); err != nil {
		app.Logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// The error classifier trusts constraint names; refuse to serve against a
	// schema that doesn't carry them.
	if err = app.Repo.VerifyConstraintMap(); err != nil {
		app.Logger.Error("constraint map validation failed", "error", err)
		os.Exit(1)
	}

	r := app.routes()
	app.Logger.Info("starting server", "port", app.Config.ServerPort)
	if err := r.Run(":" + app.Config.ServerPort); err != nil {
		app.Logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
