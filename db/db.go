package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"bankist/config"
	"bankist/logger"

	_ "github.com/lib/pq"
)

const connectTimeout = 5 * time.Second

// DSN builds a lib/pq connection URL for the account store. The password is
// omitted when withPassword is false so the result can be logged.
func DSN(cfg config.Config, withPassword bool) string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     cfg.Database.Host + ":" + cfg.Database.Port,
		Path:     "/" + cfg.Database.Name,
		RawQuery: "sslmode=disable",
	}
	switch {
	case withPassword && cfg.Database.Password != "":
		u.User = url.UserPassword(cfg.Database.User, cfg.Database.Password)
	case cfg.Database.User != "":
		u.User = url.User(cfg.Database.User)
	}
	return u.String()
}

// Connect opens the PostgreSQL pool described by config.AppConfig and pings it.
func Connect() (*sql.DB, error) {
	cfg := config.AppConfig
	logger.Log.WithField("connection", DSN(cfg, false)).Info("Connecting to the account database")

	database, err := sql.Open("postgres", DSN(cfg, true))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	database.SetMaxOpenConns(10)
	database.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		database.Close()
		logger.Log.WithError(err).Error("Account database is unreachable")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Log.Info("Account database connected")
	return database, nil
}
