package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/aurora-studio/site-api/internal/config"
)

const usersDDL = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

const contactsDDL = `
	CREATE TABLE IF NOT EXISTS contacts (
		id SERIAL PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		service_interest VARCHAR(255),
		message TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// Migrate creates both tables if absent and seeds the one admin account.
// Safe to run on every start.
func Migrate(ctx context.Context, db *sqlx.DB, cfg config.Config) error {
	if _, err := db.ExecContext(ctx, usersDDL); err != nil {
		return fmt.Errorf("db: create users table: %w", err)
	}
	if _, err := db.ExecContext(ctx, contactsDDL); err != nil {
		return fmt.Errorf("db: create contacts table: %w", err)
	}

	return seedAdmin(ctx, db, cfg)
}

func seedAdmin(ctx context.Context, db *sqlx.DB, cfg config.Config) error {
	var one int
	err := db.QueryRowxContext(ctx,
		`SELECT 1 FROM users WHERE email=$1 LIMIT 1`, cfg.AdminEmail).Scan(&one)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("db: check admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("db: hash admin password: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (full_name, email, password, role)
		VALUES ($1, $2, $3, $4)
	`, "Admin User", cfg.AdminEmail, string(hash), "admin")
	if err != nil {
		return fmt.Errorf("db: seed admin account: %w", err)
	}
	return nil
}
