package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fleethr/internal/config"
	"fleethr/internal/domain/auth"
)

// Seed creates the bootstrap admin account if it does not exist yet. It is
// a no-op unless RUN_SEED is enabled with a mobile and password configured.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if !cfg.RunSeed || cfg.SeedAdminMobile == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var exists bool
	err := pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM employees WHERE mobile = $1)", cfg.SeedAdminMobile).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO employees (fhr_id, full_name, mobile, password_hash, role, status, is_account_activated, is_approved, is_profile_completed)
    VALUES ('ADMIN', 'Administrator', $1, $2, $3, 'Active', true, true, true)
  `, cfg.SeedAdminMobile, hash, auth.RoleAdmin)
	return err
}
