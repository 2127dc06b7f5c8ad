package payout

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fleethr/internal/db"
)

func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(context.Background(), pool, "../../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}

func insertEmployee(t *testing.T, pool *pgxpool.Pool) (id, fhrID string) {
	t.Helper()
	nano := time.Now().UnixNano()
	fhrID = fmt.Sprintf("FHR-IT-%d", nano)
	err := pool.QueryRow(context.Background(), `
    INSERT INTO employees (fhr_id, full_name, mobile)
    VALUES ($1, $2, $3)
    RETURNING id
  `, fhrID, "Integration Rider", fmt.Sprintf("8%09d", nano%1_000_000_000)).Scan(&id)
	if err != nil {
		t.Fatalf("insert employee: %v", err)
	}
	return id, fhrID
}

func TestUpsertReportSamePeriodOverwrites(t *testing.T) {
	pool := integrationPool(t)
	store := NewStore(pool)
	employeeID, fhrID := insertEmployee(t, pool)
	ctx := context.Background()

	first := Report{
		EmployeeRef:  employeeID,
		Month:        2,
		Year:         2025,
		ProfileID:    fhrID,
		Name:         "Integration Rider",
		EmployeeName: "Integration Rider",
		WorkingDays:  20,
		NetPayable:   5000,
		Status:       StatusGenerated,
	}
	if err := store.UpsertReport(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := first
	second.WorkingDays = 22
	second.NetPayable = 5600
	if err := store.UpsertReport(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := store.GetReport(ctx, employeeID, 2, 2025)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.WorkingDays != 22 || got.NetPayable != 5600 {
		t.Fatalf("recompute must overwrite the period row: %+v", got)
	}

	all, err := store.ListReports(ctx, employeeID, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one row per (employee, month, year), got %d", len(all))
	}
}
