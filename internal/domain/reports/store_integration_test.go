package reports

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

func insertEmployee(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()
	nano := time.Now().UnixNano()
	var id string
	err := pool.QueryRow(context.Background(), `
    INSERT INTO employees (fhr_id, full_name, mobile)
    VALUES ($1, $2, $3)
    RETURNING id
  `, fmt.Sprintf("FHR-IT-%d", nano), "Integration Rider", fmt.Sprintf("9%09d", nano%1_000_000_000)).Scan(&id)
	if err != nil {
		t.Fatalf("insert employee: %v", err)
	}
	return id
}

func TestUpsertReportSameDayOverwrites(t *testing.T) {
	pool := integrationPool(t)
	store := NewStore(pool)
	employeeID := insertEmployee(t, pool)
	ctx := context.Background()

	day := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	first := DailyReport{EmployeeID: employeeID, ReportDate: day, Delivered: 10, Picked: 2, OFD: 12, OFP: 3, HubName: "Hub A"}
	if err := store.UpsertReport(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := first
	second.Delivered = 25
	second.HubName = "Hub B"
	if err := store.UpsertReport(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := store.ListReports(ctx, employeeID, day, day)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected a single row for the day, got %d", len(got))
	}
	if got[0].Delivered != 25 || got[0].HubName != "Hub B" {
		t.Fatalf("re-upload must overwrite: %+v", got[0])
	}
}
