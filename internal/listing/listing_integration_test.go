package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

// Runs only against a real Postgres with a seeded vehicle table, e.g.
// DMS_TEST_DATABASE_URL=postgres://localhost:5432/listing_test go test ./...
func TestListingAgainstPostgres(t *testing.T) {
	dsn := os.Getenv("DMS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("DMS_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer store.Close()

	if _, err := store.AllVehicles(ctx); err != nil {
		t.Fatalf("query vehicles: %v", err)
	}

	srv := httptest.NewServer(Handler(store))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/vehicles")
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
