package repository_test

import (
	"testing"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/repository"
	"github.com/Lewis310/MyPortfolio/internal/testutil"
)

// TestPriceRepository tests the price_cache store backing the caching
// provider.
//
// WHY: The cache must round-trip series exactly and report staleness
// honestly: a series whose oldest row is stale must read as stale even if
// newer rows exist.
func TestPriceRepository(t *testing.T) {
	end := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)
	fetchedAt := time.Date(2024, 6, 28, 12, 0, 0, 0, time.UTC)

	t.Run("round-trips a series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPriceRepository(db)

		want := testutil.MakeSeries("CBA.AX", end, 100, 101.5, 103)
		if err := repo.PutSeries(want, fetchedAt); err != nil {
			t.Fatalf("PutSeries() returned unexpected error: %v", err)
		}

		got, gotFetched, err := repo.GetSeries("CBA.AX", 100)
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}

		if len(got.Points) != 3 {
			t.Fatalf("Expected 3 points, got %d", len(got.Points))
		}
		for i := range want.Points {
			if !got.Points[i].Date.Equal(want.Points[i].Date) || got.Points[i].Price != want.Points[i].Price {
				t.Errorf("Point %d mismatch: got %+v, want %+v", i, got.Points[i], want.Points[i])
			}
		}
		if !gotFetched.Equal(fetchedAt) {
			t.Errorf("Expected fetch time %v, got %v", fetchedAt, gotFetched)
		}
		if got.Synthetic {
			t.Error("Expected a non-synthetic series")
		}
	})

	t.Run("missing symbol reads as empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPriceRepository(db)

		got, gotFetched, err := repo.GetSeries("NONE", 100)
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		if !got.Empty() {
			t.Errorf("Expected empty series, got %d points", len(got.Points))
		}
		if !gotFetched.IsZero() {
			t.Errorf("Expected zero fetch time, got %v", gotFetched)
		}
	})

	t.Run("trims to the requested lookback", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPriceRepository(db)

		if err := repo.PutSeries(testutil.MakeSeries("TEST", end, 1, 2, 3, 4, 5), fetchedAt); err != nil {
			t.Fatalf("PutSeries() returned unexpected error: %v", err)
		}

		got, _, err := repo.GetSeries("TEST", 2)
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		if len(got.Points) != 2 {
			t.Fatalf("Expected 2 points, got %d", len(got.Points))
		}
		if got.Points[0].Price != 4 || got.Points[1].Price != 5 {
			t.Errorf("Expected the most recent points kept, got %v", got.Points)
		}
	})

	t.Run("put replaces the previous series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPriceRepository(db)

		if err := repo.PutSeries(testutil.MakeSeries("TEST", end, 1, 2, 3), fetchedAt); err != nil {
			t.Fatalf("PutSeries() returned unexpected error: %v", err)
		}
		later := fetchedAt.Add(2 * time.Hour)
		if err := repo.PutSeries(testutil.MakeSeries("TEST", end, 10, 20), later); err != nil {
			t.Fatalf("PutSeries() returned unexpected error: %v", err)
		}

		got, gotFetched, err := repo.GetSeries("TEST", 100)
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		if len(got.Points) != 2 {
			t.Fatalf("Expected the replacement series, got %d points", len(got.Points))
		}
		if !gotFetched.Equal(later) {
			t.Errorf("Expected fetch time %v, got %v", later, gotFetched)
		}
	})

	t.Run("symbols are isolated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPriceRepository(db)

		if err := repo.PutSeries(testutil.MakeSeries("AAA", end, 1, 2), fetchedAt); err != nil {
			t.Fatalf("PutSeries() returned unexpected error: %v", err)
		}
		if err := repo.PutSeries(testutil.MakeSeries("BBB", end, 9), fetchedAt); err != nil {
			t.Fatalf("PutSeries() returned unexpected error: %v", err)
		}

		got, _, err := repo.GetSeries("AAA", 100)
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		if len(got.Points) != 2 {
			t.Errorf("Expected 2 AAA points, got %d", len(got.Points))
		}
	})

	t.Run("synthetic flag round-trips", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPriceRepository(db)

		series := testutil.MakeSeries("TEST", end, 1, 2)
		series.Synthetic = true
		if err := repo.PutSeries(series, fetchedAt); err != nil {
			t.Fatalf("PutSeries() returned unexpected error: %v", err)
		}

		got, _, err := repo.GetSeries("TEST", 100)
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		if !got.Synthetic {
			t.Error("Expected the synthetic flag to round-trip")
		}
	})
}
