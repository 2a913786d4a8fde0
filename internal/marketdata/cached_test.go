package marketdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/model"
)

type fakeStore struct {
	series    model.PriceSeries
	fetchedAt time.Time
	getErr    error
	putErr    error

	puts []model.PriceSeries
}

func (s *fakeStore) GetSeries(string, int) (model.PriceSeries, time.Time, error) {
	return s.series, s.fetchedAt, s.getErr
}

func (s *fakeStore) PutSeries(series model.PriceSeries, fetchedAt time.Time) error {
	s.puts = append(s.puts, series)
	return s.putErr
}

type countingProvider struct {
	series model.PriceSeries
	err    error
	calls  int
}

func (p *countingProvider) FetchHistory(_ context.Context, symbol string, _ int) (model.PriceSeries, error) {
	p.calls++
	if p.err != nil {
		return model.PriceSeries{Symbol: symbol}, p.err
	}
	return p.series, nil
}

// TestCachedProvider_FetchHistory tests the store-backed cache boundary.
//
// WHY: Repeated dashboard refreshes must not respend the daily API budget;
// at the same time, stale or synthetic data must never get pinned for a
// full TTL.
func TestCachedProvider_FetchHistory(t *testing.T) {
	now := time.Date(2024, 6, 28, 12, 0, 0, 0, time.UTC)
	liveSeries := model.PriceSeries{
		Symbol: "TEST",
		Points: []model.PricePoint{{Date: Day(now), Price: 100}},
	}

	newCached := func(next Provider, store PriceStore) *CachedProvider {
		p := NewCachedProvider(next, store, time.Hour)
		p.now = func() time.Time { return now }
		return p
	}

	t.Run("serves fresh cached series without fetching", func(t *testing.T) {
		next := &countingProvider{series: liveSeries}
		store := &fakeStore{series: liveSeries, fetchedAt: now.Add(-10 * time.Minute)}
		p := newCached(next, store)

		series, err := p.FetchHistory(context.Background(), "TEST", 100)
		if err != nil {
			t.Fatalf("FetchHistory() returned unexpected error: %v", err)
		}
		if next.calls != 0 {
			t.Errorf("Expected no upstream fetch, got %d", next.calls)
		}
		if series.Empty() {
			t.Error("Expected the cached series")
		}
	})

	t.Run("stale cache fetches and stores", func(t *testing.T) {
		next := &countingProvider{series: liveSeries}
		store := &fakeStore{series: liveSeries, fetchedAt: now.Add(-2 * time.Hour)}
		p := newCached(next, store)

		_, err := p.FetchHistory(context.Background(), "TEST", 100)
		if err != nil {
			t.Fatalf("FetchHistory() returned unexpected error: %v", err)
		}
		if next.calls != 1 {
			t.Errorf("Expected one upstream fetch, got %d", next.calls)
		}
		if len(store.puts) != 1 {
			t.Errorf("Expected the fresh series stored, got %d writes", len(store.puts))
		}
	})

	t.Run("empty cache fetches and stores", func(t *testing.T) {
		next := &countingProvider{series: liveSeries}
		store := &fakeStore{}
		p := newCached(next, store)

		_, err := p.FetchHistory(context.Background(), "TEST", 100)
		if err != nil {
			t.Fatalf("FetchHistory() returned unexpected error: %v", err)
		}
		if next.calls != 1 || len(store.puts) != 1 {
			t.Errorf("Expected fetch and store, got %d fetches and %d writes", next.calls, len(store.puts))
		}
	})

	t.Run("synthetic results are not cached", func(t *testing.T) {
		synthetic := liveSeries
		synthetic.Synthetic = true
		next := &countingProvider{series: synthetic}
		store := &fakeStore{}
		p := newCached(next, store)

		series, err := p.FetchHistory(context.Background(), "TEST", 100)
		if err != nil {
			t.Fatalf("FetchHistory() returned unexpected error: %v", err)
		}
		if !series.Synthetic {
			t.Error("Expected the synthetic series returned")
		}
		if len(store.puts) != 0 {
			t.Errorf("Expected no cache write for synthetic data, got %d", len(store.puts))
		}
	})

	t.Run("empty results are not cached", func(t *testing.T) {
		next := &countingProvider{series: model.PriceSeries{Symbol: "TEST"}}
		store := &fakeStore{}
		p := newCached(next, store)

		_, err := p.FetchHistory(context.Background(), "TEST", 100)
		if err != nil {
			t.Fatalf("FetchHistory() returned unexpected error: %v", err)
		}
		if len(store.puts) != 0 {
			t.Errorf("Expected no cache write for empty series, got %d", len(store.puts))
		}
	})

	t.Run("store read failure falls through to the provider", func(t *testing.T) {
		next := &countingProvider{series: liveSeries}
		store := &fakeStore{getErr: errors.New("locked")}
		p := newCached(next, store)

		series, err := p.FetchHistory(context.Background(), "TEST", 100)
		if err != nil {
			t.Fatalf("FetchHistory() returned unexpected error: %v", err)
		}
		if next.calls != 1 || series.Empty() {
			t.Error("Expected a live fetch despite the read failure")
		}
	})

	t.Run("store write failure does not fail the fetch", func(t *testing.T) {
		next := &countingProvider{series: liveSeries}
		store := &fakeStore{putErr: errors.New("disk full")}
		p := newCached(next, store)

		series, err := p.FetchHistory(context.Background(), "TEST", 100)
		if err != nil {
			t.Fatalf("FetchHistory() returned unexpected error: %v", err)
		}
		if series.Empty() {
			t.Error("Expected the fetched series despite the write failure")
		}
	})

	t.Run("provider error is returned", func(t *testing.T) {
		wantErr := errors.New("feed down")
		next := &countingProvider{err: wantErr}
		p := newCached(next, &fakeStore{})

		_, err := p.FetchHistory(context.Background(), "TEST", 100)
		if !errors.Is(err, wantErr) {
			t.Errorf("Expected the provider error, got %v", err)
		}
	})
}
