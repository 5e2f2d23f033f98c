package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tbourn/go-play-history/internal/domain"
)

func TestMostWatched_RankingAndTotals(t *testing.T) {
	db := newPlayRepoDB(t, &domain.PlayEvent{}, &domain.Tombstone{})
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// c1: 3 plays, c2: 2 plays, c3: 1 play.
	seed := []struct {
		id       string
		content  string
		duration float64
	}{
		{"e1", "c1", 10}, {"e2", "c1", 20}, {"e3", "c1", 30},
		{"e4", "c2", 100}, {"e5", "c2", 200},
		{"e6", "c3", 5},
	}
	for i, s := range seed {
		ev := newPlayEvent(s.id, "u1", s.content, base.Add(time.Duration(i)*time.Minute))
		ev.PlaybackDuration = s.duration
		if _, err := InsertPlay(ctx, db, ev); err != nil {
			t.Fatalf("seed InsertPlay: %v", err)
		}
	}

	rows, err := MostWatched(ctx, db, base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("MostWatched: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 ranked contents, got %d", len(rows))
	}
	if rows[0].ContentID != "c1" || rows[0].TotalPlays != 3 || rows[0].TotalDuration != 60 {
		t.Fatalf("unexpected rank 1: %+v", rows[0])
	}
	if rows[1].ContentID != "c2" || rows[1].TotalPlays != 2 || rows[1].TotalDuration != 300 {
		t.Fatalf("unexpected rank 2: %+v", rows[1])
	}
	if rows[2].ContentID != "c3" || rows[2].TotalPlays != 1 {
		t.Fatalf("unexpected rank 3: %+v", rows[2])
	}
}

func TestMostWatched_DurationTiebreak(t *testing.T) {
	db := newPlayRepoDB(t, &domain.PlayEvent{}, &domain.Tombstone{})
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// Equal play counts; c2 has the larger summed duration.
	for i, s := range []struct {
		content  string
		duration float64
	}{
		{"c1", 10}, {"c1", 10},
		{"c2", 50}, {"c2", 50},
	} {
		ev := newPlayEvent(fmt.Sprintf("e%d", i), "u1", s.content, base.Add(time.Duration(i)*time.Minute))
		ev.PlaybackDuration = s.duration
		if _, err := InsertPlay(ctx, db, ev); err != nil {
			t.Fatalf("seed InsertPlay: %v", err)
		}
	}

	rows, err := MostWatched(ctx, db, base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("MostWatched: %v", err)
	}
	if len(rows) != 2 || rows[0].ContentID != "c2" {
		t.Fatalf("expected c2 ranked first on duration tiebreak, got %+v", rows)
	}
}

func TestMostWatched_HalfOpenWindow(t *testing.T) {
	db := newPlayRepoDB(t, &domain.PlayEvent{}, &domain.Tombstone{})
	ctx := context.Background()

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	// before, at-from, inside, at-to (excluded), after.
	cases := []struct {
		id string
		at time.Time
	}{
		{"before", from.Add(-time.Second)},
		{"at-from", from},
		{"inside", from.Add(30 * time.Minute)},
		{"at-to", to},
		{"after", to.Add(time.Second)},
	}
	for _, c := range cases {
		if _, err := InsertPlay(ctx, db, newPlayEvent(c.id, "u1", "c1", c.at)); err != nil {
			t.Fatalf("seed InsertPlay: %v", err)
		}
	}

	rows, err := MostWatched(ctx, db, from, to)
	if err != nil {
		t.Fatalf("MostWatched: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 content, got %d", len(rows))
	}
	// Only at-from and inside qualify.
	if rows[0].TotalPlays != 2 {
		t.Fatalf("expected 2 plays inside [from, to), got %d", rows[0].TotalPlays)
	}
}

func TestMostWatched_EmptyWindow_NotNil(t *testing.T) {
	db := newPlayRepoDB(t, &domain.PlayEvent{}, &domain.Tombstone{})

	from := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	rows, err := MostWatched(context.Background(), db, from, from.Add(time.Hour))
	if err != nil {
		t.Fatalf("MostWatched: %v", err)
	}
	if rows == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
