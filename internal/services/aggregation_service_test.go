package services

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestAggregationMostWatched_RanksByPlays(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()
	ingest := &IngestService{DB: db}
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// c-hot: 2 plays, c-cold: 1 play.
	for i, content := range []string{"c-hot", "c-hot", "c-cold"} {
		ev := testEvent(fmt.Sprintf("e%d", i), "u1")
		ev.ContentID = content
		ev.PlayedAt = base.Add(time.Duration(i) * time.Minute)
		if res, err := ingest.Submit(ctx, ev); err != nil || res != SubmitAccepted {
			t.Fatalf("seed Submit: res=%v err=%v", res, err)
		}
	}

	rows, err := (&AggregationService{DB: db}).MostWatched(ctx, base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("MostWatched: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(rows))
	}
	if rows[0].ContentID != "c-hot" || rows[0].TotalPlays != 2 {
		t.Fatalf("unexpected rank 1: %+v", rows[0])
	}
	if rows[1].ContentID != "c-cold" || rows[1].TotalPlays != 1 {
		t.Fatalf("unexpected rank 2: %+v", rows[1])
	}
}

func TestAggregationMostWatched_EmptyWindow(t *testing.T) {
	db := newServiceDB(t)

	from := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	rows, err := (&AggregationService{DB: db}).MostWatched(context.Background(), from, from.Add(time.Hour))
	if err != nil {
		t.Fatalf("MostWatched: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", rows)
	}
}
