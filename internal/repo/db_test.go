package repo

import (
	"context"
	"testing"
	"time"

	"github.com/tbourn/go-play-history/internal/config"
	"github.com/tbourn/go-play-history/internal/domain"
)

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db := newPlayRepoDB(t)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	for _, model := range []any{&domain.PlayEvent{}, &domain.Tombstone{}} {
		if !db.Migrator().HasTable(model) {
			t.Fatalf("expected table for %T after AutoMigrate", model)
		}
	}
}

func TestPingAndClose(t *testing.T) {
	db := newPlayRepoDB(t)

	if err := Ping(context.Background(), db); err != nil {
		t.Fatalf("Ping on open DB: %v", err)
	}

	if err := Close(db); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// A closed pool must fail the ping rather than hang.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := Ping(ctx, db); err == nil {
		t.Fatal("expected Ping error after Close")
	}
}

func TestOpen_ExhaustsRetriesAgainstUnreachableHost(t *testing.T) {
	if testing.Short() {
		t.Skip("dials a dead TCP port")
	}

	cfg := config.DBConfig{
		Host:             "127.0.0.1",
		Port:             1, // nothing listens here
		User:             "u",
		Password:         "p",
		Name:             "d",
		SSLMode:          "disable",
		MaxOpenConns:     1,
		MaxIdleConns:     1,
		ConnectTimeout:   200 * time.Millisecond,
		ConnectRetries:   2,
		ConnectBaseDelay: 10 * time.Millisecond,
	}

	start := time.Now()
	db, err := Open(cfg)
	if err == nil || db != nil {
		t.Fatalf("expected Open to fail, got db=%v err=%v", db, err)
	}
	// Two attempts with one 10ms backoff in between.
	if time.Since(start) > 5*time.Second {
		t.Fatalf("Open retried far longer than configured: %v", time.Since(start))
	}
}
