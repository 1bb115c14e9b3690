package repo

import (
	"testing"

	"awards-board/internal/config"
	"awards-board/internal/model"
)

func TestOpenSqliteMigrates(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:?cache=shared"})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	for _, m := range []interface{}{&model.Admin{}, &model.TournamentRecord{}, &model.PointsEntry{}} {
		if !db.Migrator().HasTable(m) {
			t.Fatalf("expected table for %T", m)
		}
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
