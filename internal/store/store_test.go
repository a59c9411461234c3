package store

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jsalter/cmi5quest/internal/player"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_Pragmas(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"journal_mode", "memory"},
		{"foreign_keys", "1"},
	}
	for _, tt := range tests {
		var got string
		if err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_CreatesSchema(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"save_data", "statements"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	s.Close()
}

func TestSaveRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).SaveRepo()

	p := player.New("HERO", player.ClassDeveloper)
	p.AddXP(120)
	p.RecordLesson("w1_lesson1")
	p.AddStars(3)

	if err := repo.SavePlayer(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadPlayer(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "HERO" || got.Class != player.ClassDeveloper {
		t.Errorf("got %s/%s, want HERO/developer", got.Name, got.Class)
	}
	if got.Level != 2 || got.XP != 20 {
		t.Errorf("got level=%d xp=%d, want 2/20", got.Level, got.XP)
	}
	if !got.LessonCompleted("w1_lesson1") {
		t.Error("lesson completion lost in round trip")
	}
	if got.Stars != 3 {
		t.Errorf("got %d stars, want 3", got.Stars)
	}
}

func TestSaveRepo_Overwrites(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).SaveRepo()

	p := player.New("FIRST", player.ClassDesigner)
	if err := repo.SavePlayer(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	p.Name = "SECOND"
	if err := repo.SavePlayer(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.LoadPlayer(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "SECOND" {
		t.Errorf("got name %q, want SECOND", got.Name)
	}
}

func TestSaveRepo_NoSave(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).SaveRepo()

	if _, err := repo.LoadPlayer(ctx); !errors.Is(err, ErrNoSave) {
		t.Errorf("LoadPlayer: got %v, want ErrNoSave", err)
	}
	if _, err := repo.SavedAt(ctx); !errors.Is(err, ErrNoSave) {
		t.Errorf("SavedAt: got %v, want ErrNoSave", err)
	}
}

func TestSaveRepo_Reset(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).SaveRepo()

	if err := repo.SavePlayer(ctx, player.New("HERO", player.ClassAdmin)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := repo.LoadPlayer(ctx); !errors.Is(err, ErrNoSave) {
		t.Errorf("got %v after reset, want ErrNoSave", err)
	}
}

func TestStatementRepo_AppendAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).StatementRepo()

	verbs := []string{"initialized", "progressed", "completed"}
	for _, v := range verbs {
		rec := &StatementRecord{
			StatementID: uuid.NewString(),
			Verb:        v,
			Body:        json.RawMessage(`{"verb":"` + v + `"}`),
		}
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append %s: %v", v, err)
		}
		if rec.ID == 0 {
			t.Errorf("append %s: id not backfilled", v)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d records, want 2", len(recent))
	}
	// Most recent first.
	if recent[0].Verb != "completed" || recent[1].Verb != "progressed" {
		t.Errorf("got order %s, %s; want completed, progressed", recent[0].Verb, recent[1].Verb)
	}
}

func TestStatementRepo_Count(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).StatementRepo()

	id := uuid.NewString()
	if err := repo.Append(ctx, &StatementRecord{StatementID: id, Verb: "initialized", Body: json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, &StatementRecord{StatementID: uuid.NewString(), Verb: "terminated", Body: json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.MarkDelivered(ctx, id); err != nil {
		t.Fatalf("mark delivered: %v", err)
	}

	total, delivered, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 || delivered != 1 {
		t.Errorf("got total=%d delivered=%d, want 2/1", total, delivered)
	}
}

func TestStatementRepo_DuplicateStatementID(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).StatementRepo()

	id := uuid.NewString()
	rec := &StatementRecord{StatementID: id, Verb: "initialized", Body: json.RawMessage(`{}`)}
	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	dup := &StatementRecord{StatementID: id, Verb: "initialized", Body: json.RawMessage(`{}`)}
	if err := repo.Append(ctx, dup); err == nil {
		t.Error("expected error on duplicate statement id")
	}
}

func TestLoad_FailsSoftOnCorruptSave(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	_, err := s.db.ExecContext(ctx, `INSERT INTO save_data (id, data, updated_at) VALUES (1, 'not json', CURRENT_TIMESTAMP)`)
	if err != nil {
		t.Fatal(err)
	}

	st, ok := player.Load(ctx, s.SaveRepo())
	if ok || st != nil {
		t.Errorf("Load on corrupt save = (%v, %v), want (nil, false)", st, ok)
	}
}

func TestLoad_AbsentSave(t *testing.T) {
	st, ok := player.Load(context.Background(), openTestStore(t).SaveRepo())
	if ok || st != nil {
		t.Errorf("Load with no save = (%v, %v), want (nil, false)", st, ok)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).SaveRepo()

	saved := player.New("Quill", player.ClassAdmin)
	saved.AddStars(3)
	if err := repo.SavePlayer(ctx, saved); err != nil {
		t.Fatal(err)
	}

	got, ok := player.Load(ctx, repo)
	if !ok {
		t.Fatal("Load = false after a save")
	}
	if got.Name != "Quill" || got.Stars != 3 {
		t.Errorf("loaded %s/%d stars, want Quill/3", got.Name, got.Stars)
	}
}

func TestStatementRepo_VerbCounts(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).StatementRepo()

	for _, v := range []string{"progressed", "progressed", "answered"} {
		rec := &StatementRecord{StatementID: uuid.NewString(), Verb: v, Body: json.RawMessage(`{}`)}
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	counts, err := repo.VerbCounts(ctx)
	if err != nil {
		t.Fatalf("verb counts: %v", err)
	}
	if counts["progressed"] != 2 || counts["answered"] != 1 {
		t.Errorf("got %v, want progressed=2 answered=1", counts)
	}
}
