package deck_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/deck"
	"github.com/vmfarias/readrush/internal/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (deck.Service, uuid.UUID) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}, &deck.Deck{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	u := user.User{ID: uuid.New(), GoogleID: "google-alice", Email: "alice@example.com", Name: "alice"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return deck.NewService(deck.NewRepository(db)), u.ID
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("TrimsName", func(t *testing.T) {
		svc, userID := setupService(t)

		d, err := svc.Create(ctx, userID, deck.CreateDeckDTO{Name: "  Biology  "})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if d.Name != "Biology" {
			t.Errorf("want trimmed name, got %q", d.Name)
		}
	})

	t.Run("RejectsBlankName", func(t *testing.T) {
		svc, userID := setupService(t)

		_, err := svc.Create(ctx, userID, deck.CreateDeckDTO{Name: "   "})
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("want validation error, got: %v", err)
		}
	})

	t.Run("RejectsOversizedName", func(t *testing.T) {
		svc, userID := setupService(t)

		_, err := svc.Create(ctx, userID, deck.CreateDeckDTO{Name: strings.Repeat("x", 101)})
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("want validation error, got: %v", err)
		}
	})
}

func TestGetOwned(t *testing.T) {
	ctx := context.Background()
	svc, userID := setupService(t)

	d, err := svc.Create(ctx, userID, deck.CreateDeckDTO{Name: "Biology"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("Owner", func(t *testing.T) {
		got, err := svc.GetOwned(ctx, d.ID, userID)
		if err != nil {
			t.Fatalf("GetOwned failed: %v", err)
		}
		if got.ID != d.ID {
			t.Errorf("want deck %s, got %s", d.ID, got.ID)
		}
	})

	t.Run("Stranger", func(t *testing.T) {
		_, err := svc.GetOwned(ctx, d.ID, uuid.New())
		if apperr.KindOf(err) != apperr.KindForbidden {
			t.Errorf("want forbidden error, got: %v", err)
		}
	})

	t.Run("MissingDeck", func(t *testing.T) {
		_, err := svc.GetOwned(ctx, uuid.New(), userID)
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Errorf("want not found error, got: %v", err)
		}
	})
}

func TestRenameAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, userID := setupService(t)

	d, err := svc.Create(ctx, userID, deck.CreateDeckDTO{Name: "Biology"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	renamed, err := svc.Rename(ctx, d.ID, userID, deck.RenameDeckDTO{Name: "Cell Biology"})
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed.Name != "Cell Biology" {
		t.Errorf("want renamed deck, got %q", renamed.Name)
	}

	if err := svc.Delete(ctx, d.ID, userID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, d.ID, userID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("want not found after delete, got: %v", err)
	}
}
