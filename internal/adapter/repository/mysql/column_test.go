package mysql

import (
	"context"
	"errors"
	"testing"

	"bridge-lending-backend/internal/domain/kanban"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the columns table.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every pooled connection would otherwise get its own empty :memory: db
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(&kanban.Column{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedColumn(t *testing.T, db *gorm.DB, id int64, title string, order int, cards ...int64) {
	t.Helper()
	c := &kanban.Column{ID: id, Title: title, ColumnOrder: order, CardIDs: kanban.CardIDs(cards)}
	if err := NewColumnRepository(db).Create(context.Background(), c); err != nil {
		t.Fatalf("seed column %d: %v", id, err)
	}
}

func TestCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewColumnRepository(db)
	ctx := context.Background()

	c := &kanban.Column{Title: "Intake", ColumnOrder: 1}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Intake" || len(got.CardIDs) != 0 {
		t.Errorf("unexpected column: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewColumnRepository(db)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, kanban.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrderedAndMaxOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewColumnRepository(db)
	ctx := context.Background()

	if n, err := repo.MaxOrder(ctx); err != nil || n != 0 {
		t.Fatalf("MaxOrder on empty table = %d, %v", n, err)
	}

	seedColumn(t, db, 1, "Funded", 3)
	seedColumn(t, db, 2, "Intake", 1)
	seedColumn(t, db, 3, "Underwriting", 2)

	cols, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Intake", "Underwriting", "Funded"}
	for i, c := range cols {
		if c.Title != want[i] {
			t.Fatalf("List order: got %q at %d, want %q", c.Title, i, want[i])
		}
	}
	if n, err := repo.MaxOrder(ctx); err != nil || n != 3 {
		t.Fatalf("MaxOrder = %d, %v; want 3", n, err)
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewColumnRepository(db)
	ctx := context.Background()
	seedColumn(t, db, 9, "Dead", 1, 1, 2)

	if err := repo.Delete(ctx, 9); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, 9); !errors.Is(err, kanban.ErrNotFound) {
		t.Fatalf("expected column gone, got %v", err)
	}
	if err := repo.Delete(ctx, 9); !errors.Is(err, kanban.ErrNotFound) {
		t.Fatalf("second Delete: want ErrNotFound, got %v", err)
	}
}

func TestLockForMove_FindsHoldersAndTarget(t *testing.T) {
	db := openTestDB(t)
	repo := NewColumnRepository(db)
	ctx := context.Background()
	seedColumn(t, db, 5, "Intake", 1, 42, 10)
	seedColumn(t, db, 6, "Processing", 2, 3)
	seedColumn(t, db, 7, "Closing", 3, 11, 12)

	cols, err := repo.LockForMove(ctx, 42, 7)
	if err != nil {
		t.Fatalf("LockForMove: %v", err)
	}
	if len(cols) != 2 || cols[0].ID != 5 || cols[1].ID != 7 {
		t.Fatalf("locked set = %+v, want columns 5 and 7", cols)
	}

	// sentinel target: only the holder
	cols, err = repo.LockForMove(ctx, 42, 0)
	if err != nil {
		t.Fatalf("LockForMove sentinel: %v", err)
	}
	if len(cols) != 1 || cols[0].ID != 5 {
		t.Fatalf("locked set = %+v, want column 5", cols)
	}

	// unassigned card, missing target
	cols, err = repo.LockForMove(ctx, 99, 123)
	if err != nil || len(cols) != 0 {
		t.Fatalf("expected empty set, got %+v, %v", cols, err)
	}
}

func TestSaveCards(t *testing.T) {
	db := openTestDB(t)
	repo := NewColumnRepository(db)
	ctx := context.Background()
	seedColumn(t, db, 7, "Closing", 1, 10, 11)

	if err := repo.SaveCards(ctx, 7, kanban.CardIDs{42, 10, 11}); err != nil {
		t.Fatalf("SaveCards: %v", err)
	}
	got, err := repo.GetByID(ctx, 7)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.CardIDs) != 3 || got.CardIDs[0] != 42 {
		t.Fatalf("cards = %v, want [42 10 11]", got.CardIDs)
	}

	if err := repo.SaveCards(ctx, 7, nil); err != nil {
		t.Fatalf("SaveCards nil: %v", err)
	}
	got, _ = repo.GetByID(ctx, 7)
	if len(got.CardIDs) != 0 {
		t.Fatalf("cards = %v, want empty", got.CardIDs)
	}
}
