package mysql

import (
	"context"
	"errors"
	"testing"

	"bridge-lending-backend/internal/domain/kanban"
	"bridge-lending-backend/internal/domain/uow"
)

// ----------------------------- Tests -----------------------------

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewColumnRepository(db)

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		c := &kanban.Column{Title: "Intake", ColumnOrder: 1}
		if err := r.Columns.Create(ctx, c); err != nil {
			return err
		}
		if c.ID == 0 {
			t.Fatalf("column auto ID not set")
		}
		return r.Columns.SaveCards(ctx, c.ID, kanban.CardIDs{1, 2})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	cols, err := repo.List(ctx)
	if err != nil || len(cols) != 1 || len(cols[0].CardIDs) != 2 {
		t.Fatalf("column not visible after commit: %+v, %v", cols, err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewColumnRepository(db)
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Columns.Create(ctx, &kanban.Column{ID: 3, Title: "Temp"}); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := repo.GetByID(ctx, 3); !errors.Is(err, kanban.ErrNotFound) {
		t.Fatalf("expected column not found after rollback, got %v", err)
	}
}

func TestGormUoW_WithinMoveTx_PassesLockedSet(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedColumn(t, db, 5, "Intake", 1, 42, 10)
	seedColumn(t, db, 7, "Closing", 2, 10, 11)

	guow := NewGormUoW(db)
	repo := NewColumnRepository(db)

	err := guow.WithinMoveTx(ctx, 42, 7, func(r uow.Repos, locked []kanban.Column) error {
		if len(locked) != 2 || locked[0].ID != 5 || locked[1].ID != 7 {
			t.Fatalf("unexpected locked set: %+v", locked)
		}
		if err := r.Columns.SaveCards(ctx, 5, locked[0].CardIDs.Without(42)); err != nil {
			return err
		}
		return r.Columns.SaveCards(ctx, 7, locked[1].CardIDs.InsertAt(0, 42))
	})
	if err != nil {
		t.Fatalf("WithinMoveTx commit err: %v", err)
	}

	got, _ := repo.GetByID(ctx, 7)
	if len(got.CardIDs) != 3 || got.CardIDs[0] != 42 {
		t.Fatalf("target cards = %v", got.CardIDs)
	}
}

func TestGormUoW_WithinMoveTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedColumn(t, db, 5, "Intake", 1, 42, 10)

	guow := NewGormUoW(db)
	repo := NewColumnRepository(db)
	sentinel := errors.New("stop")

	err := guow.WithinMoveTx(ctx, 42, 0, func(r uow.Repos, locked []kanban.Column) error {
		if err := r.Columns.SaveCards(ctx, 5, kanban.CardIDs{10}); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel, got %v", err)
	}

	got, _ := repo.GetByID(ctx, 5)
	if len(got.CardIDs) != 2 {
		t.Fatalf("expected cards unchanged after rollback, got %v", got.CardIDs)
	}
}
