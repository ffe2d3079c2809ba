package columnmock

import (
	"context"

	domain "bridge-lending-backend/internal/domain/kanban"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset functions behave like an empty board.
type Repo struct {
	CreateFn      func(ctx context.Context, c *domain.Column) error
	ListFn        func(ctx context.Context) ([]domain.Column, error)
	GetByIDFn     func(ctx context.Context, id int64) (*domain.Column, error)
	DeleteFn      func(ctx context.Context, id int64) error
	MaxOrderFn    func(ctx context.Context) (int, error)
	LockForMoveFn func(ctx context.Context, cardID, targetID int64) ([]domain.Column, error)
	SaveCardsFn   func(ctx context.Context, id int64, cards domain.CardIDs) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, c *domain.Column) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Column, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Column, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return domain.ErrNotFound
}

func (m *Repo) MaxOrder(ctx context.Context) (int, error) {
	if m.MaxOrderFn != nil {
		return m.MaxOrderFn(ctx)
	}
	return 0, nil
}

func (m *Repo) LockForMove(ctx context.Context, cardID, targetID int64) ([]domain.Column, error) {
	if m.LockForMoveFn != nil {
		return m.LockForMoveFn(ctx, cardID, targetID)
	}
	return nil, nil
}

func (m *Repo) SaveCards(ctx context.Context, id int64, cards domain.CardIDs) error {
	if m.SaveCardsFn != nil {
		return m.SaveCardsFn(ctx, id, cards)
	}
	return nil
}
