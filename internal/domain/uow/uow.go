package uow

import (
	"bridge-lending-backend/internal/domain/kanban"
	"context"
)

type Repos struct {
	Columns kanban.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the move set first, then pass it in
	WithinMoveTx(ctx context.Context, cardID, targetID int64, fn func(r Repos, locked []kanban.Column) error) error
}
