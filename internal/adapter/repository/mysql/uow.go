package mysql

import (
	"bridge-lending-backend/internal/domain/kanban"
	"bridge-lending-backend/internal/domain/uow"
	"context"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{Columns: &ColumnRepository{db: tx}})
	})
}

// WithinMoveTx locks the columns a card move touches before calling fn.
// Any error returned by the lock or by fn rolls the transaction back.
func (u *GormUoW) WithinMoveTx(ctx context.Context, cardID, targetID int64, fn func(r uow.Repos, locked []kanban.Column) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{Columns: &ColumnRepository{db: tx}}
		// lock the move set up-front to prevent races
		locked, err := r.Columns.LockForMove(ctx, cardID, targetID)
		if err != nil {
			return kanban.Wrap(kanban.ErrCodeColumnLookupFailed, "could not lock columns", err)
		}
		return fn(r, locked)
	})
}
