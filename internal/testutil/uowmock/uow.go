package uowmock

import (
	"context"
	"errors"

	"bridge-lending-backend/internal/domain/kanban"
	"bridge-lending-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinMoveTxFn func(ctx context.Context, cardID, targetID int64, fn func(r uow.Repos, locked []kanban.Column) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinMoveTx(fn func(context.Context, int64, int64, func(uow.Repos, []kanban.Column) error) error) *UoW {
	m.WithinMoveTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Passthrough runs every callback directly against repos, locking through
// repos.Columns.LockForMove the way the gorm implementation does.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinMoveTxFn: func(ctx context.Context, cardID, targetID int64, fn func(r uow.Repos, locked []kanban.Column) error) error {
			locked, err := repos.Columns.LockForMove(ctx, cardID, targetID)
			if err != nil {
				return kanban.Wrap(kanban.ErrCodeColumnLookupFailed, "could not lock columns", err)
			}
			return fn(repos, locked)
		},
	}
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinMoveTx(ctx context.Context, cardID, targetID int64, fn func(r uow.Repos, locked []kanban.Column) error) error {
	if m.WithinMoveTxFn != nil {
		return m.WithinMoveTxFn(ctx, cardID, targetID, fn)
	}
	return errUnimplemented
}
