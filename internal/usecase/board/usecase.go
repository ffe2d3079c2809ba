package board

import (
	"context"
	"errors"
	"strings"
	"time"

	"bridge-lending-backend/internal/domain/kanban"
	"bridge-lending-backend/internal/domain/uow"
	"bridge-lending-backend/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

type Usecase struct {
	repo kanban.Repository
	uow  uow.UnitOfWork
	log  *zap.Logger
}

// NewUsecase: pass the column repo for reads and a UoW for tx flows.
func NewUsecase(repo kanban.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: repo, uow: tx, log: log}
}

// MoveCard validates in and runs the move transaction.
func (u *Usecase) MoveCard(ctx context.Context, in MoveCardInput) (*MoveResult, error) {
	cmd, err := ParseMove(in)
	if err != nil {
		metrics.CardMoves.WithLabelValues("invalid", string(kanban.CodeOf(err))).Inc()
		return nil, err
	}
	return u.Move(ctx, cmd)
}

// Move relocates cmd.CardID under row locks on every column it touches.
// Either the whole move commits or nothing does.
func (u *Usecase) Move(ctx context.Context, cmd MoveCommand) (*MoveResult, error) {
	start := time.Now()
	action := ActionMoved
	if cmd.Remove {
		action = ActionRemoved
	}

	var res *MoveResult
	err := u.uow.WithinMoveTx(ctx, cmd.CardID, cmd.TargetColumnID, func(r uow.Repos, locked []kanban.Column) error {
		var target *kanban.Column
		var holders []*kanban.Column
		for i := range locked {
			c := &locked[i]
			if !cmd.Remove && c.ID == cmd.TargetColumnID {
				target = c
			}
			if c.CardIDs.Contains(cmd.CardID) {
				holders = append(holders, c)
			}
		}

		if cmd.Remove {
			res = &MoveResult{Action: ActionRemoved}
			for i, c := range holders {
				cards := c.CardIDs.Without(cmd.CardID)
				if err := r.Columns.SaveCards(ctx, c.ID, cards); err != nil {
					return kanban.Wrap(kanban.ErrCodeRemoveCardFailed, "could not remove card from column", err)
				}
				if i == 0 {
					res.OldColumnID = ptr(c.ID)
					res.CardCount = len(cards)
				}
			}
			return nil
		}

		if target == nil {
			return kanban.NewError(kanban.ErrCodeColumnNotFound, "target column does not exist")
		}

		var oldID *int64
		for _, c := range holders {
			if oldID == nil {
				oldID = ptr(c.ID)
			}
			if c.ID == target.ID {
				continue
			}
			if err := r.Columns.SaveCards(ctx, c.ID, c.CardIDs.Without(cmd.CardID)); err != nil {
				return kanban.Wrap(kanban.ErrCodeSourceColumnUpdate, "could not update source column", err)
			}
		}

		cards := target.CardIDs.Without(cmd.CardID).InsertAt(cmd.Position, cmd.CardID)
		if err := r.Columns.SaveCards(ctx, target.ID, cards); err != nil {
			return kanban.Wrap(kanban.ErrCodeTargetColumnUpdate, "could not update target column", err)
		}
		res = &MoveResult{
			Action:      ActionMoved,
			OldColumnID: oldID,
			NewColumnID: ptr(target.ID),
			Position:    ptr(cards.IndexOf(cmd.CardID)),
			CardCount:   len(cards),
		}
		return nil
	})
	metrics.CardMoveDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if kanban.CodeOf(err) == "" {
			err = kanban.Wrap(kanban.ErrCodeCommitFailed, "could not commit card move", err)
		}
		metrics.CardMoves.WithLabelValues(action, string(kanban.CodeOf(err))).Inc()
		u.log.Warn("card move failed",
			zap.Int64("card_id", cmd.CardID),
			zap.Int64("target_column_id", cmd.TargetColumnID),
			zap.Bool("remove", cmd.Remove),
			zap.Error(err))
		return nil, err
	}

	metrics.CardMoves.WithLabelValues(action, "ok").Inc()
	u.log.Info("card moved",
		zap.String("action", res.Action),
		zap.Int64("card_id", cmd.CardID),
		zap.Int64p("old_column_id", res.OldColumnID),
		zap.Int64p("new_column_id", res.NewColumnID),
		zap.Int("card_count", res.CardCount))
	return res, nil
}

func (u *Usecase) AddColumn(ctx context.Context, in AddColumnInput) (*ColumnDTO, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, kanban.NewError(kanban.ErrCodeInvalidTitle, "title is required")
	}

	var col *kanban.Column
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		order := 0
		if in.ColumnOrder != nil {
			order = *in.ColumnOrder
		} else {
			max, err := r.Columns.MaxOrder(ctx)
			if err != nil {
				return err
			}
			order = max + 1
		}
		col = &kanban.Column{Title: title, ColumnOrder: order, CardIDs: kanban.CardIDs{}}
		return r.Columns.Create(ctx, col)
	})
	if err != nil {
		return nil, kanban.Wrap(kanban.ErrCodeColumnCreateFailed, "could not create column", err)
	}
	u.log.Info("column created", zap.Int64("column_id", col.ID), zap.String("title", col.Title))
	dto := toDTO(col)
	return &dto, nil
}

func (u *Usecase) ListColumns(ctx context.Context) ([]ColumnDTO, error) {
	cols, err := u.repo.List(ctx)
	if err != nil {
		return nil, kanban.Wrap(kanban.ErrCodeColumnListFailed, "could not list columns", err)
	}
	out := make([]ColumnDTO, 0, len(cols))
	for i := range cols {
		out = append(out, toDTO(&cols[i]))
	}
	return out, nil
}

// DeleteColumn removes the column row; the cards it held become uncategorized.
func (u *Usecase) DeleteColumn(ctx context.Context, rawID string) error {
	id, err := ParseColumnID(rawID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, kanban.ErrNotFound) {
			return kanban.Wrap(kanban.ErrCodeColumnNotFound, "column does not exist", err)
		}
		return kanban.Wrap(kanban.ErrCodeColumnDeleteFailed, "could not delete column", err)
	}
	u.log.Info("column deleted", zap.Int64("column_id", id))
	return nil
}

func ptr[T any](v T) *T { return &v }
