package board

import (
	"time"

	"bridge-lending-backend/internal/domain/kanban"
)

// Move actions reported in MoveResult.
const (
	ActionMoved   = "moved"
	ActionRemoved = "removed"
)

// MoveCardInput is the raw request; ids arrive as strings from forms or JSON.
type MoveCardInput struct {
	CardID         string
	TargetColumnID string
	Position       string
}

// MoveCommand is a validated move. Remove is set for the "new" target.
type MoveCommand struct {
	CardID         int64
	TargetColumnID int64
	Remove         bool
	Position       int
}

type MoveResult struct {
	Action      string `json:"action"`
	OldColumnID *int64 `json:"old_column_id"`
	NewColumnID *int64 `json:"new_column_id"`
	Position    *int   `json:"position,omitempty"`
	CardCount   int    `json:"card_count"`
}

type AddColumnInput struct {
	Title       string `json:"title"`
	ColumnOrder *int   `json:"column_order"`
}

type ColumnDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ColumnOrder int       `json:"column_order"`
	CardIDs     []int64   `json:"card_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDTO(c *kanban.Column) ColumnDTO {
	cards := []int64(c.CardIDs)
	if cards == nil {
		cards = []int64{}
	}
	return ColumnDTO{ID: c.ID, Title: c.Title, ColumnOrder: c.ColumnOrder, CardIDs: cards, CreatedAt: c.CreatedAt}
}
