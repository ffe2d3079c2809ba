package mysql

import (
	"context"
	"errors"
	"strconv"

	"bridge-lending-backend/internal/domain/kanban"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ColumnRepository struct{ db *gorm.DB }

func NewColumnRepository(db *gorm.DB) *ColumnRepository { return &ColumnRepository{db: db} }

func (r *ColumnRepository) Create(ctx context.Context, c *kanban.Column) error {
	if c.CardIDs == nil {
		c.CardIDs = kanban.CardIDs{}
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ColumnRepository) List(ctx context.Context) ([]kanban.Column, error) {
	var out []kanban.Column
	res := r.db.WithContext(ctx).Order("column_order ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *ColumnRepository) GetByID(ctx context.Context, id int64) (*kanban.Column, error) {
	var out kanban.Column
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, kanban.ErrNotFound
	}
	return &out, res.Error
}

func (r *ColumnRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&kanban.Column{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return kanban.ErrNotFound
	}
	return nil
}

func (r *ColumnRepository) MaxOrder(ctx context.Context) (int, error) {
	var max int
	row := r.db.WithContext(ctx).Model(&kanban.Column{}).Select("COALESCE(MAX(column_order), 0)").Row()
	if err := row.Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func (r *ColumnRepository) LockForMove(ctx context.Context, cardID, targetID int64) ([]kanban.Column, error) {
	cond, arg := r.containsCard(cardID)
	var out []kanban.Column
	// ordered by id so concurrent moves take row locks in the same order
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? OR "+cond, targetID, arg).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *ColumnRepository) SaveCards(ctx context.Context, id int64, cards kanban.CardIDs) error {
	if cards == nil {
		cards = kanban.CardIDs{}
	}
	return r.db.WithContext(ctx).
		Model(&kanban.Column{}).
		Where("id = ?", id).
		Update("card_ids", cards).Error
}

// containsCard is the JSON membership predicate over card_ids for the
// connected dialect.
func (r *ColumnRepository) containsCard(cardID int64) (string, any) {
	switch r.db.Dialector.Name() {
	case "sqlite":
		return "EXISTS (SELECT 1 FROM json_each(card_ids) WHERE json_each.value = ?)", cardID
	case "postgres":
		return "card_ids::jsonb @> ?::jsonb", "[" + strconv.FormatInt(cardID, 10) + "]"
	default:
		return "JSON_CONTAINS(card_ids, ?)", strconv.FormatInt(cardID, 10)
	}
}
