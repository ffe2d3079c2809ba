package kanban

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// NewColumnSentinel is the "uncategorized" target of a card move.
const NewColumnSentinel = "new"

// CardIDs is an ordered list of card ids stored as a JSON array.
type CardIDs []int64

// Value stores the list as JSON text so it round-trips through both MySQL
// JSON columns and SQLite TEXT.
func (c CardIDs) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]int64(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *CardIDs) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = CardIDs{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("kanban: cannot scan %T into CardIDs", src)
	}
	if len(raw) == 0 {
		*c = CardIDs{}
		return nil
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return fmt.Errorf("kanban: decode card_ids: %w", err)
	}
	*c = ids
	return nil
}

// Contains reports whether id is in the list.
func (c CardIDs) Contains(id int64) bool {
	return c.IndexOf(id) >= 0
}

// IndexOf is the position of id, or -1.
func (c CardIDs) IndexOf(id int64) int {
	for i, v := range c {
		if v == id {
			return i
		}
	}
	return -1
}

// Without returns a new list with every occurrence of id removed,
// preserving the order of the rest.
func (c CardIDs) Without(id int64) CardIDs {
	out := make(CardIDs, 0, len(c))
	for _, v := range c {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// InsertAt returns a new list with id placed at pos. pos is clamped to
// [0, len(c)]; later elements shift right.
func (c CardIDs) InsertAt(pos int, id int64) CardIDs {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c) {
		pos = len(c)
	}
	out := make(CardIDs, 0, len(c)+1)
	out = append(out, c[:pos]...)
	out = append(out, id)
	out = append(out, c[pos:]...)
	return out
}

// Table: kanban_columns
type Column struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;size:191;not null" json:"title"`
	ColumnOrder int       `gorm:"column:column_order;not null;default:0;index" json:"column_order"`
	CardIDs     CardIDs   `gorm:"column:card_ids;type:json;not null" json:"card_ids"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Column) TableName() string { return "kanban_columns" }
