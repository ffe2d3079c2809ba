package kanban

import "context"

type Repository interface {
	Create(ctx context.Context, c *Column) error
	List(ctx context.Context) ([]Column, error)
	GetByID(ctx context.Context, id int64) (*Column, error)
	Delete(ctx context.Context, id int64) error
	MaxOrder(ctx context.Context) (int, error)

	// LockForMove row-locks, in id order, the target column and every column
	// whose card list contains cardID. targetID 0 locks only the holders.
	LockForMove(ctx context.Context, cardID, targetID int64) ([]Column, error)
	// SaveCards persists the card list of column id.
	SaveCards(ctx context.Context, id int64, cards CardIDs) error
}
