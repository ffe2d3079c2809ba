package board

import (
	"strconv"
	"strings"

	"bridge-lending-backend/internal/domain/kanban"
)

// ParseMove validates in without touching the database.
func ParseMove(in MoveCardInput) (MoveCommand, error) {
	cardRaw := strings.TrimSpace(in.CardID)
	targetRaw := strings.TrimSpace(in.TargetColumnID)
	if cardRaw == "" || targetRaw == "" {
		return MoveCommand{}, kanban.NewError(kanban.ErrCodeMissingParameters, "card_id and target_column_id are required")
	}

	cardID, err := parseID(cardRaw)
	if err != nil {
		return MoveCommand{}, kanban.NewError(kanban.ErrCodeInvalidCardID, "card_id must be a positive integer")
	}

	cmd := MoveCommand{CardID: cardID, Position: parsePosition(in.Position)}
	if strings.EqualFold(targetRaw, kanban.NewColumnSentinel) {
		cmd.Remove = true
		return cmd, nil
	}
	if cmd.TargetColumnID, err = parseID(targetRaw); err != nil {
		return MoveCommand{}, kanban.NewError(kanban.ErrCodeInvalidColumnID, "target_column_id must be a positive integer or \"new\"")
	}
	return cmd, nil
}

// ParseColumnID validates a column id path parameter.
func ParseColumnID(raw string) (int64, error) {
	id, err := parseID(strings.TrimSpace(raw))
	if err != nil {
		return 0, kanban.NewError(kanban.ErrCodeInvalidColumnID, "column id must be a positive integer")
	}
	return id, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// parsePosition treats a missing, malformed or negative index as 0.
func parsePosition(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
