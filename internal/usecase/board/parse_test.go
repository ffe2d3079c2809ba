package board

import (
	"testing"

	"bridge-lending-backend/internal/domain/kanban"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		name string
		in   MoveCardInput
		want MoveCommand
		code kanban.ErrorCode
	}{
		{"move", MoveCardInput{"42", "7", "0"}, MoveCommand{CardID: 42, TargetColumnID: 7}, ""},
		{"position", MoveCardInput{" 42 ", "7", "3"}, MoveCommand{CardID: 42, TargetColumnID: 7, Position: 3}, ""},
		{"sentinel", MoveCardInput{"42", "new", ""}, MoveCommand{CardID: 42, Remove: true}, ""},
		{"sentinel upper", MoveCardInput{"42", "NEW", "2"}, MoveCommand{CardID: 42, Remove: true, Position: 2}, ""},
		{"bad position", MoveCardInput{"42", "7", "x"}, MoveCommand{CardID: 42, TargetColumnID: 7}, ""},
		{"negative position", MoveCardInput{"42", "7", "-4"}, MoveCommand{CardID: 42, TargetColumnID: 7}, ""},
		{"missing card", MoveCardInput{"", "7", "0"}, MoveCommand{}, kanban.ErrCodeMissingParameters},
		{"missing column", MoveCardInput{"42", " ", "0"}, MoveCommand{}, kanban.ErrCodeMissingParameters},
		{"non numeric card", MoveCardInput{"abc", "7", "0"}, MoveCommand{}, kanban.ErrCodeInvalidCardID},
		{"zero card", MoveCardInput{"0", "7", "0"}, MoveCommand{}, kanban.ErrCodeInvalidCardID},
		{"negative column", MoveCardInput{"42", "-7", "0"}, MoveCommand{}, kanban.ErrCodeInvalidColumnID},
		{"non numeric column", MoveCardInput{"42", "done", "0"}, MoveCommand{}, kanban.ErrCodeInvalidColumnID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMove(tc.in)
			if tc.code != "" {
				require.Error(t, err)
				assert.Equal(t, tc.code, kanban.CodeOf(err))
				assert.True(t, kanban.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseColumnID(t *testing.T) {
	id, err := ParseColumnID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = ParseColumnID("twelve")
	assert.Equal(t, kanban.ErrCodeInvalidColumnID, kanban.CodeOf(err))
}
