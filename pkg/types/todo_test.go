package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateTodoValidate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name: "single character",
			text: "a",
		},
		{
			name: "ordinary text",
			text: "buy milk",
		},
		{
			name: "exactly max length",
			text: strings.Repeat("x", MaxTextLength),
		},
		{
			name: "multibyte runes count as characters, not bytes",
			text: strings.Repeat("あ", MaxTextLength),
		},
		{
			name:    "empty text rejected",
			text:    "",
			wantErr: ErrTextEmpty,
		},
		{
			name:    "over max length rejected",
			text:    strings.Repeat("x", MaxTextLength+1),
			wantErr: ErrTextTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CreateTodo{Text: tt.text}.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateTodoValidate(t *testing.T) {
	completed := true
	empty := ""
	long := strings.Repeat("x", MaxTextLength+1)
	text := "rewritten"

	tests := []struct {
		name    string
		payload UpdateTodo
		wantErr error
	}{
		{
			name:    "nil text is valid",
			payload: UpdateTodo{Completed: &completed},
		},
		{
			name:    "empty payload is valid",
			payload: UpdateTodo{},
		},
		{
			name:    "provided text is validated",
			payload: UpdateTodo{Text: &text},
		},
		{
			name:    "provided empty text rejected",
			payload: UpdateTodo{Text: &empty},
			wantErr: ErrTextEmpty,
		},
		{
			name:    "provided long text rejected",
			payload: UpdateTodo{Text: &long},
			wantErr: ErrTextTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
