package types

import "unicode/utf8"

// Text length bounds for todo payloads, counted in runes.
const (
	MinTextLength = 1
	MaxTextLength = 100
)

// Todo is a todo item as exposed to callers. Labels is rebuilt from join
// rows on every read: it reflects the associations present at read time,
// in row order. It is never persisted as part of the todo record itself.
type Todo struct {
	ID        int     `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Labels    []Label `json:"labels"`
}

// CreateTodo carries the fields for creating a todo. Label associations are
// never part of the creation payload; fresh todos start without any.
type CreateTodo struct {
	Text string `json:"text"`
}

// Validate checks the text bounds. Returns ErrTextEmpty or ErrTextTooLong.
func (p CreateTodo) Validate() error {
	return validateText(p.Text)
}

// UpdateTodo carries a partial update. A nil field means "do not change",
// not "clear"; the stored value is kept as the fallback.
type UpdateTodo struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Validate checks the payload. A nil Text is valid; a provided one must
// satisfy the same bounds as CreateTodo.
func (p UpdateTodo) Validate() error {
	if p.Text == nil {
		return nil
	}
	return validateText(*p.Text)
}

func validateText(text string) error {
	n := utf8.RuneCountInString(text)
	if n < MinTextLength {
		return ErrTextEmpty
	}
	if n > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}
