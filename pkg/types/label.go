package types

// Label is a tag attached to todos. Name uniqueness is enforced by the
// label repositories at creation time, not by the storage schema.
type Label struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
