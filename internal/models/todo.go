package models

// Todo is a transient checklist item, fully independent of habits and logs.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"` // epoch milliseconds
}
