package types

// Item is a named record held by the item store
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ItemFields holds the client-supplied fields of a new item
type ItemFields struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
