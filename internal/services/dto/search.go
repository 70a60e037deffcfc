package dto

type SearchQuery struct {
	Q    string `form:"q"`
	Type string `form:"type" validate:"omitempty,search_type"`
}

// SearchResponse returns the sections requested by Type; omitted
// sections are nil, empty sections are empty slices.
type SearchResponse struct {
	Query  string    `json:"query"`
	Type   string    `json:"type"`
	People []UserDTO `json:"people,omitempty"`
	Jobs   []JobDTO  `json:"jobs,omitempty"`
}
