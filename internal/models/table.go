package models

// Row is one physical-table row keyed by column identifier. The identity
// column is carried as "id" (int64); data columns are text.
type Row map[string]any

type Pagination struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int64 `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
}

// TablePage is the management read result: one offset page of rows,
// optionally narrowed by a search term.
type TablePage struct {
	Headers    []string   `json:"headers"`
	Rows       []Row      `json:"data"`
	Filename   string     `json:"filename"`
	Pagination Pagination `json:"pagination"`
}

// PublicRows is the restricted embeddable read result.
type PublicRows struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"data"`
}
