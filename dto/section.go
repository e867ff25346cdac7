package dto

// FieldMeta describes one schema field for clients rendering a table.
type FieldMeta struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Type   string `json:"type"`
	Widget string `json:"widget"`
}

// SectionDataResponse is the read shape for one table of a project.
type SectionDataResponse struct {
	Rows      []map[string]any `json:"rows"`
	Fields    []FieldMeta      `json:"fields"`
	Singleton bool             `json:"singleton"`
	Table     string           `json:"table"`
}

// MutationResponse is the write shape shared by create, update and delete.
type MutationResponse struct {
	Success bool                `json:"success"`
	Row     map[string]any      `json:"row,omitempty"`
	ID      any                 `json:"id,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// TableNav describes a table inside the sections navigation metadata.
type TableNav struct {
	Key       string      `json:"key"`
	Title     string      `json:"title"`
	Singleton bool        `json:"singleton"`
	Fields    []FieldMeta `json:"fields"`
}

// SectionNav describes one navigation section with its tables.
type SectionNav struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tables      []TableNav `json:"tables"`
}
