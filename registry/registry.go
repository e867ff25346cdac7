// Package registry holds the declarative catalog of plan sections and tables.
// The catalog is built once at package init and read-only afterwards; changing
// it is a deployment-time action.
package registry

import (
	"fmt"
	"strings"
)

// FieldType tags how a field is parsed and which input widget fits it.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldLongText FieldType = "longtext"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldBool     FieldType = "bool"
	FieldFile     FieldType = "file"
)

// Field describes one column of a table schema. System fields (id, project,
// created_at, updated_at) are never part of a schema.
type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Optional bool
}

// TableConfig is the immutable descriptor of one catalog table: its stable
// key, display title, record schema, cardinality and optional seed rows.
type TableConfig struct {
	Key         string
	Title       string
	Singleton   bool
	Fields      []Field
	DefaultRows []map[string]any
	// HistoryKind names the append-only dated sub-records attached to rows
	// of this table ("" when there are none).
	HistoryKind string
}

// FieldNames returns the ordered schema field names.
func (t TableConfig) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

// SectionConfig groups tables for navigation. The grouping carries no access
// or cardinality meaning; lookups always go through the flat table index.
type SectionConfig struct {
	Key         string
	Title       string
	Description string
	Tables      []TableConfig
}

var tableIndex = map[string]TableConfig{}

//nolint:gochecknoinits // the catalog is process-wide static data
func init() {
	for _, section := range Sections {
		for _, table := range section.Tables {
			if _, dup := tableIndex[table.Key]; dup {
				panic(fmt.Sprintf("registry: duplicate table key %q", table.Key))
			}
			tableIndex[table.Key] = table
		}
	}
}

// GetSection returns the section with the given key.
func GetSection(key string) (SectionConfig, bool) {
	for _, section := range Sections {
		if section.Key == key {
			return section, true
		}
	}
	return SectionConfig{}, false
}

// FindTable returns the table with the given key, searching the whole catalog.
func FindTable(key string) (TableConfig, bool) {
	table, ok := tableIndex[key]
	return table, ok
}

// labelFor derives a display label from a field name, e.g. "sl_no" -> "Sl No".
func labelFor(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// req declares a required field.
func req(name string, ft FieldType) Field {
	return Field{Name: name, Label: labelFor(name), Type: ft}
}

// opt declares an optional field.
func opt(name string, ft FieldType) Field {
	return Field{Name: name, Label: labelFor(name), Type: ft, Optional: true}
}

// contentFields is the schema shared by the free-text singleton tables.
func contentFields() []Field {
	return []Field{req("content", FieldLongText)}
}
