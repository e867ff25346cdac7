// Package forms derives input validators from table schemas at request time.
// Rebuilding per request keeps the validator in lockstep with the live
// catalog entry; the schemas are small so construction cost is negligible.
package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/planvault/registry"
)

// Widget is the input-widget hint derived from a field's declared type.
type Widget string

const (
	WidgetInput    Widget = "input"
	WidgetTextarea Widget = "textarea"
	WidgetDate     Widget = "date"
	WidgetCheckbox Widget = "checkbox"
	WidgetFile     Widget = "file"
)

// WidgetFor maps a declared field type to its input widget. The mapping is a
// presentation/parsing hint only; validation is driven by the field type.
func WidgetFor(ft registry.FieldType) Widget {
	switch ft {
	case registry.FieldDate:
		return WidgetDate
	case registry.FieldLongText:
		return WidgetTextarea
	case registry.FieldBool:
		return WidgetCheckbox
	case registry.FieldFile:
		return WidgetFile
	default:
		return WidgetInput
	}
}

// ValidationError carries the per-field message map returned on a rejected
// payload. No write happens when one is returned.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Validator checks a payload against one table schema.
type Validator struct {
	table registry.TableConfig
	check *validator.Validate
}

// BuildValidator constructs a validator for the table's current schema.
func BuildValidator(table registry.TableConfig) *Validator {
	return &Validator{table: table, check: validator.New()}
}

// Clean validates payload and returns the field map to persist, covering
// exactly the schema's fields. Unknown payload keys are dropped; the owning
// project is never part of the payload.
func (fv *Validator) Clean(payload map[string]any) (map[string]any, error) {
	cleaned := make(map[string]any, len(fv.table.Fields))
	verr := &ValidationError{Fields: map[string][]string{}}

	for _, field := range fv.table.Fields {
		raw, present := payload[field.Name]
		if field.Type == registry.FieldBool {
			// checkbox semantics: absent means false
			cleaned[field.Name] = truthy(raw)
			continue
		}
		if !present || raw == nil || raw == "" {
			if !field.Optional {
				verr.add(field.Name, "This field is required.")
				continue
			}
			cleaned[field.Name] = ""
			continue
		}
		value, msg := fv.cleanValue(field, raw)
		if msg != "" {
			verr.add(field.Name, msg)
			continue
		}
		cleaned[field.Name] = value
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return cleaned, nil
}

// cleanValue coerces one present, non-empty value to its declared type.
// Returns the stored value or a user-facing error message.
func (fv *Validator) cleanValue(field registry.Field, raw any) (any, string) {
	switch field.Type {
	case registry.FieldNumber:
		switch v := raw.(type) {
		case float64:
			if v != float64(int64(v)) {
				return nil, "Enter a whole number."
			}
			return int64(v), ""
		case int:
			return int64(v), ""
		case int64:
			return v, ""
		case string:
			if err := fv.check.Var(v, "required,number"); err != nil {
				return nil, "Enter a whole number."
			}
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, "Enter a whole number."
			}
			return n, ""
		default:
			return nil, "Enter a whole number."
		}
	case registry.FieldDate:
		s, ok := raw.(string)
		if !ok {
			return nil, "Enter a valid date."
		}
		if err := fv.check.Var(s, "required,datetime=2006-01-02"); err != nil {
			return nil, "Enter a valid date."
		}
		return s, ""
	case registry.FieldText, registry.FieldLongText, registry.FieldFile:
		// files are opaque handles; everything text-like is stored verbatim
		if s, ok := raw.(string); ok {
			return s, ""
		}
		return fmt.Sprint(raw), ""
	default:
		return raw, ""
	}
}

func truthy(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(v) {
		case "true", "on", "1", "yes":
			return true
		}
	case float64:
		return v != 0
	}
	return false
}
