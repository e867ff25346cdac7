package forms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planvault/registry"
)

func testTable() registry.TableConfig {
	return registry.TableConfig{
		Key:   "widgets",
		Title: "Widgets",
		Fields: []registry.Field{
			{Name: "name", Label: "Name", Type: registry.FieldText},
			{Name: "notes", Label: "Notes", Type: registry.FieldLongText, Optional: true},
			{Name: "count", Label: "Count", Type: registry.FieldNumber},
			{Name: "due", Label: "Due", Type: registry.FieldDate, Optional: true},
			{Name: "done", Label: "Done", Type: registry.FieldBool},
		},
	}
}

func TestWidgetFor(t *testing.T) {
	require.Equal(t, WidgetInput, WidgetFor(registry.FieldText))
	require.Equal(t, WidgetInput, WidgetFor(registry.FieldNumber))
	require.Equal(t, WidgetTextarea, WidgetFor(registry.FieldLongText))
	require.Equal(t, WidgetDate, WidgetFor(registry.FieldDate))
	require.Equal(t, WidgetCheckbox, WidgetFor(registry.FieldBool))
	require.Equal(t, WidgetFile, WidgetFor(registry.FieldFile))
}

func TestCleanValidPayload(t *testing.T) {
	cleaned, err := BuildValidator(testTable()).Clean(map[string]any{
		"name":  "alpha",
		"count": "7",
		"due":   "2025-03-01",
		"done":  "on",
		"bogus": "dropped",
	})
	require.NoError(t, err)
	require.Equal(t, "alpha", cleaned["name"])
	require.Equal(t, int64(7), cleaned["count"])
	require.Equal(t, "2025-03-01", cleaned["due"])
	require.Equal(t, true, cleaned["done"])
	require.Equal(t, "", cleaned["notes"])
	require.NotContains(t, cleaned, "bogus")
}

func TestCleanRequiredFieldMissing(t *testing.T) {
	_, err := BuildValidator(testTable()).Clean(map[string]any{"count": "3"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"This field is required."}, verr.Fields["name"])
	require.NotContains(t, verr.Fields, "count")
	require.NotContains(t, verr.Fields, "notes")
}

func TestCleanRejectsBadNumber(t *testing.T) {
	for _, bad := range []any{"seven", "3.5", 3.5, true} {
		_, err := BuildValidator(testTable()).Clean(map[string]any{
			"name":  "x",
			"count": bad,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "count=%v", bad)
		require.Equal(t, []string{"Enter a whole number."}, verr.Fields["count"])
	}
}

func TestCleanAcceptsJSONNumbers(t *testing.T) {
	// JSON decoding delivers numbers as float64
	cleaned, err := BuildValidator(testTable()).Clean(map[string]any{
		"name":  "x",
		"count": float64(12),
	})
	require.NoError(t, err)
	require.Equal(t, int64(12), cleaned["count"])
}

func TestCleanRejectsBadDate(t *testing.T) {
	_, err := BuildValidator(testTable()).Clean(map[string]any{
		"name":  "x",
		"count": "1",
		"due":   "01/03/2025",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"Enter a valid date."}, verr.Fields["due"])
}

func TestCleanBoolAbsentMeansFalse(t *testing.T) {
	cleaned, err := BuildValidator(testTable()).Clean(map[string]any{
		"name":  "x",
		"count": "1",
	})
	require.NoError(t, err)
	require.Equal(t, false, cleaned["done"])
}

func TestValidationErrorStopsNothingElse(t *testing.T) {
	// every failing field is reported, not only the first
	_, err := BuildValidator(testTable()).Clean(map[string]any{
		"count": "NaN",
		"due":   "yesterday",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)
	require.Contains(t, verr.Fields, "name")
	require.Contains(t, verr.Fields, "count")
	require.Contains(t, verr.Fields, "due")
}
