package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogKeysAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, section := range Sections {
		require.NotEmpty(t, section.Key)
		require.NotEmpty(t, section.Tables, "section %s has no tables", section.Key)
		for _, table := range section.Tables {
			owner, dup := seen[table.Key]
			require.False(t, dup, "table key %q appears in %s and %s", table.Key, owner, section.Key)
			seen[table.Key] = section.Key
		}
	}
}

func TestFindTableSearchesWholeCatalog(t *testing.T) {
	table, ok := FindTable("deliverables")
	require.True(t, ok)
	require.Equal(t, "deliverables", table.Key)
	require.True(t, len(table.DefaultRows) > 0)

	_, ok = FindTable("no-such-table")
	require.False(t, ok)
}

func TestGetSection(t *testing.T) {
	section, ok := GetSection("m9")
	require.True(t, ok)
	require.Equal(t, "m9", section.Key)

	_, ok = GetSection("m99")
	require.False(t, ok)
}

func TestSchemasNeverIncludeSystemFields(t *testing.T) {
	system := map[string]bool{"id": true, "project": true, "project_id": true, "created_at": true, "updated_at": true}
	for _, section := range Sections {
		for _, table := range section.Tables {
			for _, name := range table.FieldNames() {
				require.False(t, system[name], "table %s declares system field %s", table.Key, name)
			}
		}
	}
}

func TestSingletonTablesAreFlagged(t *testing.T) {
	for _, key := range []string{"reference-pif", "lifecycle-model", "transition-plan", "sam-backup"} {
		table, ok := FindTable(key)
		require.True(t, ok, key)
		require.True(t, table.Singleton, key)
	}
	for _, key := range []string{"revision-history", "deliverables", "risk-mitigation", "sam-status"} {
		table, ok := FindTable(key)
		require.True(t, ok, key)
		require.False(t, table.Singleton, key)
	}
}

func TestSeedRowsAreNumberedFromOne(t *testing.T) {
	table, _ := FindTable("deliverables")
	require.Len(t, table.DefaultRows, 15)
	require.Equal(t, "1", table.DefaultRows[0]["sl_no"])
	require.Equal(t, "Statement of Work", table.DefaultRows[0]["work_product"])
	require.Equal(t, "15", table.DefaultRows[14]["sl_no"])

	status, _ := FindTable("sam-status")
	require.Len(t, status.DefaultRows, 6)
	require.Equal(t, "Internal Team reviews", status.DefaultRows[0]["type_of_progress_reviews"])
}

func TestHistoryTables(t *testing.T) {
	risk, _ := FindTable("risk-mitigation")
	require.Equal(t, "exposure", risk.HistoryKind)

	opp, _ := FindTable("opportunity-register")
	require.Equal(t, "value", opp.HistoryKind)
}

func TestLabelFor(t *testing.T) {
	require.Equal(t, "Sl No", labelFor("sl_no"))
	require.Equal(t, "Brief Description", labelFor("brief_description"))
}
