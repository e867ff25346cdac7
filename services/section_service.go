package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/planvault/cache"
	"github.com/planvault/forms"
	"github.com/planvault/logutils"
	"github.com/planvault/models"
	"github.com/planvault/registry"
	"github.com/planvault/repositories"
)

// SectionService serves table rows through the row cache and applies
// create/update/delete against any catalog table through one generic path.
// Callers are expected to have checked view permission for reads; edit
// permission is enforced here on every mutation.
type SectionService struct {
	recordRepo *repositories.RecordRepository
	perms      *PermissionService
	rowCache   cache.RowCache
}

// NewSectionService creates a section service backed by the given row cache.
func NewSectionService(rowCache cache.RowCache) *SectionService {
	return &SectionService{
		recordRepo: repositories.NewRecordRepository(),
		perms:      NewPermissionService(),
		rowCache:   rowCache,
	}
}

// GetRows resolves the current rows of (project, table). An unknown table key
// yields an empty result, not an error. When the table has no stored rows but
// declares seed rows, the seeds are served with a nil id so a fresh project
// still renders an editable template.
//
// The read-then-populate sequence is intentionally lock-free: two concurrent
// misses both query storage and both write the cache with equivalent data. A
// concurrent mutation can repopulate a just-invalidated entry with stale rows;
// that window is accepted and bounded by the cache TTL.
func (s *SectionService) GetRows(projectID, tableKey string) []map[string]any {
	table, ok := registry.FindTable(tableKey)
	if !ok {
		return []map[string]any{}
	}

	if rows, hit := s.rowCache.Get(projectID, table.Key); hit {
		return rows
	}

	records, err := s.recordRepo.FindForTable(projectID, table.Key, table.HistoryKind != "")
	if err != nil {
		logutils.Log.WithError(err).WithField("table", table.Key).Error("record query failed")
		return []map[string]any{}
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, projectRow(table, record))
	}

	if len(rows) == 0 && len(table.DefaultRows) > 0 {
		for _, seed := range table.DefaultRows {
			row := make(map[string]any, len(seed)+1)
			for k, v := range seed {
				row[k] = v
			}
			row["id"] = nil
			rows = append(rows, row)
		}
	}

	s.rowCache.Set(projectID, table.Key, rows)
	return rows
}

// invalidate drops exactly the (project, table) cache entry.
func (s *SectionService) invalidate(projectID, tableKey string) {
	s.rowCache.Delete(projectID, tableKey)
}

// CreateRow validates the payload against the table schema and persists a new
// record bound to the project. The project reference always comes from the
// caller's scope, never from the payload. For singleton tables a second
// create updates the existing record instead of adding one.
func (s *SectionService) CreateRow(userID, projectID, tableKey string, payload map[string]any) (map[string]any, error) {
	if !s.perms.CanEdit(userID, projectID) {
		return nil, ErrPermissionDenied
	}
	table, ok := registry.FindTable(tableKey)
	if !ok {
		return nil, ErrNotFound
	}

	cleaned, err := forms.BuildValidator(table).Clean(payload)
	if err != nil {
		return nil, err
	}

	if table.Singleton {
		return s.saveSingleton(projectID, table, cleaned)
	}

	record := models.Record{
		ProjectID: projectID,
		TableKey:  table.Key,
		Fields:    cleaned,
	}
	record, err = s.recordRepo.Create(record)
	if err != nil {
		return nil, err
	}

	s.invalidate(projectID, table.Key)
	return projectRow(table, record), nil
}

// UpdateRow validates the payload and saves it onto an existing record. For
// singleton tables the row id is ignored and the single record is resolved or
// created; otherwise the id is required and resolved within the caller's
// project only.
func (s *SectionService) UpdateRow(userID, projectID, tableKey string, rowID *uint, payload map[string]any) (map[string]any, error) {
	if !s.perms.CanEdit(userID, projectID) {
		return nil, ErrPermissionDenied
	}
	table, ok := registry.FindTable(tableKey)
	if !ok {
		return nil, ErrNotFound
	}

	cleaned, err := forms.BuildValidator(table).Clean(payload)
	if err != nil {
		return nil, err
	}

	if table.Singleton {
		return s.saveSingleton(projectID, table, cleaned)
	}

	if rowID == nil {
		return nil, ErrRowIDRequired
	}
	record, err := s.recordRepo.FindByIDAndProject(*rowID, projectID, table.Key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	record.Fields = cleaned
	record, err = s.recordRepo.Save(record)
	if err != nil {
		return nil, err
	}

	s.invalidate(projectID, table.Key)
	return projectRow(table, record), nil
}

// DeleteRow removes a record. A singleton table with no stored record yet is
// a no-op reported as success; non-singleton deletes require a row id and are
// scoped to the caller's project.
func (s *SectionService) DeleteRow(userID, projectID, tableKey string, rowID *uint) error {
	if !s.perms.CanEdit(userID, projectID) {
		return ErrPermissionDenied
	}
	table, ok := registry.FindTable(tableKey)
	if !ok {
		return ErrNotFound
	}

	if table.Singleton {
		record, err := s.recordRepo.FirstForTable(projectID, table.Key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// nothing stored yet, nothing to delete
				return nil
			}
			return err
		}
		if err := s.recordRepo.Delete(record.ID); err != nil {
			return err
		}
		s.invalidate(projectID, table.Key)
		return nil
	}

	if rowID == nil {
		return ErrRowIDRequired
	}
	record, err := s.recordRepo.FindByIDAndProject(*rowID, projectID, table.Key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.recordRepo.Delete(record.ID); err != nil {
		return err
	}

	s.invalidate(projectID, table.Key)
	return nil
}

// saveSingleton writes the cleaned fields onto the project's single record of
// the table, creating it when absent. Repeated saves always land on the same
// record.
func (s *SectionService) saveSingleton(projectID string, table registry.TableConfig, cleaned map[string]any) (map[string]any, error) {
	record, err := s.recordRepo.FirstForTable(projectID, table.Key)
	switch {
	case err == nil:
		record.Fields = cleaned
		record, err = s.recordRepo.Save(record)
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = models.Record{ProjectID: projectID, TableKey: table.Key, Fields: cleaned}
		record, err = s.recordRepo.Create(record)
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(projectID, table.Key)
	return projectRow(table, record), nil
}

// projectRow maps a stored record onto exactly the schema's field list plus
// the synthetic id key. History sub-records ride along read-only when the
// schema declares them.
func projectRow(table registry.TableConfig, record models.Record) map[string]any {
	row := make(map[string]any, len(table.Fields)+2)
	for _, field := range table.Fields {
		row[field.Name] = record.Fields[field.Name]
	}
	row["id"] = record.ID
	if table.HistoryKind != "" && len(record.Histories) > 0 {
		entries := make([]map[string]any, 0, len(record.Histories))
		for _, h := range record.Histories {
			if h.Kind != table.HistoryKind {
				continue
			}
			entries = append(entries, map[string]any{
				"date":  h.Date.Format("2006-01-02"),
				"value": h.Value,
			})
		}
		if len(entries) > 0 {
			row[table.HistoryKind+"_history"] = entries
		}
	}
	return row
}
