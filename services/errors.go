package services

import "errors"

// Sentinel errors the handlers translate to HTTP status codes. "Not found"
// deliberately covers rows that exist under another project, so cross-tenant
// probing cannot distinguish the two cases.
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrRowIDRequired    = errors.New("row id required")
)
