package models

// SorColumn is one ordered column definition of a source-of-record table.
type SorColumn struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// CreateSorTableRequest is the body of POST /api/v1/sor/tables.
type CreateSorTableRequest struct {
	Name    string      `json:"name"`
	Columns []SorColumn `json:"columns"`
}

// UpsertSorPermissionRequest sets an agent's access to a table.
type UpsertSorPermissionRequest struct {
	AgentID  string `json:"agent_id"`
	CanRead  bool   `json:"can_read"`
	CanWrite bool   `json:"can_write"`
}

// CreateSorRowRequest is the body of POST /api/v1/sor/tables/:id/rows.
type CreateSorRowRequest struct {
	Data map[string]string `json:"data"`
}
