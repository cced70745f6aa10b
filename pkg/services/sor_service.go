package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/sorpermission"
	"github.com/crewforge/crewd/ent/sorrow"
	"github.com/crewforge/crewd/ent/sortable"
	"github.com/crewforge/crewd/pkg/models"
)

// SorService manages source-of-record tables: user-defined schemas, opaque
// rows, and per-agent access grants.
type SorService struct {
	client *ent.Client
}

// NewSorService creates a new SorService
func NewSorService(client *ent.Client) *SorService {
	return &SorService{client: client}
}

// CreateTable creates a table. Names are unique per team, compared
// case-insensitively.
func (s *SorService) CreateTable(httpCtx context.Context, teamID string, req models.CreateSorTableRequest) (*ent.SorTable, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(req.Columns) == 0 {
		return nil, NewValidationError("columns", "at least one column required")
	}
	seen := map[string]bool{}
	for _, col := range req.Columns {
		if col.Name == "" {
			return nil, NewValidationError("columns", "column name cannot be empty")
		}
		if seen[col.Name] {
			return nil, NewValidationError("columns", fmt.Sprintf("duplicate column %q", col.Name))
		}
		seen[col.Name] = true
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	exists, err := s.client.SorTable.Query().
		Where(sortable.TeamID(teamID), sortable.NameEqualFold(req.Name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check table name: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	t, err := s.client.SorTable.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetName(req.Name).
		SetColumns(req.Columns).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return t, nil
}

// GetTable returns one table, scoped to the tenant.
func (s *SorService) GetTable(httpCtx context.Context, teamID, tableID string) (*ent.SorTable, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()
	return s.getTable(ctx, teamID, tableID)
}

// GetTableByName resolves a table by case-insensitive name; agents address
// tables by name.
func (s *SorService) GetTableByName(httpCtx context.Context, teamID, name string) (*ent.SorTable, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	t, err := s.client.SorTable.Query().
		Where(sortable.TeamID(teamID), sortable.NameEqualFold(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return t, nil
}

// ListTables returns a team's tables ordered by name.
func (s *SorService) ListTables(httpCtx context.Context, teamID string) ([]*ent.SorTable, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.SorTable.Query().
		Where(sortable.TeamID(teamID)).
		Order(ent.Asc(sortable.FieldName)).
		All(ctx)
}

// DeleteTable removes a table with its rows and permission grants.
func (s *SorService) DeleteTable(httpCtx context.Context, teamID, tableID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getTable(ctx, teamID, tableID); err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.SorRow.Delete().
		Where(sorrow.TableID(tableID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete rows: %w", err)
	}
	if _, err := tx.SorPermission.Delete().
		Where(sorpermission.TableID(tableID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete permissions: %w", err)
	}
	if err := tx.SorTable.DeleteOneID(tableID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}
	return tx.Commit()
}

// CreateRow inserts a row after validating its keys against the table's
// columns.
func (s *SorService) CreateRow(httpCtx context.Context, teamID, tableID string, data map[string]string) (*ent.SorRow, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	t, err := s.getTable(ctx, teamID, tableID)
	if err != nil {
		return nil, err
	}
	if err := validateRowData(t, data); err != nil {
		return nil, err
	}

	r, err := s.client.SorRow.Create().
		SetTableID(tableID).
		SetTeamID(teamID).
		SetData(data).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create row: %w", err)
	}
	return r, nil
}

// UpdateRow replaces a row's data after validating its keys.
func (s *SorService) UpdateRow(httpCtx context.Context, teamID, tableID string, rowID int, data map[string]string) (*ent.SorRow, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	t, err := s.getTable(ctx, teamID, tableID)
	if err != nil {
		return nil, err
	}
	if err := validateRowData(t, data); err != nil {
		return nil, err
	}

	n, err := s.client.SorRow.Update().
		Where(sorrow.ID(rowID), sorrow.TableID(tableID)).
		SetData(data).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update row: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.client.SorRow.Get(ctx, rowID)
}

// ListRows returns a table's rows, oldest first.
func (s *SorService) ListRows(httpCtx context.Context, teamID, tableID string, limit, offset int) ([]*ent.SorRow, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getTable(ctx, teamID, tableID); err != nil {
		return nil, err
	}
	return s.client.SorRow.Query().
		Where(sorrow.TableID(tableID)).
		Order(ent.Asc(sorrow.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

// DeleteRow removes one row.
func (s *SorService) DeleteRow(httpCtx context.Context, teamID, tableID string, rowID int) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getTable(ctx, teamID, tableID); err != nil {
		return err
	}
	n, err := s.client.SorRow.Delete().
		Where(sorrow.ID(rowID), sorrow.TableID(tableID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertPermission grants or updates an agent's access to a table.
func (s *SorService) UpsertPermission(httpCtx context.Context, teamID, tableID string, req models.UpsertSorPermissionRequest) (*ent.SorPermission, error) {
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getTable(ctx, teamID, tableID); err != nil {
		return nil, err
	}

	existing, err := s.client.SorPermission.Query().
		Where(sorpermission.TableID(tableID), sorpermission.AgentID(req.AgentID)).
		Only(ctx)
	if err == nil {
		return s.client.SorPermission.UpdateOne(existing).
			SetCanRead(req.CanRead).
			SetCanWrite(req.CanWrite).
			Save(ctx)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check permission: %w", err)
	}

	return s.client.SorPermission.Create().
		SetTableID(tableID).
		SetAgentID(req.AgentID).
		SetTeamID(teamID).
		SetCanRead(req.CanRead).
		SetCanWrite(req.CanWrite).
		Save(ctx)
}

// ListPermissions returns a table's grants.
func (s *SorService) ListPermissions(httpCtx context.Context, teamID, tableID string) ([]*ent.SorPermission, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getTable(ctx, teamID, tableID); err != nil {
		return nil, err
	}
	return s.client.SorPermission.Query().
		Where(sorpermission.TableID(tableID)).
		Order(ent.Asc(sorpermission.FieldAgentID)).
		All(ctx)
}

// CheckAgentAccess fails with ErrForbidden unless the agent holds the
// requested access on the table. No permission row means no access.
func (s *SorService) CheckAgentAccess(httpCtx context.Context, teamID, tableID, agentID string, write bool) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	p, err := s.client.SorPermission.Query().
		Where(
			sorpermission.TableID(tableID),
			sorpermission.AgentID(agentID),
			sorpermission.TeamID(teamID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrForbidden
		}
		return fmt.Errorf("failed to check permission: %w", err)
	}
	if write && !p.CanWrite {
		return ErrForbidden
	}
	if !write && !p.CanRead {
		return ErrForbidden
	}
	return nil
}

// validateRowData requires every data key to name a defined column.
func validateRowData(t *ent.SorTable, data map[string]string) error {
	if len(data) == 0 {
		return NewValidationError("data", "required")
	}
	cols := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		cols[c.Name] = true
	}
	for key := range data {
		if !cols[key] {
			return NewValidationError("data", fmt.Sprintf("unknown column %q", key))
		}
	}
	return nil
}

func (s *SorService) getTable(ctx context.Context, teamID, tableID string) (*ent.SorTable, error) {
	t, err := s.client.SorTable.Query().
		Where(sortable.ID(tableID), sortable.TeamID(teamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return t, nil
}
