package ruleset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rcastillo/pliego-compliance/internal/types"
)

// ErrNoCurrentSheet indicates a tenant has no sheet flagged is_current.
var ErrNoCurrentSheet = errors.New("tenant has no current requirement sheet")

// Store persists requirement sheets in PostgreSQL. Sheets are append-only:
// a change always inserts a new version, never updates a stored document.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const sheetColumns = `id, tenant_id, code, version, status, is_current, valid_from, valid_until, document, created_at`

func scanSheet(row pgx.Row) (*types.RequirementSheet, error) {
	var sheet types.RequirementSheet
	var doc []byte
	err := row.Scan(&sheet.ID, &sheet.TenantID, &sheet.Code, &sheet.Version, &sheet.Status,
		&sheet.IsCurrent, &sheet.ValidFrom, &sheet.ValidUntil, &doc, &sheet.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doc, &sheet.Document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sheet document: %w", err)
	}
	return &sheet, nil
}

// CurrentSheet returns the tenant's sheet flagged is_current.
func (s *Store) CurrentSheet(ctx context.Context, tenantID uuid.UUID) (*types.RequirementSheet, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+sheetColumns+` FROM requirement_sheets
		 WHERE tenant_id = $1 AND is_current = true`,
		tenantID,
	)
	sheet, err := scanSheet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoCurrentSheet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load current sheet: %w", err)
	}
	return sheet, nil
}

// SheetByVersion returns one specific version of a tenant's sheet by code.
func (s *Store) SheetByVersion(ctx context.Context, tenantID uuid.UUID, code string, version int) (*types.RequirementSheet, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+sheetColumns+` FROM requirement_sheets
		 WHERE tenant_id = $1 AND code = $2 AND version = $3`,
		tenantID, code, version,
	)
	sheet, err := scanSheet(row)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet %s v%d: %w", code, version, err)
	}
	return sheet, nil
}

// InsertSheet stores a new sheet version in draft status and returns its ID.
// The version is one above the highest stored version for the same tenant
// and code.
func (s *Store) InsertSheet(ctx context.Context, sheet *types.RequirementSheet) (uuid.UUID, error) {
	doc, err := json.Marshal(sheet.Document)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal sheet document: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO requirement_sheets (tenant_id, code, version, status, is_current, valid_from, valid_until, document)
		 VALUES ($1, $2,
		         (SELECT COALESCE(MAX(version), 0) + 1 FROM requirement_sheets WHERE tenant_id = $1 AND code = $2),
		         $3, false, $4, $5, $6)
		 RETURNING id`,
		sheet.TenantID, sheet.Code, types.SheetStatusDraft, sheet.ValidFrom, sheet.ValidUntil, doc,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert sheet: %w", err)
	}
	return id, nil
}

// ActivateSheet marks one sheet active and current, clearing is_current on
// every other sheet of the same tenant inside one transaction so at most one
// sheet per tenant is ever current.
func (s *Store) ActivateSheet(ctx context.Context, tenantID, sheetID uuid.UUID) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`UPDATE requirement_sheets SET is_current = false WHERE tenant_id = $1 AND is_current = true`,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear current sheet: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE requirement_sheets SET is_current = true, status = $1 WHERE id = $2 AND tenant_id = $3`,
		types.SheetStatusActive, sheetID, tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to activate sheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sheet %s not found for tenant %s", sheetID, tenantID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit activation: %w", err)
	}
	return nil
}

// ListSheets returns every sheet version for a tenant, newest first.
func (s *Store) ListSheets(ctx context.Context, tenantID uuid.UUID) ([]types.RequirementSheet, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+sheetColumns+` FROM requirement_sheets
		 WHERE tenant_id = $1 ORDER BY code, version DESC`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}
	defer rows.Close()

	var sheets []types.RequirementSheet
	for rows.Next() {
		sheet, err := scanSheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sheet: %w", err)
		}
		sheets = append(sheets, *sheet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sheets: %w", err)
	}
	return sheets, nil
}
