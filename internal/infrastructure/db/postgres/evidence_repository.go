package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

// EvidenceItemRepository persists evidence items through the dicri stored
// procedures.
type EvidenceItemRepository struct {
	pool *pgxpool.Pool
}

func NewEvidenceItemRepository(pool *pgxpool.Pool) *EvidenceItemRepository {
	return &EvidenceItemRepository{pool: pool}
}

func scanEvidenceItem(row pgx.Row) (*domain.EvidenceItem, error) {
	var item domain.EvidenceItem
	err := row.Scan(&item.EvidenceItemID, &item.CaseFileID, &item.Description,
		&item.Color, &item.Size, &item.Weight, &item.LocationFound,
		&item.TechnicianID, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *EvidenceItemRepository) Create(ctx context.Context, input ports.CreateEvidenceItemInput, technicianID int64) (*domain.EvidenceItem, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM dicri.sp_evidence_item_create($1, $2, $3, $4, $5, $6, $7)",
		input.CaseFileID, input.Description, input.Color, input.Size,
		input.Weight, input.LocationFound, technicianID)

	item, err := scanEvidenceItem(row)
	if err != nil {
		return nil, fmt.Errorf("create evidence item: %w", err)
	}
	return item, nil
}

func (r *EvidenceItemRepository) GetByID(ctx context.Context, evidenceItemID int64) (*domain.EvidenceItem, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM dicri.sp_evidence_item_get_by_id($1)", evidenceItemID)

	item, err := scanEvidenceItem(row)
	if err != nil {
		return nil, fmt.Errorf("get evidence item: %w", err)
	}
	return item, nil
}

func (r *EvidenceItemRepository) List(ctx context.Context, filters ports.ListEvidenceItemsInput) ([]domain.EvidenceItem, error) {
	offset, limit := pagination(filters.Offset, filters.Limit)

	rows, err := r.pool.Query(ctx,
		"SELECT * FROM dicri.sp_evidence_item_list($1, $2, $3)",
		filters.CaseFileID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list evidence items: %w", err)
	}
	defer rows.Close()

	var items []domain.EvidenceItem
	for rows.Next() {
		var item domain.EvidenceItem
		if err := rows.Scan(&item.EvidenceItemID, &item.CaseFileID,
			&item.Description, &item.Color, &item.Size, &item.Weight,
			&item.LocationFound, &item.TechnicianID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("list evidence items: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list evidence items: %w", err)
	}
	return items, nil
}

func (r *EvidenceItemRepository) Update(ctx context.Context, evidenceItemID int64, description string, color, size, weight, locationFound *string) (*domain.EvidenceItem, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM dicri.sp_evidence_item_update($1, $2, $3, $4, $5, $6)",
		evidenceItemID, description, color, size, weight, locationFound)

	item, err := scanEvidenceItem(row)
	if err != nil {
		return nil, fmt.Errorf("update evidence item: %w", err)
	}
	return item, nil
}

func (r *EvidenceItemRepository) Delete(ctx context.Context, evidenceItemID int64) error {
	if _, err := r.pool.Exec(ctx,
		"SELECT dicri.sp_evidence_item_delete($1)", evidenceItemID); err != nil {
		return fmt.Errorf("delete evidence item: %w", err)
	}
	return nil
}

func (r *EvidenceItemRepository) CountByCaseFile(ctx context.Context, caseFileID int64) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		"SELECT * FROM dicri.sp_evidence_item_count_by_case_file($1)",
		caseFileID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count evidence items: %w", err)
	}
	return total, nil
}
