package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Contactory/contactory/internal/domain"
)

type segmentRepository struct {
	db *sql.DB
}

// NewSegmentRepository creates a new PostgreSQL segment repository
func NewSegmentRepository(db *sql.DB) domain.SegmentRepository {
	return &segmentRepository{db: db}
}

func (r *segmentRepository) CreateSegment(ctx context.Context, segment *domain.Segment) error {
	query := `
		INSERT INTO segments (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		segment.ID,
		segment.Name,
		segment.Description,
		segment.CreatedAt,
		segment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create segment: %w", err)
	}

	return nil
}

func (r *segmentRepository) GetSegmentByID(ctx context.Context, id string) (*domain.Segment, error) {
	query := `
		SELECT s.id, s.name, s.description, COUNT(cs.contact_id), s.created_at, s.updated_at
		FROM segments s
		LEFT JOIN contact_segments cs ON cs.segment_id = s.id
		WHERE s.id = $1
		GROUP BY s.id
	`

	row := r.db.QueryRowContext(ctx, query, id)
	segment, err := domain.ScanSegment(row)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrSegmentNotFound{Message: "segment not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}

	return segment, nil
}

func (r *segmentRepository) GetSegments(ctx context.Context) ([]*domain.Segment, error) {
	query := `
		SELECT s.id, s.name, s.description, COUNT(cs.contact_id), s.created_at, s.updated_at
		FROM segments s
		LEFT JOIN contact_segments cs ON cs.segment_id = s.id
		GROUP BY s.id
		ORDER BY s.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get segments: %w", err)
	}
	defer rows.Close()

	segments := []*domain.Segment{}
	for rows.Next() {
		segment, err := domain.ScanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, segment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating segments rows: %w", err)
	}

	return segments, nil
}

func (r *segmentRepository) UpdateSegment(ctx context.Context, segment *domain.Segment) error {
	query := `
		UPDATE segments
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		segment.ID,
		segment.Name,
		segment.Description,
		segment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update segment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrSegmentNotFound{Message: "segment not found"}
	}

	return nil
}

func (r *segmentRepository) DeleteSegment(ctx context.Context, id string) error {
	query := `DELETE FROM segments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete segment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrSegmentNotFound{Message: "segment not found"}
	}

	return nil
}
