package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Contactory/contactory/internal/domain"
)

const contactColumns = "id, name, phone, email, status, comment, created_at, updated_at"

type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new PostgreSQL contact repository
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{db: db}
}

// uniqueConstraintError converts a postgres unique_violation into the
// domain error carrying the colliding field
func uniqueConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	switch pqErr.Constraint {
	case "contacts_phone_key":
		return &domain.UniqueConstraintError{Field: "phone"}
	case "contacts_email_key":
		return &domain.UniqueConstraintError{Field: "email"}
	}
	return &domain.UniqueConstraintError{Field: pqErr.Constraint}
}

func (r *contactRepository) FindByPhoneOrEmail(ctx context.Context, phone string, email *string) ([]*domain.Contact, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	cond := sq.Or{sq.Eq{"phone": phone}}
	if email != nil {
		cond = append(cond, sq.Eq{"email": *email})
	}

	query, args, err := psql.
		Select("id", "name", "phone", "email", "status", "comment", "created_at", "updated_at").
		From("contacts").
		Where(cond).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find contacts by phone or email: %w", err)
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		contact, err := domain.ScanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts rows: %w", err)
	}

	return contacts, nil
}

func (r *contactRepository) CreateContact(ctx context.Context, contact *domain.Contact) error {
	query := `
		INSERT INTO contacts (id, name, phone, email, status, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		contact.ID,
		contact.Name,
		contact.Phone,
		contact.Email,
		string(contact.Status),
		contact.Comment,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		if uniqueErr := uniqueConstraintError(err); uniqueErr != nil {
			return uniqueErr
		}
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

func (r *contactRepository) GetContactByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE id = $1`, contactColumns)

	row := r.db.QueryRowContext(ctx, query, id)
	contact, err := domain.ScanContact(row)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrContactNotFound{Message: "contact not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return contact, nil
}

func (r *contactRepository) GetContactByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE email = $1`, contactColumns)

	row := r.db.QueryRowContext(ctx, query, email)
	contact, err := domain.ScanContact(row)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrContactNotFound{Message: "contact not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return contact, nil
}

func (r *contactRepository) GetContacts(ctx context.Context, req *domain.GetContactsRequest) (*domain.GetContactsResponse, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countQuery := psql.Select("COUNT(*)").From("contacts c")
	dataQuery := psql.
		Select("c.id", "c.name", "c.phone", "c.email", "c.status", "c.comment", "c.created_at", "c.updated_at").
		From("contacts c")

	if req.Status != "" {
		countQuery = countQuery.Where(sq.Eq{"c.status": req.Status})
		dataQuery = dataQuery.Where(sq.Eq{"c.status": req.Status})
	}
	if req.SegmentID != "" {
		join := "contact_segments cs ON cs.contact_id = c.id"
		countQuery = countQuery.Join(join).Where(sq.Eq{"cs.segment_id": req.SegmentID})
		dataQuery = dataQuery.Join(join).Where(sq.Eq{"cs.segment_id": req.SegmentID})
	}
	if req.Search != "" {
		search := sq.Or{
			sq.ILike{"c.name": "%" + req.Search + "%"},
			sq.ILike{"c.phone": "%" + req.Search + "%"},
			sq.ILike{"c.email": "%" + req.Search + "%"},
		}
		countQuery = countQuery.Where(search)
		dataQuery = dataQuery.Where(search)
	}

	query, args, err := countQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	query, args, err = dataQuery.
		OrderBy("c.created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*domain.Contact{}
	for rows.Next() {
		contact, err := domain.ScanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts rows: %w", err)
	}

	return &domain.GetContactsResponse{
		Contacts: contacts,
		Total:    total,
	}, nil
}

func (r *contactRepository) UpdateContact(ctx context.Context, contact *domain.Contact) error {
	query := `
		UPDATE contacts
		SET name = $2, phone = $3, email = $4, status = $5, comment = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		contact.ID,
		contact.Name,
		contact.Phone,
		contact.Email,
		string(contact.Status),
		contact.Comment,
		contact.UpdatedAt,
	)
	if err != nil {
		if uniqueErr := uniqueConstraintError(err); uniqueErr != nil {
			return uniqueErr
		}
		return fmt.Errorf("failed to update contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrContactNotFound{Message: "contact not found"}
	}

	return nil
}

func (r *contactRepository) DeleteContact(ctx context.Context, id string) error {
	query := `DELETE FROM contacts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrContactNotFound{Message: "contact not found"}
	}

	return nil
}

func (r *contactRepository) AddToSegments(ctx context.Context, contactID string, segmentIDs []string) error {
	if len(segmentIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO contact_segments (contact_id, segment_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (contact_id, segment_id) DO NOTHING
	`

	for _, segmentID := range segmentIDs {
		if _, err := r.db.ExecContext(ctx, query, contactID, segmentID); err != nil {
			return fmt.Errorf("failed to add contact to segment %s: %w", segmentID, err)
		}
	}

	return nil
}

func (r *contactRepository) RemoveFromSegments(ctx context.Context, contactID string, segmentIDs []string) error {
	if len(segmentIDs) == 0 {
		return nil
	}

	query := `DELETE FROM contact_segments WHERE contact_id = $1 AND segment_id = ANY($2)`

	if _, err := r.db.ExecContext(ctx, query, contactID, pq.Array(segmentIDs)); err != nil {
		return fmt.Errorf("failed to remove contact from segments: %w", err)
	}

	return nil
}

func (r *contactRepository) CountContacts(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return total, nil
}

func (r *contactRepository) CountByStatus(ctx context.Context) (map[domain.ContactStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM contacts GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ContactStatus]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[domain.ContactStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}

	return counts, nil
}

func (r *contactRepository) CountBySegment(ctx context.Context) ([]*domain.SegmentCount, error) {
	query := `
		SELECT s.id, s.name, COUNT(cs.contact_id)
		FROM segments s
		LEFT JOIN contact_segments cs ON cs.segment_id = s.id
		GROUP BY s.id, s.name
		ORDER BY s.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts by segment: %w", err)
	}
	defer rows.Close()

	counts := []*domain.SegmentCount{}
	for rows.Next() {
		var count domain.SegmentCount
		if err := rows.Scan(&count.SegmentID, &count.SegmentName, &count.Count); err != nil {
			return nil, fmt.Errorf("failed to scan segment count: %w", err)
		}
		counts = append(counts, &count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating segment counts: %w", err)
	}

	return counts, nil
}
