package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_segment_repository.go -package mocks github.com/Contactory/contactory/internal/domain SegmentRepository
//go:generate mockgen -destination mocks/mock_segment_service.go -package mocks github.com/Contactory/contactory/internal/domain SegmentService

// Segment is a tag-like grouping of contacts. Contacts hold a weak
// membership reference; the segment does not own them. Names are unique by
// convention only, nothing enforces it.
type Segment struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   *NullableString `json:"description,omitempty"`
	ContactsCount int             `json:"contacts_count"` // joined server-side
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Validate performs validation on the segment fields
func (s *Segment) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("invalid segment: name is required")
	}
	if len(s.Name) > 255 {
		return fmt.Errorf("invalid segment: name length must be between 1 and 255")
	}
	return nil
}

// ScanSegment scans a segment row (id, name, description, contacts_count,
// created_at, updated_at)
func ScanSegment(scanner interface {
	Scan(dest ...interface{}) error
}) (*Segment, error) {
	var (
		segment     Segment
		description NullableString
	)
	if err := scanner.Scan(
		&segment.ID,
		&segment.Name,
		&description,
		&segment.ContactsCount,
		&segment.CreatedAt,
		&segment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	segment.Description = &NullableString{String: description.String, IsNull: description.IsNull}
	return &segment, nil
}

type CreateSegmentRequest struct {
	Name        string `json:"name" valid:"required"`
	Description string `json:"description,omitempty" valid:"optional"`
}

func (r *CreateSegmentRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(r.Name) > 255 {
		return fmt.Errorf("name length must be between 1 and 255")
	}
	return nil
}

type UpdateSegmentRequest struct {
	ID          string `json:"id" valid:"required"`
	Name        string `json:"name" valid:"required"`
	Description string `json:"description,omitempty" valid:"optional"`
}

func (r *UpdateSegmentRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(r.Name) > 255 {
		return fmt.Errorf("name length must be between 1 and 255")
	}
	return nil
}

type DeleteSegmentRequest struct {
	ID string `json:"id" valid:"required"`
}

func (r *DeleteSegmentRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

// SegmentService provides operations for managing segments
type SegmentService interface {
	GetSegments(ctx context.Context) ([]*Segment, error)
	GetSegmentByID(ctx context.Context, id string) (*Segment, error)
	CreateSegment(ctx context.Context, req *CreateSegmentRequest) (*Segment, error)
	UpdateSegment(ctx context.Context, req *UpdateSegmentRequest) (*Segment, error)
	DeleteSegment(ctx context.Context, id string) error
}

// SegmentRepository persists segments and their contact memberships
type SegmentRepository interface {
	GetSegments(ctx context.Context) ([]*Segment, error)
	GetSegmentByID(ctx context.Context, id string) (*Segment, error)
	CreateSegment(ctx context.Context, segment *Segment) error
	UpdateSegment(ctx context.Context, segment *Segment) error
	DeleteSegment(ctx context.Context, id string) error
}
