package domain

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_contact_repository.go -package mocks github.com/Contactory/contactory/internal/domain ContactRepository
//go:generate mockgen -destination mocks/mock_contact_service.go -package mocks github.com/Contactory/contactory/internal/domain ContactService

// ContactStatus represents the lifecycle status of a contact
type ContactStatus string

const (
	ContactStatusActive   ContactStatus = "active"
	ContactStatusInactive ContactStatus = "inactive"
	ContactStatusPending  ContactStatus = "pending"
)

// Validate checks if the contact status is one of the recognized values
func (s ContactStatus) Validate() error {
	switch s {
	case ContactStatusActive, ContactStatusInactive, ContactStatusPending:
		return nil
	}
	return fmt.Errorf("invalid contact status: %s", s)
}

// Contact represents a contact in the system. Phone is the unique business
// key; email is unique only when non-null.
type Contact struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Email     *NullableString `json:"email,omitempty"`
	Status    ContactStatus   `json:"status"`
	Comment   *NullableString `json:"comment,omitempty"`
	Segments  []*Segment      `json:"segments,omitempty"` // joined server-side
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Validate ensures that the contact has all required fields
func (c *Contact) Validate() error {
	if c.Name == "" {
		return NewValidationError("name is required")
	}
	if c.Phone == "" {
		return NewValidationError("phone is required")
	}
	if c.Status == "" {
		c.Status = ContactStatusActive
	}
	if err := c.Status.Validate(); err != nil {
		return NewValidationError(err.Error())
	}
	if c.Email != nil && !c.Email.IsNull {
		if !govalidator.IsEmail(c.Email.String) {
			return NewValidationError("invalid email format")
		}
	}
	return nil
}

// EmailValue returns the contact's normalized email, or nil when the
// contact has no email. An empty string is treated as absent, never as a
// comparable value.
func (c *Contact) EmailValue() *string {
	if c.Email == nil || c.Email.IsNull || c.Email.String == "" {
		return nil
	}
	email := strings.ToLower(c.Email.String)
	return &email
}

// For database scanning
type dbContact struct {
	ID        string
	Name      string
	Phone     string
	Email     NullableString
	Status    string
	Comment   NullableString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScanContact scans a contact row (id, name, phone, email, status,
// comment, created_at, updated_at)
func ScanContact(scanner interface {
	Scan(dest ...interface{}) error
}) (*Contact, error) {
	var dbc dbContact
	if err := scanner.Scan(
		&dbc.ID,
		&dbc.Name,
		&dbc.Phone,
		&dbc.Email,
		&dbc.Status,
		&dbc.Comment,
		&dbc.CreatedAt,
		&dbc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &Contact{
		ID:        dbc.ID,
		Name:      dbc.Name,
		Phone:     dbc.Phone,
		Email:     &NullableString{String: dbc.Email.String, IsNull: dbc.Email.IsNull},
		Status:    ContactStatus(dbc.Status),
		Comment:   &NullableString{String: dbc.Comment.String, IsNull: dbc.Comment.IsNull},
		CreatedAt: dbc.CreatedAt,
		UpdatedAt: dbc.UpdatedAt,
	}, nil
}

// GetContactsRequest represents filters for listing contacts
type GetContactsRequest struct {
	Status    string `json:"status,omitempty" valid:"optional"`
	SegmentID string `json:"segment_id,omitempty" valid:"optional"`
	Search    string `json:"search,omitempty" valid:"optional"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// FromQueryParams parses the request from URL query parameters
func (r *GetContactsRequest) FromQueryParams(queryParams url.Values) error {
	r.Status = queryParams.Get("status")
	r.SegmentID = queryParams.Get("segment_id")
	r.Search = queryParams.Get("search")

	if limit := queryParams.Get("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			return fmt.Errorf("invalid limit: %w", err)
		}
		r.Limit = parsed
	}
	if offset := queryParams.Get("offset"); offset != "" {
		parsed, err := strconv.Atoi(offset)
		if err != nil {
			return fmt.Errorf("invalid offset: %w", err)
		}
		r.Offset = parsed
	}

	return r.Validate()
}

// Validate ensures that the request has valid values
func (r *GetContactsRequest) Validate() error {
	if r.Status != "" {
		if err := ContactStatus(r.Status).Validate(); err != nil {
			return err
		}
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return nil
}

// GetContactsResponse represents the response from listing contacts
type GetContactsResponse struct {
	Contacts []*Contact `json:"contacts"`
	Total    int        `json:"total"`
}

type GetContactRequest struct {
	ID string `json:"id" valid:"required"`
}

func (r *GetContactRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

type DeleteContactRequest struct {
	ID string `json:"id" valid:"required"`
}

func (r *DeleteContactRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

// ContactService provides read and delete operations for contacts. Writes
// go through the import and resolution services.
type ContactService interface {
	// GetContactByID retrieves a contact with its segment memberships
	GetContactByID(ctx context.Context, id string) (*Contact, error)

	// GetContacts retrieves contacts with filters and pagination
	GetContacts(ctx context.Context, req *GetContactsRequest) (*GetContactsResponse, error)

	// DeleteContact deletes a contact by ID
	DeleteContact(ctx context.Context, id string) error
}

// ContactRepository persists contacts and owns the uniqueness invariants
// on phone and email. The engine never assumes those invariants hold
// without checking; concurrent callers race against them and lose at
// write time with a UniqueConstraintError.
type ContactRepository interface {
	// FindByPhoneOrEmail retrieves every contact whose phone equals phone
	// or, when email is non-nil, whose email equals *email. A single OR
	// query, ordered by creation time.
	FindByPhoneOrEmail(ctx context.Context, phone string, email *string) ([]*Contact, error)

	// CreateContact inserts a new contact. Returns UniqueConstraintError
	// if phone or email collides at write time.
	CreateContact(ctx context.Context, contact *Contact) error

	// GetContactByID retrieves a contact by its ID
	GetContactByID(ctx context.Context, id string) (*Contact, error)

	// GetContactByEmail retrieves a contact by its exact email
	GetContactByEmail(ctx context.Context, email string) (*Contact, error)

	// GetContacts retrieves contacts with filters and pagination
	GetContacts(ctx context.Context, req *GetContactsRequest) (*GetContactsResponse, error)

	// UpdateContact persists changes to an existing contact
	UpdateContact(ctx context.Context, contact *Contact) error

	// DeleteContact deletes a contact
	DeleteContact(ctx context.Context, id string) error

	// AddToSegments adds the contact to the given segments, ignoring
	// memberships that already exist
	AddToSegments(ctx context.Context, contactID string, segmentIDs []string) error

	// RemoveFromSegments removes the contact from the given segments
	RemoveFromSegments(ctx context.Context, contactID string, segmentIDs []string) error

	// CountContacts returns the total number of contacts
	CountContacts(ctx context.Context) (int, error)

	// CountByStatus returns contact counts grouped by status
	CountByStatus(ctx context.Context) (map[ContactStatus]int, error)

	// CountBySegment returns contact counts grouped by segment
	CountBySegment(ctx context.Context) ([]*SegmentCount, error)
}
