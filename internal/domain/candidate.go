package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// CandidateContact is an unpersisted, user- or import-supplied contact
// record. It has no identity until it is created through the repository.
type CandidateContact struct {
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Email   *NullableString `json:"email,omitempty"`
	Status  ContactStatus   `json:"status,omitempty"`
	Comment *NullableString `json:"comment,omitempty"`
}

// Validate ensures the candidate can become a contact. Name and phone are
// required; a missing status defaults to active.
func (c *CandidateContact) Validate() error {
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
	if c.Email != nil && !c.Email.IsNull && c.Email.String != "" {
		if !govalidator.IsEmail(c.Email.String) {
			return NewValidationError("invalid email format")
		}
	}
	return nil
}

// NormalizedEmail returns the candidate's email lower-cased, or nil when
// the candidate has no email. An empty string is treated as absent so that
// two contacts without email are never compared against each other.
func (c *CandidateContact) NormalizedEmail() *string {
	if c.Email == nil || c.Email.IsNull || c.Email.String == "" {
		return nil
	}
	email := strings.ToLower(c.Email.String)
	return &email
}

// ToContact materializes the candidate into a contact with a fresh ID and
// timestamps. The email is stored normalized.
func (c *CandidateContact) ToContact(now time.Time) *Contact {
	email := &NullableString{IsNull: true}
	if normalized := c.NormalizedEmail(); normalized != nil {
		email = &NullableString{String: *normalized}
	}
	comment := &NullableString{IsNull: true}
	if c.Comment != nil {
		comment = c.Comment
	}
	status := c.Status
	if status == "" {
		status = ContactStatusActive
	}
	return &Contact{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     email,
		Status:    status,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CandidateFromJSON parses JSON data into a CandidateContact. The data can
// be provided as a []byte, string or gjson.Result. Email and comment need
// explicit null handling, so the fields are pulled out individually.
func CandidateFromJSON(data interface{}) (*CandidateContact, error) {
	var jsonResult gjson.Result

	switch v := data.(type) {
	case []byte:
		jsonResult = gjson.ParseBytes(v)
	case gjson.Result:
		jsonResult = v
	case string:
		jsonResult = gjson.Parse(v)
	default:
		return nil, fmt.Errorf("unsupported data type: %T", data)
	}

	candidate := &CandidateContact{
		Name:  jsonResult.Get("name").String(),
		Phone: jsonResult.Get("phone").String(),
	}

	if err := parseNullableString(jsonResult, "email", &candidate.Email); err != nil {
		return nil, err
	}
	if err := parseNullableString(jsonResult, "comment", &candidate.Comment); err != nil {
		return nil, err
	}

	if status := jsonResult.Get("status"); status.Exists() && status.Type != gjson.Null {
		if status.Type != gjson.String {
			return nil, fmt.Errorf("invalid type for status: expected string, got %s", status.Type)
		}
		candidate.Status = ContactStatus(status.String())
	}

	return candidate, nil
}

// parseNullableString extracts a nullable string field from JSON,
// distinguishing absent, null and present values
func parseNullableString(result gjson.Result, field string, target **NullableString) error {
	if value := result.Get(field); value.Exists() {
		if value.Type == gjson.Null {
			*target = &NullableString{IsNull: true}
		} else if value.Type == gjson.String {
			*target = &NullableString{String: value.String(), IsNull: false}
		} else {
			return fmt.Errorf("invalid type for %s: expected string, got %s", field, value.Type)
		}
	}
	return nil
}
