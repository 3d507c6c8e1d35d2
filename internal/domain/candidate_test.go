package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateContact_Validate(t *testing.T) {
	t.Run("valid candidate", func(t *testing.T) {
		candidate := &CandidateContact{
			Name:  "John Smith",
			Phone: "+15550001",
			Email: &NullableString{String: "john@example.com"},
		}
		assert.NoError(t, candidate.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		candidate := &CandidateContact{Phone: "+15550001"}
		assert.Error(t, candidate.Validate())
	})

	t.Run("missing phone", func(t *testing.T) {
		candidate := &CandidateContact{Name: "John"}
		assert.Error(t, candidate.Validate())
	})

	t.Run("missing status defaults to active", func(t *testing.T) {
		candidate := &CandidateContact{Name: "John", Phone: "+15550001"}
		require.NoError(t, candidate.Validate())
		assert.Equal(t, ContactStatusActive, candidate.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		candidate := &CandidateContact{Name: "John", Phone: "+15550001", Status: "archived"}
		assert.Error(t, candidate.Validate())
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		candidate := &CandidateContact{
			Name:  "John",
			Phone: "+15550001",
			Email: &NullableString{String: "not-an-email"},
		}
		assert.Error(t, candidate.Validate())
	})

	t.Run("null email is fine", func(t *testing.T) {
		candidate := &CandidateContact{
			Name:  "John",
			Phone: "+15550001",
			Email: &NullableString{IsNull: true},
		}
		assert.NoError(t, candidate.Validate())
	})
}

func TestCandidateContact_NormalizedEmail(t *testing.T) {
	t.Run("lowercases", func(t *testing.T) {
		candidate := &CandidateContact{Email: &NullableString{String: "John@Example.COM"}}
		email := candidate.NormalizedEmail()
		require.NotNil(t, email)
		assert.Equal(t, "john@example.com", *email)
	})

	t.Run("absent variants all yield nil", func(t *testing.T) {
		for _, candidate := range []*CandidateContact{
			{},
			{Email: &NullableString{IsNull: true}},
			{Email: &NullableString{String: ""}},
		} {
			assert.Nil(t, candidate.NormalizedEmail())
		}
	})
}

func TestCandidateContact_ToContact(t *testing.T) {
	now := time.Now().UTC()

	t.Run("materializes with identity and normalized email", func(t *testing.T) {
		candidate := &CandidateContact{
			Name:  "John",
			Phone: "+15550001",
			Email: &NullableString{String: "John@Example.com"},
		}

		contact := candidate.ToContact(now)
		assert.NotEmpty(t, contact.ID)
		assert.Equal(t, "john@example.com", contact.Email.String)
		assert.Equal(t, ContactStatusActive, contact.Status)
		assert.Equal(t, now, contact.CreatedAt)
		assert.Equal(t, now, contact.UpdatedAt)
	})

	t.Run("distinct IDs per call", func(t *testing.T) {
		candidate := &CandidateContact{Name: "John", Phone: "+15550001"}
		a := candidate.ToContact(now)
		b := candidate.ToContact(now)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("absent email stays null", func(t *testing.T) {
		candidate := &CandidateContact{Name: "John", Phone: "+15550001"}
		contact := candidate.ToContact(now)
		assert.True(t, contact.Email.IsNull)
	})
}

func TestCandidateFromJSON(t *testing.T) {
	t.Run("full candidate", func(t *testing.T) {
		candidate, err := CandidateFromJSON([]byte(`{
			"name": "John Smith",
			"phone": "+15550001",
			"email": "john@example.com",
			"status": "pending",
			"comment": "imported"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "John Smith", candidate.Name)
		assert.Equal(t, "+15550001", candidate.Phone)
		assert.Equal(t, "john@example.com", candidate.Email.String)
		assert.Equal(t, ContactStatusPending, candidate.Status)
		assert.Equal(t, "imported", candidate.Comment.String)
	})

	t.Run("explicit null email", func(t *testing.T) {
		candidate, err := CandidateFromJSON(`{"name":"John","phone":"+1","email":null}`)
		require.NoError(t, err)
		require.NotNil(t, candidate.Email)
		assert.True(t, candidate.Email.IsNull)
	})

	t.Run("absent email leaves field nil", func(t *testing.T) {
		candidate, err := CandidateFromJSON(`{"name":"John","phone":"+1"}`)
		require.NoError(t, err)
		assert.Nil(t, candidate.Email)
	})

	t.Run("wrong email type", func(t *testing.T) {
		_, err := CandidateFromJSON(`{"name":"John","phone":"+1","email":42}`)
		assert.Error(t, err)
	})

	t.Run("wrong status type", func(t *testing.T) {
		_, err := CandidateFromJSON(`{"name":"John","phone":"+1","status":7}`)
		assert.Error(t, err)
	})

	t.Run("unsupported input type", func(t *testing.T) {
		_, err := CandidateFromJSON(42)
		assert.Error(t, err)
	})
}
