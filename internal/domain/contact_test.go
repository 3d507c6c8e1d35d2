package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact_Validate(t *testing.T) {
	t.Run("valid contact", func(t *testing.T) {
		contact := &Contact{
			ID:    "c1",
			Name:  "John Smith",
			Phone: "+15550001",
			Email: &NullableString{String: "john@example.com"},
		}
		assert.NoError(t, contact.Validate())
	})

	t.Run("missing status defaults to active", func(t *testing.T) {
		contact := &Contact{ID: "c1", Name: "John", Phone: "+1"}
		require.NoError(t, contact.Validate())
		assert.Equal(t, ContactStatusActive, contact.Status)
	})

	t.Run("invalid email", func(t *testing.T) {
		contact := &Contact{
			ID:    "c1",
			Name:  "John",
			Phone: "+1",
			Email: &NullableString{String: "nope"},
		}
		assert.Error(t, contact.Validate())
	})
}

func TestContact_EmailValue(t *testing.T) {
	t.Run("present email lowercased", func(t *testing.T) {
		contact := &Contact{Email: &NullableString{String: "John@Example.COM"}}
		email := contact.EmailValue()
		require.NotNil(t, email)
		assert.Equal(t, "john@example.com", *email)
	})

	t.Run("absent variants", func(t *testing.T) {
		for _, contact := range []*Contact{
			{},
			{Email: &NullableString{IsNull: true}},
			{Email: &NullableString{String: ""}},
		} {
			assert.Nil(t, contact.EmailValue())
		}
	})
}

func TestContactStatus_Validate(t *testing.T) {
	for _, status := range []ContactStatus{ContactStatusActive, ContactStatusInactive, ContactStatusPending} {
		assert.NoError(t, status.Validate())
	}
	assert.Error(t, ContactStatus("archived").Validate())
	assert.Error(t, ContactStatus("").Validate())
}

func TestGetContactsRequest_FromQueryParams(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		req := &GetContactsRequest{}
		require.NoError(t, req.FromQueryParams(url.Values{}))
		assert.Equal(t, 20, req.Limit)
		assert.Equal(t, 0, req.Offset)
	})

	t.Run("limit capped", func(t *testing.T) {
		req := &GetContactsRequest{}
		require.NoError(t, req.FromQueryParams(url.Values{"limit": {"500"}}))
		assert.Equal(t, 100, req.Limit)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := &GetContactsRequest{}
		assert.Error(t, req.FromQueryParams(url.Values{"limit": {"abc"}}))
	})

	t.Run("invalid status", func(t *testing.T) {
		req := &GetContactsRequest{}
		assert.Error(t, req.FromQueryParams(url.Values{"status": {"bogus"}}))
	})

	t.Run("filters passed through", func(t *testing.T) {
		req := &GetContactsRequest{}
		require.NoError(t, req.FromQueryParams(url.Values{
			"status":     {"active"},
			"segment_id": {"seg-1"},
			"search":     {"john"},
			"offset":     {"40"},
		}))
		assert.Equal(t, "active", req.Status)
		assert.Equal(t, "seg-1", req.SegmentID)
		assert.Equal(t, "john", req.Search)
		assert.Equal(t, 40, req.Offset)
	})
}
