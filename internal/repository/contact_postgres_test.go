package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Contactory/contactory/internal/domain"
)

func setupContactMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, domain.ContactRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewContactRepository(db)
	return db, mock, repo
}

func createTestContact(id string) *domain.Contact {
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	return &domain.Contact{
		ID:        id,
		Name:      "John Smith",
		Phone:     "+15550001",
		Email:     &domain.NullableString{String: "john@example.com"},
		Status:    domain.ContactStatusActive,
		Comment:   &domain.NullableString{IsNull: true},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func contactToMockRows(contact *domain.Contact) *sqlmock.Rows {
	var email, comment interface{}
	if contact.Email != nil && !contact.Email.IsNull {
		email = contact.Email.String
	}
	if contact.Comment != nil && !contact.Comment.IsNull {
		comment = contact.Comment.String
	}
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "email", "status", "comment", "created_at", "updated_at",
	}).AddRow(
		contact.ID, contact.Name, contact.Phone, email,
		string(contact.Status), comment, contact.CreatedAt, contact.UpdatedAt,
	)
}

func TestContactRepository_FindByPhoneOrEmail(t *testing.T) {
	t.Run("phone and email", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		contact := createTestContact("")
		mock.ExpectQuery("SELECT (.+) FROM contacts WHERE \\(phone = \\$1 OR email = \\$2\\)").
			WithArgs("+15550001", "john@example.com").
			WillReturnRows(contactToMockRows(contact))

		email := "john@example.com"
		contacts, err := repo.FindByPhoneOrEmail(context.Background(), "+15550001", &email)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, contact.ID, contacts[0].ID)
		assert.Equal(t, "john@example.com", contacts[0].Email.String)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("phone only when email absent", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM contacts WHERE \\(phone = \\$1\\)").
			WithArgs("+15550002").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "phone", "email", "status", "comment", "created_at", "updated_at",
			}))

		contacts, err := repo.FindByPhoneOrEmail(context.Background(), "+15550002", nil)
		require.NoError(t, err)
		assert.Empty(t, contacts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM contacts").
			WillReturnError(sql.ErrConnDone)

		contacts, err := repo.FindByPhoneOrEmail(context.Background(), "+15550003", nil)
		assert.Error(t, err)
		assert.Nil(t, contacts)
	})
}

func TestContactRepository_CreateContact(t *testing.T) {
	t.Run("successful insert", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		contact := createTestContact("")
		mock.ExpectExec("INSERT INTO contacts").
			WithArgs(
				contact.ID, contact.Name, contact.Phone, contact.Email,
				string(contact.Status), contact.Comment, contact.CreatedAt, contact.UpdatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.CreateContact(context.Background(), contact)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("phone unique violation maps to domain error", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectExec("INSERT INTO contacts").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "contacts_phone_key"})

		err := repo.CreateContact(context.Background(), createTestContact(""))
		var unique *domain.UniqueConstraintError
		require.ErrorAs(t, err, &unique)
		assert.Equal(t, "phone", unique.Field)
	})

	t.Run("email unique violation maps to domain error", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectExec("INSERT INTO contacts").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "contacts_email_key"})

		err := repo.CreateContact(context.Background(), createTestContact(""))
		var unique *domain.UniqueConstraintError
		require.ErrorAs(t, err, &unique)
		assert.Equal(t, "email", unique.Field)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectExec("INSERT INTO contacts").
			WillReturnError(sql.ErrConnDone)

		err := repo.CreateContact(context.Background(), createTestContact(""))
		require.Error(t, err)
		var unique *domain.UniqueConstraintError
		assert.False(t, domain.IsUniqueConstraintError(err))
		assert.False(t, errors.As(err, &unique))
	})
}

func TestContactRepository_GetContactByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		contact := createTestContact("c1")
		mock.ExpectQuery("SELECT (.+) FROM contacts WHERE id = \\$1").
			WithArgs("c1").
			WillReturnRows(contactToMockRows(contact))

		result, err := repo.GetContactByID(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", result.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM contacts WHERE id = \\$1").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		result, err := repo.GetContactByID(context.Background(), "missing")
		assert.Nil(t, result)
		var notFound *domain.ErrContactNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestContactRepository_GetContactByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		contact := createTestContact("c1")
		mock.ExpectQuery("SELECT (.+) FROM contacts WHERE email = \\$1").
			WithArgs("john@example.com").
			WillReturnRows(contactToMockRows(contact))

		result, err := repo.GetContactByEmail(context.Background(), "john@example.com")
		require.NoError(t, err)
		assert.Equal(t, contact.ID, result.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM contacts WHERE email = \\$1").
			WithArgs("ghost@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetContactByEmail(context.Background(), "ghost@example.com")
		var notFound *domain.ErrContactNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestContactRepository_GetContacts(t *testing.T) {
	t.Run("lists with total", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		contact := createTestContact("c1")
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contacts c").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM contacts c ORDER BY c.created_at DESC").
			WillReturnRows(contactToMockRows(contact))

		response, err := repo.GetContacts(context.Background(), &domain.GetContactsRequest{Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, 1, response.Total)
		require.Len(t, response.Contacts, 1)
	})

	t.Run("filters by status", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contacts c WHERE c.status = \\$1").
			WithArgs("active").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT (.+) FROM contacts c WHERE c.status = \\$1").
			WithArgs("active").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "phone", "email", "status", "comment", "created_at", "updated_at",
			}))

		response, err := repo.GetContacts(context.Background(), &domain.GetContactsRequest{Status: "active", Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, 0, response.Total)
		assert.Empty(t, response.Contacts)
	})

	t.Run("filters by segment", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contacts c JOIN contact_segments cs").
			WithArgs("seg-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT (.+) FROM contacts c JOIN contact_segments cs").
			WithArgs("seg-1").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "phone", "email", "status", "comment", "created_at", "updated_at",
			}))

		_, err := repo.GetContacts(context.Background(), &domain.GetContactsRequest{SegmentID: "seg-1", Limit: 20})
		require.NoError(t, err)
	})
}

func TestContactRepository_UpdateContact(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		contact := createTestContact("c1")
		mock.ExpectExec("UPDATE contacts").
			WithArgs(
				contact.ID, contact.Name, contact.Phone, contact.Email,
				string(contact.Status), contact.Comment, contact.UpdatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateContact(context.Background(), contact))
	})

	t.Run("no rows means not found", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectExec("UPDATE contacts").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateContact(context.Background(), createTestContact("missing"))
		var notFound *domain.ErrContactNotFound
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("unique violation maps to domain error", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectExec("UPDATE contacts").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "contacts_email_key"})

		err := repo.UpdateContact(context.Background(), createTestContact("c1"))
		assert.True(t, domain.IsUniqueConstraintError(err))
	})
}

func TestContactRepository_DeleteContact(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectExec("DELETE FROM contacts WHERE id = \\$1").
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteContact(context.Background(), "c1"))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectExec("DELETE FROM contacts WHERE id = \\$1").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteContact(context.Background(), "missing")
		var notFound *domain.ErrContactNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestContactRepository_Segments(t *testing.T) {
	t.Run("add to segments", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectExec("INSERT INTO contact_segments").
			WithArgs("c1", "seg-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO contact_segments").
			WithArgs("c1", "seg-2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AddToSegments(context.Background(), "c1", []string{"seg-1", "seg-2"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("add with empty list is a no-op", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		require.NoError(t, repo.AddToSegments(context.Background(), "c1", nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("remove from segments", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectExec("DELETE FROM contact_segments").
			WithArgs("c1", pq.Array([]string{"seg-1"})).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.RemoveFromSegments(context.Background(), "c1", []string{"seg-1"}))
	})
}

func TestContactRepository_Counts(t *testing.T) {
	t.Run("count contacts", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contacts").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		total, err := repo.CountContacts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, total)
	})

	t.Run("count by status", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) FROM contacts GROUP BY status").
			WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
				AddRow("active", 5).
				AddRow("pending", 2))

		counts, err := repo.CountByStatus(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, counts[domain.ContactStatusActive])
		assert.Equal(t, 2, counts[domain.ContactStatusPending])
	})

	t.Run("count by segment", func(t *testing.T) {
		db, mock, repo := setupContactMock(t)
		defer db.Close()

		mock.ExpectQuery("SELECT s.id, s.name, COUNT\\(cs.contact_id\\)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "count"}).
				AddRow("s1", "VIP", 3).
				AddRow("s2", "Churned", 0))

		counts, err := repo.CountBySegment(context.Background())
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, "VIP", counts[0].SegmentName)
		assert.Equal(t, 3, counts[0].Count)
	})
}
