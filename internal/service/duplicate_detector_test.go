package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Contactory/contactory/internal/domain"
	"github.com/Contactory/contactory/internal/domain/mocks"
	pkgmocks "github.com/Contactory/contactory/pkg/mocks"
)

func TestDuplicateDetectorService_DetectDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContactRepository(ctrl)
	mockLogger := pkgmocks.NewMockLogger(ctrl)

	service := NewDuplicateDetectorService(mockRepo, mockLogger)

	ctx := context.Background()

	t.Run("no duplicates", func(t *testing.T) {
		candidate := &domain.CandidateContact{
			Name:  "John Smith",
			Phone: "+15550001",
		}

		mockRepo.EXPECT().
			FindByPhoneOrEmail(ctx, "+15550001", nil).
			Return(nil, nil)

		matches, err := service.DetectDuplicates(ctx, candidate)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("phone only match", func(t *testing.T) {
		candidate := &domain.CandidateContact{
			Name:  "John Smith",
			Phone: "+15550002",
			Email: &domain.NullableString{String: "john@example.com"},
		}
		existing := &domain.Contact{
			ID:    "c1",
			Name:  "Johnny",
			Phone: "+15550002",
			Email: &domain.NullableString{String: "other@example.com"},
		}

		email := "john@example.com"
		mockRepo.EXPECT().
			FindByPhoneOrEmail(ctx, "+15550002", &email).
			Return([]*domain.Contact{existing}, nil)

		matches, err := service.DetectDuplicates(ctx, candidate)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, domain.DuplicateTypePhone, matches[0].DuplicateType)
		assert.Equal(t, []string{"phone"}, matches[0].ConflictFields)
		assert.Equal(t, existing, matches[0].Existing)
	})

	t.Run("email only match", func(t *testing.T) {
		candidate := &domain.CandidateContact{
			Name:  "John Smith",
			Phone: "+15550003",
			Email: &domain.NullableString{String: "shared@example.com"},
		}
		existing := &domain.Contact{
			ID:    "c2",
			Phone: "+15559999",
			Email: &domain.NullableString{String: "shared@example.com"},
		}

		email := "shared@example.com"
		mockRepo.EXPECT().
			FindByPhoneOrEmail(ctx, "+15550003", &email).
			Return([]*domain.Contact{existing}, nil)

		matches, err := service.DetectDuplicates(ctx, candidate)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, domain.DuplicateTypeEmail, matches[0].DuplicateType)
		assert.Equal(t, []string{"email"}, matches[0].ConflictFields)
	})

	t.Run("both fields match", func(t *testing.T) {
		candidate := &domain.CandidateContact{
			Name:  "John Smith",
			Phone: "+15550004",
			Email: &domain.NullableString{String: "both@example.com"},
		}
		existing := &domain.Contact{
			ID:    "c3",
			Phone: "+15550004",
			Email: &domain.NullableString{String: "both@example.com"},
		}

		email := "both@example.com"
		mockRepo.EXPECT().
			FindByPhoneOrEmail(ctx, "+15550004", &email).
			Return([]*domain.Contact{existing}, nil)

		matches, err := service.DetectDuplicates(ctx, candidate)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, domain.DuplicateTypeBoth, matches[0].DuplicateType)
		assert.Equal(t, []string{"phone", "email"}, matches[0].ConflictFields)
	})

	t.Run("email matching is case insensitive", func(t *testing.T) {
		candidate := &domain.CandidateContact{
			Name:  "John Smith",
			Phone: "+15550005",
			Email: &domain.NullableString{String: "John@Example.COM"},
		}
		existing := &domain.Contact{
			ID:    "c4",
			Phone: "+15558888",
			Email: &domain.NullableString{String: "john@example.com"},
		}

		email := "john@example.com"
		mockRepo.EXPECT().
			FindByPhoneOrEmail(ctx, "+15550005", &email).
			Return([]*domain.Contact{existing}, nil)

		matches, err := service.DetectDuplicates(ctx, candidate)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, domain.DuplicateTypeEmail, matches[0].DuplicateType)
	})

	t.Run("empty email is never compared", func(t *testing.T) {
		candidate := &domain.CandidateContact{
			Name:  "No Email",
			Phone: "+15550006",
			Email: &domain.NullableString{String: ""},
		}
		existing := &domain.Contact{
			ID:    "c5",
			Phone: "+15550006",
			Email: &domain.NullableString{IsNull: true},
		}

		mockRepo.EXPECT().
			FindByPhoneOrEmail(ctx, "+15550006", nil).
			Return([]*domain.Contact{existing}, nil)

		matches, err := service.DetectDuplicates(ctx, candidate)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, domain.DuplicateTypePhone, matches[0].DuplicateType)
	})

	t.Run("multiple matches", func(t *testing.T) {
		candidate := &domain.CandidateContact{
			Name:  "John Smith",
			Phone: "+15550007",
			Email: &domain.NullableString{String: "multi@example.com"},
		}
		byPhone := &domain.Contact{
			ID:    "c6",
			Phone: "+15550007",
			Email: &domain.NullableString{IsNull: true},
		}
		byEmail := &domain.Contact{
			ID:    "c7",
			Phone: "+15557777",
			Email: &domain.NullableString{String: "multi@example.com"},
		}

		email := "multi@example.com"
		mockRepo.EXPECT().
			FindByPhoneOrEmail(ctx, "+15550007", &email).
			Return([]*domain.Contact{byPhone, byEmail}, nil)

		matches, err := service.DetectDuplicates(ctx, candidate)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, domain.DuplicateTypePhone, matches[0].DuplicateType)
		assert.Equal(t, domain.DuplicateTypeEmail, matches[1].DuplicateType)
	})

	t.Run("repository error", func(t *testing.T) {
		candidate := &domain.CandidateContact{
			Name:  "John Smith",
			Phone: "+15550008",
		}

		mockRepo.EXPECT().
			FindByPhoneOrEmail(ctx, "+15550008", nil).
			Return(nil, errors.New("connection refused"))
		mockLogger.EXPECT().WithField("phone", "+15550008").Return(mockLogger)
		mockLogger.EXPECT().Error(gomock.Any())

		matches, err := service.DetectDuplicates(ctx, candidate)
		assert.Error(t, err)
		assert.Nil(t, matches)
	})
}

func TestDuplicateDetectorService_DetectDuplicatesIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContactRepository(ctrl)
	mockLogger := pkgmocks.NewMockLogger(ctrl)

	service := NewDuplicateDetectorService(mockRepo, mockLogger)

	ctx := context.Background()
	candidate := &domain.CandidateContact{
		Name:  "John Smith",
		Phone: "+15550009",
	}
	existing := &domain.Contact{ID: "c8", Phone: "+15550009", Email: &domain.NullableString{IsNull: true}}

	mockRepo.EXPECT().
		FindByPhoneOrEmail(ctx, "+15550009", nil).
		Return([]*domain.Contact{existing}, nil).
		Times(2)

	first, err := service.DetectDuplicates(ctx, candidate)
	require.NoError(t, err)
	second, err := service.DetectDuplicates(ctx, candidate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
