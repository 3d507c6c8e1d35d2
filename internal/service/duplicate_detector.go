package service

import (
	"context"
	"fmt"

	"github.com/Contactory/contactory/internal/domain"
	"github.com/Contactory/contactory/pkg/logger"
)

// DuplicateDetectorService classifies candidate contacts against the
// current repository state. It is read-only and never caches between
// calls: bulk operations race against the uniqueness constraints, so
// every detection re-reads.
type DuplicateDetectorService struct {
	repo   domain.ContactRepository
	logger logger.Logger
}

func NewDuplicateDetectorService(repo domain.ContactRepository, logger logger.Logger) *DuplicateDetectorService {
	return &DuplicateDetectorService{
		repo:   repo,
		logger: logger,
	}
}

// DetectDuplicates returns every existing contact that shares the
// candidate's phone and/or email, classified per collision. The lookup is
// a single OR query. An empty email is never compared.
func (s *DuplicateDetectorService) DetectDuplicates(ctx context.Context, candidate *domain.CandidateContact) ([]*domain.DuplicateMatch, error) {
	email := candidate.NormalizedEmail()

	contacts, err := s.repo.FindByPhoneOrEmail(ctx, candidate.Phone, email)
	if err != nil {
		s.logger.WithField("phone", candidate.Phone).Error(fmt.Sprintf("Failed to find contacts by phone or email: %v", err))
		return nil, fmt.Errorf("failed to find contacts by phone or email: %w", err)
	}

	matches := make([]*domain.DuplicateMatch, 0, len(contacts))
	for _, existing := range contacts {
		phoneMatch := existing.Phone == candidate.Phone
		emailMatch := false
		if email != nil {
			if existingEmail := existing.EmailValue(); existingEmail != nil && *existingEmail == *email {
				emailMatch = true
			}
		}

		match := &domain.DuplicateMatch{
			Candidate: candidate,
			Existing:  existing,
		}
		switch {
		case phoneMatch && emailMatch:
			match.DuplicateType = domain.DuplicateTypeBoth
			match.ConflictFields = []string{"phone", "email"}
		case emailMatch:
			match.DuplicateType = domain.DuplicateTypeEmail
			match.ConflictFields = []string{"email"}
		default:
			match.DuplicateType = domain.DuplicateTypePhone
			match.ConflictFields = []string{"phone"}
		}
		matches = append(matches, match)
	}

	return matches, nil
}
