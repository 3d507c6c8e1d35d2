package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Contactory/contactory/internal/domain"
	"github.com/Contactory/contactory/pkg/logger"
)

// ResolutionService turns duplicate-resolution decisions into repository
// mutations.
type ResolutionService struct {
	repo   domain.ContactRepository
	logger logger.Logger

	// suffixCounter disambiguates force-create suffixes generated within
	// the same millisecond.
	suffixCounter uint64
}

func NewResolutionService(repo domain.ContactRepository, logger logger.Logger) *ResolutionService {
	return &ResolutionService{
		repo:   repo,
		logger: logger,
	}
}

// ResolveOne applies one action to one duplicate match. targetContactID
// selects the update target when the caller resolved against several
// matches; empty means the match's own existing contact.
func (s *ResolutionService) ResolveOne(ctx context.Context, match *domain.DuplicateMatch, action domain.ResolutionAction, targetContactID string, segmentIDs []string) (*domain.ResolutionResult, error) {
	if match == nil || match.Candidate == nil {
		return nil, &domain.InvalidResolutionError{Message: "match with candidate is required"}
	}

	switch action {
	case domain.ResolutionActionSkip:
		return &domain.ResolutionResult{
			Action:  domain.ResolutionActionSkip,
			Contact: match.Existing,
		}, nil
	case domain.ResolutionActionUpdate:
		return s.updateExisting(ctx, match, targetContactID, segmentIDs)
	case domain.ResolutionActionForceCreate:
		return s.forceCreate(ctx, match, segmentIDs)
	default:
		return nil, &domain.InvalidResolutionError{Message: fmt.Sprintf("unrecognized action: %s", action)}
	}
}

// ResolveBatch applies per-index actions, accumulating updated, created
// and skipped counts plus row errors. One failed match never stops the
// rest.
func (s *ResolutionService) ResolveBatch(ctx context.Context, matches []*domain.DuplicateMatch, actions map[int]domain.ResolutionAction, segmentIDs []string) (*domain.ImportOutcome, error) {
	outcome := domain.NewImportOutcome()

	for i, match := range matches {
		action, ok := actions[i]
		if !ok {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("match %d: no action provided", i))
			continue
		}

		result, err := s.ResolveOne(ctx, match, action, "", segmentIDs)
		if err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("match %d: %v", i, err))
			continue
		}

		switch result.Action {
		case domain.ResolutionActionUpdate:
			outcome.Updated++
		case domain.ResolutionActionSkip:
			outcome.Skipped++
		case domain.ResolutionActionForceCreate:
			outcome.Created++
		}
	}

	return outcome, nil
}

// updateExisting performs a field-level merge of the candidate into the
// target contact. Name, status and comment always come from the
// candidate. The candidate's email is taken only when a fresh lookup
// proves no other contact owns it; otherwise the target keeps its current
// email and the conflict is not propagated.
func (s *ResolutionService) updateExisting(ctx context.Context, match *domain.DuplicateMatch, targetContactID string, segmentIDs []string) (*domain.ResolutionResult, error) {
	target := match.Existing
	if targetContactID != "" {
		fetched, err := s.repo.GetContactByID(ctx, targetContactID)
		if err != nil {
			var notFound *domain.ErrContactNotFound
			if errors.As(err, &notFound) {
				return nil, &domain.InvalidResolutionError{Message: fmt.Sprintf("target contact not found: %s", targetContactID)}
			}
			return nil, fmt.Errorf("failed to get target contact: %w", err)
		}
		target = fetched
	}
	if target == nil {
		return nil, &domain.InvalidResolutionError{Message: "update requires an existing contact or target_contact_id"}
	}

	candidate := match.Candidate
	target.Name = candidate.Name
	if candidate.Status != "" {
		target.Status = candidate.Status
	}
	if candidate.Comment != nil {
		target.Comment = candidate.Comment
	}

	if email := candidate.NormalizedEmail(); email != nil {
		// Re-check ownership immediately before the write to close the
		// race window between detection and resolution.
		owner, err := s.repo.GetContactByEmail(ctx, *email)
		if err != nil {
			var notFound *domain.ErrContactNotFound
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to check email ownership: %w", err)
			}
			target.Email = &domain.NullableString{String: *email}
		} else if owner.ID == target.ID {
			target.Email = &domain.NullableString{String: *email}
		}
	}

	target.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateContact(ctx, target); err != nil {
		s.logger.WithField("contact_id", target.ID).Error(fmt.Sprintf("Failed to update contact: %v", err))
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	if len(segmentIDs) > 0 {
		if err := s.repo.AddToSegments(ctx, target.ID, segmentIDs); err != nil {
			return nil, fmt.Errorf("contact updated but segment assignment failed: %w", err)
		}
	}

	return &domain.ResolutionResult{
		Action:  domain.ResolutionActionUpdate,
		Contact: target,
	}, nil
}

// forceCreate creates a brand-new contact despite the collision by
// deriving synthetic unique phone/email values. The suffix combines the
// millisecond timestamp with a process-wide counter, so two force-creates
// in the same millisecond still produce distinct values.
func (s *ResolutionService) forceCreate(ctx context.Context, match *domain.DuplicateMatch, segmentIDs []string) (*domain.ResolutionResult, error) {
	candidate := match.Candidate
	now := time.Now().UTC()
	suffix := fmt.Sprintf("%d_%d", now.UnixMilli(), atomic.AddUint64(&s.suffixCounter, 1))

	contact := candidate.ToContact(now)
	contact.Phone = candidate.Phone + "_" + suffix
	if email := candidate.NormalizedEmail(); email != nil {
		contact.Email = &domain.NullableString{String: syntheticEmail(*email, suffix)}
	}

	if err := s.repo.CreateContact(ctx, contact); err != nil {
		s.logger.WithField("phone", contact.Phone).Error(fmt.Sprintf("Failed to force-create contact: %v", err))
		return nil, fmt.Errorf("failed to force-create contact: %w", err)
	}

	if len(segmentIDs) > 0 {
		if err := s.repo.AddToSegments(ctx, contact.ID, segmentIDs); err != nil {
			return nil, fmt.Errorf("contact created but segment assignment failed: %w", err)
		}
	}

	return &domain.ResolutionResult{
		Action:  domain.ResolutionActionForceCreate,
		Contact: contact,
		Created: true,
	}, nil
}

// syntheticEmail suffixes the local part: local_suffix@domain
func syntheticEmail(email, suffix string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email + "_" + suffix
	}
	return email[:at] + "_" + suffix + email[at:]
}
