package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Contactory/contactory/internal/domain"
	"github.com/Contactory/contactory/pkg/logger"
)

// ImportService drives an import batch through duplicate detection,
// partitioning candidates into created, duplicate and errored. The batch
// is processed one candidate at a time, in input order: each row's create
// commits before the next row is detected, so duplicates inside a single
// batch surface as duplicates rather than constraint races.
//
// Detection and resolution are deliberately separate steps: duplicates are
// collected for the caller to decide on, never auto-resolved, and a
// half-completed batch is always a safe state to pause in.
type ImportService struct {
	detector domain.DuplicateDetectionService
	repo     domain.ContactRepository
	logger   logger.Logger
}

func NewImportService(detector domain.DuplicateDetectionService, repo domain.ContactRepository, logger logger.Logger) *ImportService {
	return &ImportService{
		detector: detector,
		repo:     repo,
		logger:   logger,
	}
}

// ImportBatch folds candidates into an ImportOutcome. No row-level
// failure aborts the batch; the returned error is reserved for call-level
// failures.
func (s *ImportService) ImportBatch(ctx context.Context, candidates []*domain.CandidateContact, segmentIDs []string) (*domain.ImportOutcome, error) {
	outcome := domain.NewImportOutcome()

	for i, candidate := range candidates {
		// Row numbers are 1-based in error messages.
		row := i + 1
		if candidate == nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d: missing contact data", row))
			continue
		}

		if err := candidate.Validate(); err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d (name=%q phone=%q): %v", row, candidate.Name, candidate.Phone, err))
			continue
		}

		matches, err := s.detector.DetectDuplicates(ctx, candidate)
		if err != nil {
			s.logger.WithField("row", row).Error(fmt.Sprintf("Failed to detect duplicates: %v", err))
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d (name=%q phone=%q): failed to detect duplicates: %v", row, candidate.Name, candidate.Phone, err))
			continue
		}
		if len(matches) > 0 {
			outcome.Duplicates = append(outcome.Duplicates, matches...)
			continue
		}

		contact := candidate.ToContact(time.Now().UTC())
		if err := s.repo.CreateContact(ctx, contact); err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d (name=%q phone=%q): failed to create contact: %v", row, candidate.Name, candidate.Phone, err))
			continue
		}

		if len(segmentIDs) > 0 {
			if err := s.repo.AddToSegments(ctx, contact.ID, segmentIDs); err != nil {
				s.logger.WithField("contact_id", contact.ID).Error(fmt.Sprintf("Failed to add contact to segments: %v", err))
				outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d (name=%q phone=%q): contact created but segment assignment failed: %v", row, candidate.Name, candidate.Phone, err))
			}
		}

		outcome.Created++
	}

	return outcome, nil
}
