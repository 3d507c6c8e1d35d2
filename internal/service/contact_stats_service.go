package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Contactory/contactory/internal/domain"
	"github.com/Contactory/contactory/pkg/logger"
)

// ContactStatsService derives summary counts over contacts and segments.
// Read-only; the three count queries run concurrently.
type ContactStatsService struct {
	repo   domain.ContactRepository
	logger logger.Logger
}

func NewContactStatsService(repo domain.ContactRepository, logger logger.Logger) *ContactStatsService {
	return &ContactStatsService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ContactStatsService) GetContactStats(ctx context.Context) (*domain.ContactStats, error) {
	var (
		total     int
		byStatus  map[domain.ContactStatus]int
		bySegment []*domain.SegmentCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.CountContacts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		byStatus, err = s.repo.CountByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bySegment, err = s.repo.CountBySegment(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get contact stats: %v", err))
		return nil, fmt.Errorf("failed to get contact stats: %w", err)
	}

	stats := &domain.ContactStats{
		Total:     total,
		ByStatus:  make(map[string]int, 3),
		BySegment: bySegment,
	}
	// Every status is present in the response, even at zero.
	for _, status := range []domain.ContactStatus{
		domain.ContactStatusActive,
		domain.ContactStatusInactive,
		domain.ContactStatusPending,
	} {
		stats.ByStatus[string(status)] = byStatus[status]
	}

	return stats, nil
}
