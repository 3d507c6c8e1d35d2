package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Contactory/contactory/internal/domain"
	"github.com/Contactory/contactory/pkg/logger"
)

type SegmentService struct {
	repo   domain.SegmentRepository
	logger logger.Logger
}

func NewSegmentService(repo domain.SegmentRepository, logger logger.Logger) *SegmentService {
	return &SegmentService{
		repo:   repo,
		logger: logger,
	}
}

func (s *SegmentService) GetSegments(ctx context.Context) ([]*domain.Segment, error) {
	segments, err := s.repo.GetSegments(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get segments: %v", err))
		return nil, fmt.Errorf("failed to get segments: %w", err)
	}
	return segments, nil
}

func (s *SegmentService) GetSegmentByID(ctx context.Context, id string) (*domain.Segment, error) {
	segment, err := s.repo.GetSegmentByID(ctx, id)
	if err != nil {
		var notFound *domain.ErrSegmentNotFound
		if errors.As(err, &notFound) {
			return nil, err
		}
		s.logger.WithField("segment_id", id).Error(fmt.Sprintf("Failed to get segment: %v", err))
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}
	return segment, nil
}

func (s *SegmentService) CreateSegment(ctx context.Context, req *domain.CreateSegmentRequest) (*domain.Segment, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	now := time.Now().UTC()
	segment := &domain.Segment{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != "" {
		segment.Description = &domain.NullableString{String: req.Description}
	} else {
		segment.Description = &domain.NullableString{IsNull: true}
	}

	if err := s.repo.CreateSegment(ctx, segment); err != nil {
		s.logger.WithField("name", req.Name).Error(fmt.Sprintf("Failed to create segment: %v", err))
		return nil, fmt.Errorf("failed to create segment: %w", err)
	}
	return segment, nil
}

func (s *SegmentService) UpdateSegment(ctx context.Context, req *domain.UpdateSegmentRequest) (*domain.Segment, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	segment, err := s.repo.GetSegmentByID(ctx, req.ID)
	if err != nil {
		var notFound *domain.ErrSegmentNotFound
		if errors.As(err, &notFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}

	segment.Name = req.Name
	if req.Description != "" {
		segment.Description = &domain.NullableString{String: req.Description}
	}
	segment.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateSegment(ctx, segment); err != nil {
		s.logger.WithField("segment_id", req.ID).Error(fmt.Sprintf("Failed to update segment: %v", err))
		return nil, fmt.Errorf("failed to update segment: %w", err)
	}
	return segment, nil
}

func (s *SegmentService) DeleteSegment(ctx context.Context, id string) error {
	if err := s.repo.DeleteSegment(ctx, id); err != nil {
		var notFound *domain.ErrSegmentNotFound
		if errors.As(err, &notFound) {
			return err
		}
		s.logger.WithField("segment_id", id).Error(fmt.Sprintf("Failed to delete segment: %v", err))
		return fmt.Errorf("failed to delete segment: %w", err)
	}
	return nil
}
