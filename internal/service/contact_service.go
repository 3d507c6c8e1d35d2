package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Contactory/contactory/internal/domain"
	"github.com/Contactory/contactory/pkg/logger"
)

type ContactService struct {
	repo   domain.ContactRepository
	logger logger.Logger
}

func NewContactService(repo domain.ContactRepository, logger logger.Logger) *ContactService {
	return &ContactService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ContactService) GetContactByID(ctx context.Context, id string) (*domain.Contact, error) {
	contact, err := s.repo.GetContactByID(ctx, id)
	if err != nil {
		var notFound *domain.ErrContactNotFound
		if errors.As(err, &notFound) {
			return nil, err
		}
		s.logger.WithField("contact_id", id).Error(fmt.Sprintf("Failed to get contact: %v", err))
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

func (s *ContactService) GetContacts(ctx context.Context, req *domain.GetContactsRequest) (*domain.GetContactsResponse, error) {
	response, err := s.repo.GetContacts(ctx, req)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get contacts: %v", err))
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	return response, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	if err := s.repo.DeleteContact(ctx, id); err != nil {
		var notFound *domain.ErrContactNotFound
		if errors.As(err, &notFound) {
			return err
		}
		s.logger.WithField("contact_id", id).Error(fmt.Sprintf("Failed to delete contact: %v", err))
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
