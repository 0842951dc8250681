package services

import (
	"kpoller/internal/models"
	"kpoller/internal/repository"
)

type SubscriberService interface {
	Register(email string, active bool) (*models.Subscriber, error)
	GetActiveSubscribers() ([]models.Subscriber, error)
	GetSubscriberByEmail(email string) (*models.Subscriber, error)
	GetUnnotifiedSubscribers(box *models.Box) ([]models.Subscriber, error)
	RecordNotification(subscriber *models.Subscriber, box *models.Box) error
}

func NewSubscriberService(subscriberRepo repository.SubscriberRepository) SubscriberService {
	return &subscriberServiceImpl{subscriberRepo: subscriberRepo}
}

type subscriberServiceImpl struct {
	subscriberRepo repository.SubscriberRepository
}

func (s *subscriberServiceImpl) Register(email string, active bool) (*models.Subscriber, error) {
	subscriber := &models.Subscriber{Email: email, Active: active}
	if err := s.subscriberRepo.Create(subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

func (s *subscriberServiceImpl) GetActiveSubscribers() ([]models.Subscriber, error) {
	return s.subscriberRepo.FindActive()
}

func (s *subscriberServiceImpl) GetSubscriberByEmail(email string) (*models.Subscriber, error) {
	return s.subscriberRepo.FindByEmail(email)
}

func (s *subscriberServiceImpl) GetUnnotifiedSubscribers(box *models.Box) ([]models.Subscriber, error) {
	return s.subscriberRepo.FindUnnotified(box)
}

func (s *subscriberServiceImpl) RecordNotification(subscriber *models.Subscriber, box *models.Box) error {
	return s.subscriberRepo.MarkNotified(subscriber, box)
}
