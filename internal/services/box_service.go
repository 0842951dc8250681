package services

import (
	"kpoller/internal/models"
	"kpoller/internal/repository"
)

type BoxService interface {
	GetBoxByID(id uint) (*models.Box, error)
	GetBox(name, month string) (*models.Box, error)
	GetBoxes() ([]models.Box, error)
	IsNewBox(box *models.Box) (bool, error)
	DeleteBox(id uint) error
}

func NewBoxService(boxRepo repository.BoxRepository) BoxService {
	return &boxServiceImpl{boxRepo: boxRepo}
}

type boxServiceImpl struct {
	boxRepo repository.BoxRepository
}

// GetBoxByID returns (nil, nil) when the id is unknown.
func (s *boxServiceImpl) GetBoxByID(id uint) (*models.Box, error) {
	return s.boxRepo.FindByID(id)
}

func (s *boxServiceImpl) GetBox(name, month string) (*models.Box, error) {
	return s.boxRepo.FindByNameAndMonth(name, month)
}

func (s *boxServiceImpl) GetBoxes() ([]models.Box, error) {
	return s.boxRepo.FindAll()
}

func (s *boxServiceImpl) IsNewBox(box *models.Box) (bool, error) {
	return s.boxRepo.IsNew(box)
}

func (s *boxServiceImpl) DeleteBox(id uint) error {
	return s.boxRepo.Delete(id)
}
