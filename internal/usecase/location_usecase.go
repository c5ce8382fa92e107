package usecase

import (
	"errors"

	"blogium/internal/entity"
	"blogium/internal/repo/persistent"
	"blogium/pkg/logger"
)

type LocationInput struct {
	Name        string
	IsPublished bool
}

type LocationUseCase interface {
	List() ([]*entity.Location, error)
	Create(in LocationInput) (*entity.Location, error)
	Update(id string, in LocationInput) (*entity.Location, error)
	Delete(id string) error
}

type locationUseCase struct {
	locationRepo persistent.LocationRepository
	logger       *logger.Logger
}

func NewLocationUseCase(locationRepo persistent.LocationRepository, logger *logger.Logger) LocationUseCase {
	return &locationUseCase{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (uc *locationUseCase) List() ([]*entity.Location, error) {
	return uc.locationRepo.List(true)
}

func (uc *locationUseCase) Create(in LocationInput) (*entity.Location, error) {
	location := &entity.Location{
		Name:        in.Name,
		IsPublished: in.IsPublished,
	}

	if err := uc.locationRepo.Create(location); err != nil {
		uc.logger.Error("Failed to create location: %v", err)
		return nil, err
	}
	return location, nil
}

func (uc *locationUseCase) Update(id string, in LocationInput) (*entity.Location, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	location.Name = in.Name
	location.IsPublished = in.IsPublished

	if err := uc.locationRepo.Update(location); err != nil {
		uc.logger.Error("Failed to update location: %v", err)
		return nil, err
	}
	return location, nil
}

// Delete removes the location; referencing posts keep existing with the
// reference cleared.
func (uc *locationUseCase) Delete(id string) error {
	err := uc.locationRepo.Delete(id)
	if errors.Is(err, persistent.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
