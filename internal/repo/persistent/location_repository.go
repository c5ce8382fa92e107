package persistent

import (
	"errors"

	"blogium/internal/entity"
	"blogium/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List(publishedOnly bool) ([]*entity.Location, error)
	Update(location *entity.Location) error
	Delete(id string) error
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(location *entity.Location) error {
	locationModel := ToLocationModel(location)
	if locationModel.ID == "" {
		locationModel.ID = uuid.New().String()
	}
	if err := r.db.Create(locationModel).Error; err != nil {
		return err
	}
	*location = *ToLocationEntity(locationModel)
	return nil
}

func (r *locationRepository) GetByID(id string) (*entity.Location, error) {
	var locationModel model.LocationModel
	if err := r.db.Where("id = ?", id).First(&locationModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToLocationEntity(&locationModel), nil
}

func (r *locationRepository) List(publishedOnly bool) ([]*entity.Location, error) {
	query := r.db.Model(&model.LocationModel{}).Order("name ASC")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var locationModels []model.LocationModel
	if err := query.Find(&locationModels).Error; err != nil {
		return nil, err
	}

	locations := make([]*entity.Location, len(locationModels))
	for i := range locationModels {
		locations[i] = ToLocationEntity(&locationModels[i])
	}
	return locations, nil
}

func (r *locationRepository) Update(location *entity.Location) error {
	locationModel := ToLocationModel(location)
	return r.db.Save(locationModel).Error
}

// Delete clears the location reference on posts instead of deleting them.
func (r *locationRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PostModel{}).Where("location_id = ?", id).Update("location_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.LocationModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
