package repository

import (
	"github.com/tasteofindiazambia/backend/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) List(activeOnly bool) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	q := r.DB.Model(&entity.Restaurant{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Order("id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// GetActive returns the restaurant only when it exists and is active.
func (r *RestaurantRepository) GetActive(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("id = ? AND active = ?", id, true).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}
