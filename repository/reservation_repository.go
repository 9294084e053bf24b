package repository

import (
	"github.com/tasteofindiazambia/backend/entity"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

func (r *ReservationRepository) Get(id uint) (*entity.Reservation, error) {
	var out entity.Reservation
	if err := r.DB.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReservationRepository) List(restaurantID uint, status string, page, limit int) ([]entity.Reservation, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Reservation{})
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Reservation
	err := q.Session(&gorm.Session{}).
		Order("date_time").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

func (r *ReservationRepository) UpdateStatus(id uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Reservation{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}
