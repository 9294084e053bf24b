package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/tasteofindiazambia/backend/entity"
	"github.com/tasteofindiazambia/backend/repository"
	"github.com/tasteofindiazambia/backend/utils"
	"gorm.io/gorm"
)

var ErrReservationNotFound = errors.New("reservation not found")

type ReservationService struct {
	Repo     *repository.ReservationRepository
	RestRepo *repository.RestaurantRepository
}

func NewReservationService(repo *repository.ReservationRepository, restRepo *repository.RestaurantRepository) *ReservationService {
	return &ReservationService{Repo: repo, RestRepo: restRepo}
}

type CreateReservationInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	RestaurantID    uint
	DateTime        time.Time
	PartySize       int
	Occasion        string
	SpecialRequests string
}

func (s *ReservationService) Create(in *CreateReservationInput) (*entity.Reservation, error) {
	switch {
	case in.CustomerName == "":
		return nil, fmt.Errorf("%w: customer_name is required", ErrValidation)
	case in.CustomerPhone == "":
		return nil, fmt.Errorf("%w: customer_phone is required", ErrValidation)
	case in.RestaurantID == 0:
		return nil, fmt.Errorf("%w: restaurant_id is required", ErrValidation)
	case in.DateTime.IsZero():
		return nil, fmt.Errorf("%w: date_time is required", ErrValidation)
	case in.PartySize <= 0:
		return nil, fmt.Errorf("%w: party_size must be greater than zero", ErrValidation)
	}

	if _, err := s.RestRepo.GetActive(in.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	res := &entity.Reservation{
		ReservationNumber: utils.NewReservationNumber(time.Now()),
		CustomerName:      in.CustomerName,
		CustomerPhone:     in.CustomerPhone,
		CustomerEmail:     in.CustomerEmail,
		DateTime:          in.DateTime,
		PartySize:         in.PartySize,
		Status:            entity.ReservationPending,
		Occasion:          in.Occasion,
		SpecialRequests:   in.SpecialRequests,
		RestaurantID:      in.RestaurantID,
	}
	if err := s.Repo.Create(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) List(restaurantID uint, status string, page, limit int) ([]entity.Reservation, int64, error) {
	return s.Repo.List(restaurantID, status, page, limit)
}

func (s *ReservationService) UpdateStatus(id uint, status string) (*entity.Reservation, error) {
	switch status {
	case entity.ReservationPending, entity.ReservationConfirmed,
		entity.ReservationCancelled, entity.ReservationCompleted:
	default:
		return nil, fmt.Errorf("%w: unknown reservation status %q", ErrValidation, status)
	}

	affected, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrReservationNotFound
	}
	return s.Repo.Get(id)
}
