package services

import (
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tasteofindiazambia/backend/entity"
	"github.com/tasteofindiazambia/backend/repository"
)

// CustomerService keeps per-customer running aggregates (order count,
// spend, loyalty points). Phone is the dedup key, email the fallback.
type CustomerService struct {
	Repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

// RecordOrder folds a completed order into the customer's aggregates.
// The update is a single SQL statement, so two concurrent orders for the
// same customer both land; the read-check only decides between update
// and first-time insert, and an insert lost to a concurrent creator
// falls back to the update path.
func (s *CustomerService) RecordOrder(name, phone, email string, amount float64, when time.Time) error {
	phone = strings.TrimSpace(phone)
	email = strings.ToLower(strings.TrimSpace(email))
	points := int(math.Floor(amount))

	affected, err := s.Repo.ApplyOrderStats(phone, "phone", amount, points, when)
	if err != nil {
		return err
	}
	if affected == 0 && email != "" {
		affected, err = s.Repo.ApplyOrderStats(email, "email", amount, points, when)
		if err != nil {
			return err
		}
		// the customer changed numbers; adopt the new one so the next
		// order matches on phone again instead of forking a record
		if affected > 0 && phone != "" {
			if uerr := s.Repo.UpdatePhone(email, phone); uerr != nil {
				logrus.WithError(uerr).WithField("email", email).
					Warn("customer phone update failed")
			}
		}
	}
	if affected > 0 {
		return nil
	}

	c := &entity.Customer{
		Name:              strings.TrimSpace(name),
		Phone:             phone,
		Email:             email,
		TotalOrders:       1,
		TotalSpent:        amount,
		AverageOrderValue: amount,
		LoyaltyPoints:     points,
		LastOrderDate:     &when,
	}
	if err := s.Repo.Create(c); err != nil {
		// unique collision on phone: someone created the record first
		affected, uerr := s.Repo.ApplyOrderStats(phone, "phone", amount, points, when)
		if uerr == nil && affected > 0 {
			return nil
		}
		return err
	}
	return nil
}

func (s *CustomerService) Get(id uint) (*entity.Customer, error) {
	return s.Repo.Get(id)
}

func (s *CustomerService) List(search string, page, limit int) ([]entity.Customer, int64, error) {
	return s.Repo.List(search, page, limit)
}
