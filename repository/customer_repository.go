package repository

import (
	"time"

	"github.com/tasteofindiazambia/backend/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) FindByPhone(phone string) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.Where("phone = ?", phone).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Get(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(search string, page, limit int) ([]entity.Customer, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Customer{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR phone LIKE ? OR email LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Customer
	err := q.Session(&gorm.Session{}).
		Order("last_order_date DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.DB.Create(c).Error
}

// UpdatePhone moves the record found by email onto a new phone number.
func (r *CustomerRepository) UpdatePhone(email, phone string) error {
	return r.DB.Model(&entity.Customer{}).Where("email = ?", email).Update("phone", phone).Error
}

// ApplyOrderStats folds one order into the customer aggregates as a single
// UPDATE. Increments run inside the database so concurrent orders for the
// same customer cannot lose updates. Returns the affected-rows count; zero
// means no customer with that key exists yet.
func (r *CustomerRepository) ApplyOrderStats(key, keyColumn string, amount float64, points int, when time.Time) (int64, error) {
	res := r.DB.Model(&entity.Customer{}).
		Where(keyColumn+" = ?", key).
		Updates(map[string]any{
			"total_orders":        gorm.Expr("total_orders + 1"),
			"total_spent":         gorm.Expr("total_spent + ?", amount),
			"average_order_value": gorm.Expr("(total_spent + ?) / (total_orders + 1)", amount),
			"loyalty_points":      gorm.Expr("loyalty_points + ?", points),
			"last_order_date":     when,
		})
	return res.RowsAffected, res.Error
}
