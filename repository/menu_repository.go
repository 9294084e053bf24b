package repository

import (
	"github.com/tasteofindiazambia/backend/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories(restaurantID uint) ([]entity.MenuCategory, error) {
	var out []entity.MenuCategory
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("display_order, id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) CreateCategory(c *entity.MenuCategory) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) UpdateCategory(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.MenuCategory{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) DeleteCategory(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuCategory{}, id)
	return res.RowsAffected, res.Error
}

// ---------------- Items ----------------

func (r *MenuRepository) ListItems(restaurantID uint, availableOnly bool) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	q := r.DB.Where("restaurant_id = ?", restaurantID)
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	err := q.Order("menu_category_id, id").Find(&out).Error
	return out, err
}

// GetItemBasics loads just what order creation needs.
func (r *MenuRepository) GetItemBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, name, price, dynamic_pricing, packaging_price, available, preparation_time, restaurant_id").
		First(&m, id).Error
	return m, err
}

func (r *MenuRepository) GetItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) CreateItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) UpdateItem(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) DeleteItem(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
