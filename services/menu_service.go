package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/tasteofindiazambia/backend/entity"
	"github.com/tasteofindiazambia/backend/repository"
	"gorm.io/gorm"
)

// MenuService serves the public menu and the admin menu CRUD. When a
// redis client is configured the assembled menu is cached per
// restaurant and invalidated on every mutation.
type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
	Cache    *redis.Client // optional
	TTL      time.Duration
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository, cache *redis.Client, ttl time.Duration) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo, Cache: cache, TTL: ttl}
}

type MenuCategoryView struct {
	entity.MenuCategory
	Items []entity.MenuItem `json:"items"`
}

type MenuView struct {
	RestaurantID uint               `json:"restaurantId"`
	Categories   []MenuCategoryView `json:"categories"`
}

func menuCacheKey(restaurantID uint) string {
	return "menu:" + strconv.FormatUint(uint64(restaurantID), 10)
}

// FullMenu returns the customer-facing menu: available items grouped by
// category. Unknown or inactive restaurants are an error, never an
// empty menu, so a bogus id cannot end up cached.
func (s *MenuService) FullMenu(ctx context.Context, restaurantID uint) (*MenuView, error) {
	if _, err := s.RestRepo.GetActive(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, menuCacheKey(restaurantID)).Bytes(); err == nil {
			var view MenuView
			if err := json.Unmarshal(raw, &view); err == nil {
				return &view, nil
			}
		}
	}

	categories, err := s.Repo.ListCategories(restaurantID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListItems(restaurantID, true)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uint][]entity.MenuItem, len(categories))
	for _, it := range items {
		byCategory[it.MenuCategoryID] = append(byCategory[it.MenuCategoryID], it)
	}

	view := &MenuView{RestaurantID: restaurantID}
	for _, c := range categories {
		view.Categories = append(view.Categories, MenuCategoryView{
			MenuCategory: c,
			Items:        byCategory[c.ID],
		})
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(view); err == nil {
			if err := s.Cache.Set(ctx, menuCacheKey(restaurantID), raw, s.TTL).Err(); err != nil {
				logrus.WithError(err).Warn("menu cache write failed")
			}
		}
	}
	return view, nil
}

func (s *MenuService) invalidate(ctx context.Context, restaurantID uint) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, menuCacheKey(restaurantID)).Err(); err != nil {
		logrus.WithError(err).Warn("menu cache invalidation failed")
	}
}

// ---------------- Admin CRUD ----------------

func (s *MenuService) CreateCategory(ctx context.Context, c *entity.MenuCategory) error {
	if err := s.Repo.CreateCategory(c); err != nil {
		return err
	}
	s.invalidate(ctx, c.RestaurantID)
	return nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, id, restaurantID uint, updates map[string]any) (int64, error) {
	affected, err := s.Repo.UpdateCategory(id, updates)
	if err == nil && affected > 0 {
		s.invalidate(ctx, restaurantID)
	}
	return affected, err
}

func (s *MenuService) DeleteCategory(ctx context.Context, id, restaurantID uint) (int64, error) {
	affected, err := s.Repo.DeleteCategory(id)
	if err == nil && affected > 0 {
		s.invalidate(ctx, restaurantID)
	}
	return affected, err
}

func (s *MenuService) ListItems(restaurantID uint, availableOnly bool) ([]entity.MenuItem, error) {
	return s.Repo.ListItems(restaurantID, availableOnly)
}

func (s *MenuService) GetItem(id uint) (*entity.MenuItem, error) {
	return s.Repo.GetItem(id)
}

func (s *MenuService) CreateItem(ctx context.Context, m *entity.MenuItem) error {
	if err := s.Repo.CreateItem(m); err != nil {
		return err
	}
	s.invalidate(ctx, m.RestaurantID)
	return nil
}

func (s *MenuService) UpdateItem(ctx context.Context, id, restaurantID uint, updates map[string]any) (int64, error) {
	affected, err := s.Repo.UpdateItem(id, updates)
	if err == nil && affected > 0 {
		s.invalidate(ctx, restaurantID)
	}
	return affected, err
}

func (s *MenuService) DeleteItem(ctx context.Context, id, restaurantID uint) (int64, error) {
	affected, err := s.Repo.DeleteItem(id)
	if err == nil && affected > 0 {
		s.invalidate(ctx, restaurantID)
	}
	return affected, err
}
