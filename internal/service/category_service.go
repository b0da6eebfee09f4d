package service

import (
	"context"
	"strings"
	"time"

	"github.com/eshop-next/internal/cache"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"
)

const (
	categoryListCacheKey = "catalog:categories"
	categoryListCacheTTL = 5 * time.Minute
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CreateCategoryInput 创建分类输入
type CreateCategoryInput struct {
	Name      string
	SortOrder int
}

// List 获取分类列表，Redis 启用时缓存结果
func (s *CategoryService) List() ([]models.Category, error) {
	ctx := context.Background()
	var cached []models.Category
	hit, err := cache.GetJSON(ctx, categoryListCacheKey, &cached)
	if err != nil {
		logger.Warnw("category_cache_read_failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	categories, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, categoryListCacheKey, categories, categoryListCacheTTL); err != nil {
		logger.Warnw("category_cache_write_failed", "error", err)
	}
	return categories, nil
}

// Create 创建分类并失效列表缓存
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	category := models.Category{
		Name:      name,
		SortOrder: input.SortOrder,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	if err := cache.Del(context.Background(), categoryListCacheKey); err != nil {
		logger.Warnw("category_cache_invalidate_failed", "error", err)
	}
	return &category, nil
}
