package service

import (
	"github.com/catalog-next/internal/models"
	"github.com/catalog-next/internal/repository"
)

// FavoriteService 商品收藏服务
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	pageSize     int
}

// NewFavoriteService 创建收藏服务
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository, pageSize int) *FavoriteService {
	if pageSize <= 0 {
		pageSize = 16
	}
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
		pageSize:     pageSize,
	}
}

// Favor 收藏商品，重复收藏视为成功
func (s *FavoriteService) Favor(userID, productID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if !product.OnSale {
		return ErrProductNotOnSale
	}
	return s.favoriteRepo.Add(userID, productID)
}

// Disfavor 取消收藏，未收藏视为成功
func (s *FavoriteService) Disfavor(userID, productID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	return s.favoriteRepo.Remove(userID, productID)
}

// IsFavorited 是否已收藏
func (s *FavoriteService) IsFavorited(userID, productID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.favoriteRepo.Exists(userID, productID)
}

// FavoritedIDs 批量查询收藏状态
func (s *FavoriteService) FavoritedIDs(userID uint, productIDs []uint) (map[uint]bool, error) {
	return s.favoriteRepo.FavoritedIDs(userID, productIDs)
}

// ListFavorites 收藏列表，按收藏时间倒序
func (s *FavoriteService) ListFavorites(userID uint, page int) ([]models.Product, int64, int, error) {
	if userID == 0 {
		return nil, 0, 0, ErrUnauthenticated
	}
	page = normalizePage(page)
	products, total, err := s.favoriteRepo.ListProducts(repository.FavoriteListFilter{
		UserID:   userID,
		Page:     page,
		PageSize: s.pageSize,
	})
	if err != nil {
		return nil, 0, 0, err
	}
	return products, total, page, nil
}

// PageSize 固定分页大小
func (s *FavoriteService) PageSize() int {
	return s.pageSize
}
