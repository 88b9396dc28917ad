package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/catalog-next/internal/cache"
	"github.com/catalog-next/internal/constants"
	"github.com/catalog-next/internal/logger"
	"github.com/catalog-next/internal/models"
	"github.com/catalog-next/internal/repository"
)

// StatsRefreshScheduler 统计刷新任务调度器
type StatsRefreshScheduler interface {
	Enabled() bool
	EnqueueProductStatsRefresh(productID uint) error
}

// ReviewService 商品评价服务
type ReviewService struct {
	itemRepo    repository.OrderItemRepository
	productRepo repository.ProductRepository
	scheduler   StatsRefreshScheduler
	limit       int
	cacheTTL    time.Duration
}

// NewReviewService 创建评价服务
func NewReviewService(itemRepo repository.OrderItemRepository, productRepo repository.ProductRepository, scheduler StatsRefreshScheduler, limit int, cacheTTL time.Duration) *ReviewService {
	if limit <= 0 {
		limit = 10
	}
	return &ReviewService{
		itemRepo:    itemRepo,
		productRepo: productRepo,
		scheduler:   scheduler,
		limit:       limit,
		cacheTTL:    cacheTTL,
	}
}

// RecentReviews 商品最近评价，优先读取缓存，缓存异常时回源
func (s *ReviewService) RecentReviews(productID uint) ([]models.OrderItem, error) {
	ctx := context.Background()
	key := cache.ReviewFeedKey(productID)

	var cached []models.OrderItem
	hit, err := cache.GetJSON(ctx, key, &cached)
	if err != nil {
		logger.Warnw("review_feed_cache_get_failed", "product_id", productID, "error", err)
	}
	if hit && err == nil {
		return cached, nil
	}

	items, err := s.itemRepo.ListRecentReviews(productID, s.limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.OrderItem{}
	}
	if err := cache.SetJSON(ctx, key, items, s.cacheTTL); err != nil {
		logger.Warnw("review_feed_cache_set_failed", "product_id", productID, "error", err)
	}
	return items, nil
}

// SubmitReviewInput 提交评价输入
type SubmitReviewInput struct {
	UserID      uint
	OrderItemID uint
	Rating      int
	Review      string
}

// SubmitReview 对已支付订单中的订单项提交评价，每个订单项只能评价一次
func (s *ReviewService) SubmitReview(input SubmitReviewInput) (*models.OrderItem, error) {
	if input.UserID == 0 {
		return nil, ErrUnauthenticated
	}
	review := strings.TrimSpace(input.Review)
	if input.Rating < constants.ReviewRatingMin || input.Rating > constants.ReviewRatingMax || review == "" {
		return nil, ErrReviewInvalid
	}

	item, err := s.itemRepo.GetWithOrder(input.OrderItemID)
	if err != nil {
		return nil, err
	}
	// 他人的订单项按不存在处理，避免泄露订单信息
	if item == nil || item.Order == nil || item.Order.UserID != input.UserID {
		return nil, ErrOrderItemNotFound
	}
	if !item.Order.IsPaid() {
		return nil, ErrOrderNotPaid
	}
	if item.ReviewedAt != nil {
		return nil, ErrReviewAlreadySubmitted
	}

	now := time.Now()
	affected, err := s.itemRepo.SubmitReview(item.ID, input.Rating, review, now)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrReviewAlreadySubmitted
	}
	if err := s.itemRepo.SyncOrderReviewed(item.OrderID); err != nil {
		logger.Warnw("review_sync_order_reviewed_failed", "order_id", item.OrderID, "error", err)
	}

	rating := input.Rating
	item.Rating = &rating
	item.Review = review
	item.ReviewedAt = &now

	if err := cache.Del(context.Background(), cache.ReviewFeedKey(item.ProductID)); err != nil {
		logger.Warnw("review_feed_cache_del_failed", "product_id", item.ProductID, "error", err)
	}
	s.scheduleStatsRefresh(item.ProductID)
	return item, nil
}

// RefreshProductStats 重新计算商品评分、评价数与销量
func (s *ReviewService) RefreshProductStats(productID uint) error {
	stats, err := s.itemRepo.ReviewStats(productID)
	if err != nil {
		return err
	}
	sold, err := s.itemRepo.SoldCount(productID)
	if err != nil {
		return err
	}
	rating := math.Round(stats.AvgRating*100) / 100
	return s.productRepo.UpdateStats(productID, rating, stats.ReviewCount, sold)
}

func (s *ReviewService) scheduleStatsRefresh(productID uint) {
	if s.scheduler != nil && s.scheduler.Enabled() {
		err := s.scheduler.EnqueueProductStatsRefresh(productID)
		if err == nil {
			return
		}
		logger.Warnw("review_stats_refresh_enqueue_failed", "product_id", productID, "error", err)
	}
	if err := s.RefreshProductStats(productID); err != nil {
		logger.Warnw("review_stats_refresh_inline_failed", "product_id", productID, "error", err)
	}
}
