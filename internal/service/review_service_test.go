package service

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/catalog-next/internal/cache"
	"github.com/catalog-next/internal/config"
	"github.com/catalog-next/internal/models"
	"github.com/catalog-next/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type schedulerStub struct {
	enabled bool
	err     error
	queued  []uint
}

func (s *schedulerStub) Enabled() bool { return s.enabled }

func (s *schedulerStub) EnqueueProductStatsRefresh(productID uint) error {
	if s.err != nil {
		return s.err
	}
	s.queued = append(s.queued, productID)
	return nil
}

func TestSubmitReviewFlow(t *testing.T) {
	f := newCatalogFixture(t, 16)
	owner := seedUser(t, f.db, "owner@example.com", "secret123")
	stranger := seedUser(t, f.db, "stranger@example.com", "secret123")
	product := seedProduct(t, f.db, "Headphones", true, "50.00", "Black")
	item := seedOrderItem(t, f.db, owner.ID, product, true, 2)
	unpaid := seedOrderItem(t, f.db, owner.ID, product, false, 1)

	_, err := f.reviews.SubmitReview(SubmitReviewInput{UserID: owner.ID, OrderItemID: item.ID, Rating: 6, Review: "wow"})
	assert.ErrorIs(t, err, ErrReviewInvalid)
	_, err = f.reviews.SubmitReview(SubmitReviewInput{UserID: owner.ID, OrderItemID: item.ID, Rating: 4, Review: "   "})
	assert.ErrorIs(t, err, ErrReviewInvalid)
	_, err = f.reviews.SubmitReview(SubmitReviewInput{UserID: stranger.ID, OrderItemID: item.ID, Rating: 4, Review: "mine?"})
	assert.ErrorIs(t, err, ErrOrderItemNotFound)
	_, err = f.reviews.SubmitReview(SubmitReviewInput{UserID: owner.ID, OrderItemID: unpaid.ID, Rating: 4, Review: "early"})
	assert.ErrorIs(t, err, ErrOrderNotPaid)

	reviewed, err := f.reviews.SubmitReview(SubmitReviewInput{UserID: owner.ID, OrderItemID: item.ID, Rating: 4, Review: " solid "})
	require.NoError(t, err)
	require.NotNil(t, reviewed.ReviewedAt)
	assert.Equal(t, "solid", reviewed.Review)

	_, err = f.reviews.SubmitReview(SubmitReviewInput{UserID: owner.ID, OrderItemID: item.ID, Rating: 1, Review: "again"})
	assert.ErrorIs(t, err, ErrReviewAlreadySubmitted)

	// 未启用队列时统计同步刷新
	var refreshed models.Product
	require.NoError(t, f.db.First(&refreshed, product.ID).Error)
	assert.Equal(t, 4.0, refreshed.Rating)
	assert.Equal(t, 1, refreshed.ReviewCount)
	assert.Equal(t, 2, refreshed.SoldCount)

	feed, err := f.reviews.RecentReviews(product.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.NotNil(t, feed[0].Order)
	require.NotNil(t, feed[0].Order.User)
	assert.Equal(t, owner.ID, feed[0].Order.User.ID)
}

func TestSubmitReviewUsesSchedulerWhenEnabled(t *testing.T) {
	db := openServiceTestDB(t)
	productRepo := repository.NewProductRepository(db)
	scheduler := &schedulerStub{enabled: true}
	reviews := NewReviewService(repository.NewOrderItemRepository(db), productRepo, scheduler, 10, 0)

	user := seedUser(t, db, "queued@example.com", "secret123")
	product := seedProduct(t, db, "Queued", true, "5.00", "Default")
	item := seedOrderItem(t, db, user.ID, product, true, 1)

	_, err := reviews.SubmitReview(SubmitReviewInput{UserID: user.ID, OrderItemID: item.ID, Rating: 2, Review: "meh"})
	require.NoError(t, err)
	assert.Equal(t, []uint{product.ID}, scheduler.queued)

	var untouched models.Product
	require.NoError(t, db.First(&untouched, product.ID).Error)
	assert.Equal(t, 0, untouched.ReviewCount, "stats are refreshed by the worker, not inline")

	scheduler.err = errors.New("redis down")
	second := seedOrderItem(t, db, user.ID, product, true, 1)
	_, err = reviews.SubmitReview(SubmitReviewInput{UserID: user.ID, OrderItemID: second.ID, Rating: 4, Review: "better"})
	require.NoError(t, err)
	require.NoError(t, db.First(&untouched, product.ID).Error)
	assert.Equal(t, 2, untouched.ReviewCount, "enqueue failure falls back to inline refresh")
	assert.Equal(t, 3.0, untouched.Rating)
}

func useMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	require.NoError(t, cache.InitRedis(&config.RedisConfig{Enabled: true, Host: mr.Host(), Port: port}))
	t.Cleanup(func() { _ = cache.Close() })
	return mr
}

func TestRecentReviewsServesFromCache(t *testing.T) {
	mr := useMiniRedis(t)
	db := openServiceTestDB(t)
	itemRepo := repository.NewOrderItemRepository(db)
	reviews := NewReviewService(itemRepo, repository.NewProductRepository(db), nil, 10, time.Minute)

	user := seedUser(t, db, "cached@example.com", "secret123")
	product := seedProduct(t, db, "Cached", true, "5.00", "Default")
	first := seedOrderItem(t, db, user.ID, product, true, 1)
	_, err := reviews.SubmitReview(SubmitReviewInput{UserID: user.ID, OrderItemID: first.ID, Rating: 5, Review: "great"})
	require.NoError(t, err)

	feed, err := reviews.RecentReviews(product.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	key := cache.BuildKey(cache.ReviewFeedKey(product.ID))
	require.True(t, mr.Exists(key), "feed should be written to redis")

	// 绕过服务直接改库，命中缓存时仍返回旧内容
	require.NoError(t, db.Model(&models.OrderItem{}).Where("id = ?", first.ID).Update("review", "edited").Error)
	feed, err = reviews.RecentReviews(product.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "great", feed[0].Review)

	second := seedOrderItem(t, db, user.ID, product, true, 1)
	_, err = reviews.SubmitReview(SubmitReviewInput{UserID: user.ID, OrderItemID: second.ID, Rating: 3, Review: "fine"})
	require.NoError(t, err)
	assert.False(t, mr.Exists(key), "new review should invalidate the feed")

	feed, err = reviews.RecentReviews(product.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.ElementsMatch(t, []string{"edited", "fine"}, []string{feed[0].Review, feed[1].Review})
}

func TestRecentReviewsFallsBackToStoreOnCacheFailure(t *testing.T) {
	mr := useMiniRedis(t)
	db := openServiceTestDB(t)
	reviews := NewReviewService(repository.NewOrderItemRepository(db), repository.NewProductRepository(db), nil, 10, time.Minute)

	user := seedUser(t, db, "fallback@example.com", "secret123")
	product := seedProduct(t, db, "Fallback", true, "5.00", "Default")
	item := seedOrderItem(t, db, user.ID, product, true, 1)
	_, err := reviews.SubmitReview(SubmitReviewInput{UserID: user.ID, OrderItemID: item.ID, Rating: 4, Review: "works"})
	require.NoError(t, err)

	key := cache.BuildKey(cache.ReviewFeedKey(product.ID))
	require.NoError(t, mr.Set(key, "{not json"))
	feed, err := reviews.RecentReviews(product.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "works", feed[0].Review)

	mr.SetError("ERR cache unavailable")
	feed, err = reviews.RecentReviews(product.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "works", feed[0].Review)
	mr.SetError("")
}
