package provider

import (
	"github.com/catalog-next/internal/cache"
	"github.com/catalog-next/internal/config"
	"github.com/catalog-next/internal/logger"
	"github.com/catalog-next/internal/models"
	"github.com/catalog-next/internal/queue"
	"github.com/catalog-next/internal/repository"
	"github.com/catalog-next/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	FavoriteRepo  repository.FavoriteRepository
	OrderItemRepo repository.OrderItemRepository
	CouponRepo    repository.CouponRepository

	// Services
	UserAuthService *service.UserAuthService
	ProductService  *service.ProductService
	FavoriteService *service.FavoriteService
	ReviewService   *service.ReviewService
	CouponService   *service.CouponService
}

// NewContainer 初始化容器，使用全局数据库连接并初始化缓存与队列客户端
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient = nil
	}
	return NewContainerWithDB(cfg, models.DB, queueClient)
}

// NewContainerWithDB 基于指定数据库连接装配容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) *Container {
	if queueClient == nil {
		queueClient, _ = queue.NewClient(nil)
	}
	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	c.initRepositories(db)
	c.initServices()
	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.FavoriteRepo = repository.NewFavoriteRepository(db)
	c.OrderItemRepo = repository.NewOrderItemRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
}

func (c *Container) initServices() {
	catalog := c.Config.Catalog.Normalize()

	c.UserAuthService = service.NewUserAuthService(c.Config.UserJWT, c.UserRepo)
	c.FavoriteService = service.NewFavoriteService(c.FavoriteRepo, c.ProductRepo, catalog.PageSize)
	c.ReviewService = service.NewReviewService(c.OrderItemRepo, c.ProductRepo, c.QueueClient, catalog.ReviewLimit, catalog.ReviewCacheTTL())
	c.ProductService = service.NewProductService(c.ProductRepo, c.FavoriteService, c.ReviewService, catalog.PageSize)
	c.CouponService = service.NewCouponService(c.CouponRepo)
}
