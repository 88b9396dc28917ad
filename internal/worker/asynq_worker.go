package worker

import (
	"context"
	"errors"

	"github.com/catalog-next/internal/logger"
	"github.com/catalog-next/internal/provider"
	"github.com/catalog-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskProductStatsRefresh, c.handleProductStatsRefresh)
}

func (c *Consumer) handleProductStatsRefresh(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_product_stats_refresh_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseProductStatsRefreshPayload(task)
	if err != nil {
		logger.Warnw("worker_product_stats_refresh_unmarshal_failed", "error", err)
		// 载荷损坏重试无意义
		return errors.Join(err, asynq.SkipRetry)
	}
	if payload.ProductID == 0 {
		logger.Debugw("worker_product_stats_refresh_skip_invalid_payload", "product_id", payload.ProductID)
		return nil
	}
	if c.ReviewService == nil {
		logger.Warnw("worker_product_stats_refresh_skip_review_service_nil", "product_id", payload.ProductID)
		return nil
	}
	if err := c.ReviewService.RefreshProductStats(payload.ProductID); err != nil {
		logger.Warnw("worker_product_stats_refresh_failed", "product_id", payload.ProductID, "error", err)
		return err
	}
	logger.Debugw("worker_product_stats_refreshed", "product_id", payload.ProductID)
	return nil
}
