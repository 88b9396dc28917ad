package queue

import (
	"encoding/json"

	"github.com/catalog-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskProductStatsRefresh 商品评分/销量统计刷新任务
	TaskProductStatsRefresh = constants.TaskProductStatsRefresh
)

// ProductStatsRefreshPayload 统计刷新任务载荷
type ProductStatsRefreshPayload struct {
	ProductID uint `json:"product_id"`
}

// NewProductStatsRefreshTask 创建统计刷新任务
func NewProductStatsRefreshTask(payload ProductStatsRefreshPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskProductStatsRefresh, body), nil
}

// ParseProductStatsRefreshPayload 解析统计刷新任务载荷
func ParseProductStatsRefreshPayload(task *asynq.Task) (ProductStatsRefreshPayload, error) {
	var payload ProductStatsRefreshPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
