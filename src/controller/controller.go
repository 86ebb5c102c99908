package controller

import (
	"github.com/andrewyi/skillfinder/src/dbstorage/schema"
)

type Controller interface {
	// 返回排序后的资源列表
	// bool表示本次请求是否同步执行了一次实时抓取（冷skill场景）
	// 热skill场景的后台刷新不体现在返回值中
	GetRanked(skill string, typeFilter string, priceFilter string, limit int) ([]schema.Resource, bool, error)

	// 一轮完整的抓取入库：搜索→丢弃无url的结果→标准化→去重入库→更新skill刷新时间
	Refresh(skill string) error
}
