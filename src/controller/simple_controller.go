// 刷新协调器：stale-while-revalidate策略的实现位置
// 缓存命中时立即返回并后台刷新；缓存为空时同步抓取一轮再返回，
// 保证首次查询的skill不会拿到空页（代价是冷查询延迟）
// NOTE: 同一skill的并发刷新是冗余但无害的，存储层的(skill,url)唯一约束保证幂等
package controller

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/skillfinder/src/dbstorage"
	"github.com/andrewyi/skillfinder/src/dbstorage/schema"
	"github.com/andrewyi/skillfinder/src/normalizer"
	"github.com/andrewyi/skillfinder/src/ranker"
	"github.com/andrewyi/skillfinder/src/routingpool"
	"github.com/andrewyi/skillfinder/src/searcher"
)

type SimpleController struct {
	logger *log.Logger

	db         *dbstorage.SimpleDBStorage
	searcher   searcher.Searcher
	normalizer normalizer.Normalizer
	ranker     ranker.Ranker

	// 后台刷新的执行载体，请求路径从不等待其中任务的完成
	pool routingpool.RoutingPool
}

func NewSimpleController(
	logger *log.Logger,
	db *dbstorage.SimpleDBStorage,
	s searcher.Searcher,
	n normalizer.Normalizer,
	r ranker.Ranker,
	pool routingpool.RoutingPool) Controller {

	return &SimpleController{
		logger:     logger,
		db:         db,
		searcher:   s,
		normalizer: n,
		ranker:     r,
		pool:       pool,
	}
}

func (c *SimpleController) GetRanked(skill string, typeFilter string, priceFilter string, limit int) ([]schema.Resource, bool, error) {
	skill = canonicalSkill(skill)

	resources, err := c.db.QueryResources(skill, typeFilter, priceFilter)
	if err != nil {
		// 存储故障无法降级，直接上抛
		return nil, false, err
	}

	if len(resources) == 0 {
		// 冷skill：同步抓取后重查，搜索失败上抛由调用方映射
		if err = c.Refresh(skill); err != nil {
			return nil, true, err
		}
		resources, err = c.db.QueryResources(skill, typeFilter, priceFilter)
		if err != nil {
			return nil, true, err
		}
		return c.ranker.Rank(resources, limit), true, nil
	}

	// 热skill：fire and forget后台刷新，错误只记日志不影响本次返回
	c.submitBackgroundRefresh(skill)

	return c.ranker.Rank(resources, limit), false, nil
}

func (c *SimpleController) Refresh(skill string) error {
	skill = canonicalSkill(skill)

	hits, err := c.searcher.Search(skill)
	if err != nil {
		return err
	}

	records := make([]schema.Resource, 0, len(hits))
	for _, hit := range hits {
		if strings.TrimSpace(hit.URL) == "" { // 无url的结果直接丢弃，不进入normalize
			continue
		}
		records = append(records, c.normalizer.Normalize(skill, hit))
	}

	if err = c.db.InsertResourcesIgnoring(records); err != nil {
		return err
	}
	return c.db.TouchSkill(skill)
}

func (c *SimpleController) submitBackgroundRefresh(skill string) {
	submitted := c.pool.TrySubmit(func(ctx context.Context) {
		if err := c.Refresh(skill); err != nil {
			// 后台刷新是尽力而为的保鲜，失败只记录
			c.logger.WithError(err).WithField("skill", skill).Warn("background refresh failed")
		}
	})
	if !submitted {
		c.logger.WithField("skill", skill).Debug("refresh queue full, background refresh dropped")
	}
}

func canonicalSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
