package core

import (
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/skillfinder/src/controller"
)

// 设置热门skill的定时批量刷新
// 单个skill刷新失败只记录日志，不中断列表中其余skill的刷新
func CreateBulkRefreshTask(logger *log.Logger, ctrl controller.Controller, spec string, skills []string) (*cron.Cron, error) {

	c := cron.New()
	err := c.AddFunc(spec, func() {
		for _, skill := range skills {
			if err := ctrl.Refresh(skill); err != nil {
				logger.WithError(err).WithField("skill", skill).Warn("scheduled refresh failed")
				continue
			}
			logger.WithField("skill", skill).Debug("scheduled refresh done")
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
