// http接入层，只做参数校验、调用controller与错误映射
// 空skill在进入core之前拦截（前置条件）
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/skillfinder/src/config"
	"github.com/andrewyi/skillfinder/src/controller"
	"github.com/andrewyi/skillfinder/src/dbstorage/schema"
	"github.com/andrewyi/skillfinder/src/enum"
	"github.com/andrewyi/skillfinder/src/searcher"
)

type HTTPServer struct {
	logger *log.Logger
	ctrl   controller.Controller

	srv *http.Server
}

func NewHTTPServer(logger *log.Logger, cfg *config.Config, ctrl controller.Controller) *HTTPServer {
	h := &HTTPServer{
		logger: logger,
		ctrl:   ctrl,
	}

	if !cfg.HTTP.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/api/resources", h.getResources)
	router.GET("/api/health", h.health)

	// 静态前端，未匹配的路径全部交给文件服务
	if cfg.HTTP.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.HTTP.StaticDir))))
	}

	h.srv = &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}
	return h
}

// 测试用入口
func (h *HTTPServer) Handler() http.Handler {
	return h.srv.Handler
}

func (h *HTTPServer) Start() {
	go func() {
		if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			h.logger.WithError(err).Fatal("http server exited")
		}
	}()
}

func (h *HTTPServer) Stop(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}

func (h *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *HTTPServer) getResources(c *gin.Context) {
	skill := strings.TrimSpace(c.Query("skill"))
	if skill == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing skill query parameter"})
		return
	}

	typeFilter := strings.TrimSpace(c.Query("type"))
	priceFilter := strings.TrimSpace(c.Query("price"))

	limit := enum.DefaultResultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	resources, _, err := h.ctrl.GetRanked(skill, typeFilter, priceFilter, limit)
	if err != nil {
		if errors.Is(err, searcher.ErrUpstreamUnavailable) {
			// 冷skill且上游不可用：返回空集与稍后重试的提示，而不是裸错误
			c.JSON(http.StatusOK, gin.H{
				"skill":     skill,
				"count":     0,
				"resources": []schema.Resource{},
				"message":   "resources not yet available, try again shortly",
			})
			return
		}
		h.logger.WithError(err).WithField("skill", skill).Error("fail to get ranked resources")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"skill":     skill,
		"count":     len(resources),
		"resources": resources,
	})
}
