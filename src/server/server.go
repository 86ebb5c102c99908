package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/skillfinder/src/config"
	"github.com/andrewyi/skillfinder/src/controller"
	"github.com/andrewyi/skillfinder/src/core"
	"github.com/andrewyi/skillfinder/src/dbstorage"
	"github.com/andrewyi/skillfinder/src/httpserver"
	"github.com/andrewyi/skillfinder/src/normalizer"
	"github.com/andrewyi/skillfinder/src/ranker"
	"github.com/andrewyi/skillfinder/src/routingpool"
	"github.com/andrewyi/skillfinder/src/searcher"
	"github.com/andrewyi/skillfinder/src/util"
)

type Server struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *log.Logger
	config *config.Config

	dbStorage  *dbstorage.SimpleDBStorage
	pool       routingpool.RoutingPool
	httpServer *httpserver.HTTPServer
	cronTask   *cron.Cron
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Server) initLog() {
	var logger = log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stdout)

	if s.config.Log.Context {
		logger.SetReportCaller(true)
	}

	if logLevel, err := log.ParseLevel(s.config.Log.Level); err != nil {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(logLevel)
	}
	s.logger = logger
}

func (s *Server) Start(ctx *cli.Context) error {
	var err error

	configPath := ctx.String("config")
	var cfg = &config.Config{}
	if err = util.ReadConfig(configPath, cfg); err != nil {
		return fmt.Errorf("fail to load config, err: %w", err)
	}
	applyDefaults(cfg)
	s.config = cfg

	s.initLog()

	// 存储是唯一的持久化依赖，打开失败无法恢复，直接终止
	dbStorage, err := dbstorage.NewSimpleDBStorage(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		s.logger.WithError(err).Fatal("fail to create dbstorage handler")
	}
	s.dbStorage = dbStorage

	// provider选择：有api key用tavily，否则退化为duckduckgo抓取
	var sr searcher.Searcher
	if cfg.Searcher.TavilyAPIKey != "" {
		sr = searcher.NewTavilySearcher(cfg.Searcher.TavilyAPIKey, cfg.Searcher.Timeout, cfg.Searcher.MaxResults)
		s.logger.Info("searcher: tavily")
	} else {
		sr = searcher.NewDuckDuckGoSearcher(cfg.Searcher.Timeout, cfg.Searcher.MaxResults)
		s.logger.Info("searcher: duckduckgo fallback")
	}

	// 后台刷新协程池，请求路径通过它fire and forget
	s.pool = routingpool.NewSimpleRoutingPool(s.ctx, cfg.Refresh.Worker, cfg.Refresh.QueueSize)
	if err = s.pool.Start(); err != nil {
		s.logger.WithError(err).Fatal("fail to start refresh pool")
	}

	ctrl := controller.NewSimpleController(
		s.logger,
		dbStorage,
		sr,
		normalizer.NewSimpleNormalizer(),
		ranker.NewSimpleRanker(),
		s.pool,
	)

	// 热门skill的定时保鲜
	if len(cfg.Cron.PopularSkills) > 0 {
		s.cronTask, err = core.CreateBulkRefreshTask(s.logger, ctrl, cfg.Cron.Spec, cfg.Cron.PopularSkills)
		if err != nil {
			s.logger.WithError(err).Fatal("fail to schedule bulk refresh")
		}
	}

	s.httpServer = httpserver.NewHTTPServer(s.logger, cfg, ctrl)
	s.httpServer.Start()
	s.logger.WithField("addr", cfg.HTTP.Addr).Info("server started")

	s.wait()
	s.Stop()

	return nil
}

func (s *Server) wait() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	<-c
	s.logger.Warn("interrupt signal, server gonna stop")
}

func (s *Server) Stop() {
	s.cancel()

	if s.cronTask != nil {
		s.cronTask.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := s.httpServer.Stop(shutdownCtx); err != nil {
		s.logger.WithError(err).Error("fail to shutdown http server")
	}

	s.pool.Stop()

	if err := s.dbStorage.Close(); err != nil {
		s.logger.WithError(err).Error("fail to close dbstorage")
	}
}

func applyDefaults(cfg *config.Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":3000"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite3"
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = "./data.db"
	}
	if cfg.Searcher.Timeout == 0 {
		cfg.Searcher.Timeout = 15
	}
	if cfg.Searcher.MaxResults == 0 {
		cfg.Searcher.MaxResults = 30
	}
	if cfg.Refresh.Worker == 0 {
		cfg.Refresh.Worker = 2
	}
	if cfg.Refresh.QueueSize == 0 {
		cfg.Refresh.QueueSize = 64
	}
	if cfg.Cron.Spec == "" {
		cfg.Cron.Spec = "@hourly"
	}
}
