package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lilo791027/shift-scheduler/internal/api"
	"github.com/lilo791027/shift-scheduler/internal/config"
)

//go:embed all:dist
var staticFiles embed.FS

// Server HTTP 伺服器
type Server struct {
	router *gin.Engine
	api    *api.Handler
}

// NewServer 建立伺服器
func NewServer(cfg *config.AppConfig, exportDir string) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router: gin.Default(),
		api:    api.NewHandler(cfg, exportDir),
	}

	s.setupRoutes()

	return s
}

// setupRoutes 設定路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 路由
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	// 內嵌操作頁面
	sub, _ := fs.Sub(staticFiles, "dist")

	s.router.GET("/", func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	s.router.NoRoute(func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Run 啟動伺服器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
