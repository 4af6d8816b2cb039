package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lilo791027/shift-scheduler/internal/config"
	"github.com/lilo791027/shift-scheduler/internal/exporter"
	"github.com/lilo791027/shift-scheduler/internal/importer"
	"github.com/lilo791027/shift-scheduler/internal/store"
)

// 上傳與下載的存活時間
const (
	uploadTTL   = 2 * time.Hour
	downloadTTL = 30 * time.Minute
)

// Handler API 處理器
type Handler struct {
	cfg         *config.AppConfig
	coordinator *importer.Coordinator
	exporter    *exporter.Exporter
	uploads     *store.MemoryStore
	downloads   *store.DownloadStore
}

// NewHandler 建立 API 處理器
func NewHandler(cfg *config.AppConfig, exportDir string) *Handler {
	return &Handler{
		cfg:         cfg,
		coordinator: importer.NewCoordinator(cfg),
		exporter:    exporter.NewExporter(exportDir),
		uploads:     store.NewMemoryStore(uploadTTL),
		downloads:   store.NewDownloadStore(),
	}
}

// RegisterRoutes 註冊 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系統狀態與規則表
	router.GET("/status", h.GetStatus)
	router.GET("/config", h.GetConfig)

	// 檔案上傳
	router.POST("/upload/roster", h.UploadRoster)
	router.POST("/upload/employees", h.UploadEmployees)

	// 轉換與下載
	router.POST("/transform", h.Transform)
	router.GET("/download/:token", h.Download)
}
