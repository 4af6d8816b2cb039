package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 版本號
const Version = "1.2.0"

// GetStatus 系統狀態
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "shift-scheduler",
		"version": Version,
		"uploads": h.uploads.Count(),
	})
}

// GetConfig 目前生效的版面常數與業務規則表（唯讀）
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"layout":   h.cfg.Layout,
		"business": h.cfg.Business,
	})
}
