package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Download 下載輸出工作簿
// GET /api/download/:token
func (h *Handler) Download(c *gin.Context) {
	token := c.Param("token")

	filePath, filename, ok := h.downloads.Get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下載連結不存在或已逾期"})
		return
	}

	c.FileAttachment(filePath, filename)
}
