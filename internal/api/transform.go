package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/lilo791027/shift-scheduler/internal/importer"
)

// TransformRequest 轉換請求
type TransformRequest struct {
	RosterFileID   string   `json:"rosterFileId" binding:"required"`
	Sheets         []string `json:"sheets"`
	EmployeeFileID string   `json:"employeeFileId" binding:"required"`
	EmployeeSheet  string   `json:"employeeSheet"`
}

// Transform 執行班表轉換並產生輸出工作簿
// POST /api/transform
//
// 任何階段失敗都以單一錯誤訊息回覆，不提供不完整的輸出。
func (h *Handler) Transform(c *gin.Context) {
	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的請求內容"})
		return
	}
	if len(req.Sheets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請先選擇要處理的班表工作表"})
		return
	}
	if req.EmployeeSheet == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請選擇員工資料工作表"})
		return
	}

	rosterUpload, err := h.uploads.Get(req.RosterFileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "班表檔案: " + err.Error()})
		return
	}
	employeeUpload, err := h.uploads.Get(req.EmployeeFileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "員工資料檔案: " + err.Error()})
		return
	}

	// 每次轉換都從上傳位元組重新開啟，各請求互不影響
	roster, err := excelize.OpenReader(bytes.NewReader(rosterUpload.Data))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "開啟班表工作簿失敗"})
		return
	}
	defer roster.Close()

	employees, err := excelize.OpenReader(bytes.NewReader(employeeUpload.Data))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "開啟員工資料工作簿失敗"})
		return
	}
	defer employees.Close()

	result, err := h.coordinator.Transform(importer.TransformOptions{
		Roster:        roster,
		Sheets:        req.Sheets,
		Employees:     employees,
		EmployeeSheet: req.EmployeeSheet,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "轉換失敗: " + err.Error()})
		return
	}

	path, err := h.exporter.Export(roster, result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "產生輸出檔失敗: " + err.Error()})
		return
	}

	token := h.downloads.Put(path, "班別彙整結果.xlsx", downloadTTL)

	c.JSON(http.StatusOK, gin.H{
		"token":           token,
		"flatCount":       len(result.Flat),
		"classifiedCount": len(result.Classified),
		"summaryRows":     len(result.Summary.Rows),
		"summaryDates":    len(result.Summary.Dates),
	})
}
