package api

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/lilo791027/shift-scheduler/internal/model"
)

// 上傳檔大小上限
const maxUploadBytes = 50 << 20

// readWorkbookUpload 讀取 multipart 上傳並驗證是可開啟的工作簿
func readWorkbookUpload(c *gin.Context) (filename string, data []byte, sheets []string, ok bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上傳檔案"})
		return "", nil, nil, false
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "檔案過大"})
		return "", nil, nil, false
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "讀取上傳檔案失敗"})
		return "", nil, nil, false
	}
	defer src.Close()

	data, err = io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "讀取上傳檔案失敗"})
		return "", nil, nil, false
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無法讀取 Excel 檔案，請確認為 .xlsx / .xlsm 格式"})
		return "", nil, nil, false
	}
	sheets = wb.GetSheetList()
	_ = wb.Close()

	return fileHeader.Filename, data, sheets, true
}

// UploadRoster 上傳班表工作簿
// POST /api/upload/roster
func (h *Handler) UploadRoster(c *gin.Context) {
	filename, data, sheets, ok := readWorkbookUpload(c)
	if !ok {
		return
	}

	// 輸出工作表不在可選清單內
	excluded := make(map[string]bool, len(model.OutputSheets))
	for _, name := range model.OutputSheets {
		excluded[name] = true
	}
	selectable := make([]string, 0, len(sheets))
	for _, name := range sheets {
		if !excluded[name] {
			selectable = append(selectable, name)
		}
	}

	if len(selectable) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "班表工作簿沒有可處理的工作表"})
		return
	}

	id := h.uploads.Put(filename, data, selectable)
	c.JSON(http.StatusOK, gin.H{
		"fileId":   id,
		"filename": filename,
		"sheets":   selectable,
	})
}

// UploadEmployees 上傳員工主檔工作簿
// POST /api/upload/employees
func (h *Handler) UploadEmployees(c *gin.Context) {
	filename, data, sheets, ok := readWorkbookUpload(c)
	if !ok {
		return
	}

	if len(sheets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "員工資料工作簿沒有工作表"})
		return
	}

	id := h.uploads.Put(filename, data, sheets)
	c.JSON(http.StatusOK, gin.H{
		"fileId":   id,
		"filename": filename,
		"sheets":   sheets,
	})
}
