package exporter

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/lilo791027/shift-scheduler/internal/model"
)

// 輸出欄位（沿用原班表工具的表頭）
var (
	consolidatedHeaders = []interface{}{"診所", "日期", "班別", "姓名", "A欄資料", "U欄資料"}
	analysisHeaders     = []interface{}{"診所", "員工編號", "所屬部門", "姓名", "職稱", "日期", "班別", "E欄資料", "班別代碼"}
)

const (
	dateLayoutRecord = "2006/01/02" // 彙整結果、班別分析
	dateLayoutHeader = "2006-01-02" // 班別總表日期欄
)

// Exporter 輸出工作簿產生器
//
// 三張輸出工作表直接寫回班表工作簿的副本，原始班表工作表原樣保留，
// 存檔到 exports 目錄。
type Exporter struct {
	exportDir string
}

// NewExporter 建立輸出器
func NewExporter(exportDir string) *Exporter {
	return &Exporter{exportDir: exportDir}
}

// Export 寫入三張輸出工作表並存檔，回傳檔案路徑
func (e *Exporter) Export(wb *excelize.File, result *model.TransformResult) (string, error) {
	if err := e.writeConsolidated(wb, result.Flat); err != nil {
		return "", fmt.Errorf("寫入%s失敗: %w", model.SheetConsolidated, err)
	}
	if err := e.writeAnalysis(wb, result.Classified); err != nil {
		return "", fmt.Errorf("寫入%s失敗: %w", model.SheetAnalysis, err)
	}
	if err := e.writeSummary(wb, result.Summary); err != nil {
		return "", fmt.Errorf("寫入%s失敗: %w", model.SheetSummary, err)
	}

	filename := fmt.Sprintf("班別彙整_%s_%s.xlsx",
		time.Now().Format("20060102_150405"), uuid.New().String()[:8])
	path := filepath.Join(e.exportDir, filename)

	if err := wb.SaveAs(path); err != nil {
		return "", fmt.Errorf("存檔失敗: %w", err)
	}
	return path, nil
}

// resetSheet 清掉既有的同名工作表後重建
func resetSheet(wb *excelize.File, name string) error {
	if idx, err := wb.GetSheetIndex(name); err == nil && idx >= 0 {
		if err := wb.DeleteSheet(name); err != nil {
			return err
		}
	}
	_, err := wb.NewSheet(name)
	return err
}

func (e *Exporter) writeConsolidated(wb *excelize.File, records []model.Attendance) error {
	if err := resetSheet(wb, model.SheetConsolidated); err != nil {
		return err
	}
	if err := wb.SetSheetRow(model.SheetConsolidated, "A1", &consolidatedHeaders); err != nil {
		return err
	}
	for i, rec := range records {
		row := []interface{}{
			rec.Clinic,
			rec.Date.Format(dateLayoutRecord),
			rec.Shift,
			rec.Name,
			rec.PrimaryAnnotation,
			rec.SecondaryAnnotation,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(model.SheetConsolidated, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeAnalysis(wb *excelize.File, records []model.Classified) error {
	if err := resetSheet(wb, model.SheetAnalysis); err != nil {
		return err
	}
	if err := wb.SetSheetRow(model.SheetAnalysis, "A1", &analysisHeaders); err != nil {
		return err
	}
	for i, rec := range records {
		row := []interface{}{
			rec.Clinic,
			rec.EmployeeID,
			rec.Department,
			rec.Name,
			rec.Title,
			rec.Date.Format(dateLayoutRecord),
			rec.Shift,
			rec.Annotation,
			rec.Code,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(model.SheetAnalysis, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeSummary(wb *excelize.File, summary model.SummaryMatrix) error {
	if err := resetSheet(wb, model.SheetSummary); err != nil {
		return err
	}

	header := []interface{}{"員工編號", "員工姓名"}
	for _, d := range summary.Dates {
		header = append(header, d.Format(dateLayoutHeader))
	}
	if err := wb.SetSheetRow(model.SheetSummary, "A1", &header); err != nil {
		return err
	}

	for i, r := range summary.Rows {
		row := []interface{}{r.EmployeeID, r.Name}
		for _, code := range r.Codes {
			row = append(row, code)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(model.SheetSummary, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
