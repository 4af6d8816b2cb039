package exporter

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lilo791027/shift-scheduler/internal/model"
)

func testResult() *model.TransformResult {
	date := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)
	return &model.TransformResult{
		Flat: []model.Attendance{
			{Clinic: "上吉診所", Date: date, Shift: "早", Name: "王小明", PrimaryAnnotation: "全", SecondaryAnnotation: "X01"},
		},
		Classified: []model.Classified{
			{Clinic: "上吉診所", EmployeeID: "E001", Department: "護理部", Name: "王小明",
				Title: "護理師", Date: date, Shift: "早", Annotation: "全", Code: "【員工】早班"},
		},
		Summary: model.SummaryMatrix{
			Dates: []time.Time{date},
			Rows: []model.SummaryRow{
				{EmployeeID: "E001", Name: "王小明", Codes: []string{"【員工】早班"}},
			},
		},
	}
}

func TestExport_WritesThreeSheets(t *testing.T) {
	t.Parallel()

	wb := excelize.NewFile()
	defer wb.Close()

	e := NewExporter(t.TempDir())

	path, err := e.Export(wb, testResult())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	out, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("重新開啟輸出檔: %v", err)
	}
	defer out.Close()

	for _, name := range model.OutputSheets {
		if idx, err := out.GetSheetIndex(name); err != nil || idx < 0 {
			t.Fatalf("缺少工作表 %s", name)
		}
	}

	// 彙整結果
	if v, _ := out.GetCellValue(model.SheetConsolidated, "A1"); v != "診所" {
		t.Fatalf("彙整結果 A1 = %q", v)
	}
	if v, _ := out.GetCellValue(model.SheetConsolidated, "B2"); v != "2025/08/05" {
		t.Fatalf("彙整結果 B2 = %q", v)
	}
	if v, _ := out.GetCellValue(model.SheetConsolidated, "F2"); v != "X01" {
		t.Fatalf("彙整結果 F2 = %q", v)
	}

	// 班別分析
	if v, _ := out.GetCellValue(model.SheetAnalysis, "I1"); v != "班別代碼" {
		t.Fatalf("班別分析 I1 = %q", v)
	}
	if v, _ := out.GetCellValue(model.SheetAnalysis, "I2"); v != "【員工】早班" {
		t.Fatalf("班別分析 I2 = %q", v)
	}

	// 班別總表
	if v, _ := out.GetCellValue(model.SheetSummary, "C1"); v != "2025-08-05" {
		t.Fatalf("班別總表 C1 = %q", v)
	}
	if v, _ := out.GetCellValue(model.SheetSummary, "C2"); v != "【員工】早班" {
		t.Fatalf("班別總表 C2 = %q", v)
	}
}

// 重複輸出到同一本工作簿：既有的輸出工作表會清掉重建
func TestExport_ResetsExistingOutputSheets(t *testing.T) {
	t.Parallel()

	wb := excelize.NewFile()
	defer wb.Close()

	if _, err := wb.NewSheet(model.SheetConsolidated); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	if err := wb.SetCellValue(model.SheetConsolidated, "Z99", "殘留"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}

	e := NewExporter(t.TempDir())

	path, err := e.Export(wb, testResult())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	out, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("重新開啟輸出檔: %v", err)
	}
	defer out.Close()

	if v, _ := out.GetCellValue(model.SheetConsolidated, "Z99"); v != "" {
		t.Fatalf("舊內容未清除: %q", v)
	}
}
