package shift

import (
	"testing"
	"time"

	"github.com/lilo791027/shift-scheduler/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildSummary_DateRangeSpansMonths(t *testing.T) {
	t.Parallel()

	records := []model.Classified{
		{EmployeeID: "E001", Name: "王小明", Clinic: "上吉診所", Date: day(2025, 8, 30), Code: "【員工】早班"},
		{EmployeeID: "E001", Name: "王小明", Clinic: "上吉診所", Date: day(2025, 9, 2), Code: "【員工】午班"},
	}

	summary := BuildSummary(records)

	// 8/30 到 9/2 逐日展開，不是固定月份視窗
	if len(summary.Dates) != 4 {
		t.Fatalf("dates = %d, want 4", len(summary.Dates))
	}
	if !summary.Dates[0].Equal(day(2025, 8, 30)) || !summary.Dates[3].Equal(day(2025, 9, 2)) {
		t.Fatalf("date range = %v .. %v", summary.Dates[0], summary.Dates[3])
	}

	if len(summary.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(summary.Rows))
	}
	row := summary.Rows[0]
	if row.Codes[0] != "【員工】早班" || row.Codes[1] != "" || row.Codes[2] != "" || row.Codes[3] != "【員工】午班" {
		t.Fatalf("codes = %v", row.Codes)
	}
}

func TestBuildSummary_SkipsRecordsWithoutIDOrName(t *testing.T) {
	t.Parallel()

	records := []model.Classified{
		{EmployeeID: "", Name: "查無此人", Date: day(2025, 8, 1), Code: "早班"},
		{EmployeeID: "E001", Name: "王小明", Date: day(2025, 8, 1), Code: "【員工】早班"},
	}

	summary := BuildSummary(records)

	if len(summary.Rows) != 1 || summary.Rows[0].EmployeeID != "E001" {
		t.Fatalf("rows = %+v", summary.Rows)
	}
}

// 同員工同日撞鍵：先依日期、診所排序再覆寫，最後寫入可重現
func TestBuildSummary_CollisionLastWriteDeterministic(t *testing.T) {
	t.Parallel()

	records := []model.Classified{
		{EmployeeID: "E001", Name: "王小明", Clinic: "乙診所", Date: day(2025, 8, 1), Code: "乙碼"},
		{EmployeeID: "E001", Name: "王小明", Clinic: "甲診所", Date: day(2025, 8, 1), Code: "甲碼"},
	}

	first := BuildSummary(records)

	// 反轉輸入順序結果不變
	reversed := []model.Classified{records[1], records[0]}
	second := BuildSummary(reversed)

	if first.Rows[0].Codes[0] != second.Rows[0].Codes[0] {
		t.Fatalf("輸入順序影響了結果: %q vs %q", first.Rows[0].Codes[0], second.Rows[0].Codes[0])
	}
	// 診所名排序在後者為最後寫入（乙 U+4E59 < 甲 U+7532）
	if first.Rows[0].Codes[0] != "甲碼" {
		t.Fatalf("code = %q, want 甲碼", first.Rows[0].Codes[0])
	}
}

func TestBuildSummary_RoundTrip(t *testing.T) {
	t.Parallel()

	records := []model.Classified{
		{EmployeeID: "E001", Name: "王小明", Date: day(2025, 8, 1), Code: "【員工】早班"},
		{EmployeeID: "E002", Name: "李小華", Date: day(2025, 8, 2), Code: "★醫師★午班"},
	}

	summary := BuildSummary(records)

	for _, rec := range records {
		found := false
		for _, row := range summary.Rows {
			if row.EmployeeID != rec.EmployeeID || row.Name != rec.Name {
				continue
			}
			for i, d := range summary.Dates {
				if d.Equal(rec.Date) {
					if row.Codes[i] != rec.Code {
						t.Fatalf("cell(%s, %v) = %q, want %q", rec.EmployeeID, rec.Date, row.Codes[i], rec.Code)
					}
					found = true
				}
			}
		}
		if !found {
			t.Fatalf("總表缺少 %s/%v", rec.EmployeeID, rec.Date)
		}
	}

	// 無對應記錄的儲存格是空字串
	if summary.Rows[0].Codes[1] != "" {
		t.Fatalf("E001 在 8/2 應為空, got %q", summary.Rows[0].Codes[1])
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	t.Parallel()

	summary := BuildSummary(nil)
	if len(summary.Dates) != 0 || len(summary.Rows) != 0 {
		t.Fatalf("空輸入應回空總表: %+v", summary)
	}
}

func TestBuildSummary_RowsSortedByEmployeeID(t *testing.T) {
	t.Parallel()

	records := []model.Classified{
		{EmployeeID: "E002", Name: "李小華", Date: day(2025, 8, 1), Code: "a"},
		{EmployeeID: "E001", Name: "王小明", Date: day(2025, 8, 1), Code: "b"},
	}

	summary := BuildSummary(records)

	if summary.Rows[0].EmployeeID != "E001" || summary.Rows[1].EmployeeID != "E002" {
		t.Fatalf("rows 未依員工編號排序: %+v", summary.Rows)
	}
}
