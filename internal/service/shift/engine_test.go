package shift

import (
	"testing"

	"github.com/lilo791027/shift-scheduler/internal/config"
	"github.com/lilo791027/shift-scheduler/internal/model"
)

func testEngine() *Engine {
	cfg := config.DefaultConfig()
	return NewEngine(cfg.Layout, cfg.Business)
}

func TestEngineRun_EndToEnd(t *testing.T) {
	t.Parallel()

	flat := []model.Attendance{
		{Clinic: "上吉診所", Date: testDate, Shift: "午", Name: "王小明"},
		{Clinic: "上吉診所", Date: testDate, Shift: "早", Name: "王小明"},
		{Clinic: "上吉診所", Date: testDate, Shift: "早", Name: "李小華"},
	}
	employees := map[string]model.Employee{
		"王小明": {ID: "E001", Name: "王小明", Department: "醫務部", Title: "醫師"},
		"李小華": {ID: "E002", Name: "李小華", Department: "護理部", Title: "護理師"},
	}

	result := testEngine().Run(flat, employees)

	if len(result.Flat) != 3 {
		t.Fatalf("flat = %d, want 3", len(result.Flat))
	}
	if len(result.Classified) != 2 {
		t.Fatalf("classified = %d, want 2", len(result.Classified))
	}

	wang := result.Classified[0]
	if wang.Name != "王小明" || wang.Shift != "早午" {
		t.Fatalf("王小明 = %+v", wang)
	}
	if wang.EmployeeID != "E001" || wang.Department != "醫務部" {
		t.Fatalf("員工主檔欄位未帶入: %+v", wang)
	}
	if wang.Code != "★醫師★板土中京早午班" {
		t.Fatalf("code = %q", wang.Code)
	}

	hua := result.Classified[1]
	if hua.Code != "【員工】早班" {
		t.Fatalf("李小華 code = %q", hua.Code)
	}

	if len(result.Summary.Rows) != 2 || len(result.Summary.Dates) != 1 {
		t.Fatalf("summary = %d rows × %d dates", len(result.Summary.Rows), len(result.Summary.Dates))
	}
}

// 主檔查不到的姓名照常往下流，代碼為空，且不進總表
func TestEngineRun_UnknownEmployee(t *testing.T) {
	t.Parallel()

	flat := []model.Attendance{
		{Clinic: "上吉診所", Date: testDate, Shift: "早", Name: "陌生人"},
	}

	result := testEngine().Run(flat, map[string]model.Employee{})

	if len(result.Classified) != 1 {
		t.Fatalf("classified = %d, want 1", len(result.Classified))
	}
	rec := result.Classified[0]
	if rec.EmployeeID != "" || rec.Title != "" || rec.Code != "" {
		t.Fatalf("查無主檔應為空欄位: %+v", rec)
	}

	if len(result.Summary.Rows) != 0 {
		t.Fatalf("無員工編號不應進總表: %+v", result.Summary.Rows)
	}
}
