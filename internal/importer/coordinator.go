package importer

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lilo791027/shift-scheduler/internal/config"
	"github.com/lilo791027/shift-scheduler/internal/grid"
	"github.com/lilo791027/shift-scheduler/internal/model"
	"github.com/lilo791027/shift-scheduler/internal/parser"
	"github.com/lilo791027/shift-scheduler/internal/service/shift"
)

// Coordinator 轉換協調器
//
// 把「解合併 → 擷取 → 彙整 → 分類 → 總表」串成一次同步轉換。
// 任一階段失敗整個轉換視為失敗，不輸出不完整的結果。
type Coordinator struct {
	extractor *parser.Extractor
	engine    *shift.Engine
}

// NewCoordinator 建立協調器
func NewCoordinator(cfg *config.AppConfig) *Coordinator {
	return &Coordinator{
		extractor: parser.NewExtractor(cfg.Layout),
		engine:    shift.NewEngine(cfg.Layout, cfg.Business),
	}
}

// TransformOptions 一次轉換的輸入
type TransformOptions struct {
	Roster        *excelize.File // 班表工作簿
	Sheets        []string       // 要處理的班表工作表
	Employees     *excelize.File // 員工主檔工作簿
	EmployeeSheet string         // 員工主檔工作表
}

// Transform 執行轉換
func (c *Coordinator) Transform(opts TransformOptions) (*model.TransformResult, error) {
	if len(opts.Sheets) == 0 {
		return nil, errors.New("未選擇班表工作表")
	}
	if opts.EmployeeSheet == "" {
		return nil, errors.New("未選擇員工資料工作表")
	}

	available := make(map[string]bool)
	for _, name := range opts.Roster.GetSheetList() {
		available[name] = true
	}
	for _, name := range opts.Sheets {
		if !available[name] {
			return nil, fmt.Errorf("班表工作簿中找不到工作表: %s", name)
		}
	}

	employees, err := parser.LoadEmployees(opts.Employees, opts.EmployeeSheet)
	if err != nil {
		return nil, err
	}

	var flat []model.Attendance
	for _, sheet := range opts.Sheets {
		g, err := grid.FromSheet(opts.Roster, sheet)
		if err != nil {
			return nil, err
		}
		g.Normalize()
		flat = append(flat, c.extractor.ExtractSheet(g)...)
	}

	return c.engine.Run(flat, employees), nil
}
