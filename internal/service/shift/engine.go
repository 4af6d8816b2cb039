package shift

import (
	"github.com/lilo791027/shift-scheduler/internal/config"
	"github.com/lilo791027/shift-scheduler/internal/model"
)

// Engine 班表轉換核心管線
//
// 出勤記錄 → 彙整 → 分類 → 總表，單執行緒一路跑完；各階段只消費前一
// 階段的輸出，沒有共享狀態。
type Engine struct {
	maxNameRunes int
	invalidNames []string
	classifier   *Classifier
}

// NewEngine 建立管線
func NewEngine(layout config.LayoutConfig, business config.BusinessConfig) *Engine {
	return &Engine{
		maxNameRunes: layout.MaxNameRunes,
		invalidNames: business.InvalidNames,
		classifier:   NewClassifier(business),
	}
}

// Classifier 取得分類器
func (e *Engine) Classifier() *Classifier {
	return e.classifier
}

// Run 執行彙整、分類、總表三個階段
//
// 員工主檔查不到的姓名，編號/部門/職稱留空照常往下流，班別代碼自然
// 為空字串。
func (e *Engine) Run(flat []model.Attendance, employees map[string]model.Employee) *model.TransformResult {
	aggregated := Aggregate(flat, e.maxNameRunes, e.invalidNames)

	classified := make([]model.Classified, 0, len(aggregated))
	for _, a := range aggregated {
		emp := employees[a.Name]
		classified = append(classified, model.Classified{
			Clinic:     a.Clinic,
			EmployeeID: emp.ID,
			Department: emp.Department,
			Name:       a.Name,
			Title:      emp.Title,
			Date:       a.Date,
			Shift:      a.Shift,
			Annotation: a.Annotation,
			Code:       e.classifier.Code(emp.Title, a.Clinic, a.Shift),
		})
	}

	return &model.TransformResult{
		Flat:       flat,
		Classified: classified,
		Summary:    BuildSummary(classified),
	}
}
