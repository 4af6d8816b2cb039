package model

import "time"

// 班別標記（來源班表的固定詞彙）
const (
	ShiftMorning   = "早"
	ShiftAfternoon = "午"
	ShiftEvening   = "晚"
)

// ShiftMarkers 班別標記的固定優先順序：早 < 午 < 晚
var ShiftMarkers = []string{ShiftMorning, ShiftAfternoon, ShiftEvening}

// 輸出工作表名稱（沿用原班表工具的慣例，會從可選清單中排除）
const (
	SheetConsolidated = "彙整結果"
	SheetAnalysis     = "班別分析"
	SheetSummary      = "班別總表"
)

// OutputSheets 三張輸出工作表
var OutputSheets = []string{SheetConsolidated, SheetAnalysis, SheetSummary}

// Attendance 出勤記錄
// 區塊擷取器的輸出，尚未去重：同一人同一天可能以不同班別出現多筆
type Attendance struct {
	Clinic              string    `json:"clinic"`
	Date                time.Time `json:"date"`
	Shift               string    `json:"shift"` // 早/午/晚
	Name                string    `json:"name"`
	PrimaryAnnotation   string    `json:"primaryAnnotation"`   // A 欄
	SecondaryAnnotation string    `json:"secondaryAnnotation"` // U 欄
}

// Aggregated 彙整後的出勤
// 以 (姓名, 日期, 診所, A欄) 為鍵，Shift 已整序為早午晚固定順序
type Aggregated struct {
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Clinic     string    `json:"clinic"`
	Annotation string    `json:"annotation"`
	Shift      string    `json:"shift"`
}

// Employee 員工主檔記錄
// 以去除空白後的姓名作為查詢鍵；同名後者覆蓋前者（既有資料品質限制）
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Title      string `json:"title"`
}

// Classified 班別分析記錄
type Classified struct {
	Clinic     string    `json:"clinic"`
	EmployeeID string    `json:"employeeId"`
	Department string    `json:"department"`
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	Date       time.Time `json:"date"`
	Shift      string    `json:"shift"`
	Annotation string    `json:"annotation"`
	Code       string    `json:"code"` // 班別代碼
}

// SummaryRow 班別總表的一列：一位員工在每個日期欄的班別代碼
type SummaryRow struct {
	EmployeeID string   `json:"employeeId"`
	Name       string   `json:"name"`
	Codes      []string `json:"codes"` // 與 SummaryMatrix.Dates 等長，缺勤為空字串
}

// SummaryMatrix 班別總表：員工 × 日期 → 班別代碼
type SummaryMatrix struct {
	Dates []time.Time  `json:"dates"` // 觀測範圍內逐日遞增
	Rows  []SummaryRow `json:"rows"`
}

// TransformResult 一次轉換的三張輸出表
type TransformResult struct {
	Flat       []Attendance  `json:"flat"`
	Classified []Classified  `json:"classified"`
	Summary    SummaryMatrix `json:"summary"`
}
