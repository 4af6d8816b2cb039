package parser

import (
	"time"

	"github.com/lilo791027/shift-scheduler/internal/config"
	"github.com/lilo791027/shift-scheduler/internal/grid"
	"github.com/lilo791027/shift-scheduler/internal/model"
)

// 單一日期錨點往下掃描的狀態機
//
// 來源班表沒有明確的欄位結構：日期是縱向的段落標頭，錨點下固定隔
// DateRowOffset 列開始出現「早/午/晚」標記列與其下的姓名列。
// 掃描分三個狀態：外層雙迴圈找日期錨點（找錨點），錨點內先找班別
// 標記（找標記），找到後逐列收姓名（收姓名），直到又碰到標記、日期
// 或空白列為止。
type scanState int

const (
	stateSeekingMarker scanState = iota // 找標記
	stateCollectingNames                // 收姓名
)

// Extractor 班表區塊擷取器
type Extractor struct {
	layout config.LayoutConfig
}

// NewExtractor 建立擷取器
func NewExtractor(layout config.LayoutConfig) *Extractor {
	return &Extractor{layout: layout}
}

// ClinicName 取左上角儲存格前幾個字作為診所名稱
func (e *Extractor) ClinicName(g *grid.Grid) string {
	runes := []rune(g.TrimmedCell(1, 1))
	n := e.layout.ClinicNameRunes
	if len(runes) < n {
		n = len(runes)
	}
	return string(runes[:n])
}

// ExtractSheet 擷取一張（已解合併的）班表的全部出勤記錄
//
// 發現順序：外層從 StartColumn 起逐欄、內層逐列，對應日期沿欄往下排、
// 第 1 欄是標籤欄的版面慣例。
func (e *Extractor) ExtractSheet(g *grid.Grid) []model.Attendance {
	clinic := e.ClinicName(g)

	var records []model.Attendance
	for c := e.layout.StartColumn; c <= g.ColCount(); c++ {
		for r := 1; r <= g.RowCount(); r++ {
			if date, ok := ParseDateCell(g.TrimmedCell(r, c)); ok {
				records = append(records, e.scanDateBlock(g, clinic, date, r, c)...)
			}
		}
	}
	return records
}

// scanDateBlock 從一個日期錨點往下擷取所屬的出勤列
func (e *Extractor) scanDateBlock(g *grid.Grid, clinic string, date time.Time, row, col int) []model.Attendance {
	var out []model.Attendance

	state := stateSeekingMarker
	marker := ""

	for r := row + e.layout.DateRowOffset; r <= g.RowCount(); r++ {
		text := g.TrimmedCell(r, col)

		switch state {
		case stateSeekingMarker:
			// 空白或再碰到日期代表這個錨點的範圍結束
			if text == "" || IsDateCell(text) {
				return out
			}
			if isShiftMarker(text) {
				marker = text
				state = stateCollectingNames
			}
			// 其餘是表頭裝飾列，跳過續掃

		case stateCollectingNames:
			if text == "" || IsDateCell(text) || isShiftMarker(text) {
				// 不消耗此列，交回「找標記」判讀，讓緊接的班別區塊接續
				state = stateSeekingMarker
				r--
				continue
			}
			out = append(out, model.Attendance{
				Clinic:              clinic,
				Date:                date,
				Shift:               marker,
				Name:                text,
				PrimaryAnnotation:   g.TrimmedCell(r, 1),
				SecondaryAnnotation: g.TrimmedCell(r, e.layout.AnnotationColumn),
			})
		}
	}
	return out
}

// isShiftMarker 是否為班別標記
func isShiftMarker(text string) bool {
	for _, m := range model.ShiftMarkers {
		if text == m {
			return true
		}
	}
	return false
}
