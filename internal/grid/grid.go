package grid

import (
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MergeRegion 合併儲存格範圍（1-based，含邊界）
type MergeRegion struct {
	TopRow    int
	LeftCol   int
	BottomRow int
	RightCol  int
}

// Grid 單一工作表的儲存格矩陣
//
// 儲存格一律以顯示字串表示；合併範圍在 Normalize 前只有左上角
// 儲存格持有值，其餘讀起來是空字串（Excel 的讀取慣例）。
type Grid struct {
	cells  [][]string
	maxCol int
	merges []MergeRegion
}

// New 建立空白矩陣（測試與工具用）
func New(rows [][]string) *Grid {
	g := &Grid{cells: rows}
	for _, row := range rows {
		if len(row) > g.maxCol {
			g.maxCol = len(row)
		}
	}
	return g
}

// SetMerges 設定合併範圍
func (g *Grid) SetMerges(merges []MergeRegion) {
	g.merges = merges
}

// FromSheet 從工作簿讀出一張工作表的矩陣與合併範圍
func FromSheet(f *excelize.File, sheet string) (*Grid, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("讀取工作表 %s 失敗: %w", sheet, err)
	}

	g := New(rows)

	mergeCells, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("讀取合併範圍 %s 失敗: %w", sheet, err)
	}

	merges := make([]MergeRegion, 0, len(mergeCells))
	for _, mc := range mergeCells {
		leftCol, topRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		rightCol, bottomRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		merges = append(merges, MergeRegion{
			TopRow:    topRow,
			LeftCol:   leftCol,
			BottomRow: bottomRow,
			RightCol:  rightCol,
		})
	}
	g.merges = merges

	return g, nil
}

// RowCount 列數
func (g *Grid) RowCount() int {
	return len(g.cells)
}

// ColCount 最大欄數
func (g *Grid) ColCount() int {
	return g.maxCol
}

// Cell 讀取儲存格（1-based），越界回空字串
func (g *Grid) Cell(row, col int) string {
	if row < 1 || row > len(g.cells) {
		return ""
	}
	r := g.cells[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// TrimmedCell 讀取儲存格並去除前後空白
func (g *Grid) TrimmedCell(row, col int) string {
	return strings.TrimSpace(g.Cell(row, col))
}

// SetCell 寫入儲存格（1-based），必要時擴充該列
func (g *Grid) SetCell(row, col int, value string) {
	if row < 1 || col < 1 || row > len(g.cells) {
		return
	}
	r := g.cells[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = value
	g.cells[row-1] = r
	if col > g.maxCol {
		g.maxCol = col
	}
}

// Normalize 解合併並填入原值
//
// 每個合併範圍以左上角儲存格的值鋪滿整個外接矩形；錨點為空則鋪空值。
// 範圍越界時跳過該範圍繼續處理，壞掉一個範圍不拖垮整張表。
// 重複執行結果不變。
func (g *Grid) Normalize() {
	for _, m := range g.merges {
		if m.TopRow < 1 || m.LeftCol < 1 || m.BottomRow > len(g.cells) || m.TopRow > m.BottomRow || m.LeftCol > m.RightCol {
			log.Printf("跳過越界的合併範圍: 列 %d-%d 欄 %d-%d", m.TopRow, m.BottomRow, m.LeftCol, m.RightCol)
			continue
		}
		value := g.Cell(m.TopRow, m.LeftCol)
		for r := m.TopRow; r <= m.BottomRow; r++ {
			for c := m.LeftCol; c <= m.RightCol; c++ {
				g.SetCell(r, c, value)
			}
		}
	}
}
