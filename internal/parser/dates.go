package parser

import (
	"strconv"
	"strings"
	"time"
)

// 儲存格常見的日期顯示格式
// excelize 依儲存格數字格式輸出字串，班表來源混用西式與中式寫法
var dateLayouts = []string{
	"2006/1/2",
	"2006-1-2",
	"2006.1.2",
	"1-2-06",
	"1/2/06",
	"2006/1/2 15:04",
	"2006/1/2 15:04:05",
	"2006-1-2 15:04:05",
	"2006年1月2日",
}

// excel 序列值 1 對應 1899-12-31，基準日取 1899-12-30 修正閏年誤差
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseDateCell 嘗試把儲存格文字解讀為日曆日期
//
// 解讀失敗不是錯誤：掃描流程對非日期儲存格的正確反應就是不動作。
func ParseDateCell(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	// 未套格式的日期儲存格會以序列值呈現
	if serial, err := strconv.ParseFloat(text, 64); err == nil {
		if serial >= 10000 && serial < 80000 {
			t := excelEpoch.Add(time.Duration(serial*24) * time.Hour)
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// IsDateCell 儲存格是否為日期
func IsDateCell(text string) bool {
	_, ok := ParseDateCell(text)
	return ok
}
