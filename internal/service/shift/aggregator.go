package shift

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lilo791027/shift-scheduler/internal/model"
)

// aggKey 彙整鍵：(姓名, 日期, 診所, A欄)
type aggKey struct {
	name       string
	date       time.Time
	clinic     string
	annotation string
}

// Aggregate 把同鍵的多筆出勤合併成一筆班別字串
//
// 姓名為空或超過 maxNameRunes 個字的記錄剔除（來源資料的姓名一律不超
// 過 4 個字，更長的是註腳或段落標籤）；invalidNames 是選配的無效姓名
// 清單，空清單即不啟用。班別先依出現順序以空白串接，再整序為早午晚
// 固定順序。輸出順序為各鍵首次出現的順序。
func Aggregate(records []model.Attendance, maxNameRunes int, invalidNames []string) []model.Aggregated {
	denied := make(map[string]bool, len(invalidNames))
	for _, n := range invalidNames {
		denied[n] = true
	}

	var order []aggKey
	shifts := make(map[aggKey]string)

	for _, rec := range records {
		name := strings.TrimSpace(rec.Name)
		if name == "" || utf8.RuneCountInString(name) > maxNameRunes || denied[name] {
			continue
		}

		k := aggKey{name: name, date: rec.Date, clinic: rec.Clinic, annotation: rec.PrimaryAnnotation}
		if cur, ok := shifts[k]; ok {
			shifts[k] = cur + " " + rec.Shift
		} else {
			shifts[k] = rec.Shift
			order = append(order, k)
		}
	}

	out := make([]model.Aggregated, 0, len(order))
	for _, k := range order {
		out = append(out, model.Aggregated{
			Name:       k.name,
			Date:       k.date,
			Clinic:     k.clinic,
			Annotation: k.annotation,
			Shift:      FormatShiftOrder(shifts[k]),
		})
	}
	return out
}

// FormatShiftOrder 整序班別字串
//
// 依早、午、晚的固定優先序各保留一次出現，同時完成去重與排序，
// 與輸入順序無關。
func FormatShiftOrder(shift string) string {
	var b strings.Builder
	for _, m := range model.ShiftMarkers {
		if strings.Contains(shift, m) {
			b.WriteString(m)
		}
	}
	return b.String()
}
