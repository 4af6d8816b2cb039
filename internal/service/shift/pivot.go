package shift

import (
	"sort"
	"time"

	"github.com/lilo791027/shift-scheduler/internal/model"
)

// BuildSummary 由班別分析記錄建立班別總表
//
// 日期欄取觀測到的最小日到最大日逐日展開（跨月的班表也完整涵蓋，
// 不是固定 31 天視窗）。記錄先依日期、診所排序再覆寫，同一員工同一
// 天撞鍵時「最後寫入」因此是可重現的。員工編號或姓名空白的記錄不進
// 總表。
func BuildSummary(records []model.Classified) model.SummaryMatrix {
	sorted := make([]model.Classified, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Clinic < sorted[j].Clinic
	})

	type rowKey struct {
		id   string
		name string
	}

	codes := make(map[rowKey]map[time.Time]string)
	var keys []rowKey
	var minDate, maxDate time.Time

	for _, rec := range sorted {
		if rec.EmployeeID == "" || rec.Name == "" || rec.Date.IsZero() {
			continue
		}

		k := rowKey{id: rec.EmployeeID, name: rec.Name}
		if _, ok := codes[k]; !ok {
			codes[k] = make(map[time.Time]string)
			keys = append(keys, k)
		}
		codes[k][rec.Date] = rec.Code

		if minDate.IsZero() || rec.Date.Before(minDate) {
			minDate = rec.Date
		}
		if rec.Date.After(maxDate) {
			maxDate = rec.Date
		}
	}

	if len(keys) == 0 {
		return model.SummaryMatrix{}
	}

	var dates []time.Time
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].id != keys[j].id {
			return keys[i].id < keys[j].id
		}
		return keys[i].name < keys[j].name
	})

	rows := make([]model.SummaryRow, 0, len(keys))
	for _, k := range keys {
		row := model.SummaryRow{
			EmployeeID: k.id,
			Name:       k.name,
			Codes:      make([]string, len(dates)),
		}
		for i, d := range dates {
			row.Codes[i] = codes[k][d]
		}
		rows = append(rows, row)
	}

	return model.SummaryMatrix{Dates: dates, Rows: rows}
}
