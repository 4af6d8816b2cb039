package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lilo791027/shift-scheduler/internal/model"
)

// LoadEmployees 讀取員工主檔工作表
//
// 固定欄位順序：員工編號、姓名、所屬部門、職稱，表頭在第 1 列。
// 以去除空白後的姓名為鍵；同名時後讀到的覆蓋前者，這是主檔本身的
// 資料品質限制，不在此處修補。
func LoadEmployees(f *excelize.File, sheet string) (map[string]model.Employee, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("讀取員工資料工作表 %s 失敗: %w", sheet, err)
	}

	employees := make(map[string]model.Employee)

	for i, row := range rows {
		if i == 0 {
			continue // 表頭
		}
		get := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		name := get(1)
		if name == "" {
			continue
		}

		employees[name] = model.Employee{
			ID:         get(0),
			Name:       name,
			Department: get(2),
			Title:      get(3),
		}
	}

	return employees, nil
}
