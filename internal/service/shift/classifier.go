package shift

import (
	"strings"

	"github.com/lilo791027/shift-scheduler/internal/config"
	"github.com/lilo791027/shift-scheduler/internal/model"
)

// 班別代碼的固定詞彙
const (
	codePhysician = "★醫師★"
	codeStaff     = "【員工】"
	codeManager   = "◇主管◇"

	titlePhysician      = "醫師"
	titleDeputyManager  = "副店長"
	titleManagerKeyword = "店長"
	titleProcurement    = "採購組長"
)

// 班別字串對應的結尾；查無對應時以原字串加「班」收尾
var shiftSuffixes = map[string]string{
	"早":   "早班",
	"午":   "午班",
	"晚":   "晚班",
	"午晚":  "午晚班",
	"早晚":  "早晚班",
	"早午":  "早午班",
	"早午晚": "全天班",
}

// Classifier 班別代碼分類器
//
// (職稱, 診所, 整序後班別) → 班別代碼的純函式；規則表在建構時注入。
type Classifier struct {
	pureMorning   map[string]bool
	staff         map[string]bool
	regionA       map[string]bool
	regionACode   string
	regionBClinic string
	regionBCode   string
}

// NewClassifier 依業務規則表建立分類器
func NewClassifier(business config.BusinessConfig) *Classifier {
	c := &Classifier{
		pureMorning:   make(map[string]bool, len(business.PureMorningTitles)),
		staff:         make(map[string]bool, len(business.StaffTitles)),
		regionA:       make(map[string]bool, len(business.RegionAClinics)),
		regionACode:   business.RegionACode,
		regionBClinic: business.RegionBClinic,
		regionBCode:   business.RegionBCode,
	}
	for _, t := range business.PureMorningTitles {
		c.pureMorning[t] = true
	}
	for _, t := range business.StaffTitles {
		c.staff[t] = true
	}
	for _, name := range business.RegionAClinics {
		c.regionA[name] = true
	}
	return c
}

// Code 產生班別代碼，規則由上而下先符合先贏：
//
//  1. 職稱空白 → 空代碼
//  2. 純早班職稱 → 整碼固定為「【員工】純早班」，診所與實際班別不影響
//  3. 醫師 → ★醫師★
//  4. 櫃台/護理/藥師職稱或含「副店長」→【員工】
//  5. 含「店長」或為採購組長 → ◇主管◇
//  6. 其餘職稱底碼空白，仍照常收班尾
//
// 底碼之後：非純早班時依診所加區碼，再接班尾。結尾若疊成「早班早班」
// 收斂為一個「早班」；只處理這個特定結尾，不是一般性的去重。
func (c *Classifier) Code(title, clinic, shift string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}

	base := ""
	switch {
	case c.pureMorning[title]:
		// 視為早班走完收尾流程：區碼略過、班尾疊出的「早班早班」由
		// 結尾收斂修掉，整碼恆為「【員工】純早班」
		base = codeStaff + "純早班"
		shift = model.ShiftMorning
	case title == titlePhysician:
		base = codePhysician
	case c.staff[title] || strings.Contains(title, titleDeputyManager):
		base = codeStaff
	case strings.Contains(title, titleManagerKeyword) || title == titleProcurement:
		base = codeManager
	}

	code := base

	if shift != model.ShiftMorning {
		if c.regionA[clinic] {
			code += c.regionACode
		} else if clinic == c.regionBClinic {
			code += c.regionBCode
		}
	}

	if suffix, ok := shiftSuffixes[shift]; ok {
		code += suffix
	} else {
		code += shift + "班"
	}

	if strings.HasSuffix(code, "早班早班") {
		code = strings.TrimSuffix(code, "早班")
	}

	return code
}
