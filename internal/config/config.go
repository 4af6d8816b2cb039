package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 應用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Layout   LayoutConfig   `toml:"layout"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig 伺服器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 資料目錄配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// LayoutConfig 班表版面常數
//
// 這些值是與來源班表「格式」的約定：日期錨點下方固定隔 3 列才是班別列、
// 第 21 欄（U 欄）放交叉比對代碼。格式變了才需要改這裡。
type LayoutConfig struct {
	DateRowOffset    int `toml:"date_row_offset"`   // 日期錨點到班別列的固定列距
	StartColumn      int `toml:"start_column"`      // 日期掃描起始欄（第 1 欄是標籤欄）
	AnnotationColumn int `toml:"annotation_column"` // 次要註記欄（U 欄）
	ClinicNameRunes  int `toml:"clinic_name_runes"` // 診所名稱取左上角儲存格前幾個字
	MaxNameRunes     int `toml:"max_name_runes"`    // 「姓名」超過此長度視為雜訊剔除
}

// BusinessConfig 班別代碼業務規則表
type BusinessConfig struct {
	PureMorningTitles []string `toml:"pure_morning_titles"` // 純早班職稱（整碼固定）
	StaffTitles       []string `toml:"staff_titles"`        // 【員工】職稱（精確比對）
	RegionAClinics    []string `toml:"region_a_clinics"`    // 加註「板土中京」的診所
	RegionACode       string   `toml:"region_a_code"`
	RegionBClinic     string   `toml:"region_b_clinic"` // 加註「立丞」的診所
	RegionBCode       string   `toml:"region_b_code"`
	InvalidNames      []string `toml:"invalid_names"` // 選配的無效姓名清單（預設不啟用）
}

// DefaultConfig 預設配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20372,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Layout: LayoutConfig{
			DateRowOffset:    3,
			StartColumn:      2,
			AnnotationColumn: 21,
			ClinicNameRunes:  4,
			MaxNameRunes:     4,
		},
		Business: BusinessConfig{
			PureMorningTitles: []string{"早班護理師", "早班藥師"},
			StaffTitles:       []string{"櫃台", "護理師", "藥師", "藥劑生"},
			RegionAClinics: []string{
				"上吉診所", "板橋診所", "土城診所",
				"中和診所", "京站診所", "永和診所", "新莊診所",
			},
			RegionACode:   "板土中京",
			RegionBClinic: "立丞診所",
			RegionBCode:   "立丞",
			InvalidNames:  []string{},
		},
	}
}

// GetExeDir 取得執行檔所在目錄
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 從執行檔同目錄的 config.toml 載入配置
// 檔案不存在時使用預設配置
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 確保資料目錄與子目錄存在
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{"uploads", "exports"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
