package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lilo791027/shift-scheduler/internal/config"
	"github.com/lilo791027/shift-scheduler/internal/server"
	"github.com/lilo791027/shift-scheduler/internal/util"
)

var (
	port    = flag.Int("port", 0, "服務埠 (覆蓋 config.toml)")
	devMode = flag.Bool("dev", false, "開發模式")
	dataDir = flag.String("dataDir", "", "資料目錄 (覆蓋 config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  班表彙整工具 - 診所排班表轉換")
	fmt.Println("==========================================")

	// 載入配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("載入配置失敗，使用預設配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令列參數覆蓋配置
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 確保資料目錄存在
	dataPath, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Fatalf("建立資料目錄失敗: %v", err)
	}
	fmt.Printf("資料目錄: %s\n", dataPath)

	// 建立伺服器
	srv := server.NewServer(cfg, filepath.Join(dataPath, "exports"))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// 啟動伺服器
	go func() {
		fmt.Printf("服務啟動中，監聽埠 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服務啟動失敗: %v", err)
		}
	}()

	// 打開瀏覽器
	if !cfg.Server.DevMode {
		fmt.Printf("正在打開瀏覽器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("無法自動打開瀏覽器，請手動訪問: %s\n", url)
		}
	} else {
		fmt.Printf("開發模式: 請訪問 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服務...")

	// 等待訊號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n服務已停止")
}
