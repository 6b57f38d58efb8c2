package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/tanksurvive/pkg/app"
	"github.com/decker502/tanksurvive/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志")
	assetsDir := flag.String("assets", "assets", "图片和音频资源目录")
	configPath := flag.String("config", "", "游戏参数文件（默认使用内置 data/game.yaml）")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	noSave := flag.Bool("no-save", false, "不读写用户设置")
	flag.Parse()

	embedded.Init(dataFS, os.DirFS(*assetsDir))

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		NoSave:     *noSave,
	})
	if err != nil {
		// 非 verbose 模式下 NewApp 已关闭日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	cfg := gameApp.GameConfig()
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetTPS(cfg.Screen.TPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
