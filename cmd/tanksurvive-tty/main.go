// tanksurvive-tty 在终端中运行坦克生存
//
// 与图形版共用 session 逻辑：字符网格渲染（tcell），正弦合成音效（beep）。
//
// 用法:
//
//	go run ./cmd/tanksurvive-tty [--seed N] [--mute] [--config path] [--verbose --log file]
//
// 操作: ←/→ 或 A/D 移动，空格或 ↑ 射击，R 重新开始，Esc/Q 退出
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/session"
	"github.com/decker502/tanksurvive/pkg/tty"
	"github.com/gdamore/tcell/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志（写入 --log 文件，终端被游戏占用）")
	logPath := flag.String("log", "tanksurvive-tty.log", "日志文件路径")
	configPath := flag.String("config", "", "游戏参数文件（默认使用内置参数）")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	mute := flag.Bool("mute", false, "关闭音效")
	flag.Parse()

	if err := run(*verbose, *logPath, *configPath, *seed, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "tanksurvive-tty: %v\n", err)
		os.Exit(1)
	}
}

func run(verbose bool, logPath, configPath string, seed int64, mute bool) error {
	log.SetOutput(io.Discard)
	if verbose {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("打开日志文件失败: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultGameConfig()
	if configPath != "" {
		loaded, err := config.LoadGameConfig(configPath)
		if err != nil {
			return fmt.Errorf("加载游戏参数失败: %w", err)
		}
		cfg = loaded
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[Main] Random seed: %d", seed)

	beeper := tty.NewBeeper(mute)
	if err := beeper.Initialize(); err != nil {
		log.Printf("[Main] Audio unavailable, running silent: %v", err)
	}
	defer beeper.Close()

	sess, err := session.New(cfg, beeper, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("创建游戏会话失败: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("创建终端屏幕失败: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("初始化终端屏幕失败: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return tty.NewRunner(screen, sess).Run(ctx)
}
