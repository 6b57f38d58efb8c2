//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// 仅在使用 -tags mobile 时编译。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.tanksurvive -o build/android/tanksurvive.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/TankSurvive.xcframework -v ./mobile
package mobile

import (
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/tanksurvive/pkg/app"
	"github.com/decker502/tanksurvive/pkg/embedded"
)

func init() {
	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		log.Fatalf("资源目录无效: %v", err)
	}
	embedded.Init(dataFS, assets)

	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		NoSave:  true,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
