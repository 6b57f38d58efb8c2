// Package embedded 提供游戏数据与资源文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包按路径前缀把读取请求分发到对应的文件系统：
//
//   - "data/..."   → 编译进二进制的 YAML 数据（embed.FS）
//   - "assets/..." → 资源目录（通常是 os.DirFS(--assets)），前缀会被去掉
//   - 其他路径     → 直接读取磁盘（--config 覆盖文件、测试用临时文件）
//
// 读取 data/ 或 assets/ 前必须调用 Init()。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	dataPrefix   = "data/"
	assetsPrefix = "assets/"
)

var (
	dataFS      fs.FS
	assetsFS    fs.FS
	initialized bool
)

// Init 设置数据与资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
//
// 参数:
//   - data: 根目录下包含 "data/" 目录的文件系统（embed.FS）
//   - assets: 资源目录本身（不含 "assets/" 前缀），可以为 nil 表示没有资源
func Init(data, assets fs.FS) {
	dataFS = data
	assetsFS = assets
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// reset 恢复未初始化状态（测试使用）
func reset() {
	dataFS = nil
	assetsFS = nil
	initialized = false
}

// normalize 标准化路径分隔符并去掉 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// resolve 返回路径对应的文件系统和该文件系统内的名称
// 对于磁盘路径，返回的 fs.FS 为 nil
func resolve(path string) (fs.FS, string, error) {
	path = normalize(path)

	switch {
	case strings.HasPrefix(path, dataPrefix):
		if !initialized {
			return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
		}
		if dataFS == nil {
			return nil, "", fmt.Errorf("no data filesystem configured for %s", path)
		}
		return dataFS, path, nil
	case strings.HasPrefix(path, assetsPrefix):
		if !initialized {
			return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
		}
		if assetsFS == nil {
			return nil, "", fmt.Errorf("no assets filesystem configured for %s", path)
		}
		return assetsFS, strings.TrimPrefix(path, assetsPrefix), nil
	default:
		return nil, path, nil
	}
}

// Open 打开文件
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		return os.Open(filepath.FromSlash(name))
	}
	return fsys.Open(name)
}

// ReadFile 读取文件全部内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		return os.ReadFile(filepath.FromSlash(name))
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Stat 获取文件信息
func Stat(path string) (fs.FileInfo, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return file.Stat()
}
