// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 以 "data/" 开头的路径从嵌入的文件系统读取，其他路径从磁盘读取，
// 这样用户可以通过命令行指定自己的滑块配置文件。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 读取嵌入资源前没有调用 Init
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 设置嵌入的数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// IsEmbeddedPath 判断路径是否指向嵌入资源
func IsEmbeddedPath(path string) bool {
	return strings.HasPrefix(normalize(path), dataPrefix)
}

// ReadFile 读取文件内容
// "data/" 路径从嵌入文件系统读取，其他路径从磁盘读取
func ReadFile(path string) ([]byte, error) {
	if !IsEmbeddedPath(path) {
		return os.ReadFile(path)
	}
	if !initialized {
		return nil, ErrNotInitialized
	}
	data, err := fs.ReadFile(dataFS, normalize(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", path, err)
	}
	return data, nil
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	if !IsEmbeddedPath(path) {
		_, err := os.Stat(path)
		return err == nil
	}
	if !initialized {
		return false
	}
	_, err := fs.Stat(dataFS, normalize(path))
	return err == nil
}

// normalize 标准化路径分隔符为正斜杠并移除 "./" 前缀
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}
