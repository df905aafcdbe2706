// Package fileurl provides file path helpers
// Package fileurl 提供文件路径辅助函数
package fileurl

import (
	"os"
	"path/filepath"
)

// IsExist checks whether the path exists
// IsExist 检查路径是否存在
func IsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// CreatePath creates the parent directory of the given file path
// CreatePath 创建给定文件路径的父目录
func CreatePath(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if IsExist(dir) {
		return nil
	}
	return os.MkdirAll(dir, perm)
}

// GetExePath returns the directory of the running executable
// GetExePath 返回当前可执行文件所在目录
func GetExePath() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Dir(exe)
}
