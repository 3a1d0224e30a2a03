//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 偏好存储目录存在并可写
//
// gdata 在 Android 上写入 /data/data/{package}/，但不会创建子目录，
// 因此需要在 gdata.Open 之前调用。
func EnsureStorageDir() error {
	pkg, err := detectAndroidPackage()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, "prefs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// detectAndroidPackage 从 /proc/self/cmdline 读取应用包名
func detectAndroidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	pkg := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 || ch == '\n' {
			continue
		}
		pkg = append(pkg, ch)
	}
	if len(pkg) == 0 {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return string(pkg), nil
}
