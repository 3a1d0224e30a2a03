//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，设置 SHOWCASE_MOBILE_EMULATE=1 可以强制使用移动端布局
func IsMobile() bool {
	return os.Getenv("SHOWCASE_MOBILE_EMULATE") == "1"
}
