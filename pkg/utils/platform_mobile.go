//go:build mobile

package utils

// IsMobile 移动端编译时始终返回 true，页面使用折叠导航和触摸滚动
func IsMobile() bool {
	return true
}
