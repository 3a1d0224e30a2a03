package config

import "fmt"

// RevealMode 决定滚动揭示标记在元素离开视口后的行为
type RevealMode string

const (
	// RevealModeLatch 首次进入视口后永久保持可见
	RevealModeLatch RevealMode = "latch"
	// RevealModeMirror 每次回调都写入最新的相交状态，离开视口会重新隐藏
	RevealModeMirror RevealMode = "mirror"
)

// ParseRevealMode 解析揭示模式，空字符串视为 latch
func ParseRevealMode(s string) (RevealMode, error) {
	switch RevealMode(s) {
	case "", RevealModeLatch:
		return RevealModeLatch, nil
	case RevealModeMirror:
		return RevealModeMirror, nil
	default:
		return "", fmt.Errorf("unknown reveal mode %q (want %q or %q)", s, RevealModeLatch, RevealModeMirror)
	}
}
