package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Ellipsis 被截断的最后一行末尾追加的标记
const Ellipsis = "..."

// WrapText 将文本按指定宽度自动换行
//
// 换行规则:
//   - 在空白处断行，保留原有单词
//   - 单个单词超过最大宽度时独占一行
//   - 显式的换行符会强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	return WrapTextFunc(textStr, func(s string) float64 {
		return MeasureTextWidth(s, font)
	}, maxWidth)
}

// WrapTextFunc 与 WrapText 相同，但使用给定的测量函数
func WrapTextFunc(textStr string, measure func(string) float64, maxWidth float64) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// FitLines 最多保留 maxLines 行，超出时在最后一行追加省略号
func FitLines(lines []string, maxLines int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	out := append([]string(nil), lines[:maxLines]...)
	out[maxLines-1] = strings.TrimRight(out[maxLines-1], " .,;:") + Ellipsis
	return out
}

// MeasureTextWidth 测量文本宽度，font 为 nil 时返回 0
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
