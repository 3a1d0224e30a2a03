package utils

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 每个字符宽 10 像素
func charMeasure(s string) float64 {
	return float64(len(s)) * 10
}

func TestWrapTextFunc(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		expected []string
	}{
		{"短文本不换行", "short text", 1000, []string{"short text"}},
		{"按单词换行", "the quick brown fox jumps", 100, []string{"the quick", "brown fox", "jumps"}},
		{"长单词独占一行", "a supercalifragilistic word", 100, []string{"a", "supercalifragilistic", "word"}},
		{"显式换行", "one\ntwo three", 1000, []string{"one", "two three"}},
		{"空文本", "", 100, []string{""}},
		{"折叠多余空白", "  spaced   out  ", 1000, []string{"spaced out"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapTextFunc(tt.input, charMeasure, tt.maxWidth)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("WrapTextFunc(%q, %v) = %q, 期望 %q", tt.input, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

func TestFitLines(t *testing.T) {
	lines := []string{"first line", "second line,", "third line"}

	if got := FitLines(lines, 5); !reflect.DeepEqual(got, lines) {
		t.Errorf("FitLines 未截断时应原样返回, got %q", got)
	}
	got := FitLines(lines, 2)
	want := []string{"first line", "second line..."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FitLines(2) = %q, 期望 %q", got, want)
	}
	if lines[1] != "second line," {
		t.Error("FitLines 修改了输入切片")
	}
	if FitLines(lines, 0) != nil {
		t.Error("FitLines(0) 应返回 nil")
	}
}

func TestWrapTextWithFont(t *testing.T) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	font := &text.GoTextFace{Source: source, Size: 16}

	input := "Our team builds responsive websites and custom software solutions tailored to your specific business needs."
	lines := WrapText(input, font, 240)
	if len(lines) < 2 {
		t.Fatalf("期望至少 2 行, got %d", len(lines))
	}
	for _, line := range lines {
		if strings.Contains(line, " ") && MeasureTextWidth(line, font) > 240 {
			t.Errorf("行 %q 宽度 %.1f 超过 240", line, MeasureTextWidth(line, font))
		}
	}
	if strings.Join(lines, " ") != input {
		t.Errorf("换行后内容丢失: %q", strings.Join(lines, " "))
	}

	if MeasureTextWidth("abc", nil) != 0 {
		t.Error("nil 字体宽度应为 0")
	}
}
