package diffutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type DiffLine struct {
	Left  string
	Right string
	Mark  string // "|", "+", "-", "~"
}

func CompareMultiline(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(text1, text2, false)
	dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result []DiffLine
	i := 0
	for i < len(diffs) {
		d := diffs[i]
		if d.Type == diffmatchpatch.DiffDelete &&
			i+1 < len(diffs) &&
			diffs[i+1].Type == diffmatchpatch.DiffInsert {

			delLines := strings.Split(d.Text, "\n")
			insLines := strings.Split(diffs[i+1].Text, "\n")

			maxLen := max(len(delLines), len(insLines))
			for i := range make([]struct{}, maxLen) {
				l, r := "", ""
				if i < len(delLines) {
					l = delLines[i]
				}
				if i < len(insLines) {
					r = insLines[i]
				}
				if l == "" && r == "" {
					continue
				}
				result = append(result, DiffLine{Left: l, Right: r, Mark: "~"})
			}
			i += 2
			continue
		}

		lines := strings.Split(d.Text, "\n")
		for _, line := range lines {
			if line == "" {
				continue
			}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, DiffLine{Left: line, Right: line, Mark: "|"})
			case diffmatchpatch.DiffDelete:
				result = append(result, DiffLine{Left: line, Right: "", Mark: "-"})
			case diffmatchpatch.DiffInsert:
				result = append(result, DiffLine{Left: "", Right: line, Mark: "+"})
			}
		}
		i++
	}
	return result
}

// Identical 判断两段多行文本是否逐行一致（没有任何增删改行）
func Identical(before, after string) bool {
	for _, d := range CompareMultiline(before, after) {
		if d.Mark != "|" {
			return false
		}
	}
	return true
}

type TextInfo struct {
	CharsCount   int
	DisplayWidth int
}

// len(s): 字节宽度
// utf8.RuneCountInString(s): 字符数
// runewidth.StringWidth(s): 显示宽度
// fmt.Sprintf 是按照字符数打印
// 总字符数 = 字符数 + (最大显示宽度 - 当前行显示宽度)
func FormatSideBySide(diff []DiffLine) string {
	// 修正宽度判断(模糊字符按照宽度1计算)
	runewidth.DefaultCondition.EastAsianWidth = false

	maxDisPlayWidth := 0
	leftCharsNum := make([]TextInfo, 0, len(diff))
	for _, d := range diff {
		disPlayLen := runewidth.StringWidth(d.Left)
		if disPlayLen > maxDisPlayWidth {
			maxDisPlayWidth = disPlayLen
		}
		leftCharsNum = append(leftCharsNum, TextInfo{
			CharsCount:   utf8.RuneCountInString(d.Left),
			DisplayWidth: runewidth.StringWidth(d.Left),
		})
	}

	var out []string
	header := fmt.Sprintf("%-*s  %s  %s", maxDisPlayWidth, "* Before", " ", "* After")
	out = append(out, header)
	out = append(out, strings.Repeat("-", len(header)))

	for idx, d := range diff {
		// 原始的字符数+补充的空格数
		out = append(out, fmt.Sprintf(
			"%-*s  %s  %s",
			leftCharsNum[idx].CharsCount+maxDisPlayWidth-leftCharsNum[idx].DisplayWidth,
			d.Left, d.Mark, d.Right))
	}

	return strings.Join(out, "\n")
}
