package diffutil

import (
	"strings"
	"testing"
)

func TestCompareMultilineMarksChange(t *testing.T) {
	before := "0 (size=3)\n├── 1\n└── 2\n"
	after := "0 (size=3)\n├── 1\n└── 5\n"

	diff := CompareMultiline(before, after)
	if len(diff) != 3 {
		t.Fatalf("Expected 3 diff lines, got %d: %+v", len(diff), diff)
	}
	for i := 0; i < 2; i++ {
		if diff[i].Mark != "|" {
			t.Errorf("Line %d: expected mark |, got %q", i, diff[i].Mark)
		}
	}
	// 改动的行要配成一对 ~
	last := diff[2]
	if last.Mark != "~" || last.Left != "└── 2" || last.Right != "└── 5" {
		t.Errorf("Expected paired change, got %+v", last)
	}
}

func TestCompareMultilineAddedTree(t *testing.T) {
	before := "0 (size=2)\n└── 1\n"
	after := "0 (size=2)\n└── 1\n2 (size=1)\n"

	diff := CompareMultiline(before, after)
	last := diff[len(diff)-1]
	if last.Mark != "+" || last.Left != "" || last.Right != "2 (size=1)" {
		t.Errorf("Expected insert row for the new tree, got %+v", last)
	}
}

func TestCompareMultilineRemovedLine(t *testing.T) {
	before := "0 (size=2)\n└── 1\n2 (size=1)\n"
	after := "0 (size=2)\n└── 1\n"

	diff := CompareMultiline(before, after)
	last := diff[len(diff)-1]
	if last.Mark != "-" || last.Left != "2 (size=1)" || last.Right != "" {
		t.Errorf("Expected delete row for the dropped tree, got %+v", last)
	}
}

func TestIdentical(t *testing.T) {
	dump := "0 (size=2)\n└── 1\n"

	if !Identical(dump, dump) {
		t.Error("Expected identical dumps to compare equal")
	}
	if !Identical("", "") {
		t.Error("Expected two empty dumps to compare equal")
	}
	if Identical(dump, "0 (size=2)\n└── 9\n") {
		t.Error("Expected changed dump to compare different")
	}
}

func TestFormatSideBySideChineseCharacters(t *testing.T) {
	// 左列含中文时补齐宽度靠 runewidth，不能按字节算
	before := "0 (size=2)\n└── 机房A\n"
	after := "0 (size=2)\n└── 机房B\n"

	diff := CompareMultiline(before, after)
	output := FormatSideBySide(diff)

	if !strings.Contains(output, "* Before") || !strings.Contains(output, "* After") {
		t.Errorf("Expected header columns, got:\n%s", output)
	}
	if !strings.Contains(output, "  ~  ") {
		t.Errorf("Expected a paired change row, got:\n%s", output)
	}
	t.Log("\nChinese Character Diff:\n" + output)
}

func TestFormatSideBySideMultipleModifications(t *testing.T) {
	before := "0 (size=3)\n├── 1\n└── 2\n3 (size=1)\n"
	after := "0 (size=4)\n├── 1\n├── 2\n└── 3\n"

	diff := CompareMultiline(before, after)
	output := FormatSideBySide(diff)
	t.Log("\nMultiple Modifications Diff:\n" + output)
}
