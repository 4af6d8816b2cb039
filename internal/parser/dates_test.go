package parser

import (
	"testing"
	"time"
)

func TestParseDateCell_CommonLayouts(t *testing.T) {
	t.Parallel()

	want := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)

	for _, text := range []string{
		"2025/8/5",
		"2025/08/05",
		"2025-8-5",
		"2025-08-05",
		"8-5-25",
		"08-05-25",
		"8/5/25",
		"2025年8月5日",
		"2025/8/5 00:00:00",
	} {
		got, ok := ParseDateCell(text)
		if !ok {
			t.Fatalf("%q 應解讀為日期", text)
		}
		if !got.Equal(want) {
			t.Fatalf("%q = %v, want %v", text, got, want)
		}
	}
}

func TestParseDateCell_SerialNumber(t *testing.T) {
	t.Parallel()

	// 45874 = 2025-08-05
	got, ok := ParseDateCell("45874")
	if !ok {
		t.Fatalf("序列值應解讀為日期")
	}
	want := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("serial 45874 = %v, want %v", got, want)
	}
}

func TestParseDateCell_NonDates(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"", "早", "王小明", "備註", "123", "8月", "診所",
	} {
		if IsDateCell(text) {
			t.Fatalf("%q 不應解讀為日期", text)
		}
	}
}
