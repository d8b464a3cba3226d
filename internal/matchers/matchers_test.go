package matchers

import "testing"

func TestExact(t *testing.T) {
	for _, tc := range []struct {
		selection, value string
		want             bool
	}{
		{"All", "COMPSCI", true},
		{"All", "", true},
		{"COMPSCI", "COMPSCI", true},
		{"COMPSCI", "compsci", false},
		{"Fall", "Winter", false},
	} {
		if got := Exact(tc.selection, tc.value); got != tc.want {
			t.Fatalf("Exact(%q, %q): expected %v, got %v", tc.selection, tc.value, tc.want, got)
		}
	}
}

func TestRange(t *testing.T) {
	for _, tc := range []struct {
		ranges, value string
		want          bool
	}{
		{"39", "39C", true},
		{"39", "41", false},
		{"10-20", "15", true},
		{"10-20", "25", false},
		{"10-20", "10", true},
		{"10-20", "20", true},
		{"39C", "39C", true},
		{"39c", "39C", true},
		{"39C", "39", false},
		{" 3 9 ", "39", true},
		{"5, 10-20", "12A", true},
		{"5, 10-20", "5", true},
		{"abc, 39", "39", true},
		{"abc", "39", false},
		{"20-10", "15", false},
		{"1-2-3, 7", "7", true},
		{"", "39", false},
		{"   ", "39", false},
		{"39", "", false},
		{"10-20", "H2", false},
	} {
		if got := Range(tc.ranges, tc.value); got != tc.want {
			t.Fatalf("Range(%q, %q): expected %v, got %v", tc.ranges, tc.value, tc.want, got)
		}
	}
}

func TestSubstring(t *testing.T) {
	for _, tc := range []struct {
		selection, value string
		want             bool
	}{
		{"smith", "John Smith", true},
		{"  SMITH ", "john smith", true},
		{"", "anything", true},
		{"   ", "anything", true},
		{"jones", "John Smith", false},
		{"data", "", false},
	} {
		if got := Substring(tc.selection, tc.value); got != tc.want {
			t.Fatalf("Substring(%q, %q): expected %v, got %v", tc.selection, tc.value, tc.want, got)
		}
	}
}
