package trip

import "testing"

func TestSplitTitle_WithPrefix(t *testing.T) {
	prefix, main := SplitTitle("Golf_Round 1")
	if prefix != "Golf" || main != "Round 1" {
		t.Errorf("got (%q, %q), want (Golf, Round 1)", prefix, main)
	}
}

func TestSplitTitle_MultipleSeparators(t *testing.T) {
	prefix, main := SplitTitle("Golf_Round_1")
	if prefix != "Golf" || main != "Round_1" {
		t.Errorf("got (%q, %q), want (Golf, Round_1)", prefix, main)
	}
}

func TestSplitTitle_NoSeparator(t *testing.T) {
	prefix, main := SplitTitle("Dinner")
	if prefix != "" || main != "Dinner" {
		t.Errorf("got (%q, %q), want (, Dinner)", prefix, main)
	}
}

func TestDayDate(t *testing.T) {
	d, ok := DayDate("3/1", 2026)
	if !ok {
		t.Fatal("3/1 should parse")
	}
	if d.Month() != 3 || d.Day() != 1 || d.Year() != 2026 {
		t.Errorf("got %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("expected local midnight, got %v", d)
	}
}

func TestDayDate_Unparseable(t *testing.T) {
	for _, day := range []string{"", "3", "a/b", "0/1", "3/0", "3/x"} {
		if _, ok := DayDate(day, 2026); ok {
			t.Errorf("%q should not parse", day)
		}
	}
}

func TestDayKey_UnparseableIsZero(t *testing.T) {
	if k := DayKey("??", 2026); k != 0 {
		t.Errorf("DayKey = %d, want 0", k)
	}
}

func TestDayKey_Ordering(t *testing.T) {
	if DayKey("3/1", 2026) >= DayKey("3/2", 2026) {
		t.Error("3/1 should sort before 3/2")
	}
}

func TestParseTimeMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"9:30", 570, true},
		{"09:00", 540, true},
		{"0:00", 0, true},
		{"14:05", 845, true},
		{"", 0, false},
		{"-", 0, false},
		{" - ", 0, false},
		{"ab:cd", 0, false},
		{"9", 0, false},
		{"9:xx", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseTimeMinutes(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseTimeMinutes(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestFormatRange(t *testing.T) {
	got := FormatRange([]string{"3/3", "3/1", "3/5"}, 2026)
	if got != "3/1 - 3/5" {
		t.Errorf("range = %q, want %q", got, "3/1 - 3/5")
	}
}

func TestFormatRange_SkipsUnparseable(t *testing.T) {
	got := FormatRange([]string{"??", "3/2"}, 2026)
	if got != "3/2 - 3/2" {
		t.Errorf("range = %q, want %q", got, "3/2 - 3/2")
	}
}

func TestFormatRange_Empty(t *testing.T) {
	if got := FormatRange(nil, 2026); got != "" {
		t.Errorf("range = %q, want empty", got)
	}
	if got := FormatRange([]string{"??"}, 2026); got != "" {
		t.Errorf("range = %q, want empty", got)
	}
}
