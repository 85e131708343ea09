package ingest

import "testing"

func TestReadString(t *testing.T) {
	row := RawRow{"name": "  Widget  ", "empty": "", "blank": "   "}

	if got := ReadString(row, "name"); got == nil || *got != "Widget" {
		t.Errorf("expected trimmed Widget, got %v", got)
	}
	if got := ReadString(row, "empty"); got != nil {
		t.Errorf("empty cell should be nil, got %q", *got)
	}
	if got := ReadString(row, "blank"); got != nil {
		t.Errorf("whitespace-only cell should be nil, got %q", *got)
	}
	if got := ReadString(row, "missing"); got != nil {
		t.Errorf("absent header should be nil, got %q", *got)
	}
	if got := ReadString(row, ""); got != nil {
		t.Errorf("unresolved column should be nil, got %q", *got)
	}
}

func TestReadNumber(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want float64
		ok   bool
	}{
		{"plain", "19.99", 19.99, true},
		{"currency and separators", "₹1,099.00", 1099, true},
		{"negative", "-42.5", -42.5, true},
		{"percent suffix", "64%", 64, true},
		{"not a number", "not-a-number", 0, false},
		{"empty", "", 0, false},
		{"symbols only", "$,", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := RawRow{"v": tt.cell}
			got := ReadNumber(row, "v")
			if tt.ok {
				if got == nil || *got != tt.want {
					t.Errorf("ReadNumber(%q) = %v, want %v", tt.cell, got, tt.want)
				}
			} else if got != nil {
				t.Errorf("ReadNumber(%q) = %v, want nil", tt.cell, *got)
			}
		})
	}
}

func TestReadIntegerFloors(t *testing.T) {
	row := RawRow{"q": "3.9", "neg": "-1.5", "bad": "x"}

	if got := ReadInteger(row, "q"); got == nil || *got != 3 {
		t.Errorf("expected floor 3, got %v", got)
	}
	if got := ReadInteger(row, "neg"); got == nil || *got != -2 {
		t.Errorf("floor of -1.5 should be -2, got %v", got)
	}
	if got := ReadInteger(row, "bad"); got != nil {
		t.Errorf("unparseable integer should be nil, got %v", *got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-05", "2024-03-05", true},
		{"2024/03/05", "2024-03-05", true},
		{"03/05/2024", "2024-03-05", true},
		{"3/5/2024", "2024-03-05", true},
		{"Mar 5, 2024", "2024-03-05", true},
		{"5-Mar-2024", "2024-03-05", true},
		{"yesterday", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.Format("2006-01-02") != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestIsISODate(t *testing.T) {
	if !IsISODate("2024-12-31") {
		t.Error("2024-12-31 should be a valid ISO date")
	}
	if IsISODate("2024-02-30") {
		t.Error("2024-02-30 is not a real calendar date")
	}
	if IsISODate("2024-1-05") {
		t.Error("unpadded month should not pass")
	}
	if IsISODate("03/05/2024") {
		t.Error("US-style date is not ISO")
	}
}
