package slottime

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "afternoon meridiem", in: "04:00 PM", want: "16:00"},
		{name: "morning meridiem", in: "11:30 AM", want: "11:30"},
		{name: "noon", in: "12:00 PM", want: "12:00"},
		{name: "midnight", in: "12:00 AM", want: "00:00"},
		{name: "already canonical", in: "16:00", want: "16:00"},
		{name: "garbage", in: "four pm", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %q", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormat12h(t *testing.T) {
	if got := Format12h("16:00"); got != "04:00 PM" {
		t.Fatalf("Format12h(16:00) = %q", got)
	}
	if got := Format12h("00:30"); got != "12:30 AM" {
		t.Fatalf("Format12h(00:30) = %q", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", d)
	}
	if FormatDate(d) != "2025-03-09" {
		t.Fatalf("round trip mismatch: %q", FormatDate(d))
	}
	if _, err := ParseDate("09/03/2025"); err == nil {
		t.Fatal("expected error for slash format")
	}
}

func TestWindow(t *testing.T) {
	slots := Window(11, 17, 30)
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "11:00" {
		t.Fatalf("first slot = %q", slots[0])
	}
	if slots[len(slots)-1] != "16:30" {
		t.Fatalf("last slot = %q", slots[len(slots)-1])
	}

	last := Window(23, 24, 30)
	if len(last) != 2 || last[0] != "23:00" || last[1] != "23:30" {
		t.Fatalf("end-of-day window = %v, want [23:00 23:30]", last)
	}

	if got := Window(17, 11, 30); got != nil {
		t.Fatalf("inverted window should be empty, got %v", got)
	}
	if got := Window(9, 9, 15); got != nil {
		t.Fatalf("zero-width window should be empty, got %v", got)
	}
}
