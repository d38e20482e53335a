package models

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		want                           bool
	}{
		{"identical", 540, 660, 540, 660, true},
		{"partial right", 540, 660, 600, 720, true},
		{"partial left", 600, 720, 540, 660, true},
		{"containment", 540, 720, 600, 660, true},
		{"touching end-to-start", 540, 600, 600, 660, false},
		{"touching start-to-end", 600, 660, 540, 600, false},
		{"disjoint", 480, 510, 600, 660, false},
	}
	for _, tt := range cases {
		if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
			t.Errorf("%s: Overlaps(%d,%d,%d,%d)=%v, want %v",
				tt.name, tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
		}
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	windows := [][2]int{{480, 510}, {540, 660}, {600, 720}, {600, 660}, {660, 690}}
	for _, a := range windows {
		for _, b := range windows {
			if Overlaps(a[0], a[1], b[0], b[1]) != Overlaps(b[0], b[1], a[0], a[1]) {
				t.Errorf("Overlaps not symmetric for %v and %v", a, b)
			}
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9am", 0, true},
		{"", 0, true},
	}
	for _, tt := range cases {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) err=%v, wantErr=%v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseClock(%q)=%d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	for _, mins := range []int{0, 480, 570, 1439} {
		back, err := ParseClock(FormatClock(mins))
		if err != nil {
			t.Fatalf("FormatClock(%d) produced unparseable value: %v", mins, err)
		}
		if back != mins {
			t.Errorf("round trip of %d gave %d", mins, back)
		}
	}
}
