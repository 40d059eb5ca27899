package date

import (
	"testing"
	"time"
)

func TestAppendKeepsChronologicalOrder(t *testing.T) {
	h := new(History[float64])
	d1 := New(2025, time.July, 1)
	d2 := New(2024, time.July, 1)

	// Append two values in reverse order and check the series stays sorted.
	h.Append(d1, 10)
	h.Append(d2, 20)

	if h.Len() != 2 {
		t.Fatalf("Len() = %v want 2", h.Len())
	}
	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("days = %v want [%v %v]", h.days, d2, d1)
	}
	if h.values[0] != 20 || h.values[1] != 10 {
		t.Errorf("values = %v want [20 10]", h.values)
	}
}

func TestAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	d := New(2024, time.January, 2)
	h.Append(d, 1).Append(d, 2)
	if h.Len() != 1 {
		t.Fatalf("Len() = %v want 1", h.Len())
	}
	if v, _ := h.Get(d); v != 2 {
		t.Errorf("Get() = %v want 2", v)
	}
}

func TestAppendAddAccumulates(t *testing.T) {
	h := new(History[float64])
	d := New(2024, time.January, 2)
	h.AppendAdd(d, 10).AppendAdd(d, -4)
	if v, _ := h.Get(d); v != 6 {
		t.Errorf("Get() = %v want 6", v)
	}
}

func TestSumTo(t *testing.T) {
	h := new(History[float64])
	h.AppendAdd(MustParse("2024-01-01"), 10)
	h.AppendAdd(MustParse("2024-02-01"), 5)
	h.AppendAdd(MustParse("2024-03-01"), -8)

	tests := []struct {
		day  string
		want float64
	}{
		{"2023-12-31", 0},
		{"2024-01-01", 10},
		{"2024-01-15", 10},
		{"2024-02-01", 15},
		{"2024-03-01", 7},
		{"2024-12-31", 7},
	}
	for _, tc := range tests {
		if got := h.SumTo(MustParse(tc.day)); got != tc.want {
			t.Errorf("SumTo(%s) = %v want %v", tc.day, got, tc.want)
		}
	}
}

func TestBetween(t *testing.T) {
	h := new(History[float64])
	for i, day := range []string{"2024-01-01", "2024-01-03", "2024-01-05", "2024-01-08"} {
		h.Append(MustParse(day), float64(i))
	}

	var got []Date
	for on := range h.Between(MustParse("2024-01-02"), MustParse("2024-01-05")) {
		got = append(got, on)
	}
	want := []Date{MustParse("2024-01-03"), MustParse("2024-01-05")}
	if len(got) != len(want) {
		t.Fatalf("Between yielded %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Between[%d] = %v want %v", i, got[i], want[i])
		}
	}
}

func TestLatestAndFirst(t *testing.T) {
	h := new(History[float64])
	if day, _ := h.Latest(); !day.IsZero() {
		t.Errorf("Latest() on empty = %v want zero", day)
	}
	h.Append(MustParse("2024-06-01"), 3)
	h.Append(MustParse("2024-01-01"), 1)
	if day, v := h.First(); day != MustParse("2024-01-01") || v != 1 {
		t.Errorf("First() = %v, %v", day, v)
	}
	if day, v := h.Latest(); day != MustParse("2024-06-01") || v != 3 {
		t.Errorf("Latest() = %v, %v", day, v)
	}
}
