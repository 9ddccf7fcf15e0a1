package model

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	in := time.Date(2024, 3, 10, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	got := Truncate(in)
	if want := Day(2024, 3, 11); !got.Equal(want) {
		t.Fatalf("Truncate = %s, want %s", got, want)
	}
	if got.Location() != time.UTC {
		t.Fatalf("Truncate location = %v, want UTC", got.Location())
	}
}

func TestParseDate(t *testing.T) {
	d := mustDate(t, "2014-07-08")
	if !d.Equal(Day(2014, time.July, 8)) {
		t.Fatalf("ParseDate = %s, want 2014-07-08", d)
	}
	if _, err := ParseDate("08/07/2014"); err == nil {
		t.Fatal("ParseDate(08/07/2014) = nil error, want error")
	}
}

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC))
	if !c.Today().Equal(Day(2024, 1, 2)) {
		t.Fatalf("Today() = %s, want 2024-01-02", c.Today())
	}
}

func TestSystemClock(t *testing.T) {
	today := SystemClock{}.Today()
	if !today.Equal(Truncate(today)) {
		t.Fatalf("Today() = %s has a time-of-day component", today)
	}
}
