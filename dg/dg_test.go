package dg

import "testing"

func TestTo(t *testing.T) {
	cases := map[int]string{
		0:   "0",
		7:   "7",
		10:  "X",
		11:  "E",
		12:  "10",
		23:  "1E",
		144: "100",
		-19: "-17",
	}

	for n, want := range cases {
		if got := To(n); got != want {
			t.Errorf("Expected ‘%s’ for %d but got ‘%s’", want, n, got)
		}
	}
}

func TestFrom(t *testing.T) {
	cases := map[string]int{
		"0":     0,
		"7":     7,
		"X":     10,
		"E":     11,
		"10":    12,
		"1E":    23,
		"100":   144,
		"0z17":  19,
		"-17":   -19,
		"0z1XE": 275,
	}

	for s, want := range cases {
		got, err := From(s)
		if err != nil {
			t.Fatalf("From failed on ‘%s’: %s", s, err)
		}
		if got != want {
			t.Errorf("Expected %d for ‘%s’ but got %d", want, s, got)
		}
	}
}

func TestFromInvalid(t *testing.T) {
	for _, s := range []string{"", "0z", "1R", "0zT"} {
		if _, err := From(s); err == nil {
			t.Errorf("Expected an error for ‘%s’", s)
		}
	}
}

func TestAdd(t *testing.T) {
	got, err := Add("0z17", "5")
	if err != nil {
		t.Fatalf("Add failed: %s", err)
	}
	if got != "20" {
		t.Fatalf("Expected ‘20’ but got ‘%s’", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for n := -50; n <= 300; n++ {
		got, err := From(To(n))
		if err != nil {
			t.Fatalf("From failed on %d: %s", n, err)
		}
		if got != n {
			t.Fatalf("Expected %d but got %d", n, got)
		}
	}
}
