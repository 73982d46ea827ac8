package utils

import "testing"

func TestValidDayOfMonth(t *testing.T) {
	for _, d := range []int{1, 15, 31} {
		if !ValidDayOfMonth(d) {
			t.Errorf("day %d should be valid", d)
		}
	}
	for _, d := range []int{0, -1, 32} {
		if ValidDayOfMonth(d) {
			t.Errorf("day %d should be invalid", d)
		}
	}
}

func TestValidHexColor(t *testing.T) {
	for _, c := range []string{"#2563eb", "#FFFFFF", "#000000"} {
		if !ValidHexColor(c) {
			t.Errorf("%q should be valid", c)
		}
	}
	for _, c := range []string{"2563eb", "#25e", "#25x3eb", "", "#2563ebff"} {
		if ValidHexColor(c) {
			t.Errorf("%q should be invalid", c)
		}
	}
}
