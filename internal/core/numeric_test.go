package core

import (
	"errors"
	"testing"
)

func TestParseMacro(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{"12,5", 12.5, true},
		{" 320 ", 320, true},
		{"0", 0, true},
		{"-4", -4, true},
		{"1e2", 100, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12.3.4", 0, false},
		{"nan", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"-inf", 0, false},
	}
	for i, tc := range cases {
		got, err := ParseMacro(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("case %d expected ok, got %v", i, err)
			}
			if got != tc.want {
				t.Fatalf("case %d expected %v, got %v", i, tc.want, got)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("case %d expected ErrInvalidNumber, got %v", i, err)
		}
	}
}

func TestFormatMacro(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{12.5, "12.5"},
		{0, "0"},
		{530.25, "530.25"},
	}
	for i, tc := range cases {
		if got := FormatMacro(tc.in); got != tc.want {
			t.Fatalf("case %d expected %q, got %q", i, tc.want, got)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.0},
		{1.006, 1.01},
		{0.125, 0.13},
		{17.333333, 17.33},
		{-2.676, -2.68},
		{0, 0},
	}
	for i, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, got)
		}
	}
}
