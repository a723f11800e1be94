package sim

import "testing"

func TestGetStrategy(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"flat", "flat"},
		{"martingale", "martingale"},
		{"paroli", "paroli"},
		{"", "flat"},
		{"unknown", "flat"},
	}

	for _, tt := range tests {
		if got := GetStrategy(tt.name).Name(); got != tt.want {
			t.Errorf("GetStrategy(%q).Name() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFlatStake(t *testing.T) {
	s := Flat{}
	for _, won := range []bool{true, false} {
		if got := s.Next(8, won, 2); got != 2 {
			t.Errorf("flat stake = %v, want base 2", got)
		}
	}
}

func TestMartingaleStake(t *testing.T) {
	s := Martingale{}

	if got := s.Next(0, false, 2); got != 2 {
		t.Errorf("first stake = %v, want base 2", got)
	}
	if got := s.Next(2, false, 2); got != 4 {
		t.Errorf("stake after loss = %v, want doubled to 4", got)
	}
	if got := s.Next(4, false, 2); got != 8 {
		t.Errorf("stake after second loss = %v, want 8", got)
	}
	if got := s.Next(8, true, 2); got != 2 {
		t.Errorf("stake after win = %v, want reset to base", got)
	}
}

func TestParoliStake(t *testing.T) {
	s := Paroli{}

	if got := s.Next(0, true, 2); got != 2 {
		t.Errorf("first stake = %v, want base 2", got)
	}
	if got := s.Next(2, true, 2); got != 4 {
		t.Errorf("stake after win = %v, want 4", got)
	}
	if got := s.Next(4, true, 2); got != 8 {
		t.Errorf("stake after second win = %v, want 8", got)
	}
	if got := s.Next(8, true, 2); got != 2 {
		t.Errorf("stake after three-step run = %v, want reset to base", got)
	}
	if got := s.Next(4, false, 2); got != 2 {
		t.Errorf("stake after loss = %v, want reset to base", got)
	}
}
