package sim

import "testing"

// seqSource replays a fixed list of draws, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestCoinFlip(t *testing.T) {
	tests := []struct {
		draw float64
		p    float64
		want bool
	}{
		{0.3, 0.5, true},
		{0.5, 0.5, true}, // draw equal to p wins
		{0.7, 0.5, false},
		{0.999, 1.0, true},
		{0.001, 0.0, false},
	}

	for _, tt := range tests {
		src := &seqSource{vals: []float64{tt.draw}}
		if got := CoinFlip(src, tt.p); got != tt.want {
			t.Errorf("CoinFlip(draw=%v, p=%v) = %v, want %v", tt.draw, tt.p, got, tt.want)
		}
	}
}

func TestTrialAlwaysLose(t *testing.T) {
	p := Params{
		InitialWealth: 10,
		Bet:           1,
		Target:        20,
		Takehome:      1,
		WinProb:       0, // every flip loses
		Trials:        1,
	}

	res := RunTrial(&seqSource{vals: []float64{0.5}}, p)

	if res.Steps != 10 {
		t.Errorf("steps = %d, want 10 (initial wealth / bet)", res.Steps)
	}
	if res.FinalWealth != 0 {
		t.Errorf("final wealth = %v, want 0", res.FinalWealth)
	}
	if res.Outcome != OutcomeBusted {
		t.Errorf("outcome = %q, want %q", res.Outcome, OutcomeBusted)
	}
}

func TestTrialAlwaysWin(t *testing.T) {
	p := Params{
		InitialWealth: 10,
		Bet:           1,
		Target:        20,
		Takehome:      1,
		WinProb:       1, // every flip wins
		Trials:        1,
	}

	res := RunTrial(&seqSource{vals: []float64{0.5}}, p)

	if res.Steps != 10 {
		t.Errorf("steps = %d, want 10", res.Steps)
	}
	if res.FinalWealth != 20 {
		t.Errorf("final wealth = %v, want 20 (the target)", res.FinalWealth)
	}
	if res.Outcome != OutcomeTarget {
		t.Errorf("outcome = %q, want %q", res.Outcome, OutcomeTarget)
	}
}

func TestTrialBoundaryStart(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		target  float64
		outcome Outcome
	}{
		{"already at target", 40, 40, OutcomeTarget},
		{"already busted", 0, 40, OutcomeBusted},
	}

	for _, tt := range tests {
		p := Params{
			InitialWealth: tt.initial,
			Bet:           1,
			Target:        tt.target,
			Takehome:      1,
			WinProb:       0.5,
			Trials:        1,
		}

		res := RunTrial(&seqSource{vals: []float64{0.5}}, p)

		if res.Steps != 0 {
			t.Errorf("%s: steps = %d, want 0", tt.name, res.Steps)
		}
		if res.Outcome != tt.outcome {
			t.Errorf("%s: outcome = %q, want %q", tt.name, res.Outcome, tt.outcome)
		}
		if res.FinalWealth != tt.initial {
			t.Errorf("%s: final wealth = %v, want %v", tt.name, res.FinalWealth, tt.initial)
		}
	}
}

func TestTrialClampsOvershoot(t *testing.T) {
	// One win of 2 from 19 would overshoot a target of 20; the walk must
	// exit clamped onto the boundary, not above it.
	p := Params{
		InitialWealth: 19,
		Bet:           2,
		Target:        20,
		Takehome:      1,
		WinProb:       1,
		Trials:        1,
	}

	res := RunTrial(&seqSource{vals: []float64{0.5}}, p)

	if res.Steps != 1 {
		t.Errorf("steps = %d, want 1", res.Steps)
	}
	if res.FinalWealth != 20 {
		t.Errorf("final wealth = %v, want clamped to 20", res.FinalWealth)
	}
}

func TestTrialStakeNeverExceedsWealth(t *testing.T) {
	// Wealth 1 with bet 2: the stake is cut down to the remaining wealth,
	// so a loss lands exactly on zero.
	p := Params{
		InitialWealth: 1,
		Bet:           2,
		Target:        20,
		Takehome:      1,
		WinProb:       0,
		Trials:        1,
	}

	res := RunTrial(&seqSource{vals: []float64{0.5}}, p)

	if res.FinalWealth != 0 {
		t.Errorf("final wealth = %v, want 0", res.FinalWealth)
	}
	if res.Steps != 1 {
		t.Errorf("steps = %d, want 1", res.Steps)
	}
}

func TestTrialDeterministic(t *testing.T) {
	// win, lose, lose, win, lose, lose
	draws := []float64{0.2, 0.8, 0.9, 0.4, 0.7, 0.6}
	p := Params{
		InitialWealth: 2,
		Bet:           1,
		Target:        4,
		Takehome:      1,
		WinProb:       0.5,
		Trials:        1,
	}

	// 2 -> 3 -> 2 -> 1 -> 2 -> 1 -> 0: busted after six flips.
	res := RunTrial(&seqSource{vals: draws}, p)

	if res.Steps != 6 {
		t.Errorf("steps = %d, want 6", res.Steps)
	}
	if res.Outcome != OutcomeBusted {
		t.Errorf("outcome = %q, want %q", res.Outcome, OutcomeBusted)
	}

	// Same draws, same walk.
	again := RunTrial(&seqSource{vals: draws}, p)
	if again.Steps != res.Steps || again.FinalWealth != res.FinalWealth || again.Outcome != res.Outcome {
		t.Errorf("replay differs: %+v vs %+v", again, res)
	}
}

func TestTrialRecordsPath(t *testing.T) {
	p := Params{
		InitialWealth: 10,
		Bet:           1,
		Target:        20,
		Takehome:      1,
		WinProb:       0,
		Trials:        1,
		RecordPath:    true,
	}

	res := RunTrial(&seqSource{vals: []float64{0.5}}, p)

	if len(res.Path) != res.Steps+1 {
		t.Fatalf("path length = %d, want steps+1 = %d", len(res.Path), res.Steps+1)
	}
	if res.Path[0] != p.InitialWealth {
		t.Errorf("path[0] = %v, want %v", res.Path[0], p.InitialWealth)
	}
	if res.Path[len(res.Path)-1] != res.FinalWealth {
		t.Errorf("path end = %v, want %v", res.Path[len(res.Path)-1], res.FinalWealth)
	}
	for _, w := range res.Path {
		if w < 0 || w > p.Target {
			t.Errorf("path value %v outside [0, %v]", w, p.Target)
		}
	}
}

func TestTrialTakehome(t *testing.T) {
	// Takehome 0.5 credits half the stake on a win: 19 + 2*0.5 = 20.
	p := Params{
		InitialWealth: 19,
		Bet:           2,
		Target:        20,
		Takehome:      0.5,
		WinProb:       1,
		Trials:        1,
	}

	res := RunTrial(&seqSource{vals: []float64{0.5}}, p)

	if res.FinalWealth != 20 || res.Steps != 1 {
		t.Errorf("got wealth %v in %d steps, want 20 in 1", res.FinalWealth, res.Steps)
	}
}
