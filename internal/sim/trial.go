package sim

type Outcome string

const (
	OutcomeBusted Outcome = "busted"
	OutcomeTarget Outcome = "target"
)

type TrialResult struct {
	Steps       int       `json:"steps"`
	FinalWealth float64   `json:"final_wealth"`
	Outcome     Outcome   `json:"outcome"`
	Path        []float64 `json:"path,omitempty"`
}

// RunTrial walks one gambler from InitialWealth until ruin or the target.
// The stake is applied, wealth is clamped back into [0, Target] on
// overshoot, and only then is the loop condition re-tested, so wealth
// never leaves [0, Target]. A walk that starts on a boundary returns
// immediately with zero steps.
func RunTrial(src Source, p Params) TrialResult {
	wealth := p.InitialWealth
	strat := GetStrategy(p.Strategy)

	var path []float64
	if p.RecordPath {
		path = append(path, wealth)
	}

	steps := 0
	prevStake := 0.0
	wonLast := false

	for wealth > 0 && wealth < p.Target {
		stake := strat.Next(prevStake, wonLast, p.Bet)
		if stake > wealth {
			stake = wealth
		}

		wonLast = CoinFlip(src, p.WinProb)
		if wonLast {
			wealth += stake * p.Takehome
		} else {
			wealth -= stake
		}
		prevStake = stake

		if wealth < 0 {
			wealth = 0
		}
		if wealth > p.Target {
			wealth = p.Target
		}

		steps++
		if p.RecordPath {
			path = append(path, wealth)
		}
	}

	outcome := OutcomeTarget
	if wealth <= 0 {
		outcome = OutcomeBusted
	}

	return TrialResult{
		Steps:       steps,
		FinalWealth: wealth,
		Outcome:     outcome,
		Path:        path,
	}
}
