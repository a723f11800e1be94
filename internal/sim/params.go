package sim

import "errors"

var (
	ErrInvalidProbability = errors.New("win probability must be in [0,1]")
	ErrInvalidBet         = errors.New("bet must be positive")
	ErrInvalidTrials      = errors.New("trial count must be positive")
	ErrInvalidWealth      = errors.New("initial wealth must be non-negative")
	ErrInvalidTarget      = errors.New("target must be at least initial wealth")
	ErrInvalidTakehome    = errors.New("takehome must be in (0,1]")
)

const (
	DefaultWinProb  = 0.5
	DefaultTakehome = 1.0
	DefaultTrials   = 1000
)

// Params configures one Monte Carlo simulation run.
type Params struct {
	InitialWealth float64 `json:"initial_wealth"`
	Bet           float64 `json:"bet"`
	Target        float64 `json:"target"`
	Takehome      float64 `json:"takehome"`
	WinProb       float64 `json:"win_prob"`
	Trials        int     `json:"trials"`
	Workers       int     `json:"workers,omitempty"`
	Strategy      string  `json:"strategy,omitempty"`
	RecordPath    bool    `json:"record_path,omitempty"`
}

// DefaultParams returns the documented defaults: a fair coin, full takehome,
// and 1000 trials. Wealth, bet and target still have to be supplied.
func DefaultParams() Params {
	return Params{
		Takehome: DefaultTakehome,
		WinProb:  DefaultWinProb,
		Trials:   DefaultTrials,
	}
}

// Validate rejects parameter sets the walk is not defined for. A target
// equal to the initial wealth is allowed and terminates in zero steps.
func (p Params) Validate() error {
	if p.WinProb < 0 || p.WinProb > 1 {
		return ErrInvalidProbability
	}
	if p.Bet <= 0 {
		return ErrInvalidBet
	}
	if p.Trials <= 0 {
		return ErrInvalidTrials
	}
	if p.InitialWealth < 0 {
		return ErrInvalidWealth
	}
	if p.Target < p.InitialWealth {
		return ErrInvalidTarget
	}
	if p.Takehome <= 0 || p.Takehome > 1 {
		return ErrInvalidTakehome
	}
	return nil
}
