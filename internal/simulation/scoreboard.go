package simulation

import (
	"fmt"
	"sort"
	"sync"

	"ruin-platform/internal/sim"
)

type BoardEntry struct {
	Key          string  `json:"key"`
	Trials       int     `json:"trials"`
	TargetCount  int     `json:"target_count"`
	SurvivalRate float64 `json:"survival_rate"`
}

// Scoreboard ranks parameter sets by how often they reached the target.
type Scoreboard struct {
	data map[string]*boardTally
	mu   sync.Mutex
}

type boardTally struct {
	trials int
	target int
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		data: make(map[string]*boardTally),
	}
}

func fingerprint(p sim.Params) string {
	strat := p.Strategy
	if strat == "" {
		strat = "flat"
	}
	return fmt.Sprintf("p=%.3f bet=%g start=%g target=%g takehome=%g strat=%s",
		p.WinProb, p.Bet, p.InitialWealth, p.Target, p.Takehome, strat)
}

func (b *Scoreboard) Record(p sim.Params, sum sim.Summary) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := fingerprint(p)
	t, ok := b.data[key]
	if !ok {
		t = &boardTally{}
		b.data[key] = t
	}
	t.trials += sum.Trials
	t.target += sum.TargetCount
}

func (b *Scoreboard) Top(n int) []BoardEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	var entries []BoardEntry

	for key, t := range b.data {
		entries = append(entries, BoardEntry{
			Key:          key,
			Trials:       t.trials,
			TargetCount:  t.target,
			SurvivalRate: float64(t.target) / float64(t.trials),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SurvivalRate > entries[j].SurvivalRate
	})

	if len(entries) > n {
		return entries[:n]
	}

	return entries
}
