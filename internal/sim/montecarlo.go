package sim

import (
	"sync"
	"time"
)

// SourceFactory hands out an independent random source for worker i.
type SourceFactory func(worker int) Source

type Summary struct {
	Trials         int       `json:"trials"`
	ExpectedWealth float64   `json:"expected_wealth"`
	ExpectedSteps  float64   `json:"expected_steps"`
	RuinCount      int       `json:"ruin_count"`
	TargetCount    int       `json:"target_count"`
	MaxSteps       int       `json:"max_steps"`
	LastPath       []float64 `json:"last_path,omitempty"`
}

type partial struct {
	steps    int
	wealth   float64
	ruin     int
	target   int
	maxSteps int
	lastPath []float64
}

func (a *partial) add(b partial) {
	a.steps += b.steps
	a.wealth += b.wealth
	a.ruin += b.ruin
	a.target += b.target
	if b.maxSteps > a.maxSteps {
		a.maxSteps = b.maxSteps
	}
	if b.lastPath != nil {
		a.lastPath = b.lastPath
	}
}

// MonteCarlo runs p.Trials independent trials and averages their step
// counts and final wealth. With Workers > 1 the trials are split across a
// worker pool, one Source per worker, and the partial sums folded by
// addition; the fold is commutative so worker completion order does not
// matter. A nil factory gets a time-seeded source per worker.
func MonteCarlo(p Params, sources SourceFactory) (*Summary, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if sources == nil {
		base := time.Now().UnixNano()
		sources = func(worker int) Source {
			return NewSource(base + int64(worker)*67890)
		}
	}

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > p.Trials {
		workers = p.Trials
	}

	var total partial
	if workers == 1 {
		total = runTrials(sources(0), p, p.Trials)
	} else {
		per := p.Trials / workers
		rem := p.Trials % workers

		results := make(chan partial, workers)
		var wg sync.WaitGroup

		for i := 0; i < workers; i++ {
			n := per
			if i == workers-1 {
				n += rem
			}

			wg.Add(1)
			go func(worker, n int) {
				defer wg.Done()
				results <- runTrials(sources(worker), p, n)
			}(i, n)
		}

		go func() {
			wg.Wait()
			close(results)
		}()

		for part := range results {
			total.add(part)
		}
	}

	return &Summary{
		Trials:         p.Trials,
		ExpectedWealth: total.wealth / float64(p.Trials),
		ExpectedSteps:  float64(total.steps) / float64(p.Trials),
		RuinCount:      total.ruin,
		TargetCount:    total.target,
		MaxSteps:       total.maxSteps,
		LastPath:       total.lastPath,
	}, nil
}

// runTrials accumulates n trials on one source. The trajectory, when asked
// for, is captured on the final trial only.
func runTrials(src Source, p Params, n int) partial {
	var acc partial
	for i := 0; i < n; i++ {
		tp := p
		tp.RecordPath = p.RecordPath && i == n-1

		res := RunTrial(src, tp)

		acc.steps += res.Steps
		acc.wealth += res.FinalWealth
		if res.Outcome == OutcomeBusted {
			acc.ruin++
		} else {
			acc.target++
		}
		if res.Steps > acc.maxSteps {
			acc.maxSteps = res.Steps
		}
		if res.Path != nil {
			acc.lastPath = res.Path
		}
	}
	return acc
}
