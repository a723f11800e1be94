package simulation

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ruin-platform/internal/config"
	"ruin-platform/internal/event"
	"ruin-platform/internal/fair"
	"ruin-platform/internal/logger"
	"ruin-platform/internal/monitoring"
	"ruin-platform/internal/sim"
)

var ErrQueueFull = errors.New("simulation queue full")

type Service struct {
	db    *sql.DB
	bus   *event.Bus
	seeds *fair.SeedManager
	board *Scoreboard
	cfg   *config.Config
	queue chan RunRequest
}

func New(db *sql.DB, bus *event.Bus, seeds *fair.SeedManager, cfg *config.Config) *Service {
	return &Service{
		db:    db,
		bus:   bus,
		seeds: seeds,
		board: NewScoreboard(),
		cfg:   cfg,
		queue: make(chan RunRequest, cfg.QueueSize),
	}
}

// applyDefaults fills fields whose zero value is invalid anyway. WinProb
// and InitialWealth stay as given: zero is a legal, degenerate choice for
// both.
func (s *Service) applyDefaults(p sim.Params) sim.Params {
	if p.Trials <= 0 {
		p.Trials = s.cfg.DefaultTrials
	}
	if p.Workers <= 0 {
		p.Workers = s.cfg.DefaultWorkers
	}
	if p.Takehome == 0 {
		p.Takehome = sim.DefaultTakehome
	}
	return p
}

// Run executes one Monte Carlo run on the live server seed, persists the
// record and publishes it on the bus. Draws come from provably-fair
// deterministic streams, one per worker, so the run can be replayed from
// the seed pair once the server seed is rotated out.
func (s *Service) Run(req RunRequest) (*Run, error) {

	s.seeds.MaybeRotate()

	p := s.applyDefaults(req.Params)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	clientSeed := req.ClientSeed
	if clientSeed == "" {
		clientSeed = uuid.New().String()
	}

	serverSeed, seedHash := s.seeds.Seed()

	start := time.Now()
	summary, err := sim.MonteCarlo(p, func(worker int) sim.Source {
		return fair.NewStream(serverSeed, clientSeed+":"+strconv.Itoa(worker))
	})
	if err != nil {
		return nil, err
	}

	run := &Run{
		ID:             uuid.New().String(),
		Params:         p,
		Summary:        *summary,
		ServerSeedHash: seedHash,
		ClientSeed:     clientSeed,
		ElapsedMs:      time.Since(start).Milliseconds(),
		CreatedAt:      time.Now().Unix(),
	}

	if err := s.insert(run); err != nil {
		return nil, err
	}

	s.board.Record(p, *summary)

	mode := "sequential"
	if p.Workers > 1 {
		mode = "parallel"
	}
	monitoring.SimulationRuns.WithLabelValues(mode).Inc()
	monitoring.TrialsExecuted.Add(float64(p.Trials))

	s.bus.Publish(event.EventRunCompleted, run)

	logger.Log.Info("simulation completed",
		zap.String("run", run.ID),
		zap.Int("trials", p.Trials),
		zap.Float64("expected_wealth", summary.ExpectedWealth),
		zap.Float64("expected_steps", summary.ExpectedSteps),
		zap.Int64("elapsed_ms", run.ElapsedMs),
	)

	return run, nil
}

// Enqueue hands a request to the background worker without blocking.
func (s *Service) Enqueue(req RunRequest) error {
	p := s.applyDefaults(req.Params)
	if err := p.Validate(); err != nil {
		return err
	}
	req.Params = p

	select {
	case s.queue <- req:
		s.bus.Publish(event.EventRunQueued, &req)
		return nil
	default:
		return ErrQueueFull
	}
}

// RotateSeed retires the live server seed and returns it alongside the
// hash of its replacement.
func (s *Service) RotateSeed() (retired string, newHash string) {
	retired = s.seeds.Rotate()
	_, newHash = s.seeds.Seed()

	s.bus.Publish(event.EventSeedRotated, retired)

	return retired, newHash
}

func (s *Service) Board(n int) []BoardEntry {
	return s.board.Top(n)
}

func (s *Service) insert(run *Run) error {
	params, err := json.Marshal(run.Params)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
	INSERT INTO runs(id,params,expected_wealth,expected_steps,ruin_count,target_count,seed_hash,client_seed,elapsed_ms,ts)
	VALUES (?,?,?,?,?,?,?,?,?,?)
	`, run.ID, string(params), run.Summary.ExpectedWealth, run.Summary.ExpectedSteps,
		run.Summary.RuinCount, run.Summary.TargetCount, run.ServerSeedHash,
		run.ClientSeed, run.ElapsedMs, run.CreatedAt)

	return err
}

func (s *Service) Get(id string) (*Run, error) {
	row := s.db.QueryRow(`
	SELECT id,params,expected_wealth,expected_steps,ruin_count,target_count,seed_hash,client_seed,elapsed_ms,ts
	FROM runs WHERE id = ?`, id)

	return scanRun(row)
}

func (s *Service) List(limit int) ([]*Run, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.db.Query(`
	SELECT id,params,expected_wealth,expected_steps,ruin_count,target_count,seed_hash,client_seed,elapsed_ms,ts
	FROM runs ORDER BY ts DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var params string

	err := row.Scan(&run.ID, &params, &run.Summary.ExpectedWealth,
		&run.Summary.ExpectedSteps, &run.Summary.RuinCount,
		&run.Summary.TargetCount, &run.ServerSeedHash, &run.ClientSeed,
		&run.ElapsedMs, &run.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(params), &run.Params); err != nil {
		return nil, err
	}
	run.Summary.Trials = run.Params.Trials

	return &run, nil
}
