package simulation

import "ruin-platform/internal/sim"

type RunRequest struct {
	Params     sim.Params `json:"params"`
	ClientSeed string     `json:"client_seed"`
}

type Run struct {
	ID             string      `json:"id"`
	Params         sim.Params  `json:"params"`
	Summary        sim.Summary `json:"summary"`
	ServerSeedHash string      `json:"server_seed_hash"`
	ClientSeed     string      `json:"client_seed,omitempty"`
	ElapsedMs      int64       `json:"elapsed_ms"`
	CreatedAt      int64       `json:"created_at"`
}
