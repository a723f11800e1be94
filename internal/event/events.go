package event

const (
	EventRunCompleted = "simulation.completed"
	EventRunQueued    = "simulation.queued"
	EventSeedRotated  = "seed.rotated"
)
