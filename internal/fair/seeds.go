package fair

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// SeedManager holds the current server seed. Only the SHA-256 hash is
// published while the seed is live; the seed itself comes out on rotation
// so past runs can be verified.
type SeedManager struct {
	mu        sync.Mutex
	seed      string
	hash      string
	rotatedAt time.Time
}

func NewSeedManager() *SeedManager {
	m := &SeedManager{}
	m.rotate()
	return m
}

func (m *SeedManager) rotate() string {
	prev := m.seed

	m.seed = generateSeed()
	sum := sha256.Sum256([]byte(m.seed))
	m.hash = hex.EncodeToString(sum[:])
	m.rotatedAt = time.Now()

	return prev
}

// Rotate swaps in a fresh seed and returns the retired one.
func (m *SeedManager) Rotate() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotate()
}

// MaybeRotate retires seeds older than 24h.
func (m *SeedManager) MaybeRotate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if time.Since(m.rotatedAt).Hours() > 24 {
		m.rotate()
	}
}

// Seed returns the live server seed and its published hash.
func (m *SeedManager) Seed() (seed, hash string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seed, m.hash
}

func generateSeed() string {
	buf := make([]byte, 32)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
