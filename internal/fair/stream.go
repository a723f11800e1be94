package fair

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Stream is a deterministic uniform source: draw k hashes
// HMAC-SHA256(serverSeed, clientSeed:k) and maps the first 52 bits of the
// digest into [0,1). Anyone holding both seeds can replay the exact draws
// of a run.
type Stream struct {
	server []byte
	client string
	cursor int
}

func NewStream(serverSeed, clientSeed string) *Stream {
	return &Stream{
		server: []byte(serverSeed),
		client: clientSeed,
	}
}

func (s *Stream) Float64() float64 {
	h := hmac.New(sha256.New, s.server)
	h.Write([]byte(s.client + ":" + strconv.Itoa(s.cursor)))
	s.cursor++

	hash := hex.EncodeToString(h.Sum(nil))

	// 13 hex chars = 52 bits, exactly representable in a float64.
	num, _ := strconv.ParseUint(hash[:13], 16, 64)

	return float64(num) / float64(1<<52)
}

// Cursor reports how many draws have been consumed.
func (s *Stream) Cursor() int {
	return s.cursor
}
