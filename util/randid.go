package util

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces best-effort unique identifiers from the wall clock
// and a seeded pseudo-random source. The identifiers are not secrets.
//
// An IDGenerator is safe for concurrent use.
type IDGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// IDOption configures an IDGenerator.
type IDOption func(*IDGenerator)

// WithClock replaces the wall clock sampled by Generate.
func WithClock(now func() time.Time) IDOption {
	return func(g *IDGenerator) { g.now = now }
}

// NewIDGenerator creates a generator whose random source is seeded with seed.
// Callers usually seed once at startup, e.g. from the process start time.
func NewIDGenerator(seed int64, opts ...IDOption) *IDGenerator {
	g := &IDGenerator{
		rnd: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a 32 character lowercase hex identifier: the MD5 of the
// current seconds, microseconds and one pseudo-random salt.
func (g *IDGenerator) Generate() string {
	g.mu.Lock()
	now := g.now()
	salt := g.rnd.Int32()
	g.mu.Unlock()

	var raw [20]byte
	binary.LittleEndian.PutUint64(raw[0:8], uint64(now.Unix()))
	binary.LittleEndian.PutUint64(raw[8:16], uint64(now.Nanosecond()/1000))
	binary.LittleEndian.PutUint32(raw[16:20], uint32(salt))
	return MD5Hex(raw[:])
}

// NewUDN returns a UPnP unique device name of the form "uuid:<uuid>".
func NewUDN() string {
	return "uuid:" + uuid.New().String()
}
