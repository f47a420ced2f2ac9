package ulid

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"
)

// Clock supplies the current time. Injecting it keeps generators
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Generator produces ULIDs from a clock and an entropy source. Each
// generator owns independent monotonic state; callers that need
// strict ordering across goroutines must share one instance, callers
// that only need wall-clock ordering are better served by one
// instance per goroutine.
type Generator struct {
	clock   Clock
	entropy io.Reader

	mu       sync.Mutex
	primed   bool
	lastTime uint64
	lastRand [RandomnessSize]byte
}

// NewGenerator builds a generator. A nil clock selects the system
// clock and a nil entropy source selects crypto/rand.
func NewGenerator(clock Clock, entropy io.Reader) *Generator {
	if clock == nil {
		clock = systemClock{}
	}
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{clock: clock, entropy: entropy}
}

// New returns a ULID for the current time with fresh randomness.
// Two calls within the same millisecond carry independent randomness
// and may sort in either order.
func (g *Generator) New() (ULID, error) {
	ms, err := Timestamp(g.clock.Now())
	if err != nil {
		return ULID{}, err
	}
	rnd, err := g.read()
	if err != nil {
		return ULID{}, err
	}
	return FromParts(ms, rnd)
}

// NewMonotonic returns a ULID strictly greater than every ULID this
// generator previously returned from NewMonotonic. When the clock has
// not advanced past the last issued millisecond, including when it
// moved backwards, the previous randomness is incremented instead of
// redrawn; once the 80-bit space for that millisecond is consumed the
// call fails with ErrMonotonicExhausted and the caller may retry in
// the next millisecond.
func (g *Generator) NewMonotonic() (ULID, error) {
	ms, err := Timestamp(g.clock.Now())
	if err != nil {
		return ULID{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.primed || ms > g.lastTime {
		rnd, err := g.read()
		if err != nil {
			return ULID{}, err
		}
		g.primed = true
		g.lastTime = ms
		g.lastRand = rnd
		return FromParts(ms, rnd)
	}

	next, ok := incrementRandomness(g.lastRand)
	if !ok {
		return ULID{}, fmt.Errorf("%w: timestamp %d", ErrMonotonicExhausted, g.lastTime)
	}
	g.lastRand = next
	return FromParts(g.lastTime, next)
}

func (g *Generator) read() ([RandomnessSize]byte, error) {
	var rnd [RandomnessSize]byte
	if _, err := io.ReadFull(g.entropy, rnd[:]); err != nil {
		return rnd, fmt.Errorf("read entropy: %w", err)
	}
	return rnd, nil
}

// incrementRandomness adds one to an 80-bit big-endian value. The
// second return is false when the value was all ones.
func incrementRandomness(rnd [RandomnessSize]byte) ([RandomnessSize]byte, bool) {
	for i := RandomnessSize - 1; i >= 0; i-- {
		rnd[i]++
		if rnd[i] != 0 {
			return rnd, true
		}
	}
	return rnd, false
}
