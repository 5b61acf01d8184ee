// host.go — interfaces to the interpreter's external collaborators.
//
// The evaluator never talks to the OS directly: wall-clock, randomness and
// the filesystem come in through these interfaces, installed with system
// defaults by NewInterpreter and replaced with fakes in tests.
package mussel

import (
	"math/rand"
	"os"
	"time"
)

// Clock supplies wall-clock readings for the time library.
type Clock interface {
	NowMillis() int64
	NowSec() float64
}

// RNG supplies uniform integers for the random library. Both bounds are
// inclusive; implementations may assume lo <= hi.
type RNG interface {
	UniformInt(lo, hi int64) int64
}

// Filesystem supplies the directory primitives for the os library.
type Filesystem interface {
	Cwd() (string, error)
	List(path string) ([]string, error)
	Exists(path string) bool
}

// ─────────────────────────── system defaults ───────────────────────────

type systemClock struct{}

func (systemClock) NowMillis() int64 { return time.Now().UnixMilli() }
func (systemClock) NowSec() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

type systemRNG struct {
	r *rand.Rand
}

func newSystemRNG() *systemRNG {
	return &systemRNG{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *systemRNG) UniformInt(lo, hi int64) int64 {
	return lo + s.r.Int63n(hi-lo+1)
}

type osFS struct{}

func (osFS) Cwd() (string, error) { return os.Getwd() }

func (osFS) List(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
