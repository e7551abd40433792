package ids

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// New returns a wall-clock id in unix milliseconds. Monotonic enough for
// human-paced creation; collections that can grow in bursts use NewSuffixed.
func New() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// NewSuffixed appends a 9-char base36 random suffix so that rapid successive
// calls within the same millisecond still produce distinct ids.
func NewSuffixed() string {
	mu.Lock()
	defer mu.Unlock()
	buf := make([]byte, 9)
	for i := range buf {
		buf[i] = base36[rng.Intn(len(base36))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + string(buf)
}
