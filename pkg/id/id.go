package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a trade ID stamped with the current time.
func New() string {
	return NewAt(time.Now())
}

// NewAt returns a trade ID stamped with t, so that IDs of back-filled
// trades sort by when the trade happened rather than when it was typed in.
// A zero t, or one a ULID cannot carry (before 1970 or after
// ulid.MaxTime), falls back to now.
func NewAt(t time.Time) string {
	if t.IsZero() || t.Before(time.Unix(0, 0)) || ulid.Timestamp(t) > ulid.MaxTime() {
		t = time.Now()
	}

	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t.UTC()), mono)
	if err != nil {
		// Monotonic entropy only fails on overflow within one millisecond.
		panic(err)
	}
	return id.String()
}

// Time extracts the timestamp an ID was created with.
func Time(s string) (time.Time, bool) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, false
	}
	return ulid.Time(id.Time()).UTC(), true
}
