// Package idgen produces short, human-scannable record ids such as
// "pac_k3v9zq4821". Ids are not globally unique: a base-36 random part plus
// the last four digits of the millisecond clock keeps collisions unlikely
// inside one clinic, nothing more.
package idgen

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	randomLength = 6
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Record prefixes.
const (
	PrefixUser        = "usr"
	PrefixDoctor      = "doc"
	PrefixPatient     = "pac"
	PrefixAppointment = "cit"
	PrefixHistory     = "his"
	PrefixAudit       = "aud"
)

// Generator builds ids from an injectable random source and clock.
type Generator struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	clock func() time.Time
}

// New returns a Generator seeded from the runtime's random source.
func New() *Generator {
	return &Generator{
		rnd:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		clock: time.Now,
	}
}

// NewWithSource is used by tests to get deterministic ids.
func NewWithSource(src rand.Source, clock func() time.Time) *Generator {
	return &Generator{rnd: rand.New(src), clock: clock}
}

// Generate returns prefix + "_" + 6 base-36 chars + last 4 digits of the
// current unix millisecond timestamp.
func (g *Generator) Generate(prefix string) string {
	g.mu.Lock()
	var b strings.Builder
	b.Grow(len(prefix) + 1 + randomLength + 4)
	b.WriteString(prefix)
	b.WriteByte('_')
	for i := 0; i < randomLength; i++ {
		b.WriteByte(alphabet[g.rnd.IntN(len(alphabet))])
	}
	now := g.clock()
	g.mu.Unlock()

	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 4 {
		millis = millis[len(millis)-4:]
	}
	b.WriteString(millis)
	return b.String()
}
