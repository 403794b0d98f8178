package passx

import (
	"github.com/zeroleaks/passx/internal/dedupe"
)

// MaxInMemoryDedupeSize (default : 100 MB)
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

// AssembleOptions controls the final assembly pass
type AssembleOptions struct {
	// MinLength / MaxLength filter candidates by rune count
	MinLength int
	MaxLength int
	// Limit truncates output to the first N unique candidates in
	// generation order (0 = no limit). Truncation is always first-N,
	// never sampling.
	Limit int
	// SizeHint is the estimated output size in bytes, values above
	// MaxInMemoryDedupeSize switch deduplication to the disk backend
	SizeHint int
}

// Assembler merges candidate streams into the final wordlist: one
// deduplication pass keyed on exact string equality, a length filter
// and deterministic truncation. It retains no state across runs.
type Assembler struct {
	receive <-chan string
	backend dedupe.Backend
	opts    AssembleOptions
}

// NewAssembler returns an assembler consuming the given stream.
// Note: if SizeHint is not correct/specified large runs may consume a
// lot of memory.
func NewAssembler(ch <-chan string, opts AssembleOptions) *Assembler {
	a := &Assembler{
		receive: ch,
		opts:    opts,
	}
	if opts.SizeHint <= MaxInMemoryDedupeSize {
		a.backend = dedupe.NewMapBackend()
	} else {
		a.backend = dedupe.NewHybridBackend()
	}
	return a
}

// Drain consumes the stream, dropping candidates outside the length
// bounds and upserting the rest into the dedupe backend
func (a *Assembler) Drain() {
	for val := range a.receive {
		length := len([]rune(val))
		if length < a.opts.MinLength || length > a.opts.MaxLength {
			continue
		}
		a.backend.Upsert(val)
	}
}

// Results iterates over the deduplicated storage and streams the final
// candidates, stopping at Limit when one is configured
func (a *Assembler) Results() <-chan string {
	send := make(chan string, 100)
	go func() {
		defer close(send)
		count := 0
		a.backend.IterCallback(func(elem string) bool {
			if a.opts.Limit > 0 && count >= a.opts.Limit {
				return false
			}
			send <- elem
			count++
			return true
		})
		a.backend.Cleanup()
	}()
	return send
}
