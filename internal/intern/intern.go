// Package intern implements the deduplicating UTF-8+NUL string pool that
// backs every StringPtr cell in the index. It is the one part of the
// on-disk format that is append-only in the ordinary sense: entries are
// never revisited or rewritten, only appended once per distinct string
// value, mirroring the segment-file growth discipline ignite's append-only
// log (github.com/iamNilotpal/ignite/internal/storage) used for its on-disk
// records, narrowed here to an in-memory byte slice instead of a file.
package intern

// Pool accumulates UTF-8 strings, each terminated by a single NUL byte, and
// hands back a stable byte offset for each distinct value. Repeated
// insertion of an identical value returns the offset of the first
// insertion; no additional bytes are appended.
//
// The offset returned by Add is the final offset into Bytes(): pool
// contents are never moved or recompacted once written, so a StringPtr
// cell written early in a build remains valid through to Bytes().
type Pool struct {
	data []byte
	seen map[string]uint64
}

// New returns an empty intern pool.
func New() *Pool {
	return &Pool{seen: make(map[string]uint64)}
}

// Add interns s, returning the byte offset (from the start of Bytes()) at
// which its content begins. If s was already interned, the prior offset is
// returned and no bytes are appended.
func (p *Pool) Add(s string) uint64 {
	if offset, ok := p.seen[s]; ok {
		return offset
	}

	offset := uint64(len(p.data))
	p.data = append(p.data, s...)
	p.data = append(p.data, 0)
	p.seen[s] = offset
	return offset
}

// Len returns the current size in bytes of the interned payload.
func (p *Pool) Len() int {
	return len(p.data)
}

// Bytes returns the concatenated, NUL-terminated payload in order of first
// insertion. The returned slice must be treated as read-only by callers
// that intend to keep using the pool afterward.
func (p *Pool) Bytes() []byte {
	return p.data
}
