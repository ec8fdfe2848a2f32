package engine

// minTranspositionDepth is the shallowest remaining depth at which an
// interior node is worth caching. Most nodes are near the leaves;
// caching them churns the table without reducing branching, since
// they're cheap to re-enter anyway.
const minTranspositionDepth = 3

// TranspositionEntry is the cached result of having searched a
// position to at least Depth plies.
type TranspositionEntry struct {
	Depth int
	Eval  Evaluation
}

// TranspositionTable maps a position hash to the most recently inserted
// search result for it, whatever its depth. Unlike a fixed-size, aged, bucketed table, it
// replaces unconditionally on collision and is bounded only by
// available memory: no aging, no bucket, no two-tier scheme.
type TranspositionTable struct {
	entries map[uint64]TranspositionEntry

	inserts uint64
	probes  uint64
	hits    uint64
}

// NewTranspositionTable creates an empty transposition table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[uint64]TranspositionEntry)}
}

// Get looks up hash and reports whether an entry exists at all. The
// caller checks the entry's Depth against the depth it actually needs
// (see Reusable) before trusting its score; any entry, regardless of
// depth, may still be used to order moves.
func (tt *TranspositionTable) Get(hash uint64) (TranspositionEntry, bool) {
	tt.probes++
	e, ok := tt.entries[hash]
	if ok {
		tt.hits++
	}
	return e, ok
}

// Reusable reports whether a cached entry found at remaining search
// depth d can be reused directly instead of recomputed: the entry must
// have been computed at a depth at least as deep as what's needed now.
func Reusable(entry TranspositionEntry, d int) bool {
	return entry.Depth >= d
}

// Insert stores a result for hash at the given depth, always replacing
// whatever was there before. It enforces the minimum-depth floor
// itself, so an accidental shallow insert is a silent no-op rather
// than churn.
func (tt *TranspositionTable) Insert(hash uint64, depth int, eval Evaluation) {
	if depth < minTranspositionDepth {
		return
	}
	tt.inserts++
	tt.entries[hash] = TranspositionEntry{Depth: depth, Eval: eval}
}

// Len returns the number of cached entries.
func (tt *TranspositionTable) Len() int {
	return len(tt.entries)
}

// Clear empties the table and resets its statistics.
func (tt *TranspositionTable) Clear() {
	tt.entries = make(map[uint64]TranspositionEntry)
	tt.inserts, tt.probes, tt.hits = 0, 0, 0
}

// HitRate returns the fraction of probes that found an entry, for
// diagnostics; it does not affect Reusable or Insert.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes)
}
