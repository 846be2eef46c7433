package pattern

import "fmt"

// RankUnknown denotes the rank ∞ in the rank map: a representative
// coloring not yet known reducible at any finite rank.
const RankUnknown = -1

// RankRecord is the rank-map value: {rank, reason}. The invariant
// rank=0 ⇔ reason="extendable", rank=r>0 ⇔ reason="reducible with color
// pair X/Y", rank=∞ ⇔ reason="" is enforced by every mutation path in
// this package (newExtendableRecord, newUnknownRecord, and the fixed-
// point's rank transition in fixedpoint.go), never by outside callers.
type RankRecord struct {
	Rank   int
	Reason string
}

func newUnknownRecord() RankRecord {
	return RankRecord{Rank: RankUnknown, Reason: ""}
}

func newExtendableRecord() RankRecord {
	return RankRecord{Rank: 0, Reason: "extendable"}
}

func newReducibleRecord(rank int, i, j Color) RankRecord {
	return RankRecord{
		Rank:   rank,
		Reason: fmt.Sprintf("reducible with color pair %d/%d", i.Int(), j.Int()),
	}
}

// rankMap is a partial mapping from representative colorings (keyed by
// their Coloring.key()) to a RankRecord. It is built once at construction
// and mutated only by the fixed-point engine, monotonically: a rank
// transitions at most once from ∞ to a finite value.
type rankMap struct {
	records map[string]*RankRecord
}

func newRankMap() *rankMap {
	return &rankMap{records: make(map[string]*RankRecord)}
}

func (rm *rankMap) set(c Coloring, rec RankRecord) {
	rm.records[c.key()] = &rec
}

func (rm *rankMap) get(c Coloring) RankRecord {
	if rec, ok := rm.records[c.key()]; ok {
		return *rec
	}
	return newUnknownRecord()
}

// isKnownBelow reports whether c's current rank is strictly less than r.
// A representative discovered at rank r must not be treated as
// known-reducible by other tests within the same iteration r.
func (rm *rankMap) isKnownBelow(c Coloring, r int) bool {
	rec := rm.get(c)
	return rec.Rank != RankUnknown && rec.Rank < r
}
