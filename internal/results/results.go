package results

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Status marks how a hash lookup resolved
type Status int

const (
	StatusFound Status = iota
	StatusNotFound
	StatusFailed
)

// Result is the outcome of one hash lookup. Not-found and failed are explicit
// sentinels, a submitted hash never resolves silently.
type Result struct {
	Hash     string
	Password string
	Status   Status
}

// Found constructs a result carrying a recovered cleartext password
func Found(hashValue string, password string) Result {
	return Result{Hash: hashValue, Password: password, Status: StatusFound}
}

// NotFound constructs the sentinel for a hash the service holds no password for
func NotFound(hashValue string) Result {
	return Result{Hash: hashValue, Status: StatusNotFound}
}

// Failed constructs the sentinel for a hash whose lookup could not complete
func Failed(hashValue string) Result {
	return Result{Hash: hashValue, Status: StatusFailed}
}

// Line renders the result in the output file format
func (result Result) Line() string {
	switch result.Status {
	case StatusNotFound:
		return result.Hash + ":[not found]"
	case StatusFailed:
		return result.Hash + ":[lookup failed]"
	}
	return result.Hash + ":" + result.Password
}

// Set is an insertion-ordered collection of results keyed by hash value.
// It only ever grows, and iteration order is the order results were recorded.
type Set struct {
	entries *linkedhashmap.Map
}

// NewSet constructs an empty result set
func NewSet() *Set {
	return &Set{entries: linkedhashmap.New()}
}

// Add records a result. Exactly one result per hash: later results for the
// same hash are ignored. Reports whether the result was newly recorded.
func (set *Set) Add(result Result) bool {
	if _, ok := set.entries.Get(result.Hash); ok {
		return false
	}
	set.entries.Put(result.Hash, result)
	return true
}

// Get fetches the result recorded for a hash value
func (set *Set) Get(hashValue string) (Result, bool) {
	value, ok := set.entries.Get(hashValue)
	if !ok {
		return Result{}, false
	}
	return value.(Result), true
}

// Size is the number of resolved hashes
func (set *Set) Size() int {
	return set.entries.Size()
}

// Each visits every result in insertion order
func (set *Set) Each(visit func(Result)) {
	set.entries.Each(func(key interface{}, value interface{}) {
		visit(value.(Result))
	})
}

// Summary counts the recorded results by status
func (set *Set) Summary() (summary Summary) {
	set.Each(func(result Result) {
		summary.Total++
		switch result.Status {
		case StatusFound:
			summary.Found++
		case StatusNotFound:
			summary.NotFound++
		case StatusFailed:
			summary.Failed++
		}
	})
	return summary
}

// Summary is the final tally of a lookup run
type Summary struct {
	Total    int
	Found    int
	NotFound int
	Failed   int
}
