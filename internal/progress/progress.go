// Package progress carries per-file updates from long-running batch
// operations to the caller. Funcs run inline on the batch path, so
// implementations should only render or count.
package progress

// Stage names published with every update.
const (
	StageAnalyze = "analyze"
	StageSort    = "sort"
	StageReset   = "reset"
	StageSplit   = "split"
)

// Update describes one processed file within a stage. Index counts from 1 to
// Total. Target is the destination category or folder, empty during
// analysis.
type Update struct {
	Stage    string
	Index    int
	Total    int
	Filename string
	Target   string
}

// Func receives updates. A nil Func disables reporting.
type Func func(Update)

// Notify invokes fn when it is non-nil. A panic inside fn is swallowed so a
// misbehaving sink cannot abort the batch it is observing.
func Notify(fn Func, update Update) {
	if fn == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	fn(update)
}
