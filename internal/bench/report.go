package bench

import (
	"math"

	"github.com/tidwall/btree"
)

// Report holds the results of one run. Successful results are ranked by size,
// then by ns/op; failed results are kept in arrival order.
type Report struct {
	RunID   string
	ranking *btree.BTreeG[Result]
	Failed  []Result
	next    int
}

// resultLess sorts by size, then speed, then kernel name, then arrival order.
// The arrival sequence keeps two equal measurements from replacing each other.
func resultLess(a, b Result) bool {
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	if a.NsPerOp != b.NsPerOp {
		return a.NsPerOp < b.NsPerOp
	}
	if a.Kernel != b.Kernel {
		return a.Kernel < b.Kernel
	}
	return a.seq < b.seq
}

func newReport(runID string) *Report {
	return &Report{
		RunID:   runID,
		ranking: btree.NewBTreeG[Result](resultLess),
	}
}

func (r *Report) add(res Result) {
	if res.Err != nil {
		r.Failed = append(r.Failed, res)
		return
	}
	r.next++
	res.seq = r.next
	r.ranking.Set(res)
}

// Ranked returns the measured results, fastest first within each size.
func (r *Report) Ranked() []Result {
	return r.ranking.Items()
}

// Fastest returns the quickest kernel measured on inputs of the given size.
func (r *Report) Fastest(size int) (Result, bool) {
	var (
		out   Result
		found bool
	)
	pivot := Result{Size: size, NsPerOp: math.Inf(-1)}
	r.ranking.Ascend(pivot, func(item Result) bool {
		if item.Size == size {
			out, found = item, true
		}
		return false
	})
	return out, found
}

// Len returns the number of measured results.
func (r *Report) Len() int {
	return r.ranking.Len()
}
