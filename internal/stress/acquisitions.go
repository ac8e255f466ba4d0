package stress

import "github.com/eapache/queue"

// acquisitionLog records the worker id of every lock acquisition in order.
// It is not safe for concurrent use; append only while holding the lock
// under test.
type acquisitionLog struct {
	q *queue.Queue
}

func newAcquisitionLog() *acquisitionLog {
	return &acquisitionLog{q: queue.New()}
}

func (a *acquisitionLog) record(worker int) {
	a.q.Add(worker)
}

func (a *acquisitionLog) len() int {
	return a.q.Length()
}

// drainMaxStreak empties the log and returns the longest run of consecutive
// acquisitions by the same worker. A streak equal to a worker's whole
// iteration count means the others were starved for that stretch.
func (a *acquisitionLog) drainMaxStreak() int {
	best, cur, last := 0, 0, -1
	for a.q.Length() > 0 {
		w := a.q.Remove().(int)
		if w == last {
			cur++
		} else {
			cur, last = 1, w
		}
		if cur > best {
			best = cur
		}
	}
	return best
}
