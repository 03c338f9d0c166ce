package services

import "time"

// DateRange is an inclusive [From, To] span of whole days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Days returns the number of days the range covers, inclusive.
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// ChunkRange splits an inclusive [from, to] date interval into sub-ranges
// of at most chunkDays days each. Chunks are contiguous and non-overlapping
// and their concatenation reconstructs exactly [from, to]. An inverted or
// zero range yields no chunks; the caller treats that as "fetch nothing"
// rather than defaulting to an unbounded scan.
func ChunkRange(from, to time.Time, chunkDays int) []DateRange {
	if chunkDays < 1 {
		return nil
	}

	from = truncateDay(from)
	to = truncateDay(to)
	if from.IsZero() || to.IsZero() || from.After(to) {
		return nil
	}

	var chunks []DateRange
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, chunkDays) {
		end := cur.AddDate(0, 0, chunkDays-1)
		if end.After(to) {
			end = to
		}
		chunks = append(chunks, DateRange{From: cur, To: end})
	}
	return chunks
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
