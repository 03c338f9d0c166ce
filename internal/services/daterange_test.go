package services

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestChunkRangeTwentyDays(t *testing.T) {
	// 2024-01-01 .. 2024-01-20 inclusive is 20 days.
	chunks := ChunkRange(day(2024, 1, 1), day(2024, 1, 20), 7)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}

	wantDays := []int{7, 7, 6}
	for i, c := range chunks {
		if c.Days() != wantDays[i] {
			t.Errorf("chunk %d spans %d days, want %d", i, c.Days(), wantDays[i])
		}
	}

	if !chunks[0].From.Equal(day(2024, 1, 1)) || !chunks[2].To.Equal(day(2024, 1, 20)) {
		t.Fatalf("chunks do not cover the input range: %v", chunks)
	}
}

func TestChunkRangeNoGapsNoOverlaps(t *testing.T) {
	from := day(2023, 11, 14)
	to := day(2024, 2, 3)

	chunks := ChunkRange(from, to, 7)
	if len(chunks) == 0 {
		t.Fatal("expected chunks for a valid range")
	}

	if !chunks[0].From.Equal(from) {
		t.Fatalf("first chunk starts %v, want %v", chunks[0].From, from)
	}
	if !chunks[len(chunks)-1].To.Equal(to) {
		t.Fatalf("last chunk ends %v, want %v", chunks[len(chunks)-1].To, to)
	}

	for i := 1; i < len(chunks); i++ {
		gap := chunks[i].From.Sub(chunks[i-1].To)
		if gap != 24*time.Hour {
			t.Fatalf("chunk %d starts %v after chunk %d ends; want exactly one day", i, gap, i-1)
		}
	}
}

func TestChunkRangeSingleDay(t *testing.T) {
	chunks := ChunkRange(day(2024, 5, 5), day(2024, 5, 5), 7)
	if len(chunks) != 1 || chunks[0].Days() != 1 {
		t.Fatalf("single-day range should yield one 1-day chunk, got %v", chunks)
	}
}

func TestChunkRangeInvalidInputs(t *testing.T) {
	if got := ChunkRange(day(2024, 1, 20), day(2024, 1, 1), 7); len(got) != 0 {
		t.Fatalf("inverted range should yield no chunks, got %v", got)
	}
	if got := ChunkRange(time.Time{}, day(2024, 1, 1), 7); len(got) != 0 {
		t.Fatalf("zero from should yield no chunks, got %v", got)
	}
	if got := ChunkRange(day(2024, 1, 1), time.Time{}, 7); len(got) != 0 {
		t.Fatalf("zero to should yield no chunks, got %v", got)
	}
	if got := ChunkRange(day(2024, 1, 1), day(2024, 1, 20), 0); len(got) != 0 {
		t.Fatalf("non-positive chunk size should yield no chunks, got %v", got)
	}
}
