package services

import (
	"context"
	"errors"
	"testing"

	"netops-report-service/internal/adapters/rpc"
	"netops-report-service/internal/domain"
)

// fakeSiteSource replays a scripted outcome per attempt and records the
// caps it was asked for.
type fakeSiteSource struct {
	outcomes []error
	rows     []domain.SitePoint
	caps     []int
}

func (f *fakeSiteSource) SitesByRegion(ctx context.Context, region string, maxRows int) ([]domain.SitePoint, error) {
	f.caps = append(f.caps, maxRows)
	attempt := len(f.caps) - 1
	if attempt < len(f.outcomes) && f.outcomes[attempt] != nil {
		return nil, f.outcomes[attempt]
	}
	return f.rows, nil
}

func timeoutErr() error {
	return &rpc.RemoteError{Message: "canceling statement due to statement timeout", Code: "57014"}
}

func TestFetchSitePointsDegradesOnTimeout(t *testing.T) {
	rows := []domain.SitePoint{site("S1", 33.70, 73.05)}
	src := &fakeSiteSource{
		outcomes: []error{timeoutErr(), timeoutErr(), nil},
		rows:     rows,
	}

	got, err := FetchSitePoints(context.Background(), src, "North")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(src.caps) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(src.caps))
	}
	wantCaps := []int{1500, 200, 100}
	for i, c := range src.caps {
		if c != wantCaps[i] {
			t.Errorf("attempt %d used cap %d, want %d", i, c, wantCaps[i])
		}
	}

	if len(got) != 1 || got[0].SiteID != "S1" {
		t.Fatalf("rows = %v, want third attempt's rows", got)
	}
}

func TestFetchSitePointsAllCapsTimeOut(t *testing.T) {
	src := &fakeSiteSource{outcomes: []error{timeoutErr(), timeoutErr(), timeoutErr()}}

	got, err := FetchSitePoints(context.Background(), src, "North")
	if err != nil {
		t.Fatalf("exhausted caps should return empty rows, not error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
	if len(src.caps) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(src.caps))
	}
}

func TestFetchSitePointsNonTimeoutAborts(t *testing.T) {
	src := &fakeSiteSource{outcomes: []error{&rpc.RemoteError{Message: "permission denied", Code: "42501"}}}

	_, err := FetchSitePoints(context.Background(), src, "North")
	if err == nil {
		t.Fatal("expected error for non-timeout failure")
	}
	if len(src.caps) != 1 {
		t.Fatalf("expected exactly 1 attempt, got %d", len(src.caps))
	}

	var re *rpc.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected wrapped *RemoteError, got %T", err)
	}
}

func TestFetchSitePointsDropsUnplottable(t *testing.T) {
	src := &fakeSiteSource{rows: []domain.SitePoint{
		site("S1", 33.70, 73.05),
		{SiteID: "S2", Latitude: f64(33.70)},
		{SiteID: "S3"},
	}}

	got, err := FetchSitePoints(context.Background(), src, "North")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].SiteID != "S1" {
		t.Fatalf("expected only plottable rows, got %v", got)
	}
}

func TestFetchSitePointsEmptyRegion(t *testing.T) {
	src := &fakeSiteSource{}

	got, err := FetchSitePoints(context.Background(), src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 || len(src.caps) != 0 {
		t.Fatalf("empty region must short-circuit, got rows=%v attempts=%d", got, len(src.caps))
	}
}
