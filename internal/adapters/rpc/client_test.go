package rpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestNewClientRequiresConfig(t *testing.T) {
	if _, err := NewClient("", "key"); err == nil {
		t.Fatal("expected error for empty base URL")
	}
	if _, err := NewClient("http://warehouse", ""); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestCallDecodesRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/rpc/get_regions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("apikey"); got != "secret" {
			t.Errorf("apikey header = %q", got)
		}
		w.Write([]byte(`[{"region":"North"},{"region":"South"}]`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	regions, err := c.Regions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regions) != 2 || regions[0] != "North" || regions[1] != "South" {
		t.Fatalf("regions = %v", regions)
	}
}

func TestCallNullBodyIsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "secret")

	regions, err := c.Regions(context.Background())
	if err != nil {
		t.Fatalf("null body must not error, got: %v", err)
	}
	if len(regions) != 0 {
		t.Fatalf("expected empty result, got %v", regions)
	}
}

func TestSelectBuildsFilterQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/rest/v1/site_directory" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("region"); got != "eq.North" {
			t.Errorf("region filter = %q", got)
		}
		w.Write([]byte(`[{"site_id":"N-001"}]`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "secret")

	var rows []struct {
		SiteID string `json:"site_id"`
	}
	params := url.Values{"region": {"eq.North"}}
	if err := c.Select(context.Background(), "site_directory", params, &rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].SiteID != "N-001" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestCallNormalizesRemoteError(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message wins", `{"message":"boom","details":"d","hint":"h","code":"XX000"}`, "boom"},
		{"details next", `{"details":"only details","code":"XX000"}`, "only details"},
		{"hint next", `{"hint":"try later"}`, "try later"},
		{"code last", `{"code":"XX000"}`, "remote error code XX000"},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(tc.body))
		}))

		c, _ := NewClient(srv.URL, "secret")
		_, err := c.Regions(context.Background())
		srv.Close()

		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}

		var re *RemoteError
		if !errors.As(err, &re) {
			t.Fatalf("%s: expected *RemoteError, got %T", tc.name, err)
		}
		if re.Error() != tc.want {
			t.Fatalf("%s: message = %q, want %q", tc.name, re.Error(), tc.want)
		}
	}
}

func TestIsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"canceling statement due to statement timeout","code":"57014"}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "secret")
	_, err := c.Regions(context.Background())

	if !IsTimeout(err) {
		t.Fatalf("expected timeout classification, got %v", err)
	}
	if IsTimeout(errors.New("plain")) {
		t.Fatal("plain error must not classify as timeout")
	}
}
