package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestClientFetch(t *testing.T) {
	var gotParams map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = map[string]string{
			"client": r.URL.Query().Get("client"),
			"q":      r.URL.Query().Get("q"),
			"gl":     r.URL.Query().Get("gl"),
			"hl":     r.URL.Query().Get("hl"),
		}
		w.Write([]byte(`["what x",["what x means","what x is"]]`))
	}))
	defer ts.Close()

	client := NewClient(WithEndpoint(ts.URL))
	got := client.Fetch(context.Background(), "what x", "IN")

	want := []string{"what x means", "what x is"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fetch() = %v, want %v", got, want)
	}

	wantParams := map[string]string{"client": "firefox", "q": "what x", "gl": "IN", "hl": "en"}
	if !reflect.DeepEqual(gotParams, wantParams) {
		t.Errorf("request params = %v, want %v", gotParams, wantParams)
	}
}

func TestClientFetchVerbatim(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["q",["  Spaced  ","MiXeD Case"]]`))
	}))
	defer ts.Close()

	client := NewClient(WithEndpoint(ts.URL))
	got := client.Fetch(context.Background(), "q", "US")

	// No trimming, no case folding.
	want := []string{"  Spaced  ", "MiXeD Case"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fetch() = %v, want %v", got, want)
	}
}

// Every failure mode must collapse to an empty result, never an error.
func TestClientFetchFailures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>blocked</html>`))
		}},
		{"not an array", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"suggestions": ["a"]}`))
		}},
		{"missing suggestion element", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`["only the query"]`))
		}},
		{"non-string suggestions", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`["q",[1,2,3]]`))
		}},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(tc.handler)
			defer ts.Close()

			client := NewClient(WithEndpoint(ts.URL))
			if got := client.Fetch(context.Background(), "q", "IN"); len(got) != 0 {
				t.Errorf("Fetch() = %v, want empty", got)
			}
		})
	}
}

func TestClientFetchUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := NewClient(WithEndpoint(ts.URL))
	if got := client.Fetch(context.Background(), "q", "IN"); len(got) != 0 {
		t.Errorf("Fetch() against closed server = %v, want empty", got)
	}
}

func TestClientFetchTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`["q",["too late"]]`))
	}))
	defer ts.Close()

	client := NewClient(WithEndpoint(ts.URL), WithTimeout(20*time.Millisecond))
	if got := client.Fetch(context.Background(), "q", "IN"); len(got) != 0 {
		t.Errorf("Fetch() past timeout = %v, want empty", got)
	}
}

func TestClientFetchCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(WithEndpoint(ts.URL))
	if got := client.Fetch(ctx, "q", "IN"); len(got) != 0 {
		t.Errorf("Fetch() with cancelled ctx = %v, want empty", got)
	}
}

func TestParseSuggestBody(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want []string
	}{
		{"normal", `["q",["a","b"]]`, []string{"a", "b"}},
		{"empty suggestions", `["q",[]]`, []string{}},
		{"trailing elements ignored", `["q",["a"],[],{"misc":1}]`, []string{"a"}},
		{"garbage", `not json`, nil},
		{"short array", `["q"]`, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseSuggestBody([]byte(tc.body), "q")
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parseSuggestBody(%s) = %#v, want %#v", tc.body, got, tc.want)
			}
		})
	}
}
