package greenbuild

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

// fakeCartAPI is an in-memory stand-in for the marketplace cart endpoints,
// speaking the same {"data": ...} / {"message": ...} envelopes.
type fakeCartAPI struct {
	lines    []LineItem
	requests map[string]int
	fail     bool
}

func newFakeCartAPI(lines ...LineItem) *fakeCartAPI {
	return &fakeCartAPI{lines: lines, requests: map[string]int{}}
}

func (f *fakeCartAPI) server(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests[r.Method+" "+r.URL.Path]++

		if f.fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "cart service unavailable"})
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/cart":
			json.NewEncoder(w).Encode(map[string]interface{}{"data": f.lines})

		case r.Method == http.MethodPost && r.URL.Path == "/api/cart":
			var req struct {
				DesignID uint `json:"design_id"`
				Quantity uint `json:"quantity"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			for i := range f.lines {
				if f.lines[i].DesignID == req.DesignID {
					f.lines[i].Quantity += req.Quantity
					json.NewEncoder(w).Encode(map[string]interface{}{"data": f.lines[i]})
					return
				}
			}
			line := LineItem{
				DesignID:          req.DesignID,
				Title:             fmt.Sprintf("Design %d", req.DesignID),
				UnitPrice:         100,
				OriginalUnitPrice: 150,
				Quantity:          req.Quantity,
			}
			f.lines = append(f.lines, line)
			json.NewEncoder(w).Encode(map[string]interface{}{"data": line})

		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/cart/"):
			id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/cart/"))
			var req struct {
				Quantity uint `json:"quantity"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			for i := range f.lines {
				if f.lines[i].DesignID == uint(id) {
					f.lines[i].Quantity = req.Quantity
					json.NewEncoder(w).Encode(map[string]interface{}{"data": f.lines[i]})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "item not found"})

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/cart/"):
			id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/cart/"))
			kept := f.lines[:0]
			for _, line := range f.lines {
				if line.DesignID != uint(id) {
					kept = append(kept, line)
				}
			}
			f.lines = kept
			w.WriteHeader(http.StatusNoContent)

		case r.Method == http.MethodDelete && r.URL.Path == "/api/cart":
			f.lines = nil
			w.WriteHeader(http.StatusNoContent)

		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
		}
	}))
}
