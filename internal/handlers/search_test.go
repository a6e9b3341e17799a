package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/require"

	"github.com/helaluddin100/greenbuild/internal/models"
)

// fakeES answers enough of the Elasticsearch wire protocol for the client
// library to accept it: the product header plus a canned search response.
func fakeES(t *testing.T, body string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestSearchDesigns(t *testing.T) {
	srv := fakeES(t, `{
		"hits": {
			"total": {"value": 1},
			"hits": [
				{"_source": {"id": 7, "title": "Earthship Retreat", "plan_number": "GB-007", "price": 329, "original_price": 429}}
			]
		}
	}`)
	defer srv.Close()

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)

	env := newTestEnv(t)
	handler := NewSearchHandler(client, "designs")

	rec, c := env.doJSONRequest(http.MethodGet, "/api/search?q=earthship", nil)
	c.QueryParams().Set("q", "earthship")
	require.NoError(t, handler.Search(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total   int64           `json:"total"`
		Designs []models.Design `json:"designs"`
	}
	decodeData(t, rec, &resp)
	require.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Designs, 1)
	require.Equal(t, "Earthship Retreat", resp.Designs[0].Title)
}

func TestSearchRequiresQuery(t *testing.T) {
	env := newTestEnv(t)
	handler := NewSearchHandler(nil, "designs")

	_, c := env.doJSONRequest(http.MethodGet, "/api/search", nil)
	requireHTTPError(t, handler.Search(c), http.StatusBadRequest)
}
