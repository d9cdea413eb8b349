package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holyweird/storefront/internal/cart"
	"github.com/holyweird/storefront/internal/dolly"
)

func newDollyRouter() http.Handler {
	r := NewRouter("test")
	h := &DollyHandler{Shares: dolly.NewMemoryShareStore(), FrontendURL: "https://holyweird.example"}
	h.Register(r)
	return r
}

func TestDollyOptions(t *testing.T) {
	router := newDollyRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dolly/options", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		BasePricePence int            `json:"base_price_pence"`
		Modes          []dolly.Option `json:"modes"`
		Addons         []dolly.Option `json:"addons"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, dolly.BasePricePence, resp.BasePricePence)
	assert.NotEmpty(t, resp.Modes)
	assert.NotEmpty(t, resp.Addons)
}

func TestDollyQuote_PricesServerSide(t *testing.T) {
	router := newDollyRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/dolly/quote",
		strings.NewReader(`{"mode":"relic","material":"lapis","finish":"gloss","addons":["engraving"]}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		TotalPence int       `json:"total_pence"`
		Line       cart.Line `json:"line"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 4150, resp.TotalPence)
	assert.Equal(t, "dolly-custom", resp.Line.ProductID)
	assert.Equal(t, 4150, resp.Line.PricePence)
}

func TestDollyQuote_UnknownOption(t *testing.T) {
	router := newDollyRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/dolly/quote",
		strings.NewReader(`{"mode":"hypersonic"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDollySaveAndFetchConfig(t *testing.T) {
	router := newDollyRouter()

	body := `{"config":{"mode":"relic","addons":["engraving"]},"total_price":4150,"user_email":"a@b.c"}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/dolly/save-config", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rr.Code)

	var saved struct {
		ShareID  string `json:"share_id"`
		ShareURL string `json:"share_url"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&saved))
	require.NotEmpty(t, saved.ShareID)
	assert.Equal(t, "https://holyweird.example/dolly-builder?config="+saved.ShareID, saved.ShareURL)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dolly/config/"+saved.ShareID, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var fetched struct {
		Config     map[string]any `json:"config"`
		TotalPrice int            `json:"total_price"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&fetched))
	assert.Equal(t, "relic", fetched.Config["mode"])
	assert.Equal(t, 4150, fetched.TotalPrice)

	// saving again mints a new id
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/dolly/save-config", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rr.Code)
	var second struct {
		ShareID string `json:"share_id"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&second))
	assert.NotEqual(t, saved.ShareID, second.ShareID)
}

func TestDollySaveConfig_MissingConfig(t *testing.T) {
	router := newDollyRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/dolly/save-config",
		strings.NewReader(`{"total_price":4150}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDollyGetConfig_Unknown(t *testing.T) {
	router := newDollyRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dolly/config/nope123456", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
