package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/holyweird/storefront/internal/dolly"
)

type DollyHandler struct {
	Shares      dolly.ShareStore
	FrontendURL string
}

func (h *DollyHandler) Register(r *chi.Mux) {
	r.Get("/dolly/options", h.options)
	r.Post("/dolly/quote", h.quote)
	r.Post("/dolly/save-config", h.saveConfig)
	r.Get("/dolly/config/{shareID}", h.getConfig)
}

func (h *DollyHandler) options(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"base_price_pence": dolly.BasePricePence,
		"modes":            dolly.Modes,
		"materials":        dolly.Materials,
		"finishes":         dolly.Finishes,
		"addons":           dolly.Addons,
	})
}

type quoteReq struct {
	dolly.Selection
	Quantity int `json:"quantity,omitempty"`
}

// quote prices a selection server-side and returns the cart line for it,
// so the client never computes (or forges) a custom build price.
func (h *DollyHandler) quote(w http.ResponseWriter, r *http.Request) {
	var req quoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	cfg, err := dolly.FromSelection(req.Selection)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"config":      cfg,
		"total_pence": cfg.Total(),
		"line":        cfg.CartLine(req.Quantity),
	})
}

type saveConfigReq struct {
	Config     json.RawMessage `json:"config"`
	TotalPrice int             `json:"total_price"`
	UserEmail  string          `json:"user_email,omitempty"`
}

func (h *DollyHandler) saveConfig(w http.ResponseWriter, r *http.Request) {
	var req saveConfigReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Config) == 0 {
		writeError(w, http.StatusBadRequest, "configuration is required")
		return
	}

	// A fresh id per save: sharing then editing never mutates the link
	// already handed out.
	shareID, err := dolly.NewShareID()
	if err != nil {
		log.Printf("generate share id: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save configuration")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.Shares.Save(ctx, dolly.SavedConfig{
		ShareID:    shareID,
		Config:     req.Config,
		TotalPrice: req.TotalPrice,
		UserEmail:  req.UserEmail,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		log.Printf("save dolly config: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save configuration")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"share_id":  shareID,
		"share_url": h.FrontendURL + "/dolly-builder?config=" + shareID,
	})
}

func (h *DollyHandler) getConfig(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	sc, err := h.Shares.Get(ctx, chi.URLParam(r, "shareID"))
	if errors.Is(err, dolly.ErrNotFound) {
		writeError(w, http.StatusNotFound, "configuration not found")
		return
	}
	if err != nil {
		log.Printf("retrieve dolly config: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to retrieve configuration")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"config":      sc.Config,
		"total_price": sc.TotalPrice,
		"created_at":  sc.CreatedAt,
	})
}
