package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/holyweird/storefront/internal/cart"
)

type CartHandler struct {
	Store cart.Store
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Route("/cart/{cartID}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Delete("/", h.clear)
		r.Post("/items", h.addItem)
		r.Patch("/items/{pos}", h.updateQuantity)
		r.Delete("/items/{pos}", h.removeItem)
	})
}

type cartResponse struct {
	Lines      []cart.Line `json:"lines"`
	TotalPence int         `json:"total_pence"`
	ItemCount  int         `json:"item_count"`
}

func toCartResponse(c cart.Cart) cartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartResponse{Lines: lines, TotalPence: c.TotalPrice(), ItemCount: c.ItemCount()}
}

func (h *CartHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	c, err := h.Store.Load(ctx, chi.URLParam(r, "cartID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

type addItemReq struct {
	ProductID  string         `json:"product_id"`
	Name       string         `json:"name"`
	PricePence int            `json:"price_pence"`
	ImageURL   string         `json:"image_url,omitempty"`
	Config     map[string]any `json:"config,omitempty"`
	Quantity   int            `json:"quantity"`
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	if req.PricePence < 0 {
		writeError(w, http.StatusBadRequest, "invalid price")
		return
	}

	h.mutate(w, r, func(c *cart.Cart) {
		c.Add(cart.Line{
			ProductID:  req.ProductID,
			Name:       req.Name,
			PricePence: req.PricePence,
			ImageURL:   req.ImageURL,
			Config:     req.Config,
			Quantity:   req.Quantity,
		})
	})
}

func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	pos, err := strconv.Atoi(chi.URLParam(r, "pos"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid position")
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	h.mutate(w, r, func(c *cart.Cart) { c.UpdateQuantity(pos, req.Quantity) })
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	pos, err := strconv.Atoi(chi.URLParam(r, "pos"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid position")
		return
	}
	h.mutate(w, r, func(c *cart.Cart) { c.Remove(pos) })
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(c *cart.Cart) { c.Clear() })
}

// mutate runs load -> fn -> save so every change is persisted before the
// response (and any later read) observes it.
func (h *CartHandler) mutate(w http.ResponseWriter, r *http.Request, fn func(*cart.Cart)) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	cartID := chi.URLParam(r, "cartID")
	c, err := h.Store.Load(ctx, cartID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	fn(&c)
	if err := h.Store.Save(ctx, cartID, c); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}
