package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/holyweird/storefront/internal/events"
	kafkax "github.com/holyweird/storefront/internal/kafka"
	"github.com/holyweird/storefront/internal/leads"
)

type LeadsHandler struct {
	Repo     leads.Repo
	Producer Publisher // optional
	Service  string
}

func (h *LeadsHandler) Register(r *chi.Mux) {
	r.Post("/concierge/request", h.submit)
	r.Get("/concierge/requests", h.list)
}

type leadReq struct {
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	RequestType string   `json:"request_type,omitempty"`
	Message     string   `json:"message"`
	Attachments []string `json:"attachments,omitempty"`
}

func (h *LeadsHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req leadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	l := leads.Lead{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		RequestType: leads.RequestType(req.RequestType),
		Message:     req.Message,
		Attachments: req.Attachments,
	}
	if err := l.Validate(); err != nil {
		if errors.Is(err, leads.ErrEmailRequired) || errors.Is(err, leads.ErrMessageRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.Repo.Create(ctx, &l); err != nil {
		log.Printf("store lead request: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to submit request")
		return
	}

	if h.Producer != nil {
		env, err := events.NewEnvelope(events.EventLeadReceived, h.Service, l.ID, events.LeadReceivedPayload{
			LeadID:      l.ID,
			Email:       l.Email,
			RequestType: string(l.RequestType),
		})
		if err == nil {
			h.Producer.Publish(events.PartitionKey(l.ID), kafkax.MustMarshal(env),
				kafkago.Header{Key: "x-event-type", Value: []byte(events.EventLeadReceived)},
				kafkago.Header{Key: "x-event-version", Value: []byte("1")},
			)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"request_id": l.ID,
		"message":    "Your request has been submitted. Our concierge team will be in touch shortly.",
	})
}

func (h *LeadsHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	ls, err := h.Repo.List(ctx)
	if err != nil {
		log.Printf("list lead requests: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch requests")
		return
	}
	if ls == nil {
		ls = []leads.Lead{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": ls})
}
