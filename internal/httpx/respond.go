package httpx

import (
	"encoding/json"
	"net/http"

	kafkago "github.com/segmentio/kafka-go"
)

// Publisher is the slice of the kafka producer the handlers need.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
