package proxy

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Handler is a transparent tunnel to the upstream API. It forwards the
// method, JSON body and Authorization header verbatim, relays the upstream
// response unchanged and never validates or transforms anything. Its only
// own behavior is the fixed failure envelope on network errors.
type Handler struct {
	upstream string
	client   *http.Client
}

func NewHandler(upstream string, timeout time.Duration) *Handler {
	return &Handler{
		upstream: strings.TrimRight(upstream, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

func (h *Handler) Tunnel(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	target := h.upstream + "/" + path
	if (r.Method == http.MethodGet || r.Method == http.MethodDelete) && r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	var body io.Reader
	if r.Method == http.MethodPost || r.Method == http.MethodPut {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			h.writeFailure(w, err)
			return
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, body)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if auth := r.Header.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	logrus.WithFields(logrus.Fields{"method": r.Method, "path": path}).Debug("Proxying request")

	resp, err := h.client.Do(req)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	if !json.Valid(raw) {
		raw, _ = json.Marshal(map[string]any{"raw": string(raw)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(raw)
}

func (h *Handler) writeFailure(w http.ResponseWriter, err error) {
	logrus.WithError(err).Error("Proxy request failed")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "API request failed"})
}

// Routes mounts the tunnel for all supported methods on the wildcard.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/*", h.Tunnel)
	r.Post("/*", h.Tunnel)
	r.Put("/*", h.Tunnel)
	r.Delete("/*", h.Tunnel)
	return r
}
