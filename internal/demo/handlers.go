package demo

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// CartName is the context name of the cart session namespace.
const CartName = "cart"

// CartConfig turns cfg into the cart namespace: fields still at their
// defaults get cart-specific values so they never collide with the main
// session.
func CartConfig(cfg session.Config) session.Config {
	def := session.DefaultConfig()
	if cfg.Name == def.Name {
		cfg.Name = CartName
	}
	if cfg.CookieName == def.CookieName {
		cfg.CookieName = CartName
	}
	if cfg.Prefix == def.Prefix {
		cfg.Prefix = CartName + ":"
	}
	return cfg
}

// Routes mounts the demo endpoints. The session middleware must already be
// installed for both namespaces.
func Routes(r chi.Router, log *slog.Logger) {
	h := &handlers{log: log}

	r.Get("/", h.visits)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.cart)
		r.Post("/items/{sku}", h.addItem)
		r.Delete("/items/{sku}", h.removeItem)
		r.Delete("/", h.clearCart)
	})
}

type handlers struct {
	log *slog.Logger
}

type visitsResponse struct {
	Visits int    `json:"visits"`
	User   string `json:"user,omitempty"`
}

func (h *handlers) visits(w http.ResponseWriter, r *http.Request) {
	s := session.MustFromContext(r.Context(), session.DefaultName)

	n, _ := s.GetInt("visits")
	n++
	s.Set("visits", n)

	user, _ := s.GetString("user")
	h.json(w, r, http.StatusOK, visitsResponse{Visits: n, User: user})
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimSpace(r.FormValue("user"))
	if user == "" {
		h.json(w, r, http.StatusUnprocessableEntity, errorResponse{Error: "user is required"})
		return
	}

	s := session.MustFromContext(r.Context(), session.DefaultName)
	s.Set("user", user)
	h.json(w, r, http.StatusOK, visitsResponse{User: user})
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	session.MustFromContext(r.Context(), session.DefaultName).Clear()
	w.WriteHeader(http.StatusNoContent)
}

type cartResponse struct {
	Items map[string]int `json:"items"`
}

func (h *handlers) cart(w http.ResponseWriter, r *http.Request) {
	s := session.MustFromContext(r.Context(), CartName)
	h.json(w, r, http.StatusOK, cartResponse{Items: cartItems(s)})
}

func (h *handlers) addItem(w http.ResponseWriter, r *http.Request) {
	s := session.MustFromContext(r.Context(), CartName)
	sku := chi.URLParam(r, "sku")

	n, _ := s.GetInt(sku)
	s.Set(sku, n+1)

	h.json(w, r, http.StatusOK, cartResponse{Items: cartItems(s)})
}

func (h *handlers) removeItem(w http.ResponseWriter, r *http.Request) {
	s := session.MustFromContext(r.Context(), CartName)
	if _, ok := s.Pop(chi.URLParam(r, "sku")); !ok {
		h.json(w, r, http.StatusNotFound, errorResponse{Error: "item not in cart"})
		return
	}
	h.json(w, r, http.StatusOK, cartResponse{Items: cartItems(s)})
}

func (h *handlers) clearCart(w http.ResponseWriter, r *http.Request) {
	session.MustFromContext(r.Context(), CartName).Clear()
	w.WriteHeader(http.StatusNoContent)
}

func cartItems(s *session.Session) map[string]int {
	items := make(map[string]int, s.Len())
	for _, sku := range s.Keys() {
		if n, ok := s.GetInt(sku); ok {
			items[sku] = n
		}
	}
	return items
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handlers) json(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
