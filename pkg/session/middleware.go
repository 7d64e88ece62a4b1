package session

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// Middleware opens the sessions of all managers before next runs and saves
// them right before the response headers are written.
//
// If a save fails the handler's response is replaced with a 500 and later
// writes are discarded, so data loss is never silent. Changes made after the
// handler started writing the response cannot be saved anymore; they are
// discarded and logged at ERROR once the handler returns. It panics when two
// managers share a session name, cookie name or key prefix.
func Middleware(managers ...*Manager) func(http.Handler) http.Handler {
	if err := checkNamespaces(managers); err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, m := range managers {
				_, r = m.Open(r)
			}

			sw := &saveWriter{ResponseWriter: w, r: r, managers: managers}
			next.ServeHTTP(sw, r)
			sw.commit()
			sw.reportLateChanges()
		})
	}
}

// Middleware is the single-namespace form of the package-level Middleware.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return Middleware(m)(next)
}

func checkNamespaces(managers []*Manager) error {
	names := make(map[string]struct{}, len(managers))
	cookies := make(map[string]struct{}, len(managers))
	prefixes := make(map[string]struct{}, len(managers))

	for _, m := range managers {
		cfg := m.config
		if _, ok := names[cfg.Name]; ok {
			return fmt.Errorf("%w: session name %q", ErrDuplicateNamespace, cfg.Name)
		}
		if _, ok := cookies[cfg.CookieName]; ok {
			return fmt.Errorf("%w: cookie name %q", ErrDuplicateNamespace, cfg.CookieName)
		}
		if _, ok := prefixes[cfg.Prefix]; ok {
			return fmt.Errorf("%w: prefix %q", ErrDuplicateNamespace, cfg.Prefix)
		}
		names[cfg.Name] = struct{}{}
		cookies[cfg.CookieName] = struct{}{}
		prefixes[cfg.Prefix] = struct{}{}
	}
	return nil
}

// saveWriter runs the save hooks exactly once, before the first byte of the
// response goes out or when the handler returns without writing.
type saveWriter struct {
	http.ResponseWriter
	r        *http.Request
	managers []*Manager
	saved    bool
	failed   bool
	// changes holds each session's change counter at save time.
	changes []uint64
}

func (w *saveWriter) commit() {
	if w.saved {
		return
	}
	w.saved = true
	w.changes = make([]uint64, len(w.managers))

	for i, m := range w.managers {
		if s, ok := FromContext(w.r.Context(), m.config.Name); ok && s != nil {
			w.changes[i] = s.changes
		}
		if err := m.Save(w.ResponseWriter, w.r); err != nil {
			m.logger.ErrorContext(w.r.Context(), "failed to save session", logger.Error(err))
			w.failed = true
		}
	}

	if w.failed {
		http.Error(w.ResponseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// reportLateChanges logs sessions modified after they were saved.
func (w *saveWriter) reportLateChanges() {
	for i, m := range w.managers {
		s, ok := FromContext(w.r.Context(), m.config.Name)
		if !ok || s == nil || s.changes == w.changes[i] {
			continue
		}
		m.logger.ErrorContext(w.r.Context(), "session modified after the response was written, changes discarded",
			logger.Count(int64(s.changes-w.changes[i])),
		)
	}
}

func (w *saveWriter) WriteHeader(code int) {
	w.commit()
	if w.failed {
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *saveWriter) Write(b []byte) (int, error) {
	w.commit()
	if w.failed {
		return 0, ErrSave
	}
	return w.ResponseWriter.Write(b)
}

func (w *saveWriter) Flush() {
	w.commit()
	if f, ok := w.ResponseWriter.(http.Flusher); ok && !w.failed {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *saveWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
