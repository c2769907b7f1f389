// Package server is a development stand-in for the activity signup service.
// It serves the same three endpoints the board talks to, with the same
// validation rules, backed by an activity.Store.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/hay-kot/activityboard/internal/core/activity"
)

// Server serves the activities API.
type Server struct {
	store activity.Store
	log   zerolog.Logger
}

// New creates a Server over store.
func New(store activity.Store, log zerolog.Logger) *Server {
	return &Server{store: store, log: log}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(s.accessLog)

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", s.listActivities)
		r.Post("/{name}/signup", s.signup)
		r.Delete("/{name}/unregister", s.unregister)
	})

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// listActivities handles GET /activities.
func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.store.List(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list activities")
		writeDetail(w, http.StatusInternalServerError, "failed to list activities")
		return
	}

	if activities == nil {
		activities = []activity.Activity{}
	}
	writeJSON(w, http.StatusOK, activities)
}

// signup handles POST /activities/{name}/signup?email=.
func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	name, email, ok := params(w, r)
	if !ok {
		return
	}

	_, err := s.store.Update(r.Context(), name, func(a *activity.Activity) error {
		return a.AddParticipant(email)
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("Student %s signed up for %s", email, name)})
}

// unregister handles DELETE /activities/{name}/unregister?email=.
func (s *Server) unregister(w http.ResponseWriter, r *http.Request) {
	name, email, ok := params(w, r)
	if !ok {
		return
	}

	_, err := s.store.Update(r.Context(), name, func(a *activity.Activity) error {
		return a.RemoveParticipant(email)
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("Unregistered %s from %s", email, name)})
}

// params extracts the activity name and the email query value. A missing
// email is answered with 422 and a list-shaped detail.
func params(w http.ResponseWriter, r *http.Request) (name, email string, ok bool) {
	name = chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid activity name")
			return "", "", false
		}
		name = unescaped
	}

	query := r.URL.Query()
	if !query.Has("email") {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody{
			Detail: []validationIssue{{
				Loc:  []string{"query", "email"},
				Msg:  "Field required",
				Type: "missing",
			}},
		})
		return "", "", false
	}

	return name, query.Get("email"), true
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, activity.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, activity.ErrFull):
		writeDetail(w, http.StatusBadRequest, "Activity is full")
	case errors.Is(err, activity.ErrAlreadySignedUp):
		writeDetail(w, http.StatusBadRequest, "Student already signed up")
	case errors.Is(err, activity.ErrNotSignedUp):
		writeDetail(w, http.StatusBadRequest, "Student is not signed up for this activity")
	default:
		s.log.Error().Err(err).Msg("update activity")
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}
