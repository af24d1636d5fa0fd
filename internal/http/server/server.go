package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"pdfstore/internal/config"
	"pdfstore/internal/http/handlers/account"
	"pdfstore/internal/http/handlers/pdfs"
	"pdfstore/internal/http/middleware"
	"pdfstore/internal/models"
	utils "pdfstore/internal/utils/http_errors"
	"time"

	"github.com/gorilla/mux"
)

func StartServer(
	ctx context.Context,
	cfg *config.HTTPServer,
	log *slog.Logger,
	catalogService CatalogService,
	accountService AccountService,
	uploadsDir string,
) error {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))

	setupRoutes(r, log, catalogService, accountService, uploadsDir)

	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      r,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupRoutes(r *mux.Router, log *slog.Logger, catalog CatalogService, accounts AccountService, uploadsDir string) {
	// POST pdf
	r.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		pdfs.Upload(ctx, log, w, r, catalog)
	}).Methods(http.MethodPost)

	// GET catalog
	r.HandleFunc("/pdfs", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		pdfs.Get(ctx, log, w, r, catalog)
	}).Methods(http.MethodGet)

	// GET pdf content by id
	r.HandleFunc("/download/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		pdfID := vars["id"]
		pdfs.Download(ctx, log, w, r, pdfID, catalog)
	}).Methods(http.MethodGet)

	// POST user
	r.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		account.Signup(ctx, log, w, r, accounts)
	}).Methods(http.MethodPost)

	// POST login
	r.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		account.Login(ctx, log, w, r, accounts)
	}).Methods(http.MethodPost)

	// Static blobs
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))).Methods(http.MethodGet)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})
}
