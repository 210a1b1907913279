package generate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"rehearsal-service/api"
	"rehearsal-service/pkg/response"
	"rehearsal-service/pkg/sl"
)

type CatalogGenerator interface {
	GenerateCatalog(ctx context.Context) (string, []api.CatalogSlot, error)
}

type Response struct {
	response.Response
	JobID   string            `json:"job_id,omitempty"`
	Catalog []api.CatalogSlot `json:"catalog,omitempty"`
}

func New(log *slog.Logger, generator CatalogGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.generate.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		jobID, catalog, err := generator.GenerateCatalog(r.Context())

		if errors.Is(err, response.ErrLocked) {
			log.Error("Catalog generation already running")
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(string(response.LOCKED), "catalog generation already running"))
			return
		}

		if err != nil {
			log.Error("Failed to generate catalog", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to generate catalog"))
			return
		}

		log.Info("Catalog generated",
			slog.String("job_id", jobID),
			slog.Int("slots", len(catalog)),
		)

		render.JSON(w, r, Response{JobID: jobID, Catalog: catalog})
	}
}
