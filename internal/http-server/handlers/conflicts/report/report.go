package report

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"rehearsal-service/api"
	"rehearsal-service/pkg/response"
	"rehearsal-service/pkg/sl"
)

type ConflictReporter interface {
	ConflictReport(ctx context.Context) ([]api.ConflictEntry, error)
}

type Response struct {
	response.Response
	Conflicts []api.ConflictEntry `json:"conflicts"`
}

func New(log *slog.Logger, reporter ConflictReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.conflicts.report.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		conflicts, err := reporter.ConflictReport(r.Context())
		if err != nil {
			log.Error("Failed to build conflict report", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to build conflict report"))
			return
		}

		log.Info("Conflict report built", slog.Int("entries", len(conflicts)))
		render.JSON(w, r, Response{Conflicts: conflicts})
	}
}
