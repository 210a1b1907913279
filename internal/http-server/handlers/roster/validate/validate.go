package validate

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

type RosterValidator interface {
	ValidateRoster(ctx context.Context) ([]api.ValidationError, api.ValidationStats, error)
}

type Response struct {
	response.Response
	Stats  api.ValidationStats   `json:"stats"`
	Errors []api.ValidationError `json:"errors,omitempty"`
}

func New(log *slog.Logger, validator RosterValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.roster.validate.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		errs, stats, err := validator.ValidateRoster(r.Context())
		if err != nil {
			log.Error("Failed to validate roster", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to validate roster"))
			return
		}

		log.Info("Roster validated",
			slog.Int("rows", stats.TotalRows),
			slog.Int("invalid_tokens", stats.InvalidTokens),
		)

		render.JSON(w, r, Response{Stats: stats, Errors: errs})
	}
}
