package validate

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"rehearsal-service/api"
	"rehearsal-service/internal/service"
	"rehearsal-service/pkg/response"
	"rehearsal-service/pkg/sl"
)

type Request struct {
	Records []api.ConstraintRecord `json:"records"`
}

type Response struct {
	response.Response
	Stats  api.ValidationStats   `json:"stats"`
	Errors []api.ValidationError `json:"errors,omitempty"`
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.constraints.validate.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		errs, stats := service.ValidateRecords(req.Records)

		log.Info("Records validated",
			slog.Int("rows", stats.TotalRows),
			slog.Int("invalid_tokens", stats.InvalidTokens),
		)

		render.JSON(w, r, Response{Stats: stats, Errors: errs})
	}
}
