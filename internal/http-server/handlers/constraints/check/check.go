package check

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"rehearsal-service/api"
	"rehearsal-service/pkg/response"
	"rehearsal-service/pkg/sl"
)

type TokenChecker interface {
	CheckToken(token string) api.TokenCheckResponse
}

type Request struct {
	api.TokenCheckRequest
}

type Response struct {
	response.Response
	api.TokenCheckResponse
}

func New(log *slog.Logger, checker TokenChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.constraints.check.New"

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

		result := checker.CheckToken(req.Token)

		if !result.Valid {
			log.Info("Token rejected", slog.String("token", req.Token), slog.String("reason", result.Error))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, Response{
				Response:           response.Error(string(response.INVALID_TOKEN), "constraint token is invalid"),
				TokenCheckResponse: result,
			})
			return
		}

		log.Info("Token accepted", slog.String("token", req.Token), slog.Int("constraints", len(result.Constraints)))
		render.JSON(w, r, Response{TokenCheckResponse: result})
	}
}
