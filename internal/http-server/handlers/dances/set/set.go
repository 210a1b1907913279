package set

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

type DanceSetter interface {
	SetDances(ctx context.Context, reqs []api.DanceRequest) (int, error)
}

type Request struct {
	Dances []api.DanceRequest `json:"dances"`
}

type Response struct {
	response.Response
	Upserted int `json:"upserted"`
}

func New(log *slog.Logger, setter DanceSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dances.set.New"

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

		if len(req.Dances) == 0 {
			log.Error("dances list is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "dances list is empty"))
			return
		}

		n, err := setter.SetDances(r.Context(), req.Dances)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("Unknown director or cast member", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "unknown director or cast member"))
			return
		}

		if err != nil {
			log.Error("Failed to upsert dances", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to upsert dances"))
			return
		}

		log.Info("Dances upserted", slog.Int("count", n))
		render.JSON(w, r, Response{Upserted: n})
	}
}
