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

type PeopleSetter interface {
	SetPeople(ctx context.Context, reqs []api.PersonRequest) (int, error)
}

type Request struct {
	People []api.PersonRequest `json:"people"`
}

type Response struct {
	response.Response
	Upserted int `json:"upserted"`
}

func New(log *slog.Logger, setter PeopleSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.people.set.New"

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

		if len(req.People) == 0 {
			log.Error("people list is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "people list is empty"))
			return
		}

		n, err := setter.SetPeople(r.Context(), req.People)

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("Invalid person payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), err.Error()))
			return
		}

		if err != nil {
			log.Error("Failed to upsert people", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to upsert people"))
			return
		}

		log.Info("People upserted", slog.Int("count", n))
		render.JSON(w, r, Response{Upserted: n})
	}
}
