package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"rehearsal-service/api"
	"rehearsal-service/pkg/response"
	"rehearsal-service/pkg/sl"
)

type PeopleGetter interface {
	GetPerson(ctx context.Context, id string) (*api.PersonResponse, error)
	ListPeople(ctx context.Context, role *string) ([]*api.PersonResponse, error)
}

type Response struct {
	response.Response
	People []api.PersonResponse `json:"people,omitempty"`
	Person *api.PersonResponse  `json:"person,omitempty"`
}

func New(log *slog.Logger, getter PeopleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.people.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			person, err := getter.GetPerson(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get person", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get person"))
				return
			}

			log.Info("Person retrieved", slog.String("id", id))
			render.JSON(w, r, Response{Person: person})
			return
		}

		var role *string
		if roleStr := r.URL.Query().Get("role"); roleStr != "" {
			role = &roleStr
		}

		people, err := getter.ListPeople(r.Context(), role)

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("Invalid role filter", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid role filter"))
			return
		}

		if err != nil {
			log.Error("Failed to list people", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list people"))
			return
		}

		log.Info("People retrieved", slog.Int("count", len(people)))
		peopleResponse := make([]api.PersonResponse, len(people))
		for i, p := range people {
			peopleResponse[i] = *p
		}
		render.JSON(w, r, Response{People: peopleResponse})
	}
}
