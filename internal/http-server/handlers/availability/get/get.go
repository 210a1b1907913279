package get

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

type AvailabilityGetter interface {
	Availability(ctx context.Context, slotID, danceID string) ([]api.PersonAvailability, []api.AvailabilityWindow, error)
}

type Response struct {
	response.Response
	People []api.PersonAvailability `json:"people"`
	Common []api.AvailabilityWindow `json:"common"`
}

func New(log *slog.Logger, getter AvailabilityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.availability.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		slotID := r.URL.Query().Get("slot_id")
		if slotID == "" {
			log.Error("slot_id is required")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "slot_id is required"))
			return
		}

		danceID := r.URL.Query().Get("dance_id")

		people, common, err := getter.Availability(r.Context(), slotID, danceID)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if err != nil {
			log.Error("Failed to compute availability", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to compute availability"))
			return
		}

		log.Info("Availability computed",
			slog.String("slot_id", slotID),
			slog.Int("people", len(people)),
			slog.Int("common_windows", len(common)),
		)

		render.JSON(w, r, Response{People: people, Common: common})
	}
}
