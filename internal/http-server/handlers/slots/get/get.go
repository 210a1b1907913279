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

type SlotGetter interface {
	GetVenueSlot(ctx context.Context, id string) (*api.VenueSlotResponse, error)
	ListVenueSlots(ctx context.Context) ([]*api.VenueSlotResponse, error)
}

type Response struct {
	response.Response
	Slots []api.VenueSlotResponse `json:"slots,omitempty"`
	Slot  *api.VenueSlotResponse  `json:"slot,omitempty"`
}

func New(log *slog.Logger, getter SlotGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.slots.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			slot, err := getter.GetVenueSlot(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get slot", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get slot"))
				return
			}

			log.Info("Slot retrieved", slog.String("id", id))
			render.JSON(w, r, Response{Slot: slot})
			return
		}

		slots, err := getter.ListVenueSlots(r.Context())

		if err != nil {
			log.Error("Failed to list slots", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list slots"))
			return
		}

		log.Info("Slots retrieved", slog.Int("count", len(slots)))
		slotsResponse := make([]api.VenueSlotResponse, len(slots))
		for i, s := range slots {
			slotsResponse[i] = *s
		}
		render.JSON(w, r, Response{Slots: slotsResponse})
	}
}
