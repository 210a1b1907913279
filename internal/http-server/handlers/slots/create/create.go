package create

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

type SlotCreator interface {
	CreateVenueSlot(ctx context.Context, req *api.VenueSlotRequest) (*api.VenueSlotResponse, error)
}

type Request struct {
	api.VenueSlotRequest
}

type Response struct {
	response.Response
	Slot *api.VenueSlotResponse `json:"slot,omitempty"`
}

func New(log *slog.Logger, creator SlotCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.slots.create.New"

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

		if req.ID == "" || req.Date == "" || req.Start == "" || req.End == "" {
			log.Error("id, date, start and end are required")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "id, date, start and end are required"))
			return
		}

		slot, err := creator.CreateVenueSlot(r.Context(), &req.VenueSlotRequest)

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("Unparseable slot", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), err.Error()))
			return
		}

		if err != nil {
			log.Error("Failed to create slot", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create slot"))
			return
		}

		log.Info("Slot created", slog.String("id", slot.ID))
		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{Slot: slot})
	}
}
