package booking

import (
	"net/http"

	"venue/infras/otel"
	"venue/internal/domains/booking/model/dto"
	"venue/internal/domains/booking/service"
	"venue/shared/constant"
	"venue/shared/validator"
	"venue/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/book-room", handler.BookRoom)
	router.Get("/customers", handler.GetCustomers)
}

// BookRoom reserves a slot in a room, rejecting requests that clash with an
// existing reservation.
func (handler *Handler) BookRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room booked successfully")

	response.WithJSON(writer, http.StatusCreated, dto.CreateBookingResponse{
		Message: constant.ResponseRoomBooked,
		Booking: booking,
	})
}

// GetCustomers lists every booking across all rooms in creation order.
func (handler *Handler) GetCustomers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	records, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(writer, http.StatusOK, records)
}
