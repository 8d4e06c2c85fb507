package adaptor

import (
	"net/http"

	"hotel-loyalty/internal/dto/request"
	"hotel-loyalty/internal/usecase"
	"hotel-loyalty/pkg/utils"

	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetRooms handles GET /api/rooms (available only) and GET /api/admin/rooms (all)
func (h *RoomHandler) GetRooms(includeUnavailable bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := h.service.GetRooms(r.Context(), paginationFromQuery(r), includeUnavailable)
		if err != nil {
			handleServiceError(w, h.log, err, "get rooms")
			return
		}

		utils.ResponseSuccess(w, "success", rooms)
	}
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created successfully", room)
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req request.RoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "Room updated successfully", room)
}

func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "Room deleted successfully", nil)
}

type ActivityHandler struct {
	service usecase.ActivityService
	log     *zap.Logger
}

func NewActivityHandler(service usecase.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		log:     log.With(zap.String("handler", "activity")),
	}
}

func (h *ActivityHandler) GetActivities(includeUnavailable bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activities, err := h.service.GetActivities(r.Context(), paginationFromQuery(r), includeUnavailable)
		if err != nil {
			handleServiceError(w, h.log, err, "get activities")
			return
		}

		utils.ResponseSuccess(w, "success", activities)
	}
}

func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	activity, err := h.service.GetActivityByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get activity")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}

func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req request.ActivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	activity, err := h.service.CreateActivity(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create activity")
		return
	}

	utils.ResponseCreated(w, "Activity created successfully", activity)
}

func (h *ActivityHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req request.ActivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	activity, err := h.service.UpdateActivity(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update activity")
		return
	}

	utils.ResponseSuccess(w, "Activity updated successfully", activity)
}

func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteActivity(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete activity")
		return
	}

	utils.ResponseSuccess(w, "Activity deleted successfully", nil)
}
