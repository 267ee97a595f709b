package room

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinichq/frontdesk-api/internal/handler"
	"github.com/clinichq/frontdesk-api/internal/model"
	"github.com/clinichq/frontdesk-api/internal/service/clinic"
)

type Handler struct {
	service *clinic.Service
}

func NewHandler(service *clinic.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	rooms := r.Group("/rooms")
	{
		rooms.POST("", h.CreateRoom)
		rooms.GET("", h.ListRooms)
		rooms.GET("/info", h.AllRoomsInfo)
		rooms.GET("/waiting", h.WaitingRoom)
		rooms.GET("/:number", h.GetRoom)
		rooms.GET("/:number/info", h.RoomInfo)
	}
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req model.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	number, room := h.service.AddRoom(model.RoomDefinition{
		ID:   req.ID,
		Type: req.Type,
		Name: req.Name,
	})
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{
		"room_number": number,
		"room":        room,
	}))
}

func (h *Handler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Rooms()))
}

func (h *Handler) GetRoom(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid room number"))
		return
	}

	room, err := h.service.Room(number)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(room))
}

// RoomInfo returns the text rendering of one room: occupants, then staff
// paired with anyone in the room.
func (h *Handler) RoomInfo(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid room number"))
		return
	}

	info, err := h.service.DisplayRoomInfo(number)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"info": info}))
}

func (h *Handler) AllRoomsInfo(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"info": h.service.DisplayAllRoomsInfo(),
	}))
}

// WaitingRoom reports the waiting room's number; 0 means the clinic has no
// waiting room.
func (h *Handler) WaitingRoom(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"room_number": h.service.WaitingRoomNumber(),
	}))
}
