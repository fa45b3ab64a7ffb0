// File: handlers/room.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	roomRepo "studyrooms/database/repository/room"
	"studyrooms/models"
	"studyrooms/utils"
)

// RoomHandler exposes study room management endpoints.
type RoomHandler struct {
	Repo   roomRepo.RoomRepository
	Logger *zap.Logger
}

// NewRoomHandler constructs a RoomHandler with its dependencies.
func NewRoomHandler(repo roomRepo.RoomRepository, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Repo: repo, Logger: logger}
}

// ListRoomsHandler returns active rooms, optionally filtered by type.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	var (
		rooms []models.Room
		err   error
	)
	if rawType := c.Query("type"); rawType != "" {
		roomType := models.RoomType(rawType)
		if !roomType.Valid() {
			utils.JSONError(c, http.StatusBadRequest, "unknown room type", rawType)
			return
		}
		rooms, err = h.Repo.ListByType(c.Request.Context(), roomType)
	} else {
		rooms, err = h.Repo.ListActive(c.Request.Context())
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// GetRoomHandler returns a single room by ID.
func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.Repo.GetByID(c.Request.Context(), c.Param("roomID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "room not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoomHandler registers a new study room.
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload", err.Error())
		return
	}
	if room.ID == "" {
		room.ID = uuid.New().String()
	}

	if err := h.Repo.Create(c.Request.Context(), &room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create room", err.Error())
		return
	}

	h.Logger.Info("Room created", zap.String("roomID", room.ID), zap.String("type", string(room.Type)))
	c.JSON(http.StatusCreated, room)
}

// UpdateRoomHandler replaces a room's details.
func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload", err.Error())
		return
	}
	room.ID = c.Param("roomID")

	if err := h.Repo.Update(c.Request.Context(), &room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update room", err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoomHandler removes a room.
func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	roomID := c.Param("roomID")
	if err := h.Repo.Delete(c.Request.Context(), roomID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete room", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": roomID})
}
