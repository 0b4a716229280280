package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/userhub/user-service/internal/logger"
	"github.com/userhub/user-service/internal/model"
)

const deleteSuccessMessage = "Deleted Successfully."

// UserService defines the operations the handler exposes over HTTP.
type UserService interface {
	FindAll(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, user model.User) (model.User, error)
	FindByID(ctx context.Context, id uint64) (model.User, error)
	Update(ctx context.Context, user model.User) (model.User, error)
	RemoveByID(ctx context.Context, id uint64) error
	Search(ctx context.Context, rawCriteria string) ([]model.User, error)
}

type Handler struct {
	service UserService
	logger  *logger.Logger
}

func New(service UserService, logger *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), user)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) FindAll(c *gin.Context) {
	users, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) FindByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "must provide a valid user id")
		return
	}

	user, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), user)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "must provide a valid user id")
		return
	}

	if err := h.service.RemoveByID(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": deleteSuccessMessage})
}

func (h *Handler) SearchUsers(c *gin.Context) {
	users, err := h.service.Search(c.Request.Context(), c.Query("criteria"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if users == nil {
		users = []model.User{}
	}

	c.JSON(http.StatusOK, users)
}
