package task

import (
	"net/http"
	"strconv"

	"leadcrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.PATCH("/:id/complete", h.Complete)
	}
}

func (h *Handler) List(c *gin.Context) {
	openOnly := c.Query("open") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	tasks, err := h.service.List(c.Request.Context(), openOnly, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tasks")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Linked lead not found")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid task data")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create task")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"task": t})
}

func (h *Handler) Complete(c *gin.Context) {
	if err := h.service.Complete(c.Request.Context(), c.Param("id")); err != nil {
		if err == ErrTaskNotFound {
			response.Error(c, http.StatusNotFound, "TASK_NOT_FOUND", "Task not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to complete task")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"completed": true})
}
