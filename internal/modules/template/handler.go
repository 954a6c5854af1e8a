package template

import (
	"net/http"

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
	templates := rg.Group("/email-templates")
	{
		templates.GET("", h.List)
		templates.POST("", h.Create)
		templates.PUT("/:id", h.Update)
		templates.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	templates, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list templates")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"templates": templates})
}

func (h *Handler) Create(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create template")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"template": t})
}

func (h *Handler) Update(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if err == ErrTemplateNotFound {
			response.Error(c, http.StatusNotFound, "TEMPLATE_NOT_FOUND", "Template not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update template")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"template": t})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == ErrTemplateNotFound {
			response.Error(c, http.StatusNotFound, "TEMPLATE_NOT_FOUND", "Template not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete template")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
