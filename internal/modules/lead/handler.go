package lead

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
	leads := rg.Group("/leads")
	{
		leads.GET("", h.List)
		leads.POST("", h.Create)
		leads.GET("/:id", h.Get)
		leads.PATCH("/:id", h.Update)
		leads.DELETE("/:id", h.Delete)
		leads.PATCH("/:id/status", h.ChangeStatus)
		leads.POST("/:id/calls", h.LogCall)
		leads.GET("/:id/activities", h.Activities)
	}
}

func (h *Handler) List(c *gin.Context) {
	leads, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list leads")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leads": leads})
}

func (h *Handler) Get(c *gin.Context) {
	l, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Failed to load lead")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": l})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to create lead")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"lead": l})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err, "Failed to update lead")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": l})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "Failed to delete lead")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.ChangeStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err, "Failed to change lead status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": l})
}

func (h *Handler) LogCall(c *gin.Context) {
	var req LogCallRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.LogCall(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err, "Failed to log call")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": l})
}

func (h *Handler) Activities(c *gin.Context) {
	activities, err := h.service.Activities(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Failed to load activities")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"activities": activities})
}

func (h *Handler) handleError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrLeadNotFound:
		response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid lead data")
	case ErrInvalidStatus:
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown lead status")
	case ErrEmailDateRequired:
		response.Error(c, http.StatusBadRequest, "EMAIL_DATE_REQUIRED", "An email sent date is required for this stage")
	case ErrInvalidLossReason:
		response.Error(c, http.StatusBadRequest, "INVALID_LOSS_REASON", "Unknown loss reason")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
