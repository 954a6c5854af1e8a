package contract

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
	contracts := rg.Group("/contracts")
	{
		contracts.GET("", h.List)
		contracts.POST("", h.Create)
		contracts.PUT("/:id", h.Update)
		contracts.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list contracts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contracts": views})
}

func (h *Handler) Create(c *gin.Context) {
	var req ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to create contract")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"contract": view})
}

func (h *Handler) Update(c *gin.Context) {
	var req ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err, "Failed to update contract")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contract": view})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "Failed to delete contract")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) handleError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrContractNotFound:
		response.Error(c, http.StatusNotFound, "CONTRACT_NOT_FOUND", "Contract not found")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contract data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
