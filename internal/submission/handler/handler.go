package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/flyambition/flyambition-api/internal/models"
	"github.com/flyambition/flyambition-api/internal/respond"
	"github.com/flyambition/flyambition-api/internal/submission/service"
	"github.com/gin-gonic/gin"
)

// Service is what a form route pair needs from the submission service.
type Service interface {
	Submit(ctx context.Context, sub models.Submission) error
	List(ctx context.Context) ([]models.Submission, error)
}

// Handler serves the submit and list routes of one form.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterSubmissionRoutes mounts both forms on the paths the public site posts to.
func RegisterSubmissionRoutes(r gin.IRoutes, employment, education Service) {
	emp := New(employment)
	r.POST("/send-form", emp.Submit)
	r.GET("/submissions", emp.List)

	edu := New(education)
	r.POST("/send-education-form", edu.Submit)
	r.GET("/apply-education", edu.List)
}

func (h *Handler) Submit(c *gin.Context) {
	var sub models.Submission
	// an empty body is an empty submission and fails the required-field check
	if err := c.ShouldBindJSON(&sub); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.svc.Submit(c.Request.Context(), sub); err != nil {
		if errors.Is(err, service.ErrValidation) {
			respond.Error(c, http.StatusBadRequest, "Required fields missing", err)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to process form", err)
		return
	}
	respond.OK(c, http.StatusOK, gin.H{"message": "Form saved & email sent"})
}

func (h *Handler) List(c *gin.Context) {
	subs, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch submissions", err)
		return
	}
	respond.OK(c, http.StatusOK, gin.H{"data": subs})
}
