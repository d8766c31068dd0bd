package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/flyambition/flyambition-api/internal/models"
	"github.com/flyambition/flyambition-api/internal/respond"
	"github.com/flyambition/flyambition-api/internal/testimonial/service"
	"github.com/gin-gonic/gin"
)

// Service is the subset of the testimonial service the routes need.
type Service interface {
	Create(ctx context.Context, in service.CreateInput) (*models.Testimonial, error)
	List(ctx context.Context) ([]models.Testimonial, error)
	Get(ctx context.Context, id string) (*models.Testimonial, error)
	Update(ctx context.Context, id string, in service.UpdateInput) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type createForm struct {
	Author  string `form:"author" binding:"required"`
	Role    string `form:"role" binding:"required"`
	Country string `form:"country" binding:"required"`
	Text    string `form:"text" binding:"required"`
}

type updateForm struct {
	Author  string `form:"author"`
	Role    string `form:"role"`
	Country string `form:"country"`
	Text    string `form:"text"`
	Type    string `form:"type"`
}

const imageField = "image"

// RegisterTestimonialRoutes mounts the CRUD routes under /api/testimonials.
// mw runs on the group only, e.g. the upload body size limit.
func RegisterTestimonialRoutes(r gin.IRouter, svc Service, mw ...gin.HandlerFunc) {
	g := r.Group("/api/testimonials", mw...)

	g.POST("", func(c *gin.Context) {
		var req createForm
		if err := c.ShouldBind(&req); err != nil {
			formError(c, err, "All fields are required")
			return
		}
		image, err := optionalFile(c)
		if err != nil {
			formError(c, err, "Invalid image upload")
			return
		}
		t, err := svc.Create(c.Request.Context(), service.CreateInput{
			Author:  req.Author,
			Role:    req.Role,
			Country: req.Country,
			Text:    req.Text,
			Image:   image,
		})
		if err != nil {
			if errors.Is(err, service.ErrValidation) {
				respond.Error(c, http.StatusBadRequest, "All fields are required", err)
				return
			}
			respond.Error(c, http.StatusInternalServerError, "Failed to add testimonial", err)
			return
		}
		respond.OK(c, http.StatusOK, gin.H{"message": "Testimonial added!", "testimonial": t})
	})

	g.GET("", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "Failed to fetch testimonials", err)
			return
		}
		respond.OK(c, http.StatusOK, gin.H{"data": list})
	})

	g.GET("/:id", func(c *gin.Context) {
		t, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			lookupError(c, err, "Failed to fetch testimonial")
			return
		}
		respond.OK(c, http.StatusOK, gin.H{"data": t})
	})

	g.PUT("/:id", func(c *gin.Context) {
		var req updateForm
		if err := c.ShouldBind(&req); err != nil {
			formError(c, err, "Invalid form data")
			return
		}
		image, err := optionalFile(c)
		if err != nil {
			formError(c, err, "Invalid image upload")
			return
		}
		t, err := svc.Update(c.Request.Context(), c.Param("id"), service.UpdateInput{
			Author:  req.Author,
			Role:    req.Role,
			Country: req.Country,
			Text:    req.Text,
			Type:    req.Type,
			Image:   image,
		})
		if err != nil {
			lookupError(c, err, "Failed to update testimonial")
			return
		}
		respond.OK(c, http.StatusOK, gin.H{"message": "Testimonial updated successfully!", "testimonial": t})
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			lookupError(c, err, "Failed to delete testimonial")
			return
		}
		respond.OK(c, http.StatusOK, gin.H{"message": "Testimonial deleted!"})
	})
}

// lookupError maps errors of the by-id routes; fallback is the 500 message.
func lookupError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		respond.Error(c, http.StatusBadRequest, "Invalid ID format", err)
	case errors.Is(err, service.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "Testimonial not found", err)
	default:
		respond.Error(c, http.StatusInternalServerError, fallback, err)
	}
}

// formError reports an oversized body as 413 and anything else as 400 with msg.
func formError(c *gin.Context, err error, msg string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respond.Error(c, http.StatusRequestEntityTooLarge, "Upload too large", err)
		return
	}
	respond.Error(c, http.StatusBadRequest, msg, err)
}

// optionalFile returns the single "image" upload, or nil when none was sent.
func optionalFile(c *gin.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return fh, nil
}
