package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/linkup-api/internal/middleware"
	"github.com/franciscosanchezn/linkup-api/internal/models"
	"github.com/franciscosanchezn/linkup-api/internal/services"
)

type ReviewController struct {
	reviewService services.ReviewService
}

func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

type createReviewRequest struct {
	EventID *uint  `json:"eventId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Details string `json:"details"`
}

// AddReview godoc
// @Summary Post a review
// @Description Open route. When a valid bearer token is sent its email is recorded as the author, otherwise the body email is used.
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body createReviewRequest true "Review"
// @Success 200 {object} map[string]interface{}
// @Router /reviews [post]
func (rc *ReviewController) AddReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewMessage("Invalid request body"))
		return
	}

	// a verified token wins over the email in the body
	author := req.Email
	if identity, ok := middleware.CurrentIdentity(c); ok && identity.Email() != "" {
		author = identity.Email()
	}

	review, err := rc.reviewService.CreateReview(c.Request.Context(), models.Review{
		EventID:     req.EventID,
		AuthorEmail: author,
		AuthorName:  req.Name,
		Rating:      req.Rating,
		Details:     req.Details,
	})
	if err != nil {
		storageFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": review.ID})
}

// ListReviews godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param eventId query int false "Only reviews of this event"
// @Success 200 {array} models.Review
// @Router /reviews [get]
func (rc *ReviewController) ListReviews(c *gin.Context) {
	var eventID *uint
	if raw := c.Query("eventId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.NewMessage("Invalid eventId format"))
			return
		}
		id := uint(parsed)
		eventID = &id
	}

	reviews, err := rc.reviewService.ListReviews(c.Request.Context(), eventID)
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
