package admin

import (
	"errors"
	"net/http"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/services"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func findDare(c *gin.Context) (*models.Dare, bool) {
	slug := c.Param("slug")

	var dare models.Dare
	if err := database.DB.Where("slug = ?", slug).First(&dare).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrDareNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateStatus)
		}
		return nil, false
	}
	return &dare, true
}

// moderate applies a status transition and notifies the submitter
func moderate(c *gin.Context, dare *models.Dare, status, reason string) {
	if err := services.SetStatus(database.DB, dare, status, reason); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateStatus)
		return
	}

	go services.NewEmailService().SendModerationNotice(dare)

	c.JSON(http.StatusOK, dare)
}

// ApproveDare makes a dare publicly visible
// @Summary Approve a dare
// @Tags Admin
// @Produce json
// @Param slug path string true "Dare slug"
// @Success 200 {object} models.Dare
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/dare/{slug}/approve [put]
// @Security AdminKey
func ApproveDare(c *gin.Context) {
	dare, ok := findDare(c)
	if !ok {
		return
	}
	moderate(c, dare, models.StatusApproved, "")
}

// RejectDare rejects a dare with an optional audit reason
// @Summary Reject a dare
// @Tags Admin
// @Accept json
// @Produce json
// @Param slug path string true "Dare slug"
// @Param request body RejectRequest false "Rejection reason"
// @Success 200 {object} models.Dare
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/dare/{slug}/reject [put]
// @Security AdminKey
func RejectDare(c *gin.Context) {
	dare, ok := findDare(c)
	if !ok {
		return
	}

	var request RejectRequest
	_ = c.ShouldBindJSON(&request)

	moderate(c, dare, models.StatusRejected, request.Reason)
}

// FeatureDare promotes a dare; featuring implies approval
// @Summary Feature a dare
// @Tags Admin
// @Produce json
// @Param slug path string true "Dare slug"
// @Success 200 {object} models.Dare
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/dare/{slug}/feature [put]
// @Security AdminKey
func FeatureDare(c *gin.Context) {
	dare, ok := findDare(c)
	if !ok {
		return
	}
	moderate(c, dare, models.StatusFeatured, "")
}

// UnfeatureDare demotes a featured dare back to plain approved
// @Summary Unfeature a dare
// @Tags Admin
// @Produce json
// @Param slug path string true "Dare slug"
// @Success 200 {object} models.Dare
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/dare/{slug}/unfeature [put]
// @Security AdminKey
func UnfeatureDare(c *gin.Context) {
	dare, ok := findDare(c)
	if !ok {
		return
	}
	moderate(c, dare, models.StatusApproved, "")
}

// BulkAction applies one moderation action to several dares
// @Summary Bulk moderation
// @Description Approve, reject, feature or delete several dares in one call
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body BulkActionRequest true "Action and target slugs"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/dares/bulk [post]
// @Security AdminKey
func BulkAction(c *gin.Context) {
	var request BulkActionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if len(request.Slugs) == 0 {
		response.Error(c, http.StatusBadRequest, ErrEmptySlugs)
		return
	}

	var status string
	switch request.Action {
	case ActionApprove:
		status = models.StatusApproved
	case ActionReject:
		status = models.StatusRejected
	case ActionFeature:
		status = models.StatusFeatured
	case ActionDelete:
	default:
		response.Error(c, http.StatusBadRequest, ErrInvalidAction)
		return
	}

	var dares []models.Dare
	if err := database.DB.Where("slug IN ?", request.Slugs).Find(&dares).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateStatus)
		return
	}

	emailService := services.NewEmailService()
	processed := 0
	for i := range dares {
		if request.Action == ActionDelete {
			if err := services.DeleteDare(database.DB, &dares[i]); err != nil {
				continue
			}
		} else {
			if err := services.SetStatus(database.DB, &dares[i], status, request.RejectionReason); err != nil {
				continue
			}
			go emailService.SendModerationNotice(&dares[i])
		}
		processed++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"processed": processed,
	})
}

// VerifyCompletion flips the verification flag on a completion claim.
// The attempt counter is never touched by verification.
// @Summary Verify a completion
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Completion ID"
// @Param request body VerifyRequest false "Verification flag (defaults to true)"
// @Success 200 {object} models.DareCompletion
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/completion/{id}/verify [put]
// @Security AdminKey
func VerifyCompletion(c *gin.Context) {
	id := c.Param("id")

	var completion models.DareCompletion
	if err := database.DB.Where("id = ?", id).First(&completion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrCompletionNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateStatus)
		}
		return
	}

	request := VerifyRequest{Verified: true}
	_ = c.ShouldBindJSON(&request)

	if err := services.SetCompletionVerified(database.DB, &completion, request.Verified); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateStatus)
		return
	}

	c.JSON(http.StatusOK, completion)
}

// ListPendingDares lists the dares waiting for review, oldest first
// @Summary Pending dares
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Dare
// @Failure 403 {object} map[string]string
// @Router /admin/dares/pending [get]
// @Security AdminKey
func ListPendingDares(c *gin.Context) {
	var dares []models.Dare
	err := database.DB.Where("status = ?", models.StatusPending).
		Preload("Category").
		Preload("Difficulty").
		Order("created_at ASC").
		Find(&dares).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateStatus)
		return
	}
	c.JSON(http.StatusOK, dares)
}
