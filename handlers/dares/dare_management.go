package dares

import (
	"errors"
	"net/http"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/metrics"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/services"
	"github.com/ajitashwath/dare-exchange/utils"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/ajitashwath/dare-exchange/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// dareFromForm builds the persisted record from the submitted fields,
// normalizing the phone number on the way in
func dareFromForm(form *DareForm) *models.Dare {
	return &models.Dare{
		Title:         form.Title,
		Name:          form.Name,
		Email:         form.Email,
		PhoneNumber:   utils.NormalizePhoneNumber(form.PhoneNumber, config.DefaultCountryCode),
		College:       form.College,
		CategoryID:    form.CategoryID,
		DifficultyID:  form.DifficultyID,
		DareText:      form.DareText,
		EstimatedTime: form.EstimatedTime,
		RequiredItems: form.RequiredItems,
		SafetyNotes:   form.SafetyNotes,
	}
}

// CreateDare submits a new dare
// @Summary Submit a new dare
// @Description Create a dare. Depending on the site configuration it starts pending review or goes live immediately.
// @Tags Dares
// @Accept json
// @Produce json
// @Param request body DareForm true "Dare fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /dare/new/ [post]
func CreateDare(c *gin.Context) {
	var form DareForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest+": "+err.Error())
		return
	}

	dare := dareFromForm(&form)

	if fieldErrors := services.ValidateDare(database.DB, dare, true); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	siteConfig, err := models.GetConfig(database.DB)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToCreateDare)
		return
	}

	if err := services.CreateDare(database.DB, siteConfig, dare); err != nil {
		switch {
		case errors.Is(err, services.ErrSubmissionsClosed):
			response.Error(c, http.StatusForbidden, ErrSubmissionsClosed)
		case errors.Is(err, services.ErrSubmissionLimit):
			response.Error(c, http.StatusBadRequest, ErrSubmissionLimit)
		default:
			response.Error(c, http.StatusInternalServerError, ErrFailedToCreateDare)
		}
		return
	}

	metrics.DaresSubmitted.WithLabelValues(dare.Status).Inc()

	// Notifications are best effort and never delay or fail the submission
	emailService := services.NewEmailService()
	go emailService.SendAdminNotification(dare)
	go emailService.SendUserConfirmation(dare)

	redirect := "/dares/"
	message := "Your dare is under review and will be published once approved."
	if dare.IsApproved {
		redirect = dare.URL()
		message = "Your dare has been published!"
	}

	c.JSON(http.StatusCreated, gin.H{
		"dare":     dare,
		"message":  message,
		"redirect": redirect,
	})
}

// UpdateDare edits an existing dare, which sends it back to review
// @Summary Edit a dare
// @Description Update a dare by slug. Any edit resets the dare to pending review.
// @Tags Dares
// @Accept json
// @Produce json
// @Param slug path string true "Dare slug"
// @Param request body DareForm true "Dare fields"
// @Success 200 {object} models.Dare
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /dare/{slug}/edit/ [put]
func UpdateDare(c *gin.Context) {
	slug := c.Param("slug")

	var dare models.Dare
	if err := database.DB.Where("slug = ?", slug).First(&dare).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrDareNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateDare)
		}
		return
	}

	var form DareForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest+": "+err.Error())
		return
	}

	updated := dareFromForm(&form)
	updated.ID = dare.ID
	updated.Slug = dare.Slug
	updated.ApprovedAt = dare.ApprovedAt
	updated.CreatedAt = dare.CreatedAt
	updated.ViewsCount = dare.ViewsCount
	updated.LikesCount = dare.LikesCount
	updated.CompletionsCount = dare.CompletionsCount

	if fieldErrors := services.ValidateDare(database.DB, updated, false); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	if err := services.UpdateDare(database.DB, updated); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateDare)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteDare removes a dare and everything it owns
// @Summary Delete a dare
// @Description Delete a dare by slug together with its completions and likes
// @Tags Dares
// @Param slug path string true "Dare slug"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /dare/{slug}/delete/ [delete]
func DeleteDare(c *gin.Context) {
	slug := c.Param("slug")

	var dare models.Dare
	if err := database.DB.Where("slug = ?", slug).First(&dare).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrDareNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteDare)
		}
		return
	}

	if err := services.DeleteDare(database.DB, &dare); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteDare)
		return
	}

	c.Status(http.StatusNoContent)
}
