package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/services"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary Submit a contact request
// @Description Relays the message to the site contact address
// @Tags Support
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact request details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Router /support [post]
func submitContactRequest(c *gin.Context) {
	var request ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if len(strings.TrimSpace(request.Message)) < 10 {
		response.ValidationError(c, map[string]string{
			"message": "Message must be at least 10 characters long.",
		})
		return
	}

	emailService := services.NewEmailService()
	go emailService.SendContactEmail(request.Name, request.Email, request.Subject, request.Message)

	c.JSON(http.StatusOK, gin.H{
		"message": "Thank you for reaching out. We will get back to you soon.",
	})
}

// @Summary Subscribe to the newsletter
// @Tags Support
// @Accept json
// @Produce json
// @Param request body NewsletterRequest true "Subscriber email"
// @Success 200 {object} map[string]interface{}
// @Router /ajax/newsletter/subscribe/ [post]
func subscribeNewsletter(c *gin.Context) {
	var request NewsletterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.AjaxValidationError(c, map[string]string{
			"email": "Please provide a valid email address.",
		})
		return
	}

	subscriber := models.NewsletterSubscriber{Email: strings.ToLower(request.Email)}
	if err := database.DB.Create(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "You are already subscribed.",
			})
			return
		}
		response.AjaxError(c, "Subscription failed, please try again later.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subscribed! Watch your inbox for new dares.",
	})
}

func RegisterSupportRoutes(r *gin.RouterGroup) {
	r.POST("/support", submitContactRequest)
	r.POST("/ajax/newsletter/subscribe/", subscribeNewsletter)
}
