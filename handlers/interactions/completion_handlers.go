package interactions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/metrics"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/realtime"
	"github.com/ajitashwath/dare-exchange/services"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/gin-gonic/gin"
)

// SubmitCompletion records a completion claim for a dare
// @Summary Submit a completion
// @Description Record that the caller completed a dare. One claim per email per dare; claims start unverified.
// @Tags Interactions
// @Accept json
// @Produce json
// @Param slug path string true "Dare slug"
// @Param request body CompletionForm true "Completion details"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /ajax/dare/{slug}/complete/ [post]
func SubmitCompletion(c *gin.Context) {
	dare, ok := findApprovedDare(c)
	if !ok {
		return
	}

	var form CompletionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.AjaxValidationError(c, map[string]string{"form": ErrInvalidRequest + ": " + err.Error()})
		return
	}

	siteConfig, err := models.GetConfig(database.DB)
	if err != nil {
		response.AjaxError(c, ErrFailedToComplete)
		return
	}
	if !siteConfig.EnableCompletions {
		response.AjaxError(c, ErrCompletionsDisabled)
		return
	}

	completion := models.DareCompletion{
		CompleterName:   form.CompleterName,
		CompleterEmail:  form.CompleterEmail,
		CompletionProof: form.CompletionProof,
		CompletionImage: form.CompletionImage,
	}

	completionsCount, err := services.RecordCompletion(database.DB, dare, &completion)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyCompleted) {
			response.AjaxError(c, ErrAlreadyCompleted)
		} else {
			response.AjaxError(c, ErrFailedToComplete)
		}
		return
	}

	metrics.CompletionsRecorded.Inc()

	go realtime.BroadcastCounterUpdate(realtime.CounterUpdate{
		Slug:             dare.Slug,
		ViewsCount:       dare.ViewsCount,
		LikesCount:       dare.LikesCount,
		CompletionsCount: completionsCount,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "Completion submitted successfully! It will be reviewed and verified.",
		"completions_count": completionsCount,
	})
}

// CommunityBoard lists recently verified completions
// @Summary Community board
// @Description Page through recently completed and verified dares
// @Tags Interactions
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /community/ [get]
func CommunityBoard(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	completions, pagination, err := services.ListVerifiedCompletions(database.DB, page, 9)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToListBoard)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"completions": completions,
		"pagination":  pagination,
	})
}
