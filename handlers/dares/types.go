package dares

// Error messages constants
const (
	ErrDareNotFound        = "Dare not found"
	ErrInvalidRequest      = "Invalid request format"
	ErrFailedToListDares   = "Failed to list dares"
	ErrFailedToCreateDare  = "Failed to create dare"
	ErrFailedToUpdateDare  = "Failed to update dare"
	ErrFailedToDeleteDare  = "Failed to delete dare"
	ErrSubmissionsClosed   = "Submissions are currently closed"
	ErrSubmissionLimit     = "You have reached the maximum number of dare submissions"
	ErrFailedToLoadDetails = "Failed to load dare details"
)

// DareForm is the submission payload for creating or editing a dare
type DareForm struct {
	Title         string `json:"title" binding:"required,max=200"`
	Name          string `json:"name" binding:"required,max=100"`
	Email         string `json:"email" binding:"required,email"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	College       string `json:"college" binding:"required,max=200"`
	CategoryID    uint   `json:"category_id" binding:"required"`
	DifficultyID  uint   `json:"difficulty_id" binding:"required"`
	DareText      string `json:"dare_text" binding:"required"`
	EstimatedTime *int   `json:"estimated_time"`
	RequiredItems string `json:"required_items"`
	SafetyNotes   string `json:"safety_notes"`
}
