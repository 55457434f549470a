package interactions

// Error messages constants
const (
	ErrDareNotFound        = "Dare not found"
	ErrEmailRequired       = "Email required"
	ErrInvalidRequest      = "Invalid request"
	ErrLikesDisabled       = "Likes are currently disabled"
	ErrCompletionsDisabled = "Completions are currently disabled"
	ErrAlreadyCompleted    = "You have already submitted a completion for this dare."
	ErrFailedToToggleLike  = "Failed to update like"
	ErrFailedToComplete    = "Failed to record completion"
	ErrFailedToListBoard   = "Failed to load community board"
)

// LikeRequest is the AJAX like toggle payload
type LikeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CompletionForm is the AJAX completion submission payload
type CompletionForm struct {
	CompleterName   string `json:"completer_name" binding:"required,max=100"`
	CompleterEmail  string `json:"completer_email" binding:"required,email"`
	CompletionProof string `json:"completion_proof" binding:"required"`
	CompletionImage string `json:"completion_image" binding:"omitempty,url"`
}
