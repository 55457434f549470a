package admin

// Error messages constants
const (
	ErrDareNotFound         = "Dare not found"
	ErrCompletionNotFound   = "Completion not found"
	ErrInvalidRequest       = "Invalid request format"
	ErrInvalidAction        = "Invalid bulk action"
	ErrEmptySlugs           = "No dares selected"
	ErrFailedToUpdateStatus = "Failed to update dare status"
	ErrFailedToLoadConfig   = "Failed to load site configuration"
	ErrFailedToSaveConfig   = "Failed to save site configuration"
	ErrFailedToExport       = "Failed to export dares"
)

// Bulk moderation actions
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionFeature = "feature"
	ActionDelete  = "delete"
)

// RejectRequest carries the optional audit reason of a rejection
type RejectRequest struct {
	Reason string `json:"reason"`
}

// BulkActionRequest applies one moderation action to several dares at once
type BulkActionRequest struct {
	Action          string   `json:"action" binding:"required"`
	Slugs           []string `json:"slugs" binding:"required"`
	RejectionReason string   `json:"rejection_reason"`
}

// VerifyRequest flips the verification flag on a completion
type VerifyRequest struct {
	Verified bool `json:"verified"`
}

// ConfigUpdateRequest is the editable subset of the site configuration
type ConfigUpdateRequest struct {
	SiteName           *string `json:"site_name"`
	AllowSubmissions   *bool   `json:"allow_submissions"`
	RequireApproval    *bool   `json:"require_approval"`
	EnableLikes        *bool   `json:"enable_likes"`
	EnableCompletions  *bool   `json:"enable_completions"`
	MaxDaresPerUser    *int    `json:"max_dares_per_user"`
	FeaturedDaresCount *int    `json:"featured_dares_count"`
}
