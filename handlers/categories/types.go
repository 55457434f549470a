package categories

// Error messages constants
const (
	ErrCategoryNotFound    = "Category not found"
	ErrFailedToLoadListing = "Failed to load category listing"
)
