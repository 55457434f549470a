package config

// Rate limit configuration per endpoint family
type RateLimitConfig struct {
	ListingRate      int // Requests per minute on listing and detail endpoints
	ListingBurst     int // Burst capacity for listing and detail endpoints
	InteractionRate  int // Requests per minute on like/completion endpoints
	InteractionBurst int // Burst capacity for like/completion endpoints
}

var DefaultRateLimitConfig = RateLimitConfig{
	ListingRate:      12000,
	ListingBurst:     1000,
	InteractionRate:  3000,
	InteractionBurst: 300,
}
