package constants

// Word limits for user supplied text fields
const (
	TitleMaxWords       = 30
	DescriptionMaxWords = 150
)

// Pagination defaults
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
