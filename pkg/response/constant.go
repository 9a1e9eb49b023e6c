package response

// Messages
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)

// Error codes
const (
	InternalServerErrorCode = 500
)

// Time formats used by the Date/DateTime JSON wrappers.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
