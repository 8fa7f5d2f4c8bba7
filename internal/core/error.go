package core

// Error codes
const (
	ErrGameNotFound       = "GAME_NOT_FOUND"
	ErrInvalidMove        = "INVALID_MOVE"
	ErrIllegalOwnership   = "ILLEGAL_OWNERSHIP"
	ErrIllegalDestination = "ILLEGAL_DESTINATION"
	ErrIllegalChain       = "ILLEGAL_CHAIN"
	ErrBrokenChain        = "BROKEN_CHAIN"
	ErrGameOver           = "GAME_OVER"
	ErrSeatTaken          = "SEAT_TAKEN"
	ErrNotYourTurn        = "NOT_YOUR_TURN"
	ErrRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent     = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest     = "INVALID_REQUEST"
	ErrInternalError      = "INTERNAL_ERROR"
	ErrResourceLimit      = "RESOURCE_LIMIT"
	ErrUnauthorized       = "UNAUTHORIZED"
)
