package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: not authenticated.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: conflicting state.
	StatusConflict = 409
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User related error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: incorrect password.
	ErrUserPasswordIncorrect
	// ErrOAuthExchange - 401: OAuth code exchange failed.
	ErrOAuthExchange
)

// Building and room related error codes (102xxx).
const (
	// ErrBuildingNotFound - 404: building not found.
	ErrBuildingNotFound int = iota + 102000
	// ErrRoomNotFound - 404: room not found.
	ErrRoomNotFound
	// ErrRoomAlreadyExist - 400: room with this name already exists in the building.
	ErrRoomAlreadyExist
	// ErrRoomInUse - 409: room is referenced by device locations.
	ErrRoomInUse
)

// Classification related error codes (103xxx).
const (
	// ErrCategoryNotFound - 404: category not found.
	ErrCategoryNotFound int = iota + 103000
	// ErrCategoryAlreadyExist - 400: category name or code already exists.
	ErrCategoryAlreadyExist
	// ErrCategoryInUse - 409: category still referenced by device types or children.
	ErrCategoryInUse
	// ErrDeviceTypeNotFound - 404: device type not found.
	ErrDeviceTypeNotFound
	// ErrDeviceTypeAlreadyExist - 400: device type already exists in this category.
	ErrDeviceTypeAlreadyExist
	// ErrDeviceTypeInUse - 409: device type still referenced by devices.
	ErrDeviceTypeInUse
)

// Device related error codes (104xxx).
const (
	// ErrDeviceNotFound - 404: device not found.
	ErrDeviceNotFound int = iota + 104000
	// ErrDeviceAlreadyExist - 400: inventory number already exists.
	ErrDeviceAlreadyExist
	// ErrInvalidMACAddress - 400: malformed MAC address.
	ErrInvalidMACAddress
	// ErrInvalidIPAddress - 400: malformed IP address.
	ErrInvalidIPAddress
	// ErrInvalidCondition - 400: unknown device condition value.
	ErrInvalidCondition
	// ErrLocationNotFound - 404: device has no recorded location.
	ErrLocationNotFound
	// ErrResponsibleNotFound - 404: responsible person not found.
	ErrResponsibleNotFound
	// ErrResponsibleAlreadyExist - 400: responsible person already assigned to this place.
	ErrResponsibleAlreadyExist
)

// Repair and service related error codes (105xxx).
const (
	// ErrRepairNotFound - 404: repair request not found.
	ErrRepairNotFound int = iota + 105000
	// ErrIllegalTransition - 409: repair request state transition not allowed.
	ErrIllegalTransition
	// ErrAssigneeRequired - 400: transition requires an assignee.
	ErrAssigneeRequired
	// ErrServiceLogNotFound - 404: service log not found.
	ErrServiceLogNotFound
	// ErrInvalidServiceType - 400: unknown service type value.
	ErrInvalidServiceType
)

// Media related error codes (106xxx).
const (
	// ErrImageNotFound - 404: image not found.
	ErrImageNotFound int = iota + 106000
	// ErrMainImageExists - 409: a main image is already flagged for this owner.
	ErrMainImageExists
	// ErrMediaStore - 500: media storage failure.
	ErrMediaStore
)

// Database related error codes (107xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 107000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
