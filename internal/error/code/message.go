package code

// codeMessageMap maps error codes to user facing messages
var codeMessageMap = map[int]string{
	// Common
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "failed to bind request parameters",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests",

	// Users
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "incorrect username or password",
	ErrOAuthExchange:         "OAuth authorization failed",

	// Buildings and rooms
	ErrBuildingNotFound: "building not found",
	ErrRoomNotFound:     "room not found",
	ErrRoomAlreadyExist: "a room with this name already exists in the building",
	ErrRoomInUse:        "room is still referenced by device locations",

	// Classification
	ErrCategoryNotFound:       "category not found",
	ErrCategoryAlreadyExist:   "category name or code already exists",
	ErrCategoryInUse:          "category is still referenced and cannot be deleted",
	ErrDeviceTypeNotFound:     "device type not found",
	ErrDeviceTypeAlreadyExist: "device type already exists in this category",
	ErrDeviceTypeInUse:        "device type is still referenced by devices",

	// Devices
	ErrDeviceNotFound:          "device not found",
	ErrDeviceAlreadyExist:      "inventory number already exists",
	ErrInvalidMACAddress:       "invalid MAC address format",
	ErrInvalidIPAddress:        "invalid IP address format",
	ErrInvalidCondition:        "unknown device condition",
	ErrLocationNotFound:        "device has no recorded location",
	ErrResponsibleNotFound:     "responsible person not found",
	ErrResponsibleAlreadyExist: "this person is already responsible for this place",

	// Repair and service
	ErrRepairNotFound:     "repair request not found",
	ErrIllegalTransition:  "repair request state transition not allowed",
	ErrAssigneeRequired:   "an assignee is required for this transition",
	ErrServiceLogNotFound: "service log not found",
	ErrInvalidServiceType: "unknown service type",

	// Media
	ErrImageNotFound:   "image not found",
	ErrMainImageExists: "a main image is already set",
	ErrMediaStore:      "failed to store media file",

	// Database
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// codeStatusMap maps error codes to HTTP status codes
var codeStatusMap = map[int]int{
	// Common
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Users
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrOAuthExchange:         StatusUnauthorized,

	// Buildings and rooms
	ErrBuildingNotFound: StatusNotFound,
	ErrRoomNotFound:     StatusNotFound,
	ErrRoomAlreadyExist: StatusBadRequest,
	ErrRoomInUse:        StatusConflict,

	// Classification
	ErrCategoryNotFound:       StatusNotFound,
	ErrCategoryAlreadyExist:   StatusBadRequest,
	ErrCategoryInUse:          StatusConflict,
	ErrDeviceTypeNotFound:     StatusNotFound,
	ErrDeviceTypeAlreadyExist: StatusBadRequest,
	ErrDeviceTypeInUse:        StatusConflict,

	// Devices
	ErrDeviceNotFound:          StatusNotFound,
	ErrDeviceAlreadyExist:      StatusBadRequest,
	ErrInvalidMACAddress:       StatusBadRequest,
	ErrInvalidIPAddress:        StatusBadRequest,
	ErrInvalidCondition:        StatusBadRequest,
	ErrLocationNotFound:        StatusNotFound,
	ErrResponsibleNotFound:     StatusNotFound,
	ErrResponsibleAlreadyExist: StatusBadRequest,

	// Repair and service
	ErrRepairNotFound:     StatusNotFound,
	ErrIllegalTransition:  StatusConflict,
	ErrAssigneeRequired:   StatusBadRequest,
	ErrServiceLogNotFound: StatusNotFound,
	ErrInvalidServiceType: StatusBadRequest,

	// Media
	ErrImageNotFound:   StatusNotFound,
	ErrMainImageExists: StatusConflict,
	ErrMediaStore:      StatusInternalServerError,

	// Database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message associated with an error code
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status associated with an error code
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
