package api

import "github.com/beacon-app/beacon-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "missing account number",

		1100: "this account has been registered or has been taken",
		1101: "account not found",

		1200: store.ErrSelfReference.Error(),
		1201: store.ErrInvalidStateTransition.Error(),
		1202: store.ErrInvalidResourceType.Error(),
		1203: store.ErrTagAssignmentExhausted.Error(),
		1204: store.ErrResourceNotFound.Error(),

		1300: "unable to compute a route between the given points",
		1301: "assistant is unavailable",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters    = errorJSON(1010)
	errorCannotParseRequest   = errorJSON(1011)
	errorMissingAccountNumber = errorJSON(1012)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorSelfReference          = errorJSON(1200)
	errorInvalidStateTransition = errorJSON(1201)
	errorInvalidResourceType    = errorJSON(1202)
	errorTagExhausted           = errorJSON(1203)
	errorResourceNotFound       = errorJSON(1204)

	errorRouteNotFound        = errorJSON(1300)
	errorAssistantUnavailable = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
