package api

import (
	"encoding/json"
	"log"
	"net/http"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "The request could not be understood.",
	http.StatusUnauthorized:        "You need to sign in to do that.",
	http.StatusForbidden:           "You do not have permission to do that.",
	http.StatusNotFound:            "We couldn't find what you were looking for.",
	http.StatusMethodNotAllowed:    "That action is not allowed here.",
	http.StatusConflict:            "That conflicts with something that already exists.",
	http.StatusUnprocessableEntity: "The request was well-formed but could not be processed.",
	http.StatusTooManyRequests:     "Too many requests. Please slow down and try again later.",
	http.StatusInternalServerError: "Something went wrong on our end.",
	http.StatusBadGateway:          "An upstream service returned an invalid response.",
	http.StatusServiceUnavailable:  "The service is temporarily unavailable.",
	http.StatusGatewayTimeout:      "An upstream service took too long to respond.",
}

const genericStatusMessage = "An unexpected error occurred."

// StatusMessage returns a user-facing message for an HTTP status code.
func StatusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return genericStatusMessage
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := errorResponse{Status: code, Message: StatusMessage(code), Detail: detail}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode error response: %v", err)
	}
}
