package httpx

import (
	"encoding/json"
	"log"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Response is the envelope every endpoint replies with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func JSONSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	JSON(w, statusCode, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Response{
		Status:  StatusFail,
		Message: message,
	})
}
