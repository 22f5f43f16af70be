package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with the given status
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// List writes a collection response: {"data": [...], "count": n}
func List(w http.ResponseWriter, data interface{}, count int) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"data":  data,
		"count": count,
	})
}

// Item writes a single-resource response: {"data": {...}, "message": "..."}
func Item(w http.ResponseWriter, status int, data interface{}, message string) {
	body := map[string]interface{}{"data": data}
	if message != "" {
		body["message"] = message
	}
	JSON(w, status, body)
}

// Error writes an error response: {"message": "..."}
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// PDF writes raw PDF bytes with an attachment filename
func PDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
