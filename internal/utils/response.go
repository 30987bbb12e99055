package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Envelope is the shape of every JSON response the API returns.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// NewEnvelope builds an envelope whose Success defaults to the presence
// of data when not set explicitly elsewhere. An empty message becomes
// "Success" or "Failed" depending on data.
func NewEnvelope(message string, data any) Envelope {
	if message == "" {
		if data != nil {
			message = "Success"
		} else {
			message = "Failed"
		}
	}
	return Envelope{
		Success: data != nil,
		Message: message,
		Data:    data,
	}
}

// RespondData writes a success-by-data envelope.
func RespondData(w http.ResponseWriter, status int, message string, data any) {
	writeEnvelope(w, status, NewEnvelope(message, data))
}

// RespondMessage writes an envelope with an explicit success flag and no data.
func RespondMessage(w http.ResponseWriter, status int, success bool, message string) {
	writeEnvelope(w, status, Envelope{Success: success, Message: message})
}

// RespondError writes a failure envelope with the public message and logs
// the developer error, if any, without leaking it to the caller.
func RespondError(w http.ResponseWriter, status int, publicMessage string, devErrs ...error) {
	writeEnvelope(w, status, Envelope{Success: false, Message: publicMessage})

	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicMessage)
	}
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
