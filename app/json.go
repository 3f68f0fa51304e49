package corkboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"corkboard/core"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type messagesResponse struct {
	Status string       `json:"status"`
	Data   []messageDTO `json:"data"`
}

// messageDTO is the wire shape of one message. The id travels as a
// string, which is what the board's clients have always been served.
type messageDTO struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	IP        string `json:"ip"`
	Username  string `json:"username"`
	Message   string `json:"message"`
}

func toMessageDTO(msg core.Message) messageDTO {
	return messageDTO{
		ID:        strconv.FormatInt(msg.ID, 10),
		Timestamp: msg.Timestamp,
		IP:        msg.IP,
		Username:  msg.Username,
		Message:   msg.Body,
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, message string) error {
	return writeJSON(w, http.StatusOK, statusResponse{Status: "success", Message: message})
}
