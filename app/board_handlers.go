package corkboard

import (
	"errors"
	"net/http"

	"corkboard/core"
	"corkboard/pkg/router"
)

type BoardHandler struct {
	board         *core.BoardService
	proxyIPHeader string
}

func NewBoardHandler(board *core.BoardService, proxyIPHeader string) *BoardHandler {
	return &BoardHandler{board: board, proxyIPHeader: proxyIPHeader}
}

func (h *BoardHandler) GetMessagesHandler(w http.ResponseWriter, r *http.Request) error {
	messages, err := h.board.ListRecent(r.Context(), core.MaxListLimit)
	if err != nil {
		return err
	}

	data := make([]messageDTO, 0, len(messages))
	for _, msg := range messages {
		data = append(data, toMessageDTO(msg))
	}

	return writeJSON(w, http.StatusOK, messagesResponse{Status: "success", Data: data})
}

func (h *BoardHandler) PostMessageHandler(w http.ResponseWriter, r *http.Request) error {
	body := r.PostFormValue("message")
	username, password := credentialsFromCookies(r)
	ip := remoteIP(r, h.proxyIPHeader)

	_, err := h.board.PostMessage(r.Context(), username, password, body, ip)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmptyMessage):
			return router.NewJsonError(http.StatusBadRequest, "Message is empty.")
		case errors.Is(err, core.ErrBadCredentials):
			return router.NewJsonError(http.StatusUnauthorized,
				"Incorrect password or password not provided for existing user.")
		default:
			return err
		}
	}

	return writeSuccess(w, "Message posted and old messages cleaned.")
}
