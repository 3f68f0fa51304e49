package corkboard

import (
	"errors"
	"net/http"

	"corkboard/core"
	"corkboard/pkg/router"
)

type AccountHandler struct {
	accounts *core.AccountService
}

func NewAccountHandler(accounts *core.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) error {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if err := h.accounts.Register(r.Context(), username, password); err != nil {
		switch {
		case errors.Is(err, core.ErrMissingCredentials):
			return router.NewJsonError(http.StatusBadRequest, "Username and password are required.")
		case errors.Is(err, core.ErrConflictedUser):
			return router.NewJsonError(http.StatusConflict, "User already exists.")
		default:
			return err
		}
	}

	return writeSuccess(w, "User registered successfully.")
}

func (h *AccountHandler) LoginHandler(w http.ResponseWriter, r *http.Request) error {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if err := h.accounts.Login(r.Context(), username, password); err != nil {
		switch {
		case errors.Is(err, core.ErrMissingCredentials):
			return router.NewJsonError(http.StatusBadRequest, "Username and password are required.")
		case errors.Is(err, core.ErrBadCredentials):
			return router.NewJsonError(http.StatusUnauthorized, "Invalid username or password.")
		default:
			return err
		}
	}

	return writeSuccess(w, "Login successful.")
}

func (h *AccountHandler) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) error {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	newPassword := r.PostFormValue("new_password")

	if err := h.accounts.ChangePassword(r.Context(), username, password, newPassword); err != nil {
		switch {
		case errors.Is(err, core.ErrMissingCredentials):
			return router.NewJsonError(http.StatusBadRequest,
				"Username, old password, and new password are required.")
		case errors.Is(err, core.ErrBadCredentials):
			return router.NewJsonError(http.StatusUnauthorized, "Incorrect username or password.")
		default:
			return err
		}
	}

	return writeSuccess(w, "Password updated successfully.")
}

// DeleteAccountHandler authenticates with the same cookies a post uses,
// mirroring how board clients have always issued account deletion.
func (h *AccountHandler) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) error {
	username, password := credentialsFromCookies(r)

	if err := h.accounts.DeleteAccount(r.Context(), username, password); err != nil {
		switch {
		case errors.Is(err, core.ErrMissingCredentials):
			return router.NewJsonError(http.StatusBadRequest, "Username and password are required.")
		case errors.Is(err, core.ErrBadCredentials):
			return router.NewJsonError(http.StatusUnauthorized, "Invalid username or password.")
		default:
			return err
		}
	}

	return writeSuccess(w, "User deleted successfully.")
}
