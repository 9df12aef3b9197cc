package handlers

import (
	"errors"
	"net/http"
	"strings"

	"crowdfund/internal/auth"
	"crowdfund/internal/domain"
)

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role" validate:"required,oneof=creator investor"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userProfileDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string         `json:"token"`
	User  userProfileDTO `json:"user"`
}

func profileOf(u domain.User) userProfileDTO {
	return userProfileDTO{ID: u.ID, Username: u.Username, Email: u.Email, Role: string(u.Role)}
}

func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !a.decode(w, r, &req) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx := r.Context()
	if taken, err := a.Users.ExistsUsername(ctx, req.Username); err != nil {
		a.fail(w, r, err, "create user")
		return
	} else if taken {
		a.fail(w, r, domain.ErrUsernameTaken, "create user")
		return
	}
	if taken, err := a.Users.ExistsEmail(ctx, req.Email); err != nil {
		a.fail(w, r, err, "create user")
		return
	} else if taken {
		a.fail(w, r, domain.ErrEmailTaken, "create user")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.fail(w, r, err, "create user")
		return
	}
	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.UserRole(req.Role),
	}
	if err := a.Users.Create(ctx, user); err != nil {
		a.fail(w, r, err, "create user")
		return
	}
	a.Logger.Info().Str("user_id", user.ID).Str("role", req.Role).Msg("user signed up")
	a.json(w, http.StatusCreated, profileOf(*user))
}

func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !a.decode(w, r, &req) {
		return
	}
	user, err := a.Users.GetByUsername(r.Context(), strings.TrimSpace(req.Username))
	if errors.Is(err, domain.ErrNotFound) {
		a.fail(w, r, domain.ErrInvalidCredentials, "login")
		return
	}
	if err != nil {
		a.fail(w, r, err, "login")
		return
	}
	ok, err := auth.ComparePassword(req.Password, user.PasswordHash)
	if err != nil {
		a.Logger.Warn().Err(err).Str("user_id", user.ID).Msg("stored password hash unreadable")
	}
	if !ok {
		a.fail(w, r, domain.ErrInvalidCredentials, "login")
		return
	}
	token, err := a.Tokens.Issue(*user)
	if err != nil {
		a.fail(w, r, err, "sign token")
		return
	}
	a.json(w, http.StatusOK, loginResponse{Token: token, User: profileOf(*user)})
}

// Me returns the profile of the authenticated caller.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := a.currentUser(r)
	if !ok {
		a.fail(w, r, domain.ErrUnauthorized, "load user")
		return
	}
	user, err := a.Users.GetByID(r.Context(), p.UserID)
	if err != nil {
		a.fail(w, r, err, "load user")
		return
	}
	a.json(w, http.StatusOK, profileOf(*user))
}
