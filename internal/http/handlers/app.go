package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"

	"crowdfund/internal/auth"
	"crowdfund/internal/domain"
	"crowdfund/internal/infra"
	"crowdfund/internal/middleware"
)

const maxBodyBytes = 1 << 20

// maxMoney caps a single amount or goal in whole currency units. Sums of up to
// nine million capped values still fit in an int64.
const maxMoney = 1_000_000_000_000

// statusClientClosedRequest reports a request the client abandoned.
const statusClientClosedRequest = 499

// App carries the dependencies shared by every handler.
type App struct {
	Users         domain.UserRepository
	Campaigns     domain.CampaignRepository
	Contributions domain.ContributionRepository
	Tokens        *auth.Tokens
	Logger        infra.Logger
	Currency      currency.Unit

	validate *validator.Validate
}

func NewApp(users domain.UserRepository, campaigns domain.CampaignRepository, contributions domain.ContributionRepository, tokens *auth.Tokens, logger infra.Logger) *App {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &App{
		Users:         users,
		Campaigns:     campaigns,
		Contributions: contributions,
		Tokens:        tokens,
		Logger:        logger,
		Currency:      currency.INR,
		validate:      v,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": message},
	})
}

// decode reads a JSON body into dst and validates it. On failure the
// response has been written and false is returned.
func (a *App) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	if err := a.validate.Struct(dst); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid payload"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min", "max":
		return fmt.Sprintf("%s length must be %s %s", fe.Field(), map[string]string{"min": "at least", "max": "at most"}[fe.Tag()], fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// fail maps domain errors onto HTTP responses; anything unknown is logged
// and reported as internal.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", "not the owner of this resource")
	case errors.Is(err, domain.ErrUsernameTaken):
		a.error(w, http.StatusConflict, "conflict", "Username already exists")
	case errors.Is(err, domain.ErrEmailTaken):
		a.error(w, http.StatusConflict, "conflict", "Email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
	case errors.Is(err, context.Canceled):
		a.Logger.Debug().Err(err).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg(action + " canceled")
		a.error(w, statusClientClosedRequest, "canceled", "request canceled")
	default:
		a.Logger.Error().Err(err).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg(action + " failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to "+action)
	}
}

func (a *App) currentUser(r *http.Request) (middleware.Principal, bool) {
	return middleware.PrincipalFromContext(r.Context())
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}
