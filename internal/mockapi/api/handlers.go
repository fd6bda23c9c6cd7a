package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/vidmarkt/internal/client/forms"
	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/common"
	"github.com/dmitrijs2005/vidmarkt/internal/logging"
	"github.com/dmitrijs2005/vidmarkt/internal/mockapi/auth"
	"github.com/dmitrijs2005/vidmarkt/internal/mockapi/store"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Handler serves the marketplace endpoints from an in-memory store.
type Handler struct {
	store    *store.Store
	secret   []byte
	tokenTTL time.Duration
	log      logging.Logger
	validate *validator.Validate
}

func NewHandler(s *store.Store, secretKey string, tokenTTL time.Duration, log logging.Logger) *Handler {
	return &Handler{
		store:    s,
		secret:   []byte(secretKey),
		tokenTTL: tokenTTL,
		log:      log.With("module", "mockapi"),
		validate: newValidator(),
	}
}

// newValidator accepts the same addresses the client forms do.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return forms.IsEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

type signUpBody struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,looseemail"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Terms           bool   `json:"terms" validate:"required"`
}

type registerBody struct {
	Email    string `json:"email" validate:"required,looseemail"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SearchEvents answers GET /event?search=q.
func (h *Handler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.SearchEvents(r.Context(), r.URL.Query().Get("search")))
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	e, err := h.store.Event(r.Context(), models.ID(mux.Vars(r)["id"]))
	h.respond(w, r, e, err)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Season(r.Context(), models.ID(mux.Vars(r)["id"]))
	h.respond(w, r, s, err)
}

func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	m, err := h.store.Media(r.Context(), models.ID(mux.Vars(r)["id"]))
	h.respond(w, r, m, err)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, v)
	case errors.Is(err, common.ErrorNotFound):
		errorJSON(w, http.StatusNotFound, "not found")
	default:
		h.log.Error(r.Context(), "lookup failed", "path", r.URL.Path, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
	}
}

// CreateUser answers POST /user.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in signUpBody
	if !h.bind(w, r, &in) {
		return
	}
	u, err := h.store.CreateUser(r.Context(), in.FirstName, in.LastName, in.Email, in.Password)
	h.created(w, r, u, err)
}

// Register answers POST /api/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in registerBody
	if !h.bind(w, r, &in) {
		return
	}
	u, err := h.store.CreateUser(r.Context(), "", "", in.Email, in.Password)
	h.created(w, r, u, err)
}

func (h *Handler) created(w http.ResponseWriter, r *http.Request, u models.User, err error) {
	switch {
	case err == nil:
		h.log.Info(r.Context(), "user created", "user_id", u.ID)
		writeJSON(w, http.StatusCreated, u)
	case errors.Is(err, common.ErrorAlreadyExists):
		errorJSON(w, http.StatusConflict, "email already in use")
	default:
		h.log.Error(r.Context(), "create user failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
	}
}

// Login answers POST /auth/login with the user and an access token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginRequest
	if err := decodeJSON(w, r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		errorJSON(w, http.StatusBadRequest, "username and password required")
		return
	}

	u, err := h.store.Authenticate(r.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			errorJSON(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		h.log.Error(r.Context(), "login failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := auth.GenerateToken(u.ID.String(), h.secret, h.tokenTTL)
	if err != nil {
		h.log.Error(r.Context(), "token error", "error", err)
		errorJSON(w, http.StatusInternalServerError, "token error")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{User: &u, AccessToken: token})
}

// PlaceOrder answers POST /order. The order is placed for the token's user;
// a different user id in the body is refused.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID := models.ID(userIDFromContext(r.Context()))

	var in models.OrderRequest
	if err := decodeJSON(w, r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.User.ID != "" && in.User.ID != userID {
		errorJSON(w, http.StatusForbidden, "order user does not match token")
		return
	}
	if in.CardHolderName == "" || in.CardNumber == "" || in.Expiration == "" || in.CVC == "" {
		errorJSON(w, http.StatusBadRequest, "payment details required")
		return
	}

	o, err := h.store.PlaceOrder(r.Context(), userID, in)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrUnknownMedia), errors.Is(err, common.ErrorNotFound):
		errorJSON(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, store.ErrAmountMismatch), errors.Is(err, store.ErrEmptyOrder):
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	default:
		h.log.Error(r.Context(), "order failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.log.Info(r.Context(), "order placed", "order_id", o.ID, "user_id", userID, "success", o.IsSuccess)
	writeJSON(w, http.StatusCreated, models.OrderResponse{ID: o.ID, IsSuccess: o.IsSuccess})
}

// bind decodes and validates the body into v, answering 400 on failure.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := decodeJSON(w, r, v); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			errorJSON(w, http.StatusBadRequest, "invalid "+verrs[0].Field())
			return false
		}
		errorJSON(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
