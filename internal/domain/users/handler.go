package users

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pick-your-pup/internal/middleware"
	"pick-your-pup/internal/platform/httpjson"
	"pick-your-pup/internal/platform/metrics"
)

// RegisterRoutes monta /auth/* (públicas, con throttle) y /user/profile (autenticada).
func RegisterRoutes(r chi.Router, svc *Service, requireAuth, throttle func(http.Handler) http.Handler, m *metrics.Metrics) {
	r.Route("/auth", func(ar chi.Router) {
		if throttle != nil {
			ar.Use(throttle)
		}
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc, m))
	})

	r.With(requireAuth).Get("/user/profile", profileHandler(svc))
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type publicUser struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	JoinDate *time.Time `json:"joinDate,omitempty"`
}

type sessionResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    publicUser `json:"user"`
}

type profileResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerRequest true "Registration"
// @Success 201 {object} sessionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		sess, err := svc.Register(r.Context(), RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Password: req.Password,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, sessionResponse{
			Message: "User created successfully",
			Token:   sess.Token,
			User: publicUser{
				ID:    sess.User.ID,
				Name:  sess.User.Name,
				Email: sess.User.Email,
				Phone: sess.User.Phone,
			},
		})
	}
}

// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Credentials"
// @Success 200 {object} sessionResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func loginHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		sess, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				m.AuthFailure("invalid_credentials")
			}
			httpjson.WriteError(w, r, err)
			return
		}

		joined := sess.User.CreatedAt
		httpjson.Write(w, http.StatusOK, sessionResponse{
			Message: "Login successful",
			Token:   sess.Token,
			User: publicUser{
				ID:       sess.User.ID,
				Name:     sess.User.Name,
				Email:    sess.User.Email,
				Phone:    sess.User.Phone,
				JoinDate: &joined,
			},
		})
	}
}

// @Summary Current user profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profileResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /user/profile [get]
func profileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		u, err := svc.Profile(r.Context(), claims.UserID)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		httpjson.Write(w, http.StatusOK, profileResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			CreatedAt: u.CreatedAt,
		})
	}
}
