package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"pick-your-pup/internal/platform/apperr"
	"pick-your-pup/internal/ports/auth"
)

var (
	ErrEmailTaken         = apperr.Conflict("User already exists")
	ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials")
	ErrNotFound           = apperr.NotFound("User not found")

	ErrNameRequired     = apperr.Validation("name is required")
	ErrEmailRequired    = apperr.Validation("email is required")
	ErrPhoneRequired    = apperr.Validation("phone is required")
	ErrPasswordRequired = apperr.Validation("password is required")
)

type Service struct {
	repo   Repository
	hasher PasswordHasher
	tokens auth.TokenIssuer
}

func NewService(repo Repository, hasher PasswordHasher, tokens auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Session es el resultado de register/login: token firmado + usuario.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	switch {
	case in.Name == "":
		return Session{}, ErrNameRequired
	case in.Email == "":
		return Session{}, ErrEmailRequired
	case in.Phone == "":
		return Session{}, ErrPhoneRequired
	case in.Password == "":
		return Session{}, ErrPasswordRequired
	}

	// Chequeo previo para el caso común; el unique de la tabla cubre la carrera.
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return Session{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Session{}, apperr.Internal(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}

	u := User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return Session{}, ErrEmailTaken
		}
		return Session{}, apperr.Internal(err)
	}

	return s.session(u)
}

// Login no distingue "email desconocido" de "password incorrecto".
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, apperr.Internal(err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	return s.session(u)
}

func (s *Service) Profile(ctx context.Context, userID int64) (User, error) {
	if userID <= 0 {
		return User{}, ErrNotFound
	}
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, apperr.Internal(err)
	}
	return u, nil
}

func (s *Service) session(u User) (Session, error) {
	tok, exp, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}
	return Session{Token: tok, ExpiresAt: exp, User: u}, nil
}
