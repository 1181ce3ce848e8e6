package contact

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pick-your-pup/internal/platform/apperr"
	"pick-your-pup/internal/platform/logger"
)

type Service struct {
	repo Repository
	fwd  Forwarder
	log  logger.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewService: fwd puede ser nil (sin reenvío).
func NewService(repo Repository, fwd Forwarder, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		fwd:   fwd,
		log:   log,
		now:   time.Now,
		newID: uuid.New,
	}
}

type Input struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Submit acepta cualquier entrada, la persiste y la loguea. El reenvío falla en silencio
// (sólo queda en el log); un error de persistencia sí se devuelve.
func (s *Service) Submit(ctx context.Context, in Input) (Message, error) {
	m := Message{
		ID:        s.newID(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Subject:   strings.TrimSpace(in.Subject),
		Body:      in.Message,
		CreatedAt: s.now().UTC(),
	}

	log := logger.FromContext(ctx, s.log)

	if err := s.repo.Save(ctx, m); err != nil {
		return Message{}, apperr.Internal(err)
	}

	log.Info("contact form submission", map[string]any{
		"contact_id": m.ID.String(),
		"name":       m.Name,
		"email":      m.Email,
		"phone":      m.Phone,
		"subject":    m.Subject,
	})

	if s.fwd != nil {
		if err := s.fwd.Forward(ctx, m); err != nil {
			log.Warn("contact forward failed", map[string]any{
				"contact_id": m.ID.String(),
				"err":        err,
			})
		}
	}
	return m, nil
}
