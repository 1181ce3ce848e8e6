package contact

import (
	"context"
	"sync"
	"time"

	"pick-your-pup/internal/platform/logger"
)

// AsyncForwarder despacha el reenvío en background: la respuesta al cliente no espera
// al webhook y el envío sobrevive a la cancelación del request.
type AsyncForwarder struct {
	next    Forwarder
	timeout time.Duration
	log     logger.Logger

	wg sync.WaitGroup
}

func NewAsyncForwarder(next Forwarder, timeout time.Duration, log logger.Logger) *AsyncForwarder {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AsyncForwarder{next: next, timeout: timeout, log: log}
}

// Forward nunca falla; los errores del envío quedan en el log.
func (a *AsyncForwarder) Forward(ctx context.Context, m Message) error {
	// conserva request id y logger del request, no su cancelación
	bg := context.WithoutCancel(ctx)
	log := logger.FromContext(ctx, a.log)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(bg, a.timeout)
		defer cancel()
		if err := a.next.Forward(ctx, m); err != nil {
			log.Warn("contact forward failed", map[string]any{
				"contact_id": m.ID.String(),
				"err":        err,
			})
		}
	}()
	return nil
}

// Wait espera los envíos pendientes o hasta que ctx termine.
func (a *AsyncForwarder) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
