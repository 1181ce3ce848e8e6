package contact

import "context"

type Repository interface {
	Save(ctx context.Context, m Message) error
}

// Forwarder entrega el mensaje a un operador (webhook, mail...). Best effort.
type Forwarder interface {
	Forward(ctx context.Context, m Message) error
}
