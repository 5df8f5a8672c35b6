package booking

import (
	"context"
	"time"

	"github.com/botovelho/barbearia-api/internal/audit"
	"github.com/botovelho/barbearia-api/internal/domain/schedule"
	"github.com/botovelho/barbearia-api/internal/models"
)

// DocumentStore é o contrato mínimo com a persistência: snapshot de
// leitura e escrita serializada do documento inteiro.
type DocumentStore interface {
	Load() (*models.Document, error)
	Update(fn func(doc *models.Document) error) error
}

// AvailabilityCache acelera só a leitura; nunca participa da decisão
// de gravação.
type AvailabilityCache interface {
	Get(ctx context.Context, date, barberID string) ([]schedule.Slot, bool)
	Set(ctx context.Context, date, barberID string, slots []schedule.Slot)
	Invalidate(ctx context.Context)
}

type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

// TimeProvider permite congelar o relógio nos testes.
type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }
