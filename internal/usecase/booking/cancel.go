package booking

import (
	"context"

	"github.com/botovelho/barbearia-api/internal/audit"
	"github.com/botovelho/barbearia-api/internal/httperr"
	"github.com/botovelho/barbearia-api/internal/models"
)

type CancelAppointment struct {
	store DocumentStore
	cache AvailabilityCache
	audit AuditDispatcher
}

func NewCancelAppointment(
	store DocumentStore,
	cache AvailabilityCache,
	auditor AuditDispatcher,
) *CancelAppointment {
	return &CancelAppointment{store: store, cache: cache, audit: auditor}
}

// Execute remove o agendamento do documento. Cancelamento é a única
// mutação permitida depois da criação.
func (uc *CancelAppointment) Execute(ctx context.Context, id string) error {
	err := uc.store.Update(func(doc *models.Document) error {
		kept := make([]models.Appointment, 0, len(doc.Appointments))
		found := false
		for _, a := range doc.Appointments {
			if a.ID == id {
				found = true
				continue
			}
			kept = append(kept, a)
		}
		if !found {
			return httperr.ErrBusiness("appointment_not_found")
		}
		doc.Appointments = kept
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: id,
		Actor:    "public",
	})

	return nil
}
