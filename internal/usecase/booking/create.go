package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/botovelho/barbearia-api/internal/audit"
	"github.com/botovelho/barbearia-api/internal/domain/schedule"
	"github.com/botovelho/barbearia-api/internal/httperr"
	"github.com/botovelho/barbearia-api/internal/models"
	"github.com/botovelho/barbearia-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string
	ServiceID   string
	BarberID    string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store DocumentStore
	cache AvailabilityCache
	audit AuditDispatcher
	clock TimeProvider
}

func NewCreateAppointment(
	store DocumentStore,
	cache AvailabilityCache,
	auditor AuditDispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		store: store,
		cache: cache,
		audit: auditor,
		clock: RealTimeProvider{},
	}
}

// Execute valida e grava o agendamento dentro de um único Update: o
// canBook roda contra o snapshot fresco sob o lock de escritor único,
// então duas requisições simultâneas para o mesmo slot nunca passam
// as duas.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := schedule.ParseDate(in.Date); err != nil {
		return nil, err
	}
	if _, err := schedule.TimeToMinutes(in.Time); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ID:          uuid.NewString(),
		ClientName:  in.ClientName,
		ClientPhone: validators.NormalizePhone(in.ClientPhone),
		ServiceID:   in.ServiceID,
		BarberID:    in.BarberID,
		Date:        in.Date,
		Time:        in.Time,
		CreatedAt:   uc.clock.Now().UTC().Format(time.RFC3339),
	}

	now := uc.clock.Now()

	err := uc.store.Update(func(doc *models.Document) error {
		check := schedule.CanBook(
			in.Date,
			in.Time,
			doc.Schedule,
			doc.Appointments,
			doc.Barbers,
			in.BarberID,
			now,
		)
		if !check.OK {
			return httperr.ErrBusiness(check.Reason)
		}

		for _, b := range doc.Barbers {
			if b.ID == in.BarberID {
				ap.BarberName = b.Name
				break
			}
		}

		doc.Appointments = append(doc.Appointments, *ap)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Actor:    "public",
	})

	return ap, nil
}
