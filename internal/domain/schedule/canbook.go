package schedule

import (
	"time"

	"github.com/botovelho/barbearia-api/internal/models"
)

// ===============================
// Validação de reserva (escrita)
// ===============================

// Códigos de recusa — contrato estável com os clientes da API.
const (
	ReasonOK                = "ok"
	ReasonDateClosed        = "date_closed"
	ReasonSlotUnavailable   = "slot_unavailable"
	ReasonNoCapacity        = "no_capacity"
	ReasonBarberUnavailable = "barber_unavailable"
	ReasonBarberBusy        = "barber_busy"
)

type Decision struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason"`
}

func rejected(reason string) Decision {
	return Decision{OK: false, Reason: reason}
}

// CanBook é o único portão antes de persistir um agendamento. Refaz as
// mesmas regras de ComputeAvailability para um slot exato, devolvendo
// o motivo preciso da recusa em vez de um booleano. Precisa rodar sobre
// o snapshot mais fresco possível, imediatamente antes da escrita.
func CanBook(
	date string,
	timeOfDay string,
	s models.ScheduleSettings,
	appointments []models.Appointment,
	barbers []models.Barber,
	barberID string,
	now time.Time,
) Decision {

	if IsDateClosed(date, s) {
		return rejected(ReasonDateClosed)
	}

	// cobre pausa, blocked_slot, horário passado e fora do expediente
	// de uma vez só
	inGrid := false
	for _, t := range SlotTimes(date, s, now) {
		if t == timeOfDay {
			inGrid = true
			break
		}
	}
	if !inGrid {
		return rejected(ReasonSlotUnavailable)
	}

	booked := bookedAt(appointments, date, timeOfDay)

	if len(barbers) == 0 {
		if len(booked) > 0 {
			return rejected(ReasonNoCapacity)
		}
		return Decision{OK: true, Reason: ReasonOK}
	}

	if hasPreference(barberID) {
		target, ok := findBarber(barbers, barberID)
		if !ok {
			return rejected(ReasonBarberUnavailable)
		}
		if BarberBlocked(target, date, timeOfDay) {
			return rejected(ReasonBarberUnavailable)
		}
		for _, a := range booked {
			if a.BarberID == barberID {
				return rejected(ReasonBarberBusy)
			}
		}
		return Decision{OK: true, Reason: ReasonOK}
	}

	if freeCount(barbers, date, timeOfDay, booked) <= 0 {
		return rejected(ReasonNoCapacity)
	}

	return Decision{OK: true, Reason: ReasonOK}
}
