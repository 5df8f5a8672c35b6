package schedule

import (
	"time"

	"github.com/botovelho/barbearia-api/internal/models"
)

// ===============================
// Disponibilidade (leitura)
// ===============================

type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ComputeAvailability calcula, slot a slot, se ainda cabe um novo
// agendamento. É a visão de leitura: para entrada bem formada nunca
// erra, degrada para available=false. Quem decide de verdade na hora
// de gravar é CanBook.
//
// Três regimes:
//   - elenco vazio: capacidade 1 por slot;
//   - barbeiro específico: bloqueios + agenda dele;
//   - agregado ("sem preferência"): barbeiros livres menos reservas
//     sem dono — agendamento com barbeiro desconhecido ou removido do
//     elenco continua consumindo uma vaga genérica.
func ComputeAvailability(
	date string,
	s models.ScheduleSettings,
	appointments []models.Appointment,
	barbers []models.Barber,
	barberID string,
	now time.Time,
) []Slot {

	times := SlotTimes(date, s, now)
	slots := make([]Slot, 0, len(times))

	for _, timeOfDay := range times {
		booked := bookedAt(appointments, date, timeOfDay)

		if len(barbers) == 0 {
			slots = append(slots, Slot{Time: timeOfDay, Available: len(booked) == 0})
			continue
		}

		if hasPreference(barberID) {
			slots = append(slots, Slot{
				Time:      timeOfDay,
				Available: barberFree(barbers, barberID, date, timeOfDay, booked),
			})
			continue
		}

		slots = append(slots, Slot{
			Time:      timeOfDay,
			Available: freeCount(barbers, date, timeOfDay, booked) > 0,
		})
	}
	return slots
}

func bookedAt(appointments []models.Appointment, date, timeOfDay string) []models.Appointment {
	var out []models.Appointment
	for _, a := range appointments {
		if a.Date == date && a.Time == timeOfDay {
			out = append(out, a)
		}
	}
	return out
}

func barberFree(barbers []models.Barber, barberID, date, timeOfDay string, booked []models.Appointment) bool {
	target, ok := findBarber(barbers, barberID)
	if !ok {
		return false
	}
	if BarberBlocked(target, date, timeOfDay) {
		return false
	}
	for _, a := range booked {
		if a.BarberID == barberID {
			return false
		}
	}
	return true
}

// freeCount é a capacidade agregada restante do slot: barbeiros
// disponíveis e sem reserva própria, menos as reservas "sem dono"
// (sem preferência ou referência pendurada), com piso em zero.
func freeCount(barbers []models.Barber, date, timeOfDay string, booked []models.Appointment) int {
	bookedIDs := map[string]bool{}
	unknown := 0
	for _, a := range booked {
		if hasPreference(a.BarberID) {
			if _, ok := findBarber(barbers, a.BarberID); ok {
				bookedIDs[a.BarberID] = true
				continue
			}
		}
		unknown++
	}

	free := 0
	for _, b := range barbers {
		if BarberBlocked(b, date, timeOfDay) {
			continue
		}
		if bookedIDs[b.ID] {
			continue
		}
		free++
	}

	free -= unknown
	if free < 0 {
		free = 0
	}
	return free
}
