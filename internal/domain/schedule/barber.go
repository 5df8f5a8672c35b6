package schedule

import "github.com/botovelho/barbearia-api/internal/models"

// NoPreference é o sentinela de "qualquer barbeiro" usado pelo fluxo
// público quando o cliente pula a escolha do profissional.
const NoPreference = "none"

// BarberBlocked verifica os bloqueios próprios do barbeiro: dia da
// semana recorrente, data inteira ou horário pontual. Com timeOfDay
// vazio só valem as duas primeiras checagens (consulta de dia inteiro).
// Os bloqueios da casa são disjuntos e somados em outro lugar.
func BarberBlocked(b models.Barber, date, timeOfDay string) bool {
	weekday := weekdayOf(date)
	for _, d := range b.BlockedWeekdays {
		if d == weekday {
			return true
		}
	}
	for _, d := range b.BlockedDates {
		if d == date {
			return true
		}
	}
	if timeOfDay != "" {
		return slotBlocked(b.BlockedSlots, date, timeOfDay)
	}
	return false
}

func findBarber(barbers []models.Barber, id string) (models.Barber, bool) {
	for _, b := range barbers {
		if b.ID == id {
			return b, true
		}
	}
	return models.Barber{}, false
}

func hasPreference(barberID string) bool {
	return barberID != "" && barberID != NoPreference
}
