package schedule

import (
	"time"

	"github.com/botovelho/barbearia-api/internal/models"
)

// ===============================
// Fechamento e geração de slots
// ===============================

// IsDateClosed decide se o dia inteiro está indisponível: dia da semana
// fechado ou data bloqueada pela casa. Granularidade de data apenas —
// não olha blocked_slots nem barbeiros.
func IsDateClosed(date string, s models.ScheduleSettings) bool {
	weekday := weekdayOf(date)
	for _, d := range s.ClosedWeekdays {
		if d == weekday {
			return true
		}
	}
	for _, d := range s.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}

func inBreak(minute int, breaks []models.BreakWindow) bool {
	for _, b := range breaks {
		start, err := TimeToMinutes(b.Start)
		if err != nil {
			continue
		}
		end, err := TimeToMinutes(b.End)
		if err != nil {
			continue
		}
		// intervalo meio-aberto: pausa 12:00–13:00 derruba o slot
		// de 12:00 mas libera o de 13:00
		if minute >= start && minute < end {
			return true
		}
	}
	return false
}

func slotBlocked(blocked []models.BlockedSlot, date, timeOfDay string) bool {
	for _, s := range blocked {
		if s.Date == date && s.Time == timeOfDay {
			return true
		}
	}
	return false
}

// SlotTimes gera os horários agendáveis do dia em ordem crescente,
// antes de considerar barbeiros e agendamentos existentes.
//
// Regras: dia fechado ou no passado → vazio; só entra slot cuja duração
// inteira cabe antes do fechamento; pausas são meio-abertas; para hoje
// só entram horários estritamente no futuro; blocked_slots da casa saem.
func SlotTimes(date string, s models.ScheduleSettings, now time.Time) []string {
	if IsDateClosed(date, s) {
		return []string{}
	}
	if _, err := ParseDate(date); err != nil {
		return []string{}
	}

	// datas ISO comparam em ordem lexicográfica
	today := now.Format(DateLayout)
	if date < today {
		return []string{}
	}

	openMin, err := TimeToMinutes(s.OpenTime)
	if err != nil {
		return []string{}
	}
	closeMin, err := TimeToMinutes(s.CloseTime)
	if err != nil {
		return []string{}
	}
	step := s.SlotMinutes
	if step <= 0 {
		return []string{}
	}

	isToday := date == today
	nowMinutes := now.Hour()*60 + now.Minute()

	slots := []string{}
	for t := openMin; t+step <= closeMin; t += step {
		if inBreak(t, s.Breaks) {
			continue
		}
		if isToday && t <= nowMinutes {
			continue
		}
		timeOfDay := MinutesToTime(t)
		if slotBlocked(s.BlockedSlots, date, timeOfDay) {
			continue
		}
		slots = append(slots, timeOfDay)
	}
	return slots
}
