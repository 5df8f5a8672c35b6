package schedule

import (
	"fmt"
	"time"

	"github.com/botovelho/barbearia-api/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ErrInvalidFormat cobre data ou hora fora do formato do contrato.
// Entrada malformada é erro do chamador, nunca é coagida em silêncio.
var ErrInvalidFormat = httperr.ErrBusiness("invalid_format")

// TimeToMinutes converte "HH:MM" em minutos desde a meia-noite (0–1439).
func TimeToMinutes(value string) (int, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", value, ErrInvalidFormat)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesToTime é o inverso de TimeToMinutes:
// MinutesToTime(TimeToMinutes(t)) == t para todo t válido.
func MinutesToTime(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ParseDate valida e converte "YYYY-MM-DD".
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, ErrInvalidFormat)
	}
	return d, nil
}

// weekdayOf assume data já validada; em caso de lixo devolve -1,
// que nunca casa com nenhum bloqueio de dia da semana.
func weekdayOf(date string) int {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return -1
	}
	return int(d.Weekday())
}
