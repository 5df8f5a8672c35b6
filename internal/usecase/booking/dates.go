package booking

import (
	"context"

	"github.com/botovelho/barbearia-api/internal/domain/schedule"
)

const (
	DefaultWindowDays = 14
	MaxWindowDays     = 60
)

type GetAvailableDates struct {
	store DocumentStore
	clock TimeProvider
}

func NewGetAvailableDates(store DocumentStore) *GetAvailableDates {
	return &GetAvailableDates{store: store, clock: RealTimeProvider{}}
}

// Execute varre uma janela de dias corridos a partir de hoje e devolve
// as datas com pelo menos um slot livre. days fora da faixa cai no
// padrão de 14; o teto é 60.
func (uc *GetAvailableDates) Execute(ctx context.Context, days int) ([]string, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	if days > MaxWindowDays {
		days = MaxWindowDays
	}

	doc, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	dates := []string{}

	for offset := 0; offset < days; offset++ {
		date := now.AddDate(0, 0, offset).Format(schedule.DateLayout)
		if schedule.IsDateClosed(date, doc.Schedule) {
			continue
		}

		slots := schedule.ComputeAvailability(
			date,
			doc.Schedule,
			doc.Appointments,
			doc.Barbers,
			"",
			now,
		)
		for _, s := range slots {
			if s.Available {
				dates = append(dates, date)
				break
			}
		}
	}

	return dates, nil
}
