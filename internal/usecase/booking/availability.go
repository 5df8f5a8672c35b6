package booking

import (
	"context"

	"github.com/botovelho/barbearia-api/internal/domain/schedule"
)

type GetAvailability struct {
	store DocumentStore
	cache AvailabilityCache
	clock TimeProvider
}

func NewGetAvailability(store DocumentStore, cache AvailabilityCache) *GetAvailability {
	return &GetAvailability{store: store, cache: cache, clock: RealTimeProvider{}}
}

// Execute devolve a grade do dia com o veredito por slot. Passa pelo
// cache de leitura; em miss, calcula do documento e repovoa.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	barberID string,
) ([]schedule.Slot, error) {

	if _, err := schedule.ParseDate(date); err != nil {
		return nil, err
	}

	if slots, ok := uc.cache.Get(ctx, date, barberID); ok {
		return slots, nil
	}

	doc, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	slots := schedule.ComputeAvailability(
		date,
		doc.Schedule,
		doc.Appointments,
		doc.Barbers,
		barberID,
		uc.clock.Now(),
	)

	uc.cache.Set(ctx, date, barberID, slots)
	return slots, nil
}
