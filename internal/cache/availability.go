package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/botovelho/barbearia-api/internal/domain/schedule"
)

// ===============================
// Cache de disponibilidade
// ===============================
//
// Cache de leitura apenas: acelera o GET de disponibilidade e nunca é
// fonte de verdade — o canBook sempre roda contra o documento fresco.
// A invalidação é por bump de versão: cada escrita incrementa um
// contador e abandona as chaves antigas, que expiram sozinhas pelo TTL.

type Availability struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func New(addr, password string, ttl time.Duration, logger zerolog.Logger) *Availability {
	if addr == "" {
		return &Availability{log: logger}
	}
	return &Availability{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		ttl: ttl,
		log: logger,
	}
}

// Enabled indica se existe um Redis configurado; sem ele o cache vira
// pass-through e todas as chamadas são no-op.
func (c *Availability) Enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *Availability) key(ctx context.Context, date, barberID string) string {
	ver, err := c.rdb.Get(ctx, "availability:ver").Result()
	if err != nil {
		ver = "0"
	}
	if barberID == "" {
		barberID = schedule.NoPreference
	}
	return fmt.Sprintf("availability:%s:%s:%s", ver, date, barberID)
}

func (c *Availability) Get(ctx context.Context, date, barberID string) ([]schedule.Slot, bool) {
	if !c.Enabled() {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(ctx, date, barberID)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Availability) Set(ctx context.Context, date, barberID string, slots []schedule.Slot) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(ctx, date, barberID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache set falhou")
	}
}

// Invalidate abandona todas as entradas de disponibilidade. Chamado em
// toda escrita de agendamento ou de configuração.
func (c *Availability) Invalidate(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Incr(ctx, "availability:ver").Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache invalidate falhou")
	}
}
