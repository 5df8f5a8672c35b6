package booking

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botovelho/barbearia-api/internal/audit"
	"github.com/botovelho/barbearia-api/internal/domain/schedule"
	"github.com/botovelho/barbearia-api/internal/httperr"
	"github.com/botovelho/barbearia-api/internal/models"
	"github.com/botovelho/barbearia-api/internal/store"
)

// ---------- dublês ----------

type nopCache struct{}

func (nopCache) Get(context.Context, string, string) ([]schedule.Slot, bool) { return nil, false }
func (nopCache) Set(context.Context, string, string, []schedule.Slot)        {}
func (nopCache) Invalidate(context.Context)                                  {}

type recordingAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAudit) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Action
	}
	return out
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// relógio fixo numa terça de manhã; openDate é a quarta seguinte
var (
	clock    = fixedClock{t: time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)}
	openDate = "2026-09-02"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "db.json"), "senha", zerolog.Nop())
	require.NoError(t, err)
	return st
}

func clearRoster(t *testing.T, st *store.Store) {
	t.Helper()
	require.NoError(t, st.Update(func(doc *models.Document) error {
		doc.Barbers = []models.Barber{}
		return nil
	}))
}

// ---------- create ----------

func TestCreateAppointment(t *testing.T) {
	st := newTestStore(t)
	auditor := &recordingAudit{}
	uc := NewCreateAppointment(st, nopCache{}, auditor)
	uc.clock = clock

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientName:  "Zé Pequeno",
		ClientPhone: "(69) 98888-7777",
		ServiceID:   "corte",
		BarberID:    "angelo",
		Date:        openDate,
		Time:        "09:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, "69988887777", ap.ClientPhone, "telefone só com dígitos")
	assert.Equal(t, "Angelo Henrique", ap.BarberName, "nome resolvido do elenco")

	doc, err := st.Load()
	require.NoError(t, err)
	require.Len(t, doc.Appointments, 1)
	assert.Contains(t, auditor.actions(), "appointment_created")
}

func TestCreateAppointmentRejectsBusySlot(t *testing.T) {
	st := newTestStore(t)
	clearRoster(t, st)
	uc := NewCreateAppointment(st, nopCache{}, &recordingAudit{})
	uc.clock = clock

	in := CreateAppointmentInput{
		ClientName: "Primeiro", ClientPhone: "1", Date: openDate, Time: "09:00",
	}
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.ClientName = "Segundo"
	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, schedule.ReasonNoCapacity))

	doc, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Appointments, 1, "recusa não pode gravar nada")
}

func TestCreateAppointmentRejectsMalformedInput(t *testing.T) {
	st := newTestStore(t)
	uc := NewCreateAppointment(st, nopCache{}, &recordingAudit{})
	uc.clock = clock

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{Date: "02/09/2026", Time: "09:00"})
	assert.True(t, httperr.IsBusiness(err, "invalid_format"))

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{Date: openDate, Time: "9h30"})
	assert.True(t, httperr.IsBusiness(err, "invalid_format"))
}

// Duas requisições simultâneas para o mesmo slot: exatamente uma entra.
// É o lock do Update fazendo o canBook rodar sempre em snapshot fresco.
func TestConcurrentBookingOnlyOneWins(t *testing.T) {
	st := newTestStore(t)
	clearRoster(t, st)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			uc := NewCreateAppointment(st, nopCache{}, &recordingAudit{})
			uc.clock = clock
			_, err := uc.Execute(context.Background(), CreateAppointmentInput{
				ClientName:  "Cliente",
				ClientPhone: "69999999999",
				Date:        openDate,
				Time:        "10:00",
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	succeeded, rejected := 0, 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, httperr.IsBusiness(err, schedule.ReasonNoCapacity))
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	doc, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Appointments, 1)
}

// ---------- cancel ----------

func TestCancelAppointment(t *testing.T) {
	st := newTestStore(t)
	auditor := &recordingAudit{}
	create := NewCreateAppointment(st, nopCache{}, auditor)
	create.clock = clock

	ap, err := create.Execute(context.Background(), CreateAppointmentInput{
		ClientName: "Zé", ClientPhone: "1", Date: openDate, Time: "09:00",
	})
	require.NoError(t, err)

	cancel := NewCancelAppointment(st, nopCache{}, auditor)
	require.NoError(t, cancel.Execute(context.Background(), ap.ID))

	doc, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Appointments)
	assert.Contains(t, auditor.actions(), "appointment_cancelled")

	err = cancel.Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

// ---------- availability ----------

func TestGetAvailabilityReflectsBookings(t *testing.T) {
	st := newTestStore(t)
	clearRoster(t, st)

	create := NewCreateAppointment(st, nopCache{}, &recordingAudit{})
	create.clock = clock
	_, err := create.Execute(context.Background(), CreateAppointmentInput{
		ClientName: "Zé", ClientPhone: "1", Date: openDate, Time: "09:00",
	})
	require.NoError(t, err)

	get := NewGetAvailability(st, nopCache{})
	get.clock = clock
	slots, err := get.Execute(context.Background(), openDate, "")
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		if s.Time == "09:00" {
			assert.False(t, s.Available)
		}
		if s.Time == "09:30" {
			assert.True(t, s.Available)
		}
	}
}

func TestGetAvailabilityRejectsBadDate(t *testing.T) {
	st := newTestStore(t)
	get := NewGetAvailability(st, nopCache{})
	get.clock = clock

	_, err := get.Execute(context.Background(), "amanhã", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_format"))
}

// ---------- dates ----------

func TestGetAvailableDatesWindow(t *testing.T) {
	st := newTestStore(t)
	uc := NewGetAvailableDates(st)
	uc.clock = clock

	dates, err := uc.Execute(context.Background(), 0) // 0 → padrão 14
	require.NoError(t, err)
	assert.NotEmpty(t, dates)
	assert.LessOrEqual(t, len(dates), DefaultWindowDays)

	// domingos (fechados no padrão) nunca aparecem
	for _, d := range dates {
		parsed, err := time.Parse(schedule.DateLayout, d)
		require.NoError(t, err)
		assert.NotEqual(t, time.Sunday, parsed.Weekday())
	}
}

func TestGetAvailableDatesCapsAtSixty(t *testing.T) {
	st := newTestStore(t)
	uc := NewGetAvailableDates(st)
	uc.clock = clock

	dates, err := uc.Execute(context.Background(), 500)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(dates), MaxWindowDays)
}
