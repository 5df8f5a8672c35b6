package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeScheduleFixesInvalidFields(t *testing.T) {
	got := SanitizeSchedule(ScheduleSettings{
		OpenTime:       "9h",
		CloseTime:      "25:00",
		SlotMinutes:    5,
		ClosedWeekdays: []int{0, 7, -1, 3},
		Breaks:         []BreakWindow{{Start: "meio-dia", End: "13:00"}},
	})

	assert.Equal(t, "09:00", got.OpenTime)
	assert.Equal(t, "19:00", got.CloseTime)
	assert.Equal(t, 30, got.SlotMinutes)
	assert.Equal(t, []int{0, 3}, got.ClosedWeekdays)
	assert.Equal(t, []BreakWindow{{Start: "12:00", End: "13:00"}}, got.Breaks)
}

func TestSanitizeScheduleKeepsValidInput(t *testing.T) {
	in := ScheduleSettings{
		OpenTime:       "08:00",
		CloseTime:      "18:00",
		SlotMinutes:    45,
		ClosedWeekdays: []int{0, 1},
		Breaks:         []BreakWindow{},
		BlockedDates:   []string{"2030-12-25"},
		BlockedSlots:   []BlockedSlot{{Date: "2030-01-08", Time: "10:00"}},
	}

	assert.Equal(t, in, SanitizeSchedule(in))
}

func TestSanitizeBarbersFillsBlanks(t *testing.T) {
	got := SanitizeBarbers([]Barber{
		{Name: "  "},
		{ID: "ze", Name: "Ze", PhotoURL: "fotos/ze.webp", BlockedWeekdays: []int{9, 2}},
	})

	assert.Equal(t, "barber-0", got[0].ID)
	assert.Equal(t, "Barbeiro", got[0].Role)
	assert.Equal(t, []int{}, got[0].BlockedWeekdays)

	assert.Equal(t, "/fotos/ze.webp", got[1].PhotoURL)
	assert.Equal(t, []int{2}, got[1].BlockedWeekdays)
}

func TestSanitizeBarbersNilRestoresDefaults(t *testing.T) {
	got := SanitizeBarbers(nil)
	assert.Equal(t, DefaultBarbers, got)
}

func TestSanitizeBusinessFallsBackPerField(t *testing.T) {
	got := SanitizeBusiness(BusinessInfo{Name: "Outra Barbearia"})

	assert.Equal(t, "Outra Barbearia", got.Name)
	assert.Equal(t, DefaultBusiness.Phone, got.Phone)
	assert.Equal(t, DefaultBusiness.LogoURL, got.LogoURL)
}

func TestSanitizeDocumentInitializesCollections(t *testing.T) {
	doc := &Document{}
	SanitizeDocument(doc)

	assert.NotNil(t, doc.Appointments)
	assert.NotNil(t, doc.AuditLog)
	assert.NotEmpty(t, doc.Services)
	assert.NotEmpty(t, doc.Barbers)
	assert.Equal(t, DefaultSchedule.OpenTime, doc.Schedule.OpenTime)
}
