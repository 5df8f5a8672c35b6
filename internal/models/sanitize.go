package models

import (
	"fmt"
	"regexp"
	"strings"
)

// ===============================
// Normalização do documento
// ===============================
//
// O arquivo db.json pode ter sido editado à mão ou gravado por versões
// antigas. Toda leitura e toda escrita de admin passam por aqui, então
// o resto do código pode confiar no formato dos campos.

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

func normalizeTime(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if !timeRe.MatchString(trimmed) {
		return fallback
	}
	return trimmed
}

func normalizeWeekdays(days []int) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			out = append(out, d)
		}
	}
	return out
}

func normalizePathOrURL(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") ||
		strings.HasPrefix(trimmed, "https://") ||
		strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	return "/" + trimmed
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

func SanitizeBusiness(in BusinessInfo) BusinessInfo {
	return BusinessInfo{
		Name:        fallback(in.Name, DefaultBusiness.Name),
		Address:     fallback(in.Address, DefaultBusiness.Address),
		Phone:       fallback(in.Phone, DefaultBusiness.Phone),
		Instagram:   fallback(in.Instagram, DefaultBusiness.Instagram),
		Description: fallback(in.Description, DefaultBusiness.Description),
		LogoURL:     fallback(normalizePathOrURL(in.LogoURL), DefaultBusiness.LogoURL),
		Hours:       fallback(in.Hours, DefaultBusiness.Hours),
	}
}

func SanitizeServices(list []Service) []Service {
	if list == nil {
		return append([]Service(nil), DefaultServices...)
	}
	out := make([]Service, len(list))
	for i, item := range list {
		out[i] = Service{
			ID:       fallback(item.ID, fmt.Sprintf("service-%d", i)),
			Name:     fallback(item.Name, "Servico"),
			Duration: fallback(item.Duration, "1hr"),
			Price:    item.Price,
		}
	}
	return out
}

func SanitizeBarbers(list []Barber) []Barber {
	if list == nil {
		return append([]Barber(nil), DefaultBarbers...)
	}
	out := make([]Barber, len(list))
	for i, item := range list {
		out[i] = Barber{
			ID:              fallback(item.ID, fmt.Sprintf("barber-%d", i)),
			Name:            fallback(item.Name, "Barbeiro"),
			Role:            fallback(item.Role, "Barbeiro"),
			Avatar:          item.Avatar,
			PhotoURL:        normalizePathOrURL(item.PhotoURL),
			BlockedWeekdays: normalizeWeekdays(item.BlockedWeekdays),
			BlockedDates:    sanitizeDates(item.BlockedDates),
			BlockedSlots:    sanitizeBlockedSlots(item.BlockedSlots),
		}
	}
	return out
}

func SanitizeAbout(list []AboutTag) []AboutTag {
	if list == nil {
		return append([]AboutTag(nil), DefaultAbout...)
	}
	out := make([]AboutTag, len(list))
	for i, item := range list {
		out[i] = AboutTag{
			ID:          fallback(item.ID, fmt.Sprintf("about-%d", i)),
			Tag:         fallback(item.Tag, "Tema"),
			Title:       item.Title,
			Description: item.Description,
			PhotoURL:    normalizePathOrURL(item.PhotoURL),
		}
	}
	return out
}

func sanitizeDates(list []string) []string {
	if list == nil {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, d := range list {
		if trimmed := strings.TrimSpace(d); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func sanitizeBlockedSlots(list []BlockedSlot) []BlockedSlot {
	if list == nil {
		return []BlockedSlot{}
	}
	out := make([]BlockedSlot, 0, len(list))
	for _, s := range list {
		date := strings.TrimSpace(s.Date)
		if date == "" {
			continue
		}
		out = append(out, BlockedSlot{
			Date: date,
			Time: normalizeTime(s.Time, "09:00"),
		})
	}
	return out
}

func SanitizeSchedule(in ScheduleSettings) ScheduleSettings {
	slotMinutes := in.SlotMinutes
	if slotMinutes < 10 || slotMinutes > 120 {
		slotMinutes = DefaultSchedule.SlotMinutes
	}

	breaks := in.Breaks
	if breaks == nil {
		breaks = append([]BreakWindow(nil), DefaultSchedule.Breaks...)
	}
	normBreaks := make([]BreakWindow, len(breaks))
	for i, b := range breaks {
		normBreaks[i] = BreakWindow{
			Start: normalizeTime(b.Start, "12:00"),
			End:   normalizeTime(b.End, "13:00"),
		}
	}

	closed := in.ClosedWeekdays
	if closed == nil {
		closed = append([]int(nil), DefaultSchedule.ClosedWeekdays...)
	}

	return ScheduleSettings{
		OpenTime:       normalizeTime(in.OpenTime, DefaultSchedule.OpenTime),
		CloseTime:      normalizeTime(in.CloseTime, DefaultSchedule.CloseTime),
		SlotMinutes:    slotMinutes,
		ClosedWeekdays: normalizeWeekdays(closed),
		Breaks:         normBreaks,
		BlockedDates:   sanitizeDates(in.BlockedDates),
		BlockedSlots:   sanitizeBlockedSlots(in.BlockedSlots),
	}
}

// SanitizeDocument normaliza todas as seções de uma vez. Appointments e
// audit_log passam direto: são gravados somente pelo próprio servidor.
func SanitizeDocument(doc *Document) {
	doc.Business = SanitizeBusiness(doc.Business)
	doc.Services = SanitizeServices(doc.Services)
	doc.Barbers = SanitizeBarbers(doc.Barbers)
	doc.About = SanitizeAbout(doc.About)
	doc.Schedule = SanitizeSchedule(doc.Schedule)
	if doc.Appointments == nil {
		doc.Appointments = []Appointment{}
	}
	if doc.AuditLog == nil {
		doc.AuditLog = []AuditEntry{}
	}
}
