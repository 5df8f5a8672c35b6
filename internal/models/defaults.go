package models

// ===============================
// Seed inicial do documento
// ===============================

var DefaultBusiness = BusinessInfo{
	Name:        "Boto Velho Barbearia",
	Address:     "Avenida Alvaro Maia, 2947, Porto Velho",
	Phone:       "(69) 99999-9999",
	Instagram:   "@botovelhobarbearia",
	Description: "Venha e nos faca uma visita e descubra um novo conceito, um novo corte de cabelo, uma nova barba.",
	LogoURL:     "/logo.png",
	Hours:       "Seg - Sab, 09:00 - 19:00",
}

var DefaultServices = []Service{
	{ID: "corte", Name: "Corte", Duration: "1hr", Price: 60},
	{ID: "barba", Name: "Barba", Duration: "1hr", Price: 60},
	{ID: "corte-barba", Name: "Corte + Barba", Duration: "1hr", Price: 100},
	{ID: "selagem", Name: "Selagem", Duration: "1hr", Price: 100},
	{ID: "relaxamento", Name: "Relaxamento Capilar", Duration: "1hr 30min", Price: 150},
	{ID: "sobrancelha", Name: "Sobrancelha", Duration: "30min", Price: 20},
	{ID: "corte-barba-selagem", Name: "Corte + Barba + Selagem", Duration: "1hr", Price: 200},
	{ID: "corte-selagem", Name: "Corte + Selagem", Duration: "1hr", Price: 150},
	{ID: "penteado", Name: "Penteado", Duration: "40min", Price: 40},
}

var DefaultBarbers = []Barber{
	{ID: "angelo", Name: "Angelo Henrique", Role: "Barbeiro", Avatar: "AH"},
	{ID: "marcos", Name: "Marcos Silva", Role: "Barbeiro", Avatar: "MS"},
	{ID: "joao", Name: "Joao Pedro", Role: "Barbeiro", Avatar: "JP"},
}

var DefaultAbout = []AboutTag{
	{ID: "ambiente", Tag: "Ambiente", Title: "Um espaco feito pra voce", Description: "Cadeiras classicas, musica boa e aquele cafe."},
	{ID: "tradicao", Tag: "Tradicao", Title: "Barbearia raiz", Description: "Navalha, toalha quente e conversa em dia."},
}

var DefaultSchedule = ScheduleSettings{
	OpenTime:       "09:00",
	CloseTime:      "19:00",
	SlotMinutes:    30,
	ClosedWeekdays: []int{0}, // domingo
	Breaks:         []BreakWindow{{Start: "12:00", End: "13:00"}},
	BlockedDates:   []string{},
	BlockedSlots:   []BlockedSlot{},
}
