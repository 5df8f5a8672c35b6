package models

import "time"

// ===============================
// Documento persistido (db.json)
// ===============================

// Document é o estado completo da barbearia, gravado como um único
// arquivo JSON. O core nunca escreve direto: tudo passa pela store.
type Document struct {
	Admin        AdminUser          `json:"admin"`
	Business     BusinessInfo       `json:"business"`
	Services     []Service          `json:"services"`
	Barbers      []Barber           `json:"barbers"`
	About        []AboutTag         `json:"about"`
	Schedule     ScheduleSettings   `json:"schedule"`
	Appointments []Appointment      `json:"appointments"`
	AuditLog     []AuditEntry       `json:"audit_log"`
}

type AdminUser struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	CreatedAt    string `json:"created_at"`
}

type BusinessInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Instagram   string `json:"instagram"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Hours       string `json:"hours"`
}

type Service struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration string  `json:"duration"`
	Price    float64 `json:"price"`
}

type AboutTag struct {
	ID          string `json:"id"`
	Tag         string `json:"tag"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
}

// ===============================
// Agenda
// ===============================

// BreakWindow é um intervalo [start, end) dentro do expediente.
type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BlockedSlot marca um horário pontual como indisponível.
type BlockedSlot struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM
}

type ScheduleSettings struct {
	OpenTime       string        `json:"open_time"`
	CloseTime      string        `json:"close_time"`
	SlotMinutes    int           `json:"slot_minutes"`
	ClosedWeekdays []int         `json:"closed_weekdays"` // 0 = domingo
	Breaks         []BreakWindow `json:"breaks"`
	BlockedDates   []string      `json:"blocked_dates"`
	BlockedSlots   []BlockedSlot `json:"blocked_slots"`
}

// ===============================
// Barbeiro
// ===============================

type Barber struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	PhotoURL string `json:"photo_url"`

	// Bloqueios próprios do barbeiro, somados à agenda da casa.
	BlockedWeekdays []int         `json:"blocked_weekdays"`
	BlockedDates    []string      `json:"blocked_dates"`
	BlockedSlots    []BlockedSlot `json:"blocked_slots"`
}

// ===============================
// Agendamento
// ===============================

// Appointment nunca é atualizado depois de criado: só entra no
// documento via canBook e sai por cancelamento.
//
// BarberID pode ser vazio/"none" (sem preferência) ou referenciar um
// barbeiro que já saiu do elenco; esse último caso continua ocupando
// capacidade genérica do slot.
type Appointment struct {
	ID          string `json:"id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ServiceID   string `json:"service_id"`
	BarberID    string `json:"barber_id"`
	BarberName  string `json:"barber_name"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	CreatedAt   string `json:"created_at"`
}

// ===============================
// Auditoria
// ===============================

type AuditEntry struct {
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Actor     string    `json:"actor"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}
