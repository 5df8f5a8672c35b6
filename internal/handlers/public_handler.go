package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/botovelho/barbearia-api/internal/domain/schedule"
	"github.com/botovelho/barbearia-api/internal/httperr"
	"github.com/botovelho/barbearia-api/internal/httpresp"
	"github.com/botovelho/barbearia-api/internal/store"
	"github.com/botovelho/barbearia-api/internal/usecase/booking"
	"github.com/botovelho/barbearia-api/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	store           *store.Store
	getAvailability *booking.GetAvailability
	getDates        *booking.GetAvailableDates
	create          *booking.CreateAppointment
	cancel          *booking.CancelAppointment
}

func NewPublicHandler(
	st *store.Store,
	getAvailability *booking.GetAvailability,
	getDates *booking.GetAvailableDates,
	create *booking.CreateAppointment,
	cancel *booking.CancelAppointment,
) *PublicHandler {
	return &PublicHandler{
		store:           st,
		getAvailability: getAvailability,
		getDates:        getDates,
		create:          create,
		cancel:          cancel,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	BarberID    string `json:"barber_id"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
}

////////////////////////////////////////////////////////
// VITRINE
////////////////////////////////////////////////////////

// Business entrega tudo que a página pública precisa em uma chamada.
func (h *PublicHandler) Business(c *gin.Context) {
	doc, err := h.store.Load()
	if err != nil {
		httperr.Internal(c, "failed_to_load", "Erro ao carregar dados.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": doc.Business,
		"services": doc.Services,
		"barbers":  doc.Barbers,
		"about":    doc.About,
	})
}

////////////////////////////////////////////////////////
// DISPONIBILIDADE
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "date_required", "Data obrigatória.")
		return
	}
	barberID := c.Query("barberId")

	slots, err := h.getAvailability.Execute(c.Request.Context(), date, barberID)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_format") {
			httperr.BadRequest(c, "invalid_format", "Data inválida.")
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

func (h *PublicHandler) AvailableDates(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "14"))
	if err != nil {
		days = booking.DefaultWindowDays
	}

	dates, err := h.getDates.Execute(c.Request.Context(), days)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular datas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": dates})
}

////////////////////////////////////////////////////////
// AGENDAMENTOS
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		BarberID:    req.BarberID,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": ap.ID})
}

// ListAppointments é o autoatendimento do cliente: filtra por telefone
// (só dígitos) e/ou nome (contém, sem caixa).
func (h *PublicHandler) ListAppointments(c *gin.Context) {
	doc, err := h.store.Load()
	if err != nil {
		httperr.Internal(c, "failed_to_load", "Erro ao carregar agendamentos.")
		return
	}

	phone := validators.NormalizePhone(c.Query("phone"))
	name := strings.ToLower(strings.TrimSpace(c.Query("name")))

	list := doc.Appointments
	if phone != "" {
		filtered := list[:0:0]
		for _, a := range list {
			if validators.NormalizePhone(a.ClientPhone) == phone {
				filtered = append(filtered, a)
			}
		}
		list = filtered
	}
	if name != "" {
		filtered := list[:0:0]
		for _, a := range list {
			if strings.Contains(strings.ToLower(a.ClientName), name) {
				filtered = append(filtered, a)
			}
		}
		list = filtered
	}

	httpresp.List(c, list)
}

func (h *PublicHandler) CancelAppointment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		httperr.BadRequest(c, "id_required", "Identificador obrigatório.")
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "cancel_failed", "Erro ao cancelar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

////////////////////////////////////////////////////////
// ERROS DE NEGÓCIO → HTTP
////////////////////////////////////////////////////////

func mapBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "booking_failed", "Erro ao agendar.")
		return
	}

	switch code {
	case "invalid_format":
		httperr.BadRequest(c, code, "Data ou horário inválido.")
	case schedule.ReasonDateClosed,
		schedule.ReasonSlotUnavailable,
		schedule.ReasonNoCapacity,
		schedule.ReasonBarberUnavailable,
		schedule.ReasonBarberBusy:
		c.JSON(http.StatusConflict, gin.H{"ok": false, "reason": code})
	default:
		httperr.Internal(c, "booking_failed", "Erro ao agendar.")
	}
}
