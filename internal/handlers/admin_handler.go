package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/botovelho/barbearia-api/internal/audit"
	"github.com/botovelho/barbearia-api/internal/httperr"
	"github.com/botovelho/barbearia-api/internal/httpresp"
	"github.com/botovelho/barbearia-api/internal/models"
	"github.com/botovelho/barbearia-api/internal/store"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// AvailabilityInvalidator é o pedaço do cache que o admin precisa:
// toda escrita de configuração derruba a disponibilidade cacheada.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context)
}

type AdminHandler struct {
	store *store.Store
	cache AvailabilityInvalidator
	audit *audit.Dispatcher
}

func NewAdminHandler(st *store.Store, cache AvailabilityInvalidator, dispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{store: st, cache: cache, audit: dispatcher}
}

func (h *AdminHandler) load(c *gin.Context) (*models.Document, bool) {
	doc, err := h.store.Load()
	if err != nil {
		httperr.Internal(c, "failed_to_load", "Erro ao carregar dados.")
		return nil, false
	}
	return doc, true
}

// replace aplica uma substituição integral de seção (semântica PUT),
// audita e invalida o cache.
func (h *AdminHandler) replace(c *gin.Context, entity string, mutate func(doc *models.Document)) {
	if err := h.store.Update(func(doc *models.Document) error {
		mutate(doc)
		return nil
	}); err != nil {
		httperr.Internal(c, "failed_to_save", "Erro ao gravar.")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	h.audit.Dispatch(audit.Event{
		Action: entity + "_updated",
		Entity: entity,
		Actor:  "admin",
	})

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

////////////////////////////////////////////////////////
// AGENDA
////////////////////////////////////////////////////////

func (h *AdminHandler) GetSchedule(c *gin.Context) {
	doc, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc.Schedule)
}

func (h *AdminHandler) UpdateSchedule(c *gin.Context) {
	var req models.ScheduleSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	h.replace(c, "schedule", func(doc *models.Document) {
		doc.Schedule = models.SanitizeSchedule(req)
	})
}

////////////////////////////////////////////////////////
// ELENCO
////////////////////////////////////////////////////////

func (h *AdminHandler) GetBarbers(c *gin.Context) {
	doc, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc.Barbers)
}

func (h *AdminHandler) UpdateBarbers(c *gin.Context) {
	var req []models.Barber
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req == nil {
		req = []models.Barber{}
	}
	h.replace(c, "barbers", func(doc *models.Document) {
		doc.Barbers = models.SanitizeBarbers(req)
	})
}

////////////////////////////////////////////////////////
// CONTEÚDO DA VITRINE
////////////////////////////////////////////////////////

func (h *AdminHandler) GetBusiness(c *gin.Context) {
	doc, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc.Business)
}

func (h *AdminHandler) UpdateBusiness(c *gin.Context) {
	var req models.BusinessInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	h.replace(c, "business", func(doc *models.Document) {
		doc.Business = models.SanitizeBusiness(req)
	})
}

func (h *AdminHandler) GetServices(c *gin.Context) {
	doc, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc.Services)
}

func (h *AdminHandler) UpdateServices(c *gin.Context) {
	var req []models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req == nil {
		req = []models.Service{}
	}
	h.replace(c, "services", func(doc *models.Document) {
		doc.Services = models.SanitizeServices(req)
	})
}

func (h *AdminHandler) GetAbout(c *gin.Context) {
	doc, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc.About)
}

func (h *AdminHandler) UpdateAbout(c *gin.Context) {
	var req []models.AboutTag
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req == nil {
		req = []models.AboutTag{}
	}
	h.replace(c, "about", func(doc *models.Document) {
		doc.About = models.SanitizeAbout(req)
	})
}

////////////////////////////////////////////////////////
// AGENDAMENTOS E AUDITORIA
////////////////////////////////////////////////////////

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	doc, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.List(c, doc.Appointments)
}

func (h *AdminHandler) ListAuditLog(c *gin.Context) {
	doc, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.List(c, doc.AuditLog)
}
