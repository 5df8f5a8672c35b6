package audit

import (
	"encoding/json"
	"time"

	"github.com/botovelho/barbearia-api/internal/models"
	"github.com/botovelho/barbearia-api/internal/store"
)

// maxEntries limita o histórico guardado no documento; acima disso os
// registros mais antigos caem.
const maxEntries = 500

type Logger struct {
	store *store.Store
}

func New(st *store.Store) *Logger {
	return &Logger{store: st}
}

func (l *Logger) Log(action, entity, entityID, actor string, metadata any) error {
	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return l.store.Update(func(doc *models.Document) error {
		doc.AuditLog = append(doc.AuditLog, models.AuditEntry{
			Action:    action,
			Entity:    entity,
			EntityID:  entityID,
			Actor:     actor,
			Metadata:  metaJSON,
			CreatedAt: time.Now().UTC(),
		})
		if len(doc.AuditLog) > maxEntries {
			doc.AuditLog = doc.AuditLog[len(doc.AuditLog)-maxEntries:]
		}
		return nil
	})
}
