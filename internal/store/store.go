package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/botovelho/barbearia-api/internal/models"
)

// ===============================
// Store de documento único
// ===============================
//
// Todo o estado vive em um arquivo JSON. Leituras devolvem um snapshot
// e escritas passam por Update, que segura o mutex durante o ciclo
// ler-validar-gravar inteiro: é essa serialização que impede duas
// reservas simultâneas de passarem pelo canBook com snapshot velho.
// Trocar por um banco de verdade significa reimplementar só este tipo.

type Store struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

func New(path string, adminPassword string, logger zerolog.Logger) (*Store, error) {
	s := &Store{path: path, log: logger}
	if err := s.ensure(adminPassword); err != nil {
		return nil, err
	}
	return s, nil
}

// ensure cria o arquivo com o seed inicial na primeira execução.
func (s *Store) ensure(adminPassword string) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	doc := &models.Document{
		Admin: models.AdminUser{
			Username:     "admin",
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		},
		Business:     models.DefaultBusiness,
		Services:     models.DefaultServices,
		Barbers:      models.DefaultBarbers,
		About:        models.DefaultAbout,
		Schedule:     models.DefaultSchedule,
		Appointments: []models.Appointment{},
		AuditLog:     []models.AuditEntry{},
	}
	models.SanitizeDocument(doc)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info().Str("path", s.path).Msg("criando documento inicial")
	return s.write(doc)
}

// Load devolve um snapshot normalizado do documento.
func (s *Store) Load() (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Save substitui o documento inteiro.
func (s *Store) Save(doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	models.SanitizeDocument(doc)
	return s.write(doc)
}

// Update roda fn com o documento mais fresco, sob o lock de escritor
// único, e persiste o resultado se fn não errar. fn devolvendo erro
// descarta a mutação.
func (s *Store) Update(fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	models.SanitizeDocument(doc)
	return s.write(doc)
}

func (s *Store) read() (*models.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	models.SanitizeDocument(&doc)
	return &doc, nil
}

// write grava em arquivo temporário e renomeia por cima, para nunca
// deixar um db.json pela metade se o processo cair no meio.
func (s *Store) write(doc *models.Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(s.path), err)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
