// Package theme implementa el almacén de preferencias de presentación. Comparte el
// patrón de store con la sesión pero su ciclo de vida es independiente: se inicializa
// desde configuración estática, se muta con setters explícitos y no guarda ninguna
// relación con el estado de autenticación.
package theme

import (
	"sync"

	"github.com/jhoicas/novacore-api/pkg/config"
)

// Preference instantánea de las preferencias de tema.
type Preference struct {
	DarkMode       bool
	PrimaryColor   string
	SecondaryColor string
	FontFamily     string
	CompanyName    string
	LogoURL        string
}

// Store almacén mutable de preferencias. Sin semántica de autorización.
type Store struct {
	mu   sync.RWMutex
	pref Preference
}

// NewStore construye el almacén desde los valores de configuración.
func NewStore(cfg config.ThemeConfig) *Store {
	return &Store{pref: Preference{
		DarkMode:       cfg.DarkMode,
		PrimaryColor:   cfg.PrimaryColor,
		SecondaryColor: cfg.SecondaryColor,
		FontFamily:     cfg.FontFamily,
		CompanyName:    cfg.CompanyName,
		LogoURL:        cfg.LogoURL,
	}}
}

// Snapshot copia de las preferencias actuales.
func (s *Store) Snapshot() Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pref
}

// SetDarkMode activa o desactiva el modo oscuro.
func (s *Store) SetDarkMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pref.DarkMode = on
}

// SetColors actualiza los colores de marca; los vacíos conservan el valor anterior.
func (s *Store) SetColors(primary, secondary string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if primary != "" {
		s.pref.PrimaryColor = primary
	}
	if secondary != "" {
		s.pref.SecondaryColor = secondary
	}
}

// SetFontFamily actualiza la tipografía; vacío conserva el valor anterior.
func (s *Store) SetFontFamily(font string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if font != "" {
		s.pref.FontFamily = font
	}
}

// SetBranding actualiza nombre visible y logo; los vacíos conservan el valor anterior.
func (s *Store) SetBranding(companyName, logoURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if companyName != "" {
		s.pref.CompanyName = companyName
	}
	if logoURL != "" {
		s.pref.LogoURL = logoURL
	}
}
