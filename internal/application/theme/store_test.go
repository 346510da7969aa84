package theme_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/novacore-api/internal/application/theme"
	"github.com/jhoicas/novacore-api/pkg/config"
)

func baseConfig() config.ThemeConfig {
	return config.ThemeConfig{
		DarkMode:       false,
		PrimaryColor:   "#2563eb",
		SecondaryColor: "#7c3aed",
		FontFamily:     "Inter",
		CompanyName:    "NovaCore",
	}
}

// El Store arranca con los valores de configuración.
func TestNewStore_ValoresIniciales(t *testing.T) {
	store := theme.NewStore(baseConfig())

	pref := store.Snapshot()
	assert.False(t, pref.DarkMode)
	assert.Equal(t, "#2563eb", pref.PrimaryColor)
	assert.Equal(t, "Inter", pref.FontFamily)
	assert.Equal(t, "NovaCore", pref.CompanyName)
}

// Los setters con valores vacíos conservan el valor anterior.
func TestSetters_VaciosConservan(t *testing.T) {
	store := theme.NewStore(baseConfig())

	store.SetColors("#111111", "")
	store.SetFontFamily("")
	store.SetBranding("", "https://cdn.example.com/logo.svg")

	pref := store.Snapshot()
	assert.Equal(t, "#111111", pref.PrimaryColor, "el primario sí cambió")
	assert.Equal(t, "#7c3aed", pref.SecondaryColor, "el secundario vacío conserva el anterior")
	assert.Equal(t, "Inter", pref.FontFamily)
	assert.Equal(t, "NovaCore", pref.CompanyName)
	assert.Equal(t, "https://cdn.example.com/logo.svg", pref.LogoURL)
}

// El modo oscuro alterna de forma independiente al resto de preferencias.
func TestSetDarkMode(t *testing.T) {
	store := theme.NewStore(baseConfig())

	store.SetDarkMode(true)
	assert.True(t, store.Snapshot().DarkMode)

	store.SetDarkMode(false)
	pref := store.Snapshot()
	assert.False(t, pref.DarkMode)
	assert.Equal(t, "#2563eb", pref.PrimaryColor, "el resto de preferencias no se toca")
}

// Snapshot es una copia: mutarla no afecta al Store.
func TestSnapshot_EsCopia(t *testing.T) {
	store := theme.NewStore(baseConfig())

	pref := store.Snapshot()
	pref.PrimaryColor = "#ff0000"

	assert.Equal(t, "#2563eb", store.Snapshot().PrimaryColor)
}

// Escrituras concurrentes no corrompen el estado (correr con -race).
func TestStore_Concurrencia(t *testing.T) {
	store := theme.NewStore(baseConfig())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(dark bool) {
			defer wg.Done()
			store.SetDarkMode(dark)
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
		}()
	}
	wg.Wait()

	pref := store.Snapshot()
	assert.Equal(t, "#2563eb", pref.PrimaryColor)
}
