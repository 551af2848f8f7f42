package config

import (
	"fyne.io/fyne/v2"

	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/model"
	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyTexturePrefix = "textures/" // + slot name
	KeyTypePrefix    = "types/"    // + output type
	KeyOutputDir     = "output_dir"
	KeyConverterPath = "converter_path"
	KeyResolution    = "resolution"
	KeyBaseName      = "base_name"
	KeyLanguage      = "language"
)

// Default values
const (
	DefaultResolution  = 1024
	DefaultTypeEnabled = true
	DefaultLanguage    = "en"
)

// Settings manages application configuration. Everything the user can edit in
// the main window is persisted across sessions.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTexturePath returns the saved source path for an input slot
func (s *Settings) GetTexturePath(slot model.TextureSlot) string {
	return s.app.Preferences().String(KeyTexturePrefix + string(slot))
}

// SetTexturePath saves the source path for an input slot
func (s *Settings) SetTexturePath(slot model.TextureSlot, path string) {
	s.app.Preferences().SetString(KeyTexturePrefix+string(slot), path)
}

// GetOutputDirectory returns the configured output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir, err := platform.DefaultOutputDir()
		if err != nil {
			return ""
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetConverterPath returns the configured converter executable path
func (s *Settings) GetConverterPath() string {
	return s.app.Preferences().String(KeyConverterPath)
}

// SetConverterPath sets the converter executable path
func (s *Settings) SetConverterPath(path string) {
	s.app.Preferences().SetString(KeyConverterPath, path)
}

// GetResolution returns the configured output resolution
func (s *Settings) GetResolution() int {
	value := s.app.Preferences().Int(KeyResolution)
	for _, r := range model.Resolutions() {
		if value == r {
			return value
		}
	}
	s.SetResolution(DefaultResolution)
	return DefaultResolution
}

// SetResolution sets the output resolution, clamping unsupported values to
// the default
func (s *Settings) SetResolution(resolution int) {
	valid := false
	for _, r := range model.Resolutions() {
		if resolution == r {
			valid = true
			break
		}
	}
	if !valid {
		resolution = DefaultResolution
	}
	s.app.Preferences().SetInt(KeyResolution, resolution)
}

// GetTypeEnabled returns whether an output type is part of the export
func (s *Settings) GetTypeEnabled(outputType model.OutputType) bool {
	return s.app.Preferences().BoolWithFallback(KeyTypePrefix+string(outputType), DefaultTypeEnabled)
}

// SetTypeEnabled toggles an output type
func (s *Settings) SetTypeEnabled(outputType model.OutputType, enabled bool) {
	s.app.Preferences().SetBool(KeyTypePrefix+string(outputType), enabled)
}

// GetBaseName returns the saved output base name
func (s *Settings) GetBaseName() string {
	return s.app.Preferences().String(KeyBaseName)
}

// SetBaseName saves the output base name
func (s *Settings) SetBaseName(name string) {
	s.app.Preferences().SetString(KeyBaseName, name)
}

// GetLanguage returns the configured interface language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the interface language
func (s *Settings) SetLanguage(language string) {
	s.app.Preferences().SetString(KeyLanguage, language)
}

// Reset restores every setting to its default value. The interface language
// is kept, resetting the form should not switch the UI language.
func (s *Settings) Reset() {
	prefs := s.app.Preferences()
	for _, slot := range model.AllSlots() {
		prefs.RemoveValue(KeyTexturePrefix + string(slot))
	}
	for _, outputType := range model.AllOutputTypes() {
		prefs.RemoveValue(KeyTypePrefix + string(outputType))
	}
	prefs.RemoveValue(KeyOutputDir)
	prefs.RemoveValue(KeyConverterPath)
	prefs.RemoveValue(KeyResolution)
	prefs.RemoveValue(KeyBaseName)
}
