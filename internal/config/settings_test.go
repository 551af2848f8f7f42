package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestTexturePaths(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if path := settings.GetTexturePath(model.SlotBaseColor); path != "" {
		t.Errorf("Expected empty default path, got %s", path)
	}

	settings.SetTexturePath(model.SlotBaseColor, "/tex/base.png")
	if path := settings.GetTexturePath(model.SlotBaseColor); path != "/tex/base.png" {
		t.Errorf("Expected /tex/base.png, got %s", path)
	}

	// Other slots are unaffected
	if path := settings.GetTexturePath(model.SlotNormal); path != "" {
		t.Errorf("Expected empty Normal path, got %s", path)
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	customDir := "/custom/exports"
	settings.SetOutputDirectory(customDir)

	if dir := settings.GetOutputDirectory(); dir != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, dir)
	}
}

func TestConverterPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if path := settings.GetConverterPath(); path != "" {
		t.Errorf("Expected empty default converter path, got %s", path)
	}

	settings.SetConverterPath("/tools/ImageToPAA.exe")
	if path := settings.GetConverterPath(); path != "/tools/ImageToPAA.exe" {
		t.Errorf("Expected converter path to round-trip, got %s", path)
	}
}

func TestResolution(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if res := settings.GetResolution(); res != DefaultResolution {
		t.Errorf("Expected default resolution %d, got %d", DefaultResolution, res)
	}

	settings.SetResolution(2048)
	if res := settings.GetResolution(); res != 2048 {
		t.Errorf("Expected resolution 2048, got %d", res)
	}

	// Unsupported values are clamped to the default
	settings.SetResolution(999)
	if res := settings.GetResolution(); res != DefaultResolution {
		t.Errorf("Expected unsupported resolution to clamp to %d, got %d", DefaultResolution, res)
	}
}

func TestTypeEnabled(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// All output types are enabled by default
	for _, outputType := range model.AllOutputTypes() {
		if !settings.GetTypeEnabled(outputType) {
			t.Errorf("Expected %s enabled by default", outputType)
		}
	}

	settings.SetTypeEnabled(model.OutputSMDI, false)
	if settings.GetTypeEnabled(model.OutputSMDI) {
		t.Error("Expected smdi to be disabled")
	}
	if !settings.GetTypeEnabled(model.OutputCO) {
		t.Error("Expected co to remain enabled")
	}
}

func TestBaseName(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetBaseName("rock")
	if name := settings.GetBaseName(); name != "rock" {
		t.Errorf("Expected base name rock, got %s", name)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}
}

func TestReset(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetTexturePath(model.SlotAO, "/tex/ao.png")
	settings.SetBaseName("rock")
	settings.SetResolution(4096)
	settings.SetTypeEnabled(model.OutputAS, false)
	settings.SetConverterPath("/tools/PAAConverter.exe")

	settings.Reset()

	if path := settings.GetTexturePath(model.SlotAO); path != "" {
		t.Errorf("Expected cleared AO path, got %s", path)
	}
	if name := settings.GetBaseName(); name != "" {
		t.Errorf("Expected cleared base name, got %s", name)
	}
	if res := settings.GetResolution(); res != DefaultResolution {
		t.Errorf("Expected default resolution after reset, got %d", res)
	}
	if !settings.GetTypeEnabled(model.OutputAS) {
		t.Error("Expected as re-enabled after reset")
	}
	if path := settings.GetConverterPath(); path != "" {
		t.Errorf("Expected cleared converter path, got %s", path)
	}
}
