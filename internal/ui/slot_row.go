package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/model"
)

// TextureSlotRow is the input row for one PBR texture slot: a bold slot
// label, the selected file path, and a browse button. Rows are also drop
// targets; the window-level drop handler hit-tests against them.
type TextureSlotRow struct {
	widget.BaseWidget

	slot model.TextureSlot

	label     *widget.Label
	pathEntry *widget.Entry
	browseBtn *widget.Button

	onBrowse func(slot model.TextureSlot)
	onChange func(slot model.TextureSlot, path string)
}

// NewTextureSlotRow creates the input row for one texture slot
func NewTextureSlotRow(slot model.TextureSlot, localization *Localization) *TextureSlotRow {
	row := &TextureSlotRow{slot: slot}

	row.label = widget.NewLabel(string(slot) + ":")
	row.label.TextStyle = fyne.TextStyle{Bold: true}

	row.pathEntry = widget.NewEntry()
	row.pathEntry.SetPlaceHolder(localization.GetText(KeyDropHint))
	row.pathEntry.OnChanged = func(path string) {
		if row.onChange != nil {
			row.onChange(row.slot, path)
		}
	}

	row.browseBtn = widget.NewButton(localization.GetText(KeyBrowse), func() {
		if row.onBrowse != nil {
			row.onBrowse(row.slot)
		}
	})

	row.ExtendBaseWidget(row)
	return row
}

// SetCallbacks wires the browse click and path change handlers
func (r *TextureSlotRow) SetCallbacks(onBrowse func(model.TextureSlot), onChange func(model.TextureSlot, string)) {
	r.onBrowse = onBrowse
	r.onChange = onChange
}

// Slot returns the texture slot this row edits
func (r *TextureSlotRow) Slot() model.TextureSlot {
	return r.slot
}

// Path returns the currently selected file path
func (r *TextureSlotRow) Path() string {
	return r.pathEntry.Text
}

// SetPath updates the displayed file path
func (r *TextureSlotRow) SetPath(path string) {
	r.pathEntry.SetText(path)
}

// SetEnabled toggles interactivity while a run is in flight
func (r *TextureSlotRow) SetEnabled(enabled bool) {
	if enabled {
		r.pathEntry.Enable()
		r.browseBtn.Enable()
	} else {
		r.pathEntry.Disable()
		r.browseBtn.Disable()
	}
}

// RefreshTexts updates localized texts after a language change
func (r *TextureSlotRow) RefreshTexts(localization *Localization) {
	r.pathEntry.SetPlaceHolder(localization.GetText(KeyDropHint))
	r.browseBtn.SetText(localization.GetText(KeyBrowse))
}

// CreateRenderer creates the widget renderer
func (r *TextureSlotRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil, r.label, r.browseBtn, r.pathEntry)
	return widget.NewSimpleRenderer(content)
}
