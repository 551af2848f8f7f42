package model

import "path/filepath"

// TextureSlot identifies one of the five PBR input slots.
type TextureSlot string

const (
	SlotBaseColor TextureSlot = "BaseColor"
	SlotNormal    TextureSlot = "Normal"
	SlotAO        TextureSlot = "AO"
	SlotMetallic  TextureSlot = "Metallic"
	SlotRoughness TextureSlot = "Roughness"
)

// AllSlots returns the input slots in display order.
func AllSlots() []TextureSlot {
	return []TextureSlot{SlotBaseColor, SlotNormal, SlotAO, SlotMetallic, SlotRoughness}
}

// String returns the string representation of TextureSlot
func (ts TextureSlot) String() string {
	return string(ts)
}

// OutputType identifies one of the engine texture-map naming conventions.
type OutputType string

const (
	OutputCO   OutputType = "co"
	OutputNOHQ OutputType = "nohq"
	OutputAS   OutputType = "as"
	OutputSMDI OutputType = "smdi"
)

// AllOutputTypes returns the output types in display order.
func AllOutputTypes() []OutputType {
	return []OutputType{OutputCO, OutputNOHQ, OutputAS, OutputSMDI}
}

// Suffix returns the filename suffix for the output type, e.g. "_co".
func (ot OutputType) Suffix() string {
	return "_" + string(ot)
}

// DisplayName returns a human readable label for checklists.
func (ot OutputType) DisplayName() string {
	switch ot {
	case OutputCO:
		return "Color (_co)"
	case OutputNOHQ:
		return "Normal (_nohq)"
	case OutputAS:
		return "AmbientSpec (_as)"
	case OutputSMDI:
		return "SpecMetalGloss (_smdi)"
	default:
		return string(ot)
	}
}

// RequiredSlots returns the input slots without which the output type cannot
// be produced at all. Slots that only feed one channel and have a documented
// default fill (Metallic, Roughness for _smdi) are not listed here; they are
// reported by OptionalSlots and substituted at combine time.
func (ot OutputType) RequiredSlots() []TextureSlot {
	switch ot {
	case OutputCO:
		return []TextureSlot{SlotBaseColor}
	case OutputNOHQ:
		return []TextureSlot{SlotNormal}
	case OutputAS:
		return []TextureSlot{SlotAO}
	default:
		return nil
	}
}

// OptionalSlots returns input slots the output type can use but does not
// strictly need. _smdi needs at least one of them to have usable data.
func (ot OutputType) OptionalSlots() []TextureSlot {
	if ot == OutputSMDI {
		return []TextureSlot{SlotMetallic, SlotRoughness}
	}
	return nil
}

// Resolutions returns the supported square output sizes.
func Resolutions() []int {
	return []int{512, 1024, 2048, 4096}
}

// Job is the immutable configuration for a single conversion run. It is
// assembled from widget state when Convert is clicked and never mutated
// afterwards.
type Job struct {
	Inputs        map[TextureSlot]string // slot -> source image path, "" if unset
	OutputDir     string
	BaseName      string
	Resolution    int
	Enabled       []OutputType
	ConverterPath string
}

// InputPath returns the configured path for a slot, or "" if unset.
func (j Job) InputPath(slot TextureSlot) string {
	if j.Inputs == nil {
		return ""
	}
	return j.Inputs[slot]
}

// OutputFileName returns the intermediate file name, e.g. "rock_co.png".
func (j Job) OutputFileName(ot OutputType) string {
	return j.BaseName + ot.Suffix() + ".png"
}

// OutputPath returns the full intermediate file path in the output directory.
// An existing file of the same name is overwritten without prompting.
func (j Job) OutputPath(ot OutputType) string {
	return filepath.Join(j.OutputDir, j.OutputFileName(ot))
}
