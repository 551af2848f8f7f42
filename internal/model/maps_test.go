package model

import (
	"path/filepath"
	"testing"
)

func TestOutputTypeSuffix(t *testing.T) {
	tests := []struct {
		outputType OutputType
		expected   string
	}{
		{OutputCO, "_co"},
		{OutputNOHQ, "_nohq"},
		{OutputAS, "_as"},
		{OutputSMDI, "_smdi"},
	}

	for _, test := range tests {
		if test.outputType.Suffix() != test.expected {
			t.Errorf("Suffix(%s) = %s, expected %s", test.outputType, test.outputType.Suffix(), test.expected)
		}
	}
}

func TestOutputTypeRequiredSlots(t *testing.T) {
	tests := []struct {
		outputType OutputType
		expected   []TextureSlot
	}{
		{OutputCO, []TextureSlot{SlotBaseColor}},
		{OutputNOHQ, []TextureSlot{SlotNormal}},
		{OutputAS, []TextureSlot{SlotAO}},
		{OutputSMDI, nil},
	}

	for _, test := range tests {
		slots := test.outputType.RequiredSlots()
		if len(slots) != len(test.expected) {
			t.Errorf("RequiredSlots(%s) = %v, expected %v", test.outputType, slots, test.expected)
			continue
		}
		for i, slot := range slots {
			if slot != test.expected[i] {
				t.Errorf("RequiredSlots(%s)[%d] = %s, expected %s", test.outputType, i, slot, test.expected[i])
			}
		}
	}
}

func TestOutputTypeOptionalSlots(t *testing.T) {
	slots := OutputSMDI.OptionalSlots()
	if len(slots) != 2 || slots[0] != SlotMetallic || slots[1] != SlotRoughness {
		t.Errorf("OptionalSlots(smdi) = %v, expected [Metallic Roughness]", slots)
	}

	if OutputCO.OptionalSlots() != nil {
		t.Error("OptionalSlots(co) should be nil")
	}
}

func TestJobOutputNaming(t *testing.T) {
	job := Job{
		OutputDir: "/out",
		BaseName:  "rock",
	}

	if name := job.OutputFileName(OutputCO); name != "rock_co.png" {
		t.Errorf("OutputFileName(co) = %s, expected rock_co.png", name)
	}

	expected := filepath.Join("/out", "rock_smdi.png")
	if path := job.OutputPath(OutputSMDI); path != expected {
		t.Errorf("OutputPath(smdi) = %s, expected %s", path, expected)
	}
}

func TestJobInputPath(t *testing.T) {
	job := Job{Inputs: map[TextureSlot]string{SlotAO: "/tex/ao.png"}}

	if path := job.InputPath(SlotAO); path != "/tex/ao.png" {
		t.Errorf("InputPath(AO) = %s, expected /tex/ao.png", path)
	}
	if path := job.InputPath(SlotMetallic); path != "" {
		t.Errorf("InputPath(Metallic) = %s, expected empty", path)
	}

	var empty Job
	if path := empty.InputPath(SlotAO); path != "" {
		t.Errorf("InputPath on zero Job = %s, expected empty", path)
	}
}

func TestResolutions(t *testing.T) {
	expected := []int{512, 1024, 2048, 4096}
	resolutions := Resolutions()

	if len(resolutions) != len(expected) {
		t.Fatalf("Expected %d resolutions, got %d", len(expected), len(resolutions))
	}
	for i, r := range expected {
		if resolutions[i] != r {
			t.Errorf("Resolution %d: expected %d, got %d", i, r, resolutions[i])
		}
	}
}
