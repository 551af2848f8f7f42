package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Final output format produced by the external converter
const (
	FinalExtension = ".paa"
)

// ConverterKind identifies how a selected converter executable is driven.
type ConverterKind int

const (
	// ConverterGeneric is any executable not recognized by name; it is
	// invoked once per intermediate file with the file path as only argument.
	ConverterGeneric ConverterKind = iota

	// ConverterPAAConverter is Bohemia's PAAConverter.exe, driven in batch
	// mode over the whole output directory in a single invocation.
	ConverterPAAConverter

	// ConverterImageToPAA is ImageToPAA.exe, invoked per file with explicit
	// source and destination paths.
	ConverterImageToPAA
)

// String returns a display name for the converter kind.
func (ck ConverterKind) String() string {
	switch ck {
	case ConverterPAAConverter:
		return "PAAConverter"
	case ConverterImageToPAA:
		return "ImageToPAA"
	default:
		return "generic"
	}
}

// DetectConverter recognizes known converter executables by file name.
func DetectConverter(path string) ConverterKind {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, "paaconverter"):
		return ConverterPAAConverter
	case strings.Contains(name, "imagetopaa"):
		return ConverterImageToPAA
	default:
		return ConverterGeneric
	}
}

// IsKnownConverter reports whether the executable name matches one of the
// converters the tool has a dedicated invocation recipe for.
func IsKnownConverter(path string) bool {
	return DetectConverter(path) != ConverterGeneric
}

// FinalOutputPath returns the path the converter writes for an intermediate
// PNG, by convention the same base name with the engine's extension.
func FinalOutputPath(pngPath string) string {
	ext := filepath.Ext(pngPath)
	return strings.TrimSuffix(pngPath, ext) + FinalExtension
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultOutputDir returns the default output directory for exported
// textures, the user's Documents folder when resolvable.
func DefaultOutputDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Documents"), nil
}

// OpenFolderInManager opens a directory in the system file manager.
func OpenFolderInManager(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux opens a directory on Linux, preferring xdg-open
func openFolderLinux(dirPath string) error {
	if err := exec.Command(XDGOpenCommand, dirPath).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dirPath).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
