package export

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/model"
	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/platform"
	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/texture"
)

// Converter invocation constants
const (
	// PAAConverter batch mode flags
	BatchFlag  = "-batch"
	OutputFlag = "-output"
	QuietFlag  = "-quiet"

	// Run log written into the output directory
	RunLogFileName = "conversion.log"
	RunLogTimeFmt  = "2006-01-02 15:04:05"

	// Task ID prefix
	TaskIDPrefix = "export-"
)

// Progress split between the PNG phase and the converter phase, matching the
// original tool's progress bar behavior.
const pngPhaseShare = 0.5

// Service runs conversion jobs sequentially, one job at a time.
type Service struct {
	tasks      map[string]*model.ExportTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.ExportTask) // callback for UI updates
	onLog      func(string)            // callback for log lines
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{
		tasks: make(map[string]*model.ExportTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.onUpdate = callback
}

// SetLogCallback sets the callback function for log lines
func (s *Service) SetLogCallback(callback func(string)) {
	s.onLog = callback
}

// Validate checks the conditions that block starting a job: unset required
// fields (base name, output directory, converter path, output types) and
// missing or unreadable input files for the enabled maps.
func (s *Service) Validate(job model.Job) error {
	if strings.TrimSpace(job.BaseName) == "" {
		return fmt.Errorf("output base name is not set")
	}
	if job.OutputDir == "" {
		return fmt.Errorf("output folder is not set")
	}
	if job.ConverterPath == "" {
		return fmt.Errorf("converter executable is not set")
	}
	if len(job.Enabled) == 0 {
		return fmt.Errorf("no output maps selected")
	}

	validResolution := false
	for _, r := range model.Resolutions() {
		if job.Resolution == r {
			validResolution = true
			break
		}
	}
	if !validResolution {
		return fmt.Errorf("unsupported resolution: %d", job.Resolution)
	}

	for _, outputType := range job.Enabled {
		for _, slot := range outputType.RequiredSlots() {
			path := job.InputPath(slot)
			if path == "" {
				return fmt.Errorf("%s input is required for %s but not set", slot, outputType.Suffix())
			}
		}
	}

	// Any slot that is set must point at a readable file, whether required
	// or optional.
	for slot, path := range job.Inputs {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%s input cannot be read: %s", slot, path)
		}
	}

	return nil
}

// StartExport validates the job and starts it in the background. Only one job
// can be in flight; further input is disabled in the UI while one is running.
func (s *Service) StartExport(job model.Job) (*model.ExportTask, error) {
	if err := s.Validate(job); err != nil {
		return nil, err
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	for _, task := range s.tasks {
		if task.Status.IsActive() {
			return nil, fmt.Errorf("an export is already running")
		}
	}

	task := &model.ExportTask{
		ID:        generateTaskID(),
		Job:       job,
		Status:    model.JobStatusPending,
		Progress:  0.0,
		Percent:   0,
		StartedAt: time.Now(),
	}

	s.tasks[task.ID] = task

	go s.runExport(task)

	return task, nil
}

// GetTask returns an export task by ID
func (s *Service) GetTask(taskID string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// runExport performs the actual conversion run
func (s *Service) runExport(task *model.ExportTask) {
	job := task.Job

	s.setStatus(task, model.JobStatusStarting)

	if err := platform.CreateDirectoryIfNotExists(job.OutputDir); err != nil {
		s.setTaskError(task, fmt.Errorf("failed to create output folder: %w", err))
		return
	}

	runLog := s.openRunLog(job)
	if runLog != nil {
		defer runLog.Close()
	}

	// Decode each configured source once; a slot that fails to decode is
	// treated as absent and surfaces as a per-map failure downstream.
	sources := texture.Sources{}
	for slot, path := range job.Inputs {
		if path == "" {
			continue
		}
		img, err := texture.LoadImage(path)
		if err != nil {
			s.logf(runLog, "Cannot read %s input: %v", slot, err)
			continue
		}
		sources[slot] = img
	}

	// PNG phase
	s.setStatus(task, model.JobStatusProcessing)
	s.logf(runLog, "Converting to PNG...")

	for i, outputType := range job.Enabled {
		result := model.MapResult{Type: outputType}

		img, err := texture.Compose(outputType, sources, job.Resolution)
		if err != nil {
			result.LastError = err.Error()
			s.logf(runLog, "Skipped %s: %v", outputType.Suffix(), err)
		} else {
			outPath := job.OutputPath(outputType)
			if err := texture.WritePNG(img, outPath); err != nil {
				result.LastError = err.Error()
				s.logf(runLog, "Failed to save %s: %v", filepath.Base(outPath), err)
			} else {
				result.PNGPath = outPath
				s.logf(runLog, "Saved: %s", filepath.Base(outPath))
			}
		}

		s.appendResult(task, result)
		s.setProgress(task, float64(i+1)/float64(len(job.Enabled))*pngPhaseShare)
	}

	// Converter phase
	s.setStatus(task, model.JobStatusConverting)

	switch platform.DetectConverter(job.ConverterPath) {
	case platform.ConverterPAAConverter:
		s.runBatchConverter(task, runLog)
	default:
		s.runPerFileConverter(task, runLog)
	}

	// Summary
	s.tasksMutex.Lock()
	if task.FailedCount() == 0 {
		task.Status = model.JobStatusCompleted
	} else {
		task.Status = model.JobStatusPartial
	}
	task.Progress = 1.0
	task.Percent = 100
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.logf(runLog, "Done: %s", task.Summary())
	s.notifyUpdate(task)
}

// runBatchConverter drives PAAConverter over the whole output directory in a
// single invocation. Every map that reached the converter phase shares the
// outcome of that one invocation.
func (s *Service) runBatchConverter(task *model.ExportTask, runLog *os.File) {
	job := task.Job

	pending := s.pendingResultIndexes(task)
	if len(pending) == 0 {
		return
	}

	s.logf(runLog, "Running PAAConverter batch...")
	args := BuildBatchArgs(job.OutputDir)
	err := s.runConverter(job.ConverterPath, args, runLog)

	s.tasksMutex.Lock()
	for _, idx := range pending {
		if err != nil {
			task.Results[idx].LastError = err.Error()
		} else {
			task.Results[idx].Converted = true
		}
	}
	s.tasksMutex.Unlock()

	if err != nil {
		s.logf(runLog, "PAA batch failed: %v", err)
	} else {
		s.logf(runLog, "PAA batch complete.")
	}
	s.notifyUpdate(task)
}

// runPerFileConverter invokes the converter once per written intermediate
// file. A spawn error or non-zero exit fails that map only; the run continues
// with the remaining files.
func (s *Service) runPerFileConverter(task *model.ExportTask, runLog *os.File) {
	job := task.Job
	kind := platform.DetectConverter(job.ConverterPath)

	pending := s.pendingResultIndexes(task)
	for j, idx := range pending {
		s.tasksMutex.RLock()
		pngPath := task.Results[idx].PNGPath
		s.tasksMutex.RUnlock()

		args := BuildPerFileArgs(kind, pngPath)
		err := s.runConverter(job.ConverterPath, args, runLog)

		s.tasksMutex.Lock()
		if err != nil {
			task.Results[idx].LastError = err.Error()
		} else {
			task.Results[idx].Converted = true
		}
		s.tasksMutex.Unlock()

		if err != nil {
			s.logf(runLog, "Failed: %s (%v)", filepath.Base(pngPath), err)
		} else {
			s.logf(runLog, "Converted: %s", filepath.Base(pngPath))
		}

		s.setProgress(task, pngPhaseShare+float64(j+1)/float64(len(pending))*(1-pngPhaseShare))
	}
}

// pendingResultIndexes returns the indexes of results that have a written
// intermediate file and no earlier failure.
func (s *Service) pendingResultIndexes(task *model.ExportTask) []int {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	var pending []int
	for i, result := range task.Results {
		if result.PNGPath != "" && !result.Failed() {
			pending = append(pending, i)
		}
	}
	return pending
}

// BuildBatchArgs builds the PAAConverter batch invocation arguments
func BuildBatchArgs(outputDir string) []string {
	return []string{BatchFlag, outputDir, OutputFlag, outputDir, QuietFlag}
}

// BuildPerFileArgs builds per-file converter arguments. ImageToPAA takes
// explicit source and destination paths; anything else gets the intermediate
// file path as its only argument.
func BuildPerFileArgs(kind platform.ConverterKind, pngPath string) []string {
	if kind == platform.ConverterImageToPAA {
		return []string{pngPath, platform.FinalOutputPath(pngPath)}
	}
	return []string{pngPath}
}

// runConverter spawns the converter and relays its combined stdout/stderr to
// the log line by line. There is no timeout; a hung converter blocks the run.
func (s *Service) runConverter(exePath string, args []string, runLog *os.File) error {
	cmd := exec.Command(exePath, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start converter: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			s.logf(runLog, "  %s", line)
		}
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("converter failed: %w", err)
	}
	return nil
}

// openRunLog creates the per-run log file in the output directory. A failure
// here is logged and the run proceeds without a file log.
func (s *Service) openRunLog(job model.Job) *os.File {
	file, err := os.Create(filepath.Join(job.OutputDir, RunLogFileName))
	if err != nil {
		log.Printf("Failed to create run log: %v", err)
		return nil
	}
	return file
}

// logf emits one log line to the UI callback and the run log file
func (s *Service) logf(runLog *os.File, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	log.Printf("%s", line)
	if runLog != nil {
		fmt.Fprintf(runLog, "%s %s\n", time.Now().Format(RunLogTimeFmt), line)
	}
	if s.onLog != nil {
		s.onLog(line)
	}
}

// appendResult adds a finished map result to the task
func (s *Service) appendResult(task *model.ExportTask, result model.MapResult) {
	s.tasksMutex.Lock()
	task.Results = append(task.Results, result)
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// setProgress updates the task progress fields
func (s *Service) setProgress(task *model.ExportTask, progress float64) {
	if progress > 1.0 {
		progress = 1.0
	}

	s.tasksMutex.Lock()
	task.Progress = progress
	task.Percent = int(progress * 100)
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// setStatus updates the task status
func (s *Service) setStatus(task *model.ExportTask, status model.JobStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// setTaskError sets a job-level error state for a task
func (s *Service) setTaskError(task *model.ExportTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.JobStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	if s.onLog != nil {
		s.onLog(err.Error())
	}
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ExportTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better
// uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
