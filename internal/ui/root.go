package ui

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/config"
	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/export"
	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/model"
	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/platform"
)

// Image extensions offered in the texture file dialogs
var textureExtensions = []string{".png", ".jpg", ".jpeg", ".tga", ".bmp", ".tif", ".tiff"}

// RootUI represents the main UI structure. It is an explicit two-state
// machine: Idle (inputs editable) and Running (inputs locked, progress and
// log updating). The transition back to Idle happens when the export task
// reaches a finished status.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	exportSvc    export.Exporter

	// Input widgets
	slotRows         []*TextureSlotRow
	outputDirLabel   *widget.Label
	outputDirBtn     *widget.Button
	converterLabel   *widget.Label
	converterBtn     *widget.Button
	resolutionSelect *widget.Select
	typeChecks       map[model.OutputType]*widget.Check
	baseNameEntry    *widget.Entry

	// Run widgets
	progressBar *widget.ProgressBar
	logLabel    *widget.Label
	logScroll   *container.Scroll
	convertBtn  *widget.Button
	resetBtn    *widget.Button

	running  bool
	logMutex sync.Mutex
	logLines []string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, exportSvc export.Exporter) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		exportSvc:    exportSvc,
		typeChecks:   make(map[model.OutputType]*widget.Check),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Wire service events back into the UI
	ui.exportSvc.SetUpdateCallback(ui.onTaskUpdate)
	ui.exportSvc.SetLogCallback(ui.onLogLine)

	ui.setupUI()
	ui.restoreSettings()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Texture slot rows
	slotBox := container.NewVBox()
	for _, slot := range model.AllSlots() {
		row := NewTextureSlotRow(slot, ui.localization)
		row.SetCallbacks(ui.onBrowseTexture, ui.onTexturePathChanged)
		ui.slotRows = append(ui.slotRows, row)
		slotBox.Add(row)
	}

	// Output folder selector
	ui.outputDirLabel = widget.NewLabel(NonePlaceholder)
	ui.outputDirLabel.Truncation = fyne.TextTruncateEllipsis
	ui.outputDirBtn = widget.NewButton(ui.localization.GetText(KeySelectOutput), ui.onSelectOutputFolder)
	outputRow := container.NewBorder(nil, nil, ui.outputDirBtn, nil, ui.outputDirLabel)

	// Converter selector
	ui.converterLabel = widget.NewLabel(NonePlaceholder)
	ui.converterLabel.Truncation = fyne.TextTruncateEllipsis
	ui.converterBtn = widget.NewButton(ui.localization.GetText(KeySelectConverter), ui.onSelectConverter)
	converterRow := container.NewBorder(nil, nil, ui.converterBtn, nil, ui.converterLabel)

	// Resolution selector
	resolutionOptions := make([]string, 0, len(model.Resolutions()))
	for _, r := range model.Resolutions() {
		resolutionOptions = append(resolutionOptions, strconv.Itoa(r))
	}
	ui.resolutionSelect = widget.NewSelect(resolutionOptions, func(selected string) {
		if resolution, err := strconv.Atoi(selected); err == nil {
			ui.settings.SetResolution(resolution)
		}
	})
	resolutionRow := container.NewBorder(nil, nil,
		widget.NewLabel(ui.localization.GetText(KeyResolution)+":"), nil, ui.resolutionSelect)

	// Output type checklist
	typeBox := container.NewHBox()
	for _, outputType := range model.AllOutputTypes() {
		ot := outputType // capture for closure
		check := widget.NewCheck(ot.DisplayName(), func(checked bool) {
			ui.settings.SetTypeEnabled(ot, checked)
		})
		ui.typeChecks[ot] = check
		typeBox.Add(check)
	}

	// Base name
	ui.baseNameEntry = widget.NewEntry()
	ui.baseNameEntry.SetPlaceHolder(ui.localization.GetText(KeyBaseName))
	ui.baseNameEntry.OnChanged = ui.settings.SetBaseName

	// Progress and log
	ui.progressBar = widget.NewProgressBar()
	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord
	ui.logScroll = container.NewVScroll(ui.logLabel)
	ui.logScroll.SetMinSize(fyne.NewSize(0, LogMinHeight))

	// Action buttons
	ui.convertBtn = widget.NewButton(ui.localization.GetText(KeyConvert), ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance
	ui.resetBtn = widget.NewButton(ui.localization.GetText(KeyReset), ui.onResetClick)
	buttonRow := container.NewGridWithColumns(2, ui.convertBtn, ui.resetBtn)

	top := container.NewVBox(
		slotBox,
		widget.NewSeparator(),
		outputRow,
		converterRow,
		resolutionRow,
		typeBox,
		ui.baseNameEntry,
		ui.progressBar,
	)

	content := container.NewBorder(top, buttonRow, nil, nil, ui.logScroll)
	ui.window.SetContent(content)

	// Window-level drag and drop onto texture slots
	ui.window.SetOnDropped(ui.onDropped)

	log.Printf("UI setup completed successfully")
}

// restoreSettings loads persisted widget state from the previous session
func (ui *RootUI) restoreSettings() {
	for _, row := range ui.slotRows {
		if path := ui.settings.GetTexturePath(row.Slot()); path != "" {
			row.SetPath(path)
		}
	}

	if dir := ui.settings.GetOutputDirectory(); dir != "" {
		ui.outputDirLabel.SetText(dir)
	}
	if path := ui.settings.GetConverterPath(); path != "" {
		ui.converterLabel.SetText(path)
	}

	ui.resolutionSelect.SetSelected(strconv.Itoa(ui.settings.GetResolution()))

	for outputType, check := range ui.typeChecks {
		check.SetChecked(ui.settings.GetTypeEnabled(outputType))
	}

	ui.baseNameEntry.SetText(ui.settings.GetBaseName())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openFolderItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenOutputFolder), ui.onOpenOutputFolder)
	resetItem := fyne.NewMenuItem(ui.localization.GetText(KeyReset), ui.onResetClick)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openFolderItem, resetItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	for _, row := range ui.slotRows {
		row.RefreshTexts(ui.localization)
	}
	ui.outputDirBtn.SetText(ui.localization.GetText(KeySelectOutput))
	ui.converterBtn.SetText(ui.localization.GetText(KeySelectConverter))
	ui.baseNameEntry.SetPlaceHolder(ui.localization.GetText(KeyBaseName))
	ui.convertBtn.SetText(ui.localization.GetText(KeyConvert))
	ui.resetBtn.SetText(ui.localization.GetText(KeyReset))
}

// onBrowseTexture opens the file dialog for one texture slot
func (ui *RootUI) onBrowseTexture(slot model.TextureSlot) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		for _, row := range ui.slotRows {
			if row.Slot() == slot {
				row.SetPath(path)
				break
			}
		}
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(textureExtensions))
	fd.Show()
}

// onTexturePathChanged persists a slot path whenever it changes
func (ui *RootUI) onTexturePathChanged(slot model.TextureSlot, path string) {
	ui.settings.SetTexturePath(slot, path)
}

// onSelectOutputFolder handles output directory selection
func (ui *RootUI) onSelectOutputFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		dir := uri.Path()
		ui.settings.SetOutputDirectory(dir)
		ui.outputDirLabel.SetText(dir)
	}, ui.window)
}

// onSelectConverter handles converter executable selection. Executables that
// are not a known converter are accepted but invoked generically, which is
// pointed out to the user at selection time.
func (ui *RootUI) onSelectConverter() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.settings.SetConverterPath(path)
		ui.converterLabel.SetText(path)

		if !platform.IsKnownConverter(path) {
			ui.appendLog(ui.localization.GetText(KeyUnknownConverter))
		}
	}, ui.window)
}

// onDropped assigns a dropped file to the texture slot it was dropped on
func (ui *RootUI) onDropped(pos fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 || ui.running {
		return
	}

	driver := fyne.CurrentApp().Driver()
	for _, row := range ui.slotRows {
		topLeft := driver.AbsolutePositionForObject(row)
		size := row.Size()
		if pos.X >= topLeft.X && pos.X <= topLeft.X+size.Width &&
			pos.Y >= topLeft.Y && pos.Y <= topLeft.Y+size.Height {
			row.SetPath(uris[0].Path())
			return
		}
	}
}

// buildJob assembles the immutable job configuration from current widget
// state. This is the only place widget state crosses into the export service.
func (ui *RootUI) buildJob() model.Job {
	inputs := make(map[model.TextureSlot]string)
	for _, row := range ui.slotRows {
		if path := strings.TrimSpace(row.Path()); path != "" {
			inputs[row.Slot()] = path
		}
	}

	var enabled []model.OutputType
	for _, outputType := range model.AllOutputTypes() {
		if check := ui.typeChecks[outputType]; check != nil && check.Checked {
			enabled = append(enabled, outputType)
		}
	}

	resolution := config.DefaultResolution
	if parsed, err := strconv.Atoi(ui.resolutionSelect.Selected); err == nil {
		resolution = parsed
	}

	return model.Job{
		Inputs:        inputs,
		OutputDir:     ui.settings.GetOutputDirectory(),
		BaseName:      strings.TrimSpace(ui.baseNameEntry.Text),
		Resolution:    resolution,
		Enabled:       enabled,
		ConverterPath: ui.settings.GetConverterPath(),
	}
}

// onConvertClick handles the Convert button click
func (ui *RootUI) onConvertClick() {
	if ui.running {
		return
	}

	job := ui.buildJob()

	ui.clearLog()
	ui.progressBar.SetValue(0)

	task, err := ui.exportSvc.StartExport(job)
	if err != nil {
		ui.appendLog(IconError + " " + err.Error())
		widget.ShowPopUp(widget.NewLabel(err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("Export started: id=%s maps=%d resolution=%d", task.ID, len(job.Enabled), job.Resolution)
	ui.setRunning(true)
	ui.appendLog(ui.localization.GetText(KeyConversionStarted))
}

// onResetClick restores the whole window to its defaults
func (ui *RootUI) onResetClick() {
	if ui.running {
		return
	}

	ui.settings.Reset()

	for _, row := range ui.slotRows {
		row.SetPath("")
	}
	ui.outputDirLabel.SetText(NonePlaceholder)
	ui.converterLabel.SetText(NonePlaceholder)
	ui.resolutionSelect.SetSelected(strconv.Itoa(config.DefaultResolution))
	for _, check := range ui.typeChecks {
		check.SetChecked(config.DefaultTypeEnabled)
	}
	ui.baseNameEntry.SetText("")
	ui.progressBar.SetValue(0)
	ui.clearLog()
}

// onOpenOutputFolder reveals the output directory in the file manager
func (ui *RootUI) onOpenOutputFolder() {
	dir := ui.settings.GetOutputDirectory()
	if dir == "" {
		return
	}
	if err := platform.OpenFolderInManager(dir); err != nil {
		log.Printf("Error opening folder %s: %v", dir, err)
		ui.appendLog(ui.localization.GetText(KeyErrorOpeningFolder) + ": " + err.Error())
	}
}

// setRunning flips the Idle/Running state machine and locks or unlocks every
// input widget accordingly
func (ui *RootUI) setRunning(running bool) {
	ui.running = running

	for _, row := range ui.slotRows {
		row.SetEnabled(!running)
	}

	widgets := []fyne.Disableable{
		ui.outputDirBtn, ui.converterBtn, ui.resolutionSelect,
		ui.baseNameEntry, ui.convertBtn, ui.resetBtn,
	}
	for _, w := range widgets {
		if running {
			w.Disable()
		} else {
			w.Enable()
		}
	}
	for _, check := range ui.typeChecks {
		if running {
			check.Disable()
		} else {
			check.Enable()
		}
	}
}

// onTaskUpdate handles task updates from the export service
func (ui *RootUI) onTaskUpdate(task *model.ExportTask) {
	fyne.Do(func() {
		ui.progressBar.SetValue(task.Progress)

		if !task.Status.IsFinished() {
			return
		}

		ui.setRunning(false)

		switch task.Status {
		case model.JobStatusCompleted:
			message := ui.localization.GetText(KeyConversionComplete)
			ui.appendLog(message)
			fyne.CurrentApp().SendNotification(&fyne.Notification{
				Title:   ui.localization.GetText(KeyDone),
				Content: message,
			})
		case model.JobStatusPartial:
			ui.appendLog(ui.localization.GetText(KeyConversionPartial))
		case model.JobStatusError:
			ui.appendLog(IconError + " " + ui.localization.GetText(KeyConversionFailed) + ": " + task.LastError)
		}
	})
}

// onLogLine relays a log line from the export service into the log view
func (ui *RootUI) onLogLine(line string) {
	fyne.Do(func() {
		ui.appendLog(line)
	})
}

// appendLog adds one line to the scrolling log view
func (ui *RootUI) appendLog(line string) {
	ui.logMutex.Lock()
	ui.logLines = append(ui.logLines, line)
	text := strings.Join(ui.logLines, "\n")
	ui.logMutex.Unlock()

	ui.logLabel.SetText(text)
	ui.logScroll.ScrollToBottom()
}

// clearLog empties the log view
func (ui *RootUI) clearLog() {
	ui.logMutex.Lock()
	ui.logLines = nil
	ui.logMutex.Unlock()

	ui.logLabel.SetText("")
}
