package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyConvert            = "convert"
	KeyReset              = "reset"
	KeyBrowse             = "browse"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyResolution         = "resolution"
	KeyBaseName           = "base_name"
	KeySelectOutput       = "select_output"
	KeySelectConverter    = "select_converter"
	KeyOpenOutputFolder   = "open_output_folder"
	KeyDropHint           = "drop_hint"
	KeyConversionStarted  = "conversion_started"
	KeyConversionComplete = "conversion_complete"
	KeyConversionPartial  = "conversion_partial"
	KeyConversionFailed   = "conversion_failed"
	KeyUnknownConverter   = "unknown_converter"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyDone               = "done"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "DayZ Texture Exporter",
		KeyConvert:            "Convert",
		KeyReset:              "Reset",
		KeyBrowse:             "Browse",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyResolution:         "Resolution",
		KeyBaseName:           "Output base name",
		KeySelectOutput:       "Select Output Folder",
		KeySelectConverter:    "Select Converter",
		KeyOpenOutputFolder:   "Open Output Folder",
		KeyDropHint:           "Drop an image or browse",
		KeyConversionStarted:  "Conversion started",
		KeyConversionComplete: "Conversion complete!",
		KeyConversionPartial:  "Finished with errors, see log",
		KeyConversionFailed:   "Conversion failed",
		KeyUnknownConverter:   "Unrecognized converter; it will be called with the image path only",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyDone:               "Done",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "DayZ Экспортер Текстур",
		KeyConvert:            "Конвертировать",
		KeyReset:              "Сброс",
		KeyBrowse:             "Обзор",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyResolution:         "Разрешение",
		KeyBaseName:           "Базовое имя файла",
		KeySelectOutput:       "Выбрать папку вывода",
		KeySelectConverter:    "Выбрать конвертер",
		KeyOpenOutputFolder:   "Открыть папку вывода",
		KeyDropHint:           "Перетащите изображение или выберите",
		KeyConversionStarted:  "Конвертация начата",
		KeyConversionComplete: "Конвертация завершена!",
		KeyConversionPartial:  "Завершено с ошибками, см. журнал",
		KeyConversionFailed:   "Конвертация не удалась",
		KeyUnknownConverter:   "Неизвестный конвертер; он будет вызван только с путём изображения",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyDone:               "Готово",
	}
}
