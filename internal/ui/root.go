package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/favicon-maker/internal/config"
	"github.com/ytget/favicon-maker/internal/export"
	"github.com/ytget/favicon-maker/internal/imaging"
	"github.com/ytget/favicon-maker/internal/model"
	"github.com/ytget/favicon-maker/internal/platform"
	"github.com/ytget/favicon-maker/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	session      *session.Session
	exportSvc    export.Exporter
	settings     *config.Settings
	localization *Localization
	specs        []model.ExportSpec

	// Picker shown while no image is loaded
	pickerContainer *fyne.Container
	pickBtn         *widget.Button
	pickHint        *widget.Label

	// Preview and actions shown while an image is loaded
	loadedContainer *fyne.Container
	previewImage    *canvas.Image
	previewLabel    *widget.Label
	sourceLabel     *widget.Label
	specButtons     []*widget.Button
	downloadAllBtn  *widget.Button
	deleteBtn       *widget.Button

	// Export history
	historyLabel *widget.Label
	historyList  *widget.List
	history      []*model.ExportTask
	historyMutex sync.RWMutex

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, sess *session.Session, exportSvc export.Exporter) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure output directory exists
	if err := platform.CreateDirectoryIfNotExists(settings.GetOutputDirectory()); err != nil {
		log.Printf("Failed to ensure output dir: %v", err)
	}

	ui := &RootUI{
		window:       window,
		session:      sess,
		exportSvc:    exportSvc,
		settings:     settings,
		localization: localization,
		specs:        model.DefaultExportSpecs(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(DefaultIconResource())

	ui.exportSvc.SetUpdateCallback(ui.onTaskUpdate)
	ui.session.SetChangeCallback(func(session.State) {
		fyne.Do(ui.refreshSessionView)
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	logo := canvas.NewImageFromResource(DefaultIconResource())
	logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	logo.FillMode = canvas.ImageFillContain

	titleLabel := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	topPanel := container.NewBorder(nil, nil, container.NewHBox(logo, titleLabel), settingsBtn)

	// Picker
	ui.pickBtn = widget.NewButton(IconImage+" "+ui.localization.GetText(KeyChooseImage), ui.onPickImage)
	ui.pickBtn.Importance = widget.HighImportance
	ui.pickHint = widget.NewLabel(ui.localization.GetText(KeyChooseImageHint))
	ui.pickHint.Importance = widget.LowImportance
	ui.pickerContainer = container.NewVBox(ui.pickBtn, ui.pickHint)

	// Preview and download buttons
	ui.previewImage = canvas.NewImageFromImage(nil)
	ui.previewImage.FillMode = canvas.ImageFillContain
	ui.previewImage.ScaleMode = canvas.ImageScalePixels
	ui.previewImage.SetMinSize(fyne.NewSize(PreviewSize, PreviewSize))
	ui.previewLabel = widget.NewLabel(ui.localization.GetText(KeyPreview))
	ui.sourceLabel = widget.NewLabel("")
	ui.sourceLabel.Importance = widget.LowImportance

	buttons := container.NewVBox()
	ui.specButtons = make([]*widget.Button, len(ui.specs))
	for i, spec := range ui.specs {
		btn := widget.NewButton(ui.localization.SpecButtonLabel(spec), func() {
			ui.onExportSpec(spec)
		})
		ui.specButtons[i] = btn
		buttons.Add(btn)
	}
	ui.downloadAllBtn = widget.NewButton(ui.localization.GetText(KeyDownloadAll), ui.onExportAll)
	ui.downloadAllBtn.Importance = widget.HighImportance
	ui.deleteBtn = widget.NewButton(IconDelete+" "+ui.localization.GetText(KeyDelete), ui.onDelete)
	ui.deleteBtn.Importance = widget.DangerImportance
	buttons.Add(ui.downloadAllBtn)
	buttons.Add(ui.deleteBtn)

	previewColumn := container.NewVBox(ui.previewLabel, ui.previewImage, ui.sourceLabel)
	ui.loadedContainer = container.NewBorder(nil, nil, previewColumn, nil, buttons)

	// Notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// History
	ui.historyLabel = widget.NewLabel(ui.localization.GetText(KeyHistory))
	ui.historyLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.historyList = widget.NewList(
		func() int {
			ui.historyMutex.RLock()
			defer ui.historyMutex.RUnlock()
			return len(ui.history)
		},
		func() fyne.CanvasObject { return ui.createExportItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateExportItem(id, obj) },
	)

	top := container.NewVBox(
		topPanel,
		widget.NewSeparator(),
		ui.pickerContainer,
		ui.loadedContainer,
		ui.notificationContainer,
		widget.NewSeparator(),
		ui.historyLabel,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.historyList))
	ui.window.SetOnDropped(ui.onDropped)

	ui.refreshSessionView()
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyChooseImage), ui.onPickImage)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))
	ui.pickBtn.SetText(IconImage + " " + t(KeyChooseImage))
	ui.pickHint.SetText(t(KeyChooseImageHint))
	ui.previewLabel.SetText(t(KeyPreview))
	for i, spec := range ui.specs {
		ui.specButtons[i].SetText(ui.localization.SpecButtonLabel(spec))
	}
	ui.downloadAllBtn.SetText(t(KeyDownloadAll))
	ui.deleteBtn.SetText(IconDelete + " " + t(KeyDelete))
	ui.historyLabel.SetText(t(KeyHistory))
	ui.historyList.Refresh()
}

// refreshSessionView swaps between picker and preview based on session state
func (ui *RootUI) refreshSessionView() {
	src, loaded := ui.session.Source()
	if !loaded {
		ui.previewImage.Image = nil
		ui.previewImage.Refresh()
		ui.sourceLabel.SetText("")
		ui.loadedContainer.Hide()
		ui.pickerContainer.Show()
		return
	}

	ui.previewImage.Image = src.Image
	ui.previewImage.Refresh()
	ui.sourceLabel.SetText(sourceSummary(src, ui.localization))
	ui.pickerContainer.Hide()
	ui.loadedContainer.Show()
}

// sourceSummary describes the loaded image, flagging sources that are not square
func sourceSummary(src *model.SourceImage, l *Localization) string {
	summary := fmt.Sprintf("%s"+MiddleDotSeparator+DimensionsFormat, src.Format, src.Width, src.Height)
	if !src.IsSquare() {
		summary += MiddleDotSeparator + l.GetText(KeyStretched)
	}
	return summary
}

// onPickImage opens a file dialog filtered to supported image types
func (ui *RootUI) onPickImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()

		ui.loadFromReader(reader.URI(), reader)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(imaging.AcceptedExtensions))
	fd.Show()
}

// onDropped loads the first dropped file
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}

	reader, err := storage.Reader(uris[0])
	if err != nil {
		ui.showNotification(ui.localization.GetText(KeyUploadFailed)+": "+err.Error(), false)
		return
	}
	defer reader.Close()

	ui.loadFromReader(uris[0], reader)
}

// loadFromReader reads the picked file and uploads it off the UI goroutine
func (ui *RootUI) loadFromReader(uri fyne.URI, r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		ui.showNotification(ui.localization.GetText(KeyUploadFailed)+": "+err.Error(), false)
		return
	}

	mimeType := uploadMIMEType(uri.MimeType())
	log.Printf("Image picked: name=%s mime=%s size=%d", uri.Name(), mimeType, len(data))
	ui.showNotification(uri.Name(), true)

	go func() {
		_, err := ui.session.Upload(context.Background(), data, mimeType)
		fyne.Do(func() {
			if err != nil {
				ui.showNotification(ui.localization.GetText(KeyUploadFailed)+": "+err.Error(), false)
				dialog.ShowError(err, ui.window)
				return
			}
			ui.showNotification(ui.localization.GetText(KeySourceLoaded)+": "+uri.Name(), false)
		})
	}()
}

// uploadMIMEType keeps a declared image type and drops anything else, so the
// decoder sniffs the content. Extension lookups miss .ico and .bmp on systems
// without a MIME database and fall back to text/plain.
func uploadMIMEType(declared string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(declared)), "image/") {
		return declared
	}
	return ""
}

// onExportSpec exports a single favicon
func (ui *RootUI) onExportSpec(spec model.ExportSpec) {
	ui.runExport(spec.OutputName, func(ctx context.Context) (*model.ExportTask, error) {
		return ui.exportSvc.ExportSingle(ctx, spec)
	})
}

// onExportAll exports the archive with every favicon
func (ui *RootUI) onExportAll() {
	ui.runExport(model.ArchiveName, ui.exportSvc.ExportAll)
}

// runExport runs an export in the background and reports the outcome
func (ui *RootUI) runExport(name string, run func(context.Context) (*model.ExportTask, error)) {
	ui.showNotification(ui.localization.GetText(KeyExportStarted)+": "+name, true)

	go func() {
		task, err := run(context.Background())
		fyne.Do(func() {
			switch {
			case err != nil:
				ui.showNotification(ui.localization.GetText(KeyExportFailed)+": "+err.Error(), false)
				dialog.ShowError(err, ui.window)
			case task == nil:
				ui.showNotification(ui.localization.GetText(KeyNoSource), false)
			default:
				ui.showNotification(ui.localization.GetText(KeyExportCompleted)+": "+task.GetDisplayTitle(), false)
				ui.sendCompletionNotification(task)
				if ui.settings.GetAutoRevealOnComplete() {
					ui.onRevealFile(task.OutputPath)
				}
			}
		})
	}()
}

// onDelete removes the current image
func (ui *RootUI) onDelete() {
	ui.session.Clear()
	ui.showNotification(ui.localization.GetText(KeySourceCleared), false)
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.exportSvc.SetTimeout(ui.settings.GetExportTimeout())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// createExportItem creates a new history row widget
func (ui *RootUI) createExportItem() fyne.CanvasObject {
	row := NewExportRow(nil, ui.localization)
	row.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)
	return row
}

// updateExportItem binds a history row to a task
func (ui *RootUI) updateExportItem(id widget.ListItemID, item fyne.CanvasObject) {
	ui.historyMutex.RLock()
	if id >= len(ui.history) {
		ui.historyMutex.RUnlock()
		return
	}
	task := ui.history[id]
	ui.historyMutex.RUnlock()

	if row, ok := item.(*ExportRow); ok {
		row.UpdateTask(task)
	}
}

// onTaskUpdate handles task updates from the export service
func (ui *RootUI) onTaskUpdate(task *model.ExportTask) {
	log.Printf("Task update received: id=%s status=%s output=%s", task.ID, task.Status, task.OutputPath)

	// Newest first
	tasks := ui.exportSvc.GetAllTasks()
	for i, j := 0, len(tasks)-1; i < j; i, j = i+1, j-1 {
		tasks[i], tasks[j] = tasks[j], tasks[i]
	}

	ui.historyMutex.Lock()
	ui.history = tasks
	ui.historyMutex.Unlock()

	fyne.Do(func() {
		ui.historyList.Refresh()
	})
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPathUnavailable)), ui.window.Canvas())
		return
	}

	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onOpenFile handles opening an exported file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if filePath == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPathUnavailable)), ui.window.Canvas())
		return
	}

	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onCopyPath handles copying file path to clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	if filePath == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPathUnavailable)), ui.window.Canvas())
		return
	}

	fyne.CurrentApp().Clipboard().SetContent(filePath)
	ui.showNotification(ui.localization.GetText(KeyPathCopied), false)
}

// sendCompletionNotification sends a system notification for completed exports
func (ui *RootUI) sendCompletionNotification(task *model.ExportTask) {
	if task.Status != model.TaskStatusCompleted {
		return
	}

	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyExportCompleted),
		Content: task.GetDisplayTitle(),
	})

	ui.showToastNotification(task)
}

// showToastNotification shows an in-app toast notification with action buttons
func (ui *RootUI) showToastNotification(task *model.ExportTask) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyExportCompleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(task.GetDisplayTitle())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
		ui.onRevealFile(task.OutputPath)
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		ui.onOpenFile(task.OutputPath)
	})

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
		container.NewHBox(revealBtn, openBtn),
	)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}
