package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/favicon-maker/internal/model"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// statusText returns the status label text and importance for status
func statusText(status model.TaskStatus) (string, widget.Importance) {
	switch status {
	case model.TaskStatusError:
		return IconError + " " + status.String(), widget.DangerImportance
	case model.TaskStatusCompleted:
		return IconDone + " " + status.String(), widget.SuccessImportance
	case model.TaskStatusExporting:
		return IconWorking + " " + status.String(), widget.HighImportance
	case model.TaskStatusPending:
		return IconPending + " " + status.String(), widget.MediumImportance
	default:
		return status.String(), widget.MediumImportance
	}
}

// hasDeliveredFile reports whether the task points at a file on disk
func hasDeliveredFile(task *model.ExportTask) bool {
	return task != nil && task.Status == model.TaskStatusCompleted && task.OutputPath != ""
}

// ExportRow represents a compact export history row widget
type ExportRow struct {
	widget.BaseWidget

	task         *model.ExportTask
	localization *Localization

	// UI components
	titleLabel    *widget.Label
	statusLabel   *widget.Label
	sizeLabel     *widget.Label
	durationLabel *widget.Label

	// Action buttons
	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open file with default app
	copyBtn   *widget.Button

	// Callbacks
	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
}

// NewExportRow creates a new export row widget
func NewExportRow(task *model.ExportTask, localization *Localization) *ExportRow {
	if task == nil {
		task = &model.ExportTask{ID: "placeholder", Status: model.TaskStatusPending}
	}

	er := &ExportRow{
		task:         task,
		localization: localization,
	}
	er.ExtendBaseWidget(er)
	er.createUI()
	er.updateFromTask()
	return er
}

// SetCallbacks sets the action callbacks
func (er *ExportRow) SetCallbacks(
	onReveal func(filePath string),
	onOpen func(filePath string),
	onCopyPath func(filePath string),
) {
	er.onReveal = onReveal
	er.onOpen = onOpen
	er.onCopyPath = onCopyPath
}

// UpdateTask updates the row with new task data
func (er *ExportRow) UpdateTask(task *model.ExportTask) {
	if task == nil {
		log.Printf("Warning: UpdateTask called with nil task for row %s", er.task.ID)
		return
	}

	er.task = task
	er.updateFromTask()
	er.Refresh()
}

// createUI creates the UI components
func (er *ExportRow) createUI() {
	er.titleLabel = widget.NewLabel("")
	er.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	er.titleLabel.Truncation = fyne.TextTruncateEllipsis

	er.statusLabel = widget.NewLabel("")
	er.statusLabel.Alignment = fyne.TextAlignTrailing
	er.sizeLabel = widget.NewLabel("")
	er.sizeLabel.Alignment = fyne.TextAlignTrailing
	er.durationLabel = widget.NewLabel("")
	er.durationLabel.Alignment = fyne.TextAlignTrailing
	er.durationLabel.TextStyle = fyne.TextStyle{Monospace: true}

	er.revealBtn = widget.NewButton(er.localization.GetText(KeyReveal), func() {
		er.withPath(er.onReveal)
	})
	er.openBtn = widget.NewButton(er.localization.GetText(KeyOpen), func() {
		er.withPath(er.onOpen)
	})
	er.copyBtn = widget.NewButton(er.localization.GetText(KeyCopyPath), func() {
		er.withPath(er.onCopyPath)
	})
}

// withPath calls fn with the current task's output path when it is available
func (er *ExportRow) withPath(fn func(string)) {
	// Read the task at click time; rows are recycled by the list
	current := er.task
	if fn == nil {
		log.Printf("Row action callback is nil for task %s", current.ID)
		return
	}
	if !hasDeliveredFile(current) {
		widget.ShowPopUp(widget.NewLabel(er.localization.GetText(KeyPathUnavailable)), fyne.CurrentApp().Driver().CanvasForObject(er))
		return
	}
	fn(current.OutputPath)
}

// updateFromTask updates UI components based on task state
func (er *ExportRow) updateFromTask() {
	er.titleLabel.SetText(er.task.GetDisplayTitle())

	text, importance := statusText(er.task.Status)
	er.statusLabel.Importance = importance
	er.statusLabel.SetText(text)

	if er.task.Status == model.TaskStatusCompleted {
		er.sizeLabel.SetText(formatFileSize(er.task.Size))
	} else {
		er.sizeLabel.SetText(DashPlaceholder)
	}
	er.durationLabel.SetText(er.task.GetDurationString())

	if er.task.Status == model.TaskStatusError && er.task.LastError != "" {
		er.titleLabel.SetText(er.task.GetDisplayTitle() + MiddleDotSeparator + er.task.LastError)
	}

	er.updateButtons()
}

// updateButtons enables file actions only once the export reached disk
func (er *ExportRow) updateButtons() {
	for _, btn := range []*widget.Button{er.revealBtn, er.openBtn, er.copyBtn} {
		if hasDeliveredFile(er.task) {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

// CreateRenderer creates the widget renderer
func (er *ExportRow) CreateRenderer() fyne.WidgetRenderer {
	return &exportRowRenderer{row: er}
}

// exportRowRenderer renders the export row widget
type exportRowRenderer struct {
	row    *ExportRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *exportRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *exportRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *exportRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *exportRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *exportRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *exportRowRenderer) createLayout() {
	er := r.row

	// Fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewHBox(
		fixedWidth(SizeLabelWidth, er.sizeLabel),
		fixedWidth(DurationLabelWidth, er.durationLabel),
		fixedWidth(StatusLabelWidth, er.statusLabel),
	)
	actions := container.NewHBox(er.revealBtn, er.openBtn, er.copyBtn)

	// Actions pinned to the right edge, title takes the rest
	rightCluster := container.NewBorder(nil, nil, nil, actions, info)
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, er.titleLabel)

	r.layout = container.NewVBox(mainContent, widget.NewSeparator())
	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
}
