package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/favicon-maker/internal/compress"
	"github.com/ytget/favicon-maker/internal/model"
)

// Export defaults
const (
	DefaultTimeout = 30 * time.Second
	TaskIDPrefix   = "export-"
)

// ErrNoSource is logged when an export is requested before any upload
var ErrNoSource = errors.New("no source image loaded")

// Service handles export operations
type Service struct {
	source   SourceProvider
	archiver compress.Archiver
	sink     Sink
	specs    []model.ExportSpec

	timeout    time.Duration
	tasks      map[string]*model.ExportTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.ExportTask) // callback for UI updates

	render renderFunc
}

// NewService creates a new export service. A non-positive timeout selects
// DefaultTimeout.
func NewService(source SourceProvider, archiver compress.Archiver, sink Sink, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		source:   source,
		archiver: archiver,
		sink:     sink,
		specs:    model.DefaultExportSpecs(),
		timeout:  timeout,
		tasks:    make(map[string]*model.ExportTask),
		render:   Render,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// SetTimeout bounds every subsequent export
func (s *Service) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s.tasksMutex.Lock()
	s.timeout = timeout
	s.tasksMutex.Unlock()
}

// ExportSingle renders one spec and delivers it under spec.OutputName.
// Without a loaded source it does nothing and returns (nil, nil).
func (s *Service) ExportSingle(ctx context.Context, spec model.ExportSpec) (*model.ExportTask, error) {
	src, ok := s.source.Source()
	if !ok {
		log.Printf("Export skipped: name=%s reason=%v", spec.OutputName, ErrNoSource)
		return nil, nil
	}

	task := s.newTask(model.ExportKindSingle, spec.OutputName, spec.Format.MIMEType())
	err := s.run(ctx, task, func(ctx context.Context) (model.EncodedAsset, error) {
		return s.render(ctx, src.Image, spec)
	})
	return s.snapshot(task), err
}

// ExportAll renders every spec and delivers them bundled as favicons.zip.
// Without a loaded source it does nothing and returns (nil, nil).
func (s *Service) ExportAll(ctx context.Context) (*model.ExportTask, error) {
	src, ok := s.source.Source()
	if !ok {
		log.Printf("Export skipped: name=%s reason=%v", model.ArchiveName, ErrNoSource)
		return nil, nil
	}

	task := s.newTask(model.ExportKindBundle, model.ArchiveName, model.ArchiveMIMEType)
	err := s.run(ctx, task, func(ctx context.Context) (model.EncodedAsset, error) {
		assets, err := renderAll(ctx, src.Image, s.specs, s.render)
		if err != nil {
			return model.EncodedAsset{}, err
		}
		data, err := s.archiver.Build(ctx, assets)
		if err != nil {
			return model.EncodedAsset{}, err
		}
		return compress.ArchiveAsset(data), nil
	})
	return s.snapshot(task), err
}

// GetTask returns a copy of the task with the given ID
func (s *Service) GetTask(id string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	snapshot := *task
	return &snapshot, true
}

// GetAllTasks returns copies of all tasks, oldest first
func (s *Service) GetAllTasks() []*model.ExportTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ExportTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		snapshot := *task
		tasks = append(tasks, &snapshot)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].StartedAt.Equal(tasks[j].StartedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

type buildResult struct {
	asset model.EncodedAsset
	err   error
}

// run executes build under the export deadline and delivers its result.
// build runs in its own goroutine so a pipeline that never returns still
// releases the caller once the deadline passes.
func (s *Service) run(ctx context.Context, task *model.ExportTask, build func(context.Context) (model.EncodedAsset, error)) error {
	s.tasksMutex.RLock()
	timeout := s.timeout
	s.tasksMutex.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s.setStatus(task, model.TaskStatusExporting)

	done := make(chan buildResult, 1)
	go func() {
		asset, err := build(ctx)
		done <- buildResult{asset: asset, err: err}
	}()

	var res buildResult
	select {
	case <-ctx.Done():
		res.err = ctx.Err()
	case res = <-done:
	}

	if res.err != nil {
		if errors.Is(res.err, context.DeadlineExceeded) {
			res.err = fmt.Errorf("export %s timed out after %s: %w", task.Name, timeout, res.err)
		}
		s.fail(task, res.err)
		return res.err
	}

	path, err := s.sink.Deliver(ctx, res.asset)
	if err != nil {
		err = fmt.Errorf("failed to deliver %s: %w", res.asset.Name, err)
		s.fail(task, err)
		return err
	}

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	task.OutputPath = path
	task.Size = res.asset.Size()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	log.Printf("Export completed: id=%s name=%s size=%d path=%s", task.ID, task.Name, task.Size, path)
	s.notifyUpdate(task)
	return nil
}

// newTask registers a pending task
func (s *Service) newTask(kind model.ExportKind, name, mimeType string) *model.ExportTask {
	task := &model.ExportTask{
		ID:        generateTaskID(),
		Kind:      kind,
		Name:      name,
		MIMEType:  mimeType,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	return task
}

func (s *Service) setStatus(task *model.ExportTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// fail marks task as failed
func (s *Service) fail(task *model.ExportTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	log.Printf("Export failed: id=%s name=%s err=%v", task.ID, task.Name, err)
	s.notifyUpdate(task)
}

// snapshot copies task under the lock. Registered tasks are only mutated
// while tasksMutex is held, so callers never see the live value.
func (s *Service) snapshot(task *model.ExportTask) *model.ExportTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	c := *task
	return &c
}

// notifyUpdate calls the update callback, if set, with a copy of task
func (s *Service) notifyUpdate(task *model.ExportTask) {
	s.tasksMutex.RLock()
	onUpdate := s.onUpdate
	snapshot := *task
	s.tasksMutex.RUnlock()

	if onUpdate != nil {
		onUpdate(&snapshot)
	}
}

// generateTaskID generates a time-ordered unique task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
