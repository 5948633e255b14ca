package dyntype

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the time a preference file must stay quiet before it is reloaded.
const DefaultDebounce = 100 * time.Millisecond

// FileEnvironment is an Environment backed by a YAML preference file.
// The file is watched for changes and the level follows its content.
type FileEnvironment struct {
	path      string
	level     atomic.Int64
	watcher   *fsnotify.Watcher
	debounce  *debouncer
	onChange  func(Level)
	reloads   chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

var _ Environment = (*FileEnvironment)(nil)

type fileOptions struct {
	debounce time.Duration
	onChange func(Level)
}

// FileOption configures a FileEnvironment.
type FileOption func(*fileOptions)

// WithDebounce sets the quiet period applied to bursts of file events.
// A non-positive duration selects DefaultDebounce.
func WithDebounce(d time.Duration) FileOption {
	return func(o *fileOptions) {
		o.debounce = d
	}
}

// OnChange registers fn to be called with the new level each time the
// level read from the file changes. fn is called from the watcher goroutine,
// one change at a time and never after Close returns.
func OnChange(fn func(Level)) FileOption {
	return func(o *fileOptions) {
		o.onChange = fn
	}
}

// NewFileEnvironment reads the preference file at path and starts watching it.
// A missing file is not an error: the default level is used until the file appears.
// Call Close to stop watching.
func NewFileEnvironment(path string, opts ...FileOption) (*FileEnvironment, error) {
	o := fileOptions{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&o)
	}
	if o.debounce <= 0 {
		o.debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve the preference path: %w", err)
	}

	e := &FileEnvironment{
		path:     abs,
		onChange: o.onChange,
		reloads:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	e.level.Store(int64(DefaultLevel))

	lvl, err := readPreferenceFile(abs)
	switch {
	case err == nil:
		e.level.Store(int64(lvl))
	case errors.Is(err, fs.ErrNotExist):
		Logger().Warn("preference file not found, using the default level", "path", abs, "level", DefaultLevel)
	default:
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create the file watcher: %w", err)
	}
	// The directory is watched since editors usually replace the file instead of writing to it.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", filepath.Dir(abs), err)
	}
	e.watcher = w
	e.debounce = newDebouncer(o.debounce)

	e.wg.Add(1)
	go e.watch()

	return e, nil
}

// Level implements Environment.
func (e *FileEnvironment) Level() Level {
	return Level(e.level.Load())
}

// Path returns the absolute path of the watched preference file.
func (e *FileEnvironment) Path() string {
	return e.path
}

// Close stops watching the preference file. The last level read stays available.
func (e *FileEnvironment) Close() error {
	var err error
	e.closeOnce.Do(func() {
		close(e.done)
		e.debounce.cancel()
		err = e.watcher.Close()
		e.wg.Wait()
	})
	return err
}

func (e *FileEnvironment) watch() {
	defer e.wg.Done()

	for {
		select {
		case <-e.done:
			return
		case ev, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != e.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				e.debounce.trigger(e.requestReload)
			}
		case <-e.reloads:
			e.reload()
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			Logger().Warn("preference watcher error", "path", e.path, "err", err)
		}
	}
}

// requestReload schedules a reload on the watch goroutine. Requests
// arriving while one is pending are merged.
func (e *FileEnvironment) requestReload() {
	select {
	case e.reloads <- struct{}{}:
	default:
	}
}

// reload reads the file again. On failure the previous level is kept.
func (e *FileEnvironment) reload() {
	lvl, err := readPreferenceFile(e.path)
	if err != nil {
		Logger().Warn("unable to reload preference, keeping the current level",
			"path", e.path, "level", e.Level(), "err", err)
		return
	}
	Logger().Debug("preference reloaded", "path", e.path, "level", lvl)

	// Only the watch goroutine stores the level, so reloads apply in order.
	old := Level(e.level.Swap(int64(lvl)))
	if old == lvl {
		return
	}
	Logger().Info("text size level changed", "from", old, "to", lvl)
	if e.onChange != nil {
		e.onChange(lvl)
	}
}

func readPreferenceFile(path string) (Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	p, err := ReadPreference(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return p.TextSize, nil
}

// debouncer coalesces rapid triggers into a single call of the last callback.
type debouncer struct {
	mu       sync.Mutex
	duration time.Duration
	timer    *time.Timer
	seq      uint64
}

func newDebouncer(d time.Duration) *debouncer {
	return &debouncer{duration: d}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A newer trigger or a cancel happened while the timer was firing.
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
