// IRManager loads the workflow IR document the CLI unrolls, and can watch
// it on disk for changes so `sirocco watch` re-unrolls on every save.
package core

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/goccy/go-yaml"
)

// IRManager centralizes IR document loading and hot-reload watching. It
// deliberately does none of the front-end's schema validation (§1): it
// only parses YAML into the core.IR struct tree, applies ShallowMergeRoot
// to its task templates, and hands it to the caller, which is expected to
// pass it straight to workflow.Build.
type IRManager struct {
	path   string
	logger *Logger

	watcher  *fsnotify.Watcher
	stopChan chan struct{}

	mu  sync.RWMutex
	ir  IR
}

// NewIRManager creates a manager for the IR document at path.
func NewIRManager(path string) *IRManager {
	return &IRManager{
		path:     path,
		logger:   NewDefaultLogger(),
		stopChan: make(chan struct{}),
	}
}

// Load reads and parses the IR document.
func (m *IRManager) Load() (IR, error) {
	bts, err := os.ReadFile(m.path)
	if err != nil {
		return IR{}, fmt.Errorf("read workflow file: %w", err)
	}

	var doc IR
	if err := yaml.Unmarshal(bts, &doc); err != nil {
		return IR{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	doc.Tasks = ShallowMergeRoot(doc.Tasks)

	m.mu.Lock()
	m.ir = doc
	m.mu.Unlock()

	return doc, nil
}

// Current returns the most recently loaded IR.
func (m *IRManager) Current() IR {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ir
}

// ReloadEvent is delivered to the Watch callback on every reload attempt.
type ReloadEvent struct {
	IR    IR
	Error error
}

// Watch starts an fsnotify watcher on the IR file and invokes callback
// with a freshly loaded IR every time the file is written. It blocks until
// Stop is called or the watcher errors out irrecoverably.
func (m *IRManager) Watch(callback func(ReloadEvent)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	m.watcher = watcher
	defer watcher.Close()

	if err := watcher.Add(m.path); err != nil {
		return fmt.Errorf("watch workflow file %q: %w", m.path, err)
	}

	m.logger.Info("watching %s for changes", m.path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) {
				m.logger.Info("workflow file changed: %s", event.Name)
				doc, err := m.Load()
				callback(ReloadEvent{IR: doc, Error: err})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.logger.Error("file watcher error: %v", err)
		case <-m.stopChan:
			return nil
		}
	}
}

// Stop ends a running Watch loop.
func (m *IRManager) Stop() {
	if m.watcher != nil {
		m.stopChan <- struct{}{}
	}
}
