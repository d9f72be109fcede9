package netconfd

import (
	"context"
	"path/filepath"

	"github.com/dogeorg/netconfd/pkg/utils"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// ConfigWatcher reloads the config file when it changes on disk and hands
// the result to OnChange. The base config is what the file is applied on
// top of, so command line flags keep winning.
type ConfigWatcher struct {
	path     string
	base     ServerConfig
	watcher  *fsnotify.Watcher
	OnChange func(ServerConfig)
	Log      logrus.FieldLogger
}

func NewConfigWatcher(path string, base ServerConfig, onChange func(ServerConfig), log logrus.FieldLogger) (*ConfigWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors tend to replace files rather than write them, so watch the
	// directory and filter by name.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &ConfigWatcher{
		path:     filepath.Clean(path),
		base:     base,
		watcher:  fsw,
		OnChange: onChange,
		Log:      log,
	}, nil
}

// Run blocks until ctx is done.
func (t *ConfigWatcher) Run(ctx context.Context) {
	log := utils.OrStandardLogger(t.Log).WithField("config", t.path)
	defer t.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != t.path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			config := t.base
			if err := config.LoadFromFile(t.path); err != nil {
				log.Warnf("Ignoring config change: %v", err)
				continue
			}
			log.Info("Config file changed, reloading")
			t.OnChange(config)
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("watcher error: %v", err)
		}
	}
}
