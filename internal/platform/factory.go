package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/introspection"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/blob"
	"github.com/aretw0/jot/pkg/core"
)

// ErrWatchUnsupported is returned by Vault.Watch for non-filesystem backends.
var ErrWatchUnsupported = errors.New("storage backend does not support watching")

// Vault is a Store wired to its persistence stack.
type Vault struct {
	Root        string // Resolved vault root; empty for non-fs backends.
	DataDir     string // Root/.jot; empty for non-fs backends.
	Store       *core.Store
	Persistence *blob.Adapter
	KeyValue    core.KeyValue
	logger      *slog.Logger
}

// Open wires a Vault rooted at root.
//
//	v, err := platform.Open(ctx, ".", platform.WithFormat("yaml"))
//
// With the fs adapter the notes live in root/.jot/<key>.<ext> and
// root/.jot/config.yaml, when present, provides defaults for unset options.
func Open(ctx context.Context, root string, opts ...Option) (*Vault, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	v := &Vault{logger: logger}
	if o.keyValue == nil && o.adapter == "fs" {
		v.Root = resolveFSRoot(root, o, logger)
		v.DataDir = filepath.Join(v.Root, o.systemDir())

		fileCfg, err := LoadConfig(v.DataDir)
		if err != nil {
			return nil, err
		}
		fileCfg.apply(o)
	}

	format, _ := o.config["format"].(string)
	codec, err := blob.CodecByName(format)
	if err != nil {
		return nil, err
	}

	kv, err := openKeyValue(ctx, v.DataDir, codec, o, logger)
	if err != nil {
		return nil, err
	}

	key, _ := o.config["key"].(string)
	eventBuffer, _ := o.config["event_buffer"].(int)

	v.KeyValue = kv
	v.Persistence = blob.New(blob.Config{
		KeyValue: kv,
		Key:      key,
		Codec:    codec,
		Logger:   logger,
	})
	v.Store = core.NewStore(ctx, v.Persistence,
		core.WithLogger(logger),
		core.WithEventBuffer(eventBuffer),
		core.WithClock(o.clock),
		core.WithIDGenerator(o.idGen),
	)

	logger.Debug("vault opened", "root", v.Root, "key", v.Persistence.Key(), "format", codec.Name(), "notes", v.Store.Len())
	return v, nil
}

// New opens a vault and returns its Store.
func New(root string, opts ...Option) (*core.Store, error) {
	v, err := Open(context.Background(), root, opts...)
	if err != nil {
		return nil, err
	}
	return v.Store, nil
}

// Init creates the data directory for a vault at root and writes cfg as its
// config file unless one already exists. It returns the data directory.
func Init(root string, cfg FileConfig, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if cfg.Format != "" {
		if _, err := blob.CodecByName(cfg.Format); err != nil {
			return "", err
		}
	}

	dataDir := filepath.Join(resolveFSRoot(root, o, logger), o.systemDir())
	if _, err := os.Stat(filepath.Join(dataDir, ConfigFileName)); err == nil {
		logger.Debug("config already present", "dir", dataDir)
		return dataDir, nil
	}

	if err := WriteConfig(dataDir, cfg); err != nil {
		return "", err
	}
	return dataDir, nil
}

// Watch reloads the store whenever another process rewrites the blob.
// It returns once the watcher is running; watching stops with ctx.
func (v *Vault) Watch(ctx context.Context) error {
	fsStore, ok := v.KeyValue.(*fs.Store)
	if !ok {
		return ErrWatchUnsupported
	}

	w, err := fs.NewWatcher(fsStore, v.Persistence.Key(), v.logger)
	if err != nil {
		return err
	}
	return w.Start(ctx, func() {
		v.Store.Reload(ctx)
	})
}

// VaultState exposes the state of every wired component.
type VaultState struct {
	Root        string `json:"root,omitempty"`
	DataDir     string `json:"data_dir,omitempty"`
	Store       any    `json:"store"`
	Persistence any    `json:"persistence"`
	Backend     any    `json:"backend"`
}

// State implements introspection.Introspectable.
func (v *Vault) State() any {
	state := VaultState{
		Root:        v.Root,
		DataDir:     v.DataDir,
		Store:       v.Store.State(),
		Persistence: v.Persistence.State(),
	}
	switch b := v.KeyValue.(type) {
	case introspection.Introspectable:
		state.Backend = b.State()
	case introspection.Component:
		state.Backend = b.ComponentType()
	}
	return state
}

// ComponentType implements introspection.Component.
func (v *Vault) ComponentType() string {
	return "vault"
}

var _ introspection.Introspectable = (*Vault)(nil)
var _ introspection.Component = (*Vault)(nil)

func openKeyValue(ctx context.Context, dataDir string, codec blob.Codec, o *options, logger *slog.Logger) (core.KeyValue, error) {
	if o.keyValue != nil {
		return o.keyValue, nil
	}

	switch o.adapter {
	case "memory":
		return memory.NewStore(), nil
	case "fs":
		mustExist, _ := o.flag("must_exist")
		s := fs.NewStore(fs.Config{
			Dir:       dataDir,
			Extension: codec.Extension(),
			MustExist: mustExist,
			Logger:    logger,
		})
		if err := s.Initialize(ctx); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// resolveFSRoot applies the dev-run sandbox rules to root.
func resolveFSRoot(root string, o *options, logger *slog.Logger) string {
	tempDir, _ := o.flag("temp_dir")
	devSafety := true
	if val, ok := o.flag("dev_safety"); ok {
		devSafety = val
	}

	useTemp := tempDir || (devSafety && IsDevRun())
	resolved := ResolveRoot(root, useTemp)

	if useTemp && filepath.Clean(resolved) != filepath.Clean(root) {
		logger.Warn("running in SAFE MODE (dev/test)", "original_path", root, "resolved_path", resolved)
	} else if IsDevRun() && !devSafety {
		logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
	}
	return resolved
}
