package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// DefaultSystemDir is the hidden directory holding a vault's data and config.
const DefaultSystemDir = ".jot"

// options holds the internal configuration for the jot vault.
type options struct {
	keyValue core.KeyValue
	logger   *slog.Logger
	adapter  string
	clock    func() time.Time
	idGen    func() string
	config   map[string]interface{}
}

// Option defines a functional option for configuring jot.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		keyValue: nil,
		logger:   nil,
		adapter:  "fs",
		config:   make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the vault and everything it wires.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithKeyValue allows injecting a custom storage backend.
// If provided, the adapter selected by WithAdapter is skipped.
func WithKeyValue(kv core.KeyValue) Option {
	return func(o *options) {
		o.keyValue = kv
	}
}

// WithAdapter selects the storage backend by name ("fs" or "memory").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithKey sets the key the collection is stored under. Defaults to "notes".
func WithKey(key string) Option {
	return func(o *options) {
		o.config["key"] = key
	}
}

// WithFormat selects the blob format ("json" or "yaml"). Defaults to "json".
func WithFormat(format string) Option {
	return func(o *options) {
		o.config["format"] = format
	}
}

// WithEventBuffer allows specifying the size of the store's event buffers.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithSystemDir allows specifying the hidden directory name.
// Defaults to ".jot".
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.config["system_dir"] = name
	}
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run`.
// By default (true) such runs are redirected to a temporary directory.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

// WithClock overrides the time source for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithIDGenerator overrides how note ids are produced.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) {
		o.idGen = gen
	}
}

func (o *options) systemDir() string {
	if dir, _ := o.config["system_dir"].(string); dir != "" {
		return dir
	}
	return DefaultSystemDir
}

func (o *options) flag(name string) (value, set bool) {
	value, set = o.config[name].(bool)
	return value, set
}
