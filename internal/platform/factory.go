package platform

import (
	"context"

	"github.com/aretw0/noir/pkg/adapters/fs"
	"github.com/aretw0/noir/pkg/core"
)

// New wires a Service over the data directory at path.
//
//	svc, err := noir.New(dataDir, noir.WithLogger(logger))
//
// Stores injected through options replace the filesystem defaults one by one.
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	root := resolveRoot(path, o)
	cfg := fs.Config{
		Root:         root,
		MustExist:    o.mustExist,
		ReadOnly:     o.readOnly,
		Logger:       o.logger,
		EventBuffer:  o.eventBuffer,
		ErrorHandler: o.watchErrors,
	}

	if o.notes == nil {
		o.notes = fs.NewNoteStore(cfg)
	}
	if o.reminders == nil {
		o.reminders = fs.NewLedger(cfg)
	}
	if o.images == nil {
		o.images = fs.NewImageStore(cfg)
	}
	if o.settings == nil {
		o.settings = fs.NewSettingsDocument(cfg)
	}

	ctx := context.Background()
	for _, store := range []any{o.notes, o.reminders, o.images, o.settings} {
		if initializer, ok := store.(core.Initializer); ok {
			if err := initializer.Initialize(ctx); err != nil {
				return nil, err
			}
		}
	}

	return core.NewService(core.ServiceConfig{
		Notes:     o.notes,
		Reminders: o.reminders,
		Images:    o.images,
		Settings:  o.settings,
		Captures:  core.NewCaptureBus(o.captureBuffer, o.clock),
		Clock:     o.clock,
		Logger:    o.logger,
	}), nil
}

// resolveRoot applies the dev sandbox rules to the requested data directory.
func resolveRoot(path string, o *options) string {
	// Read-only runs cannot damage anything, so they see the real path.
	bypassSafety := o.readOnly || !o.devSafety
	devRun := IsDevRun()
	useTemp := o.forceTemp || (devRun && !bypassSafety)
	resolved := ResolveDataDir(path, useTemp)

	if o.logger != nil {
		switch {
		case useTemp && resolved != path:
			o.logger.Warn("running in SAFE MODE (dev sandbox)", "original_path", path, "resolved_path", resolved)
		case devRun && bypassSafety && !o.readOnly:
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
		}
	}
	return resolved
}
