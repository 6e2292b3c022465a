// Package noir is the composition root for a local-first journal: one
// markdown note per calendar day, spaced-repetition style review reminders,
// pasted images and a small settings document, all kept as plain files in a
// per-user data directory.
//
// It connects the core logic (pkg/core) with the filesystem adapters
// (pkg/adapters/fs) using the hexagonal layout of ports and adapters.
//
// Data directory layout:
//
//	<data dir>/
//	  notes/2024-05-01.md   note content, verbatim
//	  images/<uuid>.png     pasted images
//	  reminders.json        {"<note date>": "<review date>"}
//	  settings.json         user settings
//
// Usage:
//
//	dir, _ := noir.DefaultDataDir()
//	svc, err := noir.New(dir, noir.WithLogger(logger))
//
//	// Save today's note and review it again in a week
//	err = svc.SaveNote(ctx, svc.Today(), "# Trip\nPacked bags")
//	_, err = svc.SetReminder(ctx, svc.Today(), 7)
//
//	due, err := svc.DueReminders(ctx)
package noir
