package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Today          string `json:"today"`
	ImagesPath     string `json:"images_path"`
	NotesType      string `json:"notes_type"`
	RemindersType  string `json:"reminders_type"`
	ImagesType     string `json:"images_type"`
	SettingsType   string `json:"settings_type"`
	PendingCapture int    `json:"pending_capture"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	return ServiceState{
		Today:          s.Today(),
		ImagesPath:     s.images.Root(),
		NotesType:      componentType(s.notes),
		RemindersType:  componentType(s.reminders),
		ImagesType:     componentType(s.images),
		SettingsType:   componentType(s.settings),
		PendingCapture: s.captures.Len(),
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

func componentType(v any) string {
	if v == nil {
		return "none"
	}
	if comp, ok := v.(introspection.Component); ok {
		return comp.ComponentType()
	}
	return "custom"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
