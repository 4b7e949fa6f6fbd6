package labels

import (
	"context"

	"github.com/google/uuid"
	"github.com/thenoetrevino/notely/internal/models"
)

// Store is the persisted label collection the controller mutates.
// Implementations preserve insertion order when listing.
type Store interface {
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
	AddLabel(ctx context.Context, label *models.Label) error
	UpdateLabel(ctx context.Context, id, name string) error
	DeleteLabel(ctx context.Context, id string) error
}

// IDGenerator produces a fresh URL-safe identifier on each call
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a plain function to IDGenerator
type IDGeneratorFunc func() string

// NewID calls f
func (f IDGeneratorFunc) NewID() string {
	return f()
}

// UUIDGenerator returns random UUIDv4 strings
var UUIDGenerator IDGenerator = IDGeneratorFunc(uuid.NewString)

// NotificationStyle hints how a notification should be colored
type NotificationStyle int

const (
	StyleInfo NotificationStyle = iota
	StyleSuccess
	StyleError
)

// Notification is a transient message shown to the user
type Notification struct {
	Message string
	Icon    string
	Style   NotificationStyle
}

// Notifier displays notifications. It is fire-and-forget.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a plain function to Notifier
type NotifierFunc func(Notification)

// Notify calls f
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// Localizer maps a message key to a display string for the current locale
type Localizer interface {
	T(key string, params map[string]any) string
}
