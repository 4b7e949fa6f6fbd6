package state

import "time"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (blue)
	LevelInfo NotificationLevel = iota
	// LevelSuccess represents completed actions (green)
	LevelSuccess
	// LevelError represents errors and destructive actions (red)
	LevelError
)

// DefaultNotificationTTL is how long a notification stays on screen.
const DefaultNotificationTTL = 3 * time.Second

// Notification represents a single notification message with a severity level.
type Notification struct {
	ID      int
	Level   NotificationLevel
	Icon    string
	Message string
}

// NotificationState manages notification display state.
type NotificationState struct {
	// notifications contains the list of current notifications to display
	notifications []Notification
	// nextID numbers notifications so expiry only removes the intended one
	nextID int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add adds a new notification and returns its id.
func (s *NotificationState) Add(level NotificationLevel, icon, message string) int {
	s.nextID++
	s.notifications = append(s.notifications, Notification{
		ID:      s.nextID,
		Level:   level,
		Icon:    icon,
		Message: message,
	})
	return s.nextID
}

// Remove drops the notification with id, if it is still shown.
func (s *NotificationState) Remove(id int) {
	filtered := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// LastID returns the id of the most recently added notification.
func (s *NotificationState) LastID() int {
	return s.nextID
}
