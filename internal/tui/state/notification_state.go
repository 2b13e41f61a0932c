package state

// NotificationLevel says what a title bar message reports
type NotificationLevel int

const (
	LevelInfo      NotificationLevel = iota // card or column added, field edited
	LevelMoved                              // a drop landed a card somewhere new
	LevelDiscarded                          // a card went into the discard target
	LevelError                              // an edit or drop was refused
)

// Notification is one title bar message
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState keeps the messages raised since the last clear. Only the
// newest one is shown.
type NotificationState struct {
	notifications []Notification
}

func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add records a message at level
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
}

// Clear drops every message
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// Latest returns the newest message
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
