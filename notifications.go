package finboard

import (
	"fmt"
	"slices"
	"strings"
)

// NotificationType classifies a notification for display.
type NotificationType string

const (
	Warning NotificationType = "warning"
	Info    NotificationType = "info"
	Success NotificationType = "success"
	Alert   NotificationType = "alert"
)

func ParseNotificationType(s string) (NotificationType, error) {
	switch t := NotificationType(strings.ToLower(strings.TrimSpace(s))); t {
	case Warning, Info, Success, Alert:
		return t, nil
	default:
		return "", fmt.Errorf("unknown notification type %q", s)
	}
}

// Notification is one entry of the notification panel.
type Notification struct {
	ID      string
	Type    NotificationType
	Title   string
	Message string
	Date    Date
	IsRead  bool
}

// NotificationCenter owns the notification list. All updates go
// through Update or MarkRead which replace the slice wholesale;
// readers get copies, never a shared mutable reference.
type NotificationCenter struct {
	notifications []Notification
}

// NewNotificationCenter creates a center with an initial list.
func NewNotificationCenter(initial []Notification) *NotificationCenter {
	return &NotificationCenter{notifications: slices.Clone(initial)}
}

// All returns a copy of the current notifications in order.
func (c *NotificationCenter) All() []Notification {
	return slices.Clone(c.notifications)
}

// UnreadCount returns the number of unread notifications.
func (c *NotificationCenter) UnreadCount() int {
	n := 0
	for _, nt := range c.notifications {
		if !nt.IsRead {
			n++
		}
	}
	return n
}

// Update replaces the whole notification list.
func (c *NotificationCenter) Update(notifications []Notification) {
	c.notifications = slices.Clone(notifications)
}

// Push prepends a notification.
func (c *NotificationCenter) Push(n Notification) {
	next := make([]Notification, 0, len(c.notifications)+1)
	next = append(next, n)
	next = append(next, c.notifications...)
	c.notifications = next
}

// MarkRead marks one notification as read. Returns ErrNotFound when
// the id is unknown.
func (c *NotificationCenter) MarkRead(id string) error {
	i := slices.IndexFunc(c.notifications, func(n Notification) bool { return n.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	next := slices.Clone(c.notifications)
	next[i].IsRead = true
	c.notifications = next
	return nil
}

// MarkAllRead marks every notification as read.
func (c *NotificationCenter) MarkAllRead() {
	next := slices.Clone(c.notifications)
	for i := range next {
		next[i].IsRead = true
	}
	c.notifications = next
}
