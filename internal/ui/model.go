// Package ui holds small bubbletea helpers shared by terminal screens.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikload-cli/tikload/style"
)

// NotificationLifetime is how long a notification stays visible.
const NotificationLifetime = 3 * time.Second

// Model shows one short-lived notification next to the last line of a view.
type Model struct {
	notification string
}

// NotificationMsg carries a notification to show.
type NotificationMsg string

// ClearNotificationMsg hides the current notification.
type ClearNotificationMsg struct{}

// Notify returns a command that shows message.
func Notify(message string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(message)
	}
}

func clearAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearNotificationMsg{}
	})
}

// Update handles notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		return clearAfter(NotificationLifetime)
	case ClearNotificationMsg:
		m.notification = ""
	}
	return nil
}

// Notification returns the visible notification, if any.
func (m *Model) Notification() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
