package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ChannelBridge adapts domain.Notifier and domain.Navigator to a channel for Bubble Tea.
type ChannelBridge struct {
	ch chan tea.Msg
}

// NewChannelBridge creates a bridge with room for size pending messages.
func NewChannelBridge(size int) *ChannelBridge {
	return &ChannelBridge{ch: make(chan tea.Msg, size)}
}

// Notify forwards a user-visible notice and waits for room if the buffer is full.
// Notices come from command goroutines, never from Update, so the pending Listen drains them.
func (b *ChannelBridge) Notify(title, message string) {
	b.ch <- NoticeMsg{Title: title, Message: message}
}

// Navigate forwards a named-route transition.
// It runs inside Update and must not block, so a full buffer drops the transition
// and reports it.
func (b *ChannelBridge) Navigate(route string) error {
	select {
	case b.ch <- NavigateMsg{Route: route}:
		return nil
	default:
		return fmt.Errorf("navigation to %s dropped: bridge full", route)
	}
}

// Listen waits for the next bridged message.
func (b *ChannelBridge) Listen() tea.Cmd {
	return func() tea.Msg {
		return <-b.ch
	}
}
