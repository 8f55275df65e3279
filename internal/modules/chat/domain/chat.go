// Package domain defines the support-chat entities: agents, sessions, and
// messages with monotonic delivery status.
package domain

import (
	"fmt"
	"time"
)

var (
	ErrSessionNotFound = fmt.Errorf("chat session not found")
	ErrSessionEnded    = fmt.Errorf("chat session has ended")
	ErrInvalidRating   = fmt.Errorf("satisfaction rating must be between 0 and 5")
)

// AgentStatus is an agent's availability.
type AgentStatus string

const (
	AgentOnline  AgentStatus = "online"
	AgentAway    AgentStatus = "away"
	AgentBusy    AgentStatus = "busy"
	AgentOffline AgentStatus = "offline"
)

// Agent is a support agent in the roster.
type Agent struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Avatar       string      `json:"avatar"`
	Status       AgentStatus `json:"status"`
	Department   string      `json:"department"`
	Rating       float64     `json:"rating"`
	ResponseTime string      `json:"responseTime"`
}

// Online reports whether the agent can take a session.
func (a *Agent) Online() bool {
	return a.Status == AgentOnline
}

// MessageSender distinguishes user and agent messages.
type MessageSender string

const (
	SenderUser  MessageSender = "user"
	SenderAgent MessageSender = "agent"
)

// MessageType is the payload kind of a message.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageFile  MessageType = "file"
)

// MessageStatus tracks delivery. Transitions are monotonic:
// sending -> sent -> delivered -> read.
type MessageStatus string

const (
	StatusSending   MessageStatus = "sending"
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

// Message is one chat line.
type Message struct {
	ID          string        `json:"id"`
	Content     string        `json:"content"`
	Sender      MessageSender `json:"sender"`
	Timestamp   time.Time     `json:"timestamp"`
	AgentName   string        `json:"agentName,omitempty"`
	AgentAvatar string        `json:"agentAvatar,omitempty"`
	Type        MessageType   `json:"type"`
	Status      MessageStatus `json:"status"`
}

// SessionStatus is the chat session state machine. ended is terminal.
type SessionStatus string

const (
	SessionWaiting SessionStatus = "waiting"
	SessionActive  SessionStatus = "active"
	SessionEnded   SessionStatus = "ended"
)

// Session is one support conversation.
type Session struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	AgentID      string        `json:"agentId,omitempty"`
	Status       SessionStatus `json:"status"`
	StartTime    time.Time     `json:"startTime"`
	EndTime      *time.Time    `json:"endTime,omitempty"`
	Messages     []*Message    `json:"messages"`
	Department   string        `json:"department"`
	Priority     string        `json:"priority"`
	Satisfaction *int          `json:"satisfaction,omitempty"`
	Tags         []string      `json:"tags"`
	UnreadCount  int           `json:"unreadCount"`
	WindowOpen   bool          `json:"windowOpen"`
}

// SeedAgents returns the built-in agent roster.
func SeedAgents() []*Agent {
	return []*Agent{
		{
			ID:           "1",
			Name:         "Sarah Johnson",
			Avatar:       "/avatars/sarah-johnson.svg",
			Status:       AgentOnline,
			Department:   "Technical Support",
			Rating:       4.9,
			ResponseTime: "< 2 min",
		},
		{
			ID:           "2",
			Name:         "Mike Chen",
			Avatar:       "/avatars/mike-chen.svg",
			Status:       AgentOnline,
			Department:   "Sales",
			Rating:       4.8,
			ResponseTime: "< 1 min",
		},
		{
			ID:           "3",
			Name:         "Emma Rodriguez",
			Avatar:       "/avatars/emma-rodriguez.svg",
			Status:       AgentAway,
			Department:   "General Support",
			Rating:       4.7,
			ResponseTime: "< 3 min",
		},
	}
}

// CannedResponses are the simulated agent replies.
var CannedResponses = []string{
	"I understand your concern. Let me help you with that.",
	"That's a great question! Here's what I can tell you...",
	"I'll look into this for you right away.",
	"Thanks for providing that information. Let me check our system.",
	"I can definitely help you with that. Give me just a moment.",
}
