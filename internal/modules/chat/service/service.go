// Package service implements the support-chat simulation: agent
// assignment, delayed greetings and canned replies, unread tracking, and
// session teardown.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/gaborage/go-bricks/logger"
	"github.com/google/uuid"
	"github.com/lnsc/storefront/internal/modules/chat/domain"
	"github.com/lnsc/storefront/internal/modules/chat/store"
)

// Config bounds the simulated delays. Zero delays run callbacks inline,
// which keeps tests deterministic.
type Config struct {
	GreetingDelay time.Duration
	DeliveryDelay time.Duration
	ReplyDelayMin time.Duration
	ReplyDelayMax time.Duration
}

// DefaultConfig returns the production simulation delays.
func DefaultConfig() Config {
	return Config{
		GreetingDelay: time.Second,
		DeliveryDelay: 500 * time.Millisecond,
		ReplyDelayMin: 2 * time.Second,
		ReplyDelayMax: 5 * time.Second,
	}
}

// ChatService coordinates sessions, the agent roster, and reply timers.
type ChatService struct {
	store  *store.ChatStore
	agents []*domain.Agent
	config Config
	logger logger.Logger
	rand   func() float64
	now    func() time.Time

	timers map[string][]*time.Timer
	closed bool
	mu     sync.Mutex
}

// NewService creates a chat service.
func NewService(s *store.ChatStore, cfg Config, l logger.Logger) *ChatService {
	return &ChatService{
		store:  s,
		agents: domain.SeedAgents(),
		config: cfg,
		logger: l,
		rand:   rand.Float64,
		now:    time.Now,
		timers: make(map[string][]*time.Timer),
	}
}

// Agents returns the roster.
func (s *ChatService) Agents() []*domain.Agent {
	out := make([]*domain.Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

// Session returns the session with the given ID.
func (s *ChatService) Session(sessionID string) (*domain.Session, error) {
	return s.store.Get(sessionID)
}

// StartSession opens a new session. An online agent in the requested
// department is assigned first, then any online agent; with nobody online
// the session waits. Active sessions get a delayed agent greeting.
func (s *ChatService) StartSession(ctx context.Context, userID, department string) (*domain.Session, error) {
	agent := s.findAgent(department)

	session := &domain.Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		Status:     domain.SessionWaiting,
		StartTime:  s.now().UTC(),
		Department: department,
		Priority:   "medium",
		Tags:       []string{},
	}
	if agent != nil {
		session.AgentID = agent.ID
		session.Status = domain.SessionActive
	}
	s.store.Insert(ctx, session)

	s.logger.Info().
		Str("sessionID", session.ID).
		Str("department", department).
		Str("status", string(session.Status)).
		Msg("Chat session started")

	if agent != nil {
		greeting := fmt.Sprintf("Hi! I'm %s from %s. How can I help you today?", agent.Name, department)
		s.schedule(session.ID, s.config.GreetingDelay, func() {
			s.appendAgentMessage(session.ID, agent, greeting)
		})
	}

	return s.store.Get(session.ID)
}

// SendMessage appends a user message and simulates delivery. While the
// session is active, a canned agent reply follows after a bounded random
// delay.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, content string, msgType domain.MessageType) (*domain.Message, error) {
	if msgType == "" {
		msgType = domain.MessageText
	}

	message := &domain.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    domain.SenderUser,
		Timestamp: s.now().UTC(),
		Type:      msgType,
		Status:    domain.StatusSending,
	}

	// The response copy is taken under the store lock: once the delivery
	// timer is armed it mutates message.Status concurrently.
	var out domain.Message
	var active bool
	var agentID string
	err := s.store.Mutate(ctx, sessionID, func(session *domain.Session) error {
		if session.Status == domain.SessionEnded {
			return domain.ErrSessionEnded
		}
		session.Messages = append(session.Messages, message)
		active = session.Status == domain.SessionActive
		agentID = session.AgentID
		out = *message
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.schedule(sessionID, s.config.DeliveryDelay, func() {
		s.markDelivered(sessionID, message.ID)
	})

	if active {
		agent := s.agentByID(agentID)
		reply := domain.CannedResponses[int(s.rand()*float64(len(domain.CannedResponses)))%len(domain.CannedResponses)]
		delay := s.config.ReplyDelayMin + time.Duration(s.rand()*float64(s.config.ReplyDelayMax-s.config.ReplyDelayMin))
		s.schedule(sessionID, delay, func() {
			s.appendAgentMessage(sessionID, agent, reply)
		})
	}

	return &out, nil
}

// EndSession is terminal: it stamps EndTime and cancels every pending
// timer for the session.
func (s *ChatService) EndSession(ctx context.Context, sessionID string) error {
	err := s.store.Mutate(ctx, sessionID, func(session *domain.Session) error {
		if session.Status == domain.SessionEnded {
			return nil
		}
		session.Status = domain.SessionEnded
		endTime := s.now().UTC()
		session.EndTime = &endTime
		return nil
	})
	if err != nil {
		return err
	}

	s.cancelTimers(sessionID)

	s.logger.Info().
		Str("sessionID", sessionID).
		Msg("Chat session ended")

	return nil
}

// MarkRead clears the unread counter.
func (s *ChatService) MarkRead(ctx context.Context, sessionID string) error {
	return s.store.Mutate(ctx, sessionID, func(session *domain.Session) error {
		session.UnreadCount = 0
		return nil
	})
}

// SetWindowOpen tracks the chat window. Opening the window clears unread.
func (s *ChatService) SetWindowOpen(ctx context.Context, sessionID string, open bool) error {
	return s.store.Mutate(ctx, sessionID, func(session *domain.Session) error {
		session.WindowOpen = open
		if open {
			session.UnreadCount = 0
		}
		return nil
	})
}

// UploadFile injects a message referencing a local object URL. Image
// content types produce image messages, everything else file messages.
func (s *ChatService) UploadFile(ctx context.Context, sessionID, filename, contentType string) (*domain.Message, error) {
	msgType := domain.MessageFile
	if strings.HasPrefix(contentType, "image/") {
		msgType = domain.MessageImage
	}
	objectURL := fmt.Sprintf("local://uploads/%s/%s", uuid.NewString(), filename)
	return s.SendMessage(ctx, sessionID, objectURL, msgType)
}

// RateSatisfaction records a 0-5 rating on the session.
func (s *ChatService) RateSatisfaction(ctx context.Context, sessionID string, rating int) error {
	if rating < 0 || rating > 5 {
		return domain.ErrInvalidRating
	}
	return s.store.Mutate(ctx, sessionID, func(session *domain.Session) error {
		session.Satisfaction = &rating
		return nil
	})
}

// AddTags appends tags to the session.
func (s *ChatService) AddTags(ctx context.Context, sessionID string, tags []string) error {
	return s.store.Mutate(ctx, sessionID, func(session *domain.Session) error {
		session.Tags = append(session.Tags, tags...)
		return nil
	})
}

// Shutdown cancels every pending timer across all sessions.
func (s *ChatService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for sessionID, timers := range s.timers {
		for _, t := range timers {
			t.Stop()
		}
		delete(s.timers, sessionID)
	}
}

// findAgent picks an online agent in the department, falling back to any
// online agent.
func (s *ChatService) findAgent(department string) *domain.Agent {
	for _, agent := range s.agents {
		if agent.Department == department && agent.Online() {
			return agent
		}
	}
	for _, agent := range s.agents {
		if agent.Online() {
			return agent
		}
	}
	return nil
}

func (s *ChatService) agentByID(id string) *domain.Agent {
	for _, agent := range s.agents {
		if agent.ID == id {
			return agent
		}
	}
	return nil
}

// appendAgentMessage adds an agent reply, bumping unread while the window
// is closed. Ended sessions swallow the callback.
func (s *ChatService) appendAgentMessage(sessionID string, agent *domain.Agent, content string) {
	message := &domain.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    domain.SenderAgent,
		Timestamp: s.now().UTC(),
		Type:      domain.MessageText,
		Status:    domain.StatusSent,
	}
	if agent != nil {
		message.AgentName = agent.Name
		message.AgentAvatar = agent.Avatar
	}

	err := s.store.Mutate(context.Background(), sessionID, func(session *domain.Session) error {
		if session.Status == domain.SessionEnded {
			return nil
		}
		session.Messages = append(session.Messages, message)
		if !session.WindowOpen {
			session.UnreadCount++
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to append agent message")
	}
}

func (s *ChatService) markDelivered(sessionID, messageID string) {
	err := s.store.Mutate(context.Background(), sessionID, func(session *domain.Session) error {
		for _, m := range session.Messages {
			if m.ID == messageID && m.Status == domain.StatusSending {
				m.Status = domain.StatusDelivered
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to mark message delivered")
	}
}

// schedule runs fn after delay, tracking the timer so EndSession and
// Shutdown can cancel it. Non-positive delays run inline.
func (s *ChatService) schedule(sessionID string, delay time.Duration, fn func()) {
	if delay <= 0 {
		fn()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	timer := time.AfterFunc(delay, fn)
	s.timers[sessionID] = append(s.timers[sessionID], timer)
}

func (s *ChatService) cancelTimers(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.timers[sessionID] {
		t.Stop()
	}
	delete(s.timers, sessionID)
}
