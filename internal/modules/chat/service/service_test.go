package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/chat/domain"
	"github.com/lnsc/storefront/internal/modules/chat/store"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

// zeroDelays runs every simulated callback inline.
func zeroDelays() Config {
	return Config{}
}

func newTestService() *ChatService {
	log := logger.New("info", false)
	sessions := store.NewChatStore(context.Background(), storage.NewMemoryStore(), log)
	svc := NewService(sessions, zeroDelays(), log)
	svc.rand = func() float64 { return 0.0 }
	return svc
}

func TestStartSessionAssignsDepartmentAgent(t *testing.T) {
	svc := newTestService()

	session, err := svc.StartSession(context.Background(), "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	if session.Status != domain.SessionActive {
		t.Errorf("Status = %q, want active", session.Status)
	}
	if session.AgentID != "2" {
		t.Errorf("AgentID = %q, want 2 (Mike Chen, Sales)", session.AgentID)
	}
	if len(session.Messages) != 1 {
		t.Fatalf("message count = %d, want 1 greeting", len(session.Messages))
	}
	if session.Messages[0].Sender != domain.SenderAgent {
		t.Errorf("greeting sender = %q, want agent", session.Messages[0].Sender)
	}
}

func TestStartSessionFallsBackToAnyOnlineAgent(t *testing.T) {
	svc := newTestService()

	// Only Technical Support (agent 1) stays online.
	for _, agent := range svc.agents {
		if agent.ID != "1" {
			agent.Status = domain.AgentOffline
		}
	}

	session, err := svc.StartSession(context.Background(), "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	if session.Status != domain.SessionActive {
		t.Errorf("Status = %q, want active (fallback agent)", session.Status)
	}
	if session.AgentID != "1" {
		t.Errorf("AgentID = %q, want 1 (fallback to Technical Support)", session.AgentID)
	}
}

func TestStartSessionWaitsWithNobodyOnline(t *testing.T) {
	svc := newTestService()

	for _, agent := range svc.agents {
		agent.Status = domain.AgentOffline
	}

	session, err := svc.StartSession(context.Background(), "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	if session.Status != domain.SessionWaiting {
		t.Errorf("Status = %q, want waiting", session.Status)
	}
	if session.AgentID != "" {
		t.Errorf("AgentID = %q, want empty", session.AgentID)
	}
	if len(session.Messages) != 0 {
		t.Errorf("message count = %d, want 0 (no greeting while waiting)", len(session.Messages))
	}
}

func TestSendMessageTriggersCannedReply(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	if _, err := svc.SendMessage(ctx, session.ID, "My order has not arrived", domain.MessageText); err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}

	updated, err := svc.Session(session.ID)
	if err != nil {
		t.Fatalf("Session error: %v", err)
	}

	// greeting + user message + canned reply
	if len(updated.Messages) != 3 {
		t.Fatalf("message count = %d, want 3", len(updated.Messages))
	}

	user := updated.Messages[1]
	if user.Sender != domain.SenderUser {
		t.Errorf("messages[1].Sender = %q, want user", user.Sender)
	}
	if user.Status != domain.StatusDelivered {
		t.Errorf("user message status = %q, want delivered", user.Status)
	}

	reply := updated.Messages[2]
	if reply.Sender != domain.SenderAgent {
		t.Errorf("messages[2].Sender = %q, want agent", reply.Sender)
	}
	if reply.Content != domain.CannedResponses[0] {
		t.Errorf("reply content = %q, want first canned response", reply.Content)
	}
}

func TestSendMessageReturnsDetachedCopyWithDelayedDelivery(t *testing.T) {
	log := logger.New("info", false)
	sessions := store.NewChatStore(context.Background(), storage.NewMemoryStore(), log)
	svc := NewService(sessions, Config{DeliveryDelay: time.Millisecond}, log)
	svc.rand = func() float64 { return 0.0 }
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	message, err := svc.SendMessage(ctx, session.ID, "Is this in stock?", domain.MessageText)
	if err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}
	if message.Status != domain.StatusSending {
		t.Errorf("returned status = %q, want sending", message.Status)
	}

	deadline := time.Now().Add(time.Second)
	for {
		updated, err := svc.Session(session.ID)
		if err != nil {
			t.Fatalf("Session error: %v", err)
		}
		var stored *domain.Message
		for _, m := range updated.Messages {
			if m.ID == message.ID {
				stored = m
			}
		}
		if stored == nil {
			t.Fatal("sent message not found in session")
		}
		if stored.Status == domain.StatusDelivered {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("message status = %q, delivery timer never fired", stored.Status)
		}
		time.Sleep(time.Millisecond)
	}

	// The returned copy stays untouched by the timer.
	if message.Status != domain.StatusSending {
		t.Errorf("returned copy status = %q, want sending", message.Status)
	}

	svc.Shutdown()
}

func TestSendMessageWhileWaitingGetsNoReply(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, agent := range svc.agents {
		agent.Status = domain.AgentOffline
	}

	session, err := svc.StartSession(ctx, "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}
	if _, err := svc.SendMessage(ctx, session.ID, "Anyone there?", domain.MessageText); err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}

	updated, _ := svc.Session(session.ID)
	if len(updated.Messages) != 1 {
		t.Errorf("message count = %d, want 1 (user message only)", len(updated.Messages))
	}
}

func TestUnreadTracksWindowState(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	// Greeting arrived with the window closed.
	updated, _ := svc.Session(session.ID)
	if updated.UnreadCount != 1 {
		t.Errorf("UnreadCount after greeting = %d, want 1", updated.UnreadCount)
	}

	if err := svc.SetWindowOpen(ctx, session.ID, true); err != nil {
		t.Fatalf("SetWindowOpen error: %v", err)
	}
	updated, _ = svc.Session(session.ID)
	if updated.UnreadCount != 0 {
		t.Errorf("UnreadCount after open = %d, want 0", updated.UnreadCount)
	}

	// Replies while the window is open stay read.
	if _, err := svc.SendMessage(ctx, session.ID, "Hello", domain.MessageText); err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}
	updated, _ = svc.Session(session.ID)
	if updated.UnreadCount != 0 {
		t.Errorf("UnreadCount with open window = %d, want 0", updated.UnreadCount)
	}
}

func TestEndSessionIsTerminal(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	if err := svc.EndSession(ctx, session.ID); err != nil {
		t.Fatalf("EndSession error: %v", err)
	}

	updated, _ := svc.Session(session.ID)
	if updated.Status != domain.SessionEnded {
		t.Errorf("Status = %q, want ended", updated.Status)
	}
	if updated.EndTime == nil {
		t.Error("EndTime = nil, want stamp")
	}

	if _, err := svc.SendMessage(ctx, session.ID, "Still there?", domain.MessageText); !errors.Is(err, domain.ErrSessionEnded) {
		t.Errorf("SendMessage after end error = %v, want ErrSessionEnded", err)
	}
}

func TestUploadFileTypesByContentType(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	image, err := svc.UploadFile(ctx, session.ID, "receipt.png", "image/png")
	if err != nil {
		t.Fatalf("UploadFile error: %v", err)
	}
	if image.Type != domain.MessageImage {
		t.Errorf("image upload Type = %q, want image", image.Type)
	}

	doc, err := svc.UploadFile(ctx, session.ID, "invoice.pdf", "application/pdf")
	if err != nil {
		t.Fatalf("UploadFile error: %v", err)
	}
	if doc.Type != domain.MessageFile {
		t.Errorf("document upload Type = %q, want file", doc.Type)
	}
}

func TestRateSatisfactionBounds(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	if err := svc.RateSatisfaction(ctx, session.ID, 6); !errors.Is(err, domain.ErrInvalidRating) {
		t.Errorf("RateSatisfaction(6) error = %v, want ErrInvalidRating", err)
	}

	if err := svc.RateSatisfaction(ctx, session.ID, 5); err != nil {
		t.Fatalf("RateSatisfaction error: %v", err)
	}
	updated, _ := svc.Session(session.ID)
	if updated.Satisfaction == nil || *updated.Satisfaction != 5 {
		t.Errorf("Satisfaction = %v, want 5", updated.Satisfaction)
	}
}

func TestAddTags(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "user-1", "Sales")
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	if err := svc.AddTags(ctx, session.ID, []string{"billing", "urgent"}); err != nil {
		t.Fatalf("AddTags error: %v", err)
	}

	updated, _ := svc.Session(session.ID)
	if len(updated.Tags) != 2 {
		t.Errorf("Tags = %v, want 2 entries", updated.Tags)
	}
}

func TestSessionNotFound(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Session("missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Session(missing) error = %v, want ErrSessionNotFound", err)
	}
}
