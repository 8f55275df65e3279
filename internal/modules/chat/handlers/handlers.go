// Package handlers provides HTTP handlers for the chat module.
package handlers

import (
	"context"
	"errors"

	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/chat/domain"
)

type StartSessionRequest struct {
	UserID     string `json:"userId" binding:"required"`
	Department string `json:"department" binding:"required"`
}

type GetSessionRequest struct {
	SessionID string `param:"id" binding:"required"`
}

type SendMessageRequest struct {
	SessionID string             `param:"id" binding:"required"`
	Content   string             `json:"content" binding:"required"`
	Type      domain.MessageType `json:"type"`
}

type EndSessionRequest struct {
	SessionID string `param:"id" binding:"required"`
}

type MarkReadRequest struct {
	SessionID  string `param:"id" binding:"required"`
	WindowOpen *bool  `json:"windowOpen"`
}

type SatisfactionRequest struct {
	SessionID string `param:"id" binding:"required"`
	Rating    int    `json:"rating"`
}

type AddTagsRequest struct {
	SessionID string   `param:"id" binding:"required"`
	Tags      []string `json:"tags" binding:"required"`
}

type UploadFileRequest struct {
	SessionID   string `param:"id" binding:"required"`
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType"`
}

type AgentsResponse struct {
	Agents []*domain.Agent `json:"agents"`
}

// ChatServiceInterface defines the service contract for handlers
type ChatServiceInterface interface {
	StartSession(ctx context.Context, userID, department string) (*domain.Session, error)
	Session(sessionID string) (*domain.Session, error)
	SendMessage(ctx context.Context, sessionID, content string, msgType domain.MessageType) (*domain.Message, error)
	EndSession(ctx context.Context, sessionID string) error
	MarkRead(ctx context.Context, sessionID string) error
	SetWindowOpen(ctx context.Context, sessionID string, open bool) error
	UploadFile(ctx context.Context, sessionID, filename, contentType string) (*domain.Message, error)
	RateSatisfaction(ctx context.Context, sessionID string, rating int) error
	AddTags(ctx context.Context, sessionID string, tags []string) error
	Agents() []*domain.Agent
}

type ChatHandler struct {
	service ChatServiceInterface
	logger  logger.Logger
}

func NewChatHandler(s ChatServiceInterface, l logger.Logger) *ChatHandler {
	return &ChatHandler{
		service: s,
		logger:  l,
	}
}

func (h *ChatHandler) StartSession(req StartSessionRequest, ctx server.HandlerContext) (server.Result[*domain.Session], server.IAPIError) {
	session, err := h.service.StartSession(ctx.Echo.Request().Context(), req.UserID, req.Department)
	if err != nil {
		h.logger.Error().Err(err).Str("department", req.Department).Msg("Failed to start chat session")
		return server.Result[*domain.Session]{}, server.NewInternalServerError("Failed to start chat session")
	}

	return server.Created(session), nil
}

func (h *ChatHandler) GetSession(req GetSessionRequest, _ server.HandlerContext) (*domain.Session, server.IAPIError) {
	session, err := h.service.Session(req.SessionID)
	if err != nil {
		return nil, h.mapError(err, "Failed to load chat session")
	}
	return session, nil
}

func (h *ChatHandler) SendMessage(req SendMessageRequest, ctx server.HandlerContext) (server.Result[*domain.Message], server.IAPIError) {
	message, err := h.service.SendMessage(ctx.Echo.Request().Context(), req.SessionID, req.Content, req.Type)
	if err != nil {
		return server.Result[*domain.Message]{}, h.mapError(err, "Failed to send chat message")
	}

	return server.Created(message), nil
}

func (h *ChatHandler) EndSession(req EndSessionRequest, ctx server.HandlerContext) (*domain.Session, server.IAPIError) {
	reqCtx := ctx.Echo.Request().Context()
	if err := h.service.EndSession(reqCtx, req.SessionID); err != nil {
		return nil, h.mapError(err, "Failed to end chat session")
	}

	session, err := h.service.Session(req.SessionID)
	if err != nil {
		return nil, h.mapError(err, "Failed to load chat session")
	}
	return session, nil
}

func (h *ChatHandler) MarkRead(req MarkReadRequest, ctx server.HandlerContext) (*domain.Session, server.IAPIError) {
	reqCtx := ctx.Echo.Request().Context()

	var err error
	if req.WindowOpen != nil {
		err = h.service.SetWindowOpen(reqCtx, req.SessionID, *req.WindowOpen)
	} else {
		err = h.service.MarkRead(reqCtx, req.SessionID)
	}
	if err != nil {
		return nil, h.mapError(err, "Failed to mark chat session read")
	}

	session, err := h.service.Session(req.SessionID)
	if err != nil {
		return nil, h.mapError(err, "Failed to load chat session")
	}
	return session, nil
}

func (h *ChatHandler) UploadFile(req UploadFileRequest, ctx server.HandlerContext) (server.Result[*domain.Message], server.IAPIError) {
	message, err := h.service.UploadFile(ctx.Echo.Request().Context(), req.SessionID, req.Filename, req.ContentType)
	if err != nil {
		return server.Result[*domain.Message]{}, h.mapError(err, "Failed to upload file")
	}

	return server.Created(message), nil
}

func (h *ChatHandler) RateSatisfaction(req SatisfactionRequest, ctx server.HandlerContext) (*domain.Session, server.IAPIError) {
	reqCtx := ctx.Echo.Request().Context()
	if err := h.service.RateSatisfaction(reqCtx, req.SessionID, req.Rating); err != nil {
		return nil, h.mapError(err, "Failed to rate chat session")
	}

	session, err := h.service.Session(req.SessionID)
	if err != nil {
		return nil, h.mapError(err, "Failed to load chat session")
	}
	return session, nil
}

func (h *ChatHandler) AddTags(req AddTagsRequest, ctx server.HandlerContext) (*domain.Session, server.IAPIError) {
	reqCtx := ctx.Echo.Request().Context()
	if err := h.service.AddTags(reqCtx, req.SessionID, req.Tags); err != nil {
		return nil, h.mapError(err, "Failed to tag chat session")
	}

	session, err := h.service.Session(req.SessionID)
	if err != nil {
		return nil, h.mapError(err, "Failed to load chat session")
	}
	return session, nil
}

func (h *ChatHandler) GetAgents(_ struct{}, _ server.HandlerContext) (*AgentsResponse, server.IAPIError) {
	return &AgentsResponse{Agents: h.service.Agents()}, nil
}

func (h *ChatHandler) mapError(err error, fallback string) server.IAPIError {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return server.NewNotFoundError("Chat session")
	case errors.Is(err, domain.ErrSessionEnded), errors.Is(err, domain.ErrInvalidRating):
		return server.NewBadRequestError(err.Error())
	default:
		h.logger.Error().Err(err).Msg(fallback)
		return server.NewInternalServerError(fallback)
	}
}

// RegisterRoutes registers chat HTTP routes
func (h *ChatHandler) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	server.POST(hr, r, "/chat/sessions", h.StartSession)
	server.GET(hr, r, "/chat/sessions/:id", h.GetSession)
	server.POST(hr, r, "/chat/sessions/:id/messages", h.SendMessage)
	server.POST(hr, r, "/chat/sessions/:id/end", h.EndSession)
	server.POST(hr, r, "/chat/sessions/:id/read", h.MarkRead)
	server.POST(hr, r, "/chat/sessions/:id/files", h.UploadFile)
	server.POST(hr, r, "/chat/sessions/:id/satisfaction", h.RateSatisfaction)
	server.POST(hr, r, "/chat/sessions/:id/tags", h.AddTags)
	server.GET(hr, r, "/chat/agents", h.GetAgents)
}
