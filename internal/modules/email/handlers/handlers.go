// Package handlers provides HTTP handlers for the email module.
package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/email/domain"
	"github.com/lnsc/storefront/internal/modules/email/service"
)

type HistoryRequest struct {
	Recipient string `query:"recipient"`
}

type SendRequest struct {
	To        string         `json:"to" binding:"required"`
	Subject   string         `json:"subject" binding:"required"`
	Template  string         `json:"template"`
	Variables map[string]any `json:"variables"`
	Type      domain.Type    `json:"type" binding:"required"`
}

type ScheduleRequest struct {
	To           string         `json:"to" binding:"required"`
	Subject      string         `json:"subject" binding:"required"`
	Template     string         `json:"template"`
	Variables    map[string]any `json:"variables"`
	Type         domain.Type    `json:"type" binding:"required"`
	ScheduledFor time.Time      `json:"scheduledFor" binding:"required"`
}

type ResendRequest struct {
	ID string `param:"id" binding:"required"`
}

type CancelRequest struct {
	ID string `param:"id" binding:"required"`
}

type CampaignRequest struct {
	Recipients []string       `json:"recipients" binding:"required"`
	Subject    string         `json:"subject" binding:"required"`
	Template   string         `json:"template"`
	Variables  map[string]any `json:"variables"`
}

type HistoryResponse struct {
	Notifications []*domain.Notification `json:"notifications"`
	Total         int                    `json:"total"`
}

type SendResponse struct {
	Notification *domain.Notification `json:"notification,omitempty"`
	Blocked      bool                 `json:"blocked"`
}

type TemplatesResponse struct {
	Templates []*domain.Template `json:"templates"`
}

// EmailServiceInterface defines the service contract for handlers
type EmailServiceInterface interface {
	Send(ctx context.Context, input service.SendInput) (*domain.Notification, error)
	Schedule(ctx context.Context, input service.SendInput, scheduledFor time.Time) (*domain.Notification, error)
	Resend(ctx context.Context, id string) (*domain.Notification, error)
	Cancel(ctx context.Context, id string) error
	History(recipient string) []*domain.Notification
	Templates() []*domain.Template
	Preferences() *domain.Preferences
	UpdatePreferences(ctx context.Context, prefs *domain.Preferences) *domain.Preferences
	SendBulkPromotion(ctx context.Context, input service.BulkInput) (*service.BulkResult, error)
}

type EmailHandler struct {
	service EmailServiceInterface
	logger  logger.Logger
}

func NewEmailHandler(s EmailServiceInterface, l logger.Logger) *EmailHandler {
	return &EmailHandler{
		service: s,
		logger:  l,
	}
}

func (h *EmailHandler) GetHistory(req HistoryRequest, _ server.HandlerContext) (*HistoryResponse, server.IAPIError) {
	notifications := h.service.History(req.Recipient)
	return &HistoryResponse{Notifications: notifications, Total: len(notifications)}, nil
}

func (h *EmailHandler) SendEmail(req SendRequest, ctx server.HandlerContext) (server.Result[*SendResponse], server.IAPIError) {
	notification, err := h.service.Send(ctx.Echo.Request().Context(), service.SendInput{
		To:        req.To,
		Subject:   req.Subject,
		Template:  req.Template,
		Variables: req.Variables,
		Type:      req.Type,
	})
	if err != nil {
		return server.Result[*SendResponse]{}, h.mapError(err, "Failed to send email")
	}

	return server.Created(&SendResponse{
		Notification: notification,
		Blocked:      notification == nil,
	}), nil
}

func (h *EmailHandler) ScheduleEmail(req ScheduleRequest, ctx server.HandlerContext) (server.Result[*domain.Notification], server.IAPIError) {
	notification, err := h.service.Schedule(ctx.Echo.Request().Context(), service.SendInput{
		To:        req.To,
		Subject:   req.Subject,
		Template:  req.Template,
		Variables: req.Variables,
		Type:      req.Type,
	}, req.ScheduledFor)
	if err != nil {
		return server.Result[*domain.Notification]{}, h.mapError(err, "Failed to schedule email")
	}

	return server.Created(notification), nil
}

func (h *EmailHandler) ResendEmail(req ResendRequest, ctx server.HandlerContext) (*domain.Notification, server.IAPIError) {
	notification, err := h.service.Resend(ctx.Echo.Request().Context(), req.ID)
	if err != nil {
		return nil, h.mapError(err, "Failed to resend email")
	}
	return notification, nil
}

func (h *EmailHandler) CancelEmail(req CancelRequest, ctx server.HandlerContext) (server.NoContentResult, server.IAPIError) {
	if err := h.service.Cancel(ctx.Echo.Request().Context(), req.ID); err != nil {
		return server.NoContent(), h.mapError(err, "Failed to cancel email")
	}
	return server.NoContent(), nil
}

func (h *EmailHandler) GetPreferences(_ struct{}, _ server.HandlerContext) (*domain.Preferences, server.IAPIError) {
	return h.service.Preferences(), nil
}

func (h *EmailHandler) UpdatePreferences(req domain.Preferences, ctx server.HandlerContext) (*domain.Preferences, server.IAPIError) {
	return h.service.UpdatePreferences(ctx.Echo.Request().Context(), &req), nil
}

func (h *EmailHandler) SendCampaign(req CampaignRequest, ctx server.HandlerContext) (server.Result[*service.BulkResult], server.IAPIError) {
	result, err := h.service.SendBulkPromotion(ctx.Echo.Request().Context(), service.BulkInput{
		Recipients: req.Recipients,
		Subject:    req.Subject,
		Template:   req.Template,
		Variables:  req.Variables,
	})
	if err != nil {
		return server.Result[*service.BulkResult]{}, h.mapError(err, "Failed to run campaign")
	}

	return server.Created(result), nil
}

func (h *EmailHandler) GetTemplates(_ struct{}, _ server.HandlerContext) (*TemplatesResponse, server.IAPIError) {
	return &TemplatesResponse{Templates: h.service.Templates()}, nil
}

func (h *EmailHandler) mapError(err error, fallback string) server.IAPIError {
	switch {
	case errors.Is(err, domain.ErrNotificationNotFound):
		return server.NewNotFoundError("Notification")
	case errors.Is(err, domain.ErrInvalidType),
		errors.Is(err, domain.ErrNotResendable),
		errors.Is(err, domain.ErrNotCancellable):
		return server.NewBadRequestError(err.Error())
	default:
		h.logger.Error().Err(err).Msg(fallback)
		return server.NewInternalServerError(fallback)
	}
}

// RegisterRoutes registers email HTTP routes
func (h *EmailHandler) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	server.GET(hr, r, "/emails", h.GetHistory)
	server.POST(hr, r, "/emails/send", h.SendEmail)
	server.POST(hr, r, "/emails/schedule", h.ScheduleEmail)
	server.POST(hr, r, "/emails/:id/resend", h.ResendEmail)
	server.DELETE(hr, r, "/emails/:id", h.CancelEmail)
	server.GET(hr, r, "/emails/preferences", h.GetPreferences)
	server.PUT(hr, r, "/emails/preferences", h.UpdatePreferences)
	server.POST(hr, r, "/emails/campaigns", h.SendCampaign)
	server.GET(hr, r, "/emails/templates", h.GetTemplates)
}
