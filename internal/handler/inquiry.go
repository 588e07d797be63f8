package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizpeer/cdg-beauty/internal/model"
	"github.com/bizpeer/cdg-beauty/internal/queue"
	queue_publisher "github.com/bizpeer/cdg-beauty/internal/service"
	"github.com/bizpeer/cdg-beauty/internal/store"
)

// Notifier delivers the inquiry notification to the active receiver. It is
// satisfied by mailer.Mailer.
type Notifier interface {
	SendInquiryNotification(to string, inq model.Inquiry) error
}

// InquiryHandler implements the public contact form and the admin inquiry
// views.
type InquiryHandler struct {
	Inquiries store.InquiryStore
	Admins    store.AdminStore
	Mail      Notifier
}

func NewInquiryHandler(inquiries store.InquiryStore, admins store.AdminStore, mail Notifier) *InquiryHandler {
	return &InquiryHandler{Inquiries: inquiries, Admins: admins, Mail: mail}
}

type submitInquiryReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
	Message string `json:"message"`
}

// Submit handles POST /api/inquiry. It is deliberately sequential:
// persistence first, then the broker event (best effort), then the
// notification email. A mail failure is reported as 500 but the inquiry is
// already stored and stays stored; nothing rolls back.
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req submitInquiryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and message are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	inq := model.Inquiry{Name: req.Name, Email: req.Email, Country: strings.TrimSpace(req.Country), Message: req.Message}
	if err := h.Inquiries.Create(ctx, &inq); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save inquiry failed"})
	}

	// Best-effort audit event; a broker outage never fails the submission.
	_ = queue_publisher.PublishInquiryReceived(ctx, queue.InquiryReceivedEvent{
		InquiryID:  inq.ID,
		Name:       inq.Name,
		Email:      inq.Email,
		Country:    inq.Country,
		ReceivedAt: inq.CreatedAt.UTC().Format(time.RFC3339),
	})

	receiver, err := h.Admins.GetInquiryReceiver(ctx)
	if err != nil {
		log.Printf("inquiry: no receiver resolved: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "notification failed", "id": inq.ID})
	}
	if err := h.Mail.SendInquiryNotification(receiver.Email, inq); err != nil {
		log.Printf("inquiry: mail to %s failed: %v", receiver.Email, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "notification failed", "id": inq.ID})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "inquiry saved", "id": inq.ID})
}

// List handles GET /api/inquiries (admin), newest first.
func (h *InquiryHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Inquiries.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if items == nil {
		items = []model.Inquiry{}
	}
	return c.JSON(http.StatusOK, items)
}

// Delete handles DELETE /api/inquiries/:id (admin). Deleting an id that is
// already gone succeeds; the operation is idempotent.
func (h *InquiryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Inquiries.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
