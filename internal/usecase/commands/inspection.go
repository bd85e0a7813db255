package commands

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"rugboost-api/internal/domain/inspection"
	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/infra"
	"rugboost-api/internal/infra/mailer"
	"rugboost-api/internal/pkg/errs"
	"rugboost-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidNotification = errs.New("invalid inspection notification")
	ErrNotificationFailed  = errs.New("Failed to send email")
)

//go:generate mockgen -source=inspection.go -destination=../../../tests/mock/commands/inspection_mock.go -package=commandsmock

type InspectionReadyRequest struct {
	JobID            uuid.UUID
	ClientEmail      string
	ClientName       string
	JobNumber        string
	PortalURL        string
	RugCount         int
	TotalAmountCents int64
}

type InspectionCommands interface {
	NotifyClient(ctx context.Context, senderID uuid.UUID, req InspectionReadyRequest) error
}

type inspectionCommandsImpl struct {
	uow      shared.UnitOfWork
	mailer   Mailer
	settings MailSettings
}

func NewInspectionCommands(uow shared.UnitOfWork, m Mailer, settings MailSettings) InspectionCommands {
	return &inspectionCommandsImpl{uow: uow, mailer: m, settings: settings}
}

// NotifyClient emails the client that their inspection report is ready,
// branded with the sender's business name.
func (c *inspectionCommandsImpl) NotifyClient(ctx context.Context, senderID uuid.UUID, req InspectionReadyRequest) error {
	to, err := user.NewEmail(req.ClientEmail)
	if err != nil {
		return errs.Mark(err, ErrInvalidNotification)
	}
	if strings.TrimSpace(req.JobNumber) == "" || strings.TrimSpace(req.PortalURL) == "" || req.RugCount < 0 || req.TotalAmountCents < 0 {
		return ErrInvalidNotification
	}

	business := c.businessName(ctx, senderID)
	html, err := mailer.RenderInspectionReady(mailer.InspectionReadyData{
		BusinessName: business,
		ClientName:   strings.TrimSpace(req.ClientName),
		JobNumber:    req.JobNumber,
		PortalURL:    req.PortalURL,
		RugCount:     req.RugCount,
		TotalAmount:  inspection.FormatCents(req.TotalAmountCents),
	})
	if err != nil {
		return errs.Mark(err, ErrNotificationFailed)
	}

	_, err = c.mailer.Send(ctx, mailer.Email{
		From:    (&mail.Address{Name: business, Address: c.settings.FromEmail}).String(),
		To:      []string{to.Value()},
		Subject: "Your rug inspection report is ready - Job #" + req.JobNumber,
		HTML:    html,
	})
	if err != nil {
		slog.ErrorContext(ctx, "inspection ready email failed",
			"job_id", req.JobID.String(),
			"client", to.Masked(),
			"error", err.Error())
		return errs.Mark(err, ErrNotificationFailed)
	}
	return nil
}

func (c *inspectionCommandsImpl) businessName(ctx context.Context, userID uuid.UUID) string {
	name := ""
	err := c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Profiles().FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		name = p.DisplayBusinessName()
		return nil
	})
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		slog.WarnContext(ctx, "falling back to default business name", "error", err.Error())
	}
	if name == "" {
		return inspection.DefaultBusinessName
	}
	return name
}
