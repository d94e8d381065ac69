package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"

	"github.com/securefit/ecard/dispatch"
	"github.com/securefit/ecard/ecard"
	"github.com/securefit/ecard/models"
	"github.com/securefit/ecard/repositories"
	"github.com/securefit/ecard/signature"
)

// User-facing status messages for the submit pipeline
const (
	msgSendFailed  = "Failed to send e-card. Please try again later."
	msgSaveFailed  = "E-card sent successfully, but failed to save record to database. Please try again."
	msgSendSuccess = "Fit Testing Results E-card sent successfully!"
	msgBadOptions  = "Please select valid options for the highlighted fields."
	msgNoRecipient = "Cannot resend: No recipient email found for this record."
)

// MsgResent is the resend success message, shown by the results page
const MsgResent = "E-card resent successfully!"

// ErrNoRecipient means a stored record has no recipient address to resend to
var ErrNoRecipient = errors.New(msgNoRecipient)

// SubmitOutcome is the terminal state of one submit attempt
type SubmitOutcome struct {
	Status      models.FlashMessage
	FieldErrors models.FieldErrors
	// Form is the draft to render next: reset to defaults after full
	// success, unchanged otherwise so the user keeps their entered data
	Form *models.FitTestForm
	// Record is set when the record was persisted
	Record *models.FitTestRecord
}

// FitTestService defines the fit test business logic
type FitTestService interface {
	// Submit runs the ordered pipeline: validate, render, dispatch email,
	// persist. Each step is gated on the previous step's success; a record
	// is never stored without a successful dispatch.
	Submit(ctx context.Context, user *models.User, form *models.FitTestForm, capture *signature.Capture) (*SubmitOutcome, error)
	ListGrouped(ctx context.Context, userID string) ([]MonthBucket, error)
	Count(ctx context.Context, userID string) (int, error)
	Get(ctx context.Context, userID, id string) (*models.FitTestRecord, error)
	Update(ctx context.Context, userID, id string, form *models.FitTestForm) (*models.FitTestRecord, error)
	Resend(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
}

// fitTestService implements FitTestService
type fitTestService struct {
	repo       repositories.FitTestRepository
	dispatcher dispatch.Dispatcher
}

// NewFitTestService creates a new fit test service
func NewFitTestService(repo repositories.FitTestRepository, dispatcher dispatch.Dispatcher) FitTestService {
	return &fitTestService{repo: repo, dispatcher: dispatcher}
}

// Submit implements the ordered submit pipeline
func (s *fitTestService) Submit(ctx context.Context, user *models.User, form *models.FitTestForm, capture *signature.Capture) (*SubmitOutcome, error) {
	// Replay the posted input-event stream through the signature surface.
	// The validator only ever sees the resulting boolean.
	var pad *signature.Pad
	if capture != nil {
		pad = signature.Replay(capture)
	}
	hasStrokes := pad != nil && pad.HasStrokes()

	validation := form.Validate(hasStrokes)
	if !validation.IsValid {
		// No network calls happen for an invalid draft
		return &SubmitOutcome{
			Status:      models.FlashMessage{Type: "error", Message: validation.Error},
			FieldErrors: validation.FieldErrors,
			Form:        form,
		}, nil
	}

	// Capture the signature export into the draft before dispatching
	image, err := pad.ExportPNG()
	if err != nil {
		return nil, fmt.Errorf("failed to export signature: %w", err)
	}
	form.SignatureImage = image

	record := form.ToRecord(userID(user))
	if err := record.CheckEnums(); err != nil {
		log.WithError(err).Warn("rejected submit with forged enum value")
		return &SubmitOutcome{
			Status: models.FlashMessage{Type: "error", Message: msgBadOptions},
			Form:   form,
		}, nil
	}

	html, err := ecard.Render(record)
	if err != nil {
		return nil, err
	}

	// Step 1: dispatch the card. A failure here stops the pipeline; nothing
	// is persisted.
	err = s.dispatcher.Send(ctx, dispatch.Message{
		Recipient:     record.RecipientEmail,
		RecipientName: record.ClientName,
		Subject:       ecard.Subject,
		HTML:          html,
	})
	if err != nil {
		log.WithError(err).Error("e-card dispatch failed")
		return &SubmitOutcome{
			Status: models.FlashMessage{Type: "error", Message: dispatchErrorMessage(err)},
			Form:   form,
		}, nil
	}

	// Step 2: persist, only when a signed-in owner is available
	if record.UserID == "" {
		log.Warn("user not signed in, skipping database save")
		return &SubmitOutcome{
			Status: models.FlashMessage{Type: "success", Message: msgSendSuccess},
			Form:   models.NewFitTestForm(""),
		}, nil
	}

	if err := s.repo.Create(ctx, record); err != nil {
		// The card was already sent: a warning, not a hard error, and the
		// draft is kept so the user does not lose their entered data
		log.WithError(err).Error("failed to save fit test record after dispatch")
		return &SubmitOutcome{
			Status: models.FlashMessage{Type: "warning", Message: msgSaveFailed},
			Form:   form,
		}, nil
	}

	return &SubmitOutcome{
		Status: models.FlashMessage{Type: "success", Message: msgSendSuccess},
		Form:   models.NewFitTestForm(user.Name),
		Record: record,
	}, nil
}

// dispatchErrorMessage keeps the actionable provider misconfigurations
// distinct from the generic failure message
func dispatchErrorMessage(err error) string {
	if errors.Is(err, dispatch.ErrTemplateRecipient) || errors.Is(err, dispatch.ErrNotConfigured) {
		return err.Error()
	}
	return msgSendFailed
}

func userID(user *models.User) string {
	if user == nil {
		return ""
	}
	return user.ID
}

// ListGrouped returns the user's records bucketed by issue month, newest first
func (s *fitTestService) ListGrouped(ctx context.Context, userID string) ([]MonthBucket, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return GroupByMonth(records), nil
}

// Count returns the number of stored records owned by a user, including
// dateless records that the month buckets exclude
func (s *fitTestService) Count(ctx context.Context, userID string) (int, error) {
	return s.repo.CountByUser(ctx, userID)
}

// Get retrieves one record, scoped to its owner
func (s *fitTestService) Get(ctx context.Context, userID, id string) (*models.FitTestRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Records are scoped by owner; another user's record looks absent
	if record.UserID != userID {
		return nil, fmt.Errorf("%w: %s", repositories.ErrNotFound, id)
	}
	return record, nil
}

// Update overwrites an owned record's fields from an edited draft
func (s *fitTestService) Update(ctx context.Context, userID, id string, form *models.FitTestForm) (*models.FitTestRecord, error) {
	record, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated := form.ToRecord(record.UserID)
	updated.ID = record.ID
	updated.CreatedAt = record.CreatedAt
	if updated.SignatureImage == "" {
		updated.SignatureImage = record.SignatureImage
	}
	if err := updated.CheckEnums(); err != nil {
		return nil, fmt.Errorf("invalid field selection: %w", err)
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Resend dispatches the card for a stored record again, using its current
// saved fields, then re-stamps updated_at. No visible field changes.
func (s *fitTestService) Resend(ctx context.Context, userID, id string) error {
	record, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if record.RecipientEmail == "" {
		return ErrNoRecipient
	}

	html, err := ecard.Render(record)
	if err != nil {
		return err
	}

	if err := s.dispatcher.Send(ctx, dispatch.Message{
		Recipient:     record.RecipientEmail,
		RecipientName: record.ClientName,
		Subject:       ecard.Subject,
		HTML:          html,
	}); err != nil {
		return fmt.Errorf("failed to resend e-card: %w", err)
	}

	if err := s.repo.Touch(ctx, id); err != nil {
		// The card went out; the stale timestamp is worth a log line only
		log.WithError(err).WithField("record", id).Warn("failed to re-stamp record after resend")
	}
	return nil
}

// Delete permanently removes an owned record
func (s *fitTestService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
