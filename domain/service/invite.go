package service

import (
	"context"
	"errors"

	"github.com/mbeoliero/leadgen/domain/repo"
)

var (
	ErrSendInProgress  = errors.New("another invitation is being sent")
	ErrLeadNotSendable = errors.New("lead not in sendable state")
)

// InviteDispatcher performs the outbound send-webhook call and returns the
// upstream response body.
type InviteDispatcher interface {
	SendInvite(ctx context.Context, leadId uint64, message string) (string, error)
}

type InviteService struct {
	leadRepo   repo.LeadRepo
	dispatcher InviteDispatcher
}

func NewInviteService(dispatcher InviteDispatcher) *InviteService {
	return &InviteService{
		leadRepo:   repo.GetLeadRepo(),
		dispatcher: dispatcher,
	}
}

// Send dispatches one invite. A lead anywhere in the "sending" state blocks
// all sends system-wide. The check is advisory, not an atomic transition:
// two near-simultaneous callers can both pass it (documented limitation;
// closing it needs a conditional status update). Note the happy path does not
// itself write "sending"; the automation side owns that transition.
func (s *InviteService) Send(ctx context.Context, leadId uint64, message string) (string, error) {
	sending, err := s.leadRepo.ExistsSending(ctx)
	if err != nil {
		return "", err
	}
	if sending {
		return "", ErrSendInProgress
	}

	lead, err := s.leadRepo.FindSendable(ctx, leadId)
	if err != nil {
		return "", err
	}
	if lead == nil {
		return "", ErrLeadNotSendable
	}

	return s.dispatcher.SendInvite(ctx, leadId, message)
}
