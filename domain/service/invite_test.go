package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeoliero/leadgen/domain/entity"
	"github.com/mbeoliero/leadgen/domain/repo"
)

func newTestInviteService(t *testing.T) (*InviteService, *MockLeadRepo, *mockInviteDispatcher) {
	t.Helper()
	leads := NewMockLeadRepo()
	repo.SetLeadRepo(leads)
	dispatcher := &mockInviteDispatcher{body: `{"message":"queued"}`}
	return NewInviteService(dispatcher), leads, dispatcher
}

func sendableLead(id uint64) *entity.Lead {
	return &entity.Lead{
		Id:               id,
		FullName:         "Some Lead",
		ConnectionStatus: entity.ConnectionStatusWaitingForReview,
	}
}

func TestSend(t *testing.T) {
	svc, leads, dispatcher := newTestInviteService(t)
	leads.Put(sendableLead(7))

	body, err := svc.Send(context.Background(), 7, "hello there")
	require.NoError(t, err)
	assert.Equal(t, `{"message":"queued"}`, body)
	assert.Equal(t, 1, dispatcher.calls)
	assert.Equal(t, uint64(7), dispatcher.lastLeadId)
	assert.Equal(t, "hello there", dispatcher.lastMessage)
}

func TestSend_BlockedWhileAnotherIsSending(t *testing.T) {
	svc, leads, dispatcher := newTestInviteService(t)
	leads.Put(sendableLead(7))
	// any lead in "sending" blocks every send, not just its own
	leads.Put(&entity.Lead{Id: 8, ConnectionStatus: entity.ConnectionStatusSending})

	_, err := svc.Send(context.Background(), 7, "hello")
	assert.ErrorIs(t, err, ErrSendInProgress)
	assert.Zero(t, dispatcher.calls)
}

func TestSend_NotSendable(t *testing.T) {
	svc, leads, dispatcher := newTestInviteService(t)

	sent := int64(1)
	cases := []*entity.Lead{
		nil, // missing entirely
		{Id: 7, ConnectionStatus: "connected"},
		{Id: 7, ConnectionStatus: entity.ConnectionStatusWaitingForReview, ConnectionSent: &sent},
	}
	for _, lead := range cases {
		if lead != nil {
			leads.Put(lead)
		}
		_, err := svc.Send(context.Background(), 7, "hello")
		assert.ErrorIs(t, err, ErrLeadNotSendable)
	}
	assert.Zero(t, dispatcher.calls)
}

func TestSend_DispatchErrorPassesThrough(t *testing.T) {
	svc, leads, dispatcher := newTestInviteService(t)
	leads.Put(sendableLead(7))
	dispatcher.err = assert.AnError

	_, err := svc.Send(context.Background(), 7, "hello")
	assert.ErrorIs(t, err, assert.AnError)
}
