package services_test

import (
	"context"
	"testing"

	"refspot_backend/internal/cache"
	"refspot_backend/internal/models"
	"refspot_backend/internal/services"
	"refspot_backend/internal/services/dto"
	"refspot_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageFixture struct {
	users   *fakeUserRepo
	conns   *fakeConnectionRepo
	msgs    *fakeMessageRepo
	service services.MessageService
	alice   *models.User
	bob     *models.User
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()

	users := newFakeUserRepo()
	conns := newFakeConnectionRepo(users)
	msgs := newFakeMessageRepo(users)

	f := &messageFixture{
		users:   users,
		conns:   conns,
		msgs:    msgs,
		service: services.NewMessageService(msgs, users, conns, cache.NewNoopCache()),
	}
	f.alice = users.add(models.User{Username: "alice", Email: "alice@example.com"})
	f.bob = users.add(models.User{Username: "bob", Email: "bob@example.com"})
	return f
}

func (f *messageFixture) accept(t *testing.T, userA, userB *models.User) *models.Connection {
	t.Helper()
	conn := &models.Connection{SenderID: userA.ID, ReceiverID: userB.ID, Status: models.ConnectionStatusAccepted}
	require.NoError(t, f.conns.Create(conn))
	return conn
}

func TestMessageSendToUsername(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	f.accept(t, f.alice, f.bob)

	resp, err := f.service.SendToUsername(ctx, f.alice.ID, "bob", "hello")
	require.NoError(t, err)
	assert.Equal(t, string(models.MessageRequestApproved), resp.Status)

	_, err = f.service.SendToUsername(ctx, f.alice.ID, "ghost", "hello")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestMessageSendUnconnectedIsPending(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	resp, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "hello"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, string(models.MessageRequestPending), resp.Status)
	assert.Equal(t, "hello", resp.Content)
	assert.NotEmpty(t, resp.Time)

	// pending messages show up only in the receiver's request queue
	requests, err := f.service.Requests(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "alice", requests[0].Sender.Username)

	conversations, err := f.service.Conversations(ctx, f.bob.ID)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestMessageSendConnectedIsApproved(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()
	f.accept(t, f.alice, f.bob)

	resp, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "hey"})
	require.NoError(t, err)
	assert.Equal(t, string(models.MessageRequestApproved), resp.Status)

	conversations, err := f.service.Conversations(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "alice", conversations[0].Partner.Username)
	assert.Equal(t, int64(1), conversations[0].UnreadCount)
}

func TestMessageSendUnknownRecipient(t *testing.T) {
	f := newMessageFixture(t)

	_, err := f.service.Send(context.Background(), f.alice.ID, &dto.SendMessageRequest{RecipientID: 99, Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestMessageHistoryOutlivesConnection(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()
	conn := f.accept(t, f.alice, f.bob)

	resp, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "while connected"})
	require.NoError(t, err)
	require.Equal(t, string(models.MessageRequestApproved), resp.Status)

	// removing the connection does not revoke the approved history
	require.NoError(t, f.conns.Delete(conn.ID))

	resp, err = f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "after removal"})
	require.NoError(t, err)
	assert.Equal(t, string(models.MessageRequestApproved), resp.Status)

	// and the gate is symmetric
	resp, err = f.service.Send(ctx, f.bob.ID, &dto.SendMessageRequest{RecipientID: f.alice.ID, Content: "reply"})
	require.NoError(t, err)
	assert.Equal(t, string(models.MessageRequestApproved), resp.Status)
}

func TestMessageApprove(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	first, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "first"})
	require.NoError(t, err)
	second, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "second"})
	require.NoError(t, err)

	// only the receiver may approve
	assert.ErrorIs(t, f.service.Approve(ctx, f.alice.ID, first.MessageID), apperrors.ErrForbidden)

	require.NoError(t, f.service.Approve(ctx, f.bob.ID, first.MessageID))

	// approving one message leaves the other pending
	requests, err := f.service.Requests(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, second.MessageID, requests[0].ID)

	// but the approved history opens the gate for the next send
	resp, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "third"})
	require.NoError(t, err)
	assert.Equal(t, string(models.MessageRequestApproved), resp.Status)

	// approving twice reads as gone
	assert.ErrorIs(t, f.service.Approve(ctx, f.bob.ID, first.MessageID), apperrors.ErrMessageNotFound)
}

func TestMessageDecline(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	sent, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "hello"})
	require.NoError(t, err)
	require.NoError(t, f.service.Decline(ctx, f.bob.ID, sent.MessageID))

	// declined history does not approve the next attempt
	resp, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "again"})
	require.NoError(t, err)
	assert.Equal(t, string(models.MessageRequestPending), resp.Status)
}

func TestMessageConversation(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()
	f.accept(t, f.alice, f.bob)

	_, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "one"})
	require.NoError(t, err)
	_, err = f.service.Send(ctx, f.bob.ID, &dto.SendMessageRequest{RecipientID: f.alice.ID, Content: "two"})
	require.NoError(t, err)

	conv, err := f.service.Conversation(ctx, f.alice.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", conv.Partner.Username)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, "one", conv.Messages[0].Content)
	assert.True(t, conv.Messages[0].IsMine)
	assert.Equal(t, "two", conv.Messages[1].Content)
	assert.False(t, conv.Messages[1].IsMine)

	// opening the conversation marked bob's message read
	counts, err := f.service.Counts(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Zero(t, counts.UnreadCount)
}

func TestMessageCounts(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()
	f.accept(t, f.alice, f.bob)

	_, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "approved one"})
	require.NoError(t, err)
	_, err = f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "approved two"})
	require.NoError(t, err)

	carol := f.users.add(models.User{Username: "carol", Email: "carol@example.com"})
	_, err = f.service.Send(ctx, carol.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "stranger"})
	require.NoError(t, err)

	counts, err := f.service.Counts(ctx, f.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.UnreadCount)
	assert.Equal(t, int64(1), counts.PendingCount)
}

func TestMessageDeleteConversation(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()
	f.accept(t, f.alice, f.bob)

	_, err := f.service.Send(ctx, f.alice.ID, &dto.SendMessageRequest{RecipientID: f.bob.ID, Content: "one"})
	require.NoError(t, err)
	_, err = f.service.Send(ctx, f.bob.ID, &dto.SendMessageRequest{RecipientID: f.alice.ID, Content: "two"})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteConversation(ctx, f.alice.ID, "bob"))

	conv, err := f.service.Conversation(ctx, f.alice.ID, "bob")
	require.NoError(t, err)
	assert.Empty(t, conv.Messages)

	// both sides lose the history
	conversations, err := f.service.Conversations(ctx, f.bob.ID)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestMessageConversationsGrouping(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()
	carol := f.users.add(models.User{Username: "carol", Email: "carol@example.com"})
	f.accept(t, f.alice, f.bob)
	f.accept(t, f.alice, carol)

	_, err := f.service.Send(ctx, f.bob.ID, &dto.SendMessageRequest{RecipientID: f.alice.ID, Content: "from bob"})
	require.NoError(t, err)
	_, err = f.service.Send(ctx, carol.ID, &dto.SendMessageRequest{RecipientID: f.alice.ID, Content: "from carol"})
	require.NoError(t, err)
	_, err = f.service.Send(ctx, f.bob.ID, &dto.SendMessageRequest{RecipientID: f.alice.ID, Content: "bob again"})
	require.NoError(t, err)

	conversations, err := f.service.Conversations(ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// newest conversation first, latest message per partner
	assert.Equal(t, "bob", conversations[0].Partner.Username)
	assert.Equal(t, "bob again", conversations[0].LastMessage.Content)
	assert.Equal(t, int64(2), conversations[0].UnreadCount)
	assert.Equal(t, "carol", conversations[1].Partner.Username)
	assert.Equal(t, int64(1), conversations[1].UnreadCount)
}
