package services

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/testutil"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessageService() MessageService {
	return NewMessageService(repositories.NewMessageRepository(), repositories.NewUserRepository())
}

func TestMessageService_SendMessage_UnknownUser(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTestMessageService()
	alice := testutil.CreateUser(t, db, "Alice")

	cases := map[string]*dto.SendMessageRequest{
		"unknown sender":    {SenderUserID: "missing", RecipientUserID: alice.ID, Subject: "Hi"},
		"unknown recipient": {SenderUserID: alice.ID, RecipientUserID: "missing", Subject: "Hi"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.SendMessage(db, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrSenderOrRecipientNotFound)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, 404, appErr.HTTPCode)
			assert.Equal(t, int64(0), testutil.Count(t, db, &models.Message{}))
		})
	}
}

func TestMessageService_SendAndInbox(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTestMessageService()
	alice := testutil.CreateUser(t, db, "Alice")
	bob := testutil.CreateUser(t, db, "Bob")

	sent, err := svc.SendMessage(db, &dto.SendMessageRequest{
		SenderUserID:    alice.ID,
		RecipientUserID: bob.ID,
		Subject:         "Hi",
		Date:            "2024-01-01",
		Content:         "Hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sent.ID)
	assert.Equal(t, "2024-01-01", sent.Date)
	assert.False(t, sent.Read)

	inbox, err := svc.GetInbox(db, bob.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, sent.ID, inbox[0].ID)
	require.NotNil(t, inbox[0].Sender)
	assert.Equal(t, alice.ID, inbox[0].Sender.ID)

	aliceInbox, err := svc.GetInbox(db, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceInbox)
	assert.NotNil(t, aliceInbox)
}

func TestMessageService_SendMessage_DefaultDate(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTestMessageService()
	alice := testutil.CreateUser(t, db, "Alice")

	sent, err := svc.SendMessage(db, &dto.SendMessageRequest{
		SenderUserID:    alice.ID,
		RecipientUserID: alice.ID,
		Subject:         "Note to self",
	})
	require.NoError(t, err)
	assert.Len(t, sent.Date, len(models.DateLayout))
}

func TestMessageService_MarkAsRead(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTestMessageService()
	alice := testutil.CreateUser(t, db, "Alice")
	bob := testutil.CreateUser(t, db, "Bob")

	sent, err := svc.SendMessage(db, &dto.SendMessageRequest{
		SenderUserID: alice.ID, RecipientUserID: bob.ID, Subject: "Hi", Date: "2024-01-01", Content: "Hello",
	})
	require.NoError(t, err)

	t.Run("non-recipient is forbidden", func(t *testing.T) {
		err := svc.MarkAsRead(db, sent.ID, alice.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotMessageRecipient)

		msg, err := svc.ViewMessage(db, sent.ID)
		require.NoError(t, err)
		assert.False(t, msg.Read)
	})

	t.Run("recipient twice", func(t *testing.T) {
		require.NoError(t, svc.MarkAsRead(db, sent.ID, bob.ID))
		require.NoError(t, svc.MarkAsRead(db, sent.ID, bob.ID))

		msg, err := svc.ViewMessage(db, sent.ID)
		require.NoError(t, err)
		assert.True(t, msg.Read)

		unread, err := svc.GetUnreadMessages(db, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, unread)
	})

	t.Run("missing message", func(t *testing.T) {
		err := svc.MarkAsRead(db, "missing", bob.ID)
		assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
	})
}

func TestMessageService_ViewAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTestMessageService()
	alice := testutil.CreateUser(t, db, "Alice")
	bob := testutil.CreateUser(t, db, "Bob")

	sent, err := svc.SendMessage(db, &dto.SendMessageRequest{
		SenderUserID: alice.ID, RecipientUserID: bob.ID, Subject: "Hi", Date: "2024-01-01",
	})
	require.NoError(t, err)

	viewed, err := svc.ViewMessage(db, sent.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi", viewed.Subject)

	require.NoError(t, svc.DeleteMessage(db, sent.ID))
	assert.ErrorIs(t, svc.DeleteMessage(db, sent.ID), apperrors.ErrMessageNotFound)

	_, err = svc.ViewMessage(db, sent.ID)
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}

func TestMessageService_GetInbox_EmptyUserID(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTestMessageService()
	alice := testutil.CreateUser(t, db, "Alice")
	bob := testutil.CreateUser(t, db, "Bob")

	_, err := svc.SendMessage(db, &dto.SendMessageRequest{
		SenderUserID:    alice.ID,
		RecipientUserID: bob.ID,
		Subject:         "Hi",
		Content:         "Hello",
	})
	require.NoError(t, err)

	inbox, err := svc.GetInbox(db, "")
	require.Error(t, err)
	assert.Nil(t, inbox)
	assert.ErrorIs(t, err, repositories.ErrRecipientRequired)
}
