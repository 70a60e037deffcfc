package services_test

import (
	"context"
	"testing"

	"refspot_backend/internal/models"
	"refspot_backend/internal/services"
	"refspot_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	users := newFakeUserRepo()
	conns := newFakeConnectionRepo(users)
	msgs := newFakeMessageRepo(users)
	referrals := newFakeReferralRepo(users)
	service := services.NewDashboardService(users, conns, msgs, referrals)
	ctx := context.Background()

	alice := users.add(models.User{Username: "alice", Email: "alice@example.com"})
	bob := users.add(models.User{Username: "bob", Email: "bob@example.com"})
	carol := users.add(models.User{Username: "carol", Email: "carol@example.com"})

	require.NoError(t, conns.Create(&models.Connection{
		SenderID: bob.ID, ReceiverID: alice.ID, Status: models.ConnectionStatusAccepted,
	}))
	require.NoError(t, conns.Create(&models.Connection{
		SenderID: carol.ID, ReceiverID: alice.ID, Status: models.ConnectionStatusPending,
	}))

	// one approved unread, one pending unread: both count on the dashboard
	require.NoError(t, msgs.Create(&models.Message{
		SenderID: bob.ID, ReceiverID: alice.ID, Content: "hi",
		RequestStatus: models.MessageRequestApproved,
	}))
	require.NoError(t, msgs.Create(&models.Message{
		SenderID: carol.ID, ReceiverID: alice.ID, Content: "hello",
		RequestStatus: models.MessageRequestPending,
	}))

	require.NoError(t, referrals.CreateReferral(&models.JobReferral{
		ReferrerID: bob.ID, CandidateID: alice.ID, Company: "Globex",
		RoleTitle: "Engineer", Recommendation: "solid", ReferralType: models.ReferralTypeDirect,
		Status: models.ReferralStatusActive,
	}))

	resp, err := service.Dashboard(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.User.Username)
	require.Len(t, resp.RecentConnections, 1)
	assert.Equal(t, "bob", resp.RecentConnections[0].Username)
	assert.Equal(t, int64(2), resp.UnreadMessages)
	assert.Equal(t, int64(1), resp.PendingConnections)
	require.Len(t, resp.RecentReferrals, 1)
	assert.Equal(t, "Globex", resp.RecentReferrals[0].Company)

	_, err = service.Dashboard(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
