package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyhobbies/webapp-e2e/internal/authstate"
	"github.com/familyhobbies/webapp-e2e/internal/fixtures"
	"github.com/familyhobbies/webapp-e2e/internal/format"
	"github.com/familyhobbies/webapp-e2e/internal/pages"
)

func TestPayments_ListShowsSeededPayments(t *testing.T) {
	env := RequireStack(t)
	page := Page(t, authstate.RoleFamily)

	list := pages.NewPaymentsPage(page, env.Config.BaseURL)
	require.NoError(t, list.Goto())

	payment := fixtures.CompletedPianoPayment
	index, err := list.RowIndexForPayment(payment.ID)
	require.NoError(t, err)

	status, err := list.StatusAt(index)
	require.NoError(t, err)
	assert.Equal(t, string(payment.Status), status)

	amount, err := list.AmountTextAt(index)
	require.NoError(t, err)
	assert.Equal(t, format.PriceText(32050), amount)
}

func TestPayment_HelloAssoWebhookCompletesPayment(t *testing.T) {
	env := RequireStack(t)
	ctx := testContext(t)

	payment := fixtures.PendingJudoPayment
	user := fixtures.FamilyUser

	sess, err := env.Gateway.Authenticate(ctx, user.Email, user.Password)
	require.NoError(t, err)

	require.NoError(t, env.Gateway.SimulateHelloAssoWebhook(ctx, "Payment", map[string]any{
		"id":    payment.ID,
		"state": "Authorized",
	}))

	// Webhook processing is asynchronous; poll until the backend lands
	// on COMPLETED rather than sleeping a fixed interval.
	require.NoError(t, env.Gateway.WaitForPaymentStatus(ctx, sess, payment.ID,
		string(fixtures.PaymentCompleted), 15*time.Second))

	page := Page(t, authstate.RoleFamily)
	list := pages.NewPaymentsPage(page, env.Config.BaseURL)
	require.NoError(t, list.Goto())

	index, err := list.RowIndexForPayment(payment.ID)
	require.NoError(t, err)
	require.NoError(t, list.WaitForStatus(index, string(fixtures.PaymentCompleted)))

	detail, err := list.OpenPayment(index)
	require.NoError(t, err)

	status, err := detail.Status()
	require.NoError(t, err)
	assert.Equal(t, string(fixtures.PaymentCompleted), status)

	amount, err := detail.Amount()
	require.NoError(t, err)
	assert.Equal(t, format.PriceText(15000), amount)
}
