package bot

import (
	"context"
	"encoding/base64"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/cache"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/config"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/crypto"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/database"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/steam"
	testdb "github.com/megafartCc/FunpayAutomationV2-sub000/test/database"
)

// testMafile is a minimal authenticator payload with a valid shared secret.
var testMafile = `{"shared_secret":"` +
	base64.StdEncoding.EncodeToString([]byte("0123456789abcdefghij")) +
	`","account_name":"smurf","Session":{"SteamID":76561198000000001}}`

type botFixture struct {
	bot    *Bot
	fake   *funpay.Fake
	deps   *Deps
	ws     *ent.Workspace
	client *database.Client
}

func newBotFixture(t *testing.T) *botFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	cipher, err := crypto.New("test-passphrase")
	require.NoError(t, err)

	cfg := config.Load()
	cfg.Bot.PollInterval = 10 * time.Millisecond
	cfg.Reaper.CheckInterval = 10 * time.Millisecond

	fake := funpay.NewFake()
	deps := &Deps{
		Cfg:           cfg,
		Auth:          services.NewAuthService(client.Client),
		Workspaces:    services.NewWorkspaceService(client.Client, cipher),
		Accounts:      services.NewAccountService(client.Client, cipher),
		Lots:          services.NewLotService(client.Client),
		Orders:        services.NewOrderService(client.Client),
		Blacklist:     services.NewBlacklistService(client.Client),
		Bonus:         services.NewBonusService(client.Client),
		Chats:         services.NewChatService(client.Client),
		Settings:      services.NewSettingsService(client.Client),
		Notifications: services.NewNotificationService(client.Client),
		Reviews:       services.NewReviewService(client.Client),
		Cache:         cache.NewMemory(),
		Guard:         steam.NewGuardGenerator(),
		NewClient: func(funpay.Options) (funpay.Client, error) {
			return fake, nil
		},
	}

	ws, err := deps.Workspaces.Create(context.Background(), models.CreateWorkspaceRequest{
		UserID: 1,
		Label:  "main",
		Token:  "golden-key",
	})
	require.NoError(t, err)

	b, err := New(deps, ws)
	require.NoError(t, err)
	// Handlers are exercised directly; establish the session by hand.
	session, err := fake.Bootstrap(context.Background())
	require.NoError(t, err)
	b.session = session

	return &botFixture{bot: b, fake: fake, deps: deps, ws: ws, client: client}
}

func (f *botFixture) createAccount(t *testing.T, name string, mmr, duration int) *ent.Account {
	t.Helper()
	acc, err := f.deps.Accounts.Create(context.Background(), models.CreateAccountRequest{
		UserID:                f.ws.UserID,
		WorkspaceID:           f.ws.ID,
		DisplayName:           name,
		Login:                 name + "_login",
		Password:              "p@ss",
		MaFileJSON:            testMafile,
		MMR:                   mmr,
		RentalDurationMinutes: duration,
	})
	require.NoError(t, err)
	return acc
}

func (f *botFixture) mapLot(t *testing.T, lotNumber string, accountID int) {
	t.Helper()
	_, err := f.deps.Lots.Create(context.Background(), models.CreateLotRequest{
		UserID:      f.ws.UserID,
		WorkspaceID: f.ws.ID,
		LotNumber:   lotNumber,
		AccountID:   accountID,
		LotURL:      "https://funpay.com/lots/offer?id=" + lotNumber,
	})
	require.NoError(t, err)
}

func buyerMessage(text string) funpay.Message {
	return funpay.Message{
		ChatID:    "buyer1",
		MessageID: "m-" + text,
		Author:    "buyer1",
		Text:      text,
		Time:      time.Now(),
	}
}

func TestOrderPaidIssuesAccount(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 60)
	f.mapLot(t, "77", acc.ID)

	order := funpay.OrderInfo{OrderID: "ABCD1234", Buyer: "buyer1", Description: "Аренда №77", Amount: 2, Price: 100}
	f.bot.handleOrderPaid(ctx, order, "buyer1")

	got, err := f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Owner)
	assert.Equal(t, "buyer1", *got.Owner)
	assert.Equal(t, 120, got.RentalDurationMinutes, "two units pay for two hours")
	assert.Nil(t, got.RentalStart, "clock starts on the first guard-code request")

	texts := f.fake.SentTexts()
	require.NotEmpty(t, texts)
	assert.Contains(t, texts[0], "smurf1_login")
	assert.Contains(t, f.fake.Confirmed, "ABCD1234")
}

func TestOrderPaidReplayIsNoOp(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 60)
	f.mapLot(t, "77", acc.ID)

	order := funpay.OrderInfo{OrderID: "ABCD1234", Buyer: "buyer1", Description: "Аренда №77", Amount: 1}
	f.bot.handleOrderPaid(ctx, order, "buyer1")
	sentBefore := len(f.fake.SentTexts())

	f.bot.handleOrderPaid(ctx, order, "buyer1")
	assert.Equal(t, sentBefore, len(f.fake.SentTexts()), "replay must not produce replies")

	got, err := f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.RentalDurationMinutes, "replay must not extend")
}

func TestOrderPaidSameBuyerExtends(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 60)
	f.mapLot(t, "77", acc.ID)

	f.bot.handleOrderPaid(ctx, funpay.OrderInfo{OrderID: "AAAA1111", Buyer: "buyer1", Description: "Аренда №77", Amount: 1}, "buyer1")
	f.bot.handleOrderPaid(ctx, funpay.OrderInfo{OrderID: "BBBB2222", Buyer: "buyer1", Description: "Аренда №77", Amount: 1}, "buyer1")

	got, err := f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.RentalDurationMinutes)

	extended, err := f.deps.Orders.WasProcessed(ctx, f.ws.ID, "BBBB2222", orderevent.ActionExtended)
	require.NoError(t, err)
	assert.True(t, extended)
}

func TestOrderPaidBusyFallsBackToReplacement(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	busy := f.createAccount(t, "smurf1", 3200, 60)
	sub := f.createAccount(t, "smurf2", 3500, 60)
	f.mapLot(t, "77", busy.ID)

	_, err := f.deps.Accounts.Assign(ctx, busy.ID, "other", "XXXX0000", 60)
	require.NoError(t, err)

	f.bot.handleOrderPaid(ctx, funpay.OrderInfo{OrderID: "CCCC3333", Buyer: "buyer1", Description: "Аренда №77", Amount: 1}, "buyer1")

	got, err := f.deps.Accounts.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Owner)
	assert.Equal(t, "buyer1", *got.Owner)

	replaced, err := f.deps.Orders.WasProcessed(ctx, f.ws.ID, "CCCC3333", orderevent.ActionReplaceAssign)
	require.NoError(t, err)
	assert.True(t, replaced)
}

func TestOrderPaidNoFreeAccount(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	busy := f.createAccount(t, "smurf1", 3200, 60)
	f.mapLot(t, "77", busy.ID)

	_, err := f.deps.Accounts.Assign(ctx, busy.ID, "other", "XXXX0000", 60)
	require.NoError(t, err)

	f.bot.handleOrderPaid(ctx, funpay.OrderInfo{OrderID: "DDDD4444", Buyer: "buyer1", Description: "Аренда №77", Amount: 1}, "buyer1")

	recorded, err := f.deps.Orders.WasProcessed(ctx, f.ws.ID, "DDDD4444", orderevent.ActionBusy)
	require.NoError(t, err)
	assert.True(t, recorded)
	assert.Contains(t, f.fake.SentTexts(), replyNoFree)
}

func TestBlacklistedOrderAccumulatesAndRestores(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 60)
	f.mapLot(t, "77", acc.ID)
	f.deps.Cfg.Blacklist.CompHours = 2
	f.deps.Cfg.Blacklist.CompUnitMinutes = 60

	_, err := f.deps.Blacklist.Add(ctx, f.ws.ID, f.ws.UserID, "buyer1", "fraud")
	require.NoError(t, err)

	// First paid hour: still blocked.
	f.bot.handleOrderPaid(ctx, funpay.OrderInfo{OrderID: "EEEE5555", Buyer: "buyer1", Description: "Аренда №77", Amount: 1}, "buyer1")
	blocked, err := f.deps.Blacklist.IsBlacklisted(ctx, f.ws.ID, f.ws.UserID, "buyer1")
	require.NoError(t, err)
	assert.True(t, blocked)

	got, err := f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Owner, "blocked order must not assign")

	// Second paid hour reaches the threshold: restored before the reply.
	f.bot.handleOrderPaid(ctx, funpay.OrderInfo{OrderID: "FFFF6666", Buyer: "buyer1", Description: "Аренда №77", Amount: 1}, "buyer1")
	blocked, err = f.deps.Blacklist.IsBlacklisted(ctx, f.ws.ID, f.ws.UserID, "buyer1")
	require.NoError(t, err)
	assert.False(t, blocked)
	assert.Contains(t, f.fake.SentTexts(), replyUnblacklisted)
}

func TestExtendHintRedirectsPaymentToHeldRental(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	free := f.createAccount(t, "smurf1", 3200, 60)
	held := f.createAccount(t, "smurf2", 3400, 60)
	f.mapLot(t, "77", free.ID)
	f.mapLot(t, "88", held.ID)

	_, err := f.deps.Accounts.Assign(ctx, held.ID, "buyer1", "AAAA1111", 60)
	require.NoError(t, err)

	// !продлить quotes the held lot and parks the hint.
	f.bot.handleMessage(ctx, buyerMessage("!продлить"))

	// Paying a lot mapped to a different account still extends the held
	// rental instead of handing out the free one.
	f.bot.handleOrderPaid(ctx, funpay.OrderInfo{OrderID: "BBBB2222", Buyer: "buyer1", Description: "Аренда №77", Amount: 1}, "buyer1")

	got, err := f.deps.Accounts.GetByID(ctx, held.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.RentalDurationMinutes)

	other, err := f.deps.Accounts.GetByID(ctx, free.ID)
	require.NoError(t, err)
	assert.Nil(t, other.Owner)

	extended, err := f.deps.Orders.WasProcessed(ctx, f.ws.ID, "BBBB2222", orderevent.ActionExtended)
	require.NoError(t, err)
	assert.True(t, extended)
}

func TestFeedbackFiveStarsGrantsBonusOnce(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()

	fb := funpay.Feedback{OrderID: "ABCD1234", Buyer: "buyer1", Rating: 5}
	f.bot.handleFeedback(ctx, fb, "buyer1")

	balance, err := f.deps.Bonus.Balance(ctx, f.ws.ID, f.ws.UserID, "buyer1")
	require.NoError(t, err)
	assert.Equal(t, 60, balance, "the bonus defaults to an hour")
	assert.Contains(t, f.fake.SentTexts(), replyReviewBonus(60, 60))

	// An edited review replays the event; the grant stays single.
	f.bot.handleFeedback(ctx, fb, "buyer1")
	balance, err = f.deps.Bonus.Balance(ctx, f.ws.ID, f.ws.UserID, "buyer1")
	require.NoError(t, err)
	assert.Equal(t, 60, balance)
}

func TestFeedbackBelowFiveStarsGrantsNothing(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()

	f.bot.handleFeedback(ctx, funpay.Feedback{OrderID: "ABCD1234", Buyer: "buyer1", Rating: 4}, "buyer1")

	balance, err := f.deps.Bonus.Balance(ctx, f.ws.ID, f.ws.UserID, "buyer1")
	require.NoError(t, err)
	assert.Zero(t, balance)
	assert.Empty(t, f.fake.SentTexts())
}

func TestFeedbackDeletedRevertsBonusAndNotifies(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()

	f.bot.handleFeedback(ctx, funpay.Feedback{OrderID: "ABCD1234", Buyer: "buyer1", Rating: 5}, "buyer1")
	f.bot.handleFeedbackDeleted(ctx, funpay.Feedback{OrderID: "ABCD1234"}, "buyer1")

	balance, err := f.deps.Bonus.Balance(ctx, f.ws.ID, f.ws.UserID, "buyer1")
	require.NoError(t, err)
	assert.Zero(t, balance)
	assert.Contains(t, f.fake.SentTexts(), replyBonusReverted(60, 0))
}

func TestAutoTicketDefaultsOn(t *testing.T) {
	f := newBotFixture(t)
	t.Cleanup(f.bot.tickets.CancelAll)

	f.bot.scheduleAutoTicket("ABCD1234", time.Minute)

	f.bot.tickets.mu.Lock()
	_, armed := f.bot.tickets.timers["ABCD1234"]
	f.bot.tickets.mu.Unlock()
	assert.True(t, armed, "the watcher arms without a stored setting")

	require.NoError(t, f.deps.Settings.Set(context.Background(), f.ws.UserID, services.SettingAutoTicket, "false"))
	f.bot.scheduleAutoTicket("EFGH5678", time.Minute)

	f.bot.tickets.mu.Lock()
	_, armed = f.bot.tickets.timers["EFGH5678"]
	f.bot.tickets.mu.Unlock()
	assert.False(t, armed, "a stored \"false\" disables the watcher")
}

func TestAutoRaiseDefaultsOn(t *testing.T) {
	f := newBotFixture(t)

	f.bot.maybeRaiseLots()

	assert.Equal(t, []int{41}, f.fake.Raised, "raising runs without a stored setting")
}

func TestAutoRaiseDisabledBySetting(t *testing.T) {
	f := newBotFixture(t)
	require.NoError(t, f.deps.Settings.Set(context.Background(), f.ws.UserID, services.SettingAutoRaise, "false"))

	f.bot.maybeRaiseLots()

	assert.Empty(t, f.fake.Raised)
}

func TestCommandCodeStartsTimerOnce(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 60)
	_, err := f.deps.Accounts.Assign(ctx, acc.ID, "buyer1", "ABCD1234", 60)
	require.NoError(t, err)

	f.bot.handleMessage(ctx, buyerMessage("!код"))

	got, err := f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RentalStart, "first !код starts the clock")
	firstStart := *got.RentalStart

	texts := f.fake.SentTexts()
	require.GreaterOrEqual(t, len(texts), 2)
	assert.Contains(t, texts[len(texts)-1], "smurf1_login")

	f.bot.handleMessage(ctx, buyerMessage("!code"))
	got, err = f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, firstStart.Unix(), got.RentalStart.Unix(), "second request must not restart the clock")
}

func TestCommandPauseResume(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 60)
	_, err := f.deps.Accounts.Assign(ctx, acc.ID, "buyer1", "ABCD1234", 60)
	require.NoError(t, err)

	// Pause before the first !код is rejected.
	f.bot.handleMessage(ctx, buyerMessage("!пауза"))
	assert.Contains(t, f.fake.SentTexts(), replyPauseNeeded)

	_, _, err = f.deps.Accounts.StartRental(ctx, acc.ID)
	require.NoError(t, err)

	f.bot.handleMessage(ctx, buyerMessage("!пауза again"))
	got, err := f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, got.RentalFrozen)

	f.bot.handleMessage(ctx, buyerMessage("!продолжить"))
	got, err = f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.False(t, got.RentalFrozen)
}

func TestCommandBonus(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 60)
	_, err := f.deps.Accounts.Assign(ctx, acc.ID, "buyer1", "ABCD1234", 60)
	require.NoError(t, err)

	// Empty wallet: balance reply only.
	f.bot.handleMessage(ctx, buyerMessage("!бонус"))
	assert.Contains(t, f.fake.SentTexts(), replyBonusBalance(0))

	_, err = f.deps.Bonus.Adjust(ctx, f.ws.ID, f.ws.UserID, "buyer1", 90, "seed", "")
	require.NoError(t, err)

	f.bot.handleMessage(ctx, funpay.Message{
		ChatID: "buyer1", MessageID: "m-spend", Author: "buyer1",
		Text: "!бонус " + itoa(acc.ID), Time: time.Now(),
	})

	got, err := f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.RentalDurationMinutes)

	balance, err := f.deps.Bonus.Balance(ctx, f.ws.ID, f.ws.UserID, "buyer1")
	require.NoError(t, err)
	assert.Equal(t, 30, balance)
}

func TestCommandCancelReleasesAndResetsDuration(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 180)
	_, err := f.deps.Accounts.Assign(ctx, acc.ID, "buyer1", "ABCD1234", 180)
	require.NoError(t, err)

	f.bot.handleMessage(ctx, buyerMessage("!отмена"))

	got, err := f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Owner)
	assert.Equal(t, defaultRentalMinutes, got.RentalDurationMinutes)
	assert.Contains(t, f.fake.SentTexts(), replyCancelOK)
}

func TestCommandReplaceTransfersClock(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	lowPrio := f.createAccount(t, "smurf1", 3200, 120)
	low := true
	_, err := f.deps.Accounts.Update(ctx, f.ws.UserID, lowPrio.ID, models.UpdateAccountRequest{LowPriority: &low})
	require.NoError(t, err)
	sub := f.createAccount(t, "smurf2", 3400, 60)

	_, err = f.deps.Accounts.Assign(ctx, lowPrio.ID, "buyer1", "ABCD1234", 120)
	require.NoError(t, err)
	started, _, err := f.deps.Accounts.StartRental(ctx, lowPrio.ID)
	require.NoError(t, err)

	f.bot.handleMessage(ctx, buyerMessage("!лпзамена"))

	newAcc, err := f.deps.Accounts.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, newAcc.Owner)
	assert.Equal(t, "buyer1", *newAcc.Owner)
	assert.Equal(t, 120, newAcc.RentalDurationMinutes)
	require.NotNil(t, newAcc.RentalStart)
	assert.Equal(t, started.RentalStart.Unix(), newAcc.RentalStart.Unix(), "clock is inherited")

	old, err := f.deps.Accounts.GetByID(ctx, lowPrio.ID)
	require.NoError(t, err)
	assert.Nil(t, old.Owner)

	// Rate limit: a second swap within the hour is refused.
	f.bot.handleMessage(ctx, buyerMessage("!лпзамена second"))
	assert.Contains(t, f.fake.SentTexts(), replyReplaceLimit)
}

func TestCommandStockBatches(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		acc := f.createAccount(t, "smurf"+itoa(i), 3000+i, 60)
		f.mapLot(t, itoa(100+i), acc.ID)
	}

	f.bot.handleMessage(ctx, buyerMessage("!сток"))

	texts := f.fake.SentTexts()
	require.Len(t, texts, 2, "10 lots split into batches of 8")
	assert.Len(t, strings.Split(texts[0], "\n"), 8)
	assert.Len(t, strings.Split(texts[1], "\n"), 2)
}

func TestDedupSuppressesReplay(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 60)
	_, err := f.deps.Accounts.Assign(ctx, acc.ID, "buyer1", "ABCD1234", 60)
	require.NoError(t, err)

	msg := buyerMessage("!акк")
	f.bot.handleMessage(ctx, msg)
	sent := len(f.fake.SentTexts())
	f.bot.handleMessage(ctx, msg)
	assert.Equal(t, sent, len(f.fake.SentTexts()), "same message id handled once")
}

func TestReaperExpiresRental(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 60)
	_, err := f.deps.Accounts.Assign(ctx, acc.ID, "buyer1", "ABCD1234", 60)
	require.NoError(t, err)
	_, _, err = f.deps.Accounts.StartRental(ctx, acc.ID)
	require.NoError(t, err)

	// Rewind the clock past the rental window.
	past := time.Now().Add(-2 * time.Hour)
	err = f.client.Client.Account.UpdateOneID(acc.ID).SetRentalStart(past).Exec(ctx)
	require.NoError(t, err)

	f.bot.reapOnce()

	got, err := f.deps.Accounts.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Owner, "expired rental is released")

	texts := f.fake.SentTexts()
	require.NotEmpty(t, texts)
	assert.Contains(t, texts[len(texts)-1], "ABCD1234", "expiry notice links the order")
}

func TestReaperSendsOneReminder(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	acc := f.createAccount(t, "smurf1", 3200, 60)
	_, err := f.deps.Accounts.Assign(ctx, acc.ID, "buyer1", "ABCD1234", 60)
	require.NoError(t, err)
	_, _, err = f.deps.Accounts.StartRental(ctx, acc.ID)
	require.NoError(t, err)

	// 55 minutes in: 5 minutes remaining, inside the reminder window.
	start := time.Now().Add(-55 * time.Minute)
	err = f.client.Client.Account.UpdateOneID(acc.ID).SetRentalStart(start).Exec(ctx)
	require.NoError(t, err)

	f.bot.reapOnce()
	f.bot.reapOnce()

	count := 0
	for _, text := range f.fake.SentTexts() {
		if strings.Contains(text, "аренда закончится") {
			count++
		}
	}
	assert.Equal(t, 1, count, "reminder is one-shot per deadline")
}

func TestBridgeDrainsOutbox(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()

	_, err := f.deps.Chats.Enqueue(ctx, f.ws.ID, f.ws.UserID, "buyer1", "hello from dashboard")
	require.NoError(t, err)

	f.bot.drainOutbox()

	assert.Contains(t, f.fake.SentTexts(), "hello from dashboard")
	rows, err := f.deps.Chats.ClaimPending(ctx, f.ws.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, rows, "sent rows leave the pending queue")

	history, err := f.deps.Chats.History(ctx, f.ws.UserID, f.ws.ID, "buyer1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].ByBot)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
