// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/account"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/admincall"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistentry"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistlog"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonushistory"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonuswallet"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatmessage"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatoutbox"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatsnapshot"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/dashboardsession"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/lotmapping"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/notification"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/reviewreward"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/schema"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/setting"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/user"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescMafileJSON is the schema descriptor for mafile_json field.
	accountDescMafileJSON := accountFields[5].Descriptor()
	// account.DefaultMafileJSON holds the default value on creation for the mafile_json field.
	account.DefaultMafileJSON = accountDescMafileJSON.Default.(string)
	// accountDescMmr is the schema descriptor for mmr field.
	accountDescMmr := accountFields[6].Descriptor()
	// account.DefaultMmr holds the default value on creation for the mmr field.
	account.DefaultMmr = accountDescMmr.Default.(int)
	// accountDescRentalDurationMinutes is the schema descriptor for rental_duration_minutes field.
	accountDescRentalDurationMinutes := accountFields[7].Descriptor()
	// account.DefaultRentalDurationMinutes holds the default value on creation for the rental_duration_minutes field.
	account.DefaultRentalDurationMinutes = accountDescRentalDurationMinutes.Default.(int)
	// accountDescRentalFrozen is the schema descriptor for rental_frozen field.
	accountDescRentalFrozen := accountFields[10].Descriptor()
	// account.DefaultRentalFrozen holds the default value on creation for the rental_frozen field.
	account.DefaultRentalFrozen = accountDescRentalFrozen.Default.(bool)
	// accountDescAccountFrozen is the schema descriptor for account_frozen field.
	accountDescAccountFrozen := accountFields[12].Descriptor()
	// account.DefaultAccountFrozen holds the default value on creation for the account_frozen field.
	account.DefaultAccountFrozen = accountDescAccountFrozen.Default.(bool)
	// accountDescLowPriority is the schema descriptor for low_priority field.
	accountDescLowPriority := accountFields[14].Descriptor()
	// account.DefaultLowPriority holds the default value on creation for the low_priority field.
	account.DefaultLowPriority = accountDescLowPriority.Default.(bool)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[15].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[16].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	admincallFields := schema.AdminCall{}.Fields()
	_ = admincallFields
	// admincallDescOwner is the schema descriptor for owner field.
	admincallDescOwner := admincallFields[3].Descriptor()
	// admincall.DefaultOwner holds the default value on creation for the owner field.
	admincall.DefaultOwner = admincallDescOwner.Default.(string)
	// admincallDescCount is the schema descriptor for count field.
	admincallDescCount := admincallFields[4].Descriptor()
	// admincall.DefaultCount holds the default value on creation for the count field.
	admincall.DefaultCount = admincallDescCount.Default.(int)
	// admincallDescLastCalledAt is the schema descriptor for last_called_at field.
	admincallDescLastCalledAt := admincallFields[5].Descriptor()
	// admincall.DefaultLastCalledAt holds the default value on creation for the last_called_at field.
	admincall.DefaultLastCalledAt = admincallDescLastCalledAt.Default.(func() time.Time)
	blacklistentryFields := schema.BlacklistEntry{}.Fields()
	_ = blacklistentryFields
	// blacklistentryDescReason is the schema descriptor for reason field.
	blacklistentryDescReason := blacklistentryFields[4].Descriptor()
	// blacklistentry.DefaultReason holds the default value on creation for the reason field.
	blacklistentry.DefaultReason = blacklistentryDescReason.Default.(string)
	// blacklistentryDescCreatedAt is the schema descriptor for created_at field.
	blacklistentryDescCreatedAt := blacklistentryFields[5].Descriptor()
	// blacklistentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	blacklistentry.DefaultCreatedAt = blacklistentryDescCreatedAt.Default.(func() time.Time)
	blacklistlogFields := schema.BlacklistLog{}.Fields()
	_ = blacklistlogFields
	// blacklistlogDescUserID is the schema descriptor for user_id field.
	blacklistlogDescUserID := blacklistlogFields[0].Descriptor()
	// blacklistlog.DefaultUserID holds the default value on creation for the user_id field.
	blacklistlog.DefaultUserID = blacklistlogDescUserID.Default.(int)
	// blacklistlogDescReason is the schema descriptor for reason field.
	blacklistlogDescReason := blacklistlogFields[3].Descriptor()
	// blacklistlog.DefaultReason holds the default value on creation for the reason field.
	blacklistlog.DefaultReason = blacklistlogDescReason.Default.(string)
	// blacklistlogDescDetails is the schema descriptor for details field.
	blacklistlogDescDetails := blacklistlogFields[4].Descriptor()
	// blacklistlog.DefaultDetails holds the default value on creation for the details field.
	blacklistlog.DefaultDetails = blacklistlogDescDetails.Default.(string)
	// blacklistlogDescAmount is the schema descriptor for amount field.
	blacklistlogDescAmount := blacklistlogFields[5].Descriptor()
	// blacklistlog.DefaultAmount holds the default value on creation for the amount field.
	blacklistlog.DefaultAmount = blacklistlogDescAmount.Default.(int)
	// blacklistlogDescCreatedAt is the schema descriptor for created_at field.
	blacklistlogDescCreatedAt := blacklistlogFields[6].Descriptor()
	// blacklistlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	blacklistlog.DefaultCreatedAt = blacklistlogDescCreatedAt.Default.(func() time.Time)
	bonushistoryFields := schema.BonusHistory{}.Fields()
	_ = bonushistoryFields
	// bonushistoryDescReason is the schema descriptor for reason field.
	bonushistoryDescReason := bonushistoryFields[4].Descriptor()
	// bonushistory.DefaultReason holds the default value on creation for the reason field.
	bonushistory.DefaultReason = bonushistoryDescReason.Default.(string)
	// bonushistoryDescOrderID is the schema descriptor for order_id field.
	bonushistoryDescOrderID := bonushistoryFields[5].Descriptor()
	// bonushistory.DefaultOrderID holds the default value on creation for the order_id field.
	bonushistory.DefaultOrderID = bonushistoryDescOrderID.Default.(string)
	// bonushistoryDescCreatedAt is the schema descriptor for created_at field.
	bonushistoryDescCreatedAt := bonushistoryFields[6].Descriptor()
	// bonushistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	bonushistory.DefaultCreatedAt = bonushistoryDescCreatedAt.Default.(func() time.Time)
	bonuswalletFields := schema.BonusWallet{}.Fields()
	_ = bonuswalletFields
	// bonuswalletDescBalanceMinutes is the schema descriptor for balance_minutes field.
	bonuswalletDescBalanceMinutes := bonuswalletFields[3].Descriptor()
	// bonuswallet.DefaultBalanceMinutes holds the default value on creation for the balance_minutes field.
	bonuswallet.DefaultBalanceMinutes = bonuswalletDescBalanceMinutes.Default.(int)
	// bonuswalletDescUpdatedAt is the schema descriptor for updated_at field.
	bonuswalletDescUpdatedAt := bonuswalletFields[4].Descriptor()
	// bonuswallet.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bonuswallet.DefaultUpdatedAt = bonuswalletDescUpdatedAt.Default.(func() time.Time)
	// bonuswallet.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bonuswallet.UpdateDefaultUpdatedAt = bonuswalletDescUpdatedAt.UpdateDefault.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescAuthor is the schema descriptor for author field.
	chatmessageDescAuthor := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultAuthor holds the default value on creation for the author field.
	chatmessage.DefaultAuthor = chatmessageDescAuthor.Default.(string)
	// chatmessageDescText is the schema descriptor for text field.
	chatmessageDescText := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultText holds the default value on creation for the text field.
	chatmessage.DefaultText = chatmessageDescText.Default.(string)
	// chatmessageDescByBot is the schema descriptor for by_bot field.
	chatmessageDescByBot := chatmessageFields[7].Descriptor()
	// chatmessage.DefaultByBot holds the default value on creation for the by_bot field.
	chatmessage.DefaultByBot = chatmessageDescByBot.Default.(bool)
	// chatmessageDescType is the schema descriptor for type field.
	chatmessageDescType := chatmessageFields[8].Descriptor()
	// chatmessage.DefaultType holds the default value on creation for the type field.
	chatmessage.DefaultType = chatmessageDescType.Default.(string)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[9].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	chatoutboxFields := schema.ChatOutbox{}.Fields()
	_ = chatoutboxFields
	// chatoutboxDescAttempts is the schema descriptor for attempts field.
	chatoutboxDescAttempts := chatoutboxFields[5].Descriptor()
	// chatoutbox.DefaultAttempts holds the default value on creation for the attempts field.
	chatoutbox.DefaultAttempts = chatoutboxDescAttempts.Default.(int)
	// chatoutboxDescCreatedAt is the schema descriptor for created_at field.
	chatoutboxDescCreatedAt := chatoutboxFields[7].Descriptor()
	// chatoutbox.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatoutbox.DefaultCreatedAt = chatoutboxDescCreatedAt.Default.(func() time.Time)
	chatsnapshotFields := schema.ChatSnapshot{}.Fields()
	_ = chatsnapshotFields
	// chatsnapshotDescPeerName is the schema descriptor for peer_name field.
	chatsnapshotDescPeerName := chatsnapshotFields[3].Descriptor()
	// chatsnapshot.DefaultPeerName holds the default value on creation for the peer_name field.
	chatsnapshot.DefaultPeerName = chatsnapshotDescPeerName.Default.(string)
	// chatsnapshotDescLastMessageText is the schema descriptor for last_message_text field.
	chatsnapshotDescLastMessageText := chatsnapshotFields[4].Descriptor()
	// chatsnapshot.DefaultLastMessageText holds the default value on creation for the last_message_text field.
	chatsnapshot.DefaultLastMessageText = chatsnapshotDescLastMessageText.Default.(string)
	// chatsnapshotDescUnread is the schema descriptor for unread field.
	chatsnapshotDescUnread := chatsnapshotFields[6].Descriptor()
	// chatsnapshot.DefaultUnread holds the default value on creation for the unread field.
	chatsnapshot.DefaultUnread = chatsnapshotDescUnread.Default.(bool)
	// chatsnapshotDescAdminUnreadCount is the schema descriptor for admin_unread_count field.
	chatsnapshotDescAdminUnreadCount := chatsnapshotFields[7].Descriptor()
	// chatsnapshot.DefaultAdminUnreadCount holds the default value on creation for the admin_unread_count field.
	chatsnapshot.DefaultAdminUnreadCount = chatsnapshotDescAdminUnreadCount.Default.(int)
	// chatsnapshotDescAdminRequested is the schema descriptor for admin_requested field.
	chatsnapshotDescAdminRequested := chatsnapshotFields[8].Descriptor()
	// chatsnapshot.DefaultAdminRequested holds the default value on creation for the admin_requested field.
	chatsnapshot.DefaultAdminRequested = chatsnapshotDescAdminRequested.Default.(bool)
	// chatsnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	chatsnapshotDescUpdatedAt := chatsnapshotFields[9].Descriptor()
	// chatsnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsnapshot.DefaultUpdatedAt = chatsnapshotDescUpdatedAt.Default.(func() time.Time)
	// chatsnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsnapshot.UpdateDefaultUpdatedAt = chatsnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
	dashboardsessionFields := schema.DashboardSession{}.Fields()
	_ = dashboardsessionFields
	// dashboardsessionDescLastSeenAt is the schema descriptor for last_seen_at field.
	dashboardsessionDescLastSeenAt := dashboardsessionFields[3].Descriptor()
	// dashboardsession.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	dashboardsession.DefaultLastSeenAt = dashboardsessionDescLastSeenAt.Default.(func() time.Time)
	// dashboardsessionDescCreatedAt is the schema descriptor for created_at field.
	dashboardsessionDescCreatedAt := dashboardsessionFields[4].Descriptor()
	// dashboardsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	dashboardsession.DefaultCreatedAt = dashboardsessionDescCreatedAt.Default.(func() time.Time)
	lotmappingFields := schema.LotMapping{}.Fields()
	_ = lotmappingFields
	// lotmappingDescLotURL is the schema descriptor for lot_url field.
	lotmappingDescLotURL := lotmappingFields[4].Descriptor()
	// lotmapping.DefaultLotURL holds the default value on creation for the lot_url field.
	lotmapping.DefaultLotURL = lotmappingDescLotURL.Default.(string)
	// lotmappingDescCreatedAt is the schema descriptor for created_at field.
	lotmappingDescCreatedAt := lotmappingFields[5].Descriptor()
	// lotmapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	lotmapping.DefaultCreatedAt = lotmappingDescCreatedAt.Default.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescWorkspaceID is the schema descriptor for workspace_id field.
	notificationDescWorkspaceID := notificationFields[1].Descriptor()
	// notification.DefaultWorkspaceID holds the default value on creation for the workspace_id field.
	notification.DefaultWorkspaceID = notificationDescWorkspaceID.Default.(int)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[4].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[5].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	ordereventFields := schema.OrderEvent{}.Fields()
	_ = ordereventFields
	// ordereventDescOwner is the schema descriptor for owner field.
	ordereventDescOwner := ordereventFields[3].Descriptor()
	// orderevent.DefaultOwner holds the default value on creation for the owner field.
	orderevent.DefaultOwner = ordereventDescOwner.Default.(string)
	// ordereventDescAccountName is the schema descriptor for account_name field.
	ordereventDescAccountName := ordereventFields[5].Descriptor()
	// orderevent.DefaultAccountName holds the default value on creation for the account_name field.
	orderevent.DefaultAccountName = ordereventDescAccountName.Default.(string)
	// ordereventDescLotNumber is the schema descriptor for lot_number field.
	ordereventDescLotNumber := ordereventFields[7].Descriptor()
	// orderevent.DefaultLotNumber holds the default value on creation for the lot_number field.
	orderevent.DefaultLotNumber = ordereventDescLotNumber.Default.(string)
	// ordereventDescAmount is the schema descriptor for amount field.
	ordereventDescAmount := ordereventFields[8].Descriptor()
	// orderevent.DefaultAmount holds the default value on creation for the amount field.
	orderevent.DefaultAmount = ordereventDescAmount.Default.(int)
	// ordereventDescPrice is the schema descriptor for price field.
	ordereventDescPrice := ordereventFields[9].Descriptor()
	// orderevent.DefaultPrice holds the default value on creation for the price field.
	orderevent.DefaultPrice = ordereventDescPrice.Default.(float64)
	// ordereventDescRentalMinutes is the schema descriptor for rental_minutes field.
	ordereventDescRentalMinutes := ordereventFields[10].Descriptor()
	// orderevent.DefaultRentalMinutes holds the default value on creation for the rental_minutes field.
	orderevent.DefaultRentalMinutes = ordereventDescRentalMinutes.Default.(int)
	// ordereventDescCreatedAt is the schema descriptor for created_at field.
	ordereventDescCreatedAt := ordereventFields[12].Descriptor()
	// orderevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	orderevent.DefaultCreatedAt = ordereventDescCreatedAt.Default.(func() time.Time)
	reviewrewardFields := schema.ReviewReward{}.Fields()
	_ = reviewrewardFields
	// reviewrewardDescRating is the schema descriptor for rating field.
	reviewrewardDescRating := reviewrewardFields[4].Descriptor()
	// reviewreward.DefaultRating holds the default value on creation for the rating field.
	reviewreward.DefaultRating = reviewrewardDescRating.Default.(int)
	// reviewrewardDescReviewText is the schema descriptor for review_text field.
	reviewrewardDescReviewText := reviewrewardFields[5].Descriptor()
	// reviewreward.DefaultReviewText holds the default value on creation for the review_text field.
	reviewreward.DefaultReviewText = reviewrewardDescReviewText.Default.(string)
	// reviewrewardDescClaimedAt is the schema descriptor for claimed_at field.
	reviewrewardDescClaimedAt := reviewrewardFields[7].Descriptor()
	// reviewreward.DefaultClaimedAt holds the default value on creation for the claimed_at field.
	reviewreward.DefaultClaimedAt = reviewrewardDescClaimedAt.Default.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[3].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescLabel is the schema descriptor for label field.
	workspaceDescLabel := workspaceFields[1].Descriptor()
	// workspace.DefaultLabel holds the default value on creation for the label field.
	workspace.DefaultLabel = workspaceDescLabel.Default.(string)
	// workspaceDescProxyURI is the schema descriptor for proxy_uri field.
	workspaceDescProxyURI := workspaceFields[3].Descriptor()
	// workspace.DefaultProxyURI holds the default value on creation for the proxy_uri field.
	workspace.DefaultProxyURI = workspaceDescProxyURI.Default.(string)
	// workspaceDescProxyUser is the schema descriptor for proxy_user field.
	workspaceDescProxyUser := workspaceFields[4].Descriptor()
	// workspace.DefaultProxyUser holds the default value on creation for the proxy_user field.
	workspace.DefaultProxyUser = workspaceDescProxyUser.Default.(string)
	// workspaceDescProxyPass is the schema descriptor for proxy_pass field.
	workspaceDescProxyPass := workspaceFields[5].Descriptor()
	// workspace.DefaultProxyPass holds the default value on creation for the proxy_pass field.
	workspace.DefaultProxyPass = workspaceDescProxyPass.Default.(string)
	// workspaceDescIsDefault is the schema descriptor for is_default field.
	workspaceDescIsDefault := workspaceFields[6].Descriptor()
	// workspace.DefaultIsDefault holds the default value on creation for the is_default field.
	workspace.DefaultIsDefault = workspaceDescIsDefault.Default.(bool)
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[9].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
	// workspaceDescUpdatedAt is the schema descriptor for updated_at field.
	workspaceDescUpdatedAt := workspaceFields[10].Descriptor()
	// workspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspace.DefaultUpdatedAt = workspaceDescUpdatedAt.Default.(func() time.Time)
	// workspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspace.UpdateDefaultUpdatedAt = workspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
