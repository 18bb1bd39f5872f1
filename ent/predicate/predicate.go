// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// AdminCall is the predicate function for admincall builders.
type AdminCall func(*sql.Selector)

// BlacklistEntry is the predicate function for blacklistentry builders.
type BlacklistEntry func(*sql.Selector)

// BlacklistLog is the predicate function for blacklistlog builders.
type BlacklistLog func(*sql.Selector)

// BonusHistory is the predicate function for bonushistory builders.
type BonusHistory func(*sql.Selector)

// BonusWallet is the predicate function for bonuswallet builders.
type BonusWallet func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ChatOutbox is the predicate function for chatoutbox builders.
type ChatOutbox func(*sql.Selector)

// ChatSnapshot is the predicate function for chatsnapshot builders.
type ChatSnapshot func(*sql.Selector)

// DashboardSession is the predicate function for dashboardsession builders.
type DashboardSession func(*sql.Selector)

// LotMapping is the predicate function for lotmapping builders.
type LotMapping func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// OrderEvent is the predicate function for orderevent builders.
type OrderEvent func(*sql.Selector)

// ReviewReward is the predicate function for reviewreward builders.
type ReviewReward func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)
