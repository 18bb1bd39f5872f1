package funpay

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseLotNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"cyrillic numero", "Аренда аккаунта №77, 1 шт.", "77"},
		{"hash sign", "Account rent #102", "102"},
		{"numero with space", "Лот № 9", "9"},
		{"no lot reference", "Просто сообщение", ""},
		{"first match wins", "№5 и ещё №6", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLotNumber(tt.in))
		})
	}
}

func TestParseOrderID(t *testing.T) {
	assert.Equal(t, "ABCD1234", ParseOrderID("Покупатель alice оплатил заказ #ABCD1234."))
	assert.Equal(t, "", ParseOrderID("нет заказа здесь"))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 2, ParseAmount("Аренда №77, 2 шт."))
	assert.Equal(t, 3, ParseAmount("rent #5, 3 pcs"))
	assert.Equal(t, 1, ParseAmount("Аренда №77"))
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"star glyphs", "Покупатель carol написал отзыв к заказу #AB12CD34. Оценка: ★★★★★", 5},
		{"three glyphs", "Оценка: ★★★", 3},
		{"spelled out ru", "оценил заказ на 5 звёзд", 5},
		{"spelled out en", "rated the order 4 stars", 4},
		{"no rating", "Покупатель carol написал отзыв к заказу #AB12CD34.", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRating(tt.in))
		})
	}
}

func TestSystemMessageEvent(t *testing.T) {
	tests := []struct {
		text string
		want EventType
	}{
		{"Покупатель alice оплатил заказ #AB12CD34.", EventOrderPurchased},
		{"Покупатель bob подтвердил успешное выполнение заказа #AB12CD34.", EventOrderConfirmed},
		{"Продавец вернул деньги по заказу #AB12CD34.", EventRefund},
		{"Покупатель carol написал отзыв к заказу #AB12CD34.", EventNewFeedback},
		{"Покупатель carol изменил отзыв к заказу #AB12CD34.", EventFeedbackChanged},
		{"Покупатель carol удалил отзыв к заказу #AB12CD34.", EventFeedbackDeleted},
		{"обычное сообщение", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, systemMessageEvent(tt.text), tt.text)
	}
}

func TestClassifyMessage(t *testing.T) {
	t.Run("plain buyer message", func(t *testing.T) {
		ev := classifyMessage(Message{Text: "!код", Author: "alice"})
		assert.Equal(t, EventNewMessage, ev.Type)
		require.NotNil(t, ev.Message)
	})

	t.Run("paid order system message", func(t *testing.T) {
		ev := classifyMessage(Message{
			Text:   "Покупатель alice оплатил заказ #AB12CD34. Аренда №77, 2 шт.",
			Author: "alice",
			System: true,
		})
		assert.Equal(t, EventOrderPurchased, ev.Type)
		require.NotNil(t, ev.Order)
		assert.Equal(t, "AB12CD34", ev.Order.OrderID)
		assert.Equal(t, 2, ev.Order.Amount)
	})

	t.Run("new feedback carries the rating", func(t *testing.T) {
		ev := classifyMessage(Message{
			Text:   "Покупатель carol написал отзыв к заказу #AB12CD34. Оценка: ★★★★★",
			Author: "carol",
			System: true,
		})
		assert.Equal(t, EventNewFeedback, ev.Type)
		require.NotNil(t, ev.Feedback)
		assert.Equal(t, 5, ev.Feedback.Rating)
	})

	t.Run("feedback deleted", func(t *testing.T) {
		ev := classifyMessage(Message{
			Text:   "Покупатель carol удалил отзыв к заказу #AB12CD34.",
			System: true,
		})
		assert.Equal(t, EventFeedbackDeleted, ev.Type)
		require.NotNil(t, ev.Feedback)
		assert.Equal(t, "AB12CD34", ev.Feedback.OrderID)
	})
}

func TestParseAppData(t *testing.T) {
	page := `<html><body data-app-data='{"userId":4242,"csrf-token":"tok123","locale":"ru"}'></body></html>`
	root, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)

	data, ok := parseAppData(root)
	require.True(t, ok)
	assert.Equal(t, int64(4242), data.UserID)
	assert.Equal(t, "tok123", data.CSRFToken)
}

func TestParseWaitMinutes(t *testing.T) {
	assert.Equal(t, 2*time.Hour, parseWaitMinutes("Подождите 2 часа."))
	assert.Equal(t, 10*time.Minute, parseWaitMinutes("Подождите 10 минут."))
	assert.Equal(t, time.Duration(0), parseWaitMinutes("ok"))
}

func TestChangedChats(t *testing.T) {
	c := &HTTPClient{
		seenMessages: make(map[string]struct{}),
		lastChatTick: make(map[string]string),
	}
	fragment := `<div>
		<a class="contact-item" data-id="chat-1" data-node-msg="100"></a>
		<a class="contact-item" data-id="chat-2" data-node-msg="200"></a>
	</div>`

	first := c.changedChats(fragment)
	assert.ElementsMatch(t, []string{"chat-1", "chat-2"}, first)

	// Same fragment again: nothing moved.
	assert.Empty(t, c.changedChats(fragment))

	moved := `<div><a class="contact-item" data-id="chat-1" data-node-msg="101"></a></div>`
	assert.Equal(t, []string{"chat-1"}, c.changedChats(moved))
}

func TestSeenRing(t *testing.T) {
	c := &HTTPClient{
		seenMessages: make(map[string]struct{}),
		lastChatTick: make(map[string]string),
	}
	_, dup := c.seen("m1")
	assert.False(t, dup)
	_, dup = c.seen("m1")
	assert.True(t, dup)
}
