package funpay

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// lotNumberRe matches the lot reference inside an order description,
// e.g. "Аренда аккаунта №77" or "Account rent #77".
var lotNumberRe = regexp.MustCompile(`[№#]\s*(\d+)`)

// ParseLotNumber extracts the lot number from an order description.
// Returns "" when no reference is present.
func ParseLotNumber(description string) string {
	m := lotNumberRe.FindStringSubmatch(description)
	if m == nil {
		return ""
	}
	return m[1]
}

// orderIDRe matches an order id token like "#ABC123XY" in system messages.
var orderIDRe = regexp.MustCompile(`#([A-Z0-9]{8,})`)

// ParseOrderID extracts the order id from a system message.
func ParseOrderID(text string) string {
	m := orderIDRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// amountRe matches the purchased quantity, e.g. "2 шт." or "2 pcs".
var amountRe = regexp.MustCompile(`(\d+)\s*(?:шт|pcs)`)

// ParseAmount extracts the unit count from an order description;
// defaults to 1.
func ParseAmount(text string) int {
	m := amountRe.FindStringSubmatch(text)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ratingRe matches the star count spelled out in a feedback notice,
// e.g. "оценка 5 звёзд" or "rated 5 stars".
var ratingRe = regexp.MustCompile(`([1-5])\s*(?:звёзд|звезд|stars?)`)

// ParseRating extracts the 1-5 star rating from a feedback notice, either
// as star glyphs or spelled out. Returns 0 when no rating is present.
func ParseRating(text string) int {
	if n := strings.Count(text, "★"); n >= 1 && n <= 5 {
		return n
	}
	m := ratingRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// appData is the JSON blob funpay embeds in <body data-app-data="...">.
type appData struct {
	UserID    int64  `json:"userId"`
	CSRFToken string `json:"csrf-token"`
	Locale    string `json:"locale"`
}

// parseAppData pulls the session identity out of a page.
func parseAppData(root *html.Node) (*appData, bool) {
	body := findNode(root, "body")
	if body == nil {
		return nil, false
	}
	raw, ok := attr(body, "data-app-data")
	if !ok {
		return nil, false
	}
	var data appData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, false
	}
	return &data, true
}

// findNode walks the tree depth-first and returns the first element with
// the given tag.
func findNode(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// eachNode calls fn for every element node matching the class.
func eachNode(n *html.Node, class string, fn func(*html.Node)) {
	if n.Type == html.ElementNode && hasClass(n, class) {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		eachNode(c, class, fn)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	raw, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(raw) {
		if c == class {
			return true
		}
	}
	return false
}

// textContent flattens all text under a node.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// systemMessageEvent classifies a system chat message into an order event.
// Non-order system messages return the zero EventType.
func systemMessageEvent(text string) EventType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "оплатил заказ") || strings.Contains(lower, "paid for order"):
		return EventOrderPurchased
	case strings.Contains(lower, "подтвердил успешное выполнение заказа") ||
		strings.Contains(lower, "confirmed that order"):
		return EventOrderConfirmed
	case strings.Contains(lower, "вернул деньги") || strings.Contains(lower, "refunded"):
		return EventRefund
	case strings.Contains(lower, "написал отзыв") || strings.Contains(lower, "has given feedback"):
		return EventNewFeedback
	case strings.Contains(lower, "изменил отзыв") || strings.Contains(lower, "edited their feedback"):
		return EventFeedbackChanged
	case strings.Contains(lower, "удалил отзыв") || strings.Contains(lower, "deleted their feedback"):
		return EventFeedbackDeleted
	}
	return ""
}

// parseRunnerTime parses the timestamps the runner emits ("15:04" today or
// a full date for older messages), interpreting them in marketplace time.
func parseRunnerTime(s string, loc *time.Location) time.Time {
	s = strings.TrimSpace(s)
	layouts := []string{"15:04", "2 Jan 15:04", "02.01.2006 15:04", time.RFC3339}
	now := time.Now().In(loc)
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if layout == "15:04" {
			return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, loc)
		}
		if t.Year() == 0 {
			t = t.AddDate(now.Year(), 0, 0)
		}
		return t
	}
	return now
}
