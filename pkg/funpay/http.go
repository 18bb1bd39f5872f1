package funpay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/proxy"

	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/timeutil"
)

const (
	defaultBaseURL   = "https://funpay.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	requestTimeout   = 15 * time.Second
	ticketTimeout    = 20 * time.Second

	// seenMessageCap bounds the per-session dedup set for poll results.
	seenMessageCap = 5000
)

// Options configures an HTTPClient.
type Options struct {
	Token     string
	ProxyURI  string
	ProxyUser string
	ProxyPass string
	UserAgent string
	BaseURL   string
}

// HTTPClient is the real marketplace client: golden_key cookie session,
// proxied transport, HTML scraping. One instance per bot; not safe for
// concurrent use by design (the session is single-owner).
type HTTPClient struct {
	http    *http.Client
	direct  *http.Client
	baseURL string
	agent   string

	mu      sync.Mutex
	token   string
	session *Session

	// poll state
	seenMessages map[string]struct{}
	seenOrder    []string
	lastChatTick map[string]string // chat_id -> last message id observed
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client routed through the workspace proxy.
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("funpay: token required")
	}
	transport, err := proxyTransport(opts)
	if err != nil {
		return nil, err
	}
	base := opts.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	agent := opts.UserAgent
	if agent == "" {
		agent = defaultUserAgent
	}
	return &HTTPClient{
		http:         &http.Client{Transport: transport, Timeout: requestTimeout},
		direct:       &http.Client{Timeout: requestTimeout},
		baseURL:      strings.TrimRight(base, "/"),
		agent:        agent,
		token:        opts.Token,
		seenMessages: make(map[string]struct{}),
		lastChatTick: make(map[string]string),
	}, nil
}

// proxyTransport builds an http.RoundTripper for socks5:// or http(s)://
// proxy URIs. An empty URI yields a direct transport.
func proxyTransport(opts Options) (*http.Transport, error) {
	tr := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if opts.ProxyURI == "" {
		return tr, nil
	}
	u, err := url.Parse(opts.ProxyURI)
	if err != nil {
		return nil, fmt.Errorf("funpay: parse proxy uri: %w", err)
	}
	if opts.ProxyUser != "" {
		u.User = url.UserPassword(opts.ProxyUser, opts.ProxyPass)
	}
	switch u.Scheme {
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if opts.ProxyUser != "" {
			auth = &proxy.Auth{User: opts.ProxyUser, Password: opts.ProxyPass}
		}
		dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("funpay: socks5 dialer: %w", err)
		}
		ctxDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("funpay: socks5 dialer lacks context support")
		}
		tr.DialContext = ctxDialer.DialContext
	case "http", "https":
		tr.Proxy = http.ProxyURL(u)
	default:
		return nil, fmt.Errorf("funpay: unsupported proxy scheme %q", u.Scheme)
	}
	return tr, nil
}

// UpdateToken implements Client.
func (c *HTTPClient) UpdateToken(token string) {
	c.mu.Lock()
	c.token = token
	c.session = nil
	c.mu.Unlock()
}

// VerifyProxy checks that the proxy actually changes the exit IP. The bot
// refuses to start when both paths resolve to the same address.
func (c *HTTPClient) VerifyProxy(ctx context.Context) error {
	directIP, err := exitIP(ctx, c.direct)
	if err != nil {
		return &TransientError{Err: fmt.Errorf("direct ip check: %w", err)}
	}
	proxiedIP, err := exitIP(ctx, c.http)
	if err != nil {
		return &TransientError{Err: fmt.Errorf("proxied ip check: %w", err)}
	}
	if directIP == proxiedIP {
		return fmt.Errorf("funpay: proxy is not in effect (exit ip %s unchanged)", directIP)
	}
	return nil
}

func exitIP(ctx context.Context, client *http.Client) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.ipify.org", nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// Bootstrap implements Client.
func (c *HTTPClient) Bootstrap(ctx context.Context) (*Session, error) {
	root, err := c.getHTML(ctx, "/")
	if err != nil {
		return nil, err
	}
	data, ok := parseAppData(root)
	if !ok || data.UserID == 0 {
		return nil, ErrUnauthorized
	}
	sess := &Session{UserID: data.UserID, CSRFToken: data.CSRFToken}
	if name := findUsername(root); name != "" {
		sess.Username = name
	}
	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
	return sess, nil
}

func findUsername(root *html.Node) string {
	var name string
	eachNode(root, "user-link-name", func(n *html.Node) {
		if name == "" {
			name = textContent(n)
		}
	})
	return name
}

// Poll implements Client. It asks the runner for chat bookmark changes and
// expands updated chats into per-message events, deduplicated by message id.
func (c *HTTPClient) Poll(ctx context.Context) ([]Event, error) {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	objects := []map[string]any{
		{"type": "chat_bookmarks", "id": strconv.FormatInt(sess.UserID, 10), "data": false},
		{"type": "orders_counters", "id": strconv.FormatInt(sess.UserID, 10), "data": false},
	}
	payload, _ := json.Marshal(objects)
	form := url.Values{
		"objects":    {string(payload)},
		"request":    {"false"},
		"csrf_token": {sess.CSRFToken},
	}
	body, err := c.postForm(ctx, "/runner/", form)
	if err != nil {
		return nil, err
	}

	var runner struct {
		Objects []struct {
			Type string `json:"type"`
			Data struct {
				HTML json.RawMessage `json:"html"`
			} `json:"data"`
		} `json:"objects"`
	}
	if err := json.Unmarshal(body, &runner); err != nil {
		return nil, &TransientError{Err: fmt.Errorf("decode runner response: %w", err)}
	}

	var updated []string
	for _, obj := range runner.Objects {
		if obj.Type != "chat_bookmarks" || len(obj.Data.HTML) == 0 {
			continue
		}
		var fragment string
		if err := json.Unmarshal(obj.Data.HTML, &fragment); err != nil {
			continue
		}
		updated = append(updated, c.changedChats(fragment)...)
	}

	var events []Event
	for _, chatID := range updated {
		msgs, err := c.GetChatHistory(ctx, chatID)
		if err != nil {
			// One bad chat must not stall the whole batch.
			continue
		}
		for i := range msgs {
			msg := msgs[i]
			if _, seen := c.seen(msg.MessageID); seen {
				continue
			}
			events = append(events, classifyMessage(msg))
		}
	}
	return events, nil
}

// changedChats parses a chat_bookmarks HTML fragment and returns ids of
// chats whose last message moved since the previous poll.
func (c *HTTPClient) changedChats(fragment string) []string {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil
	}
	var changed []string
	c.mu.Lock()
	defer c.mu.Unlock()
	eachNode(root, "contact-item", func(n *html.Node) {
		chatID, ok := attr(n, "data-id")
		if !ok {
			return
		}
		lastMsg, _ := attr(n, "data-node-msg")
		if c.lastChatTick[chatID] != lastMsg {
			c.lastChatTick[chatID] = lastMsg
			changed = append(changed, chatID)
		}
	})
	return changed
}

// seen records a message id and reports whether it was already present.
func (c *HTTPClient) seen(messageID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.seenMessages[messageID]; ok {
		return messageID, true
	}
	c.seenMessages[messageID] = struct{}{}
	c.seenOrder = append(c.seenOrder, messageID)
	if len(c.seenOrder) > seenMessageCap {
		drop := c.seenOrder[0]
		c.seenOrder = c.seenOrder[1:]
		delete(c.seenMessages, drop)
	}
	return messageID, false
}

// classifyMessage turns a chat message into an event, recognising order
// and feedback system notices.
func classifyMessage(msg Message) Event {
	if !msg.System {
		return Event{Type: EventNewMessage, Message: &msg}
	}
	evType := systemMessageEvent(msg.Text)
	switch evType {
	case EventOrderPurchased, EventOrderConfirmed, EventRefund:
		return Event{
			Type:    evType,
			Message: &msg,
			Order: &OrderInfo{
				OrderID:     ParseOrderID(msg.Text),
				Buyer:       msg.Author,
				Description: msg.Text,
				Amount:      ParseAmount(msg.Text),
			},
		}
	case EventNewFeedback, EventFeedbackChanged, EventFeedbackDeleted:
		return Event{
			Type:    evType,
			Message: &msg,
			Feedback: &Feedback{
				OrderID: ParseOrderID(msg.Text),
				Buyer:   msg.Author,
				Rating:  ParseRating(msg.Text),
			},
		}
	}
	return Event{Type: EventNewMessage, Message: &msg}
}

// GetChats implements Client.
func (c *HTTPClient) GetChats(ctx context.Context) ([]Chat, error) {
	root, err := c.getHTML(ctx, "/chat/")
	if err != nil {
		return nil, err
	}
	var chats []Chat
	eachNode(root, "contact-item", func(n *html.Node) {
		id, ok := attr(n, "data-id")
		if !ok {
			return
		}
		chat := Chat{ID: id, Unread: hasClass(n, "unread")}
		eachNode(n, "media-user-name", func(nn *html.Node) { chat.PeerName = textContent(nn) })
		eachNode(n, "contact-item-message", func(nn *html.Node) { chat.LastMessageText = textContent(nn) })
		eachNode(n, "contact-item-time", func(nn *html.Node) {
			chat.LastMessageTime = parseRunnerTime(textContent(nn), timeutil.MarketplaceZone)
		})
		chats = append(chats, chat)
	})
	return chats, nil
}

// GetChatHistory implements Client.
func (c *HTTPClient) GetChatHistory(ctx context.Context, chatID string) ([]Message, error) {
	body, err := c.getRaw(ctx, "/chat/history?node="+url.QueryEscape(chatID)+"&last_message=0")
	if err != nil {
		return nil, err
	}
	var payload struct {
		Chat struct {
			Messages []struct {
				ID     int64  `json:"id"`
				Author string `json:"author"`
				HTML   string `json:"html"`
				Date   string `json:"date"`
			} `json:"messages"`
		} `json:"chat"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &TransientError{Err: fmt.Errorf("decode chat history: %w", err)}
	}
	msgs := make([]Message, 0, len(payload.Chat.Messages))
	for _, m := range payload.Chat.Messages {
		text, system := messageText(m.HTML)
		msgs = append(msgs, Message{
			ChatID:    chatID,
			MessageID: strconv.FormatInt(m.ID, 10),
			Author:    m.Author,
			Text:      text,
			Time:      parseRunnerTime(m.Date, timeutil.MarketplaceZone),
			System:    system,
		})
	}
	return msgs, nil
}

// messageText flattens a message HTML fragment and reports whether it is a
// system (alert) message.
func messageText(fragment string) (string, bool) {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment), false
	}
	system := false
	eachNode(root, "alert", func(*html.Node) { system = true })
	eachNode(root, "chat-msg-alert", func(*html.Node) { system = true })
	return textContent(root), system
}

// SendMessage implements Client.
func (c *HTTPClient) SendMessage(ctx context.Context, chatID, text string) (*Message, error) {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return nil, err
	}
	request, _ := json.Marshal(map[string]any{
		"action": "chat_message",
		"data":   map[string]any{"node": chatID, "content": text},
	})
	form := url.Values{
		"objects":    {"[]"},
		"request":    {string(request)},
		"csrf_token": {sess.CSRFToken},
	}
	body, err := c.postForm(ctx, "/runner/", form)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Response struct {
			Error string `json:"error"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransientError{Err: fmt.Errorf("decode send response: %w", err)}
	}
	if resp.Response.Error != "" {
		return nil, fmt.Errorf("funpay: send message: %s", resp.Response.Error)
	}
	msg := &Message{
		ChatID:    chatID,
		MessageID: "local-" + strconv.FormatInt(time.Now().UnixNano(), 10),
		Author:    sess.Username,
		Text:      text,
		Time:      timeutil.NowMarketplace(),
	}
	return msg, nil
}

// GetOrder implements Client.
func (c *HTTPClient) GetOrder(ctx context.Context, orderID string) (*OrderInfo, error) {
	root, err := c.getHTML(ctx, "/orders/"+url.PathEscape(orderID)+"/")
	if err != nil {
		return nil, err
	}
	order := &OrderInfo{OrderID: orderID, Amount: 1}
	eachNode(root, "order-desc", func(n *html.Node) {
		if order.Description == "" {
			order.Description = textContent(n)
		}
	})
	eachNode(root, "media-user-name", func(n *html.Node) {
		if order.Buyer == "" {
			order.Buyer = textContent(n)
		}
	})
	eachNode(root, "text-warning", func(n *html.Node) {
		if order.Status == "" {
			order.Status = textContent(n)
		}
	})
	if order.Description != "" {
		order.Amount = ParseAmount(order.Description)
	}
	return order, nil
}

// Confirm implements Client.
func (c *HTTPClient) Confirm(ctx context.Context, orderID string) error {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return err
	}
	form := url.Values{
		"id":         {orderID},
		"csrf_token": {sess.CSRFToken},
	}
	_, err = c.postForm(ctx, "/orders/confirm", form)
	return err
}

// RaiseLots implements Client.
func (c *HTTPClient) RaiseLots(ctx context.Context, categoryID int) error {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return err
	}
	form := url.Values{
		"game_id":    {strconv.Itoa(categoryID)},
		"csrf_token": {sess.CSRFToken},
	}
	body, err := c.postForm(ctx, "/lots/raise", form)
	if err != nil {
		return err
	}
	var resp struct {
		Msg   string `json:"msg"`
		Error bool   `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return &TransientError{Err: fmt.Errorf("decode raise response: %w", err)}
	}
	if resp.Error {
		if wait := parseWaitMinutes(resp.Msg); wait > 0 {
			return &RateLimitedError{Wait: wait}
		}
		return fmt.Errorf("funpay: raise lots: %s", resp.Msg)
	}
	return nil
}

// waitRe matches the "retry in N minutes/hours" hint in raise responses.
var waitRe = regexp.MustCompile(`(\d+)\s*(час|мин|hour|min)`)

func parseWaitMinutes(msg string) time.Duration {
	m := waitRe.FindStringSubmatch(strings.ToLower(msg))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	if strings.HasPrefix(m[2], "час") || strings.HasPrefix(m[2], "hour") {
		return time.Duration(n) * time.Hour
	}
	return time.Duration(n) * time.Minute
}

// GetBalance implements Client.
func (c *HTTPClient) GetBalance(ctx context.Context, lotID string) (float64, error) {
	root, err := c.getHTML(ctx, "/lots/offer?id="+url.QueryEscape(lotID))
	if err != nil {
		return 0, err
	}
	var price float64
	eachNode(root, "tc-price", func(n *html.Node) {
		if price != 0 {
			return
		}
		raw := strings.ReplaceAll(textContent(n), ",", ".")
		raw = strings.TrimFunc(raw, func(r rune) bool { return r != '.' && (r < '0' || r > '9') })
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			price = v
		}
	})
	return price, nil
}

// GetSortedCategories implements Client.
func (c *HTTPClient) GetSortedCategories(ctx context.Context) ([]Category, error) {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return nil, err
	}
	root, err := c.getHTML(ctx, "/users/"+strconv.FormatInt(sess.UserID, 10)+"/")
	if err != nil {
		return nil, err
	}
	var cats []Category
	eachNode(root, "offer-list-title", func(n *html.Node) {
		link := findNode(n, "a")
		if link == nil {
			return
		}
		href, _ := attr(link, "href")
		id := trailingID(href)
		if id == 0 {
			return
		}
		cats = append(cats, Category{ID: id, Name: textContent(link)})
	})
	sortByName(cats, func(c Category) string { return c.Name })
	return cats, nil
}

// GetSortedSubcategories implements Client.
func (c *HTTPClient) GetSortedSubcategories(ctx context.Context) ([]Subcategory, error) {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return nil, err
	}
	root, err := c.getHTML(ctx, "/users/"+strconv.FormatInt(sess.UserID, 10)+"/")
	if err != nil {
		return nil, err
	}
	var subs []Subcategory
	eachNode(root, "offer", func(n *html.Node) {
		link := findNode(n, "a")
		if link == nil {
			return
		}
		href, _ := attr(link, "href")
		id := trailingID(href)
		if id == 0 {
			return
		}
		subs = append(subs, Subcategory{ID: id, Name: textContent(link), URL: href})
	})
	sortByName(subs, func(s Subcategory) string { return s.Name })
	return subs, nil
}

func sortByName[T any](items []T, key func(T) string) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && key(items[j]) < key(items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// trailingID extracts the numeric id out of URLs like /lots/123/ or
// /chips/45/.
func trailingID(href string) int {
	parts := strings.Split(strings.Trim(href, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	id, _ := strconv.Atoi(parts[len(parts)-1])
	return id
}

// SubmitSupportTicket implements Client. The support form is scraped for
// its hidden fields, then posted back with the ticket body.
func (c *HTTPClient) SubmitSupportTicket(ctx context.Context, topic, role, orderID, body, key string) error {
	root, err := c.getHTML(ctx, "/support/tickets/new")
	if err != nil {
		return err
	}
	form := url.Values{
		"topic":    {topic},
		"role":     {role},
		"order_id": {orderID},
		"message":  {body},
	}
	// Carry over all hidden inputs (csrf and form key rotate per page load).
	formNode := findNode(root, "form")
	if formNode != nil {
		var collect func(*html.Node)
		collect = func(n *html.Node) {
			if n.Type == html.ElementNode && n.Data == "input" {
				typ, _ := attr(n, "type")
				if typ == "hidden" {
					name, _ := attr(n, "name")
					val, _ := attr(n, "value")
					if name != "" {
						form.Set(name, val)
					}
				}
			}
			for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
				collect(ch)
			}
		}
		collect(formNode)
	}
	if key != "" {
		form.Set("key", key)
	}

	ctx, cancel := context.WithTimeout(ctx, ticketTimeout)
	defer cancel()
	_, err = c.postForm(ctx, "/support/tickets/new", form)
	return err
}

// currentSession returns the cached session, bootstrapping when needed.
func (c *HTTPClient) currentSession(ctx context.Context) (*Session, error) {
	c.mu.Lock()
	sess := c.session
	c.mu.Unlock()
	if sess != nil {
		return sess, nil
	}
	return c.Bootstrap(ctx)
}

func (c *HTTPClient) getRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *HTTPClient) getHTML(ctx context.Context, path string) (*html.Node, error) {
	body, err := c.getRaw(ctx, path)
	if err != nil {
		return nil, err
	}
	root, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, &TransientError{Err: fmt.Errorf("parse html: %w", err)}
	}
	return root, nil
}

func (c *HTTPClient) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	return c.do(req)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	req.Header.Set("User-Agent", c.agent)
	req.AddCookie(&http.Cookie{Name: "golden_key", Value: token})
	return req, nil
}

func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		wait := 60 * time.Second
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			if secs, err := strconv.Atoi(ra); err == nil {
				wait = time.Duration(secs) * time.Second
			}
		}
		return nil, &RateLimitedError{Wait: wait}
	case resp.StatusCode >= 500:
		return nil, &TransientError{Err: fmt.Errorf("server returned %d", resp.StatusCode)}
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("funpay: unexpected status %d for %s", resp.StatusCode, req.URL.Path)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	return body, nil
}
