package api

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
)

// SessionCookie is the dashboard session cookie name.
const SessionCookie = "sessionId"

const userKey = "api.user"

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// requireSession authenticates the request via the session cookie. The
// cookie expiry slides on every validated request.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		user, err := s.auth().Validate(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		s.setSessionCookie(c, sessionID)
		c.Set(userKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *ent.User {
	u, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	return u.(*ent.User)
}

// ipLimiter applies a per-IP token bucket; used on the register and login
// endpoints.
type ipLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*ipClient
}

type ipClient struct {
	limiter *rate.Limiter
	seen    time.Time
}

func newIPLimiter(limit rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{limit: limit, burst: burst, clients: make(map[string]*ipClient)}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[ip]
	if !ok {
		cl = &ipClient{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.seen = time.Now()

	// Opportunistic sweep of idle entries.
	if len(l.clients) > 1024 {
		for k, v := range l.clients {
			if time.Since(v.seen) > time.Hour {
				delete(l.clients, k)
			}
		}
	}
	return cl.limiter.Allow()
}

func rateLimit(l *ipLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// etagJSON writes a JSON response with an ETag, answering 304 when the
// client already holds the current revision.
func etagJSON(c *gin.Context, code int, body []byte) {
	sum := sha1.Sum(body)
	tag := `"` + hex.EncodeToString(sum[:]) + `"`
	c.Header("ETag", tag)
	if match := c.GetHeader("If-None-Match"); match == tag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(code, "application/json; charset=utf-8", body)
}
