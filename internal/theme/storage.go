package theme

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// MemoryStorage keeps values for the life of the process.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return true
}

// cookieMaxAge keeps the preference for a year.
const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStorage persists values as cookies on the visitor's browser. Reads
// come from the request; writes go to the response and are visible to later
// reads on the same request.
type CookieStorage struct {
	c       *gin.Context
	secure  bool
	written map[string]string
}

// CookieOption configures a CookieStorage.
type CookieOption func(*CookieStorage)

// SecureCookies marks written cookies Secure, for HTTPS deployments.
func SecureCookies(secure bool) CookieOption {
	return func(s *CookieStorage) {
		s.secure = secure
	}
}

func NewCookieStorage(c *gin.Context, opts ...CookieOption) *CookieStorage {
	s := &CookieStorage{c: c, written: make(map[string]string)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CookieStorage) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		return v, true
	}
	v, err := s.c.Cookie(key)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (s *CookieStorage) Set(key, value string) bool {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", s.secure, true)
	s.written[key] = value
	return true
}
