package apiserver

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"deptdash/internal/session"
)

const principalKey = "auth_principal"

// User is an account that may sign in.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// UserStore holds accounts keyed by lower-cased email.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]User
	cost    int
}

// NewUserStore creates an empty store hashing with the given bcrypt cost.
func NewUserStore(cost int) *UserStore {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &UserStore{byEmail: make(map[string]User), cost: cost}
}

// Add registers a user with a plaintext password.
func (s *UserStore) Add(name, email, password string, isAdmin bool) (User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, err
	}
	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		IsAdmin:      isAdmin,
	}
	s.mu.Lock()
	s.byEmail[strings.ToLower(email)] = u
	s.mu.Unlock()
	return u, nil
}

// Authenticate checks credentials.
func (s *UserStore) Authenticate(email, password string) (User, error) {
	s.mu.RLock()
	u, ok := s.byEmail[strings.ToLower(email)]
	s.mu.RUnlock()
	if !ok {
		return User{}, ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidLogin
	}
	return u, nil
}

// TokenManager issues and validates HS256 tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager. A non-positive ttl defaults to an hour.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for u.
func (tm *TokenManager) Issue(u User) (string, error) {
	now := time.Now()
	claims := &session.Claims{
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Parse validates a token and returns its claims.
func (tm *TokenManager) Parse(tokenStr string) (*session.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &session.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*session.Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// authenticate rejects requests without a valid bearer token.
func (tm *TokenManager) authenticate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return unauthorized("Not authorized, no token")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return unauthorized("Not authorized, invalid header")
	}
	claims, err := tm.Parse(parts[1])
	if err != nil {
		return unauthorized("Not authorized, token failed")
	}
	c.Locals(principalKey, claims)
	return c.Next()
}

// requireAdmin allows only principals whose token carries isAdmin.
func requireAdmin(c *fiber.Ctx) error {
	claims, ok := c.Locals(principalKey).(*session.Claims)
	if !ok || !claims.IsAdmin {
		return forbidden("Not authorized as an admin")
	}
	return c.Next()
}
