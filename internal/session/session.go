package session

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName = "sessionId"
	LocalsKey  = "session_id"
	MaxAge     = 7 * 24 * time.Hour
)

var ErrInvalid = errors.New("invalid session")

// Codec maps a session id to the cookie value and back.
type Codec interface {
	Encode(id string) (string, error)
	Decode(raw string) (string, error)
}

// NewCodec returns a SignedCodec when secret is set, otherwise a PlainCodec.
func NewCodec(secret string) Codec {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return PlainCodec{}
	}
	return SignedCodec{Secret: []byte(secret)}
}

// PlainCodec stores the id as the cookie value. Any non-empty value is a
// valid session.
type PlainCodec struct{}

func (PlainCodec) Encode(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrInvalid
	}
	return id, nil
}

func (PlainCodec) Decode(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrInvalid
	}
	return raw, nil
}

// SignedCodec wraps the id in an HS256 token so clients cannot forge or
// enumerate other sessions.
type SignedCodec struct {
	Secret []byte
}

func (s SignedCodec) Encode(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrInvalid
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"iat": time.Now().Unix(),
	})
	return token.SignedString(s.Secret)
}

func (s SignedCodec) Decode(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrInvalid
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalid
	}
	sid, ok := claims["sid"].(string)
	if !ok || strings.TrimSpace(sid) == "" {
		return "", ErrInvalid
	}
	return sid, nil
}

// Mint returns a fresh session id.
func Mint() string {
	return uuid.NewString()
}

// Guard rejects requests without a usable session cookie with a bare 401 and
// stores the decoded id in c.Locals(LocalsKey) otherwise.
func Guard(codec Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := codec.Decode(utils.CopyString(c.Cookies(CookieName)))
		if err != nil {
			c.Status(fiber.StatusUnauthorized)
			return nil
		}

		c.Locals(LocalsKey, id)
		return c.Next()
	}
}

// FromCtx reads the id stored by Guard.
func FromCtx(c *fiber.Ctx) (string, bool) {
	if v := c.Locals(LocalsKey); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

// Resolve returns the caller's session id, minting one and attaching the
// cookie when the request carries none. An existing cookie is never rewritten.
func Resolve(c *fiber.Ctx, codec Codec) (string, error) {
	if raw := utils.CopyString(c.Cookies(CookieName)); raw != "" {
		if id, err := codec.Decode(raw); err == nil {
			return id, nil
		}
	}

	id := Mint()
	value, err := codec.Encode(id)
	if err != nil {
		return "", err
	}

	c.Cookie(&fiber.Cookie{
		Name:   CookieName,
		Value:  value,
		Path:   "/",
		MaxAge: int(MaxAge / time.Second),
	})
	return id, nil
}
