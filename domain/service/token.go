package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServicePipelineTrigger is the service identity the automation webhooks
// expect in the bearer token.
const ServicePipelineTrigger = "pipeline-trigger"

type ServiceTokenClaims struct {
	jwt.RegisteredClaims
	Service string `json:"service"`
	Type    string `json:"type,omitempty"`
}

// ServiceTokenSigner mints short-lived HS256 tokens for outbound webhook
// calls. The secret is shared with the automation side, not with user auth.
type ServiceTokenSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewServiceTokenSigner(secret string, ttl time.Duration) *ServiceTokenSigner {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ServiceTokenSigner{secret: []byte(secret), ttl: ttl}
}

func (s *ServiceTokenSigner) Sign(service string, tokenType string) (string, error) {
	now := time.Now()
	claims := ServiceTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Service: service,
		Type:    tokenType,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
