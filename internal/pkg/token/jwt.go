package token

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"

	"storefront/internal/domain"
)

const (
	issuer        = "storefront"
	keyDerivation = "storefront session cookie v1"
)

// SessionClaims define as informações da sessão armazenadas no cookie assinado.
// É obrigatório incorporar jwt.RegisteredClaims.
type SessionClaims struct {
	UserID            string            `json:"user_id,omitempty"`
	RegistrationStage int               `json:"registration_stage,omitempty"`
	Roles             *domain.RoleFlags `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Service codifica e decodifica sessões como JWT HS256.
type Service struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

// NewService cria uma nova instância do serviço Token.
// A chave de assinatura é derivada do segredo via HKDF-SHA256, para que o mesmo
// SESSION_SECRET não seja usado diretamente como chave HMAC.
func NewService(secret string, expiry time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("segredo de sessão vazio")
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyDerivation)), key); err != nil {
		return nil, fmt.Errorf("falha ao derivar chave de sessão: %w", err)
	}
	return &Service{secretKey: key, expiry: expiry, now: time.Now}, nil
}

// Encode gera o valor assinado do cookie para a sessão.
func (s *Service) Encode(sess domain.Session) (string, error) {
	now := s.now()
	claims := SessionClaims{
		UserID:            sess.UserID,
		RegistrationStage: sess.RegistrationStage,
		Roles:             sess.CachedRoles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   sess.UserID,
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar a sessão: %w", err)
	}
	return tokenString, nil
}

// Decode valida o valor do cookie e reconstrói a sessão.
func (s *Service) Decode(tokenString string) (domain.Session, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verifica se o método de assinatura é o esperado (HS256)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sessão inválida: %w", err)
	}
	if !token.Valid {
		return domain.Session{}, errors.New("sessão não é válida")
	}

	return domain.Session{
		UserID:            claims.UserID,
		RegistrationStage: claims.RegistrationStage,
		CachedRoles:       claims.Roles,
	}, nil
}
