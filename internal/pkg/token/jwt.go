package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"goloja/internal/domain"
)

// Generator produz o texto opaco de um novo token.
type Generator interface {
	Generate(identity domain.Identity) (string, error)
}

// JWTGenerator gera tokens no formato JWT assinado (HS256) com jti aleatório.
// O texto é tratado como opaco: a validação é feita pelo registro, não pela assinatura.
type JWTGenerator struct {
	secretKey []byte
	now       func() time.Time
}

// NewJWTGenerator cria o gerador com a chave secreta da configuração.
func NewJWTGenerator(secretKey string) *JWTGenerator {
	return &JWTGenerator{
		secretKey: []byte(secretKey),
		now:       time.Now,
	}
}

// Generate cria um novo JWT assinado contendo o ID do usuário como subject.
// Sem ExpiresAt: tokens não expiram.
func (g *JWTGenerator) Generate(identity domain.Identity) (string, error) {
	now := g.now()
	claims := jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		Subject:  strconv.FormatInt(identity.UserID, 10),
		IssuedAt: jwt.NewNumericDate(now),
		Issuer:   "GoLoja-API",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Assina o token com a chave secreta
	tokenString, err := token.SignedString(g.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}

	return tokenString, nil
}
