package middleware

import (
	"context"
	"errors"
	"net/http"

	"goloja/internal/api/response"
	"goloja/internal/domain"
	apperror "goloja/internal/errors"
	"goloja/internal/pkg/logger"
	"goloja/internal/pkg/token"
)

// ContextKey é o tipo das chaves que este pacote coloca no contexto.
// Context Keys devem ser não-exportadas em valor e de um tipo único.
type ContextKey int

const (
	IdentityKey ContextKey = iota
)

// MsgInvalidToken é a mensagem única para token ausente, malformado ou desconhecido.
const MsgInvalidToken = "Token invalido"

// TokenValidator define o contrato de validação necessário para o middleware.
type TokenValidator interface {
	Validate(ctx context.Context, presented string) (domain.Identity, error)
}

// NewAuthMiddleware valida o header Authorization (cru ou "Bearer <token>") antes de qualquer
// decodificação ou validação do corpo, e anexa a identidade ao contexto.
func NewAuthMiddleware(validator TokenValidator, log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := validator.Validate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, token.ErrInvalidToken) {
					response.Error(w, r, log, apperror.NewUnauthorizedError(MsgInvalidToken))
					return
				}
				// Falha do registro (ex: Redis fora do ar) não é um token inválido.
				response.Error(w, r, log, apperror.NewInternalError("Falha ao validar token.", err))
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentityFromContext é uma função utilitária para extrair a identidade no handler.
func GetIdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(domain.Identity)
	return identity, ok
}
