package token

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"goloja/internal/domain"
	"goloja/internal/pkg/metrics"
)

// ErrInvalidToken é o único desfecho de falha da validação: ausente, malformado ou desconhecido.
var ErrInvalidToken = errors.New("token inválido")

// Authority emite tokens após o login e valida os tokens apresentados nas requisições.
type Authority struct {
	store     Store
	generator Generator
}

// NewAuthority injeta o registro e o gerador.
func NewAuthority(store Store, generator Generator) *Authority {
	return &Authority{store: store, generator: generator}
}

// Issue gera um token novo e o registra como válido para a identidade.
func (a *Authority) Issue(ctx context.Context, identity domain.Identity) (string, error) {
	tokenString, err := a.generator.Generate(identity)
	if err != nil {
		return "", err
	}
	if err := a.store.Save(ctx, tokenString, identity); err != nil {
		return "", fmt.Errorf("falha ao registrar token: %w", err)
	}
	metrics.TokensIssued.Inc()
	return tokenString, nil
}

// Validate aceita o valor do header Authorization, cru ou com o prefixo "Bearer ".
// Erros de infraestrutura do registro são devolvidos como estão; todo o resto é ErrInvalidToken.
func (a *Authority) Validate(ctx context.Context, presented string) (domain.Identity, error) {
	tokenString := Extract(presented)
	if tokenString == "" {
		return domain.Identity{}, ErrInvalidToken
	}

	identity, found, err := a.store.Lookup(ctx, tokenString)
	if err != nil {
		return domain.Identity{}, err
	}
	if !found {
		return domain.Identity{}, ErrInvalidToken
	}
	return identity, nil
}

// Extract remove o prefixo "Bearer " (sem diferenciar maiúsculas) e os espaços ao redor.
func Extract(header string) string {
	header = strings.TrimSpace(header)
	if strings.EqualFold(header, "bearer") {
		return ""
	}
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	return header
}
