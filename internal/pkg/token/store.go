package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"goloja/internal/domain"
	"goloja/internal/pkg/cache"
)

// Store é o registro de tokens válidos. Tokens não expiram: valem enquanto o registro existir.
type Store interface {
	Save(ctx context.Context, token string, identity domain.Identity) error
	// Lookup devolve found=false para tokens desconhecidos; err só para falhas de infraestrutura.
	Lookup(ctx context.Context, token string) (domain.Identity, bool, error)
}

// MemoryStore guarda os tokens no processo. Emissão é escrita, validação é leitura.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]domain.Identity
}

// NewMemoryStore cria um registro vazio, com a vida útil do processo.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]domain.Identity)}
}

func (s *MemoryStore) Save(_ context.Context, token string, identity domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = identity
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, token string) (domain.Identity, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.tokens[token]
	return identity, ok, nil
}

// Len devolve quantos tokens estão registrados.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}

// RedisStore compartilha o registro entre reinícios do processo usando o cache Redis.
type RedisStore struct {
	cache cache.Client
}

const tokenKey = "token:%s"

// NewRedisStore cria o registro sobre um cache.Client.
func NewRedisStore(c cache.Client) *RedisStore {
	return &RedisStore{cache: c}
}

func (s *RedisStore) Save(ctx context.Context, token string, identity domain.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("falha ao serializar identidade: %w", err)
	}
	// Expiração 0: a chave não expira.
	if err := s.cache.Set(ctx, fmt.Sprintf(tokenKey, token), payload, 0); err != nil {
		return fmt.Errorf("falha ao registrar token no Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Lookup(ctx context.Context, token string) (domain.Identity, bool, error) {
	raw, err := s.cache.Get(ctx, fmt.Sprintf(tokenKey, token))
	if errors.Is(err, cache.ErrCacheMiss) {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("falha ao consultar token no Redis: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return domain.Identity{}, false, fmt.Errorf("identidade corrompida no Redis: %w", err)
	}
	return identity, true, nil
}
