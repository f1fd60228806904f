package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"goloja/internal/api/product"
	"goloja/internal/api/router"
	"goloja/internal/api/user"
	"goloja/internal/domain"
	apperror "goloja/internal/errors"
	"goloja/internal/pkg/logger"
	"goloja/internal/pkg/token"
	"goloja/internal/pkg/validation"
	"goloja/internal/service/productservice"
	"goloja/internal/service/userservice"
)

// --- Repositórios em memória ---

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.User
}

func (m *memUsers) FindByID(_ context.Context, id int64) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return domain.User{}, apperror.NewNotFoundError("usuário")
	}
	return u, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, apperror.NewNotFoundError("usuário")
}

func (m *memUsers) Create(_ context.Context, u domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u.ID = m.nextID
	m.byID[u.ID] = u
	return u, nil
}

func (m *memUsers) Update(_ context.Context, id int64, p domain.UserPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return apperror.NewNotFoundError("usuário")
	}
	if p.Firstname != nil {
		u.Firstname = *p.Firstname
	}
	if p.Surname != nil {
		u.Surname = *p.Surname
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	m.byID[id] = u
	return nil
}

func (m *memUsers) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return apperror.NewNotFoundError("usuário")
	}
	delete(m.byID, id)
	return nil
}

type memProducts struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Product
}

func (m *memProducts) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = m.nextID
	m.byID[p.ID] = p
	return p, nil
}

func (m *memProducts) FindByID(_ context.Context, id int64) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return domain.Product{}, apperror.NewNotFoundError("produto")
	}
	return p, nil
}

func (m *memProducts) Search(_ context.Context, f domain.ProductFilter) ([]domain.Product, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]domain.Product, 0, len(m.byID))
	for _, p := range m.byID {
		if f.Match != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Match)) {
			continue
		}
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if f.Limit >= 0 {
		start := (f.Page - 1) * f.Limit
		if start > total {
			start = total
		}
		end := start + f.Limit
		if end > total {
			end = total
		}
		all = all[start:end]
	}
	return all, total, nil
}

func (m *memProducts) Update(_ context.Context, id int64, p domain.ProductPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.byID[id]
	if !ok {
		return apperror.NewNotFoundError("produto")
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Stock != nil {
		cur.Stock = *p.Stock
	}
	m.byID[id] = cur
	return nil
}

func (m *memProducts) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return apperror.NewNotFoundError("produto")
	}
	delete(m.byID, id)
	return nil
}

// --- Montagem ---

const (
	seedEmail    = "henrique@teste.com"
	seedPassword = "123456"
)

type fixture struct {
	handler http.Handler
	users   *memUsers
	prods   *memProducts
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.MinCost)
	require.NoError(t, err)

	users := &memUsers{nextID: 1, byID: map[int64]domain.User{
		1: {ID: 1, Firstname: "Luis", Surname: "Henrique", Email: seedEmail, Password: string(hash)},
	}}
	prods := &memProducts{nextID: 1, byID: map[int64]domain.Product{
		1: {
			ID: 1, Enabled: true, Name: "Camiseta Básica", Slug: "camiseta-basica", Stock: 100,
			Description: "Camiseta de algodão com diversas cores disponíveis.", Price: 39.9, PriceWithDiscount: 29.9,
			CategoryIDs: []int64{1},
			Images: []domain.Image{
				{ID: 1, ProductID: 1, Path: "/images/products/camiseta-basica-frente.jpg", Enabled: true},
				{ID: 2, ProductID: 1, Path: "/images/products/camiseta-basica-verso.jpg", Enabled: true},
			},
			Options: []domain.Option{},
		},
	}}

	log := logger.NewNopLogger()
	v := validation.New()
	authority := token.NewAuthority(token.NewMemoryStore(), token.NewJWTGenerator("segredo-de-teste"))

	userHandler := user.NewHandler(userservice.NewService(users, authority, v, log), authority, log)
	productHandler := product.NewHandler(productservice.NewService(prods, v, log), log)

	return &fixture{
		handler: router.NewRouter(productHandler, userHandler, authority, log),
		users:   users,
		prods:   prods,
	}
}

func (f *fixture) do(method, path, authorization string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) login(t *testing.T) string {
	t.Helper()
	rec := f.do(http.MethodPost, "/v1/user/token", "", map[string]string{"email": seedEmail, "password": seedPassword})
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Detalhes string `json:"detalhes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotEmpty(t, env.Detalhes)
	return env.Detalhes
}

func envelope(status int, mensagem string) string {
	return fmt.Sprintf(`{"status":"%d","mensagem":%q}`, status, mensagem)
}

// --- Rotas utilitárias ---

func TestWelcomeAndPing(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Bem-vindo"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())

	rec = f.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// --- Login e token ---

func TestLogin(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/v1/user/token", "", map[string]string{"email": seedEmail, "password": seedPassword})
	assert.Equal(t, http.StatusOK, rec.Code)
	var env domain.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "200", env.Status)
	assert.Equal(t, "token criado", env.Mensagem)
	assert.NotEmpty(t, env.Detalhes)

	rec = f.do(http.MethodPost, "/v1/user/token", "", map[string]string{"email": seedEmail, "password": "senhainvalida291281"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, envelope(401, "senha inválido"), rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/user/token", "", map[string]string{"email": "emailinvalido298192@email.com", "password": seedPassword})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, envelope(401, "email inválido"), rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/user/token", "", map[string]string{"email": "", "password": ""})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, envelope(401, "email inválido"), rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/user/token", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "Payload JSON inválido."), rec.Body.String())
}

func TestTokenProbe(t *testing.T) {
	f := newFixture(t)
	tok := f.login(t)

	rec := f.do(http.MethodGet, "/v1/user/token", "Bearer "+tok, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"200","mensagem":"token válido","detalhes":{"user_id":1,"email":"henrique@teste.com"}}`, rec.Body.String())

	for _, bad := range []string{"Bearer tokenInvalido123", "Bearer expiredToken123", ""} {
		rec = f.do(http.MethodGet, "/v1/user/token", bad, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, bad)
		assert.JSONEq(t, envelope(404, "token não encontrado"), rec.Body.String())
	}
}

// --- Produtos ---

func TestProductSearch(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/produtos/search", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var env struct {
		Status   string             `json:"status"`
		Mensagem string             `json:"mensagem"`
		Detalhes domain.ProductPage `json:"detalhes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Produtos encontrados!", env.Mensagem)
	assert.Equal(t, 1, env.Detalhes.Total)
	assert.Equal(t, 12, env.Detalhes.Limit)
	assert.Equal(t, 1, env.Detalhes.Page)
	require.Len(t, env.Detalhes.Data, 1)

	rec = f.do(http.MethodGet, "/v1/produtos/search?limit=doze", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "limit aceita apensa numeros"), rec.Body.String())

	rec = f.do(http.MethodGet, "/v1/produtos/search?price-range=caro", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "price-range inválido"), rec.Body.String())

	rec = f.do(http.MethodGet, "/v1/produtos/search?page=922337203685477581", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "page aceita apensa numeros"), rec.Body.String())
}

func TestGetProduct(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/produtos/1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"status": "200",
		"mensagem": "Produto encontrado!",
		"detalhes": {
			"id": 1,
			"enabled": true,
			"name": "Camiseta Básica",
			"slug": "camiseta-basica",
			"stock": 100,
			"description": "Camiseta de algodão com diversas cores disponíveis.",
			"price": 39.9,
			"price_with_discount": 29.9,
			"images": [
				{"id": 1, "content": "/images/products/camiseta-basica-frente.jpg"},
				{"id": 2, "content": "/images/products/camiseta-basica-verso.jpg"}
			],
			"options": []
		}
	}`, rec.Body.String())

	for _, path := range []string{"/v1/produtos/123", "/v1/produtos/abc"} {
		rec = f.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, envelope(404, "Produto não encontrado!"), rec.Body.String())
	}
}

func TestCreateProduct(t *testing.T) {
	f := newFixture(t)
	tok := f.login(t)
	incomplete := map[string]interface{}{"name": "Produto A", "slug": "produto-a"}

	// Autorização é verificada antes da validação.
	rec := f.do(http.MethodPost, "/v1/produtos", "tokenInvalido", incomplete)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, envelope(401, "Token invalido"), rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/produtos", tok, incomplete)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "Há campos obrigatórios não preenchidos!"), rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/produtos", tok, map[string]interface{}{
		"enabled":             true,
		"name":                "Produto 01",
		"slug":                "produto-01",
		"stock":               10,
		"description":         "Descrição do produto 01",
		"price":               119.90,
		"price_with_discount": 99.90,
		"category_ids":        []int{1, 15, 24, 68},
		"images":              []map[string]string{{"type": "image/png", "content": "base64 da imagem 1"}},
		"options":             []map[string]interface{}{{"title": "Cor", "shape": "square", "radius": 4, "type": "text", "values": []string{"PP", "GG", "M"}}},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, envelope(201, "Produto criado com sucesso!"), rec.Body.String())

	created, err := f.prods.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, created.Images, 1)
	require.Len(t, created.Options, 1)
	assert.Equal(t, `["PP","GG","M"]`, created.Options[0].Values)
}

func TestUpdateProduct(t *testing.T) {
	f := newFixture(t)
	tok := f.login(t)
	patch := map[string]interface{}{"enabled": true, "name": "Produto 01", "slug": "produto-01", "stock": 10}

	rec := f.do(http.MethodPut, "/v1/produtos/1", "tokenInvalido", patch)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, envelope(401, "Token invalido"), rec.Body.String())

	rec = f.do(http.MethodPut, "/v1/produtos/1", tok, patch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, envelope(200, "Produto atualizado com sucesso!"), rec.Body.String())

	rec = f.do(http.MethodPut, "/v1/produtos/1", tok, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "todos os campos não podem esta vazio"), rec.Body.String())

	rec = f.do(http.MethodPut, "/v1/produtos/999", tok, patch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, envelope(404, "Produto não encontrado!"), rec.Body.String())
}

func TestDeleteProduct(t *testing.T) {
	f := newFixture(t)
	tok := f.login(t)

	rec := f.do(http.MethodDelete, "/v1/produtos/1", "tokenInvalido", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, envelope(401, "Token invalido"), rec.Body.String())

	rec = f.do(http.MethodDelete, "/v1/produtos/1", "Bearer "+tok, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())

	rec = f.do(http.MethodDelete, "/v1/produtos/1", tok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, envelope(404, "Produto não encontrado!"), rec.Body.String())
}

// --- Usuários ---

func TestGetUser(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/usuarios/1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var env struct {
		Status   string      `json:"status"`
		Mensagem string      `json:"mensagem"`
		Detalhes domain.User `json:"detalhes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Usuario encontrado", env.Mensagem)
	assert.Equal(t, "Luis", env.Detalhes.Firstname)
	assert.Equal(t, seedEmail, env.Detalhes.Email)
	assert.NotEmpty(t, env.Detalhes.Password)

	rec = f.do(http.MethodGet, "/v1/usuarios/123", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, envelope(404, "Usuario não encontrado"), rec.Body.String())
}

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	tok := f.login(t)

	rec := f.do(http.MethodPost, "/v1/usuarios", tok, map[string]string{
		"firstname": "Maria", "surname": "Eduarda", "email": seedEmail, "password": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "Email,já exite"), rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/usuarios", "tokenInvalido", map[string]string{
		"firstname": "Maria", "surname": "Eduarda", "email": seedEmail, "password": "123456",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, envelope(401, "Token invalido"), rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/usuarios", tok, map[string]string{
		"firstname": "Maria", "surname": "Eduarda", "password": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "os campos são obrigatórios"), rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/usuarios", tok, map[string]string{
		"firstname": "Maria", "surname": "Eduarda", "email": "maria.eduarda@example.com", "password": "123456",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"status": "201",
		"mensagem": "usuario criando com sucesso",
		"detalhes": {"firstname": "Maria", "surname": "Eduarda", "email": "maria.eduarda@example.com"}
	}`, rec.Body.String())

	// A senha é persistida como hash bcrypt e o novo usuário consegue logar.
	stored, err := f.users.FindByEmail(context.Background(), "maria.eduarda@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", stored.Password)
	rec = f.do(http.MethodPost, "/v1/user/token", "", map[string]string{"email": "maria.eduarda@example.com", "password": "123456"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/v1/usuarios", tok, map[string]string{
		"firstname": "Ana", "surname": "Lima", "email": "ana.lima@example.com", "password": strings.Repeat("a", 80),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "senha não pode ter mais de 72 bytes"), rec.Body.String())
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	tok := f.login(t)

	rec := f.do(http.MethodPut, "/v1/usuarios/1", "tokenInvalido", map[string]string{"firstname": "Maria", "surname": "Eduarda"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, envelope(401, "Token invalido"), rec.Body.String())

	rec = f.do(http.MethodPut, "/v1/usuarios/1", tok, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "todos os campos não podem esta vazio"), rec.Body.String())

	rec = f.do(http.MethodPut, "/v1/usuarios/41235", tok, map[string]string{"firstname": "Maria", "surname": "Eduarda"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, envelope(404, "Usario não encotrado"), rec.Body.String())

	rec = f.do(http.MethodPut, "/v1/usuarios/1", tok, map[string]string{
		"firstname": "Eduarda", "surname": "Maria", "email": "eduarda@example.com",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())

	updated, err := f.users.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Eduarda", updated.Firstname)
	assert.Equal(t, "eduarda@example.com", updated.Email)

	rec = f.do(http.MethodPut, "/v1/usuarios/1", tok, map[string]string{"password": strings.Repeat("a", 80)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, envelope(400, "senha não pode ter mais de 72 bytes"), rec.Body.String())
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	tok := f.login(t)

	rec := f.do(http.MethodDelete, "/v1/usuarios/22", "tokenInvalido", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, envelope(401, "Token invalido"), rec.Body.String())

	rec = f.do(http.MethodDelete, "/v1/usuarios/123473", tok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, envelope(404, "Usuario com id= 123473 não foi encotrado"), rec.Body.String())

	rec = f.do(http.MethodDelete, "/v1/usuarios/1", tok, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// O token emitido continua válido após a remoção do usuário.
	rec = f.do(http.MethodGet, "/v1/user/token", tok, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
