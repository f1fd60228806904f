package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goloja/internal/api/response"
	"goloja/internal/domain"
	apperror "goloja/internal/errors"
	"goloja/internal/pkg/logger"
	"goloja/internal/pkg/middleware"
	"goloja/internal/pkg/token"
)

// Mensagens de sucesso do recurso.
const (
	MsgTokenCreated  = "token criado"
	MsgTokenValid    = "token válido"
	MsgTokenNotFound = "token não encontrado"
	MsgUserFound     = "Usuario encontrado"
	MsgUserCreated   = "usuario criando com sucesso"
)

// UserService define o contrato que o Handler espera da camada de Serviço.
type UserService interface {
	Login(ctx context.Context, cred domain.Credential) (string, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	CreateUser(ctx context.Context, payload domain.UserCreate) (domain.UserCreated, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) error
	DeleteUser(ctx context.Context, id string) error
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service UserService
	Tokens  middleware.TokenValidator
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service, o validador de tokens e o Logger.
func NewHandler(svc UserService, tokens middleware.TokenValidator, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Tokens:  tokens,
		Logger:  log,
	}
}

// LoginHandler lida com a requisição POST /v1/user/token.
// @Summary Autentica o usuário e retorna um token
// @Description Verifica email e senha (email primeiro) e emite um token opaco.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credential true "Email e senha"
// @Success 200 {object} domain.Envelope "token criado"
// @Failure 400 {object} domain.Envelope "Payload JSON inválido."
// @Failure 401 {object} domain.Envelope "email inválido / senha inválido"
// @Router /v1/user/token [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var cred domain.Credential
	if !response.Decode(w, r, h.Logger, &cred) {
		return
	}

	tokenString, err := h.Service.Login(r.Context(), cred)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.Send(w, h.Logger, http.StatusOK, MsgTokenCreated, tokenString)
}

// TokenProbeHandler lida com a requisição GET /v1/user/token.
// @Summary Verifica se um token está registrado
// @Tags auth
// @Produce json
// @Param Authorization header string true "Token (cru ou Bearer)"
// @Success 200 {object} domain.Envelope "token válido"
// @Failure 404 {object} domain.Envelope "token não encontrado"
// @Router /v1/user/token [get]
func (h *Handler) TokenProbeHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := h.Tokens.Validate(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) {
			response.Error(w, r, h.Logger, apperror.NewNotFoundError(MsgTokenNotFound))
			return
		}
		response.Error(w, r, h.Logger, apperror.NewInternalError("Falha ao consultar token.", err))
		return
	}

	response.Send(w, h.Logger, http.StatusOK, MsgTokenValid, identity)
}

// GetUserHandler lida com a requisição GET /v1/usuarios/{id}.
// @Summary Busca um usuário pelo ID
// @Tags users
// @Produce json
// @Param id path int true "ID do usuário"
// @Success 200 {object} domain.Envelope{detalhes=domain.User} "Usuario encontrado"
// @Failure 404 {object} domain.Envelope "Usuario não encontrado"
// @Router /v1/usuarios/{id} [get]
func (h *Handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.Send(w, h.Logger, http.StatusOK, MsgUserFound, user)
}

// CreateUserHandler lida com a requisição POST /v1/usuarios.
// @Summary Cria um novo usuário
// @Description Valida os campos, rejeita email duplicado e salva a senha com bcrypt.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body domain.UserCreate true "Dados do usuário"
// @Success 201 {object} domain.Envelope{detalhes=domain.UserCreated} "usuario criando com sucesso"
// @Failure 400 {object} domain.Envelope "Email,já exite / os campos são obrigatórios"
// @Failure 401 {object} domain.Envelope "Token invalido"
// @Router /v1/usuarios [post]
func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload domain.UserCreate
	if !response.Decode(w, r, h.Logger, &payload) {
		return
	}

	created, err := h.Service.CreateUser(r.Context(), payload)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	if identity, ok := middleware.GetIdentityFromContext(r.Context()); ok {
		h.Logger.Info("Usuário criado.", map[string]interface{}{"by_user_id": identity.UserID, "email": created.Email})
	}
	response.Send(w, h.Logger, http.StatusCreated, MsgUserCreated, created)
}

// UpdateUserHandler lida com a requisição PUT /v1/usuarios/{id}.
// @Summary Atualiza parcialmente um usuário
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Param user body domain.UserPatch true "Campos a alterar"
// @Success 204 "Sem conteúdo"
// @Failure 400 {object} domain.Envelope "todos os campos não podem esta vazio"
// @Failure 401 {object} domain.Envelope "Token invalido"
// @Failure 404 {object} domain.Envelope "Usario não encotrado"
// @Router /v1/usuarios/{id} [put]
func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.UserPatch
	if !response.Decode(w, r, h.Logger, &patch) {
		return
	}

	if err := h.Service.UpdateUser(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.NoContent(w)
}

// DeleteUserHandler lida com a requisição DELETE /v1/usuarios/{id}.
// @Summary Remove um usuário
// @Tags users
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Success 204 "Sem conteúdo"
// @Failure 401 {object} domain.Envelope "Token invalido"
// @Failure 404 {object} domain.Envelope "Usuario com id= <id> não foi encotrado"
// @Router /v1/usuarios/{id} [delete]
func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.NoContent(w)
}
