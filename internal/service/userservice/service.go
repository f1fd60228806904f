package userservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"goloja/internal/domain"
	apperror "goloja/internal/errors"
	"goloja/internal/pkg/logger"
	"goloja/internal/pkg/metrics"
	"goloja/internal/pkg/validation"
)

// Mensagens públicas do recurso usuarios.
const (
	MsgInvalidEmail    = "email inválido"
	MsgInvalidPassword = "senha inválido"
	MsgUserNotFound    = "Usuario não encontrado"
	MsgUpdateNotFound  = "Usario não encotrado"
	MsgEmailTaken      = "Email,já exite"
	MsgRequiredFields  = "os campos são obrigatórios"
	MsgEmptyUpdate     = "todos os campos não podem esta vazio"
	MsgPasswordTooLong = "senha não pode ter mais de 72 bytes"
)

// TokenIssuer é o contrato da Autoridade de Tokens (internal/pkg/token) usado no login.
type TokenIssuer interface {
	Issue(ctx context.Context, identity domain.Identity) (string, error)
}

// UserService define o serviço de lógica de negócio para a entidade User.
type UserService struct {
	UserRepo  domain.UserRepository
	Tokens    TokenIssuer
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria uma nova instância do UserService, injetando o Repositório e a Autoridade de Tokens.
func NewService(repo domain.UserRepository, tokens TokenIssuer, v *validation.Validator, log logger.Logger) *UserService {
	return &UserService{
		UserRepo:  repo,
		Tokens:    tokens,
		validator: v,
		logger:    log,
	}
}

// Login autentica um usuário, verifica a senha e emite um token.
// O email é verificado antes da senha.
func (s *UserService) Login(ctx context.Context, cred domain.Credential) (string, error) {
	// 1. Email vazio nunca corresponde a um usuário
	if strings.TrimSpace(cred.Email) == "" {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginInvalidEmail).Inc()
		return "", apperror.NewUnauthorizedError(MsgInvalidEmail)
	}

	// 2. Buscar Usuário pelo Email
	user, err := s.UserRepo.FindByEmail(ctx, cred.Email)
	if err != nil {
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			metrics.LoginAttempts.WithLabelValues(metrics.LoginInvalidEmail).Inc()
			return "", apperror.NewUnauthorizedError(MsgInvalidEmail)
		}
		// Retorna erro interno se falhar a busca (DB error)
		return "", err
	}

	// 3. Comparar a senha informada (texto puro) com o hash salvo no DB
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(cred.Password)); err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginInvalidPassword).Inc()
		return "", apperror.NewUnauthorizedError(MsgInvalidPassword)
	}

	// 4. Emitir e registrar o token
	tokenString, err := s.Tokens.Issue(ctx, domain.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	metrics.LoginAttempts.WithLabelValues(metrics.LoginSuccess).Inc()
	s.logger.Info("Login realizado.", map[string]interface{}{"user_id": user.ID})
	return tokenString, nil
}

// GetUser busca o usuário pelo id (texto do path).
func (s *UserService) GetUser(ctx context.Context, rawID string) (domain.User, error) {
	id, ok := parseID(rawID)
	if !ok {
		return domain.User{}, apperror.NewNotFoundError(MsgUserNotFound)
	}

	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return domain.User{}, apperror.NewNotFoundError(MsgUserNotFound)
		}
		return domain.User{}, err
	}
	return user, nil
}

// CreateUser valida, rejeita email duplicado, faz o hash da senha e persiste.
func (s *UserService) CreateUser(ctx context.Context, payload domain.UserCreate) (domain.UserCreated, error) {
	// 1. Campos obrigatórios
	if res := s.validator.ValidateCreate(payload); !res.OK() {
		return domain.UserCreated{}, apperror.NewValidationError(MsgRequiredFields)
	}

	// 2. Email duplicado
	if err := s.ensureEmailFree(ctx, payload.Email, 0); err != nil {
		return domain.UserCreated{}, err
	}

	// 3. Hashing da Senha
	hashedPassword, err := hashPassword(payload.Password)
	if err != nil {
		return domain.UserCreated{}, err
	}

	// 4. Persistência
	user, err := s.UserRepo.Create(ctx, domain.User{
		Firstname: payload.Firstname,
		Surname:   payload.Surname,
		Email:     payload.Email,
		Password:  hashedPassword,
	})
	if err != nil {
		// Corrida entre a verificação e o INSERT: a constraint UNIQUE decide.
		var conflict *apperror.ConflictError
		if errors.As(err, &conflict) {
			return domain.UserCreated{}, apperror.NewValidationError(MsgEmailTaken)
		}
		return domain.UserCreated{}, err
	}

	return domain.UserCreated{Firstname: user.Firstname, Surname: user.Surname, Email: user.Email}, nil
}

// UpdateUser aplica uma atualização parcial. A validação acontece antes da busca pelo id.
func (s *UserService) UpdateUser(ctx context.Context, rawID string, patch domain.UserPatch) error {
	if res := s.validator.ValidateUpdate(patch); !res.OK() {
		return apperror.NewValidationError(MsgEmptyUpdate)
	}

	id, ok := parseID(rawID)
	if !ok {
		return apperror.NewNotFoundError(MsgUpdateNotFound)
	}
	if _, err := s.UserRepo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return apperror.NewNotFoundError(MsgUpdateNotFound)
		}
		return err
	}

	if patch.Email != nil {
		if err := s.ensureEmailFree(ctx, *patch.Email, id); err != nil {
			return err
		}
	}
	if patch.Password != nil {
		hashed, err := hashPassword(*patch.Password)
		if err != nil {
			return err
		}
		patch.Password = &hashed
	}

	if err := s.UserRepo.Update(ctx, id, patch); err != nil {
		var conflict *apperror.ConflictError
		switch {
		case isNotFound(err):
			return apperror.NewNotFoundError(MsgUpdateNotFound)
		case errors.As(err, &conflict):
			return apperror.NewValidationError(MsgEmailTaken)
		}
		return err
	}
	return nil
}

// DeleteUser remove o usuário.
func (s *UserService) DeleteUser(ctx context.Context, rawID string) error {
	notFound := apperror.NewNotFoundError(fmt.Sprintf("Usuario com id= %s não foi encotrado", rawID))

	id, ok := parseID(rawID)
	if !ok {
		return notFound
	}
	if err := s.UserRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return notFound
		}
		return err
	}
	return nil
}

// ensureEmailFree falha com MsgEmailTaken se o email pertence a outro usuário.
func (s *UserService) ensureEmailFree(ctx context.Context, email string, ownerID int64) error {
	existing, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != ownerID {
		return apperror.NewValidationError(MsgEmailTaken)
	}
	return nil
}

// hashPassword gera o hash bcrypt. Senha acima do limite do bcrypt é erro do cliente.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperror.NewValidationError(MsgPasswordTooLong)
		}
		return "", apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}
	return string(hashed), nil
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func isNotFound(err error) bool {
	var nf *apperror.NotFoundError
	return errors.As(err, &nf)
}
