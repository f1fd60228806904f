package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"goloja/internal/domain"
	apperror "goloja/internal/errors"
	"goloja/internal/pkg/logger"
)

// uniqueViolation é o código SQLSTATE do PostgreSQL para violação de chave única.
const uniqueViolation = "23505"

// UserRepository implementa a interface domain.UserRepository sobre a tabela usuarios.
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository, injetando o DB.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const selectUser = `SELECT id, firstname, surname, email, password FROM usuarios`

// FindByID busca um usuário pela chave primária.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user, err := scanUser(r.DB.QueryRowContext(ctxTimeout, selectUser+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug("Usuário não encontrado no DB por id.", map[string]interface{}{"user_id": id})
			return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com id %d não encontrado", id))
		}
		r.logger.Error("Falha ao buscar usuário por id no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to find user by id", err)
	}
	return user, nil
}

// FindByEmail busca um usuário pelo endereço de e-mail.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	r.logger.Debug("Iniciando FindByEmail de usuário no repositório.", map[string]interface{}{"email_attempt": email})

	// 1. Configura Contexto com Timeout
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 2. Executa a busca e mapeia o resultado
	user, err := scanUser(r.DB.QueryRowContext(ctxTimeout, selectUser+` WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug("Usuário não encontrado no DB por email.", map[string]interface{}{"email": email})
			return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com email '%s' não encontrado", email))
		}
		r.logger.Error("Falha ao buscar usuário por email no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to find user by email", err)
	}

	return user, nil
}

// Create insere um novo usuário. A senha já deve chegar como hash.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const insertSQL = `INSERT INTO usuarios (firstname, surname, email, password)
                       VALUES ($1, $2, $3, $4) RETURNING id`

	err := r.DB.QueryRowContext(ctxTimeout, insertSQL,
		user.Firstname,
		user.Surname,
		user.Email,
		user.Password,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, apperror.NewConflictError(fmt.Sprintf("email '%s' já cadastrado", user.Email))
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to insert user", err)
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": user.ID, "email": user.Email})
	return user, nil
}

// Update altera apenas as colunas presentes no patch.
// Zero linhas afetadas significa que o usuário não existe.
func (r *UserRepository) Update(ctx context.Context, id int64, patch domain.UserPatch) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Firstname != nil {
		add("firstname", *patch.Firstname)
	}
	if patch.Surname != nil {
		add("surname", *patch.Surname)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Password != nil {
		add("password", *patch.Password)
	}
	if len(sets) == 0 {
		return apperror.NewValidationError("nenhum campo para atualizar")
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE usuarios SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	res, err := r.DB.ExecContext(ctxTimeout, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflictError("email já cadastrado")
		}
		r.logger.Error("Falha ao atualizar usuário no DB.", err)
		return apperror.NewDBError("failed to update user", err)
	}
	return requireAffected(res, fmt.Sprintf("Usuário com id %d não encontrado", id))
}

// Delete remove o usuário.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao remover usuário no DB.", err)
		return apperror.NewDBError("failed to delete user", err)
	}
	return requireAffected(res, fmt.Sprintf("Usuário com id %d não encontrado", id))
}

func scanUser(row *sql.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Firstname, &user.Surname, &user.Email, &user.Password)
	return user, err
}

func requireAffected(res sql.Result, notFoundMsg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDBError("failed to read affected rows", err)
	}
	if n == 0 {
		return apperror.NewNotFoundError(notFoundMsg)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
