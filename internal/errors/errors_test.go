package errors_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "goloja/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		category string
		message  string
	}{
		{"validação", apperror.NewValidationError("os campos são obrigatórios"), http.StatusBadRequest, "VALIDATION_ERROR", "os campos são obrigatórios"},
		{"não autorizado", apperror.NewUnauthorizedError("Token invalido"), http.StatusUnauthorized, "UNAUTHORIZED", "Token invalido"},
		{"não encontrado", apperror.NewNotFoundError("Produto não encontrado!"), http.StatusNotFound, "NOT_FOUND", "Produto não encontrado!"},
		{"conflito", apperror.NewConflictError("email duplicado"), http.StatusConflict, "CONFLICT", "email duplicado"},
		{"interno", apperror.NewDBError("falha ao buscar", sql.ErrConnDone), http.StatusInternalServerError, "INTERNAL_ERROR", "Ocorreu um erro inesperado."},
		{"não tipado", errors.New("boom"), http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."},
		{"encapsulado", fmt.Errorf("camada de serviço: %w", apperror.NewNotFoundError("Usuario não encontrado")), http.StatusNotFound, "NOT_FOUND", "Usuario não encontrado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, category, message := apperror.MapToHTTPStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestInternalError_KeepsCause(t *testing.T) {
	err := apperror.NewDBError("failed to insert user", sql.ErrTxDone)

	assert.True(t, errors.Is(err, sql.ErrTxDone))
	assert.Contains(t, err.Error(), "failed to insert user (DB)")
	assert.Contains(t, err.Error(), sql.ErrTxDone.Error())
}
