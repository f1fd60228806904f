// Package response monta e escreve o envelope {status, mensagem, detalhes?} usado por todos os endpoints.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"goloja/internal/domain"
	apperror "goloja/internal/errors"
	"goloja/internal/pkg/logger"
)

// MsgInvalidJSON é devolvida quando o corpo não é um JSON válido para o payload.
const MsgInvalidJSON = "Payload JSON inválido."

// Build monta o envelope. detalhes é opcional e omitido quando nil.
func Build(status int, mensagem string, detalhes ...interface{}) domain.Envelope {
	env := domain.Envelope{
		Status:   strconv.Itoa(status),
		Mensagem: mensagem,
	}
	if len(detalhes) > 0 {
		env.Detalhes = detalhes[0]
	}
	return env
}

// JSON escreve qualquer corpo JSON com o status informado.
func JSON(w http.ResponseWriter, log logger.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Send escreve um envelope de sucesso.
func Send(w http.ResponseWriter, log logger.Logger, status int, mensagem string, detalhes ...interface{}) {
	JSON(w, log, status, Build(status, mensagem, detalhes...))
}

// NoContent responde 204 sem corpo.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error traduz o erro (apperror ou não) no envelope correspondente.
// 5xx são registrados como erro; 4xx apenas em debug.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	JSON(w, log, status, Build(status, message))
}

// Decode lê o corpo JSON em dst. Corpo vazio equivale a um objeto vazio.
// Em caso de falha já escreve o 400 e devolve false.
func Decode(w http.ResponseWriter, r *http.Request, log logger.Logger, dst interface{}) bool {
	if r.Body == nil {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		Error(w, r, log, apperror.NewValidationError(MsgInvalidJSON))
		return false
	}
	return true
}
