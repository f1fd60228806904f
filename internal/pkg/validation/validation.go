// Package validation implementa o validador de campos usado por todos os recursos.
// O resultado é um valor etiquetado (Result), nunca um erro HTTP: cada serviço
// decide a mensagem pública correspondente.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind identifica o desfecho de uma validação.
type Kind int

const (
	KindOK Kind = iota
	KindMissingFields
	KindInvalidType
)

// Result é o desfecho etiquetado: Ok | MissingFields(campos) | InvalidType(campo, motivo).
type Result struct {
	Kind Kind

	// MissingFields
	Fields   []string
	AllEmpty bool // atualização sem nenhum campo reconhecido

	// InvalidType
	Field  string
	Reason string
}

// OK indica sucesso.
func (r Result) OK() bool { return r.Kind == KindOK }

// Missing monta um resultado MissingFields.
func Missing(fields ...string) Result {
	return Result{Kind: KindMissingFields, Fields: fields}
}

// AllFieldsEmpty monta o resultado de atualização vazia.
func AllFieldsEmpty() Result {
	return Result{Kind: KindMissingFields, AllEmpty: true}
}

// InvalidType monta um resultado InvalidType.
func InvalidType(field, reason string) Result {
	return Result{Kind: KindInvalidType, Field: field, Reason: reason}
}

// Patch é implementado pelos payloads de atualização.
type Patch interface {
	Empty() bool
}

// Validator encapsula o go-playground/validator com nomes de campo vindos da tag json.
type Validator struct {
	validate *validator.Validate
}

// New cria o validador. É seguro para uso concorrente.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateCreate verifica os campos obrigatórios declarados nas tags `validate` do payload.
func (v *Validator) ValidateCreate(payload interface{}) Result {
	return v.check(payload)
}

// ValidateUpdate rejeita atualizações vazias e depois aplica as regras do payload.
func (v *Validator) ValidateUpdate(patch Patch) Result {
	if patch.Empty() {
		return AllFieldsEmpty()
	}
	return v.check(patch)
}

func (v *Validator) check(payload interface{}) Result {
	err := v.validate.Struct(payload)
	if err == nil {
		return Result{}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: payload não é uma struct.
		return InvalidType("payload", err.Error())
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() != "required" {
			return InvalidType(fe.Field(), fe.Tag())
		}
		missing = append(missing, fe.Field())
	}
	return Missing(missing...)
}

// ParseInt converte um parâmetro de query numérico. Vazio devolve o padrão.
func ParseInt(field, raw string, defaultValue int) (int, Result) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultValue, Result{}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, InvalidType(field, "aceita apensa numeros")
	}
	return n, Result{}
}

// ParseIntList converte uma lista separada por vírgulas (ex: "15,24").
func ParseIntList(field, raw string) ([]int64, Result) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, Result{}
	}
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, InvalidType(field, "aceita apensa numeros")
		}
		out = append(out, n)
	}
	return out, Result{}
}

// ParseRange converte "min-max" (ex: "100-200") em dois números.
func ParseRange(field, raw string) (*float64, *float64, Result) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil, Result{}
	}
	lo, hi, found := strings.Cut(raw, "-")
	if !found {
		return nil, nil, InvalidType(field, "formato min-max")
	}
	minV, errMin := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	maxV, errMax := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if errMin != nil || errMax != nil || minV > maxV {
		return nil, nil, InvalidType(field, "formato min-max")
	}
	return &minV, &maxV, Result{}
}
