package productservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"goloja/internal/domain"
	apperror "goloja/internal/errors"
	"goloja/internal/pkg/logger"
	"goloja/internal/pkg/validation"
)

// Mensagens públicas do recurso produtos.
const (
	MsgFound          = "Produto encontrado!"
	MsgNotFound       = "Produto não encontrado!"
	MsgRequiredFields = "Há campos obrigatórios não preenchidos!"
	MsgEmptyUpdate    = "todos os campos não podem esta vazio"
	MsgInvalidRange   = "price-range inválido"
)

// Padrões de paginação da busca.
const (
	DefaultLimit = 12
	DefaultPage  = 1
)

// SearchParams são os parâmetros crus da query string de /v1/produtos/search.
type SearchParams struct {
	Limit       string
	Page        string
	Match       string
	CategoryIDs string
	PriceRange  string
}

// Service é a estrutura que implementa a lógica de negócio de produtos.
type Service struct {
	repo      domain.ProductRepository
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo domain.ProductRepository, v *validation.Validator, log logger.Logger) *Service {
	return &Service{repo: repo, validator: v, logger: log}
}

// Search converte e valida os parâmetros, depois delega a busca ao repositório.
func (s *Service) Search(ctx context.Context, params SearchParams) (domain.ProductPage, error) {
	limit, res := validation.ParseInt("limit", params.Limit, DefaultLimit)
	if !res.OK() || limit < -1 {
		return domain.ProductPage{}, numericOnly("limit")
	}
	page, res := validation.ParseInt("page", params.Page, DefaultPage)
	if !res.OK() || page < 1 || offsetOverflows(limit, page) {
		return domain.ProductPage{}, numericOnly("page")
	}
	categoryIDs, res := validation.ParseIntList("category_ids", params.CategoryIDs)
	if !res.OK() {
		return domain.ProductPage{}, numericOnly("category_ids")
	}
	priceMin, priceMax, res := validation.ParseRange("price-range", params.PriceRange)
	if !res.OK() {
		return domain.ProductPage{}, apperror.NewValidationError(MsgInvalidRange)
	}

	filter := domain.ProductFilter{
		Limit:       limit,
		Page:        page,
		Match:       params.Match,
		CategoryIDs: categoryIDs,
		PriceMin:    priceMin,
		PriceMax:    priceMax,
	}

	products, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return domain.ProductPage{}, err
	}

	data := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		data = append(data, p.View())
	}
	return domain.ProductPage{Data: data, Total: total, Limit: limit, Page: page}, nil
}

// GetProduct devolve a visão pública do produto.
func (s *Service) GetProduct(ctx context.Context, rawID string) (domain.ProductView, error) {
	id, ok := parseID(rawID)
	if !ok {
		return domain.ProductView{}, apperror.NewNotFoundError(MsgNotFound)
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ProductView{}, translateNotFound(err)
	}
	return product.View(), nil
}

// CreateProduct valida o payload e grava produto, imagens e opções de uma vez.
func (s *Service) CreateProduct(ctx context.Context, payload domain.ProductCreate) (domain.Product, error) {
	// 1. Campos obrigatórios
	if res := s.validator.ValidateCreate(payload); !res.OK() {
		s.logger.Debug("Produto rejeitado na validação.", map[string]interface{}{"fields": res.Fields})
		return domain.Product{}, apperror.NewValidationError(MsgRequiredFields)
	}

	// 2. Montagem da entidade
	product := domain.Product{
		Enabled:           payload.Enabled == nil || *payload.Enabled,
		Name:              payload.Name,
		Slug:              payload.Slug,
		Stock:             *payload.Stock,
		Description:       payload.Description,
		Price:             *payload.Price,
		PriceWithDiscount: *payload.PriceWithDiscount,
		CategoryIDs:       payload.CategoryIDs,
		Images:            make([]domain.Image, 0, len(payload.Images)),
		Options:           make([]domain.Option, 0, len(payload.Options)),
	}
	for _, img := range payload.Images {
		product.Images = append(product.Images, domain.Image{Path: img.Content, Enabled: true})
	}
	for i, opt := range payload.Options {
		values := opt.Values
		if values == nil {
			values = []string{}
		}
		encoded, err := json.Marshal(values)
		if err != nil {
			return domain.Product{}, apperror.NewInternalError(fmt.Sprintf("falha ao codificar valores da opção %d", i+1), err)
		}
		product.Options = append(product.Options, domain.Option{
			Title:  opt.Title,
			Shape:  orDefault(opt.Shape, "square"),
			Radius: opt.Radius,
			Type:   orDefault(opt.Type, "text"),
			Values: string(encoded),
		})
	}

	// 3. Delegação para a Camada de Persistência (Repository)
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("falha ao salvar produto no repositório: %w", err)
	}
	return created, nil
}

// UpdateProduct aplica uma atualização parcial.
func (s *Service) UpdateProduct(ctx context.Context, rawID string, patch domain.ProductPatch) error {
	if res := s.validator.ValidateUpdate(patch); !res.OK() {
		return apperror.NewValidationError(MsgEmptyUpdate)
	}

	id, ok := parseID(rawID)
	if !ok {
		return apperror.NewNotFoundError(MsgNotFound)
	}
	return translateNotFound(s.repo.Update(ctx, id, patch))
}

// DeleteProduct remove o produto.
func (s *Service) DeleteProduct(ctx context.Context, rawID string) error {
	id, ok := parseID(rawID)
	if !ok {
		return apperror.NewNotFoundError(MsgNotFound)
	}
	return translateNotFound(s.repo.Delete(ctx, id))
}

// translateNotFound troca o NotFound do repositório pela mensagem pública.
func translateNotFound(err error) error {
	if err == nil {
		return nil
	}
	var notFound *apperror.NotFoundError
	if errors.As(err, &notFound) {
		return apperror.NewNotFoundError(MsgNotFound)
	}
	// DB falhou, conexão perdida: propagamos o erro de infraestrutura.
	return err
}

// offsetOverflows indica se (page-1)*limit não cabe num int.
func offsetOverflows(limit, page int) bool {
	return limit > 0 && page-1 > math.MaxInt/limit
}

func numericOnly(field string) error {
	return apperror.NewValidationError(field + " aceita apensa numeros")
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
