package product

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goloja/internal/api/response"
	"goloja/internal/domain"
	"goloja/internal/pkg/logger"
	"goloja/internal/pkg/middleware"
	"goloja/internal/service/productservice"
)

// Mensagens de sucesso do recurso.
const (
	MsgSearchFound = "Produtos encontrados!"
	MsgCreated     = "Produto criado com sucesso!"
	MsgUpdated     = "Produto atualizado com sucesso!"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	Search(ctx context.Context, params productservice.SearchParams) (domain.ProductPage, error)
	GetProduct(ctx context.Context, id string) (domain.ProductView, error)
	CreateProduct(ctx context.Context, payload domain.ProductCreate) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) error
	DeleteProduct(ctx context.Context, id string) error
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// SearchProductsHandler lida com a requisição GET /v1/produtos/search.
// @Summary Busca produtos com filtros e paginação
// @Tags products
// @Produce json
// @Param limit query int false "Itens por página (padrão 12, -1 = todos)"
// @Param page query int false "Página (padrão 1)"
// @Param match query string false "Trecho do nome ou da descrição"
// @Param category_ids query string false "IDs de categoria separados por vírgula"
// @Param price-range query string false "Faixa de preço no formato min-max"
// @Success 200 {object} domain.Envelope{detalhes=domain.ProductPage} "Produtos encontrados!"
// @Failure 400 {object} domain.Envelope "limit aceita apensa numeros"
// @Router /v1/produtos/search [get]
func (h *Handler) SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.Service.Search(r.Context(), productservice.SearchParams{
		Limit:       q.Get("limit"),
		Page:        q.Get("page"),
		Match:       q.Get("match"),
		CategoryIDs: q.Get("category_ids"),
		PriceRange:  q.Get("price-range"),
	})
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.Send(w, h.Logger, http.StatusOK, MsgSearchFound, page)
}

// GetProductByIDHandler lida com a requisição GET /v1/produtos/{id}.
// @Summary Busca um produto pelo ID
// @Tags products
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} domain.Envelope{detalhes=domain.ProductView} "Produto encontrado!"
// @Failure 404 {object} domain.Envelope "Produto não encontrado!"
// @Router /v1/produtos/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.Send(w, h.Logger, http.StatusOK, productservice.MsgFound, view)
}

// CreateProductHandler lida com a requisição POST /v1/produtos.
// @Summary Cria um produto com imagens e opções
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body domain.ProductCreate true "Dados do produto"
// @Success 201 {object} domain.Envelope "Produto criado com sucesso!"
// @Failure 400 {object} domain.Envelope "Há campos obrigatórios não preenchidos!"
// @Failure 401 {object} domain.Envelope "Token invalido"
// @Router /v1/produtos [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var payload domain.ProductCreate
	if !response.Decode(w, r, h.Logger, &payload) {
		return
	}

	created, err := h.Service.CreateProduct(r.Context(), payload)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	fields := map[string]interface{}{"product_id": created.ID}
	if identity, ok := middleware.GetIdentityFromContext(r.Context()); ok {
		fields["by_user_id"] = identity.UserID
	}
	h.Logger.Info("Produto criado.", fields)

	response.Send(w, h.Logger, http.StatusCreated, MsgCreated)
}

// UpdateProductHandler lida com a requisição PUT /v1/produtos/{id}.
// @Summary Atualiza parcialmente um produto
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Param product body domain.ProductPatch true "Campos a alterar"
// @Success 200 {object} domain.Envelope "Produto atualizado com sucesso!"
// @Failure 400 {object} domain.Envelope "todos os campos não podem esta vazio"
// @Failure 401 {object} domain.Envelope "Token invalido"
// @Failure 404 {object} domain.Envelope "Produto não encontrado!"
// @Router /v1/produtos/{id} [put]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProductPatch
	if !response.Decode(w, r, h.Logger, &patch) {
		return
	}

	if err := h.Service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.Send(w, h.Logger, http.StatusOK, MsgUpdated)
}

// DeleteProductHandler lida com a requisição DELETE /v1/produtos/{id}.
// @Summary Remove um produto
// @Tags products
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 204 "Sem conteúdo"
// @Failure 401 {object} domain.Envelope "Token invalido"
// @Failure 404 {object} domain.Envelope "Produto não encontrado!"
// @Router /v1/produtos/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.NoContent(w)
}
