package domain

import (
	"context"
	"encoding/json"
)

// Product representa o item principal do catálogo (a Entidade).
type Product struct {
	ID                int64    `json:"id"`
	Enabled           bool     `json:"enabled"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Stock             int      `json:"stock"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	PriceWithDiscount float64  `json:"price_with_discount"`
	CategoryIDs       []int64  `json:"category_ids"`
	Images            []Image  `json:"images"`
	Options           []Option `json:"options"`
}

// Image é uma imagem do produto (tabela imagens_produto).
type Image struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Path      string `json:"path"`
	Enabled   bool   `json:"enabled"`
}

// Option é uma opção configurável do produto (tabela opcoes_produto).
// Values guarda a lista de valores codificada em JSON (ex: `["PP","GG"]`).
type Option struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"produtos_id"`
	Title     string `json:"title"`
	Shape     string `json:"shape"`
	Radius    *int   `json:"radius"`
	Type      string `json:"type"`
	Values    string `json:"values"`
}

// --- Payloads de entrada ---

// ProductCreate é o payload de POST /v1/produtos.
// Ponteiros distinguem "ausente" de zero (stock 0 e preço 0 são válidos).
type ProductCreate struct {
	Enabled           *bool         `json:"enabled"`
	Name              string        `json:"name" validate:"required"`
	Slug              string        `json:"slug" validate:"required"`
	Stock             *int          `json:"stock" validate:"required"`
	Description       string        `json:"description" validate:"required"`
	Price             *float64      `json:"price" validate:"required"`
	PriceWithDiscount *float64      `json:"price_with_discount" validate:"required"`
	CategoryIDs       []int64       `json:"category_ids" validate:"required"`
	Images            []ImageInput  `json:"images"`
	Options           []OptionInput `json:"options"`
}

// ImageInput é uma imagem enviada na criação; Content é o caminho ou o base64.
type ImageInput struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// OptionInput é uma opção enviada na criação.
type OptionInput struct {
	Title  string   `json:"title"`
	Shape  string   `json:"shape"`
	Radius *int     `json:"radius"`
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

// ProductPatch é o payload de PUT /v1/produtos/{id}. Campos nil não são alterados.
type ProductPatch struct {
	Enabled           *bool    `json:"enabled"`
	Name              *string  `json:"name"`
	Slug              *string  `json:"slug"`
	Stock             *int     `json:"stock"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price"`
	PriceWithDiscount *float64 `json:"price_with_discount"`
	CategoryIDs       []int64  `json:"category_ids"`
}

// Empty indica que nenhum campo reconhecido foi enviado.
func (p ProductPatch) Empty() bool {
	return p.Enabled == nil && p.Name == nil && p.Slug == nil && p.Stock == nil &&
		p.Description == nil && p.Price == nil && p.PriceWithDiscount == nil && p.CategoryIDs == nil
}

// --- Visões de saída ---

// ProductView é o formato devolvido em GET /v1/produtos/{id} e na busca.
type ProductView struct {
	ID                int64        `json:"id"`
	Enabled           bool         `json:"enabled"`
	Name              string       `json:"name"`
	Slug              string       `json:"slug"`
	Stock             int          `json:"stock"`
	Description       string       `json:"description"`
	Price             float64      `json:"price"`
	PriceWithDiscount float64      `json:"price_with_discount"`
	Images            []ImageView  `json:"images"`
	Options           []OptionView `json:"options"`
}

// ImageView expõe apenas id e conteúdo da imagem.
type ImageView struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// OptionView expõe a opção com os valores já decodificados.
type OptionView struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Shape  string          `json:"shape"`
	Radius *int            `json:"radius"`
	Type   string          `json:"type"`
	Values json.RawMessage `json:"values"`
}

// View converte a entidade no formato público. Imagens desabilitadas ficam de fora.
func (p Product) View() ProductView {
	v := ProductView{
		ID:                p.ID,
		Enabled:           p.Enabled,
		Name:              p.Name,
		Slug:              p.Slug,
		Stock:             p.Stock,
		Description:       p.Description,
		Price:             p.Price,
		PriceWithDiscount: p.PriceWithDiscount,
		Images:            []ImageView{},
		Options:           []OptionView{},
	}
	for _, img := range p.Images {
		if !img.Enabled {
			continue
		}
		v.Images = append(v.Images, ImageView{ID: img.ID, Content: img.Path})
	}
	for _, opt := range p.Options {
		values := json.RawMessage(opt.Values)
		if !json.Valid(values) {
			// Valor legado não-JSON: devolve como string.
			values, _ = json.Marshal(opt.Values)
		}
		v.Options = append(v.Options, OptionView{
			ID:     opt.ID,
			Title:  opt.Title,
			Shape:  opt.Shape,
			Radius: opt.Radius,
			Type:   opt.Type,
			Values: values,
		})
	}
	return v
}

// --- Busca ---

// ProductFilter define os parâmetros de busca e paginação de /v1/produtos/search.
type ProductFilter struct {
	Limit       int // -1 = sem limite
	Page        int
	Match       string
	CategoryIDs []int64
	PriceMin    *float64
	PriceMax    *float64
}

// ProductPage é o resultado paginado da busca.
type ProductPage struct {
	Data  []ProductView `json:"data"`
	Total int           `json:"total"`
	Limit int           `json:"limit"`
	Page  int           `json:"page"`
}

// ProductRepository é a interface que a camada de Repositório (Data Access) DEVE implementar.
// Ela define o que a camada de Serviço pode pedir para a camada de Persistência (DB/Cache) fazer.
type ProductRepository interface {
	Create(ctx context.Context, product Product) (Product, error) // produto, imagens e opções numa única transação
	FindByID(ctx context.Context, id int64) (Product, error)
	Search(ctx context.Context, filter ProductFilter) ([]Product, int, error)
	Update(ctx context.Context, id int64, patch ProductPatch) error
	Delete(ctx context.Context, id int64) error
}
