package domain

// Envelope é a estrutura padronizada de todas as respostas da API.
// @Description Estrutura padronizada de resposta: status (código HTTP em texto), mensagem e detalhes opcionais.
type Envelope struct {
	Status   string      `json:"status" example:"404"`
	Mensagem string      `json:"mensagem" example:"Produto não encontrado!"`
	Detalhes interface{} `json:"detalhes,omitempty"`
}
