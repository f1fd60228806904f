package domain

import "context"

// User representa a entidade do usuário no sistema (tabela usuarios).
type User struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Password  string `json:"password"` // Hash bcrypt; o contrato de GET /v1/usuarios/{id} o expõe
}

// UserCreate é o payload de POST /v1/usuarios.
type UserCreate struct {
	Firstname string `json:"firstname" validate:"required"`
	Surname   string `json:"surname" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// UserPatch é o payload de PUT /v1/usuarios/{id}. Campos nil não são alterados.
type UserPatch struct {
	Firstname *string `json:"firstname"`
	Surname   *string `json:"surname"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// Empty indica que nenhum campo reconhecido foi enviado.
func (p UserPatch) Empty() bool {
	return p.Firstname == nil && p.Surname == nil && p.Email == nil && p.Password == nil
}

// UserCreated é o corpo (detalhes) devolvido após a criação; a senha nunca é incluída.
type UserCreated struct {
	Firstname string `json:"firstname"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
}

// Credential é o par de login. Não é persistido.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRepository é a interface que a camada de Repositório (Data Access) DEVE implementar.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id int64, patch UserPatch) error
	Delete(ctx context.Context, id int64) error
}
