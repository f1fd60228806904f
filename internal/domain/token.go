package domain

// Identity é o que o registro de tokens associa a cada token emitido.
type Identity struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}
