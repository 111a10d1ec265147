package repository

import "github.com/shatalito/pos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// No existe borrado físico: la baja es Update con Active=false.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// ListActive lista solo usuarios activos, ordenados por username.
	ListActive() ([]*entity.User, error)
}
