package repository

import "github.com/stockbit/stockbit-api/internal/domain/entity"

// UserRepository define la persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
