package repository

import "vaani_web/internal/storage"

type Repositories struct {
	User UserRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User: NewUserRepository(db),
	}
}
