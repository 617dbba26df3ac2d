package repositories

import (
	"github.com/kasule/studentledger/internal/db"
)

// Repositories holds all repository instances
type Repositories struct {
	StudentRepository *StudentRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(database),
	}
}
