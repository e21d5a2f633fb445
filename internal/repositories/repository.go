package repositories

import (
	"petcare/internal/database"
)

type Repository struct {
	User           UserRepository
	ServiceRequest ServiceRequestRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:           NewUserRepository(db),
		ServiceRequest: NewServiceRequestRepository(db),
	}
}
