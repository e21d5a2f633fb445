package repositories

import (
	"context"

	"petcare/internal/database"
	"petcare/internal/logger"
	. "petcare/internal/models"

	"github.com/google/uuid"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, request *ServiceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceRequest, error)
	GetByUser(ctx context.Context, userID uuid.UUID, status *ServiceRequestStatus) ([]*ServiceRequest, error)
	GetByStatus(ctx context.Context, status ServiceRequestStatus) ([]*ServiceRequest, error)
	Update(ctx context.Context, request *ServiceRequest) error
}

type serviceRequestRepository struct {
	db  database.DB
	log logger.Logger
}

func NewServiceRequestRepository(db database.DB) ServiceRequestRepository {
	return &serviceRequestRepository{
		db:  db,
		log: logger.New("serviceRequestRepository"),
	}
}

// Create persists a new request. Normalization, validation and timestamp
// stamping run in the model hooks; an invalid request is rejected before
// anything reaches the database.
func (r *serviceRequestRepository) Create(ctx context.Context, request *ServiceRequest) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(request).Error; err != nil {
		return log.Err("failed to create service request", err, "userID", request.UserID)
	}

	return nil
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*ServiceRequest, error) {
	log := r.log.Function("GetByID")

	var request ServiceRequest
	if err := r.db.SQLWithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get service request", err, "id", id)
	}

	return &request, nil
}

// GetByUser returns all requests owned by userID, newest first. A non-nil
// status narrows the result, served by the (user_id, status) index.
func (r *serviceRequestRepository) GetByUser(
	ctx context.Context,
	userID uuid.UUID,
	status *ServiceRequestStatus,
) ([]*ServiceRequest, error) {
	log := r.log.Function("GetByUser")

	query := r.db.SQLWithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var requests []*ServiceRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, log.Err("failed to get service requests for user", err, "userID", userID)
	}

	return requests, nil
}

func (r *serviceRequestRepository) GetByStatus(
	ctx context.Context,
	status ServiceRequestStatus,
) ([]*ServiceRequest, error) {
	log := r.log.Function("GetByStatus")

	var requests []*ServiceRequest
	if err := r.db.SQLWithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, log.Err("failed to get service requests by status", err, "status", status)
	}

	return requests, nil
}

// Update saves an administratively mutated request. The BeforeSave hook
// re-validates and restamps UpdatedAt; CreatedAt is never touched.
func (r *serviceRequestRepository) Update(ctx context.Context, request *ServiceRequest) error {
	log := r.log.Function("Update")

	if err := r.db.SQLWithContext(ctx).Save(request).Error; err != nil {
		return log.Err("failed to update service request", err, "id", request.ID)
	}

	return nil
}
