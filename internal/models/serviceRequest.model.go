package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRequestStatus is the lifecycle state of a custom service request.
// Transitions are not constrained; any status may follow any other.
type ServiceRequestStatus string

const (
	StatusPending    ServiceRequestStatus = "pending"
	StatusInProgress ServiceRequestStatus = "in_progress"
	StatusCompleted  ServiceRequestStatus = "completed"
	StatusRejected   ServiceRequestStatus = "rejected"
	StatusCancelled  ServiceRequestStatus = "cancelled"
)

const (
	ServiceNameMaxLength = 100

	// DefaultSpecialRequirements is stored when the requester leaves the
	// field empty.
	DefaultSpecialRequirements = "Không có yêu cầu đặc biệt"
)

var serviceRequestStatusLabels = map[ServiceRequestStatus]string{
	StatusPending:    "Chờ xử lý",
	StatusInProgress: "Đang xử lý",
	StatusCompleted:  "Đã hoàn thành",
	StatusRejected:   "Từ chối",
	StatusCancelled:  "Đã hủy",
}

func (s ServiceRequestStatus) IsValid() bool {
	_, ok := serviceRequestStatusLabels[s]
	return ok
}

// Label returns the human-readable Vietnamese label for the status.
// Unrecognized values pass through unchanged.
func (s ServiceRequestStatus) Label() string {
	if label, ok := serviceRequestStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// StatusOption is one (value, label) pair for populating selection controls.
type StatusOption struct {
	Value ServiceRequestStatus `json:"value"`
	Label string               `json:"label"`
}

// ServiceRequestStatusOptions returns all five statuses with their labels,
// in lifecycle order.
func ServiceRequestStatusOptions() []StatusOption {
	statuses := []ServiceRequestStatus{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
		StatusRejected,
		StatusCancelled,
	}

	options := make([]StatusOption, 0, len(statuses))
	for _, status := range statuses {
		options = append(options, StatusOption{Value: status, Label: status.Label()})
	}
	return options
}

// ValidationError is a field-level write rejection.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ServiceRequest is a customer's request for a service the standard catalog
// does not cover. It is owned by exactly one user; administrators mutate
// status, admin notes and completion time but never own it. There is no
// deletion path.
type ServiceRequest struct {
	ID                  uuid.UUID            `gorm:"type:uuid;primaryKey"                                                                          json:"id"`
	UserID              uuid.UUID            `gorm:"type:uuid;not null;index:idx_service_requests_user_status,priority:1"                          json:"user"`
	User                *User                `gorm:"foreignKey:UserID"                                                                             json:"-"`
	ServiceName         string               `gorm:"type:varchar(100);not null"                                                                    json:"service_name"`
	Description         string               `gorm:"type:text;not null"                                                                            json:"description"`
	SpecialRequirements string               `gorm:"type:text"                                                                                     json:"special_requirements"`
	Status              ServiceRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_service_requests_status;index:idx_service_requests_user_status,priority:2" json:"status"`
	AdminNotes          string               `gorm:"type:text"                                                                                     json:"admin_notes"`
	CompletedAt         *time.Time           `json:"completedAt"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// NewServiceRequest builds a request with trimmed fields and defaults
// applied: status pending, special requirements falling back to
// DefaultSpecialRequirements. Validation happens separately on write.
func NewServiceRequest(userID uuid.UUID, serviceName, description, specialRequirements string) *ServiceRequest {
	specialRequirements = strings.TrimSpace(specialRequirements)
	if specialRequirements == "" {
		specialRequirements = DefaultSpecialRequirements
	}

	return &ServiceRequest{
		UserID:              userID,
		ServiceName:         strings.TrimSpace(serviceName),
		Description:         strings.TrimSpace(description),
		SpecialRequirements: specialRequirements,
		Status:              StatusPending,
	}
}

// Validate checks the request against the write rules. It is also invoked
// from the BeforeSave hook, so no invalid document reaches the database
// through any persistence path.
func (sr *ServiceRequest) Validate() error {
	if sr.UserID == uuid.Nil {
		return &ValidationError{Field: "user", Message: "Yêu cầu phải thuộc về một người dùng"}
	}
	if sr.ServiceName == "" {
		return &ValidationError{Field: "service_name", Message: "Tên dịch vụ không được để trống"}
	}
	if len([]rune(sr.ServiceName)) > ServiceNameMaxLength {
		return &ValidationError{
			Field:   "service_name",
			Message: fmt.Sprintf("Tên dịch vụ không được vượt quá %d ký tự", ServiceNameMaxLength),
		}
	}
	if sr.Description == "" {
		return &ValidationError{Field: "description", Message: "Mô tả yêu cầu không được để trống"}
	}
	if !sr.Status.IsValid() {
		return &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("Trạng thái không hợp lệ: %s", sr.Status),
		}
	}
	return nil
}

// normalize trims free-text fields and applies defaults prior to validation.
func (sr *ServiceRequest) normalize() {
	sr.ServiceName = strings.TrimSpace(sr.ServiceName)
	sr.Description = strings.TrimSpace(sr.Description)
	sr.SpecialRequirements = strings.TrimSpace(sr.SpecialRequirements)
	sr.AdminNotes = strings.TrimSpace(sr.AdminNotes)

	if sr.SpecialRequirements == "" {
		sr.SpecialRequirements = DefaultSpecialRequirements
	}
	if sr.Status == "" {
		sr.Status = StatusPending
	}
}

// BeforeSave runs on every create and update: normalize, validate, then
// stamp UpdatedAt. UpdatedAt is therefore monotonically non-decreasing and
// never precedes CreatedAt.
func (sr *ServiceRequest) BeforeSave(tx *gorm.DB) error {
	sr.normalize()
	if err := sr.Validate(); err != nil {
		return err
	}
	sr.UpdatedAt = time.Now()
	return nil
}

func (sr *ServiceRequest) BeforeCreate(tx *gorm.DB) error {
	if sr.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		sr.ID = id
	}
	// BeforeSave has already stamped UpdatedAt; pin CreatedAt to the same
	// instant so a fresh document has createdAt == updatedAt.
	if sr.CreatedAt.IsZero() {
		sr.CreatedAt = sr.UpdatedAt
	}
	return nil
}

// StatusLabel is the derived Vietnamese label for the stored status.
func (sr *ServiceRequest) StatusLabel() string {
	return sr.Status.Label()
}

// FormattedCreatedAt renders the creation date in the vi-VN day-first form.
func (sr *ServiceRequest) FormattedCreatedAt() string {
	return sr.CreatedAt.Format("02/01/2006")
}

// ServiceRequestView is the read-side shape: stored fields plus the derived
// values, which are never persisted.
type ServiceRequestView struct {
	ID                  uuid.UUID            `json:"id"`
	UserID              uuid.UUID            `json:"user"`
	ServiceName         string               `json:"service_name"`
	Description         string               `json:"description"`
	SpecialRequirements string               `json:"special_requirements"`
	Status              ServiceRequestStatus `json:"status"`
	StatusLabel         string               `json:"status_label"`
	AdminNotes          string               `json:"admin_notes"`
	CompletedAt         *time.Time           `json:"completedAt"`
	CreatedAt           time.Time            `json:"createdAt"`
	FormattedCreatedAt  string               `json:"formatted_created_at"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

func (sr *ServiceRequest) ToView() ServiceRequestView {
	return ServiceRequestView{
		ID:                  sr.ID,
		UserID:              sr.UserID,
		ServiceName:         sr.ServiceName,
		Description:         sr.Description,
		SpecialRequirements: sr.SpecialRequirements,
		Status:              sr.Status,
		StatusLabel:         sr.StatusLabel(),
		AdminNotes:          sr.AdminNotes,
		CompletedAt:         sr.CompletedAt,
		CreatedAt:           sr.CreatedAt,
		FormattedCreatedAt:  sr.FormattedCreatedAt(),
		UpdatedAt:           sr.UpdatedAt,
	}
}
