package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceRequest_Defaults(t *testing.T) {
	userID := uuid.New()

	req := NewServiceRequest(userID, "  Tắm cho mèo  ", " Mèo sợ nước ", "")

	assert.Equal(t, userID, req.UserID)
	assert.Equal(t, "Tắm cho mèo", req.ServiceName)
	assert.Equal(t, "Mèo sợ nước", req.Description)
	assert.Equal(t, DefaultSpecialRequirements, req.SpecialRequirements)
	assert.Equal(t, StatusPending, req.Status)
}

func TestNewServiceRequest_KeepsProvidedSpecialRequirements(t *testing.T) {
	req := NewServiceRequest(uuid.New(), "Grooming", "Cắt tỉa lông", "  Dùng kéo, không dùng tông đơ  ")

	assert.Equal(t, "Dùng kéo, không dùng tông đơ", req.SpecialRequirements)
}

func TestServiceRequest_Validate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		request   *ServiceRequest
		wantField string
	}{
		{
			name:      "missing user",
			request:   NewServiceRequest(uuid.Nil, "Grooming", "Cắt tỉa lông", ""),
			wantField: "user",
		},
		{
			name:      "empty service name",
			request:   NewServiceRequest(userID, "   ", "Cắt tỉa lông", ""),
			wantField: "service_name",
		},
		{
			name:      "service name too long",
			request:   NewServiceRequest(userID, strings.Repeat("a", 101), "Cắt tỉa lông", ""),
			wantField: "service_name",
		},
		{
			name:      "empty description",
			request:   NewServiceRequest(userID, "Grooming", "", ""),
			wantField: "description",
		},
		{
			name: "bogus status",
			request: func() *ServiceRequest {
				req := NewServiceRequest(userID, "Grooming", "Cắt tỉa lông", "")
				req.Status = "bogus"
				return req
			}(),
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.NotEmpty(t, validationErr.Message)
		})
	}
}

func TestServiceRequest_ValidateAcceptsBoundaryName(t *testing.T) {
	req := NewServiceRequest(uuid.New(), strings.Repeat("ký", 50), "Mô tả", "")

	assert.NoError(t, req.Validate())
}

func TestServiceRequestStatus_IsValid(t *testing.T) {
	for _, status := range []ServiceRequestStatus{
		StatusPending, StatusInProgress, StatusCompleted, StatusRejected, StatusCancelled,
	} {
		assert.True(t, status.IsValid(), string(status))
	}

	assert.False(t, ServiceRequestStatus("bogus").IsValid())
	assert.False(t, ServiceRequestStatus("").IsValid())
}

func TestServiceRequestStatus_Label(t *testing.T) {
	tests := []struct {
		status ServiceRequestStatus
		label  string
	}{
		{StatusPending, "Chờ xử lý"},
		{StatusInProgress, "Đang xử lý"},
		{StatusCompleted, "Đã hoàn thành"},
		{StatusRejected, "Từ chối"},
		{StatusCancelled, "Đã hủy"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, tt.status.Label())
	}
}

func TestServiceRequestStatus_LabelPassthroughForUnknown(t *testing.T) {
	assert.Equal(t, "bogus", ServiceRequestStatus("bogus").Label())
}

func TestServiceRequestStatusOptions(t *testing.T) {
	options := ServiceRequestStatusOptions()

	require.Len(t, options, 5)

	expected := []StatusOption{
		{Value: StatusPending, Label: "Chờ xử lý"},
		{Value: StatusInProgress, Label: "Đang xử lý"},
		{Value: StatusCompleted, Label: "Đã hoàn thành"},
		{Value: StatusRejected, Label: "Từ chối"},
		{Value: StatusCancelled, Label: "Đã hủy"},
	}
	assert.Equal(t, expected, options)
}

func TestServiceRequest_FormattedCreatedAt(t *testing.T) {
	req := ServiceRequest{
		CreatedAt: time.Date(2024, time.March, 7, 15, 30, 0, 0, time.UTC),
	}

	assert.Equal(t, "07/03/2024", req.FormattedCreatedAt())
}

func TestServiceRequest_ToView(t *testing.T) {
	completed := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	req := ServiceRequest{
		ID:                  uuid.New(),
		UserID:              uuid.New(),
		ServiceName:         "Huấn luyện chó",
		Description:         "Huấn luyện cơ bản",
		SpecialRequirements: DefaultSpecialRequirements,
		Status:              StatusCompleted,
		AdminNotes:          "Đã xong",
		CompletedAt:         &completed,
		CreatedAt:           time.Date(2024, time.March, 7, 15, 30, 0, 0, time.UTC),
	}

	view := req.ToView()

	assert.Equal(t, req.ID, view.ID)
	assert.Equal(t, "Đã hoàn thành", view.StatusLabel)
	assert.Equal(t, "07/03/2024", view.FormattedCreatedAt)
	assert.Equal(t, &completed, view.CompletedAt)
}
