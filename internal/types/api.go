package types

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EvaluateBatchRequest is the request body for a batch evaluation run. The
// records are expected to arrive already normalized (the ingestion layer or
// an upstream collaborator produced them).
type EvaluateBatchRequest struct {
	TenantID uuid.UUID         `json:"tenant_id" validate:"required"`
	Records  []EquipmentRecord `json:"records" validate:"required,min=1"`
	Workers  int               `json:"workers,omitempty" validate:"min=0"`
}

// CreateSheetRequest is the request body for storing a new pliego version.
// The document is kept raw so it can be schema-validated before decoding.
type CreateSheetRequest struct {
	TenantID   uuid.UUID       `json:"tenant_id" validate:"required"`
	Code       string          `json:"code" validate:"required"`
	ValidFrom  time.Time       `json:"valid_from"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"`
	Document   json.RawMessage `json:"document" validate:"required"`
}

// Validate validates the EvaluateBatchRequest using the validator.
func (r *EvaluateBatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateSheetRequest using the validator.
func (r *CreateSheetRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
