package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SheetStatus constants for the requirement sheet lifecycle
const (
	SheetStatusDraft    = "draft"
	SheetStatusActive   = "active"
	SheetStatusExpired  = "expired"
	SheetStatusArchived = "archived"
)

// RequirementSheet represents one versioned "pliego" document: the minimum
// acceptable hardware/software/connectivity configuration for an audit period.
// Sheets are immutable once referenced by a closed audit period; changes
// always create a new version.
type RequirementSheet struct {
	ID         uuid.UUID       `json:"id"`
	TenantID   uuid.UUID       `json:"tenant_id"`
	Code       string          `json:"code" validate:"required"`
	Version    int             `json:"version" validate:"required,min=1"`
	Status     string          `json:"status" validate:"required,oneof=draft active expired archived"`
	IsCurrent  bool            `json:"is_current"`
	ValidFrom  time.Time       `json:"valid_from"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"` // nil = open-ended
	Document   *PliegoDocument `json:"document" validate:"required"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PliegoDocument is the persisted payload of a requirement sheet, organized
// into the sections the web application edits. Every section is optional;
// an absent section means "do not validate this dimension".
type PliegoDocument struct {
	Hardware     *HardwareSection     `json:"hardware,omitempty"`
	Software     *SoftwareSection     `json:"software,omitempty"`
	Peripherals  *PeripheralsSection  `json:"peripherals,omitempty"`
	Connectivity *ConnectivitySection `json:"connectivity,omitempty"`
}

// HardwareSection holds the compute requirements of a pliego.
type HardwareSection struct {
	AcceptedProcessors []ProcessorRule `json:"accepted_processors,omitempty"`
	MinimumMemoryGb    float64         `json:"minimum_memory_gb,omitempty"`
	AcceptedStorage    []StorageRule   `json:"accepted_storage,omitempty"`
}

// SoftwareSection holds the OS and browser requirements of a pliego.
type SoftwareSection struct {
	OperatingSystem  *OSRule       `json:"operating_system,omitempty"`
	AcceptedBrowsers []BrowserRule `json:"accepted_browsers,omitempty"`
}

// PeripheralsSection holds the headset homologation list of a pliego.
type PeripheralsSection struct {
	HeadsetHomologation *HeadsetHomologation `json:"headset_homologation,omitempty"`
}

// ConnectivitySection holds the connectivity minimums of a pliego. Either
// per-technology entries, flat minimums, or both may be configured.
type ConnectivitySection struct {
	Technologies    []TechnologyMinimum `json:"technologies,omitempty"`
	MinDownloadMbps float64             `json:"min_download_mbps,omitempty"`
	MinUploadMbps   float64             `json:"min_upload_mbps,omitempty"`
}

// ProcessorRule is one entry of the accepted-processor list. Entries are
// ordered; the first entry whose brand matches a record is authoritative.
type ProcessorRule struct {
	Brand          string `json:"brand" validate:"required"`
	MinFamily      string `json:"min_family" validate:"required"` // e.g. "i5", "Ryzen 5"
	AcceptSuperior bool   `json:"accept_superior"`
}

// StorageRule is one entry of the accepted-storage list.
type StorageRule struct {
	Type          string  `json:"type" validate:"required"` // e.g. "ssd", "nvme"
	MinCapacityGb float64 `json:"min_capacity_gb" validate:"required,gt=0"`
}

// OSRule is the operating system requirement. MinVersion "" or "0" accepts
// any version of the named OS.
type OSRule struct {
	Name       string `json:"name" validate:"required"`
	MinVersion string `json:"min_version,omitempty"`
}

// BrowserRule is one entry of the accepted-browser list. Only the major
// version is compared.
type BrowserRule struct {
	Name       string `json:"name" validate:"required"`
	MinVersion int    `json:"min_version,omitempty"`
}

// HeadsetHomologation is the closed approval list of headset models. A
// record passes only if it matches brand AND model of the same entry.
type HeadsetHomologation struct {
	Enabled bool                 `json:"enabled"`
	Models  []HomologatedHeadset `json:"models,omitempty"`
}

// HomologatedHeadset is one approved brand/model pair.
type HomologatedHeadset struct {
	Brand string `json:"brand" validate:"required"`
	Model string `json:"model" validate:"required"`
}

// TechnologyMinimum is a per-technology connectivity threshold (e.g. fiber
// vs. 4G). Matched by substring against the record's connection type.
type TechnologyMinimum struct {
	Type            string  `json:"type" validate:"required"`
	MinDownloadMbps float64 `json:"min_download_mbps,omitempty"`
	MinUploadMbps   float64 `json:"min_upload_mbps,omitempty"`
}

// Validate validates the RequirementSheet using the validator.
func (s *RequirementSheet) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
