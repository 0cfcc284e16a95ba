package types

import "github.com/google/uuid"

// EquipmentRecord is one inventory row for one machine/person. Raw fields
// hold the spreadsheet text as extracted; the normalized fields are produced
// by the normalizer during ingestion, before evaluation. The engine never
// mutates a record: validation attaches a new RecordVerdict instead.
type EquipmentRecord struct {
	ID uuid.UUID `json:"id"`

	// Raw spreadsheet fields, kept for operator display.
	RawProcessor      string `json:"raw_processor,omitempty"`
	RawMemory         string `json:"raw_memory,omitempty"`
	RawStorage        string `json:"raw_storage,omitempty"`
	RawOS             string `json:"raw_os,omitempty"`
	RawBrowser        string `json:"raw_browser,omitempty"`
	RawHeadset        string `json:"raw_headset,omitempty"`
	RawConnectionType string `json:"raw_connection_type,omitempty"`
	RawDownloadMbps   string `json:"raw_download_mbps,omitempty"`
	RawUploadMbps     string `json:"raw_upload_mbps,omitempty"`

	// Normalized fields. Validators rely on these exclusively and never
	// re-parse the raw text.
	Processor         string  `json:"processor"`
	MemoryGb          float64 `json:"memory_gb"`
	StorageType       string  `json:"storage_type"`
	StorageCapacityGb float64 `json:"storage_capacity_gb"`
	OS                string  `json:"os"`
	Browser           string  `json:"browser"`
	Headset           string  `json:"headset"`
	ConnectionType    string  `json:"connection_type"`
	DownloadMbps      float64 `json:"download_mbps"`
	UploadMbps        float64 `json:"upload_mbps"`

	// IsRemoteWork gates connectivity validation.
	IsRemoteWork bool `json:"is_remote_work"`
}
