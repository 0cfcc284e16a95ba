// Package ingestion reads field-technician inventory spreadsheets into
// normalized equipment records and runs batch evaluations over them.
package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rcastillo/pliego-compliance/internal/normalizer"
	"github.com/rcastillo/pliego-compliance/internal/types"
)

// headerAliases maps normalized column headers to canonical field names.
// Inventory spreadsheets arrive with Spanish or English headers depending
// on the site.
var headerAliases = map[string]string{
	"procesador":            "processor",
	"processor":             "processor",
	"cpu":                   "processor",
	"memoria":               "memory",
	"memoria ram":           "memory",
	"ram":                   "memory",
	"memory":                "memory",
	"almacenamiento":        "storage",
	"disco":                 "storage",
	"storage":               "storage",
	"sistema operativo":     "os",
	"so":                    "os",
	"os":                    "os",
	"operating system":      "os",
	"navegador":             "browser",
	"browser":               "browser",
	"diadema":               "headset",
	"audifonos":             "headset",
	"headset":               "headset",
	"tipo de conexion":      "connection_type",
	"conexion":              "connection_type",
	"connection type":       "connection_type",
	"descarga":              "download",
	"velocidad de descarga": "download",
	"download":              "download",
	"download mbps":         "download",
	"subida":                "upload",
	"carga":                 "upload",
	"upload":                "upload",
	"upload mbps":           "upload",
	"trabajo remoto":        "remote",
	"teletrabajo":           "remote",
	"remote":                "remote",
	"remote work":           "remote",
}

// remoteWorkValues are the cell values read as "this person works remotely".
var remoteWorkValues = map[string]bool{
	"si": true, "yes": true, "true": true, "1": true, "x": true, "remoto": true,
}

// ReadInventoryCSV parses an inventory spreadsheet export into equipment
// records. The first row is the header; columns are matched by alias, and
// unknown columns are ignored. Each record gets its normalized fields
// populated here, exactly once; validators never see the raw text.
func ReadInventoryCSV(r io.Reader) ([]types.EquipmentRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns := make(map[string]int)
	for i, cell := range header {
		if field, ok := headerAliases[normalizer.Normalize(cell)]; ok {
			if _, taken := columns[field]; !taken {
				columns[field] = i
			}
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no recognized columns in header: %v", header)
	}

	cell := func(row []string, field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []types.EquipmentRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+2, err)
		}

		rec := types.EquipmentRecord{
			ID:                uuid.New(),
			RawProcessor:      cell(row, "processor"),
			RawMemory:         cell(row, "memory"),
			RawStorage:        cell(row, "storage"),
			RawOS:             cell(row, "os"),
			RawBrowser:        cell(row, "browser"),
			RawHeadset:        cell(row, "headset"),
			RawConnectionType: cell(row, "connection_type"),
			RawDownloadMbps:   cell(row, "download"),
			RawUploadMbps:     cell(row, "upload"),
		}

		rec.Processor = normalizer.Normalize(rec.RawProcessor)
		rec.MemoryGb = normalizer.ParseRAMGb(rec.RawMemory)
		rec.StorageType, rec.StorageCapacityGb = splitStorage(rec.RawStorage)
		rec.OS = normalizer.Normalize(rec.RawOS)
		rec.Browser = normalizer.Normalize(rec.RawBrowser)
		rec.Headset = normalizer.Normalize(rec.RawHeadset)
		rec.ConnectionType = normalizer.Normalize(rec.RawConnectionType)
		rec.DownloadMbps = normalizer.ParseMbps(rec.RawDownloadMbps)
		rec.UploadMbps = normalizer.ParseMbps(rec.RawUploadMbps)
		rec.IsRemoteWork = remoteWorkValues[normalizer.Normalize(cell(row, "remote"))]

		records = append(records, rec)
	}

	return records, nil
}

// storageTypes are the storage technology tokens recognized in free text,
// most specific first.
var storageTypes = []string{"nvme", "ssd", "hdd", "emmc"}

// splitStorage derives the storage type and capacity from a raw cell like
// "SSD 512GB" or "1TB NVMe". The type defaults to the whole normalized
// string when no known token is present, so substring rule matching still
// has something to work with.
func splitStorage(raw string) (string, float64) {
	normalized := normalizer.Normalize(raw)
	capacity := normalizer.ParseCapacityGb(raw)
	for _, t := range storageTypes {
		if strings.Contains(normalized, t) {
			return t, capacity
		}
	}
	return normalized, capacity
}
