package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInventoryCSV_SpanishHeaders(t *testing.T) {
	input := `Procesador,Memoria RAM,Almacenamiento,Sistema Operativo,Navegador,Diadema,Tipo de Conexión,Descarga,Subida,Trabajo Remoto
Intel Core i7-1165G7,16 GB,SSD 512GB,Windows 11 Pro,Google Chrome Version 141.0.7339.127,Jabra Biz 2300 Duo,Fibra Óptica,100 Mbps,20 Mbps,Sí
AMD Ryzen 5 5600X,8GB,1TB HDD,Windows 10,Firefox 115.2.1,Plantronics Blackwire,ADSL,10,2,No
`

	records, err := ReadInventoryCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "intel core i7-1165g7", first.Processor)
	assert.InDelta(t, 16, first.MemoryGb, 0.001)
	assert.Equal(t, "ssd", first.StorageType)
	assert.InDelta(t, 512, first.StorageCapacityGb, 0.001)
	assert.Equal(t, "windows 11 pro", first.OS)
	assert.Equal(t, "jabra biz 2300 duo", first.Headset)
	assert.Equal(t, "fibra optica", first.ConnectionType)
	assert.InDelta(t, 100, first.DownloadMbps, 0.001)
	assert.True(t, first.IsRemoteWork)
	assert.NotEqual(t, first.ID, records[1].ID)

	second := records[1]
	assert.Equal(t, "hdd", second.StorageType)
	assert.InDelta(t, 1024, second.StorageCapacityGb, 0.001)
	assert.False(t, second.IsRemoteWork)
}

func TestReadInventoryCSV_EnglishHeaders(t *testing.T) {
	input := `Processor,RAM,Storage,OS,Browser,Headset,Connection Type,Download,Upload,Remote
i5-10400,8 GB,256GB SSD,Windows 10,Chrome Version 130.0.0.1,Jabra Biz 2300,Fiber,50,10,yes
`

	records, err := ReadInventoryCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "i5-10400", records[0].Processor)
	assert.True(t, records[0].IsRemoteWork)
}

func TestReadInventoryCSV_RawFieldsPreserved(t *testing.T) {
	input := `Procesador,Memoria
Intel Core i7-1165G7,16 GB
`
	records, err := ReadInventoryCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Intel Core i7-1165G7", records[0].RawProcessor)
	assert.Equal(t, "16 GB", records[0].RawMemory)
}

func TestReadInventoryCSV_UnrecognizedHeader(t *testing.T) {
	input := `Columna A,Columna B
1,2
`
	_, err := ReadInventoryCSV(strings.NewReader(input))
	assert.Error(t, err)
}

func TestReadInventoryCSV_ShortRows(t *testing.T) {
	// Rows with fewer cells than the header must not panic; missing fields
	// stay empty and fail their dimensions downstream.
	input := `Procesador,Memoria,Almacenamiento
Intel i5-10400
`
	records, err := ReadInventoryCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Zero(t, records[0].MemoryGb)
}

func TestSplitStorage(t *testing.T) {
	typ, capacity := splitStorage("1TB NVMe")
	assert.Equal(t, "nvme", typ)
	assert.InDelta(t, 1024, capacity, 0.001)

	typ, capacity = splitStorage("disco duro 500 GB")
	assert.Equal(t, "disco duro 500 gb", typ)
	assert.InDelta(t, 500, capacity, 0.001)
}
