package models

import (
	"time"

	"gorm.io/datatypes"
)

// Estados de un intento de importación DTE.
const (
	ImportacionProcesada = "PROCESADO"
	ImportacionError     = "ERROR"
)

// LogImportacion is the audit row written for every DTE ingestion attempt,
// successful or not. Resumen keeps a small JSON snapshot (folio, RUT
// emisor, total) so the import history is readable without reparsing the
// stored XML.
type LogImportacion struct {
	ID            uint           `gorm:"column:id_log;primaryKey" json:"id_log"`
	CorrelacionID string         `gorm:"column:correlacion_id;type:uuid;index" json:"correlacion_id"`
	NombreArchivo string         `gorm:"column:nombre_archivo;size:255" json:"nombre_archivo"`
	Estado        string         `gorm:"column:estado;size:20;index" json:"estado"`
	Mensaje       string         `gorm:"column:mensaje;type:text" json:"mensaje"`
	Resumen       datatypes.JSON `gorm:"column:resumen;type:jsonb" json:"resumen"`
	DocumentoID   *uint          `gorm:"column:id_documento;index" json:"id_documento"`
	CreatedAt     time.Time      `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// TableName specifies the table name
func (LogImportacion) TableName() string {
	return "log_importaciones"
}
