package entities

// Quotation platform records read and written through the directory API.
//
// QuotationLine and FileEntity are owned by the platform. QuotationFile
// records for generated drawings are created by the callback ingestion step
// and deleted by reconciliation, so their lifetime is fully owned by this
// workflow.

// QuotationLine is a single line item on a quotation. ConfigurationID is
// empty for lines that do not reference a configuration (free-text items,
// surcharges).
type QuotationLine struct {
	ID              string `json:"id"`
	QuotationID     string `json:"quotationId"`
	ConfigurationID string `json:"configurationId,omitempty"`
}

// QuotationFile links a quotation to a stored file entity.
type QuotationFile struct {
	ID          string `json:"id"`
	QuotationID string `json:"quotationId"`
	FileID      string `json:"fileId"`
}

// FileEntity is the stored file record a QuotationFile points at.
type FileEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// QuotationPropertyValue is a generic property record on a quotation. The
// audit log lives in one such record; the store has no in-place update, so
// writers delete the current record and insert a replacement.
type QuotationPropertyValue struct {
	ID               string `json:"id"`
	EntityID         string `json:"entityId"`
	EntityPropertyID string `json:"entityPropertyId"`
	Value            string `json:"value"`
}
