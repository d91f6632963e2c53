package interfaces

import (
	"context"
	"errors"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
)

// ErrNotFound is returned by IQuotationDirectory implementations when the
// platform answers 404 for an entity lookup. Use cases rely on errors.Is to
// tell "absent" apart from transport failures.
var ErrNotFound = errors.New("entity not found")

// IQuotationDirectory abstracts the quotation platform's data API
// (configurations, quotation lines, files, property values).
//
// List methods must return the full result set, following the server's
// pagination cursor transparently. All reads and writes are remote; there is
// no local persistence behind this interface.
//
//go:generate mockgen -source=quotation_directory_interface.go -destination=mocks/quotation_directory_interface_mock.go -package=mocks

type IQuotationDirectory interface {
	// OpenConfiguration returns the full configurator document, including
	// the raw payload the render service expects verbatim.
	OpenConfiguration(ctx context.Context, configurationID string) (entities.Configuration, error)

	// GetConfiguration returns the plain configuration record (id, model id,
	// code) without the configurator payload.
	GetConfiguration(ctx context.Context, configurationID string) (entities.Configuration, error)

	ListQuotationLines(ctx context.Context, quotationID string) ([]entities.QuotationLine, error)
	ListQuotationFiles(ctx context.Context, quotationID string) ([]entities.QuotationFile, error)

	GetFileEntity(ctx context.Context, fileID string) (entities.FileEntity, error)
	DeleteFileEntity(ctx context.Context, fileID string) error

	// UploadQuotationFile attaches content to the quotation under fileName.
	UploadQuotationFile(ctx context.Context, quotationID, fileName string, content []byte) error

	ListQuotationPropertyValues(ctx context.Context, quotationID, propertyID string) ([]entities.QuotationPropertyValue, error)
	DeleteQuotationPropertyValue(ctx context.Context, id string) error
	CreateQuotationPropertyValue(ctx context.Context, value entities.QuotationPropertyValue) error
}
