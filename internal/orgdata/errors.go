package orgdata

import "errors"

// Sentinel errors for document loading.
//
// Callers are expected to substitute Empty() for the document after logging,
// keeping the fail-soft policy visible at the call site:
//
//	doc, err := loader.Load(orgdata.DocPrimary)
//	if err != nil {
//		log.Error("document unavailable, using empty defaults", zap.Error(err))
//		doc = orgdata.Empty()
//	}
var (
	// ErrNotFound indicates the document file does not exist at the base path.
	ErrNotFound = errors.New("document not found")

	// ErrMalformed indicates the document exists but is not a JSON object.
	ErrMalformed = errors.New("malformed document")
)
