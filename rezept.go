// Package rezept provides a CLI-based recipe extraction pipeline for
// German-language recipe PDFs. It reads positioned text from a PDF,
// falls back to OCR for scanned documents, classifies the text into
// title, ingredients and instructions using a cascade of layout-aware
// strategies, and stores the result for later retrieval.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, pdf/, gosseract/).
package rezept
