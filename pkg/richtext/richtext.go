// Package richtext declares the boundary to the rich-text document
// renderer used for product descriptions. The renderer itself is an
// external collaborator: given a structured document tree it produces an
// HTML string or a plain text string, and unknown node types degrade to
// extracting the text of their children. The variant engine only consumes
// this contract, never the document model.
package richtext

import "encoding/json"

// Renderer converts a structured document tree into presentation strings.
type Renderer interface {
	// HTML renders the document tree as an HTML fragment.
	HTML(doc json.RawMessage) (string, error)

	// PlainText extracts the document's text content, used for previews
	// and search snippets.
	PlainText(doc json.RawMessage) (string, error)
}
