package domain

// ExampleType distinguishes request samples from response samples.
type ExampleType string

const (
	// ExampleRequest is a request sample.
	ExampleRequest ExampleType = "request"

	// ExampleResponse is a response sample.
	ExampleResponse ExampleType = "response"
)

// Example is a request/response sample derived from an XML document whose
// filename contains "request" or "response".
type Example struct {
	// Name is the title of the originating document.
	Name string `json:"name"`

	// Type is request or response.
	Type ExampleType `json:"type"`

	// Content is the full extracted text of the document.
	Content string `json:"content"`

	// Operation is the DDS operation inferred from the filename
	// (EchoService, SubmitDDS, RetrieveDDS, AmendDDS, RetractDDS,
	// GetStatement, or Unknown).
	Operation string `json:"operation"`

	// Source is the filename of the originating document.
	Source string `json:"source"`
}
