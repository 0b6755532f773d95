package reservation

import "fmt"

// Admission rejection codes surfaced to the request layer.
const (
	CodeMissingRequiredFields = "missingRequiredFields"
	CodeProviderUnavailable   = "providerUnavailable"
	CodeDuplicateSlot         = "duplicateSlot"
)

// AdmissionError is a business-rule rejection of a reservation request.
// No mutation has occurred when one is returned.
type AdmissionError struct {
	Code    string
	Message string
}

func (e *AdmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newMissingFieldsError() error {
	return &AdmissionError{
		Code:    CodeMissingRequiredFields,
		Message: "provider and timestamp are required",
	}
}

func newProviderUnavailableError() error {
	return &AdmissionError{
		Code:    CodeProviderUnavailable,
		Message: "the provider is not available at this time",
	}
}

func newDuplicateSlotError() error {
	return &AdmissionError{
		Code:    CodeDuplicateSlot,
		Message: "a reservation already exists at this time for the selected provider",
	}
}

// ValidationError signals malformed input that never reached admission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals that a referenced record is absent.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}
