package dto

// HTTPError is the error body for every non-2xx response.
// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message"`
}
