package types

// Toast variants understood by the client
const (
	ToastDefault     = "default"
	ToastDestructive = "destructive"
)

// Toast is a user-visible notification
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Toast Toast  `json:"toast"`
}

// NewErrorResponse builds the destructive toast envelope for a failed request
func NewErrorResponse(err, title, description string) ErrorResponse {
	return ErrorResponse{
		Error: err,
		Toast: Toast{
			Title:       title,
			Description: description,
			Variant:     ToastDestructive,
		},
	}
}
