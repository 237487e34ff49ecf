package handlers

import "github.com/chmouel/lazycode/internal/models"

// SelectFileRequest is the payload of the select_file action.
// Pointer fields tell a missing key apart from an empty value.
type SelectFileRequest struct {
	Path *string `mapstructure:"path"`
}

// Validate checks that a path was given.
func (r SelectFileRequest) Validate() error {
	if r.Path == nil || *r.Path == "" {
		return &RequestError{Msg: "No path in event data"}
	}
	return nil
}

// UpdateContentRequest is the payload of the update_file_content action.
type UpdateContentRequest struct {
	Path    *string `mapstructure:"path"`
	Content *string `mapstructure:"content"`
}

// Validate checks that both path and content were given. Empty content is
// a valid value.
func (r UpdateContentRequest) Validate() error {
	if r.Path == nil || *r.Path == "" || r.Content == nil {
		return &RequestError{Msg: "Missing path or content"}
	}
	return nil
}

// SelectFileResult reports the opened file.
type SelectFileResult struct {
	File string          `json:"file"`
	Type models.FileKind `json:"type"`
}

// UpdateContentResult reports a saved file.
type UpdateContentResult struct {
	Success bool   `json:"success"`
	File    string `json:"file"`
}

// ErrorResult is the result object of a failed action.
type ErrorResult struct {
	Error string    `json:"error"`
	Kind  ErrorKind `json:"kind"`
}

// StringPtr returns a pointer to s, for building requests in code.
func StringPtr(s string) *string {
	return &s
}
