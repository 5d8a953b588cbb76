package api

// TaskRequest is the body of POST /tasks/ and PUT /tasks/{id}.
// A missing completed field decodes as false.
type TaskRequest struct {
	Title     string `json:"title"     validate:"required"`
	Completed bool   `json:"completed"`
}

// MessageResponse is a body carrying a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}
