// Package api handles incoming HTTP requests for the task API: request
// decoding and validation, mapping service errors to status codes, and JSON
// response formatting. Handlers delegate every operation to service.TaskService.
package api
