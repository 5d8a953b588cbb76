// Package domain contains the core business entities of the task tracker and
// the validation rules that apply to them, independent of storage, caching or
// HTTP delivery.
package domain
