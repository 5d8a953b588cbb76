// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with one function field per interface method. Unset
// fields fall back to a default return value, so tests only wire what they
// exercise. Mocks also count calls, which is how cache tests prove a hit did
// not reach the store.
//
// Usage:
//
//	import "github.com/Abdulrahman-PROG/Containerized-Web-App/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    taskStore := &mocks.MockTaskStore{
//	        ListFn: func(ctx context.Context) ([]domain.Task, error) {
//	            return []domain.Task{{ID: 1, Title: "Buy milk"}}, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	    assert.Equal(t, 1, taskStore.Calls("List"))
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
