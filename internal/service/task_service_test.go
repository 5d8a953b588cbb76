package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/config"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/mocks"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/logger"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/rediscache"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/service"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
)

// memoryTaskStore is a map-backed store.TaskStore that counts List calls.
type memoryTaskStore struct {
	mocks.MockTaskStore

	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Task
}

func newMemoryTaskStore() *memoryTaskStore {
	s := &memoryTaskStore{rows: make(map[int64]domain.Task)}
	s.CreateFn = func(ctx context.Context, title string, completed bool) (*domain.Task, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.nextID++
		task := domain.Task{ID: s.nextID, Title: title, Completed: completed}
		s.rows[task.ID] = task
		return &task, nil
	}
	s.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		task, ok := s.rows[id]
		if !ok {
			return nil, store.ErrTaskNotFound
		}
		return &task, nil
	}
	s.ListFn = func(ctx context.Context) ([]domain.Task, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		tasks := make([]domain.Task, 0, len(s.rows))
		for _, task := range s.rows {
			tasks = append(tasks, task)
		}
		sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
		return tasks, nil
	}
	s.UpdateFn = func(ctx context.Context, id int64, title string, completed bool) (*domain.Task, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.rows[id]; !ok {
			return nil, store.ErrTaskNotFound
		}
		task := domain.Task{ID: id, Title: title, Completed: completed}
		s.rows[id] = task
		return &task, nil
	}
	s.DeleteFn = func(ctx context.Context, id int64) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.rows[id]; !ok {
			return store.ErrTaskNotFound
		}
		delete(s.rows, id)
		return nil
	}
	return s
}

func newService(t *testing.T, taskStore store.TaskStore, cache store.KeyValueCache) service.TaskService {
	t.Helper()
	l, _ := logger.NewTestLogger()
	svc, err := service.NewTaskService(taskStore, service.NewListCache(cache, 0, l), l)
	require.NoError(t, err)
	return svc
}

func TestNewTaskService(t *testing.T) {
	_, err := service.NewTaskService(nil, nil, nil)
	var svcErr *service.TaskServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "create_service", svcErr.Operation)

	svc, err := service.NewTaskService(&mocks.MockTaskStore{}, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestTaskService_RoundTrip(t *testing.T) {
	svc := newService(t, newMemoryTaskStore(), &mocks.MockCache{})
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "Buy milk", false)
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.UpdateTask(ctx, created.ID, "Buy oat milk", true)
	require.NoError(t, err)
	assert.Equal(t, &domain.Task{ID: created.ID, Title: "Buy oat milk", Completed: true}, updated)

	require.NoError(t, svc.DeleteTask(ctx, created.ID))
	_, err = svc.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskService_ListCacheHitSkipsStore(t *testing.T) {
	taskStore := newMemoryTaskStore()
	svc := newService(t, taskStore, &mocks.MockCache{})
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "Buy milk", false)
	require.NoError(t, err)

	first, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	second, err := svc.ListTasks(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second, "hit and miss return identical values")
	assert.Equal(t, 1, taskStore.Calls("List"), "second list must be served from the cache")
}

func TestTaskService_MutationsInvalidateList(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, svc service.TaskService, existing *domain.Task)
		want   []domain.Task
	}{
		{
			name: "create",
			mutate: func(t *testing.T, svc service.TaskService, existing *domain.Task) {
				_, err := svc.CreateTask(context.Background(), "Walk dog", true)
				require.NoError(t, err)
			},
			want: []domain.Task{{ID: 1, Title: "Buy milk"}, {ID: 2, Title: "Walk dog", Completed: true}},
		},
		{
			name: "update",
			mutate: func(t *testing.T, svc service.TaskService, existing *domain.Task) {
				_, err := svc.UpdateTask(context.Background(), existing.ID, "Buy bread", true)
				require.NoError(t, err)
			},
			want: []domain.Task{{ID: 1, Title: "Buy bread", Completed: true}},
		},
		{
			name: "delete",
			mutate: func(t *testing.T, svc service.TaskService, existing *domain.Task) {
				require.NoError(t, svc.DeleteTask(context.Background(), existing.ID))
			},
			want: []domain.Task{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			taskStore := newMemoryTaskStore()
			cache := &mocks.MockCache{}
			svc := newService(t, taskStore, cache)
			ctx := context.Background()

			existing, err := svc.CreateTask(ctx, "Buy milk", false)
			require.NoError(t, err)
			_, err = svc.ListTasks(ctx)
			require.NoError(t, err)
			require.True(t, cache.Has(service.TasksCacheKey))

			tc.mutate(t, svc, existing)
			assert.False(t, cache.Has(service.TasksCacheKey), "mutation must drop the cached list")

			got, err := svc.ListTasks(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, 2, taskStore.Calls("List"))
		})
	}
}

func TestTaskService_FailedMutationKeepsCache(t *testing.T) {
	cache := &mocks.MockCache{}
	svc := newService(t, newMemoryTaskStore(), cache)
	ctx := context.Background()

	_, err := svc.ListTasks(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateTask(ctx, 9999, "x", false)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	err = svc.DeleteTask(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.True(t, cache.Has(service.TasksCacheKey))
	assert.Equal(t, 0, cache.Calls("Delete"))
}

func TestTaskService_NotFound(t *testing.T) {
	svc := newService(t, newMemoryTaskStore(), &mocks.MockCache{})
	ctx := context.Background()

	_, err := svc.GetTask(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.ErrorIs(t, err, service.ErrTaskNotFound)

	_, err = svc.UpdateTask(ctx, 9999, "anything", true)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = svc.DeleteTask(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskService_ValidationBeforeStore(t *testing.T) {
	tests := []struct {
		name string
		call func(svc service.TaskService) error
	}{
		{"create blank title", func(svc service.TaskService) error {
			_, err := svc.CreateTask(context.Background(), "   ", false)
			return err
		}},
		{"update blank title", func(svc service.TaskService) error {
			_, err := svc.UpdateTask(context.Background(), 1, "", true)
			return err
		}},
		{"update blank title with non-positive id", func(svc service.TaskService) error {
			_, err := svc.UpdateTask(context.Background(), 0, " ", false)
			return err
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			taskStore := &mocks.MockTaskStore{}
			cache := &mocks.MockCache{}
			svc := newService(t, taskStore, cache)

			err := tc.call(svc)

			assert.ErrorIs(t, err, domain.ErrValidation)
			for _, method := range []string{"Create", "GetByID", "Update", "Delete", "List"} {
				assert.Zero(t, taskStore.Calls(method), method)
			}
			for _, method := range []string{"Get", "Set", "Delete"} {
				assert.Zero(t, cache.Calls(method), method)
			}
		})
	}
}

func TestTaskService_NonPositiveIDIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		call func(svc service.TaskService) error
	}{
		{"get zero", func(svc service.TaskService) error {
			_, err := svc.GetTask(context.Background(), 0)
			return err
		}},
		{"update negative", func(svc service.TaskService) error {
			_, err := svc.UpdateTask(context.Background(), -1, "Buy milk", true)
			return err
		}},
		{"delete negative", func(svc service.TaskService) error {
			return svc.DeleteTask(context.Background(), -4)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			taskStore := &mocks.MockTaskStore{}
			cache := &mocks.MockCache{}
			svc := newService(t, taskStore, cache)

			err := tc.call(svc)

			assert.ErrorIs(t, err, service.ErrTaskNotFound)
			assert.NotErrorIs(t, err, domain.ErrValidation)
			for _, method := range []string{"GetByID", "Update", "Delete"} {
				assert.Zero(t, taskStore.Calls(method), method)
			}
			assert.Zero(t, cache.Calls("Delete"), "nothing changed, nothing to invalidate")
		})
	}
}

func TestTaskService_StoreFailure(t *testing.T) {
	dbErr := store.NewStoreError("task", "list", "query failed", errors.New("connection refused"))
	taskStore := &mocks.MockTaskStore{DefaultError: dbErr}
	cache := &mocks.MockCache{}
	svc := newService(t, taskStore, cache)
	ctx := context.Background()

	_, err := svc.ListTasks(ctx)
	var svcErr *service.TaskServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "list_tasks", svcErr.Operation)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, cache.Has(service.TasksCacheKey), "failures are not cached")

	_, err = svc.CreateTask(ctx, "Buy milk", false)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 0, cache.Calls("Delete"), "failed create does not invalidate")
}

func TestTaskService_ListNilFromStoreIsEmpty(t *testing.T) {
	svc := newService(t, &mocks.MockTaskStore{}, nil)

	tasks, err := svc.ListTasks(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskService_CacheUnavailable(t *testing.T) {
	taskStore := newMemoryTaskStore()
	failing := &mocks.MockCache{
		GetFn: func(ctx context.Context, key string) ([]byte, error) {
			return nil, store.ErrCacheUnavailable
		},
		SetFn: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			return store.ErrCacheUnavailable
		},
		DeleteFn: func(ctx context.Context, key string) error {
			return store.ErrCacheUnavailable
		},
	}
	svc := newService(t, taskStore, failing)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "Buy milk", false)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		tasks, err := svc.ListTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Task{*created}, tasks)
	}
	assert.Equal(t, 3, taskStore.Calls("List"), "every list falls through to the store")

	_, err = svc.UpdateTask(ctx, created.ID, "Buy bread", true)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTask(ctx, created.ID))
}

func TestTaskService_RedisTTLExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := rediscache.NewClient(config.CacheConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	taskStore := newMemoryTaskStore()
	svc := newService(t, taskStore, rediscache.New(client))
	ctx := context.Background()

	_, err = svc.CreateTask(ctx, "Buy milk", false)
	require.NoError(t, err)

	_, err = svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, mr.TTL(service.TasksCacheKey))

	// A write that bypasses the service is invisible until the entry expires.
	_, err = taskStore.CreateFn(ctx, "Walk dog", true)
	require.NoError(t, err)

	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1, "served from cache inside the TTL window")
	assert.Equal(t, 1, taskStore.Calls("List"))

	mr.FastForward(61 * time.Second)

	tasks, err = svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2, "expired entry forces a store read")
	assert.Equal(t, 2, taskStore.Calls("List"))
}
