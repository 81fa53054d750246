package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/lyfjs/gomis-go-api/internal/dto"
	"github.com/lyfjs/gomis-go-api/internal/models"
	"github.com/lyfjs/gomis-go-api/internal/repository"
)

func newStudentService(t *testing.T, cache *redis.Client) (StudentService, repository.StudentRepository) {
	t.Helper()
	db := setupServiceDB(t)
	repo := repository.NewStudentRepository(db)
	svc := NewStudentService(repo, validator.New(validator.WithRequiredStructEnabled()), cache, time.Minute, testLogger())
	return svc, repo
}

func TestStudentServiceCreateAppliesDefaults(t *testing.T) {
	svc, _ := newStudentService(t, nil)

	student, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		LRN:       "123456789012",
		FirstName: "Alice",
		LastName:  "Johnson",
	})
	require.NoError(t, err)
	require.NotZero(t, student.ID)
	require.Equal(t, "ACTIVE", student.Status)
}

func TestStudentServiceCreateValidatesLRN(t *testing.T) {
	svc, _ := newStudentService(t, nil)

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		LRN:       "12345",
		FirstName: "Alice",
		LastName:  "Johnson",
	})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), dto.StudentCreateRequest{
		LRN:       "12345678901a",
		FirstName: "Alice",
		LastName:  "Johnson",
	})
	require.Error(t, err)
}

func TestStudentServiceCreateRejectsDuplicateLRN(t *testing.T) {
	svc, _ := newStudentService(t, nil)

	payload := dto.StudentCreateRequest{LRN: "123456789012", FirstName: "Alice", LastName: "Johnson"}
	_, err := svc.Create(context.Background(), payload)
	require.NoError(t, err)

	payload.FirstName = "Someone"
	_, err = svc.Create(context.Background(), payload)
	require.ErrorIs(t, err, ErrDuplicateLRN)
}

func TestStudentServiceUpdatePartial(t *testing.T) {
	svc, _ := newStudentService(t, nil)

	created, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		LRN:        "123456789012",
		FirstName:  "Alice",
		LastName:   "Johnson",
		GradeLevel: "11",
	})
	require.NoError(t, err)

	section := "Rizal"
	updated, err := svc.Update(context.Background(), created.ID, dto.StudentUpdateRequest{Section: &section})
	require.NoError(t, err)
	require.Equal(t, "Rizal", updated.Section)
	require.Equal(t, "Alice", updated.FirstName, "omitted fields must not change")
	require.Equal(t, "11", updated.GradeLevel)

	// An empty payload is a no-op update, not an error.
	unchanged, err := svc.Update(context.Background(), created.ID, dto.StudentUpdateRequest{})
	require.NoError(t, err)
	require.Equal(t, updated.Section, unchanged.Section)
}

func TestStudentServiceUpdateRejectsTakenLRN(t *testing.T) {
	svc, _ := newStudentService(t, nil)

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{LRN: "111111111111", FirstName: "Alice", LastName: "Johnson"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), dto.StudentCreateRequest{LRN: "222222222222", FirstName: "Bob", LastName: "Stone"})
	require.NoError(t, err)

	taken := "111111111111"
	_, err = svc.Update(context.Background(), second.ID, dto.StudentUpdateRequest{LRN: &taken})
	require.ErrorIs(t, err, ErrDuplicateLRN)

	// Re-submitting the student's own LRN is not a conflict.
	own := "222222222222"
	_, err = svc.Update(context.Background(), second.ID, dto.StudentUpdateRequest{LRN: &own})
	require.NoError(t, err)
}

func TestStudentServiceNotFound(t *testing.T) {
	svc, _ := newStudentService(t, nil)

	_, err := svc.Get(context.Background(), 99)
	require.ErrorIs(t, err, ErrStudentNotFound)

	_, err = svc.Update(context.Background(), 99, dto.StudentUpdateRequest{})
	require.ErrorIs(t, err, ErrStudentNotFound)

	err = svc.Delete(context.Background(), 99)
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentServiceMetaCaching(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	cache := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer cache.Close()

	svc, repo := newStudentService(t, cache)

	_, err = svc.Create(context.Background(), dto.StudentCreateRequest{
		LRN:        "111111111111",
		FirstName:  "Alice",
		LastName:   "Johnson",
		GradeLevel: "11",
	})
	require.NoError(t, err)

	meta, err := svc.Meta(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"11"}, meta.GradeLevels)
	require.True(t, server.Exists("students:meta"))

	// A write that bypasses the service does not reach the cached copy.
	require.NoError(t, repo.Create(context.Background(), &models.Student{
		LRN: "222222222222", FirstName: "Bob", LastName: "Stone", GradeLevel: "12",
	}))

	meta, err = svc.Meta(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"11"}, meta.GradeLevels, "expected the cached value")

	// A service write invalidates the cache and the next read is fresh.
	_, err = svc.Create(context.Background(), dto.StudentCreateRequest{
		LRN: "333333333333", FirstName: "Carol", LastName: "Reyes", GradeLevel: "10",
	})
	require.NoError(t, err)
	require.False(t, server.Exists("students:meta"))

	meta, err = svc.Meta(context.Background())
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"10", "11", "12"}, meta.GradeLevels)
}
