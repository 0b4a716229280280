//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/userhub/user-service/internal/criteria"
	"github.com/userhub/user-service/internal/model"
	repo "github.com/userhub/user-service/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "users_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/users_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	joe := model.User{
		FirstName: "Joe",
		LastName:  "Bloggs",
		Nickname:  "joe99",
		Password:  "secret",
		Email:     "joe@example.com",
		Country:   "England",
	}

	t.Run("save_assigns_id_and_round_trips", func(t *testing.T) {
		saved, err := ur.Save(ctx, joe)
		require.NoError(t, err)
		require.NotZero(t, saved.ID)
		joe = saved

		fetched, err := ur.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved, fetched)
	})

	t.Run("find_by_id_absent", func(t *testing.T) {
		_, err := ur.FindByID(ctx, 999999)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("exists_by_id", func(t *testing.T) {
		exists, err := ur.ExistsByID(ctx, joe.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = ur.ExistsByID(ctx, 999999)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("save_with_id_updates", func(t *testing.T) {
		joe.Country = "Wales"
		saved, err := ur.Save(ctx, joe)
		require.NoError(t, err)
		assert.Equal(t, joe.ID, saved.ID)
		assert.Equal(t, "Wales", saved.Country)

		joe.Country = "England"
		_, err = ur.Save(ctx, joe)
		require.NoError(t, err)
	})

	t.Run("duplicate_email_is_rejected", func(t *testing.T) {
		dup := model.User{Nickname: "other", Email: "joe@example.com"}
		_, err := ur.Save(ctx, dup)
		require.ErrorIs(t, err, model.ErrRejected)
	})

	t.Run("filtered_search", func(t *testing.T) {
		others := []model.User{
			{FirstName: "Dave", Nickname: "dave1", Email: "dave@example.com", Country: "England"},
			{FirstName: "Joe", Nickname: "joe2", Email: "joe.es@example.com", Country: "Spain"},
		}
		for _, u := range others {
			_, err := ur.Save(ctx, u)
			require.NoError(t, err)
		}

		filter := criteria.Build(criteria.Parse("country:England,firstName:Joe"))
		matches, err := ur.FindByFilter(ctx, filter)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, joe.ID, matches[0].ID)

		none, err := ur.FindByFilter(ctx, criteria.Build(criteria.Parse("country:France")))
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("nil_filter_equals_find_all", func(t *testing.T) {
		all, err := ur.FindAll(ctx)
		require.NoError(t, err)

		unfiltered, err := ur.FindByFilter(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, all, unfiltered)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, ur.DeleteByID(ctx, joe.ID))
		require.ErrorIs(t, ur.DeleteByID(ctx, joe.ID), model.ErrNotFound)
	})
}
