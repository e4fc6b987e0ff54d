package controllers

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"outfitapi/models"
	"outfitapi/stylist"
	"outfitapi/test"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap/zaptest"
)

type forgettingMemory struct {
	mu        sync.Mutex
	colors    []string
	forgotten []uint
}

func (m *forgettingMemory) MostPreferredColors(context.Context, uint) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.colors
}

func (m *forgettingMemory) Forget(_ context.Context, userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forgotten = append(m.forgotten, userID)
}

type testServer struct {
	e        *echo.Echo
	store    *test.MemoryClosetStore
	enqueuer *test.EnqueuerMock
	memory   *forgettingMemory
	user     models.UserAccount
}

func (s testServer) userPk() string {
	return strconv.FormatUint(uint64(s.user.ID), 10)
}

func (s testServer) addItem(t *testing.T, item models.ClothingItem) models.ClothingItem {
	t.Helper()
	if item.OwnerID == 0 {
		item.OwnerID = s.user.ID
	}
	if err := s.store.CreateItem(context.Background(), &item); err != nil {
		t.Fatal(err)
	}
	return item
}

type serverOption func(*ServerDeps)

func setupTestServer(t *testing.T, opts ...serverOption) testServer {
	store := test.NewMemoryClosetStore()
	enqueuer := &test.EnqueuerMock{}
	memory := &forgettingMemory{}
	logger := zaptest.NewLogger(t)

	deps := ServerDeps{
		Store:      store,
		AWSService: test.AWSProviderMock{},
		URLCache:   test.URLCacheMock{},
		Enqueuer:   enqueuer,
		Stylist:    stylist.New(memory, stylist.WithLogger(logger)),
		Memory:     memory,
		Looks:      memory,
		Logger:     logger,
		JWTSecret:  test.JWTSecret,
		BucketName: "closet-test",
	}
	for _, opt := range opts {
		opt(&deps)
	}

	return testServer{
		e:        SetupServer(deps),
		store:    store,
		enqueuer: enqueuer,
		memory:   memory,
		user:     store.AddUser(models.UserAccount{Name: "Test User", Email: "test@example.com"}),
	}
}
