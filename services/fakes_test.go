package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"outfitapi/models"
)

type fakeClosetStore struct {
	mu        sync.Mutex
	items     []models.ClothingItem
	looks     []models.OutfitLook
	err       error
	itemCalls int
}

func (s *fakeClosetStore) FindUser(context.Context, uint) (models.UserAccount, error) {
	return models.UserAccount{}, ErrNotFound
}

func (s *fakeClosetStore) ActivePushTokens(context.Context, uint) ([]models.UserPushToken, error) {
	return nil, nil
}

func (s *fakeClosetStore) SavePushToken(context.Context, *models.UserPushToken) error {
	return nil
}

func (s *fakeClosetStore) ListItems(_ context.Context, ownerID uint) ([]models.ClothingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemCalls++
	if s.err != nil {
		return nil, s.err
	}
	var out []models.ClothingItem
	for _, item := range s.items {
		if item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *fakeClosetStore) GetItem(context.Context, uint) (models.ClothingItem, error) {
	return models.ClothingItem{}, ErrNotFound
}

func (s *fakeClosetStore) CreateItem(context.Context, *models.ClothingItem) error {
	return errors.New("not supported")
}

func (s *fakeClosetStore) UpdateItem(context.Context, *models.ClothingItem, ...string) error {
	return errors.New("not supported")
}

func (s *fakeClosetStore) TouchPendingItem(context.Context, uint) (bool, error) {
	return false, errors.New("not supported")
}

func (s *fakeClosetStore) StalePendingItems(context.Context, time.Time, int) ([]models.ClothingItem, error) {
	return nil, nil
}

func (s *fakeClosetStore) ListLooks(_ context.Context, ownerID uint) ([]models.OutfitLook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.OutfitLook
	for _, look := range s.looks {
		if look.OwnerID == ownerID {
			out = append(out, look)
		}
	}
	return out, nil
}

func (s *fakeClosetStore) CreateLook(_ context.Context, look *models.OutfitLook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.looks = append(s.looks, *look)
	return nil
}

func closetItem(id, owner uint, hex string, favorite bool) models.ClothingItem {
	item := models.ClothingItem{OwnerID: owner, PrimaryColor: hex, Favorite: favorite, Category: models.Tops}
	item.ID = id
	return item
}
