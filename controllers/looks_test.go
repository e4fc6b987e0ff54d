package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"outfitapi/models"
	"outfitapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLookForgetsLearnedColors(t *testing.T) {
	s := setupTestServer(t)
	top := s.addItem(t, models.ClothingItem{Category: models.Tops, PrimaryColor: "#FF0000"})
	bottom := s.addItem(t, models.ClothingItem{Category: models.Bottoms, PrimaryColor: "#000000"})

	reqBody := CreateLookIn{Name: "Friday", Occasion: "Dinner", ItemIDs: []uint{top.ID, bottom.ID, top.ID}}
	req := test.NewJSONAuthRequest("POST", "/closet/looks", s.userPk(), reqBody)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var response LookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []int64{int64(top.ID), int64(bottom.ID)}, response.ItemIDs)
	assert.Equal(t, "Dinner", response.Occasion)
	assert.Equal(t, []uint{s.user.ID}, s.memory.forgotten)

	looks, err := s.store.ListLooks(context.Background(), s.user.ID)
	require.NoError(t, err)
	assert.Len(t, looks, 1)
}

func TestCreateLookRejectsForeignItems(t *testing.T) {
	s := setupTestServer(t)
	mine := s.addItem(t, models.ClothingItem{Category: models.Tops})
	theirs := s.addItem(t, models.ClothingItem{Category: models.Bottoms, OwnerID: 999})

	reqBody := CreateLookIn{ItemIDs: []uint{mine.ID, theirs.ID}}
	req := test.NewJSONAuthRequest("POST", "/closet/looks", s.userPk(), reqBody)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, s.memory.forgotten)
}

func TestCreateLookRequiresItems(t *testing.T) {
	s := setupTestServer(t)

	req := test.NewJSONAuthRequest("POST", "/closet/looks", s.userPk(), CreateLookIn{Name: "Empty"})
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "ItemIDs")
}

func TestListLooks(t *testing.T) {
	s := setupTestServer(t)
	require.NoError(t, s.store.CreateLook(context.Background(), &models.OutfitLook{Name: "Mine", OwnerID: s.user.ID, ItemIDs: []int64{1}}))
	require.NoError(t, s.store.CreateLook(context.Background(), &models.OutfitLook{Name: "Theirs", OwnerID: 999}))

	req := test.NewJSONAuthRequest("GET", "/closet/looks", s.userPk(), nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response []LookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "Mine", response[0].Name)
	assert.Nil(t, response[0].WornAt)
}
