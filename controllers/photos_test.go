package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"outfitapi/stylist"
	"outfitapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankPhotos(t *testing.T) {
	s := setupTestServer(t)

	reqBody := RankPhotosIn{Photos: []PhotoFeaturesIn{
		{OutfitConfidence: 0.4, ImageQuality: 0.9, PoseScore: 0.5, ForegroundCoverage: 0.5},
		{OutfitConfidence: 0.9, ImageQuality: 0.8, PoseScore: 0.7, ForegroundCoverage: 0.6, DominantColors: []string{"navy"}},
		{OutfitConfidence: 0.1, ImageQuality: 0.2},
	}}
	req := test.NewJSONAuthRequest("POST", "/closet/photos/rank", s.userPk(), reqBody)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var response struct {
		Ranked []stylist.RankedPhoto `json:"ranked"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Ranked, 3)
	assert.Equal(t, []int{1, 0, 2}, []int{response.Ranked[0].Index, response.Ranked[1].Index, response.Ranked[2].Index})
	assert.InDelta(t, 0.45+0.28+0.07+0.03, response.Ranked[0].Score, 1e-9)
}

func TestRankPhotosValidatesFeatureRange(t *testing.T) {
	s := setupTestServer(t)

	for _, body := range []RankPhotosIn{
		{},
		{Photos: []PhotoFeaturesIn{{OutfitConfidence: 1.5}}},
		{Photos: []PhotoFeaturesIn{{ImageQuality: -0.1}}},
	} {
		req := test.NewJSONAuthRequest("POST", "/closet/photos/rank", s.userPk(), body)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	}
}
