package stylist

import (
	"testing"

	"outfitapi/models"

	"github.com/stretchr/testify/assert"
)

func TestPhotoScoreWeights(t *testing.T) {
	assert.InDelta(t, 1.0, PhotoScore(models.PhotoFeatures{OutfitConfidence: 1, ImageQuality: 1, PoseScore: 1, ForegroundCoverage: 1}), 1e-9)
	assert.InDelta(t, 0.5, PhotoScore(models.PhotoFeatures{OutfitConfidence: 1}), 1e-9)
	assert.InDelta(t, 0.35, PhotoScore(models.PhotoFeatures{ImageQuality: 1}), 1e-9)
}

func TestRankPhotos(t *testing.T) {
	photos := []models.PhotoFeatures{
		{OutfitConfidence: 0.2, ImageQuality: 0.9},
		{OutfitConfidence: 0.9, ImageQuality: 0.8},
		{OutfitConfidence: 0.2, ImageQuality: 0.9},
	}

	ranked := RankPhotos(photos)

	assert.Equal(t, []int{1, 0, 2}, []int{ranked[0].Index, ranked[1].Index, ranked[2].Index})
	assert.Empty(t, RankPhotos(nil))
}
