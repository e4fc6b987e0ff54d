package stylist

import (
	"sort"

	"outfitapi/models"
)

// PhotoScore weighs the vision features of a candidate outfit photo.
func PhotoScore(f models.PhotoFeatures) float64 {
	return 0.50*f.OutfitConfidence + 0.35*f.ImageQuality + 0.10*f.PoseScore + 0.05*f.ForegroundCoverage
}

type RankedPhoto struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// RankPhotos orders candidate photos best first, earlier photos win ties.
func RankPhotos(photos []models.PhotoFeatures) []RankedPhoto {
	ranked := make([]RankedPhoto, len(photos))
	for i, p := range photos {
		ranked[i] = RankedPhoto{Index: i, Score: PhotoScore(p)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
