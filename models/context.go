package models

// AnyPreference is the sentinel meaning "no override".
const AnyPreference = "any"

type Occasion struct {
	Name string `json:"name"`
	// free text, used for formality and category keyword inference
	Title  string `json:"title" validate:"required,max=200"`
	Season Season `json:"season"`
}

type Preferences struct {
	StylePreference string `json:"style_preference"`
	ColorPreference string `json:"color_preference"`
	ComfortPriority bool   `json:"comfort_priority"`
	// not used by scoring yet
	Location string `json:"location"`
}

// Weather is supplied by the client, only TemperatureF affects scoring.
type Weather struct {
	TemperatureF float64 `json:"temperature_f"`
	Condition    string  `json:"condition"`
	Humidity     float64 `json:"humidity"`
	WindMph      float64 `json:"wind_mph"`
	UVIndex      float64 `json:"uv_index"`
}

// PhotoFeatures is produced by the on-device vision pipeline.
type PhotoFeatures struct {
	OutfitConfidence   float64  `json:"outfit_confidence"`
	ImageQuality       float64  `json:"image_quality"`
	PoseScore          float64  `json:"pose_score"`
	ForegroundCoverage float64  `json:"foreground_coverage"`
	DominantColors     []string `json:"dominant_colors"`
}

// UserProfile is derived per request and never persisted.
type UserProfile struct {
	PreferredColors []string `json:"preferred_colors,omitempty"`
	PreferredStyle  *string  `json:"preferred_style,omitempty"`
	PreferredSeason *Season  `json:"preferred_season,omitempty"`
	BodyType        *string  `json:"body_type,omitempty"`
	Personality     *string  `json:"personality,omitempty"`
}
