package models

type ClothingItem struct {
	JsonModel
	Name         string      `json:"name"`
	Owner        UserAccount `json:"-"`
	OwnerID      uint        `json:"-" gorm:"index"`
	Category     Category    `json:"category"`  // tops, bottoms, footwear, outerwear, dresses, suits, accessories
	Formality    Formality   `json:"formality"` // athletic, casual, smartCasual, business, party, formal
	PrimaryColor string      `json:"primary_color"`
	// free text season tag, "all" or empty fits every season
	Season   string  `json:"season"`
	Favorite bool    `json:"favorite"`
	Notes    *string `gorm:"type:text" json:"notes"`

	// this is file **key** in storage.
	ImageURL            *string `json:"image_url"`
	ProcessingStatus    string  `json:"processing_status"` // idle, pending, completed, failed
	ProcessRetryTimes   int     `json:"process_retry_times"`
	ProcessErrorMessage *string `json:"process_error_message"`
}

func (item ClothingItem) NotesText() string {
	if item.Notes == nil {
		return ""
	}
	return *item.Notes
}
