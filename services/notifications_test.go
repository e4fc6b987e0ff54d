package services

import (
	"testing"

	"outfitapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPushMessages(t *testing.T) {
	tokens := []models.UserPushToken{
		{Token: "ios-token", Platform: models.PlatformIOS},
		{Token: ""},
		{Token: "android-token", Platform: models.PlatformAndroid},
	}

	messages := BuildPushMessages(tokens, "Item ready", "Your blue shirt is in the closet", map[string]string{"item_id": "4"})

	require.Len(t, messages, 2)
	assert.Equal(t, "ios-token", messages[0].Token)
	assert.Equal(t, "Item ready", messages[0].Notification.Title)
	assert.Equal(t, "4", messages[1].Data["item_id"])
	assert.Equal(t, "4", messages[0].APNS.Payload.CustomData["item_id"])
	assert.Equal(t, "closet-updates", messages[1].Android.Notification.ChannelID)
}

func TestBuildPushMessagesWithoutData(t *testing.T) {
	messages := BuildPushMessages([]models.UserPushToken{{Token: "t"}}, "a", "b", nil)

	require.Len(t, messages, 1)
	assert.Nil(t, messages[0].APNS.Payload.CustomData)
}
