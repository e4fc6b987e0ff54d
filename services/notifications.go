package services

import (
	"context"
	"fmt"

	"outfitapi/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

const androidChannelID = "closet-updates"

type Notifier interface {
	Notify(ctx context.Context, userID uint, title, body string, data map[string]string) error
}

// FirebaseNotifier pushes to every active device token of a user.
type FirebaseNotifier struct {
	App    *firebase.App
	Store  ClosetStore
	Logger *zap.Logger
}

func (n *FirebaseNotifier) Notify(ctx context.Context, userID uint, title, body string, data map[string]string) error {
	tokens, err := n.Store.ActivePushTokens(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading push tokens: %w", err)
	}
	messages := BuildPushMessages(tokens, title, body, data)
	if len(messages) == 0 {
		return nil
	}

	client, err := n.App.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("initializing messaging client: %w", err)
	}
	br, err := client.SendEach(ctx, messages)
	if err != nil {
		return fmt.Errorf("sending push: %w", err)
	}
	for i, resp := range br.Responses {
		if resp != nil && !resp.Success {
			n.Logger.Warn("push failed", zap.Uint("user_id", userID), zap.Uint("token_id", tokens[i].ID), zap.Error(resp.Error))
			sentry.CaptureException(fmt.Errorf("[User %v] push to token %v failed: %w", userID, tokens[i].ID, resp.Error))
		}
	}
	n.Logger.Info("push sent", zap.Uint("user_id", userID), zap.Int("success", br.SuccessCount), zap.Int("failure", br.FailureCount))
	return nil
}

func BuildPushMessages(tokens []models.UserPushToken, title, body string, data map[string]string) []*messaging.Message {
	var apnsData map[string]interface{}
	if data != nil {
		apnsData = make(map[string]interface{}, len(data))
		for k, v := range data {
			apnsData[k] = v
		}
	}

	messages := make([]*messaging.Message, 0, len(tokens))
	for _, token := range tokens {
		if token.Token == "" {
			continue
		}
		messages = append(messages, &messaging.Message{
			Notification: &messaging.Notification{Title: title, Body: body},
			Data:         data,
			APNS: &messaging.APNSConfig{
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						ContentAvailable: true,
						Alert:            &messaging.ApsAlert{Title: title, Body: body},
						Sound:            "default",
					},
					CustomData: apnsData,
				},
			},
			Android: &messaging.AndroidConfig{
				Notification: &messaging.AndroidNotification{
					Priority:  messaging.PriorityHigh,
					ChannelID: androidChannelID,
				},
			},
			Token: token.Token,
		})
	}
	return messages
}
