package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/hibiken/asynq"
)

type AWSProviderMock struct {
	MockUrl string
	Err     error
}

func (awsService AWSProviderMock) InitPresignClient(ctx context.Context) error {
	return nil
}

func (awsService AWSProviderMock) PresignLink(ctx context.Context, bucketName string, fileName string) (string, error) {
	if awsService.Err != nil {
		return "", awsService.Err
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s", fileName), nil
}

func (awsService AWSProviderMock) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	if awsService.Err != nil {
		return "", awsService.Err
	}
	if awsService.MockUrl != "" {
		return awsService.MockUrl, nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/read/%s", fileKey), nil
}

type URLCacheMock struct {
	Err error
}

func (m URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "https://cdn.example.com/" + objectKey, nil
}

// EnqueuerMock records enqueued tasks instead of talking to redis.
type EnqueuerMock struct {
	mu    sync.Mutex
	Tasks []*asynq.Task
	Err   error
}

func (m *EnqueuerMock) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	m.Tasks = append(m.Tasks, task)
	return &asynq.TaskInfo{ID: fmt.Sprintf("task-%d", len(m.Tasks)), Type: task.Type(), Payload: task.Payload()}, nil
}

type Notification struct {
	UserID uint
	Title  string
	Body   string
	Data   map[string]string
}

type NotifierMock struct {
	mu   sync.Mutex
	Sent []Notification
}

func (m *NotifierMock) Notify(_ context.Context, userID uint, title, body string, data map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, Notification{UserID: userID, Title: title, Body: body, Data: data})
	return nil
}
