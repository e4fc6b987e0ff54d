package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"outfitapi/models"
	"outfitapi/services"
	"outfitapi/stylist"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeProcessClothing     = "closet:process_item"
	TypeRetryStaleProcesses = "closet:retry_stale"

	QueueCloset = "closet"

	maxProcessRetries = 3
	// pending items untouched for this long are assumed lost by the broker
	staleProcessingAfter = time.Hour
)

type ClothingProcessingPayload struct {
	ClothingItemID uint `json:"clothing_item_id"`
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func NewClothingProcessingTask(itemID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(ClothingProcessingPayload{ClothingItemID: itemID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeProcessClothing, payload), nil
}

func NewRetryStaleProcessingTask() *asynq.Task {
	return asynq.NewTask(TypeRetryStaleProcesses, nil)
}

// EnqueueClothingProcessing submits the photo processing job of one item.
func EnqueueClothingProcessing(enqueuer Enqueuer, itemID uint) (*asynq.TaskInfo, error) {
	task, err := NewClothingProcessingTask(itemID)
	if err != nil {
		return nil, err
	}
	return enqueuer.Enqueue(task, asynq.MaxRetry(maxProcessRetries), asynq.Queue(QueueCloset))
}

// ClothingProcessor reads an uploaded item photo and fills in its primary
// color when the user left it blank.
type ClothingProcessor struct {
	Store      services.ClosetStore
	AWSService services.AWSServiceProvider
	Notifier   services.Notifier
	Colors     *stylist.ColorModel
	BucketName string
	Logger     *zap.Logger
}

func (p *ClothingProcessor) ProcessClothingTask(ctx context.Context, t *asynq.Task) error {
	var payload ClothingProcessingPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}
	log := p.Logger.With(zap.Uint("item_id", payload.ClothingItemID))

	item, err := p.Store.GetItem(ctx, payload.ClothingItemID)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("item vanished before processing")
		return fmt.Errorf("item %v: %w", payload.ClothingItemID, asynq.SkipRetry)
	}
	if err != nil {
		return err
	}
	if item.ProcessingStatus == services.ProcessingCompleted {
		log.Info("item already processed")
		return nil
	}
	if item.ImageURL == nil || *item.ImageURL == "" {
		return p.saveProcessingFail(ctx, item, "item has no photo", false)
	}

	readURL, err := p.AWSService.GetPresignedR2FileReadURL(ctx, p.BucketName, *item.ImageURL)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Item %v] presign read: %w", item.ID, err))
		return p.saveProcessingFail(ctx, item, "could not reach photo storage", true)
	}
	content, err := services.ReadFileFromUrl(ctx, readURL)
	if err != nil {
		log.Warn("photo download failed", zap.Error(err))
		return p.saveProcessingFail(ctx, item, "photo is not uploaded yet", true)
	}
	hex, err := services.DominantColorHex(content, p.Colors)
	if err != nil {
		log.Warn("photo could not be analyzed", zap.Error(err))
		return p.saveProcessingFail(ctx, item, "photo could not be read, please upload a PNG or JPEG", false)
	}

	if item.PrimaryColor == "" {
		item.PrimaryColor = hex
	}
	item.ProcessingStatus = services.ProcessingCompleted
	item.ProcessErrorMessage = nil
	if err := p.Store.UpdateItem(ctx, &item, services.ItemProcessingColumns...); err != nil {
		sentry.CaptureException(fmt.Errorf("[Item %v] saving processed item: %w", item.ID, err))
		return err
	}
	log.Info("item processed", zap.String("detected_color", hex), zap.String("primary_color", item.PrimaryColor))

	p.notify(ctx, item)
	return nil
}

func (p *ClothingProcessor) notify(ctx context.Context, item models.ClothingItem) {
	if p.Notifier == nil {
		return
	}
	user, err := p.Store.FindUser(ctx, item.OwnerID)
	if err != nil || !user.ReceiveNotifications {
		return
	}
	name := item.Name
	if name == "" {
		name = fmt.Sprintf("Your %s", p.Colors.NormalizeHex(item.PrimaryColor))
	}
	err = p.Notifier.Notify(ctx, user.ID, "Closet updated", fmt.Sprintf("%s is ready to style", name), map[string]string{
		"type":    "item_processed",
		"item_id": fmt.Sprint(item.ID),
	})
	if err != nil {
		p.Logger.Warn("notify failed", zap.Uint("user_id", user.ID), zap.Error(err))
		sentry.CaptureException(err)
	}
}

// saveProcessingFail records the failure. The item is marked failed once
// retries run out or the error is not worth retrying, otherwise the returned
// error hands the task back to the queue.
func (p *ClothingProcessor) saveProcessingFail(ctx context.Context, item models.ClothingItem, msg string, shouldRetry bool) error {
	item.ProcessRetryTimes++
	item.ProcessErrorMessage = services.StrPointer(msg)
	final := !shouldRetry || item.ProcessRetryTimes >= maxProcessRetries
	if final {
		item.ProcessingStatus = services.ProcessingFailed
	}
	if err := p.Store.UpdateItem(ctx, &item, services.ItemProcessingColumns...); err != nil {
		sentry.CaptureException(fmt.Errorf("[Item %v] saving failed status: %w", item.ID, err))
		return err
	}
	p.Logger.Info("item processing failed", zap.Uint("item_id", item.ID), zap.String("reason", msg), zap.Int("retries", item.ProcessRetryTimes))
	if final {
		return fmt.Errorf("item %v: %s: %w", item.ID, msg, asynq.SkipRetry)
	}
	return fmt.Errorf("item %v: %s", item.ID, msg)
}

// RetryStaleProcessing re-enqueues pending items the broker lost track of.
type RetryStaleProcessing struct {
	Store    services.ClosetStore
	Enqueuer Enqueuer
	Logger   *zap.Logger
	Now      func() time.Time
}

func (r *RetryStaleProcessing) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	items, err := r.Store.StalePendingItems(ctx, now().Add(-staleProcessingAfter), maxProcessRetries)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Retry stale] listing items: %w", err))
		return err
	}

	var enqueued int
	for _, item := range items {
		// touching the item keeps it out of the next sweep
		pending, err := r.Store.TouchPendingItem(ctx, item.ID)
		if err != nil {
			r.Logger.Warn("touch stale item", zap.Uint("item_id", item.ID), zap.Error(err))
			continue
		}
		if !pending {
			r.Logger.Debug("item left pending before re-enqueue", zap.Uint("item_id", item.ID))
			continue
		}
		info, err := EnqueueClothingProcessing(r.Enqueuer, item.ID)
		if err != nil {
			r.Logger.Warn("re-enqueue failed", zap.Uint("item_id", item.ID), zap.Error(err))
			sentry.CaptureException(err)
			continue
		}
		enqueued++
		r.Logger.Debug("re-enqueued item", zap.Uint("item_id", item.ID), zap.String("task_id", info.ID))
	}
	r.Logger.Info("stale processing retried", zap.Int("found", len(items)), zap.Int("enqueued", enqueued))
	return nil
}
