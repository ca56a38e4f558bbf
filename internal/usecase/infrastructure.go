package usecase

import "context"

// TextGenInfra is the generative text service boundary: prompt in, raw text out.
type TextGenInfra interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (string, error)
	CleanupImages(keys []string)
	WaitForCleanup(ctx context.Context) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// Transactor runs fn atomically: every repository call made through the ctx
// it passes in either commits as one unit or rolls back as one unit.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
