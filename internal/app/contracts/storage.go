package contracts

import "context"

type Storage interface {
	UploadPNG(ctx context.Context, data []byte, bucketName, objectName string) (string, error)
}
