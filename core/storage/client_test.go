package storage_test

import (
	"context"
	"errors"
	"testing"

	"team-inventory/core/storage"
	"team-inventory/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "boms").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(context.Background(), client, "boms", ""))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "boms").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "boms", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(context.Background(), client, "boms", "us-east-1"))
		client.AssertExpectations(t)
	})

	t.Run("Check Fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "boms").Return(false, errors.New("unreachable"))

		err := storage.EnsureBucket(context.Background(), client, "boms", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unreachable")
	})
}
