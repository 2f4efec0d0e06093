package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/config"
)

type stubS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (s *stubS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	s.input = params
	if params.Body != nil {
		b, _ := io.ReadAll(params.Body)
		s.body = string(b)
	}
	if s.err != nil {
		return nil, s.err
	}
	return &s3.PutObjectOutput{}, nil
}

func pngImage(data string) Image {
	return Image{
		Filename:    "Cover.PNG",
		ContentType: "image/png",
		Size:        int64(len(data)),
		Body:        strings.NewReader(data),
	}
}

func TestS3Uploader_Upload(t *testing.T) {
	client := &stubS3{}
	u := newS3Uploader(client, config.StorageConfig{
		Region:    "ap-northeast-2",
		Bucket:    "blog-images",
		KeyPrefix: "posts/",
	})

	url, err := u.Upload(context.Background(), pngImage("PNGDATA"))
	require.NoError(t, err)

	require.NotNil(t, client.input)
	key := *client.input.Key
	assert.True(t, strings.HasPrefix(key, "posts/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, "blog-images", *client.input.Bucket)
	assert.Equal(t, "image/png", *client.input.ContentType)
	assert.Equal(t, int64(7), *client.input.ContentLength)
	assert.Equal(t, "PNGDATA", client.body)
	assert.Equal(t, "https://blog-images.s3.ap-northeast-2.amazonaws.com/"+key, url)
}

func TestS3Uploader_PublicBaseURL(t *testing.T) {
	client := &stubS3{}
	u := newS3Uploader(client, config.StorageConfig{
		Bucket:        "blog-images",
		PublicBaseURL: "https://cdn.example.com/",
	})

	url, err := u.Upload(context.Background(), pngImage("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+*client.input.Key, url)
}

func TestS3Uploader_ContentTypeFromExtension(t *testing.T) {
	client := &stubS3{}
	u := newS3Uploader(client, config.StorageConfig{Bucket: "b"})

	_, err := u.Upload(context.Background(), Image{Filename: "photo.jpg", Size: 1, Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", *client.input.ContentType)
}

func TestS3Uploader_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		img     Image
		wantErr error
	}{
		{name: "no body", img: Image{Filename: "a.png", ContentType: "image/png"}, wantErr: ErrEmptyImage},
		{name: "zero size", img: Image{Filename: "a.png", ContentType: "image/png", Body: strings.NewReader("")}, wantErr: ErrEmptyImage},
		{name: "not an image", img: Image{Filename: "a.txt", ContentType: "text/plain", Size: 1, Body: strings.NewReader("x")}, wantErr: ErrUnsupportedImage},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			client := &stubS3{}
			u := newS3Uploader(client, config.StorageConfig{Bucket: "b"})

			_, err := u.Upload(context.Background(), testCase.img)
			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, client.input)
		})
	}
}

func TestS3Uploader_PutObjectError(t *testing.T) {
	cause := errors.New("access denied")
	u := newS3Uploader(&stubS3{err: cause}, config.StorageConfig{Bucket: "b"})

	_, err := u.Upload(context.Background(), pngImage("x"))
	assert.ErrorIs(t, err, cause)
}
