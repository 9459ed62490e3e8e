package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "provider-raw/a.json", want: "provider-raw/a.json"},
		{name: "simple prefix", prefix: "root", key: "provider-raw/a.json", want: "root/provider-raw/a.json"},
		{name: "prefix trailing slash", prefix: "root/", key: "provider-raw/a.json", want: "root/provider-raw/a.json"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/provider-raw/a.json", want: "root/provider-raw/a.json"},
		{name: "nested prefix", prefix: "root/sub", key: "provider-raw/a.json", want: "root/sub/provider-raw/a.json"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

type fakeAPI struct {
	put     *s3.PutObjectInput
	putBody []byte
	objects map[string][]byte
	err     error
}

func (f *fakeAPI) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.put = in
	f.putBody = body
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[aws.ToString(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeAPI) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func TestSaveWithKeyUsesPrefixAndKMS(t *testing.T) {
	api := &fakeAPI{}
	store := NewWithClient(api, "bucket", "/archive/", "kms-1")

	n, err := store.SaveWithKey(context.Background(), "provider-raw/a1.json", "application/json", strings.NewReader(`{"id":"x"}`))
	if err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	if n != int64(len(`{"id":"x"}`)) {
		t.Fatalf("unexpected size %d", n)
	}
	if got := aws.ToString(api.put.Key); got != "archive/provider-raw/a1.json" {
		t.Fatalf("unexpected key %q", got)
	}
	if api.put.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms || aws.ToString(api.put.SSEKMSKeyId) != "kms-1" {
		t.Fatalf("expected kms encryption, got %v", api.put.ServerSideEncryption)
	}
	if aws.ToString(api.put.ContentType) != "application/json" {
		t.Fatalf("unexpected content type %q", aws.ToString(api.put.ContentType))
	}

	rc, err := store.Open(context.Background(), "provider-raw/a1.json")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != `{"id":"x"}` {
		t.Fatalf("unexpected body %q", data)
	}
}

func TestSaveWithKeyDefaultsToAES(t *testing.T) {
	api := &fakeAPI{}
	store := NewWithClient(api, "bucket", "", "")
	if _, err := store.SaveWithKey(context.Background(), "k.json", "application/json", strings.NewReader("{}")); err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	if api.put.ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("expected AES256, got %v", api.put.ServerSideEncryption)
	}
}

func TestSaveWithKeyWrapsClientError(t *testing.T) {
	api := &fakeAPI{err: errors.New("AccessDenied")}
	store := NewWithClient(api, "bucket", "", "")
	_, err := store.SaveWithKey(context.Background(), "k.json", "application/json", strings.NewReader("{}"))
	if err == nil || !strings.Contains(err.Error(), "AccessDenied") || !strings.Contains(err.Error(), "bucket=bucket") {
		t.Fatalf("unexpected error %v", err)
	}
}
