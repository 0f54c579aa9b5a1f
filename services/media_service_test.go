package services

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"travelcms/errors"
)

type fakeUploader struct {
	folders []string
	err     error
	apiErr  string
}

func (f *fakeUploader) Upload(_ context.Context, _ interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.folders = append(f.folders, params.Folder)
	if f.err != nil {
		return nil, f.err
	}
	res := &uploader.UploadResult{SecureURL: "https://res.cloudinary.com/demo/" + params.Folder + "/x.jpg"}
	if f.apiErr != "" {
		res.Error = api.ErrorResp{Message: f.apiErr}
	}
	return res, nil
}

func TestMediaUploadUsesAllowedFolder(t *testing.T) {
	up := &fakeUploader{}
	svc := NewMediaService(up, nil)

	url, err := svc.Upload(context.Background(), strings.NewReader("img"), "hero")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(url, "/hero/") {
		t.Fatalf("unexpected url %q", url)
	}
	if _, err := svc.Upload(context.Background(), strings.NewReader("img"), "../etc"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if up.folders[1] != DefaultMediaFolder {
		t.Fatalf("unknown folder must fall back to %q, got %q", DefaultMediaFolder, up.folders[1])
	}
}

func TestMediaUploadErrors(t *testing.T) {
	cases := map[string]*fakeUploader{
		"transport": {err: stderrors.New("dial tcp: timeout")},
		"api":       {apiErr: "Invalid image file"},
	}
	for name, up := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewMediaService(up, nil).Upload(context.Background(), strings.NewReader("x"), "")
			if !errors.HasCode(err, errors.ErrCodeUploadFailed) {
				t.Fatalf("expected UPLOAD_FAILED, got %v", err)
			}
		})
	}
}

func TestMediaUploadWithoutStorage(t *testing.T) {
	_, err := NewMediaService(nil, nil).Upload(context.Background(), strings.NewReader("x"), "")
	if !errors.HasCode(err, errors.ErrCodeUploadFailed) {
		t.Fatalf("expected UPLOAD_FAILED, got %v", err)
	}
}

func TestMediaUploadManyKeepsOrder(t *testing.T) {
	up := &fakeUploader{}
	svc := NewMediaService(up, nil)
	urls, err := svc.UploadMany(context.Background(), []io.Reader{strings.NewReader("a"), strings.NewReader("b")}, "packages")
	if err != nil || len(urls) != 2 {
		t.Fatalf("expected two urls, got %v %v", urls, err)
	}
}
