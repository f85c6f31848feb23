package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
)

// FetchLocal resolves an input ref to a local file path. Supported:
// plain filesystem paths, file://path, http(s):// URLs and s3://bucket/key
// (downloaded to a temp file). cleanup removes any temp file and is safe
// to call unconditionally.
func FetchLocal(ctx context.Context, ref string) (localPath string, cleanup func(), err error) {
	cleanup = func() {}

	switch {
	case strings.HasPrefix(ref, "s3://"):
		localPath, err = downloadS3ToTemp(ctx, ref)
	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		localPath, err = downloadHTTPToTemp(ctx, ref)
	case strings.HasPrefix(ref, "file://"):
		localPath = strings.TrimPrefix(ref, "file://")
	default:
		localPath = ref
	}
	if err != nil {
		return "", cleanup, &ReadError{Path: ref, Err: err}
	}
	if localPath != ref && !strings.HasPrefix(ref, "file://") {
		tmp := localPath
		cleanup = func() { _ = os.Remove(tmp) }
	}

	if _, err := os.Stat(localPath); err != nil {
		return "", cleanup, &ReadError{Path: ref, Err: err}
	}
	if err := ensurePDF(localPath); err != nil {
		return "", cleanup, &ReadError{Path: ref, Err: err}
	}
	return localPath, cleanup, nil
}

// ensurePDF checks magic bytes rather than trusting the extension.
func ensurePDF(path string) error {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return err
	}
	if !mtype.Is("application/pdf") {
		return fmt.Errorf("not a PDF (detected %s)", mtype.String())
	}
	return nil
}

func downloadHTTPToTemp(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http %d", resp.StatusCode)
	}
	return copyToTemp(resp.Body)
}

func downloadS3ToTemp(ctx context.Context, s3url string) (string, error) {
	// s3://bucket/key
	path := strings.TrimPrefix(s3url, "s3://")
	slash := strings.Index(path, "/")
	if slash <= 0 {
		return "", fmt.Errorf("invalid s3 url: %s", s3url)
	}
	bucket := path[:slash]
	key := path[slash+1:]

	cfg, err := awscfg.LoadDefaultConfig(ctx)
	if err != nil {
		return "", err
	}
	cli := s3.NewFromConfig(cfg)

	out, err := cli.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		return "", err
	}
	defer out.Body.Close()

	p, err := copyToTemp(out.Body)
	if err != nil {
		return "", err
	}
	log.Debug().Str("bucket", bucket).Str("key", key).Str("file", p).Msg("downloaded s3 pdf to temp")
	return p, nil
}

func copyToTemp(r io.Reader) (string, error) {
	// .pdf suffix keeps pdfcpu's extension checks happy
	f, err := os.CreateTemp("", "pdfextract-*.pdf")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
