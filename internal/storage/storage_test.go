package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	headErr   error
	createErr error
	putErr    error
	deleteErr error

	heads   int
	creates int
	puts    []*s3.PutObjectInput
	deletes []string
}

func (f *fakeObjects) calls() int {
	return f.heads + f.creates + len(f.puts) + len(f.deletes)
}

func (f *fakeObjects) HeadBucket(_ context.Context, _ *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	f.heads++
	return &s3.HeadBucketOutput{}, f.headErr
}

func (f *fakeObjects) CreateBucket(_ context.Context, _ *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.creates++
	return &s3.CreateBucketOutput{}, f.createErr
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, f.putErr
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, f.deleteErr
}

func newTestGateway(client ObjectAPI) *Gateway {
	g := New(client, Config{
		Endpoint:      "http://localhost:9000",
		Region:        "us-east-1",
		Bucket:        "portfolio",
		PublicBaseURL: "http://localhost:9000/",
	}, nil)
	g.newKey = func() string { return "fixed-key" }
	return g
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadRejectsOversizedFileWithoutNetwork(t *testing.T) {
	fake := &fakeObjects{}
	g := newTestGateway(fake)

	res := g.Upload(context.Background(), File{
		Name:        "huge.png",
		ContentType: "image/png",
		Size:        41 << 20,
		Body:        strings.NewReader(""),
	}, 0)

	require.False(t, res.Success)
	require.Contains(t, res.Error, "40MB")
	require.Zero(t, fake.calls())
}

func TestUploadRejectsTextFileWithoutNetwork(t *testing.T) {
	fake := &fakeObjects{}
	g := newTestGateway(fake)

	res := g.Upload(context.Background(), File{
		Name:        "notes.txt",
		ContentType: "text/plain",
		Size:        12,
		Body:        strings.NewReader("hello world!"),
	}, 0)

	require.False(t, res.Success)
	require.Equal(t, msgUnsupportedType, res.Error)
	require.Zero(t, fake.calls())
}

func TestUploadRejectsBodyLargerThanDeclared(t *testing.T) {
	fake := &fakeObjects{}
	g := newTestGateway(fake)

	res := g.Upload(context.Background(), File{
		Name:        "liar.svg",
		ContentType: "image/svg+xml",
		Size:        1,
		Body:        strings.NewReader(strings.Repeat("x", 2048)),
	}, 1024)

	require.False(t, res.Success)
	require.Zero(t, fake.calls())
}

func TestUploadStoresPublicObject(t *testing.T) {
	fake := &fakeObjects{}
	g := newTestGateway(fake)
	payload := pngBytes(t, 3, 2)

	res := g.Upload(context.Background(), File{
		Name:        "Cover.PNG",
		ContentType: "image/png",
		Size:        int64(len(payload)),
		Body:        bytes.NewReader(payload),
	}, 0)

	require.True(t, res.Success, res.Error)
	require.Equal(t, "http://localhost:9000/portfolio/fixed-key.png", res.URL)
	require.Equal(t, 3, res.Width)
	require.Equal(t, 2, res.Height)
	require.Len(t, fake.puts, 1)
	require.Equal(t, types.ObjectCannedACLPublicRead, fake.puts[0].ACL)
	require.Equal(t, "image/png", aws.ToString(fake.puts[0].ContentType))
	require.Equal(t, 1, fake.heads)
	require.Zero(t, fake.creates)

	// the bucket check runs only once per process
	g.Upload(context.Background(), File{Name: "a.png", ContentType: "image/png", Size: int64(len(payload)), Body: bytes.NewReader(payload)}, 0)
	require.Equal(t, 1, fake.heads)
}

func TestUploadCreatesMissingBucket(t *testing.T) {
	fake := &fakeObjects{headErr: &types.NotFound{}}
	g := newTestGateway(fake)

	res := g.Upload(context.Background(), File{Name: "logo.svg", ContentType: "image/svg+xml", Size: 5, Body: strings.NewReader("<svg/>")}, 0)

	require.True(t, res.Success, res.Error)
	require.Equal(t, 1, fake.creates)
	require.Zero(t, res.Width)
}

func TestUploadRetriesEnsureAfterFailure(t *testing.T) {
	fake := &fakeObjects{headErr: errors.New("access denied")}
	g := newTestGateway(fake)
	file := func() File {
		return File{Name: "logo.svg", ContentType: "image/svg+xml", Size: 6, Body: strings.NewReader("<svg/>")}
	}

	res := g.Upload(context.Background(), file(), 0)
	require.False(t, res.Success)
	require.Zero(t, fake.creates)
	require.Empty(t, fake.puts)

	fake.headErr = nil
	res = g.Upload(context.Background(), file(), 0)
	require.True(t, res.Success, res.Error)
	require.Equal(t, 2, fake.heads)
}

func TestUploadRejectsCorruptRaster(t *testing.T) {
	fake := &fakeObjects{}
	g := newTestGateway(fake)

	res := g.Upload(context.Background(), File{Name: "broken.jpg", ContentType: "image/jpeg", Size: 4, Body: strings.NewReader("nope")}, 0)

	require.False(t, res.Success)
	require.Equal(t, msgInvalidImage, res.Error)
	require.Zero(t, fake.calls())
}

func TestDeleteRejectsForeignURL(t *testing.T) {
	fake := &fakeObjects{}
	g := newTestGateway(fake)

	for _, raw := range []string{
		"https://cdn.example.com/portfolio/a.png",
		"http://localhost:9000/other/a.png",
		"http://localhost:9000/portfolio/",
		"",
	} {
		res := g.Delete(context.Background(), raw)
		require.False(t, res.Success, raw)
	}
	require.Empty(t, fake.deletes)
}

func TestDeleteUsesTrailingSegmentAsKey(t *testing.T) {
	fake := &fakeObjects{}
	g := newTestGateway(fake)

	res := g.Delete(context.Background(), "http://localhost:9000/portfolio/abc.webp")

	require.True(t, res.Success)
	require.Equal(t, []string{"abc.webp"}, fake.deletes)
	require.True(t, g.Owns("http://localhost:9000/portfolio/abc.webp"))
}

func TestDeleteReportsStorageFailure(t *testing.T) {
	fake := &fakeObjects{deleteErr: errors.New("boom")}
	g := newTestGateway(fake)

	res := g.Delete(context.Background(), "http://localhost:9000/portfolio/abc.webp")

	require.False(t, res.Success)
	require.Equal(t, msgDeleteFailed, res.Error)
}
