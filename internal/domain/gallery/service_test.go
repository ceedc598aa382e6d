package gallery

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/capturesangli/studio-api/internal/pkg/imaging"
)

type fakeRepo struct {
	images    map[uuid.UUID]*Image
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{images: make(map[uuid.UUID]*Image)}
}

func (f *fakeRepo) Create(ctx context.Context, image *Image) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.images[image.ID] = image
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Image, error) {
	return f.images[id], nil
}

func (f *fakeRepo) List(ctx context.Context, category *Category) ([]*Image, error) {
	var out []*Image
	for _, img := range f.images {
		if category == nil || img.Category == *category {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.images, id)
	return nil
}

type fakeStorage struct {
	objects map[string][]byte
	putErrs map[string]error
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	if err := f.putErrs[key]; err != nil {
		return err
	}
	data, _ := io.ReadAll(body)
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) GetURL(key string) string {
	return "https://cdn.capturesangli.com/" + key
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1200, 800))
	for y := 0; y < 800; y++ {
		for x := 0; x < 1200; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestService(repo *fakeRepo, store *fakeStorage) *Service {
	return NewService(repo, store, imaging.NewProcessor(imaging.DefaultConfig()))
}

func TestUploadStoresVariantsAndRow(t *testing.T) {
	repo := newFakeRepo()
	store := newFakeStorage()
	svc := newTestService(repo, store)

	img, err := svc.Upload(context.Background(), "Haldi ceremony", CategoryWedding, "haldi.png", bytes.NewReader(testPNG(t)), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.objects) != 2 {
		t.Fatalf("expected 2 stored objects, got %d", len(store.objects))
	}
	webKey := "gallery/" + img.ID.String() + ".png"
	thumbKey := "gallery/" + img.ID.String() + "_thumb.png"
	if _, ok := store.objects[webKey]; !ok {
		t.Errorf("web variant %s not stored", webKey)
	}
	if _, ok := store.objects[thumbKey]; !ok {
		t.Errorf("thumbnail %s not stored", thumbKey)
	}

	if len(repo.images) != 1 {
		t.Fatalf("expected 1 gallery row, got %d", len(repo.images))
	}
	if !strings.HasSuffix(img.URL, webKey) {
		t.Errorf("unexpected url %s", img.URL)
	}
	if !strings.HasSuffix(img.ThumbURL, thumbKey) {
		t.Errorf("unexpected thumb url %s", img.ThumbURL)
	}
}

func TestUploadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		filename string
		body     []byte
		wantErr  error
	}{
		{name: "unknown category", category: Category("landscape"), filename: "a.png", wantErr: ErrInvalidCategory},
		{name: "unsupported extension", category: CategoryEvent, filename: "clip.gif", wantErr: ErrInvalidImage},
		{name: "not an image", category: CategoryEvent, filename: "a.jpg", body: []byte("plain text"), wantErr: ErrInvalidImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			store := newFakeStorage()
			svc := newTestService(repo, store)

			_, err := svc.Upload(context.Background(), "x", tt.category, tt.filename, bytes.NewReader(tt.body), 0)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(store.objects) != 0 {
				t.Error("nothing should be stored on rejected upload")
			}
			if len(repo.images) != 0 {
				t.Error("no row should be created on rejected upload")
			}
		})
	}
}

func TestUploadCleansUpOrphan(t *testing.T) {
	repo := newFakeRepo()
	store := newFakeStorage()
	svc := newTestService(repo, store)

	// First Put succeeds, second (thumbnail) fails for any key
	store.putErrs = map[string]error{}
	failingStore := &thumbFailStorage{fakeStorage: store}

	svc = NewService(repo, failingStore, imaging.NewProcessor(imaging.DefaultConfig()))

	_, err := svc.Upload(context.Background(), "x", CategoryPortrait, "a.png", bytes.NewReader(testPNG(t)), 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(store.objects) != 0 {
		t.Errorf("web variant should be cleaned up, still stored: %v", store.objects)
	}
	if len(repo.images) != 0 {
		t.Error("no row should be created after failed upload")
	}
}

// thumbFailStorage fails every Put after the first one.
type thumbFailStorage struct {
	*fakeStorage
	puts int
}

func (f *thumbFailStorage) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	f.puts++
	if f.puts > 1 {
		return errors.New("upload interrupted")
	}
	return f.fakeStorage.Put(ctx, key, body, contentType)
}

func TestDeleteRemovesRowAndObjects(t *testing.T) {
	repo := newFakeRepo()
	store := newFakeStorage()
	svc := newTestService(repo, store)

	img, err := svc.Upload(context.Background(), "x", CategoryEvent, "b.jpg", bytes.NewReader(testPNG(t)), 0)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), img.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.images) != 0 {
		t.Error("row should be deleted")
	}
	if len(store.objects) != 0 {
		t.Errorf("stored objects should be deleted, left: %v", store.objects)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeStorage())

	err := svc.Delete(context.Background(), uuid.New())
	if !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestListImagesRejectsUnknownCategory(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeStorage())

	bad := Category("landscape")
	if _, err := svc.ListImages(context.Background(), &bad); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestServicesCatalog(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeStorage())

	services := svc.Services()
	if len(services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(services))
	}
	if services[0].Title != "Wedding Photography" {
		t.Errorf("unexpected first service %q", services[0].Title)
	}
}
