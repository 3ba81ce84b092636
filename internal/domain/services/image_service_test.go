package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/infrastructure/storage"
)

// makeFileHeader builds a real multipart file header the way an HTTP upload
// would deliver it
func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 4096)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func newImageService(t *testing.T, db *gorm.DB) (InterfaceImageService, string) {
	t.Helper()
	root := t.TempDir()
	media := storage.NewMediaStorage(root, "/media/")
	return NewImageService(db, testConfig(), media), root
}

func TestAddBuildingImageStoresFile(t *testing.T) {
	db := newTestDB(t)
	svc, root := newImageService(t, db)
	u := seedUser(t, db, "uploader", models.RoleStaff)
	b := seedBuilding(t, db, "Block A")

	fh := makeFileHeader(t, "front.jpg", []byte("jpeg-bytes"))
	img, err := svc.AddBuildingImage(asActor(u), b.ID, fh, "front view", true)
	require.NoError(t, err)
	assert.True(t, img.IsMain)
	assert.Equal(t, "front view", img.Title)
	assert.Equal(t, ".jpg", filepath.Ext(img.Path))

	stored, err := os.ReadFile(filepath.Join(root, img.Path))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), stored)
}

func TestSecondMainImageRejected(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newImageService(t, db)
	u := seedUser(t, db, "uploader", models.RoleStaff)
	b := seedBuilding(t, db, "Block A")

	first, err := svc.AddBuildingImage(asActor(u), b.ID,
		makeFileHeader(t, "a.jpg", []byte("a")), "", true)
	require.NoError(t, err)

	_, err = svc.AddBuildingImage(asActor(u), b.ID,
		makeFileHeader(t, "b.jpg", []byte("b")), "", true)
	assert.Equal(t, code.ErrMainImageExists, apperr.CodeOf(err))

	// The existing main image is untouched
	var reloaded models.BuildingImage
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.True(t, reloaded.IsMain)

	// A non-main upload is still fine
	second, err := svc.AddBuildingImage(asActor(u), b.ID,
		makeFileHeader(t, "c.jpg", []byte("c")), "", false)
	require.NoError(t, err)

	// And flagging it while another main exists fails too
	err = svc.SetMainBuildingImage(asActor(u), b.ID, second.ID)
	assert.Equal(t, code.ErrMainImageExists, apperr.CodeOf(err))
}

func TestSetMainAfterDeletingOldMain(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newImageService(t, db)
	u := seedUser(t, db, "uploader", models.RoleStaff)
	device := seedDevice(t, db, "INV-600")

	first, err := svc.AddDeviceImage(asActor(u), device.ID,
		makeFileHeader(t, "a.jpg", []byte("a")), "", true)
	require.NoError(t, err)
	second, err := svc.AddDeviceImage(asActor(u), device.ID,
		makeFileHeader(t, "b.jpg", []byte("b")), "", false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDeviceImage(asActor(u), device.ID, first.ID))
	require.NoError(t, svc.SetMainDeviceImage(asActor(u), device.ID, second.ID))

	var reloaded models.DeviceImage
	require.NoError(t, db.First(&reloaded, second.ID).Error)
	assert.True(t, reloaded.IsMain)
}

func TestDeleteImageRemovesFile(t *testing.T) {
	db := newTestDB(t)
	svc, root := newImageService(t, db)
	u := seedUser(t, db, "uploader", models.RoleStaff)
	b := seedBuilding(t, db, "Block A")
	room := seedRoom(t, db, b.ID, "101")

	img, err := svc.AddRoomImage(asActor(u), room.ID,
		makeFileHeader(t, "lab.png", []byte("png")), "", false)
	require.NoError(t, err)

	full := filepath.Join(root, img.Path)
	_, err = os.Stat(full)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoomImage(asActor(u), room.ID, img.ID))
	_, err = os.Stat(full)
	assert.True(t, os.IsNotExist(err))

	err = svc.DeleteRoomImage(asActor(u), room.ID, img.ID)
	assert.Equal(t, code.ErrImageNotFound, apperr.CodeOf(err))
}
