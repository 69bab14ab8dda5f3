package service

import (
	"context"
	"finedu_backend/internal/catalog"
	"finedu_backend/internal/config"
	"finedu_backend/internal/util"
	"finedu_backend/pkg/logger"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ContentService 管理课时媒体文件的上传
type ContentService struct {
	Catalog        *catalog.Catalog
	StorageService *StorageService
	Cfg            *config.Config
}

func NewContentService(cat *catalog.Catalog, storageService *StorageService, cfg *config.Config) *ContentService {
	return &ContentService{
		Catalog:        cat,
		StorageService: storageService,
		Cfg:            cfg,
	}
}

// LessonMedia 上传后的媒体信息
type LessonMedia struct {
	CourseID  uint    `json:"courseId"`
	LessonID  uint    `json:"lessonId"`
	URL       string  `json:"url"`
	Thumbnail string  `json:"thumbnail"`
	Duration  float64 `json:"duration"`
	Size      int64   `json:"size"`
	Format    string  `json:"format"`
}

// UploadLessonVideo 上传课时视频：校验扩展名和文件内容、探测时长、
// 生成缩略图后推到存储后端
func (s *ContentService) UploadLessonVideo(ctx context.Context, courseID, lessonID uint, file *multipart.FileHeader) (*LessonMedia, error) {
	if _, ok := s.Catalog.Lesson(courseID, lessonID); !ok {
		return nil, util.ErrLessonNotFound
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	isValidType := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			isValidType = true
			break
		}
	}
	if !isValidType {
		return nil, fmt.Errorf("unsupported video extension: %s", ext)
	}

	// 临时保存到本地进行处理
	tempDir := filepath.Join(s.Cfg.Storage.LocalPath, "temp")
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, err
	}

	videoPath := filepath.Join(tempDir, fmt.Sprintf("temp_video_%d%s", time.Now().UnixNano(), ext))
	defer os.Remove(videoPath)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// 深度验证文件内容
	if _, err := util.ValidateMimeType(src, []string{util.MimeVideo}); err != nil {
		return nil, fmt.Errorf("invalid video content: %w", err)
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	dst, err := os.Create(videoPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	videoFilename := fmt.Sprintf("videos/%d/%d/%s_%s%s",
		courseID, lessonID,
		time.Now().Format("20060102150405"), util.GenerateRandomString(6), ext)

	videoURL, err := s.StorageService.UploadFile(ctx, videoFilename, videoPath, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	// 生成缩略图，失败用默认图兜底
	thumbnailFilename := strings.TrimSuffix(videoFilename, ext) + ".jpg"
	thumbnailPath := filepath.Join(tempDir, fmt.Sprintf("temp_thumb_%d.jpg", time.Now().UnixNano()))
	defer os.Remove(thumbnailPath)

	var thumbnailURL string
	if err := util.GenerateThumbnail(videoPath, thumbnailPath, "3"); err != nil {
		logger.Log.Error("thumbnail generation failed", zap.Error(err))
		thumbnailURL = s.StorageService.GetURL("thumbnails/default-video-thumbnail.jpg")
	} else {
		thumbnailURL, err = s.StorageService.UploadFile(ctx, thumbnailFilename, thumbnailPath, "image/jpeg")
		if err != nil {
			thumbnailURL = s.StorageService.GetURL("thumbnails/default-video-thumbnail.jpg")
		}
	}

	var duration float64
	if info, err := util.GetVideoInfo(videoPath); err == nil {
		duration = info.Duration
	}

	return &LessonMedia{
		CourseID:  courseID,
		LessonID:  lessonID,
		URL:       videoURL,
		Thumbnail: thumbnailURL,
		Duration:  duration,
		Size:      file.Size,
		Format:    strings.TrimPrefix(ext, "."),
	}, nil
}
