package drive

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/time/rate"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/teemow/gdrive/internal/config"
	"github.com/teemow/gdrive/internal/google"
	"github.com/teemow/gdrive/internal/logging"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"

	// listPageSize bounds a single listing to one page.
	listPageSize = 1000

	// requestsPerSecond is a client-side ceiling well below the Drive API
	// per-user quota, so bursts of invocations from scripts stay clean.
	requestsPerSecond = 10
)

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a Drive client authenticated with the stored OAuth
// credentials. Write selects between the full and readonly scopes.
func NewClient(ctx context.Context, cfg config.Config, write bool) (*Client, error) {
	httpClient, err := google.HTTPClient(ctx, cfg, write)
	if err != nil {
		return nil, err
	}

	service, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return NewClientFromService(service), nil
}

// NewClientFromService wraps an existing Drive service. Tests use this with
// a service pointed at a local endpoint.
func NewClientFromService(service *drive.Service) *Client {
	return &Client{
		service: service,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		logger:  slog.Default(),
	}
}

// List returns the files directly inside a folder, folders first, excluding
// trashed items. A single bounded page is requested; callers that need more
// should narrow the folder instead.
func (c *Client) List(ctx context.Context, folderID string) ([]*FileInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	c.logger.Debug("listing files", logging.Operation("drive.list"), logging.Folder(folderID))

	fileList, err := c.service.Files.List().
		Context(ctx).
		Q(fmt.Sprintf("'%s' in parents and trashed = false", folderID)).
		Fields("files(id, name, mimeType, size, modifiedTime, trashed)").
		OrderBy("folder,name").
		PageSize(listPageSize).
		IncludeItemsFromAllDrives(true).
		SupportsAllDrives(true).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*FileInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileInfo(f)
	}

	return files, nil
}

// Upload uploads one file into a folder. The root folder is implicit, so no
// parent is set for it.
func (c *Client) Upload(ctx context.Context, name string, content io.Reader, folderID string) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if content == nil {
		return nil, fmt.Errorf("file content is required")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	c.logger.Debug("uploading file", logging.Operation("drive.upload"), logging.Folder(folderID))

	file := &drive.File{Name: name}
	if folderID != "" && folderID != "root" {
		file.Parents = []string{folderID}
	}

	driveFile, err := c.service.Files.Create(file).
		Context(ctx).
		Media(content).
		Fields("id, name, mimeType, size, webViewLink").
		SupportsAllDrives(true).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return convertToFileInfo(driveFile), nil
}

// Get retrieves metadata for a specific file
func (c *Client) Get(ctx context.Context, fileID string) (*FileInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	c.logger.Debug("fetching metadata", logging.Operation("drive.get"), logging.File(fileID))

	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields("id, name, mimeType, size, modifiedTime").
		SupportsAllDrives(true).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	return convertToFileInfo(file), nil
}

// Download fetches the content of a file. The caller owns the returned body.
func (c *Client) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	c.logger.Debug("downloading file", logging.Operation("drive.download"), logging.File(fileID))

	resp, err := c.service.Files.Get(fileID).
		Context(ctx).
		SupportsAllDrives(true).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}

	return resp.Body, nil
}

// Trash moves a file to the trash.
func (c *Client) Trash(ctx context.Context, fileID string) (*FileInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	c.logger.Debug("trashing file", logging.Operation("drive.trash"), logging.File(fileID))

	driveFile, err := c.service.Files.Update(fileID, &drive.File{Trashed: true}).
		Context(ctx).
		Fields("id, name, trashed").
		SupportsAllDrives(true).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to trash file %s: %w", fileID, err)
	}

	return convertToFileInfo(driveFile), nil
}

// CreateFolder creates a new folder inside the given parent.
func (c *Client) CreateFolder(ctx context.Context, name, folderID string) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("folder name is required")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	c.logger.Debug("creating folder", logging.Operation("drive.mkdir"), logging.Folder(folderID))

	file := &drive.File{
		Name:     name,
		MimeType: FolderMimeType,
	}
	if folderID != "" && folderID != "root" {
		file.Parents = []string{folderID}
	}

	driveFile, err := c.service.Files.Create(file).
		Context(ctx).
		Fields("id, name, mimeType, webViewLink").
		SupportsAllDrives(true).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return convertToFileInfo(driveFile), nil
}

// SampleList performs a minimal files.list call. The doctor command uses it
// as a connectivity probe.
func (c *Client) SampleList(ctx context.Context) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	fileList, err := c.service.Files.List().
		Context(ctx).
		PageSize(1).
		Fields("files(id)").
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to list files: %w", err)
	}

	return len(fileList.Files), nil
}
