// Package assets talks to the image hosting service's REST API for uploads
// and deletions. Requests are signed with SHA-1 over the sorted parameter
// string in the way the service's own SDKs do.
package assets

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"adoptar/internal/common"
)

const (
	// Folder groups every uploaded image under a single namespace.
	Folder = "adopcion"

	// MaxFileSizeBytes caps uploads at 5 MB.
	MaxFileSizeBytes = 5 * 1024 * 1024

	defaultBaseUrl = "https://api.cloudinary.com/v1_1"
)

// AllowedFormats lists the accepted image file extensions.
var AllowedFormats = []string{"jpg", "jpeg", "png", "webp"}

var (
	ErrorFileTooLarge      = errors.New("file_too_large")
	ErrorInvalidFileFormat = errors.New("invalid_file_format")
	ErrorNotFound          = errors.New("not_found")
)

type Config struct {
	// BaseUrl overrides the API endpoint, used by tests
	BaseUrl string

	CloudName string
	ApiKey    string
	ApiSecret string
}

func (c Config) Validate() error {
	errs := []error{}
	if c.CloudName == "" {
		errs = append(errs, fmt.Errorf("missing cloud name"))
	}
	if c.ApiKey == "" {
		errs = append(errs, fmt.Errorf("missing api key"))
	}
	if c.ApiSecret == "" {
		errs = append(errs, fmt.Errorf("missing api secret"))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}
	if config.BaseUrl == "" {
		config.BaseUrl = defaultBaseUrl
	}
	return &Client{
		config:     config,
		httpClient: common.NewHttpClient(),
	}, nil
}

type UploadOpts struct {
	// Data is the raw image content
	Data []byte

	// Filename is the name the caller uploaded the file as; only its
	// extension is used for format validation
	Filename string
}

type UploadOutput struct {
	Url      string `json:"secure_url"`
	PublicId string `json:"public_id"`
}

// IsAllowedFormat reports whether the filename carries one of the
// accepted image extensions.
func IsAllowedFormat(filename string) bool {
	parts := strings.Split(filename, ".")
	if len(parts) < 2 {
		return false
	}
	extension := strings.ToLower(parts[len(parts)-1])
	for _, allowed := range AllowedFormats {
		if extension == allowed {
			return true
		}
	}
	return false
}

func (c *Client) Upload(opts UploadOpts) (*UploadOutput, error) {
	if len(opts.Data) > MaxFileSizeBytes {
		return nil, ErrorFileTooLarge
	}
	if !IsAllowedFormat(opts.Filename) {
		return nil, ErrorInvalidFileFormat
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"folder":    Folder,
		"timestamp": timestamp,
	}
	signature := c.sign(params)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	filePart, err := writer.CreateFormFile("file", opts.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := filePart.Write(opts.Data); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}
	writer.WriteField("api_key", c.config.ApiKey)
	writer.WriteField("timestamp", timestamp)
	writer.WriteField("signature", signature)
	writer.WriteField("folder", Folder)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalise multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.config.BaseUrl, c.config.CloudName)
	request, err := http.NewRequest(http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to execute upload request: %w", err)
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to upload image: status[%v] body[%s]", response.StatusCode, string(body))
	}

	var output UploadOutput
	if err := json.Unmarshal(body, &output); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %w", err)
	}
	return &output, nil
}

// Destroy removes an uploaded image by its public id.
func (c *Client) Destroy(publicId string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicId,
		"timestamp": timestamp,
	}
	signature := c.sign(params)

	form := fmt.Sprintf(
		"public_id=%s&timestamp=%s&api_key=%s&signature=%s",
		publicId, timestamp, c.config.ApiKey, signature,
	)
	endpoint := fmt.Sprintf("%s/%s/image/destroy", c.config.BaseUrl, c.config.CloudName)
	request, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to execute destroy request: %w", err)
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read destroy response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to destroy image: status[%v] body[%s]", response.StatusCode, string(body))
	}

	var result struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse destroy response: %w", err)
	}
	if result.Result != "ok" {
		return ErrorNotFound
	}
	return nil
}

// sign produces the request signature: SHA-1 over the alphabetically
// sorted key=value pairs joined with '&', with the secret appended.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, params[key]))
	}
	toSign := strings.Join(pairs, "&") + c.config.ApiSecret
	digest := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(digest[:])
}

// PublicIdFromPath maps the url-safe form of a public id back to the
// real one: slashes are not valid in a path segment so the first dash
// stands in for the folder separator.
func PublicIdFromPath(pathSegment string) string {
	return strings.Replace(pathSegment, "-", "/", 1)
}
