package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// SourceTag marks every object and metadata document this tool produces.
	SourceTag = "dot-nft-cli"

	DefaultGateway = "https://nftstorage.link"
)

var ErrNoCID = errors.New("object store returned no content identifier")

// ObjectStore is a content-addressed bucket: it stores body under key and reports the CID.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, attrs map[string]string) (cid string, err error)
}

// UploadResult locates a pinned object.
type UploadResult struct {
	CID        string `json:"cid"`
	GatewayURL string `json:"gatewayUrl"`
	URI        string `json:"uri"`
	FileName   string `json:"fileName"`
}

// Metadata is the JSON document stored for a collection or an item.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Source      string `json:"source"`
}

type Uploader struct {
	store   ObjectStore
	gateway string
	now     func() time.Time
}

type Option func(*Uploader)

func WithGateway(url string) Option {
	return func(u *Uploader) {
		if url != "" {
			u.gateway = strings.TrimRight(url, "/")
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Uploader) { u.now = now }
}

func NewUploader(store ObjectStore, opts ...Option) *Uploader {
	u := &Uploader{store: store, gateway: DefaultGateway, now: time.Now}
	for _, o := range opts {
		o(u)
	}
	return u
}

// UploadFile reads path and stores it under images/<basename>-<unix millis>.
func (u *Uploader) UploadFile(ctx context.Context, path string) (UploadResult, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return UploadResult{}, errors.Wrapf(err, "read image %s", path)
	}
	return u.UploadImage(ctx, filepath.Base(path), body)
}

func (u *Uploader) UploadImage(ctx context.Context, name string, body []byte) (UploadResult, error) {
	fileName := name + "-" + u.stamp()
	attrs := map[string]string{"application": SourceTag}
	return u.put(ctx, "images/"+fileName, fileName, body, attrs)
}

// UploadMetadata stores md as indented JSON under metadata/metadata-<slug>-<unix millis>.json.
func (u *Uploader) UploadMetadata(ctx context.Context, md Metadata) (UploadResult, error) {
	if md.Source == "" {
		md.Source = SourceTag
	}
	body, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return UploadResult{}, errors.Wrap(err, "encode metadata")
	}
	fileName := "metadata-" + Slug(md.Name) + "-" + u.stamp() + ".json"
	attrs := map[string]string{"application": SourceTag, "type": "metadata"}
	return u.put(ctx, "metadata/"+fileName, fileName, body, attrs)
}

func (u *Uploader) put(ctx context.Context, key, fileName string, body []byte, attrs map[string]string) (UploadResult, error) {
	cid, err := u.store.Put(ctx, key, body, attrs)
	if err != nil {
		return UploadResult{}, errors.Wrapf(err, "upload %s", key)
	}
	if cid == "" {
		return UploadResult{}, errors.Wrapf(ErrNoCID, "upload %s", key)
	}
	return u.Locate(cid, fileName), nil
}

// Locate builds both URL forms for a CID.
func (u *Uploader) Locate(cid, fileName string) UploadResult {
	return UploadResult{
		CID:        cid,
		GatewayURL: u.gateway + "/ipfs/" + cid,
		URI:        "ipfs://" + cid,
		FileName:   fileName,
	}
}

func (u *Uploader) stamp() string {
	return strconv.FormatInt(u.now().UnixMilli(), 10)
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug lower-cases name and joins whitespace runs with '-'.
func Slug(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
