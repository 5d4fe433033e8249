// Package media removes hosted listing images once nothing references them.
// Image URLs stay opaque to the rest of the system; only URLs that point at
// the configured CDN are ever touched.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

type Purger interface {
	// Purge deletes every hosted image in urls. Foreign URLs are skipped.
	Purge(ctx context.Context, urls []string) error
}

type Nop struct{}

func (Nop) Purge(context.Context, []string) error { return nil }

type CloudinaryPurger struct {
	cld    *cloudinary.Cloudinary
	logger *zap.SugaredLogger
}

func NewCloudinaryPurger(cloudinaryURL string, logger *zap.SugaredLogger) (*CloudinaryPurger, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CloudinaryPurger{cld: cld, logger: logger}, nil
}

func (p *CloudinaryPurger) Purge(ctx context.Context, urls []string) error {
	var errList []error
	for _, u := range urls {
		publicID, err := PublicIDFromURL(u)
		if err != nil {
			continue
		}

		res, err := p.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
		if err != nil {
			errList = append(errList, fmt.Errorf("destroy %s: %w", publicID, err))
			continue
		}
		p.logger.Debugw("image purged", "public_id", publicID, "result", res.Result)
	}
	return errors.Join(errList...)
}

var versionSegment = regexp.MustCompile(`^v[0-9]+$`)

var errNotHosted = errors.New("not a hosted image url")

// PublicIDFromURL extracts the Cloudinary public id from a delivery URL such
// as https://res.cloudinary.com/demo/image/upload/v1712/listings/soto.jpg
// (public id "listings/soto").
func PublicIDFromURL(photoURL string) (string, error) {
	parsedURL, err := url.Parse(photoURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}
	if !strings.HasSuffix(parsedURL.Host, "cloudinary.com") {
		return "", errNotHosted
	}

	pathParts := strings.Split(strings.Trim(parsedURL.Path, "/"), "/")
	for i, part := range pathParts {
		if part != "upload" || i+1 >= len(pathParts) {
			continue
		}
		rest := pathParts[i+1:]
		if versionSegment.MatchString(rest[0]) {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			break
		}
		id := strings.Join(rest, "/")
		return strings.TrimSuffix(id, path.Ext(id)), nil
	}

	return "", errNotHosted
}
