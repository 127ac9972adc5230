package initializers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sahil-jamadar/new-couture-project/catalog"
)

const defaultCatalogPath = "data/catalog.json"

// LoadCatalog builds the static catalog the process serves for its whole
// lifetime. The document comes from S3 when CATALOG_BUCKET is set, otherwise
// from a local file.
func LoadCatalog() (*catalog.Catalog, error) {
	if bucket := os.Getenv("CATALOG_BUCKET"); bucket != "" {
		return loadCatalogFromS3(bucket)
	}

	path := os.Getenv("CATALOG_PATH")
	if path == "" {
		path = defaultCatalogPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	cat, err := catalog.Load(data)
	if err != nil {
		return nil, err
	}
	log.Printf("Catalog loaded from %s with %d products.", path, len(cat.All()))
	return cat, nil
}

func loadCatalogFromS3(bucket string) (*catalog.Catalog, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	key := os.Getenv("CATALOG_OBJECT_KEY")
	if key == "" {
		key = "catalog.json"
	}

	client := s3.NewFromConfig(cfg)
	downloader := manager.NewDownloader(client)

	buf := manager.NewWriteAtBuffer(nil)
	if _, err := downloader.Download(context.TODO(), buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, fmt.Errorf("download catalog from s3://%s/%s: %w", bucket, key, err)
	}

	cat, err := catalog.Load(buf.Bytes())
	if err != nil {
		return nil, err
	}
	log.Printf("Catalog loaded from s3://%s/%s with %d products.", bucket, key, len(cat.All()))
	return cat, nil
}
