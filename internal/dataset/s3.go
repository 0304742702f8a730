package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/config"
)

// Fetcher загружает справочник больниц из S3-совместимого object storage.
// Загрузка выполняется один раз за время жизни процесса при бутстрапе;
// полученный блоб неизменяем и передается по ссылке в клиент ранжирования.
type Fetcher struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch генерирует подписанный GET URL для объекта справочника и скачивает
// JSON-документ по нему.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(f.cfg.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(f.cfg.S3AccessKey, f.cfg.S3SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if f.cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(f.cfg.S3Endpoint)
		}
	})

	presigner := s3.NewPresignClient(client)
	signed, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.cfg.S3Bucket),
		Key:    aws.String(f.cfg.S3DatasetKey),
	}, s3.WithPresignExpires(f.cfg.S3URLExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign dataset URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, signed.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset fetch returned status: %d", resp.StatusCode)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset body: %w", err)
	}

	if !json.Valid(blob) {
		return nil, fmt.Errorf("dataset object is not valid JSON")
	}

	return blob, nil
}
