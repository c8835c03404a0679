package rekognition

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/krishirakshak/backend/internal/domain/entities"
	"github.com/krishirakshak/backend/pkg/config"
	apperrors "github.com/krishirakshak/backend/pkg/errors"
)

// Client detects labels in farm photos through Amazon Rekognition.
type Client struct {
	client        detectLabelsAPI
	maxLabels     int32
	minConfidence float32
	timeout       time.Duration
}

type detectLabelsAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// NewClient creates a new Rekognition client.
func NewClient(ctx context.Context, cfg *config.RekognitionConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("rekognition config is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &Client{
		client:        rekognition.NewFromConfig(awsCfg),
		maxLabels:     int32(cfg.MaxLabels),
		minConfidence: float32(cfg.MinConfidence),
		timeout:       timeout,
	}, nil
}

// DetectLabels returns labels found in the image, filtered by the configured
// confidence floor.
func (c *Client) DetectLabels(ctx context.Context, image []byte) ([]entities.Label, error) {
	if len(image) == 0 {
		return nil, apperrors.NewInputError("image is required")
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.DetectLabels(callCtx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(c.maxLabels),
		MinConfidence: aws.Float32(c.minConfidence),
	})
	if err != nil {
		return nil, mapDetectError(err)
	}

	labels := make([]entities.Label, 0, len(resp.Labels))
	for _, l := range resp.Labels {
		if l.Name == nil {
			continue
		}
		confidence := 0.0
		if l.Confidence != nil {
			confidence = float64(*l.Confidence)
		}
		labels = append(labels, entities.Label{
			Name:       *l.Name,
			Confidence: confidence,
		})
	}

	return labels, nil
}

func mapDetectError(err error) error {
	var invalidFormat *types.InvalidImageFormatException
	if errors.As(err, &invalidFormat) {
		return apperrors.NewInputError("unsupported image format, use JPEG or PNG")
	}

	var tooLarge *types.ImageTooLargeException
	if errors.As(err, &tooLarge) {
		return apperrors.NewInputError("image is too large")
	}

	var invalidParam *types.InvalidParameterException
	if errors.As(err, &invalidParam) {
		return apperrors.NewInputError("image could not be processed")
	}

	var throughput *types.ProvisionedThroughputExceededException
	var throttling *types.ThrottlingException
	if errors.As(err, &throughput) || errors.As(err, &throttling) {
		return apperrors.NewRemoteThrottledError("label detection rate limited", err)
	}

	var accessDenied *types.AccessDeniedException
	if errors.As(err, &accessDenied) {
		return apperrors.NewRemoteAccessDeniedError("label detection unavailable", err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewRemoteTimeoutError("label detection timed out", err)
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return apperrors.NewRemoteTimeoutError("label detection timed out", err)
		}
		return apperrors.NewRemoteNetworkError("label detection network failure", err)
	}

	return apperrors.NewRemoteGenericError("label detection failed", err)
}
