package service

import (
	"context"
	"fmt"

	"decor/config"
	"decor/infras/kafka"
	"decor/infras/otel"
	"decor/infras/s3"
	"decor/internal/domains/catalog"
	"decor/internal/domains/moment/model"
	"decor/internal/domains/moment/model/dto"
	"decor/internal/domains/moment/repository"
	"decor/shared"
	"decor/shared/cache"
	"decor/shared/constant"
	gDto "decor/shared/dto"
	"decor/shared/failure"
	"decor/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllMoment = "moment:gets"
	cacheCountMoment  = "moment:count"

	eventMomentCreated = "catalog.moment.created"
	eventMomentDeleted = "catalog.moment.deleted"
)

type Moment interface {
	Create(ctx context.Context, req dto.CreateMomentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMomentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Moment
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	s3      s3.S3
	events  kafka.Client
	catalog catalog.Refresher
}

func New(
	repo repository.Moment,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	events kafka.Client,
	catalog catalog.Refresher,
) Moment {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		s3:      s3,
		events:  events,
		catalog: catalog,
	}
}

// Create stores a gallery moment. When a file is attached it is uploaded
// first; the row is only written once the object is durable.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMomentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL := req.ImageURL

	if req.Image != nil {
		fileData, err := shared.ReadFileBytes(req.ImageFile)
		if err != nil {
			return err
		}

		fileName := fmt.Sprintf("%d_%s", timezone.Now().Unix(), req.Image.Filename)
		contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

		progressCh, resultCh := s.s3.UploadFileWithProgress(ctx, s.cfg.External.S3.BucketName, "moments", fileName, contentType, fileData)

		go func() {
			for pct := range progressCh {
				log.Debug().Int("percent", pct).Str("file", fileName).Msg("moment upload progress")
			}
		}()

		result := <-resultCh
		if result.Err != nil {
			log.Error().Err(result.Err).Msg("failed to upload moment image")

			return fmt.Errorf("failed to upload moment image: %w", result.Err)
		}

		imageURL = result.URL
	}

	if imageURL == constant.Empty {
		return failure.BadRequestFromString("either an image file or image_url is required")
	}

	mod := req.ToModel(user, imageURL)
	if err = s.repo.Insert(ctx, mod); err != nil {
		return err
	}

	s.propagateWrite(ctx, eventMomentCreated, mod.ID)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMomentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMoment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for moments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count moments")

		return res, fmt.Errorf("failed to count moments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get moments")

		return res, fmt.Errorf("failed to get moments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save moments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMoment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for moment count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count moments")

		return res, fmt.Errorf("failed to count moments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save moment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if moment exists")

		return fmt.Errorf("failed to check if moment exists: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("moment not found")

		return failure.NotFound("moment not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete moment")

		return fmt.Errorf("failed to delete moment: %w", err)
	}

	// Best effort: a failed object delete does not fail the request.
	bucketName := s.cfg.External.S3.BucketName
	if objectName := s.s3.GetObjectNameFromURL(bucketName, current.Image); objectName != constant.Empty {
		_ = s.s3.DeleteFile(ctx, bucketName, constant.Empty, objectName)
	}

	s.propagateWrite(ctx, eventMomentDeleted, id)

	return nil
}

func (s *serviceImpl) propagateWrite(ctx context.Context, event, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMoment)
		shared.InvalidateCaches(c, s.cache, cacheCountMoment)

		s.catalog.Refresh(c)

		if err := s.events.SendMessages(c, s.cfg.Kafka.EventTopic, kafka.Message{
			Key:   event,
			Value: map[string]string{"id": id},
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish moment event")
		}
	}()
}
