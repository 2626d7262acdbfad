package service

import (
	"context"
	"fmt"

	"decor/config"
	"decor/infras/kafka"
	"decor/infras/otel"
	"decor/infras/s3"
	"decor/internal/domains/catalog"
	"decor/internal/domains/service/model"
	"decor/internal/domains/service/model/dto"
	"decor/internal/domains/service/repository"
	"decor/shared"
	"decor/shared/cache"
	"decor/shared/constant"
	gDto "decor/shared/dto"
	"decor/shared/failure"
	"decor/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
	cacheCountService  = "service:count"

	eventServiceUpserted = "catalog.service.upserted"
)

type Service interface {
	Upsert(ctx context.Context, req dto.UpsertServiceRequest, slug string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, slug string) (dto.ServiceResponse, error)
	UploadHeroImage(ctx context.Context, req dto.UploadImageRequest, slug string) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo    repository.Service
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	s3      s3.S3
	events  kafka.Client
	catalog catalog.Refresher
}

func New(
	repo repository.Service,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	events kafka.Client,
	catalog catalog.Refresher,
) Service {
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

// Upsert creates or merges a service identified by slug. The slug is the
// identity and never changes; on update only the provided fields overwrite
// the stored ones.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertServiceRequest, slug string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	slug = dto.Slugify(slug)
	if slug == constant.Empty {
		return failure.BadRequestFromString("service slug is required")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(slug, model.FieldSlug, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check service existence")

		return err
	}

	if current.ID == constant.Empty {
		if err = s.repo.Insert(ctx, req.ToModel(slug, user)); err != nil {
			return err
		}
	} else {
		updatedFields := shared.TransformFields(req, user)
		if len(req.Features) > 0 {
			updatedFields[model.FieldFeatures] = pq.StringArray(req.Features)
		}

		if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update service")

			return fmt.Errorf("failed to update service: %w", err)
		}
	}

	s.propagateWrite(ctx, slug)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, slug string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetService, slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service")

		return res, nil
	}

	svc, err := s.repo.Get(ctx, shared.FilterByID(slug, model.FieldSlug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == constant.Empty {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	res.FromModel(svc)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return res, nil
}

// UploadHeroImage stores the hero image under services/{slug}/hero_{unix} and
// only then points the service row at the new URL. A failed upload leaves the
// row untouched.
func (s *serviceImpl) UploadHeroImage(ctx context.Context, req dto.UploadImageRequest, slug string) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadHeroImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	slug = dto.Slugify(slug)
	filter := shared.FilterByID(slug, model.FieldSlug, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check service existence")

		return res, fmt.Errorf("failed to check service existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	fileData, err := shared.ReadFileBytes(req.ImageFile)
	if err != nil {
		return res, err
	}

	directory := fmt.Sprintf("services/%s", slug)
	fileName := fmt.Sprintf("hero_%d%s", timezone.Now().Unix(), shared.FileExtension(req.Image.Filename))
	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	progressCh, resultCh := s.s3.UploadFileWithProgress(ctx, s.cfg.External.S3.BucketName, directory, fileName, contentType, fileData)

	go func() {
		for pct := range progressCh {
			log.Debug().Int("percent", pct).Str("file", fileName).Msg("hero image upload progress")
		}
	}()

	result := <-resultCh
	if result.Err != nil {
		log.Error().Err(result.Err).Msg("failed to upload hero image")

		return res, fmt.Errorf("failed to upload hero image: %w", result.Err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldImage:         result.URL,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update service image")

		return res, fmt.Errorf("failed to update service image: %w", err)
	}

	s.propagateWrite(ctx, slug)

	res.URL = result.URL

	return res, nil
}

// propagateWrite fans a successful mutation out to the caches, the catalog
// snapshot, and the event stream.
func (s *serviceImpl) propagateWrite(ctx context.Context, slug string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetService, slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete service cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
		shared.InvalidateCaches(c, s.cache, cacheCountService)

		s.catalog.Refresh(c)

		if err := s.events.SendMessages(c, s.cfg.Kafka.EventTopic, kafka.Message{
			Key:   eventServiceUpserted,
			Value: map[string]string{"slug": slug},
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish service event")
		}
	}()
}

