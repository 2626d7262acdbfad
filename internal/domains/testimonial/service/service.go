package service

import (
	"context"
	"fmt"

	"decor/config"
	"decor/infras/kafka"
	"decor/infras/otel"
	"decor/internal/domains/catalog"
	"decor/internal/domains/testimonial/model"
	"decor/internal/domains/testimonial/model/dto"
	"decor/internal/domains/testimonial/repository"
	"decor/shared"
	"decor/shared/cache"
	"decor/shared/constant"
	gDto "decor/shared/dto"
	"decor/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllTestimonial = "testimonial:gets"
	cacheCountTestimonial  = "testimonial:count"

	eventTestimonialCreated = "catalog.testimonial.created"
	eventTestimonialDeleted = "catalog.testimonial.deleted"
)

type Testimonial interface {
	Create(ctx context.Context, req dto.CreateTestimonialRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTestimonialsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Testimonial
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	events  kafka.Client
	catalog catalog.Refresher
}

func New(
	repo repository.Testimonial,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	events kafka.Client,
	catalog catalog.Refresher,
) Testimonial {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		events:  events,
		catalog: catalog,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTestimonialRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	mod := req.ToModel(user)
	if err = s.repo.Insert(ctx, mod); err != nil {
		return err
	}

	s.propagateWrite(ctx, eventTestimonialCreated, mod.ID)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTestimonialsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTestimonial, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for testimonials")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count testimonials")

		return res, fmt.Errorf("failed to count testimonials: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonials")

		return res, fmt.Errorf("failed to get testimonials: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save testimonials to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTestimonial, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for testimonial count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count testimonials")

		return res, fmt.Errorf("failed to count testimonials: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save testimonial count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if testimonial exists")

		return fmt.Errorf("failed to check if testimonial exists: %w", err)
	}

	if !exist {
		log.Error().Msg("testimonial not found")

		return failure.NotFound("testimonial not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete testimonial")

		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	s.propagateWrite(ctx, eventTestimonialDeleted, id)

	return nil
}

func (s *serviceImpl) propagateWrite(ctx context.Context, event, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTestimonial)
		shared.InvalidateCaches(c, s.cache, cacheCountTestimonial)

		s.catalog.Refresh(c)

		if err := s.events.SendMessages(c, s.cfg.Kafka.EventTopic, kafka.Message{
			Key:   event,
			Value: map[string]string{"id": id},
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish testimonial event")
		}
	}()
}
