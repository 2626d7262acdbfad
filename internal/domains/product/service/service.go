package service

import (
	"context"
	"fmt"

	"decor/config"
	"decor/infras/kafka"
	"decor/infras/otel"
	"decor/infras/s3"
	"decor/internal/domains/catalog"
	"decor/internal/domains/product/model"
	"decor/internal/domains/product/model/dto"
	"decor/internal/domains/product/repository"
	serviceModel "decor/internal/domains/service/model"
	serviceDto "decor/internal/domains/service/model/dto"
	serviceRepo "decor/internal/domains/service/repository"
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
	cacheGetProduct    = "product:get"
	cacheGetAllProduct = "product:gets"
	cacheCountProduct  = "product:count"

	eventProductUpserted = "catalog.product.upserted"
)

type Product interface {
	Upsert(ctx context.Context, req dto.UpsertProductRequest, serviceSlug, itemSlug string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProductsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, serviceSlug, itemSlug string) (dto.ProductResponse, error)
	UploadImage(ctx context.Context, req dto.UploadImageRequest, serviceSlug, itemSlug string) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo     repository.Product
	services serviceRepo.Service
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
	events   kafka.Client
	catalog  catalog.Refresher
}

func New(
	repo repository.Product,
	services serviceRepo.Service,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	events kafka.Client,
	catalog catalog.Refresher,
) Product {
	return &serviceImpl{
		repo:     repo,
		services: services,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
		events:   events,
		catalog:  catalog,
	}
}

// Upsert creates or merges a product under a service. Pricing history drives
// the discount: it is recomputed from the effective old and new price on
// every write so the stored value never goes stale.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertProductRequest, serviceSlug, itemSlug string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	serviceSlug = serviceDto.Slugify(serviceSlug)
	itemSlug = serviceDto.Slugify(itemSlug)

	if serviceSlug == constant.Empty || itemSlug == constant.Empty {
		return failure.BadRequestFromString("service and item slugs are required")
	}

	parentExists, err := s.services.Exist(ctx, shared.FilterByID(serviceSlug, serviceModel.FieldSlug, serviceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check parent service")

		return fmt.Errorf("failed to check parent service: %w", err)
	}

	if !parentExists {
		return failure.NotFound("service not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := productFilter(serviceSlug, itemSlug)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check product existence")

		return err
	}

	if current.ID == constant.Empty {
		if err = s.repo.Insert(ctx, req.ToModel(serviceSlug, itemSlug, user, s.cfg.App.Business.Currency, s.cfg.App.Business.DeliveryEstimate)); err != nil {
			return err
		}
	} else {
		updatedFields := shared.TransformFields(req, user)

		if len(req.Images) > 0 {
			updatedFields[model.FieldImages] = pq.StringArray(req.Images)
		}

		if len(req.Tags) > 0 {
			updatedFields[model.FieldTags] = pq.StringArray(req.Tags)
		}

		price := current.Price
		if req.Price > 0 {
			price = req.Price
		}

		oldPrice := current.OldPrice
		if req.OldPrice > 0 {
			oldPrice = req.OldPrice
		}

		percent, text := dto.ComputeDiscount(oldPrice, price)
		updatedFields[model.FieldDiscountPercent] = percent
		updatedFields[model.FieldDiscountText] = text

		if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update product")

			return fmt.Errorf("failed to update product: %w", err)
		}
	}

	s.propagateWrite(ctx, serviceSlug, itemSlug)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProductsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProduct, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for products")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count products")

		return res, fmt.Errorf("failed to count products: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get products")

		return res, fmt.Errorf("failed to get products: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save products to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProduct, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for product count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count products")

		return res, fmt.Errorf("failed to count products: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save product count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, serviceSlug, itemSlug string) (res dto.ProductResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProduct, serviceSlug, itemSlug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for product")

		return res, nil
	}

	product, err := s.repo.Get(ctx, productFilter(serviceSlug, itemSlug))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product")

		return res, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == constant.Empty {
		return res, failure.NotFound("product not found") // nolint:wrapcheck
	}

	res.FromModel(product)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save product to cache")
		}
	}()

	return res, nil
}

// UploadImage stores the product image under
// services/{slug}/items/{itemSlug}_{unix} and then repoints the hero image.
func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest, serviceSlug, itemSlug string) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	serviceSlug = serviceDto.Slugify(serviceSlug)
	itemSlug = serviceDto.Slugify(itemSlug)
	filter := productFilter(serviceSlug, itemSlug)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check product existence")

		return res, fmt.Errorf("failed to check product existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("product not found") // nolint:wrapcheck
	}

	fileData, err := shared.ReadFileBytes(req.ImageFile)
	if err != nil {
		return res, err
	}

	directory := fmt.Sprintf("services/%s/items", serviceSlug)
	fileName := fmt.Sprintf("%s_%d%s", itemSlug, timezone.Now().Unix(), shared.FileExtension(req.Image.Filename))
	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	progressCh, resultCh := s.s3.UploadFileWithProgress(ctx, s.cfg.External.S3.BucketName, directory, fileName, contentType, fileData)

	go func() {
		for pct := range progressCh {
			log.Debug().Int("percent", pct).Str("file", fileName).Msg("product image upload progress")
		}
	}()

	result := <-resultCh
	if result.Err != nil {
		log.Error().Err(result.Err).Msg("failed to upload product image")

		return res, fmt.Errorf("failed to upload product image: %w", result.Err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldHeroImage:     result.URL,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update product image")

		return res, fmt.Errorf("failed to update product image: %w", err)
	}

	s.propagateWrite(ctx, serviceSlug, itemSlug)

	res.URL = result.URL

	return res, nil
}

func (s *serviceImpl) propagateWrite(ctx context.Context, serviceSlug, itemSlug string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProduct, serviceSlug, itemSlug)); err != nil {
			log.Error().Err(err).Msg("failed to delete product cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProduct)
		shared.InvalidateCaches(c, s.cache, cacheCountProduct)

		s.catalog.Refresh(c)

		if err := s.events.SendMessages(c, s.cfg.Kafka.EventTopic, kafka.Message{
			Key:   eventProductUpserted,
			Value: map[string]string{"service_slug": serviceSlug, "slug": itemSlug},
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish product event")
		}
	}()
}

func productFilter(serviceSlug, itemSlug string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    serviceSlug,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    itemSlug,
				Table:    model.TableName,
			},
		},
	}
}
