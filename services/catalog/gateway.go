package catalog

import (
	"context"
	"errors"

	"festquote/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LoadFailedNotice is shown when at least one collection could not be read.
var LoadFailedNotice = models.Notice{
	Kind:    models.NoticeError,
	Title:   "Erro ao carregar dados",
	Message: "Não foi possível carregar as opções do formulário.",
}

// ImageResolver turns a stored equipment image reference into a displayable URL.
type ImageResolver interface {
	ResolveImage(ref string) (string, error)
}

// Source is the read side of the data API the gateway depends on.
type Source interface {
	EventTypes(ctx context.Context, auth AuthSession) ([]models.EventType, error)
	Equipment(ctx context.Context, auth AuthSession) ([]models.Equipment, error)
	Services(ctx context.Context, auth AuthSession) ([]models.AdditionalService, error)
}

// Gateway loads the complete reference data set for one wizard session.
type Gateway struct {
	source Source
	images ImageResolver
	logger *zap.Logger
}

// NewGateway wires a gateway. images may be nil, in which case image references pass through.
func NewGateway(source Source, images ImageResolver, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{source: source, images: images, logger: logger}
}

// Load fetches the three collections concurrently. A failed collection stays empty and
// contributes one FetchError; the others are still returned.
func (g *Gateway) Load(ctx context.Context, auth AuthSession) (models.ReferenceDataSet, []*FetchError) {
	ref := models.NewReferenceDataSet()
	var etErr, eqErr, svErr error

	// each goroutine writes a disjoint field, and failures are collected rather than cancelling siblings
	var eg errgroup.Group
	eg.Go(func() error {
		ref.EventTypes, etErr = g.source.EventTypes(ctx, auth)
		return nil
	})
	eg.Go(func() error {
		ref.Equipment, eqErr = g.source.Equipment(ctx, auth)
		return nil
	})
	eg.Go(func() error {
		ref.Services, svErr = g.source.Services(ctx, auth)
		return nil
	})
	_ = eg.Wait()

	var failures []*FetchError
	for _, f := range []struct {
		col Collection
		err error
	}{
		{CollectionEventTypes, etErr},
		{CollectionEquipment, eqErr},
		{CollectionServices, svErr},
	} {
		if f.err == nil {
			continue
		}
		fe := asFetchError(f.col, f.err)
		g.logger.Warn("Failed to load reference collection",
			zap.String("collection", string(fe.Collection)),
			zap.Int("status", fe.StatusCode),
			zap.Error(fe.Err))
		failures = append(failures, fe)
	}

	ref = g.normalize(ref)
	g.resolveImages(ref.Equipment)
	return ref, failures
}

func (g *Gateway) normalize(ref models.ReferenceDataSet) models.ReferenceDataSet {
	if ref.EventTypes == nil {
		ref.EventTypes = []models.EventType{}
	}
	if ref.Equipment == nil {
		ref.Equipment = []models.Equipment{}
	}
	if ref.Services == nil {
		ref.Services = []models.AdditionalService{}
	}
	return ref
}

func (g *Gateway) resolveImages(items []models.Equipment) {
	if g.images == nil {
		return
	}
	for i := range items {
		if items[i].Image == "" {
			continue
		}
		resolved, err := g.images.ResolveImage(items[i].Image)
		if err != nil {
			g.logger.Debug("Keeping unresolved equipment image", zap.String("equipment", items[i].ID), zap.Error(err))
			continue
		}
		items[i].Image = resolved
	}
}

func asFetchError(col Collection, err error) *FetchError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &FetchError{Collection: col, Err: err}
}
