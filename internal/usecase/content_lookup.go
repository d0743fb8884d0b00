package usecase

import (
	"context"
	"time"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// contentLookup reads content items for baseline counts, going through the
// optional cache first.
type contentLookup struct {
	promptRepo contract.IPromptRepository
	postRepo   contract.IPostRepository
	cache      contract.IContentCache
	logger     usecasecontract.IAppLogger
}

func (l *contentLookup) prompt(ctx context.Context, id string) (*entity.Prompt, error) {
	if l.cache != nil {
		t0 := time.Now()
		p, found, err := l.cache.GetPrompt(ctx, id)
		metrics.ObserveCacheLookup(time.Since(t0).Seconds())
		switch {
		case err != nil:
			l.logger.Warningf("cache error: prompt id=%s err=%v", id, err)
		case found:
			metrics.IncCacheHit()
			return p, nil
		default:
			metrics.IncCacheMiss()
		}
	}
	p, err := l.promptRepo.GetPromptByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.cache != nil {
		if err := l.cache.SetPrompt(ctx, p); err != nil {
			l.logger.Warningf("cache error: set prompt id=%s err=%v", id, err)
		}
	}
	return p, nil
}

func (l *contentLookup) post(ctx context.Context, id string) (*entity.Post, error) {
	if l.cache != nil {
		t0 := time.Now()
		p, found, err := l.cache.GetPost(ctx, id)
		metrics.ObserveCacheLookup(time.Since(t0).Seconds())
		switch {
		case err != nil:
			l.logger.Warningf("cache error: post id=%s err=%v", id, err)
		case found:
			metrics.IncCacheHit()
			return p, nil
		default:
			metrics.IncCacheMiss()
		}
	}
	p, err := l.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.cache != nil {
		if err := l.cache.SetPost(ctx, p); err != nil {
			l.logger.Warningf("cache error: set post id=%s err=%v", id, err)
		}
	}
	return p, nil
}

func (l *contentLookup) invalidatePrompt(ctx context.Context, id string) {
	if l.cache == nil {
		return
	}
	if err := l.cache.InvalidatePrompt(ctx, id); err != nil {
		l.logger.Warningf("cache error: invalidate prompt id=%s err=%v", id, err)
	}
}

func (l *contentLookup) invalidatePost(ctx context.Context, id string) {
	if l.cache == nil {
		return
	}
	if err := l.cache.InvalidatePost(ctx, id); err != nil {
		l.logger.Warningf("cache error: invalidate post id=%s err=%v", id, err)
	}
}
