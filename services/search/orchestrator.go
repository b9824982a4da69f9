package search

import (
	"context"
	"encoding/json"
	"fmt"

	"roomly/config"
	roomRepo "roomly/database/repository/room"
	"roomly/models"
	ai "roomly/services/intelligence"
	"roomly/services/scheduling"
	"roomly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Orchestrator composes extraction, filtering, availability checking and
// ranking into the end-to-end room search.
type Orchestrator interface {
	Search(ctx context.Context, freeText string) (*models.SearchResult, error)
}

// DefaultOrchestrator is the production implementation.
type DefaultOrchestrator struct {
	Extractor    *RequirementExtractor
	RoomRepo     roomRepo.RoomRepository
	Availability scheduling.AvailabilityEngine
	Oracle       ai.Oracle     // optional oracle-assisted re-ranking
	CacheClient  *redis.Client // optional ranked-result cache
}

// Search runs the full pipeline. Extraction failures fail closed and are
// surfaced as-is; the catalog is never touched for rejected input.
func (o *DefaultOrchestrator) Search(ctx context.Context, freeText string) (*models.SearchResult, error) {
	logger := utils.GetLogger()

	reqs, err := o.Extractor.Extract(ctx, freeText)
	if err != nil {
		return nil, err
	}

	// Window-bound searches are availability-sensitive and bypass the
	// cache; a booking landing mid-TTL would serve stale availability.
	cacheable := !reqs.HasFullWindow()
	if cacheable {
		if cached := o.cachedResult(ctx, *reqs); cached != nil {
			return cached, nil
		}
	}

	rooms, err := o.RoomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load room catalog: %w", err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("room catalog is empty")
	}

	candidates := FilterRooms(*reqs, rooms)

	// Availability-filter only when a concrete window was derivable.
	if reqs.HasFullWindow() {
		window, err := DeriveWindow(*reqs)
		if err != nil {
			return nil, fmt.Errorf("failed to derive booking window: %w", err)
		}
		available := candidates[:0]
		for _, room := range candidates {
			free, err := o.Availability.IsAvailable(ctx, room.RoomNumber, window, "")
			if err != nil {
				return nil, fmt.Errorf("availability check failed for room %s: %w", room.RoomNumber, err)
			}
			if free {
				available = append(available, room)
			}
		}
		candidates = available
	}

	ranked := RankRooms(*reqs, candidates)

	if o.Oracle != nil && len(ranked) > 1 {
		raw, err := o.Oracle.RankCandidates(ctx, *reqs, candidates)
		if err != nil {
			logger.Warn("oracle ranking failed, keeping deterministic order", zap.Error(err))
		} else {
			ranked = ApplyOracleRanking(raw, ranked)
		}
	}

	result := &models.SearchResult{
		Requirements: *reqs,
		Candidates:   ranked,
		Message:      summaryMessage(len(ranked)),
	}
	if cacheable {
		o.cacheResult(ctx, *reqs, result)
	}
	return result, nil
}

func summaryMessage(count int) string {
	switch count {
	case 0:
		return "No rooms match your request. Consider relaxing some constraints."
	case 1:
		return "Found 1 room matching your request."
	default:
		return fmt.Sprintf("Found %d rooms matching your request.", count)
	}
}

// cacheKey derives a stable key from the validated requirements, so two
// phrasings that extract to the same constraints share a cache entry.
func cacheKey(reqs models.RoomRequirements) (string, error) {
	reqBytes, err := json.Marshal(reqs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("search:%x", reqBytes), nil
}

func (o *DefaultOrchestrator) cachedResult(ctx context.Context, reqs models.RoomRequirements) *models.SearchResult {
	if o.CacheClient == nil {
		return nil
	}
	key, err := cacheKey(reqs)
	if err != nil {
		return nil
	}
	cached, err := o.CacheClient.Get(ctx, key).Result()
	if err != nil || cached == "" {
		return nil
	}
	var result models.SearchResult
	if err := json.Unmarshal([]byte(cached), &result); err != nil {
		return nil
	}
	return &result
}

func (o *DefaultOrchestrator) cacheResult(ctx context.Context, reqs models.RoomRequirements, result *models.SearchResult) {
	if o.CacheClient == nil {
		return
	}
	key, err := cacheKey(reqs)
	if err != nil {
		return
	}
	if resultBytes, err := json.Marshal(result); err == nil {
		o.CacheClient.Set(ctx, key, resultBytes, config.SearchCacheTTL())
	}
}
