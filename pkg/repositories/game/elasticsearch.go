package game

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
	// Retention is how long finished games stay searchable
	Retention time.Duration
}

// DefaultElasticsearchConfig returns a default configuration for Elasticsearch
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:         "http://localhost:9200",
		IndexPrefix: "blackjack",
		Retention:   90 * 24 * time.Hour,
	}
}

// ElasticsearchRepository wraps another Repository and mirrors finished
// games into an Elasticsearch index. The wrapped repository stays the source
// of truth; history queries are served from the index when it answers.
type ElasticsearchRepository struct {
	baseRepo Repository
	client   *elasticsearch.Client
	config   *ElasticsearchConfig
	index    string
	logger   *logging.Logger
}

// NewElasticsearchRepository creates the decorator and makes sure the index exists
func NewElasticsearchRepository(ctx context.Context, baseRepo Repository, config *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	if config.IndexPrefix == "" {
		config.IndexPrefix = "blackjack"
	}
	if config.Retention == 0 {
		config.Retention = 90 * 24 * time.Hour
	}

	repo := &ElasticsearchRepository{
		baseRepo: baseRepo,
		client:   client,
		config:   config,
		index:    config.IndexPrefix + "_games",
		logger:   logging.Default.With("elasticsearch"),
	}

	if err := repo.initIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}
	return repo, nil
}

// WithLogger replaces the repository's logger
func (r *ElasticsearchRepository) WithLogger(logger *logging.Logger) *ElasticsearchRepository {
	r.logger = logger
	return r
}

func (r *ElasticsearchRepository) initIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if game index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  bytes.NewReader([]byte(gameIndexMapping)),
	}
	res, err = req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating game index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating game index: %s", res.String())
	}
	r.logger.Info("Created index %s", r.index)
	return nil
}

// Save stores the game in the base repository and indexes it once finished.
// Indexing failures are logged; the save itself has already succeeded.
func (r *ElasticsearchRepository) Save(ctx context.Context, game *entities.GameRecord) error {
	if err := r.baseRepo.Save(ctx, game); err != nil {
		return err
	}
	if !game.IsFinished() {
		return nil
	}
	if err := r.IndexGame(ctx, game); err != nil {
		r.logger.Warn("Failed to index game %s: %v", game.ID, err)
	}
	return nil
}

// IndexGame writes a finished game document keyed by game id
func (r *ElasticsearchRepository) IndexGame(ctx context.Context, game *entities.GameRecord) error {
	body, err := json.Marshal(newESGameDocument(game))
	if err != nil {
		return fmt.Errorf("error marshaling game: %w", err)
	}

	res, err := r.client.Index(
		r.index,
		bytes.NewReader(body),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithDocumentID(game.ID),
		r.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("error indexing game: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing game: %s", res.String())
	}
	return nil
}

// FindByID reads from the base repository
func (r *ElasticsearchRepository) FindByID(ctx context.Context, id string) (*entities.GameRecord, error) {
	return r.baseRepo.FindByID(ctx, id)
}

// Delete removes the game from the base repository and the index
func (r *ElasticsearchRepository) Delete(ctx context.Context, id string) error {
	if err := r.baseRepo.Delete(ctx, id); err != nil {
		return err
	}

	res, err := r.client.Delete(r.index, id, r.client.Delete.WithContext(ctx))
	if err != nil {
		r.logger.Warn("Failed to remove game %s from index: %v", id, err)
		return nil
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		r.logger.Warn("Failed to remove game %s from index: %s", id, res.String())
	}
	return nil
}

// ListByPlayer searches the index, falling back to the base repository when
// Elasticsearch is unavailable
func (r *ElasticsearchRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entities.GameRecord, error) {
	games, err := r.SearchPlayerGames(ctx, playerID, limit)
	if err != nil {
		r.logger.Warn("Search failed, reading history from base repository: %v", err)
		return r.baseRepo.ListByPlayer(ctx, playerID, limit)
	}
	return games, nil
}

// SearchPlayerGames returns a player's indexed games, newest first
func (r *ElasticsearchRepository) SearchPlayerGames(ctx context.Context, playerID string, limit int) ([]*entities.GameRecord, error) {
	if limit <= 0 {
		limit = 1000
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{"player_id": playerID},
		},
		"sort": []interface{}{
			map[string]interface{}{"finished_at": map[string]string{"order": "desc"}},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(body)),
		r.client.Search.WithSize(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("error searching for player games: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching for player games: %s", res.String())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source ESGameDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error parsing player games: %w", err)
	}

	games := make([]*entities.GameRecord, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		games = append(games, hit.Source.record())
	}
	return games, nil
}

// DeleteStale delegates to the base repository; unfinished games are never indexed
func (r *ElasticsearchRepository) DeleteStale(ctx context.Context, before time.Time) (int, error) {
	return r.baseRepo.DeleteStale(ctx, before)
}

// PruneOlderThan deletes indexed games finished before the cutoff
func (r *ElasticsearchRepository) PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"finished_at": map[string]string{"lt": cutoff.UTC().Format(time.RFC3339)},
			},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return 0, err
	}

	req := esapi.DeleteByQueryRequest{
		Index: []string{r.index},
		Body:  bytes.NewReader(body),
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return 0, fmt.Errorf("error pruning games: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("error pruning games: %s", res.String())
	}

	var result struct {
		Deleted int `json:"deleted"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("error parsing prune response: %w", err)
	}
	return result.Deleted, nil
}

// Prune removes indexed games older than the configured retention
func (r *ElasticsearchRepository) Prune(ctx context.Context) (int, error) {
	return r.PruneOlderThan(ctx, time.Now().Add(-r.config.Retention))
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}

// GetConfig returns the repository configuration
func (r *ElasticsearchRepository) GetConfig() ElasticsearchConfig {
	return *r.config
}

// Index returns the name of the games index
func (r *ElasticsearchRepository) Index() string {
	return r.index
}
