package graph

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lexigraph/lexigraph/internal/config"
	"github.com/lexigraph/lexigraph/pkg/apperror"
	"github.com/lexigraph/lexigraph/pkg/logger"
	"github.com/lexigraph/lexigraph/pkg/tracing"
)

// Service implements the traversal engine: path search between two words and
// neighborhood projection around one word. All traversal work is bounded by
// the configured limits; requests can only tighten them.
type Service struct {
	store Store
	cfg   config.GraphConfig
	log   *slog.Logger
}

// NewService creates a new graph service.
func NewService(store Store, cfg config.GraphConfig, log *slog.Logger) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
		log:   log.With(logger.Scope("graph.svc")),
	}
}

// partialPath is a queue entry in the path search: the nodes visited so far,
// the relation crossed at each hop, and the running strength product.
type partialPath struct {
	nodes    []int64
	relIDs   []int64
	strength float64
}

func (p partialPath) contains(id int64) bool {
	for _, n := range p.nodes {
		if n == id {
			return true
		}
	}
	return false
}

// extend returns a new partial path with the edge appended. The backing
// arrays are copied so sibling extensions never alias each other.
func (p partialPath) extend(e Edge) partialPath {
	nodes := make([]int64, len(p.nodes), len(p.nodes)+1)
	copy(nodes, p.nodes)
	relIDs := make([]int64, len(p.relIDs), len(p.relIDs)+1)
	copy(relIDs, p.relIDs)
	return partialPath{
		nodes:    append(nodes, e.NeighborID),
		relIDs:   append(relIDs, e.RelationID),
		strength: p.strength * e.Strength,
	}
}

func (p partialPath) toResponse() *PathResponse {
	return &PathResponse{
		Nodes:         p.nodes,
		RelationIDs:   p.relIDs,
		Length:        len(p.relIDs),
		TotalStrength: p.strength,
	}
}

// FindPaths enumerates simple paths from source to target in breadth-first
// order: all shorter paths are found before any longer one. Traversal is
// undirected; parallel relations between the same pair yield distinct paths.
func (s *Service) FindPaths(ctx context.Context, q *FindPathsQuery) ([]*PathResponse, error) {
	maxPaths := s.cfg.DefaultMaxPaths
	if q.MaxPaths != nil {
		maxPaths = *q.MaxPaths
	}
	minLength := s.cfg.DefaultMinLength
	if q.MinLength != nil {
		minLength = *q.MinLength
	}
	maxLength := s.cfg.DefaultMaxLength
	if q.MaxLength != nil {
		maxLength = *q.MaxLength
	}

	// Bounds are validated before the endpoints are looked up, and both
	// before any traversal work.
	if maxPaths < 1 {
		return nil, apperror.NewBadRequest("max_paths must be at least 1")
	}
	if minLength < 0 {
		return nil, apperror.NewBadRequest("min_length cannot be negative")
	}
	if maxLength < minLength {
		return nil, apperror.NewBadRequest("max_length cannot be less than min_length")
	}

	if maxPaths > s.cfg.MaxPathsLimit {
		maxPaths = s.cfg.MaxPathsLimit
	}
	if maxLength > s.cfg.MaxLengthLimit {
		maxLength = s.cfg.MaxLengthLimit
	}

	for _, id := range []int64{q.SourceID, q.TargetID} {
		exists, err := s.store.WordExists(ctx, id)
		if err != nil {
			return nil, apperror.ErrDatabase.WithInternal(err)
		}
		if !exists {
			return nil, apperror.NewNotFound("word", id)
		}
	}

	ctx, span := tracing.Start(ctx, "graph.find_paths",
		attribute.Int64("lexigraph.word.source_id", q.SourceID),
		attribute.Int64("lexigraph.word.target_id", q.TargetID),
		attribute.Int("lexigraph.graph.max_paths", maxPaths),
	)
	defer span.End()

	queryID := uuid.NewString()
	start := time.Now()
	s.log.Debug("path search started",
		slog.String("query_id", queryID),
		slog.Int64("source_id", q.SourceID),
		slog.Int64("target_id", q.TargetID),
		slog.Int("max_paths", maxPaths),
		slog.Int("min_length", minLength),
		slog.Int("max_length", maxLength),
	)

	paths, err := s.findPaths(ctx, q.SourceID, q.TargetID, maxPaths, minLength, maxLength)

	elapsed := time.Since(start)
	traversalDuration.WithLabelValues("find_paths").Observe(elapsed.Seconds())
	if err != nil {
		traversalsTotal.WithLabelValues("find_paths", "error").Inc()
		return nil, err
	}
	traversalsTotal.WithLabelValues("find_paths", "ok").Inc()
	pathsFound.Observe(float64(len(paths)))

	s.log.Info("path search completed",
		slog.String("query_id", queryID),
		slog.Int64("source_id", q.SourceID),
		slog.Int64("target_id", q.TargetID),
		slog.Int("paths", len(paths)),
		slog.Duration("elapsed", elapsed),
	)
	return paths, nil
}

func (s *Service) findPaths(ctx context.Context, sourceID, targetID int64, maxPaths, minLength, maxLength int) ([]*PathResponse, error) {
	results := make([]*PathResponse, 0, maxPaths)

	// A word trivially reaches itself by the empty path. It is returned
	// only when the length window admits length zero; no cycle search is
	// attempted.
	if sourceID == targetID {
		if minLength <= 0 {
			results = append(results, partialPath{
				nodes:    []int64{sourceID},
				relIDs:   []int64{},
				strength: 1.0,
			}.toResponse())
		}
		return results, nil
	}

	queue := []partialPath{{
		nodes:    []int64{sourceID},
		relIDs:   []int64{},
		strength: 1.0,
	}}

	for len(queue) > 0 && len(results) < maxPaths {
		cur := queue[0]
		queue = queue[1:]

		if len(cur.relIDs) >= maxLength {
			continue
		}

		edges, err := s.store.Adjacency(ctx, cur.nodes[len(cur.nodes)-1])
		if err != nil {
			return nil, apperror.ErrDatabase.WithInternal(err)
		}

		for _, e := range edges {
			// Simple paths only: never revisit a node already on
			// this path (this also excludes the source).
			if cur.contains(e.NeighborID) {
				continue
			}
			next := cur.extend(e)
			if e.NeighborID == targetID {
				if len(next.relIDs) >= minLength {
					results = append(results, next.toResponse())
					if len(results) >= maxPaths {
						break
					}
				}
				continue
			}
			queue = append(queue, next)
		}
	}

	return results, nil
}

// GetNeighborhood projects the bounded subgraph around a center word using a
// level-synchronous breadth-first expansion. The node cap is strict: the
// moment it is reached the traversal stops, so the result never contains a
// node beyond the cap nor an edge touching an unrecorded node.
func (s *Service) GetNeighborhood(ctx context.Context, q *NeighborhoodQuery) (*SubgraphResponse, error) {
	maxLevel := s.cfg.DefaultMaxLevel
	if q.MaxLevel != nil {
		maxLevel = *q.MaxLevel
	}
	maxNodes := s.cfg.DefaultMaxNodes
	if q.MaxNodes != nil {
		maxNodes = *q.MaxNodes
	}
	maxEdgesPerNode := s.cfg.DefaultMaxEdgesPerNode
	if q.MaxEdgesPerNode != nil {
		maxEdgesPerNode = *q.MaxEdgesPerNode
	}

	// Out-of-range bounds are clamped rather than rejected; a non-positive
	// fan-out cap means unbounded.
	maxLevel = clamp(maxLevel, 1, s.cfg.MaxLevelLimit)
	maxNodes = clamp(maxNodes, 1, s.cfg.MaxNodesLimit)
	if maxEdgesPerNode < 0 {
		maxEdgesPerNode = 0
	}

	exists, err := s.store.WordExists(ctx, q.WordID)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if !exists {
		return nil, apperror.NewNotFound("word", q.WordID)
	}

	ctx, span := tracing.Start(ctx, "graph.get_neighborhood",
		attribute.Int64("lexigraph.word.id", q.WordID),
		attribute.Int("lexigraph.graph.max_level", maxLevel),
		attribute.Int("lexigraph.graph.max_nodes", maxNodes),
	)
	defer span.End()

	queryID := uuid.NewString()
	start := time.Now()

	sub, err := s.project(ctx, q.WordID, maxLevel, maxNodes, maxEdgesPerNode)

	elapsed := time.Since(start)
	traversalDuration.WithLabelValues("get_neighborhood").Observe(elapsed.Seconds())
	if err != nil {
		traversalsTotal.WithLabelValues("get_neighborhood", "error").Inc()
		return nil, err
	}
	traversalsTotal.WithLabelValues("get_neighborhood", "ok").Inc()
	subgraphNodes.Observe(float64(len(sub.NodeIDs)))

	s.log.Info("neighborhood projected",
		slog.String("query_id", queryID),
		slog.Int64("word_id", q.WordID),
		slog.Int("nodes", len(sub.NodeIDs)),
		slog.Int("edges", len(sub.Edges)),
		slog.Duration("elapsed", elapsed),
	)
	return sub, nil
}

type frontierItem struct {
	id    int64
	level int
}

func (s *Service) project(ctx context.Context, centerID int64, maxLevel, maxNodes, maxEdgesPerNode int) (*SubgraphResponse, error) {
	nodeLevel := map[int64]int{centerID: 0}
	nodeIDs := []int64{centerID}
	edges := make([]*SubgraphEdge, 0)

	// Each relation is keyed by its endpoint pair in both orders, so a
	// reverse relation between an already connected pair is suppressed.
	seenEdges := make(map[[2]int64]struct{})

	queue := []frontierItem{{id: centerID, level: 0}}
	capReached := false

	for len(queue) > 0 && !capReached {
		cur := queue[0]
		queue = queue[1:]

		if cur.level >= maxLevel {
			continue
		}

		adj, err := s.store.Adjacency(ctx, cur.id)
		if err != nil {
			return nil, apperror.ErrDatabase.WithInternal(err)
		}
		if maxEdgesPerNode > 0 && len(adj) > maxEdgesPerNode {
			adj = adj[:maxEdgesPerNode]
		}

		for _, e := range adj {
			if _, known := nodeLevel[e.NeighborID]; !known {
				ok, err := s.store.WordExists(ctx, e.NeighborID)
				if err != nil {
					return nil, apperror.ErrDatabase.WithInternal(err)
				}
				// A relation whose far word has vanished is
				// skipped rather than surfaced as an error.
				if !ok {
					continue
				}
				if len(nodeLevel) >= maxNodes {
					capReached = true
					break
				}
				nodeLevel[e.NeighborID] = cur.level + 1
				nodeIDs = append(nodeIDs, e.NeighborID)
				queue = append(queue, frontierItem{id: e.NeighborID, level: cur.level + 1})
			}

			fwd := [2]int64{e.SourceID, e.TargetID}
			if _, seen := seenEdges[fwd]; seen {
				continue
			}
			seenEdges[fwd] = struct{}{}
			seenEdges[[2]int64{e.TargetID, e.SourceID}] = struct{}{}

			edges = append(edges, &SubgraphEdge{
				RelationID: e.RelationID,
				Source:     e.SourceID,
				Target:     e.TargetID,
				Level:      nodeLevel[e.NeighborID],
			})
		}
	}

	return &SubgraphResponse{
		CenterID: centerID,
		NodeIDs:  nodeIDs,
		Edges:    edges,
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
