package graph

// FindPathsQuery carries the parsed path search parameters. Nil bounds mean
// the request omitted them and the configured defaults apply.
type FindPathsQuery struct {
	SourceID  int64
	TargetID  int64
	MaxPaths  *int
	MinLength *int
	MaxLength *int
}

// NeighborhoodQuery carries the parsed neighborhood parameters. Nil bounds
// mean the request omitted them and the configured defaults apply.
type NeighborhoodQuery struct {
	WordID          int64
	MaxLevel        *int
	MaxNodes        *int
	MaxEdgesPerNode *int
}

// PathResponse is one simple path from source to target. Nodes holds the
// word ids in traversal order (source first, target last); RelationIDs holds
// the relation crossed at each hop, so len(RelationIDs) == Length. A
// zero-length path (source == target) has one node and no relations.
type PathResponse struct {
	Nodes         []int64 `json:"nodes"`
	RelationIDs   []int64 `json:"relation_ids"`
	Length        int     `json:"length"`
	TotalStrength float64 `json:"total_strength"`
}

// SubgraphEdge is one relation inside a projected neighborhood. Level is the
// BFS level at which the edge's far endpoint was first discovered.
type SubgraphEdge struct {
	RelationID int64 `json:"relation_id"`
	Source     int64 `json:"source"`
	Target     int64 `json:"target"`
	Level      int   `json:"level"`
}

// SubgraphResponse is the projected neighborhood around a center word.
// NodeIDs are in discovery order, center first.
type SubgraphResponse struct {
	CenterID int64           `json:"center_id"`
	NodeIDs  []int64         `json:"node_ids"`
	Edges    []*SubgraphEdge `json:"edges"`
}
