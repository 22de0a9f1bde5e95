package game

import (
	"slices"

	"github.com/rs/zerolog/log"

	"lighthouses/geom"
)

// Link is an undirected connection between two lighthouses, stored with
// A < B so each pair has one key.
type Link struct {
	A Position
	B Position
}

func NewLink(p, q Position) Link {
	if q.Less(p) {
		p, q = q, p
	}
	return Link{A: p, B: q}
}

// Has reports whether p is an endpoint.
func (l Link) Has(p Position) bool { return l.A == p || l.B == p }

// Other returns the endpoint that is not p.
func (l Link) Other(p Position) Position {
	if l.A == p {
		return l.B
	}
	return l.A
}

func compareLinks(l, m Link) int {
	if c := geom.Compare(l.A, m.A); c != 0 {
		return c
	}
	return geom.Compare(l.B, m.B)
}

// Triangle holds three mutually linked lighthouses in ascending order.
type Triangle [3]Position

func NewTriangle(p, q, r Position) Triangle {
	t := Triangle{p, q, r}
	slices.SortFunc(t[:], geom.Compare)
	return t
}

func (t Triangle) Has(p Position) bool { return t[0] == p || t[1] == p || t[2] == p }

func compareTriangles(t, u Triangle) int {
	for i := range t {
		if c := geom.Compare(t[i], u[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Graph stores the links and the triangles they close. It knows nothing of
// owners or energy; Board enforces those rules.
type Graph struct {
	links map[Link]struct{}
	tris  map[Triangle][]Position
}

func NewGraph() *Graph {
	return &Graph{
		links: make(map[Link]struct{}),
		tris:  make(map[Triangle][]Position),
	}
}

func (g *Graph) Has(p, q Position) bool {
	_, ok := g.links[NewLink(p, q)]
	return ok
}

func (g *Graph) Add(p, q Position) {
	g.links[NewLink(p, q)] = struct{}{}
}

func (g *Graph) Len() int { return len(g.links) }

// Links returns every link in ascending order.
func (g *Graph) Links() []Link {
	out := make([]Link, 0, len(g.links))
	for l := range g.links {
		out = append(out, l)
	}
	slices.SortFunc(out, compareLinks)
	return out
}

// Neighbors lists the lighthouses linked to p in ascending order.
func (g *Graph) Neighbors(p Position) []Position {
	var out []Position
	for l := range g.links {
		if l.Has(p) {
			out = append(out, l.Other(p))
		}
	}
	slices.SortFunc(out, geom.Compare)
	return out
}

// Crosses reports whether segment p-q properly crosses an existing link.
func (g *Graph) Crosses(p, q Position) bool {
	for l := range g.links {
		if geom.Intersect(l.A, l.B, p, q) {
			return true
		}
	}
	return false
}

// ClosingTriangles lists the triangles a new p-q link would complete.
func (g *Graph) ClosingTriangles(p, q Position) []Triangle {
	var out []Triangle
	for _, third := range g.Neighbors(p) {
		if third != q && g.Has(third, q) {
			out = append(out, NewTriangle(p, q, third))
		}
	}
	return out
}

func (g *Graph) AddTriangle(t Triangle, cells []Position) {
	g.tris[t] = cells
}

// Triangles returns every triangle in ascending order.
func (g *Graph) Triangles() []Triangle {
	out := make([]Triangle, 0, len(g.tris))
	for t := range g.tris {
		out = append(out, t)
	}
	slices.SortFunc(out, compareTriangles)
	return out
}

// Cells returns the enclosed walkable cells of t, or nil if t does not exist.
func (g *Graph) Cells(t Triangle) []Position {
	return g.tris[t]
}

// CloseAt removes every link and triangle touching p and reports how many
// of each were removed.
func (g *Graph) CloseAt(p Position) (links, tris int) {
	for l := range g.links {
		if l.Has(p) {
			delete(g.links, l)
			links++
		}
	}
	for t := range g.tris {
		if t.Has(p) {
			delete(g.tris, t)
			tris++
		}
	}
	return links, tris
}

// Graph exposes the board's connections read-only by convention.
func (b *Board) Graph() *Graph {
	return b.graph
}

// Connect links the lighthouse the player stands on to dest. Checks run in a
// fixed order and the first failure is returned.
func (b *Board) Connect(pid PlayerID, dest Position) error {
	player := b.Player(pid)
	orig, ok := b.lighthouses[player.Pos]
	if !ok {
		return ErrNotAtOrigin
	}
	target, ok := b.lighthouses[dest]
	if !ok {
		return ErrUnknownDestination
	}
	if orig.Owner != pid || target.Owner != pid {
		return ErrNotOwned
	}
	if !player.HasKey(dest) {
		return ErrMissingKey
	}
	if orig == target {
		return ErrSelfConnection
	}
	if orig.Energy <= 0 || target.Energy <= 0 {
		return ErrNoEnergy
	}
	if b.graph.Has(orig.Pos, dest) {
		return ErrAlreadyConnected
	}
	for _, p := range b.order {
		if geom.Between(orig.Pos, dest, p) {
			return ErrLighthouseInPath
		}
	}
	if b.graph.Crosses(orig.Pos, dest) {
		return ErrCrossesConnection
	}

	closing := b.graph.ClosingTriangles(orig.Pos, dest)
	player.keys.Remove(dest)
	b.graph.Add(orig.Pos, dest)
	for _, t := range closing {
		var cells []Position
		for p := range geom.Render(t[0], t[1], t[2]) {
			if b.island.Walkable(p) {
				cells = append(cells, p)
			}
		}
		b.graph.AddTriangle(t, cells)
		log.Debug().Msgf("player %d closed triangle %v enclosing %d cells", pid, t, len(cells))
	}
	return nil
}
