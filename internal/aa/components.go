package aa

// ConnectedComponentsComputer partitions an AAF into its weakly-connected
// subgraphs (treating attacks as undirected edges for reachability), and
// can extract the single subgraph containing a given argument. Sub-AAFs
// preserve labels and relative adjacency; their argument ids are
// re-densified starting at 0 so SAT encodings over them stay compact.
type ConnectedComponentsComputer[T LabelType] struct {
	af      *AAF[T]
	visited map[int]bool
	order   []*Argument[T]
	next    int
}

// NewConnectedComponentsComputer returns a computer over af, ready to
// iterate its connected components in argument-id order.
func NewConnectedComponentsComputer[T LabelType](af *AAF[T]) *ConnectedComponentsComputer[T] {
	return &ConnectedComponentsComputer[T]{
		af:      af,
		visited: make(map[int]bool),
		order:   af.ArgumentSet().Iter(),
	}
}

// IterConnectedComponents returns every connected component of af, each
// as its own re-densified sub-AAF. Together they cover af exactly once.
func IterConnectedComponents[T LabelType](af *AAF[T]) []*AAF[T] {
	c := NewConnectedComponentsComputer(af)
	var result []*AAF[T]
	for {
		cc := c.NextConnectedComponent()
		if cc == nil {
			break
		}
		result = append(result, cc)
	}
	return result
}

// NextConnectedComponent returns the next not-yet-visited component, or
// nil once every argument has been covered.
func (c *ConnectedComponentsComputer[T]) NextConnectedComponent() *AAF[T] {
	for c.next < len(c.order) {
		start := c.order[c.next]
		c.next++
		if c.visited[start.ID()] {
			continue
		}
		return c.buildComponent(start)
	}
	return nil
}

// ConnectedComponentOf returns the single sub-AAF containing arg.
func (c *ConnectedComponentsComputer[T]) ConnectedComponentOf(arg *Argument[T]) *AAF[T] {
	return c.buildComponentReadOnly(arg)
}

// ConnectedComponentOf is a convenience wrapper building a fresh computer
// over af and extracting the component containing arg.
func ConnectedComponentOf[T LabelType](af *AAF[T], arg *Argument[T]) *AAF[T] {
	c := &ConnectedComponentsComputer[T]{af: af, visited: make(map[int]bool)}
	return c.buildComponentReadOnly(arg)
}

func (c *ConnectedComponentsComputer[T]) buildComponentReadOnly(start *Argument[T]) *AAF[T] {
	ids := c.reachableIDs(start.ID())
	return c.extract(ids)
}

func (c *ConnectedComponentsComputer[T]) buildComponent(start *Argument[T]) *AAF[T] {
	ids := c.reachableIDs(start.ID())
	for id := range ids {
		c.visited[id] = true
	}
	return c.extract(ids)
}

// reachableIDs performs an undirected-reachability BFS from startID,
// treating both attacker->attacked and attacked->attacker edges as
// traversable, without mutating c's visited set.
func (c *ConnectedComponentsComputer[T]) reachableIDs(startID int) map[int]bool {
	seen := map[int]bool{startID: true}
	queue := []int{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		neighbors := append(append([]int{}, c.af.IterAttacksFrom(id)...), c.af.IterAttacksTo(id)...)
		for _, n := range neighbors {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// extract builds a re-densified sub-AAF containing exactly the arguments
// whose id is in ids, preserving labels and relative adjacency.
func (c *ConnectedComponentsComputer[T]) extract(ids map[int]bool) *AAF[T] {
	sub := New[T]()
	for _, arg := range c.af.ArgumentSet().Iter() {
		if ids[arg.ID()] {
			// ignore error: labels are unique in the parent set, so
			// they remain unique in any subset of it.
			_, _ = sub.NewArgument(arg.Label())
		}
	}
	for _, attack := range c.af.AllAttacks() {
		if !ids[attack.AttackerID] || !ids[attack.AttackedID] {
			continue
		}
		attacker, _ := c.af.ArgumentSet().GetByID(attack.AttackerID)
		attacked, _ := c.af.ArgumentSet().GetByID(attack.AttackedID)
		_ = sub.NewAttack(attacker.Label(), attacked.Label())
	}
	return sub
}
