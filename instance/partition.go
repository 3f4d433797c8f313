package instance

// Partition is an ordered collection of lists split from one source list. By convention the list at index
// 0 is the held-out (validation, pruning or test) portion and the list at index 1 the training portion.
type Partition struct {
	lists []*List
}

// NewPartition creates a partition from the lists, in order.
func NewPartition(lists ...*List) *Partition {
	p := &Partition{lists: make([]*List, len(lists))}
	copy(p.lists, lists)
	return p
}

// Add appends a list to the partition.
func (p *Partition) Add(l *List) {
	p.lists = append(p.lists, l)
}

// Size is the number of lists in the partition.
func (p *Partition) Size() int {
	return len(p.lists)
}

// Get returns the list at index i.
func (p *Partition) Get(i int) *List {
	return p.lists[i]
}

// Lists returns the instances of every list in the partition.
func (p *Partition) Lists() [][]*Instance {
	l := make([][]*Instance, len(p.lists))
	for i, list := range p.lists {
		l[i] = list.Instances()
	}
	return l
}
