package aa

// Attack is an ordered pair (attacker, attacked) of argument ids.
type Attack struct {
	AttackerID int
	AttackedID int
}

// AAF is an ArgumentSet plus an attack relation. It maintains, per
// argument, both the set of attacks from it and to it, so iteration is
// O(degree) and duplicate-pair insertion is O(1).
//
// Attacks are stored by argument id, never by owning reference; the AAF
// owns all arguments, and solvers only ever hold a shared read-only
// borrow of it.
type AAF[T LabelType] struct {
	args *ArgumentSet[T]

	// from[u] is the set of ids attacked by u; to[v] is the set of ids
	// that attack v. Both are kept in sync on every mutation.
	from map[int]map[int]struct{}
	to   map[int]map[int]struct{}
}

// New returns an empty AAF.
func New[T LabelType]() *AAF[T] {
	return &AAF[T]{
		args: NewArgumentSet[T](),
		from: make(map[int]map[int]struct{}),
		to:   make(map[int]map[int]struct{}),
	}
}

// NewWithArgumentSet returns an AAF with no attacks, built atop an
// already-populated ArgumentSet.
func NewWithArgumentSet[T LabelType](args *ArgumentSet[T]) *AAF[T] {
	af := &AAF[T]{
		args: args,
		from: make(map[int]map[int]struct{}),
		to:   make(map[int]map[int]struct{}),
	}
	for _, arg := range args.Iter() {
		af.from[arg.id] = make(map[int]struct{})
		af.to[arg.id] = make(map[int]struct{})
	}
	return af
}

// ArgumentSet returns the framework's underlying ArgumentSet.
func (af *AAF[T]) ArgumentSet() *ArgumentSet[T] {
	return af.args
}

// NArguments returns the number of live arguments.
func (af *AAF[T]) NArguments() int {
	return af.args.Count()
}

// NewArgument inserts a new argument with the given label.
func (af *AAF[T]) NewArgument(label T) (*Argument[T], error) {
	arg, err := af.args.Insert(label)
	if err != nil {
		return nil, err
	}
	af.from[arg.id] = make(map[int]struct{})
	af.to[arg.id] = make(map[int]struct{})
	return arg, nil
}

// RemoveArgument removes an argument and all attacks incident to it.
func (af *AAF[T]) RemoveArgument(label T) error {
	arg, ok := af.args.GetByLabel(label)
	if !ok {
		return &UnknownLabelError[T]{Label: label}
	}
	for attacked := range af.from[arg.id] {
		delete(af.to[attacked], arg.id)
	}
	for attacker := range af.to[arg.id] {
		delete(af.from[attacker], arg.id)
	}
	delete(af.from, arg.id)
	delete(af.to, arg.id)
	return af.args.Remove(label)
}

// NewAttack adds an attack from the argument labeled `from` to the one
// labeled `to`. Duplicate pairs are silently deduplicated.
func (af *AAF[T]) NewAttack(from, to T) error {
	fromArg, ok := af.args.GetByLabel(from)
	if !ok {
		return &UnknownLabelError[T]{Label: from}
	}
	toArg, ok := af.args.GetByLabel(to)
	if !ok {
		return &UnknownLabelError[T]{Label: to}
	}
	return af.newAttackByID(fromArg.id, toArg.id)
}

func (af *AAF[T]) newAttackByID(fromID, toID int) error {
	if _, ok := af.from[fromID]; !ok {
		return &UnknownIDError{ID: fromID}
	}
	if _, ok := af.from[toID]; !ok {
		return &UnknownIDError{ID: toID}
	}
	af.from[fromID][toID] = struct{}{}
	af.to[toID][fromID] = struct{}{}
	return nil
}

// RemoveAttack removes the attack from `from` to `to`, if present.
func (af *AAF[T]) RemoveAttack(from, to T) error {
	fromArg, ok := af.args.GetByLabel(from)
	if !ok {
		return &UnknownLabelError[T]{Label: from}
	}
	toArg, ok := af.args.GetByLabel(to)
	if !ok {
		return &UnknownLabelError[T]{Label: to}
	}
	delete(af.from[fromArg.id], toArg.id)
	delete(af.to[toArg.id], fromArg.id)
	return nil
}

// IterAttacksTo returns the ids of the arguments attacking id.
func (af *AAF[T]) IterAttacksTo(id int) []int {
	set := af.to[id]
	result := make([]int, 0, len(set))
	for a := range set {
		result = append(result, a)
	}
	return result
}

// IterAttacksFrom returns the ids of the arguments attacked by id.
func (af *AAF[T]) IterAttacksFrom(id int) []int {
	set := af.from[id]
	result := make([]int, 0, len(set))
	for a := range set {
		result = append(result, a)
	}
	return result
}

// NAttacksTo returns the in-degree of id, i.e. the number of attackers.
func (af *AAF[T]) NAttacksTo(id int) int {
	return len(af.to[id])
}

// AllAttacks returns every attack currently in the framework.
func (af *AAF[T]) AllAttacks() []Attack {
	var result []Attack
	for attacker, attacked := range af.from {
		for to := range attacked {
			result = append(result, Attack{AttackerID: attacker, AttackedID: to})
		}
	}
	return result
}
