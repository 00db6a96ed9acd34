package aa

// GroundedExtension computes the (unique) grounded extension of af using
// a worklist fixpoint: initialize in_degree[a] to the number of
// attackers of a, seed the worklist with every argument already at
// in_degree 0, then repeatedly defeat everything attacked by the next
// processed argument and decrement the in-degree of whatever that
// defeated argument itself attacks, pushing it onto the extension the
// moment its last undefeated attacker becomes defeated.
//
// This is the polynomial-time algorithm behind grounded SE/DC/DS, and
// also backs SE/DS under complete semantics (the grounded extension is
// the intersection of all complete extensions, and is itself complete).
func GroundedExtension[T LabelType](af *AAF[T]) []*Argument[T] {
	args := af.ArgumentSet().Iter()
	defeated := make(map[int]bool, len(args))
	remainingAttackers := make(map[int]int, len(args))

	var ext []*Argument[T]
	for _, arg := range args {
		n := af.NAttacksTo(arg.ID())
		remainingAttackers[arg.ID()] = n
		if n == 0 {
			ext = append(ext, arg)
		}
	}

	for processed := 0; processed < len(ext); processed++ {
		for _, defeatedID := range af.IterAttacksFrom(ext[processed].ID()) {
			if defeated[defeatedID] {
				continue
			}
			defeated[defeatedID] = true
			for _, defendedID := range af.IterAttacksFrom(defeatedID) {
				remainingAttackers[defendedID]--
				if remainingAttackers[defendedID] == 0 {
					if defended, ok := af.ArgumentSet().GetByID(defendedID); ok {
						ext = append(ext, defended)
					}
				}
			}
		}
	}
	return ext
}
