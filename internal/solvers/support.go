package solvers

import "github.com/alexjackson1/crustabri/internal/aa"

// liftLocalLabels rewrites arguments of a connected-component sub-AAF
// back into arguments of the full framework they were extracted from,
// by label. Arguments whose label is no longer present (should not
// happen for any witness computed over a genuine sub-AAF) are dropped.
func liftLocalLabels[T aa.LabelType](af *aa.AAF[T], local []*aa.Argument[T]) []*aa.Argument[T] {
	var result []*aa.Argument[T]
	for _, a := range local {
		if full, ok := af.ArgumentSet().GetByLabel(a.Label()); ok {
			result = append(result, full)
		}
	}
	return result
}

// liftToFullFramework combines a witness computed over one connected
// component with a filler extension for every other component, since
// every semantics implemented here factorizes over weakly connected
// components: any valid extension of each component, unioned together,
// is a valid extension of the whole framework. filler returns false
// when a component admits no extension under the target semantics, in
// which case there is no extension of the whole framework either.
func liftToFullFramework[T aa.LabelType](
	af *aa.AAF[T],
	localComponent *aa.AAF[T],
	localWitness []*aa.Argument[T],
	filler func(cc *aa.AAF[T]) ([]*aa.Argument[T], bool),
) ([]*aa.Argument[T], bool) {
	inComponent := make(map[T]bool)
	for _, a := range localComponent.ArgumentSet().Iter() {
		inComponent[a.Label()] = true
	}

	result := liftLocalLabels(af, localWitness)
	for _, cc := range aa.IterConnectedComponents(af) {
		others := cc.ArgumentSet().Iter()
		if len(others) == 0 || inComponent[others[0].Label()] {
			continue
		}
		ext, ok := filler(cc)
		if !ok {
			return nil, false
		}
		result = append(result, liftLocalLabels(af, ext)...)
	}
	return result, true
}

// containsArg reports whether ext holds an argument with the same id as
// arg.
func containsArg[T aa.LabelType](ext []*aa.Argument[T], arg *aa.Argument[T]) bool {
	for _, a := range ext {
		if a.ID() == arg.ID() {
			return true
		}
	}
	return false
}
