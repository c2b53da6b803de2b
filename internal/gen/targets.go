package gen

import (
	"fmt"

	"enumrepr/internal/attr"
	"enumrepr/internal/common"
	"enumrepr/internal/diagnostic"
	"enumrepr/internal/emit"
	"enumrepr/internal/intkind"
	"enumrepr/internal/resolve"
)

// checkTargets warns about panic_into targets that are listed more than once,
// whose methods collide with another generated method, or that are builtin
// integers unable to hold some constant. None of it changes the generated
// code.
func checkTargets(diags *diagnostic.Diagnostics, desc resolve.Descriptor, variants []attr.Variant) {
	targets, ok := desc.Directives.Get(emit.DirectivePanicInto)
	if !ok {
		return
	}

	for _, dup := range common.Duplicates(targets) {
		diags.AddWarning(diagnostic.CodeDuplicateTarget,
			fmt.Sprintf("%s is listed more than once in panic_into; the generated %s methods collide",
				dup, emit.MethodName(dup)),
			desc.Name, "")
	}

	checkMethods(diags, desc.Name, targets)

	checked := map[string]bool{}
	for _, target := range targets {
		kind := intkind.FromName(target)
		if checked[target] || !kind.IsValid() {
			continue
		}
		checked[target] = true

		for _, v := range variants {
			if kind.Fits(v.Value) {
				continue
			}

			diags.AddWarning(diagnostic.CodeTargetOverflow,
				fmt.Sprintf("%s = %s does not fit into %s; %s.%s panics for it",
					v.Name, v.Value.ExactString(), target, desc.Name, emit.MethodName(target)),
				desc.Name, v.Name)
		}
	}
}

// reprMethod is the method every enum gets besides its panic_into methods.
const reprMethod = "Repr"

// checkMethods warns when distinct targets map to one method name, or to the
// Repr method.
func checkMethods(diags *diagnostic.Diagnostics, enum string, targets []string) {
	owners := map[string]string{}

	for _, target := range targets {
		method := emit.MethodName(target)

		if method == reprMethod {
			diags.AddWarning(diagnostic.CodeMethodCollision,
				fmt.Sprintf("panic_into(%s) generates a %s method that collides with %s.%s",
					target, method, enum, reprMethod),
				enum, "")
			continue
		}

		owner, ok := owners[method]
		if !ok {
			owners[method] = target
			continue
		}

		if owner != target {
			diags.AddWarning(diagnostic.CodeMethodCollision,
				fmt.Sprintf("%s and %s both generate the %s method", owner, target, method),
				enum, "")
		}
	}
}
