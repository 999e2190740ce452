package rules

var registry []Rule

func register(r Rule) {
	registry = append(registry, r)
}

// All returns the registered rules in registration order, minus any whose
// Name or code ID appears in disabled.
func All(disabled []string) []Rule {
	if len(disabled) == 0 {
		return registry
	}
	skip := make(map[string]bool, len(disabled))
	for _, d := range disabled {
		skip[d] = true
	}
	out := make([]Rule, 0, len(registry))
	for _, r := range registry {
		if skip[r.Name()] || skip[r.Code().ID()] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Known reports whether name matches a registered rule's Name or code ID.
func Known(name string) bool {
	for _, r := range registry {
		if r.Name() == name || r.Code().ID() == name {
			return true
		}
	}
	return false
}
