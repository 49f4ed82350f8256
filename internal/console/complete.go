package console

import "strings"

// computeCompletions returns completion matches for a partial command line.
func computeCompletions(text string, blockNames []string) []string {
	parts := strings.Fields(text)
	// If text ends with space, we're completing the next argument.
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 0 {
		return commandNames("", "")
	}
	if len(parts) == 1 && !trailingSpace {
		prefix := ""
		if strings.HasPrefix(parts[0], "/") {
			prefix = "/"
		}
		return commandNames(strings.ToLower(strings.TrimPrefix(parts[0], "/")), prefix)
	}

	cmdName := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	var argPartial string
	if !trailingSpace && len(parts) > 1 {
		argPartial = parts[len(parts)-1]
	}
	argIndex := len(parts) - 1
	if trailingSpace {
		argIndex = len(parts)
	}

	switch cmdName {
	case "fill":
		if argIndex == 1 {
			return filterStrings(argPartial, []string{"xy", "xz", "yz"})
		}
		if argIndex == 5 || argIndex == 6 {
			return filterStrings(argPartial, blockNames)
		}
	case "set":
		if argIndex == 4 {
			return filterStrings(argPartial, blockNames)
		}
	case "use":
		if argIndex == 4 {
			return filterStrings(argPartial, faceNames)
		}
		if argIndex == 5 {
			return filterStrings(argPartial, blockNames)
		}
	case "replace":
		if argIndex == 4 || argIndex == 5 {
			return filterStrings(argPartial, blockNames)
		}
	case "brush":
		if argIndex == 1 {
			return filterStrings(argPartial, blockNames)
		}
	}

	return nil
}

func commandNames(partial, prefix string) []string {
	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(cmd.name, partial) {
			matches = append(matches, prefix+cmd.name)
		}
	}
	return matches
}

func filterStrings(partial string, options []string) []string {
	partial = strings.ToLower(partial)
	var matches []string
	for _, opt := range options {
		if strings.HasPrefix(opt, partial) {
			matches = append(matches, opt)
		}
	}
	return matches
}
