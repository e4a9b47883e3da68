package main

// splitArgs splits args at the first standalone "--". Arguments before it belong
// to hadolint-get; everything after it is forwarded verbatim, including further "--".
func splitArgs(args []string) (own []string, forwarded []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}
