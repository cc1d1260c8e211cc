package kvkit

// Command is a parsed textual request: a type, an optional dotted subtype
// and positional string arguments.
type Command struct {
	Type    string
	Subtype string
	Args    []string
}

// ParseCommand parses a request of the form "TYPE[.SUBTYPE] arg1 arg2 ...".
// Leading spaces are skipped and a trailing newline is tolerated. The type
// and subtype are matched case-sensitively by the dispatcher; arguments are
// passed through verbatim.
func ParseCommand(buf []byte) (*Command, error) {
	if len(buf) == 0 {
		return nil, ErrNilCommand
	}

	idx := 0
	for idx < len(buf) && buf[idx] == ' ' {
		idx++
	}

	start := idx
	for idx < len(buf) && buf[idx] != ' ' && buf[idx] != '.' && buf[idx] != '\n' {
		idx++
	}

	cmd := &Command{Type: string(buf[start:idx])}
	if cmd.Type == "" {
		return nil, ErrNilCommand
	}

	if idx < len(buf) && buf[idx] == '.' {
		idx++
		start = idx
		for idx < len(buf) && buf[idx] != ' ' && buf[idx] != '\n' {
			idx++
		}
		cmd.Subtype = string(buf[start:idx])
	}

	var word []byte
	for ; idx < len(buf); idx++ {
		switch buf[idx] {
		case ' ', '\n':
			if len(word) > 0 {
				cmd.Args = append(cmd.Args, string(word))
				word = word[:0]
			}
		default:
			word = append(word, buf[idx])
		}
	}

	if len(word) > 0 {
		cmd.Args = append(cmd.Args, string(word))
	}

	return cmd, nil
}
