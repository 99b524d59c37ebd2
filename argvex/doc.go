// Package argvex is a small command-line argument engine.
//
// It has two independent parts:
//
//   - ParseInteger converts text to any fixed-width integer type in bases 2
//     to 36 with exact overflow detection. It distinguishes "no digits"
//     (ErrInvalidArgument) from "does not fit" (ErrOutOfRange) and never
//     returns a best-effort value.
//   - Scanner walks an argument vector, collects positional arguments and
//     hands every option token to a caller Handler together with its value.
//
// Scanning:
//
//	opts := []argvex.Option{
//		argvex.Short('v', argvex.NoArgument),
//		argvex.Long("name", argvex.OptionalArgument, 1000),
//		argvex.Both("output", 'o', argvex.RequiredArgument),
//	}
//	s := argvex.NewScanner(os.Args)
//	st := s.Scan(opts, func(m argvex.Match) bool {
//		switch m.ID {
//		case 'v':
//			verbose = true
//		case 'o':
//			output = m.Value
//		}
//		return true
//	})
//	if !st.OK() {
//		// st.Code: 1 hard failure, 2 handler declined
//	}
//	files := s.Positionals()
//
// The scanner treats values as opaque text; use ParseInteger inside the
// handler to interpret numeric values.
package argvex
