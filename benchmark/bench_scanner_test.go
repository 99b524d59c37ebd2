//nolint:testpackage // using package name 'benchmark' for shared fixtures
package benchmark

import (
	"strconv"
	"testing"

	"github.com/fcharlie/commit365/argvex"
)

// Category: scanner

const (
	idPort = 1000 + iota
	idHost
	idConfig
)

var benchOptions = []argvex.Option{
	argvex.Both("verbose", 'v', argvex.NoArgument),
	argvex.Long("port", argvex.RequiredArgument, idPort),
	argvex.Long("host", argvex.RequiredArgument, idHost),
	argvex.Long("config", argvex.OptionalArgument, idConfig),
	argvex.Short('o', argvex.RequiredArgument),
}

type benchResult struct {
	port    uint16
	host    string
	verbose bool
}

// scanInto parses argv the way a caller of the scanner would, converting
// --port with ParseInteger.
func scanInto(argv []string) (benchResult, error) {
	var r benchResult
	var convErr error
	st := argvex.NewScanner(argv).Scan(benchOptions, func(m argvex.Match) bool {
		switch m.ID {
		case 'v':
			r.verbose = true
		case idPort:
			r.port, convErr = argvex.ParseInteger[uint16](m.Value, 10)
			return convErr == nil
		case idHost:
			r.host = m.Value
		}
		return true
	})
	if convErr != nil {
		return r, convErr
	}
	return r, st.AsError()
}

func BenchmarkScannerSimple(b *testing.B) {
	argv := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := scanInto(argv)
		if err != nil || r.port != 9000 || !r.verbose {
			b.Fatalf("unexpected result %+v, %v", r, err)
		}
	}
}

func BenchmarkScannerShapes(b *testing.B) {
	cases := map[string][]string{
		"long=value":   {"bench", "--port=9000", "--host=0.0.0.0"},
		"long value":   {"bench", "--port", "9000", "--host", "0.0.0.0"},
		"short inline": {"bench", "-ofile", "-o=file", "-v"},
		"short next":   {"bench", "-o", "file", "-v"},
		"optional":     {"bench", "--config", "--config=x"},
	}
	for name, argv := range cases {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, st := argvex.Scan(argv, benchOptions, nil); !st.OK() {
					b.Fatal(st)
				}
			}
		})
	}
}

func BenchmarkScannerPositionals(b *testing.B) {
	argv := make([]string, 0, 101)
	argv = append(argv, "bench")
	for i := 0; i < 100; i++ {
		argv = append(argv, "path/"+strconv.Itoa(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		paths, st := argvex.Scan(argv, benchOptions, nil)
		if !st.OK() || len(paths) != 100 {
			b.Fatal(st)
		}
	}
}

func BenchmarkParseInteger(b *testing.B) {
	b.Run("argvex/int64", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := argvex.ParseInteger[int64]("-9223372036854775808", 10); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("strconv/int64", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := strconv.ParseInt("-9223372036854775808", 10, 64); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("argvex/base36", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := argvex.ParseInteger[uint64]("3w5e11264sgsf", 36); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("argvex/overflow", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := argvex.ParseInteger[int8]("99999999999999999999", 10); err == nil {
				b.Fatal("expected overflow")
			}
		}
	})
}
