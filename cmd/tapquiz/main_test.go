package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		got, err := confirm(strings.NewReader(tc.input), &out, "Delete? [y/N] ")
		if err != nil {
			t.Fatalf("confirm(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("confirm(%q) = %v, want %v", tc.input, got, tc.want)
		}
		if out.String() != "Delete? [y/N] " {
			t.Fatalf("unexpected prompt %q", out.String())
		}
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{{"stats"}, {"config"}, {"history", "export"}, {"history", "clear"}} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd.Name() != path[len(path)-1] {
			t.Fatalf("missing command %v: %v", path, err)
		}
	}
	for _, name := range []string{"duration", "countdown", "seed", "debug", "db", "export-dir"} {
		if root.Flags().Lookup(name) == nil && root.PersistentFlags().Lookup(name) == nil {
			t.Fatalf("missing flag --%s", name)
		}
	}
}
