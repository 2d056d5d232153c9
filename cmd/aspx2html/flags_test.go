package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		check    func(t *testing.T, f *convertFlags, pos []string)
		wantHelp bool
		wantErr  bool
	}{
		{
			name: "positional args only",
			args: []string{"aspx2html", "in", "out"},
			check: func(t *testing.T, f *convertFlags, pos []string) {
				if len(pos) != 2 || pos[0] != "in" || pos[1] != "out" {
					t.Errorf("positional args = %v", pos)
				}
			},
		},
		{
			name: "all flags",
			args: []string{"aspx2html", "-c", "site.yaml", "-q", "-w", "4", "--encoding", "shift_jis", "--lang", "en", "--default-title", "Untitled", "in", "out"},
			check: func(t *testing.T, f *convertFlags, pos []string) {
				if f.common.config != "site.yaml" {
					t.Errorf("config = %q", f.common.config)
				}
				if !f.common.quiet {
					t.Error("quiet not set")
				}
				if f.workers != 4 {
					t.Errorf("workers = %d", f.workers)
				}
				if f.encoding != "shift_jis" || f.lang != "en" || f.defaultTitle != "Untitled" {
					t.Errorf("flags = %+v", f)
				}
				if len(pos) != 2 {
					t.Errorf("positional args = %v", pos)
				}
			},
		},
		{
			name: "version flag",
			args: []string{"aspx2html", "--version"},
			check: func(t *testing.T, f *convertFlags, pos []string) {
				if !f.showVersion {
					t.Error("showVersion not set")
				}
			},
		},
		{
			name:     "help flag",
			args:     []string{"aspx2html", "--help"},
			wantHelp: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"aspx2html", "--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, pos, err := parseFlags(tt.args)
			if tt.wantHelp {
				if !errors.Is(err, flag.ErrHelp) {
					t.Fatalf("parseFlags() error = %v, want %v", err, flag.ErrHelp)
				}
				return
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			tt.check(t, f, pos)
		})
	}
}
