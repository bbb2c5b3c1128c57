package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const wrapScene = "../../internal/scene/testdata/wrap.toml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	type tc struct {
		args []string
		want []string
	}

	tests := map[string]tc{
		"version": {
			args: []string{"version"},
			want: []string{"boxtree version " + version},
		},
		"layout wraps the third box": {
			args: []string{"layout", wrapScene},
			want: []string{"row", "(0,0 400x40)", "(0,20 200x20)", "4 nodes"},
		},
		"layout with a wider window": {
			args: []string{"layout", wrapScene, "--width", "700"},
			want: []string{"(0,0 600x20)", "(400,0 200x20)"},
		},
		"hit prints the path": {
			args: []string{"hit", wrapScene, "210", "5"},
			want: []string{"row > b", "local position (10,5)"},
		},
		"hit outside the root": {
			args: []string{"hit", wrapScene, "450", "30"},
			want: []string{"no hit at (450,30)"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("run %v: %v", tt.args, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	type tc struct {
		args    []string
		wantErr string
	}

	tests := map[string]tc{
		"missing scene": {
			args:    []string{"layout", "testdata/does-not-exist.toml"},
			wantErr: "load scene",
		},
		"bad coordinate": {
			args:    []string{"hit", wrapScene, "left", "5"},
			wantErr: "x:",
		},
		"bad highlight point": {
			args:    []string{"render", wrapScene, "--at", "10"},
			wantErr: "--at",
		},
		"wrong arg count": {
			args:    []string{"hit", wrapScene},
			wantErr: "accepts 3 arg",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatalf("run %v: expected error", tt.args)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestRender_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrap.png")

	out, err := run(t, "render", wrapScene, "-o", path, "--at", "10,10")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "wrote "+path+" (500x500)") {
		t.Errorf("unexpected output: %s", out)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PNG is empty")
	}
}
