package cli_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/md2html/internal/cli"
	"github.com/yaklabco/md2html/internal/configloader"
	"github.com/yaklabco/md2html/pkg/fsutil"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "md2html <input-path> <output-path>" {
		t.Errorf("unexpected Use line: %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedSubcommands := []string{"batch", "init", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestRootCommandArgValidation(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no arguments", args: nil, wantErr: true},
		{name: "one argument", args: []string{"in.md"}, wantErr: true},
		{name: "two arguments", args: []string{"in.md", "out.html"}, wantErr: false},
		{name: "three arguments", args: []string{"a", "b", "c"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := cmd.Args(cmd, tt.args)
			if tt.wantErr {
				if !errors.Is(err, cli.ErrInvalidArgs) {
					t.Errorf("expected ErrInvalidArgs for %v, got %v", tt.args, err)
				}
			} else if err != nil {
				t.Errorf("expected args %v to validate, got %v", tt.args, err)
			}
		})
	}
}

func TestBatchCommandFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	batchCmd, _, err := cmd.Find([]string{"batch"})
	if err != nil {
		t.Fatalf("batch command not found: %v", err)
	}

	expectedFlags := []string{
		"jobs",
		"output-ext",
		"ignore",
		"ext",
		"detect",
		"verbose",
		"summary",
	}

	for _, flagName := range expectedFlags {
		flag := batchCmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on batch command", flagName)
		}
	}
}

func TestBatchCommandAcceptsArbitraryArgs(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	batchCmd, _, err := cmd.Find([]string{"batch"})
	if err != nil {
		t.Fatalf("batch command not found: %v", err)
	}

	err = batchCmd.Args(batchCmd, []string{"file1.md", "file2.md", "docs/"})
	if err != nil {
		t.Errorf("batch command should accept arbitrary args, got error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedFlags := []string{"debug", "config", "color"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: cli.ExitSuccess},
		{name: "invalid args", err: cli.ErrInvalidArgs, want: cli.ExitInvalidUsage},
		{
			name: "wrapped invalid args",
			err:  errors.Join(errors.New("context"), cli.ErrInvalidArgs),
			want: cli.ExitInvalidUsage,
		},
		{name: "conversion failures", err: cli.ErrConversionFailures, want: cli.ExitConversionFailures},
		{name: "config error", err: configloader.ErrInvalidConfig, want: cli.ExitConfigError},
		{name: "missing file", err: fsutil.ErrNotFound, want: cli.ExitIOError},
		{name: "directory input", err: fsutil.ErrIsDirectory, want: cli.ExitIOError},
		{name: "permission denied", err: fsutil.ErrPermissionDenied, want: cli.ExitIOError},
		{name: "unknown error", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
}
