package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runYAML2JSON executes the yaml2json program using 'go run' with the given
// args and input.
func runYAML2JSON(t *testing.T, input string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmdArgs := append([]string{"run", "."}, args...)
	cmd := exec.Command("go", cmdArgs...)
	cmd.Stdin = strings.NewReader(input)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run yaml2json: %v", err)
		}
	}

	return stdout, stderr, exitCode
}

func TestStdinConversion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{
			name:  "single document",
			input: "abc: def\n",
			want:  "{\"abc\":\"def\"}\n",
		},
		{
			name:  "two documents",
			input: "abc: def\n---\naaa: bbb\n",
			want:  "{\"abc\":\"def\"}\n{\"aaa\":\"bbb\"}\n",
		},
		{
			name:  "documents separated by end markers",
			input: "a: 1\n...\nb: 2\n",
			want:  "{\"a\":1}\n{\"b\":2}\n",
		},
		{
			name:  "pretty output",
			input: "abc: def\n",
			args:  []string{"--pretty"},
			want:  "{\n  \"abc\": \"def\"\n}\n",
		},
		{
			name:  "directive header",
			input: "%YAML 1.2\n---\nhello: world\n",
			want:  "{\"hello\":\"world\"}\n",
		},
		{
			name:  "comments only",
			input: "# nothing here\n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, exitCode := runYAML2JSON(t, tt.input, tt.args...)
			if exitCode != 0 {
				t.Fatalf("unexpected exit code %d, stderr: %s", exitCode, stderr)
			}
			if stdout != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", stdout, tt.want)
			}
		})
	}
}

func TestErrorModes(t *testing.T) {
	const invalid = "[ unclosed\n"

	t.Run("stderr", func(t *testing.T) {
		stdout, stderr, exitCode := runYAML2JSON(t, invalid)
		if exitCode != 0 {
			t.Fatalf("unexpected exit code %d", exitCode)
		}
		if stdout != "" {
			t.Errorf("expected no stdout, got %q", stdout)
		}
		if stderr == "" {
			t.Error("expected an error message on stderr")
		}
	})

	t.Run("silent", func(t *testing.T) {
		stdout, stderr, exitCode := runYAML2JSON(t, invalid, "--error", "silent")
		if exitCode != 0 {
			t.Fatalf("unexpected exit code %d", exitCode)
		}
		if stdout != "" || stderr != "" {
			t.Errorf("expected no output, got stdout %q stderr %q", stdout, stderr)
		}
	})

	t.Run("json", func(t *testing.T) {
		stdout, stderr, exitCode := runYAML2JSON(t, invalid, "-e", "json")
		if exitCode != 0 {
			t.Fatalf("unexpected exit code %d, stderr: %s", exitCode, stderr)
		}
		if !strings.HasPrefix(stdout, `{"yaml-error":"`) {
			t.Errorf("got stdout %q, want a yaml-error object", stdout)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, stderr, exitCode := runYAML2JSON(t, "", "-e", "loud")
		if exitCode == 0 {
			t.Fatal("expected a non-zero exit code")
		}
		if !strings.Contains(stderr, "loud") {
			t.Errorf("stderr %q does not mention the invalid mode", stderr)
		}
	})
}

func TestFileArguments(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.yaml")
	if err := os.WriteFile(file, []byte("abc: def\n---\naaa: bbb\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("converts each file", func(t *testing.T) {
		stdout, stderr, exitCode := runYAML2JSON(t, "", file, file)
		if exitCode != 0 {
			t.Fatalf("unexpected exit code %d, stderr: %s", exitCode, stderr)
		}
		want := strings.Repeat("{\"abc\":\"def\"}\n{\"aaa\":\"bbb\"}\n", 2)
		if stdout != want {
			t.Errorf("got:\n%q\nwant:\n%q", stdout, want)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, stderr, exitCode := runYAML2JSON(t, "", filepath.Join(dir, "nope.yaml"))
		if exitCode != 0 {
			t.Fatalf("unexpected exit code %d", exitCode)
		}
		if !strings.Contains(stderr, "does not exist") {
			t.Errorf("stderr %q does not report the missing file", stderr)
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, stderr, exitCode := runYAML2JSON(t, "", dir)
		if exitCode != 0 {
			t.Fatalf("unexpected exit code %d", exitCode)
		}
		if !strings.Contains(stderr, "is a directory") {
			t.Errorf("stderr %q does not report the directory", stderr)
		}
	})
}
