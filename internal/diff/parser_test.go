package diff

import (
	"reflect"
	"testing"
)

const sampleDiff = `diff --git a/src/a.py b/src/a.py
index 83db48f..bf269f4 100644
--- a/src/a.py
+++ b/src/a.py
@@ -10,3 +10,4 @@ def main():
 context line
+added line
-removed line
 trailing context
diff --git a/src/b.py b/src/b.py
index 83db48f..bf269f4 100644
--- a/src/b.py
+++ b/src/b.py
@@ -1 +1,2 @@
 first
+second
`

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		diff string
		want []FileChange
	}{
		{
			name: "empty input",
			diff: "",
			want: nil,
		},
		{
			name: "two files with hunks",
			diff: sampleDiff,
			want: []FileChange{
				{
					Path: "src/a.py",
					Hunks: []Hunk{
						{
							OldStart: 10,
							NewStart: 10,
							Lines:    []string{" context line", "+added line", "-removed line", " trailing context"},
						},
					},
				},
				{
					Path: "src/b.py",
					Hunks: []Hunk{
						{
							OldStart: 1,
							NewStart: 1,
							Lines:    []string{" first", "+second"},
						},
					},
				},
			},
		},
		{
			name: "hunk header without counts",
			diff: "--- a/f.go\n+++ b/f.go\n@@ -5 +7 @@\n+x\n",
			want: []FileChange{
				{
					Path:  "f.go",
					Hunks: []Hunk{{OldStart: 5, NewStart: 7, Lines: []string{"+x"}}},
				},
			},
		},
		{
			name: "deleted file is dropped",
			diff: "diff --git a/gone.go b/gone.go\n--- a/gone.go\n+++ /dev/null\n@@ -1,2 +0,0 @@\n-old\n-older\n",
			want: nil,
		},
		{
			name: "rename without hunks dropped, second file kept",
			diff: "diff --git a/old.go b/new.go\n--- a/old.go\n+++ b/new.go\ndiff --git a/keep.go b/keep.go\n--- a/keep.go\n+++ b/keep.go\n@@ -1,1 +1,2 @@\n hello\n+world\n",
			want: []FileChange{
				{
					Path:  "keep.go",
					Hunks: []Hunk{{OldStart: 1, NewStart: 1, Lines: []string{" hello", "+world"}}},
				},
			},
		},
		{
			name: "hunk header with no open file is skipped",
			diff: "@@ -1,2 +1,2 @@\n+orphan\n",
			want: nil,
		},
		{
			name: "malformed hunk header is skipped",
			diff: "--- a/f.go\n+++ b/f.go\n@@ garbage @@\n+ignored\n@@ -3,1 +4,2 @@\n+kept\n",
			want: []FileChange{
				{
					Path:  "f.go",
					Hunks: []Hunk{{OldStart: 3, NewStart: 4, Lines: []string{"+kept"}}},
				},
			},
		},
		{
			name: "metadata lines between header and hunk are ignored",
			diff: "diff --git a/f.go b/f.go\nold mode 100644\nnew mode 100755\n--- a/f.go\n+++ b/f.go\n@@ -1,1 +1,1 @@\n+x\n",
			want: []FileChange{
				{
					Path:  "f.go",
					Hunks: []Hunk{{OldStart: 1, NewStart: 1, Lines: []string{"+x"}}},
				},
			},
		},
		{
			name: "truncated diff keeps trailing hunk",
			diff: "--- a/f.go\n+++ b/f.go\n@@ -8,2 +9,3 @@\n context\n+added",
			want: []FileChange{
				{
					Path:  "f.go",
					Hunks: []Hunk{{OldStart: 8, NewStart: 9, Lines: []string{" context", "+added"}}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.diff)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParse_EmittedFilesAlwaysHaveHunks(t *testing.T) {
	for _, fc := range Parse(sampleDiff) {
		if len(fc.Hunks) == 0 {
			t.Errorf("file %s emitted with no hunks", fc.Path)
		}
		for _, h := range fc.Hunks {
			if h.NewStart < 1 {
				t.Errorf("file %s hunk NewStart = %d, want >= 1", fc.Path, h.NewStart)
			}
		}
	}
}

func TestParse_MultipleHunksPerFile(t *testing.T) {
	diff := "--- a/f.go\n+++ b/f.go\n@@ -1,2 +1,3 @@\n+a\n@@ -10,2 +11,3 @@\n+b\n"

	files := Parse(diff)
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if len(files[0].Hunks) != 2 {
		t.Fatalf("expected 2 hunks, got %d", len(files[0].Hunks))
	}
	if files[0].Hunks[0].NewStart != 1 || files[0].Hunks[1].NewStart != 11 {
		t.Errorf("hunk starts = %d, %d; want 1, 11", files[0].Hunks[0].NewStart, files[0].Hunks[1].NewStart)
	}
}

func TestHunk_Snippet(t *testing.T) {
	h := Hunk{Lines: []string{" ctx", "+new", "-old"}}
	want := " ctx\n+new\n-old"
	if got := h.Snippet(); got != want {
		t.Errorf("Snippet() = %q, want %q", got, want)
	}
}
